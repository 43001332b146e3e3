package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnection_NodesPreservesOrder(t *testing.T) {
	conn := Connection[Product]{
		Edges: []Edge[Product]{
			{Cursor: "c3", Node: Product{ID: "3"}},
			{Cursor: "c1", Node: Product{ID: "1"}},
			{Cursor: "c1b", Node: Product{ID: "1"}},
		},
	}

	nodes := conn.Nodes()

	require.Len(t, nodes, 3)
	assert.Equal(t, "3", nodes[0].ID)
	assert.Equal(t, "1", nodes[1].ID)
	assert.Equal(t, "1", nodes[2].ID)
}

func TestConnection_NodesEmpty(t *testing.T) {
	nodes := Connection[Collection]{}.Nodes()

	assert.NotNil(t, nodes)
	assert.Empty(t, nodes)
}

func TestProductResponse_Decode(t *testing.T) {
	body := `{
		"shop": {
			"products": {
				"pageInfo": {"hasNextPage": true, "hasPreviousPage": false},
				"edges": [
					{"cursor": "a", "node": {"id": "p1", "title": "Cat",
						"variants": {"edges": [{"cursor": "v", "node": {"id": "v1", "price": {"amount": "9.99", "currencyCode": "CAD"}}}]}}}
				]
			}
		}
	}`

	var resp ShopProductsResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotNil(t, resp.Shop)

	assert.True(t, resp.Shop.Products.PageInfo.HasNextPage)
	products := resp.Shop.Products.Nodes()
	require.Len(t, products, 1)
	variants := products[0].VariantNodes()
	require.Len(t, variants, 1)
	assert.Equal(t, "9.99", variants[0].Price.Amount)
	assert.Empty(t, products[0].ImageNodes())
}

func TestShopProductsResponse_MissingShop(t *testing.T) {
	var resp ShopProductsResponse
	require.NoError(t, json.Unmarshal([]byte(`{}`), &resp))

	assert.Nil(t, resp.Shop)
}

func TestProductResponse_NullProduct(t *testing.T) {
	var resp ProductResponse
	require.NoError(t, json.Unmarshal([]byte(`{"product": null}`), &resp))

	assert.Nil(t, resp.Product)
}
