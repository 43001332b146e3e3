package storefront

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionQuery(t *testing.T) {
	q := collectionQuery("369312584")

	expected := `query FetchCollection($id: ID!) {
  collection(id: $id) {
    id
    title
    handle
    description
    descriptionHtml
    updatedAt
    image {
      id
      url
      altText
      width
      height
    }
  }
}`
	assert.Equal(t, expected, q.String())
	assert.Equal(t, map[string]interface{}{"id": "369312584"}, q.VariableValues())
	require.NoError(t, q.Validate())
}

func TestAllProductsQuery(t *testing.T) {
	q := allProductsQuery(20)
	text := q.String()

	require.NoError(t, q.Validate())
	assert.Equal(t, map[string]interface{}{"first": 20}, q.VariableValues())
	assert.True(t, strings.HasPrefix(text, "query FetchAllProducts($first: Int!) {\n  shop {\n    products(first: $first) {\n"))
	assert.Contains(t, text, "images(first: 250) {")
	assert.Contains(t, text, "variants(first: 250) {")
	assert.Contains(t, text, "selectedOptions {")
	assert.Contains(t, text, "hasPreviousPage")
	assert.Contains(t, text, "cursor")
}

func TestAllCollectionsQuery(t *testing.T) {
	q := allCollectionsQuery(5)

	require.NoError(t, q.Validate())
	assert.Contains(t, q.String(), "collections(first: $first) {")
	assert.Equal(t, 5, q.VariableValues()["first"])
}

func TestProductQuery(t *testing.T) {
	q := productQuery("7857989384")

	require.NoError(t, q.Validate())
	assert.True(t, strings.HasPrefix(q.String(), "query FetchProduct($id: ID!) {\n  product(id: $id) {\n    id\n"))
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Kind: "product", ID: "1"}

	assert.Equal(t, `product "1" not found`, err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
}
