package storefront

import "github.com/lablabs/storefront-client/internal/query"

// nestedPageSize bounds the variant and image connections inside a product.
const nestedPageSize = 250

func imageFields() query.SelectionSet {
	return query.Fields("id", "url", "altText", "width", "height")
}

func variantFields() query.SelectionSet {
	return query.SelectionSet{
		query.Field{Name: "id"},
		query.Field{Name: "title"},
		query.Field{Name: "sku"},
		query.Field{Name: "availableForSale"},
		query.Object("price", query.Fields("amount", "currencyCode")),
		query.Object("selectedOptions", query.Fields("name", "value")),
		query.Object("image", imageFields()),
	}
}

func productFields() query.SelectionSet {
	first := []query.Argument{{Name: "first", Value: query.Int(nestedPageSize)}}
	return append(
		query.Fields(
			"id", "title", "handle", "description", "descriptionHtml",
			"vendor", "productType", "tags", "createdAt", "updatedAt",
		),
		query.Object("options", query.Fields("id", "name", "values")),
		query.Connection("images", first, imageFields()),
		query.Connection("variants", first, variantFields()),
	)
}

func collectionFields() query.SelectionSet {
	return append(
		query.Fields("id", "title", "handle", "description", "descriptionHtml", "updatedAt"),
		query.Object("image", imageFields()),
	)
}

// shopConnectionQuery builds `shop { <connection>(first: $first) { ... } }`.
func shopConnectionQuery(name, connection string, pageSize int, node query.SelectionSet) *query.Query {
	return &query.Query{
		Name:      name,
		Variables: []query.Variable{{Name: "first", Type: "Int!", Value: pageSize}},
		Selections: query.SelectionSet{
			query.Object("shop", query.SelectionSet{
				query.Connection(connection, []query.Argument{{Name: "first", Value: query.Var("first")}}, node),
			}),
		},
	}
}

// nodeQuery builds `<root>(id: $id) { ... }`.
func nodeQuery(name, root, id string, fields query.SelectionSet) *query.Query {
	return &query.Query{
		Name:      name,
		Variables: []query.Variable{{Name: "id", Type: "ID!", Value: id}},
		Selections: query.SelectionSet{
			query.Field{
				Name:       root,
				Arguments:  []query.Argument{{Name: "id", Value: query.Var("id")}},
				Selections: fields,
			},
		},
	}
}

func allProductsQuery(pageSize int) *query.Query {
	return shopConnectionQuery("FetchAllProducts", "products", pageSize, productFields())
}

func productQuery(id string) *query.Query {
	return nodeQuery("FetchProduct", "product", id, productFields())
}

func allCollectionsQuery(pageSize int) *query.Query {
	return shopConnectionQuery("FetchAllCollections", "collections", pageSize, collectionFields())
}

func collectionQuery(id string) *query.Query {
	return nodeQuery("FetchCollection", "collection", id, collectionFields())
}
