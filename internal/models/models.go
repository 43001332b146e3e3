package models

// PageInfo describes the position of a connection page.
type PageInfo struct {
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Edge wraps a node with its pagination cursor.
type Edge[T any] struct {
	Cursor string `json:"cursor"`
	Node   T      `json:"node"`
}

// Connection is the GraphQL edges/node pagination shape.
type Connection[T any] struct {
	Edges    []Edge[T] `json:"edges"`
	PageInfo PageInfo  `json:"pageInfo"`
}

// Nodes returns the edge nodes in the order the server returned them.
// Cursors are dropped. A connection without edges yields an empty, non-nil slice.
func (c Connection[T]) Nodes() []T {
	nodes := make([]T, 0, len(c.Edges))
	for _, edge := range c.Edges {
		nodes = append(nodes, edge.Node)
	}
	return nodes
}

// MoneyV2 is an amount with its currency.
type MoneyV2 struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// Image represents a product or collection image.
type Image struct {
	ID      string `json:"id,omitempty"`
	URL     string `json:"url,omitempty"`
	AltText string `json:"altText,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

// ProductOption is a product option such as size or color.
type ProductOption struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// SelectedOption is the option value a variant carries.
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductVariant is a purchasable variant of a product.
type ProductVariant struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	SKU              string           `json:"sku,omitempty"`
	AvailableForSale bool             `json:"availableForSale"`
	Price            MoneyV2          `json:"price"`
	SelectedOptions  []SelectedOption `json:"selectedOptions,omitempty"`
	Image            *Image           `json:"image,omitempty"`
}

// Product is a storefront product as returned by the API.
type Product struct {
	ID              string                     `json:"id"`
	Title           string                     `json:"title"`
	Handle          string                     `json:"handle,omitempty"`
	Description     string                     `json:"description,omitempty"`
	DescriptionHTML string                     `json:"descriptionHtml,omitempty"`
	Vendor          string                     `json:"vendor,omitempty"`
	ProductType     string                     `json:"productType,omitempty"`
	Tags            []string                   `json:"tags,omitempty"`
	CreatedAt       string                     `json:"createdAt,omitempty"`
	UpdatedAt       string                     `json:"updatedAt,omitempty"`
	Options         []ProductOption            `json:"options,omitempty"`
	Images          Connection[Image]          `json:"images"`
	Variants        Connection[ProductVariant] `json:"variants"`
}

// VariantNodes unwraps the variants connection.
func (p Product) VariantNodes() []ProductVariant { return p.Variants.Nodes() }

// ImageNodes unwraps the images connection.
func (p Product) ImageNodes() []Image { return p.Images.Nodes() }

// Collection is a storefront collection as returned by the API.
type Collection struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Handle          string `json:"handle,omitempty"`
	Description     string `json:"description,omitempty"`
	DescriptionHTML string `json:"descriptionHtml,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
	Image           *Image `json:"image,omitempty"`
}

// GraphQLErrorLocation points at the offending position in the query text.
type GraphQLErrorLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// GraphQLErrorEntry is one element of a response's errors array.
type GraphQLErrorEntry struct {
	Message    string                 `json:"message"`
	Locations  []GraphQLErrorLocation `json:"locations,omitempty"`
	Path       []interface{}          `json:"path,omitempty"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

// ShopProductsResponse is the data of a shop.products query. Shop is nil
// when the response carried no shop object.
type ShopProductsResponse struct {
	Shop *struct {
		Products Connection[Product] `json:"products"`
	} `json:"shop"`
}

// ShopCollectionsResponse is the data of a shop.collections query.
type ShopCollectionsResponse struct {
	Shop *struct {
		Collections Connection[Collection] `json:"collections"`
	} `json:"shop"`
}

// ProductResponse is the data of a single product query. Product is nil when
// the id does not resolve.
type ProductResponse struct {
	Product *Product `json:"product"`
}

// CollectionResponse is the data of a single collection query.
type CollectionResponse struct {
	Collection *Collection `json:"collection"`
}
