// Package storefront fetches products and collections from a commerce
// platform's Storefront GraphQL API.
package storefront

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/lablabs/storefront-client/internal/auth"
	"github.com/lablabs/storefront-client/internal/client"
	"github.com/lablabs/storefront-client/internal/config"
	"github.com/lablabs/storefront-client/internal/models"
	"github.com/lablabs/storefront-client/internal/query"
)

const (
	// DefaultPageSize is the number of list results requested per call.
	DefaultPageSize = 20
	// MaxPageSize is the largest page the API serves.
	MaxPageSize = 250
)

// Client is a read-only Storefront API client. It is safe for concurrent use.
type Client struct {
	config    config.Config
	transport client.Transport
	logger    logrus.FieldLogger
	pageSize  int
}

type options struct {
	transport client.Transport
	factory   client.Factory
	logger    logrus.FieldLogger
	limiter   *rate.Limiter
	pageSize  int
}

// Option configures a Client.
type Option func(*options)

// WithTransport injects a ready transport. It takes precedence over WithTransportFactory.
func WithTransport(t client.Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithTransportFactory replaces the factory used to build the transport.
func WithTransportFactory(f client.Factory) Option {
	return func(o *options) { o.factory = f }
}

// WithLogger sets the logger for request tracing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

// WithLimiter throttles outbound requests of the factory-built transport.
func WithLimiter(l *rate.Limiter) Option {
	return func(o *options) { o.limiter = l }
}

// WithPageSize sets the list page size, clamped to [1, MaxPageSize].
func WithPageSize(n int) Option {
	return func(o *options) { o.pageSize = n }
}

// New creates a Client for cfg. Unless a transport is injected, one is built
// by the factory with the endpoint URL and the storefront headers.
func New(cfg config.Config, opts ...Option) (*Client, error) {
	o := options{factory: client.DefaultFactory, pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		o.logger = discard
	}

	transport := o.transport
	if transport == nil {
		var err error
		transport, err = o.factory(client.Options{
			URL:     cfg.EndpointURL(),
			Headers: Headers(cfg),
			Limiter: o.limiter,
			Logger:  o.logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create transport: %w", err)
		}
	}

	return &Client{
		config:    cfg,
		transport: transport,
		logger:    o.logger,
		pageSize:  clampPageSize(o.pageSize),
	}, nil
}

// Headers returns the request headers for cfg.
func Headers(cfg config.Config) map[string]string {
	return map[string]string{
		"Content-Type":  "application/json",
		"Accept":        "application/json",
		"Authorization": auth.BasicAuthorization(cfg.StorefrontAccessToken()),
	}
}

func clampPageSize(n int) int {
	switch {
	case n < 1:
		return DefaultPageSize
	case n > MaxPageSize:
		return MaxPageSize
	default:
		return n
	}
}

// Config returns the client configuration.
func (c *Client) Config() config.Config { return c.config }

// Transport returns the transport requests are executed on.
func (c *Client) Transport() client.Transport { return c.transport }

// PageSize returns the effective list page size.
func (c *Client) PageSize() int { return c.pageSize }

// FetchAllProducts returns the first page of the shop's products in server order.
func (c *Client) FetchAllProducts(ctx context.Context) ([]models.Product, error) {
	var resp models.ShopProductsResponse
	if err := c.execute(ctx, allProductsQuery(c.pageSize), &resp); err != nil {
		return nil, err
	}
	if resp.Shop == nil {
		return nil, &FetchError{Operation: "FetchAllProducts", Err: ErrMissingData}
	}
	return resp.Shop.Products.Nodes(), nil
}

// FetchProduct returns the product with the given global id.
func (c *Client) FetchProduct(ctx context.Context, id string) (*models.Product, error) {
	if id == "" {
		return nil, &FetchError{Operation: "FetchProduct", Err: ErrEmptyID}
	}
	var resp models.ProductResponse
	if err := c.execute(ctx, productQuery(id), &resp); err != nil {
		return nil, err
	}
	if resp.Product == nil {
		return nil, &NotFoundError{Kind: "product", ID: id}
	}
	return resp.Product, nil
}

// FetchAllCollections returns the first page of the shop's collections in server order.
func (c *Client) FetchAllCollections(ctx context.Context) ([]models.Collection, error) {
	var resp models.ShopCollectionsResponse
	if err := c.execute(ctx, allCollectionsQuery(c.pageSize), &resp); err != nil {
		return nil, err
	}
	if resp.Shop == nil {
		return nil, &FetchError{Operation: "FetchAllCollections", Err: ErrMissingData}
	}
	return resp.Shop.Collections.Nodes(), nil
}

// FetchCollection returns the collection with the given global id.
func (c *Client) FetchCollection(ctx context.Context, id string) (*models.Collection, error) {
	if id == "" {
		return nil, &FetchError{Operation: "FetchCollection", Err: ErrEmptyID}
	}
	var resp models.CollectionResponse
	if err := c.execute(ctx, collectionQuery(id), &resp); err != nil {
		return nil, err
	}
	if resp.Collection == nil {
		return nil, &NotFoundError{Kind: "collection", ID: id}
	}
	return resp.Collection, nil
}

func (c *Client) execute(ctx context.Context, q *query.Query, out interface{}) error {
	if err := q.Validate(); err != nil {
		return &FetchError{Operation: q.Name, Err: err}
	}
	c.logger.WithFields(logrus.Fields{
		"operation": q.Name,
		"endpoint":  c.config.EndpointURL(),
	}).Debug("Executing storefront query")

	if err := c.transport.Execute(ctx, q, out); err != nil {
		return &FetchError{Operation: q.Name, Err: err}
	}
	return nil
}
