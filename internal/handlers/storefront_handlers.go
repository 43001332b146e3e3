package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lablabs/storefront-client/internal/batch"
	"github.com/lablabs/storefront-client/internal/metrics"
	"github.com/lablabs/storefront-client/internal/models"
)

// Fetcher is the read surface the gateway serves.
type Fetcher interface {
	FetchAllProducts(ctx context.Context) ([]models.Product, error)
	FetchProduct(ctx context.Context, id string) (*models.Product, error)
	FetchAllCollections(ctx context.Context) ([]models.Collection, error)
	FetchCollection(ctx context.Context, id string) (*models.Collection, error)
}

// Storefront serves products and collections from a Fetcher.
type Storefront struct {
	fetcher     Fetcher
	metrics     *metrics.Metrics
	concurrency int
}

// NewStorefront returns handlers backed by fetcher. m may be nil.
func NewStorefront(fetcher Fetcher, m *metrics.Metrics, concurrency int) *Storefront {
	return &Storefront{fetcher: fetcher, metrics: m, concurrency: concurrency}
}

// ListProducts serves the first page of products, or the products named by ?ids=.
func (s *Storefront) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()
	started := time.Now()

	var products []models.Product
	var err error
	op := "FetchAllProducts"
	if ids := idsParam(c); len(ids) > 0 {
		op = "BatchFetchProducts"
		products, err = batch.FetchAll(ctx, ids, s.concurrency, func(ctx context.Context, id string) (models.Product, error) {
			p, err := s.fetcher.FetchProduct(ctx, id)
			if err != nil {
				return models.Product{}, err
			}
			return *p, nil
		})
	} else {
		products, err = s.fetcher.FetchAllProducts(ctx)
	}
	s.metrics.Observe(op, started, len(products), err)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct serves a single product.
func (s *Storefront) GetProduct(c *gin.Context) {
	started := time.Now()
	product, err := s.fetcher.FetchProduct(c.Request.Context(), c.Param("id"))
	s.metrics.Observe("FetchProduct", started, 1, err)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListCollections serves the first page of collections, or the collections named by ?ids=.
func (s *Storefront) ListCollections(c *gin.Context) {
	ctx := c.Request.Context()
	started := time.Now()

	var collections []models.Collection
	var err error
	op := "FetchAllCollections"
	if ids := idsParam(c); len(ids) > 0 {
		op = "BatchFetchCollections"
		collections, err = batch.FetchAll(ctx, ids, s.concurrency, func(ctx context.Context, id string) (models.Collection, error) {
			col, err := s.fetcher.FetchCollection(ctx, id)
			if err != nil {
				return models.Collection{}, err
			}
			return *col, nil
		})
	} else {
		collections, err = s.fetcher.FetchAllCollections(ctx)
	}
	s.metrics.Observe(op, started, len(collections), err)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, collections)
}

// GetCollection serves a single collection.
func (s *Storefront) GetCollection(c *gin.Context) {
	started := time.Now()
	collection, err := s.fetcher.FetchCollection(c.Request.Context(), c.Param("id"))
	s.metrics.Observe("FetchCollection", started, 1, err)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, collection)
}

func idsParam(c *gin.Context) []string {
	raw := c.Query("ids")
	if raw == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
