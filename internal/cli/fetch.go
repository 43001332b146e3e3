package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lablabs/storefront-client/internal/batch"
	"github.com/lablabs/storefront-client/internal/config"
	"github.com/lablabs/storefront-client/internal/limiter"
	"github.com/lablabs/storefront-client/internal/logging"
	"github.com/lablabs/storefront-client/internal/models"
	"github.com/lablabs/storefront-client/internal/storefront"
)

func newStorefrontClient(logOut io.Writer) (*storefront.Client, *logrus.Logger, error) {
	logger := logging.InitializeLogger(viper.GetString("log_level"), viper.GetString("log_format"))
	logger.SetOutput(logOut)

	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return nil, nil, err
	}

	c, err := storefront.New(cfg,
		storefront.WithLogger(logger),
		storefront.WithPageSize(viper.GetInt("page_size")),
		storefront.WithLimiter(limiter.New(viper.GetFloat64("rate_limit"), viper.GetInt("rate_burst"))),
	)
	if err != nil {
		return nil, nil, err
	}
	return c, logger, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newProductsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "products [id...]",
		Short: "Fetch the first page of products, or the products with the given ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newStorefrontClient(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			switch len(args) {
			case 0:
				products, err := c.FetchAllProducts(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), products)
			case 1:
				product, err := c.FetchProduct(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), product)
			default:
				products, err := batch.FetchAll(ctx, args, viper.GetInt("concurrency"), func(ctx context.Context, id string) (models.Product, error) {
					p, err := c.FetchProduct(ctx, id)
					if err != nil {
						return models.Product{}, err
					}
					return *p, nil
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), products)
			}
		},
	}
}

func newCollectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "collections [id...]",
		Short: "Fetch the first page of collections, or the collections with the given ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newStorefrontClient(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			switch len(args) {
			case 0:
				collections, err := c.FetchAllCollections(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), collections)
			case 1:
				collection, err := c.FetchCollection(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), collection)
			default:
				collections, err := batch.FetchAll(ctx, args, viper.GetInt("concurrency"), func(ctx context.Context, id string) (models.Collection, error) {
					col, err := c.FetchCollection(ctx, id)
					if err != nil {
						return models.Collection{}, err
					}
					return *col, nil
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), collections)
			}
		},
	}
}
