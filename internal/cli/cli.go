package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute initializes and runs the Cobra CLI
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the storefront command tree with its flags bound to viper.
func NewRootCommand() *cobra.Command {

	var cmd = &cobra.Command{
		Use:           "storefront",
		Short:         "Read products and collections from a Storefront GraphQL API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	viper.AutomaticEnv()

	flags := cmd.PersistentFlags()

	flags.String("shop_domain", "", "shop domain without scheme, e.g. shop.myshopify.com")
	viper.BindEnv("shop_domain")

	flags.String("storefront_access_token", "", "storefront access token")
	viper.BindEnv("storefront_access_token")

	flags.String("api_version", "", "storefront API version, defaults to the built-in stable version")
	viper.BindEnv("api_version")

	flags.Int("page_size", 20, "number of results requested by list operations (1-250)")
	viper.BindEnv("page_size")
	viper.SetDefault("page_size", 20)

	flags.Float64("rate_limit", 0, "maximum requests per second, 0 disables limiting")
	viper.BindEnv("rate_limit")
	viper.SetDefault("rate_limit", 0)

	flags.Int("rate_burst", 2, "rate limiter burst size")
	viper.BindEnv("rate_burst")
	viper.SetDefault("rate_burst", 2)

	flags.Int("concurrency", 4, "parallel requests when fetching several ids")
	viper.BindEnv("concurrency")
	viper.SetDefault("concurrency", 4)

	flags.String("log_level", "info", "log level (debug, info, warn, error)")
	viper.BindEnv("log_level")
	viper.SetDefault("log_level", "info")

	flags.String("log_format", "json", "log format (json or text)")
	viper.BindEnv("log_format")
	viper.SetDefault("log_format", "json")

	viper.BindPFlags(flags)

	cmd.AddCommand(newProductsCommand(), newCollectionsCommand(), newServeCommand())
	return cmd
}
