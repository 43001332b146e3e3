package cli

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lablabs/storefront-client/internal/metrics"
	"github.com/lablabs/storefront-client/internal/routes"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve products and collections over a read-only HTTP gateway",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, logger, err := newStorefrontClient(os.Stdout)
			if err != nil {
				return err
			}

			metricsDenylist := []string{}
			if len(viper.GetString("metrics_denylist")) > 0 {
				metricsDenylist = strings.Split(viper.GetString("metrics_denylist"), ",")
			}
			deniedMetricsSet, err := metrics.BuildDeniedMetricsSet(metricsDenylist)
			if err != nil {
				return err
			}
			m := metrics.MustRegisterMetrics(deniedMetricsSet)
			logger.WithField("metricsDenylist", metricsDenylist).Info("Metrics registered successfully")

			gin.SetMode(gin.ReleaseMode)
			router := routes.NewRouter(c, m, logger, routes.Settings{
				MetricsPath: viper.GetString("metrics_path"),
				Concurrency: viper.GetInt("concurrency"),
			})
			return routes.RunGateway(router, viper.GetString("listen"), logger)
		},
	}

	flags := cmd.Flags()

	flags.String("listen", ":8080", "listen on addr:port ( default :8080), omit addr to listen on all interfaces")
	viper.BindEnv("listen")
	viper.SetDefault("listen", ":8080")

	flags.String("metrics_path", "/metrics", "path for metrics, default /metrics")
	viper.BindEnv("metrics_path")
	viper.SetDefault("metrics_path", "/metrics")

	flags.String("metrics_denylist", "", "metrics to not expose, comma delimited list")
	viper.BindEnv("metrics_denylist")
	viper.SetDefault("metrics_denylist", "")

	viper.BindPFlags(flags)
	return cmd
}
