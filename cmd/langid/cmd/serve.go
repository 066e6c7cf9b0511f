package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MeKo-Tech/langid/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP detection server",
	Long: `Start an HTTP server exposing language detection as a JSON API:
POST /detect, POST /confidence, GET /languages, GET /health, a WebSocket
stream on /ws and Prometheus metrics on /metrics.

Examples:
  langid serve
  langid serve --host 0.0.0.0 --port 9090`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("host", "127.0.0.1", "host to bind to")
	serveCmd.Flags().Int("port", 8080, "port to listen on")
	serveCmd.Flags().Int("rate-limit", 0, "requests per minute per client (0 = unlimited)")

	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("server.rate_limit_per_min", serveCmd.Flags().Lookup("rate-limit"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	detector, err := buildDetector(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(detector, cfg.Server).Start(ctx)
}
