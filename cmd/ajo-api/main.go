package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/Uchechukwu-Ekezie/mini-ajo/api"
	"github.com/Uchechukwu-Ekezie/mini-ajo/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		host        string
		port        int
		noRateLimit bool
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:   "ajo-api",
		Short: "Ajo HTTP gateway over an in-memory local node",
		Long: `Serves pool queries and development transactions against an in-process
ajo node. State lives in memory and is lost on exit. Signers named in tx
bodies are trusted, so never expose this gateway publicly.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := api.LoadConfig(configPath)
			if err != nil {
				return err
			}

			// flags override the file
			flags := cmd.Flags()
			if flags.Changed("host") {
				cfg.Host = host
			}
			if flags.Changed("port") {
				cfg.Port = port
			}
			if noRateLimit {
				cfg.RateLimit.Enabled = false
			}

			filter, err := log.ParseLogLevel(logLevel)
			if err != nil {
				return err
			}
			logger := log.NewLogger(os.Stdout, log.FilterOption(filter))

			return run(cfg, logger)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the YAML gateway config")
	cmd.Flags().StringVar(&host, "host", "0.0.0.0", "Server host")
	cmd.Flags().IntVar(&port, "port", 8080, "Server port")
	cmd.Flags().BoolVar(&noRateLimit, "no-rate-limit", false, "Disable rate limiting (benchmarks)")
	cmd.Flags().StringVar(&logLevel, "log-level", "*:info", "Log filter as module:level pairs, e.g. api:debug,*:info")

	return cmd
}

func run(cfg *api.Config, logger log.Logger) error {
	server, err := api.NewServer(cfg, metrics.GetCollector(), logger)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("Health check", "url", fmt.Sprintf("http://%s/health", cfg.Addr()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("Server exited")
	return nil
}
