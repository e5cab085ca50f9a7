package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/eoq-calculator/internal/logging"
	"github.com/iwvelando/eoq-calculator/internal/server"
	"github.com/iwvelando/eoq-calculator/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	serverConfigFile string
	serveAddress     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web UI and JSON API",
	Long: `Start the HTTP server with the EOQ web form, the compute and export API
and the version endpoint.

The server reads its own YAML configuration (address, request size limit, gin
mode, logging, defaults and display). A missing file yields the defaults.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serverConfigFile, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	serveCmd.Flags().StringVar(&serveAddress, "address", "", "listen address override, e.g. :8080")
}

func runServe(cmd *cobra.Command, args []string) error {
	const op = "cmd.serve"

	srvCfg, err := server.LoadConfig(serverConfigFile)
	if err != nil {
		return err
	}
	if serveAddress != "" {
		srvCfg.Address = serveAddress
	}

	logger, err := logging.NewLogger(srvCfg.Logging, logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	for _, warning := range srvCfg.App().ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", op),
		)
	}

	httpServer := &http.Server{
		Addr:              srvCfg.Address,
		Handler:           server.NewHandler(logger, srvCfg, Version),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("op", op),
			zap.String("address", srvCfg.Address),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		zap.String("op", op),
	)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
