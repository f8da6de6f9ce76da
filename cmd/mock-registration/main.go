package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	contract "regsuite/contracts/registration"
	"regsuite/internal/mockservice"
	"regsuite/internal/platform/config"
	"regsuite/internal/platform/logger"
)

const shutdownTimeout = 10 * time.Second

// serveFlags holds the parsed flags for the root command.
type serveFlags struct {
	addr     string
	logLevel string
	latency  time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := config.MockFromEnv()
	flags := serveFlags{}

	root := &cobra.Command{
		Use:   "mock-registration",
		Short: "Serve an in-memory citizen registration service",
		Long: "mock-registration answers POST/GET/DELETE /registration with the status codes " +
			"and feedback bodies of the citizen registration contract " + contract.ContractVersion + ".",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, flags, logger.New(flags.logLevel))
		},
	}

	f := root.Flags()
	f.StringVar(&flags.addr, "addr", defaults.Addr, "Listen address (env MOCK_REGISTRATION_ADDR)")
	f.DurationVar(&flags.latency, "latency", defaults.Latency, "Delay added to every registration response (env MOCK_REGISTRATION_LATENCY)")
	f.StringVar(&flags.logLevel, "log-level", defaults.LogLevel, "Log level: debug, info, warn or error (env LOG_LEVEL)")
	return root
}

// run serves until ctx is cancelled, then shuts the server down gracefully.
func run(ctx context.Context, flags serveFlags, log *slog.Logger) error {
	svc := mockservice.New(
		mockservice.WithLogger(log),
		mockservice.WithLatency(flags.latency),
	)
	srv := &http.Server{
		Addr:              flags.addr,
		Handler:           svc.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting mock registration service",
			"addr", flags.addr,
			"latency", flags.latency,
			"contract_version", contract.ContractVersion,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server gracefully")
		svc.Drain()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		log.Info("server stopped", "records", svc.Len())
		return nil
	})

	return g.Wait()
}
