package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/erpgrid/internal/web"
	"github.com/spf13/cobra"
)

func newServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			cfg, err := rootOpts.loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return f.Fail(err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc, closeFn, err := openService(ctx, cfg)
			if err != nil {
				return f.Fail(err)
			}
			defer closeFn()

			slog.Info("configuration loaded",
				"addr", cfg.Server.Addr(),
				"database", cfg.Database.Enabled(),
				"rate_limit_enabled", cfg.Rate.Enabled,
			)
			for _, g := range svc.ListPagesByGroup() {
				slog.Debug("page group", "group", g.Group, "pages", len(g.Pages))
			}

			server := web.NewServer(svc, *cfg)
			errCh := make(chan error, 1)
			go func() { errCh <- server.Start() }()

			select {
			case err := <-errCh:
				if err != nil {
					return f.Fail(err)
				}
				return nil
			case <-ctx.Done():
			}

			slog.Info("shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				slog.Error("shutdown error", "error", err)
				return &ExitError{Code: ExitFailure, Err: err}
			}
			<-errCh
			slog.Info("server stopped")
			return nil
		},
	}
}
