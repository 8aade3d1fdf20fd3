package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nutrirx/DrugFood-Intelligence/internal/config"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/logging"
	httpiface "github.com/nutrirx/DrugFood-Intelligence/internal/interfaces/http"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the interaction prediction API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := Bootstrap(ctx, configPath, true)
			if err != nil {
				return err
			}
			defer app.Close()

			if configPath != "" {
				if _, err := config.Watch(configPath, func(next *config.Config) {
					app.Service.SetOverrideProbability(next.Fallback.OverrideProbability)
					app.Log.Info("configuration reloaded",
						logging.Float64("override_probability", next.Fallback.OverrideProbability))
				}); err != nil {
					app.Log.Warn("config watch unavailable", logging.Err(err))
				}
			}

			router := httpiface.NewRouter(app.Service, app.Metrics, app.Log)
			server := httpiface.NewServer(app.Config.Server, router, app.Log)

			errCh := make(chan error, 1)
			go func() { errCh <- server.Start() }()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-stop:
				app.Log.Info("signal received, shutting down", logging.String("signal", sig.String()))
				return server.Shutdown(context.Background())
			}
		},
	}
}
