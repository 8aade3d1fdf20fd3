// Command apiserver runs the drug-food interaction prediction API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/nutrirx/DrugFood-Intelligence/internal/interfaces/cli"
	httpiface "github.com/nutrirx/DrugFood-Intelligence/internal/interfaces/http"
)

func main() {
	configPath := flag.String("config", "", "path to config file (YAML)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx := context.Background()

	app, err := cli.Bootstrap(ctx, configPath, true)
	if err != nil {
		return err
	}
	defer app.Close()

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
}
