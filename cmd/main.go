package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"greeter/internal/config"
	"greeter/internal/handlers"
	"greeter/internal/logger"
	"greeter/internal/server"
	"greeter/internal/service"
	"greeter/internal/telemetry"
	"greeter/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

// @title        Greeter API
// @version      1.0
// @description  Greetings, templated pages, a form endpoint and a static users API.
// @BasePath     /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "greeter",
		Short:         "Serve greetings, pages and the users API over HTTP",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default configs/config.yml)")
	flags.String("host", config.DefaultHost, "interface to listen on")
	flags.StringP("port", "p", config.DefaultPort, "port to listen on")
	flags.Bool("debug", true, "verbose error reporting")
	flags.String("log-level", config.DefaultLogLevel, "debug | info | warn | error")

	_ = v.BindPFlag("server.host", flags.Lookup("host"))
	_ = v.BindPFlag("server.port", flags.Lookup("port"))
	_ = v.BindPFlag("debug", flags.Lookup("debug"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))

	return cmd
}

func run(cfg config.Config) error {
	log := logger.Get(cfg.Log.Level)

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTelemetry, err := telemetry.Setup(context.Background(), telemetry.Options{
		ServiceName: cfg.Telemetry.ServiceName,
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
	})
	if err != nil {
		log.Errorw("telemetry setup failed", "err", err)
		return err
	}

	renderer, err := views.NewRenderer(cfg.Views.Minify)
	if err != nil {
		log.Errorw("failed to load templates", "err", err)
		return err
	}

	// wire dependencies
	services := service.NewService()
	apiHandler := handlers.NewHandler(services, renderer, log, handlers.Options{
		Debug: cfg.Debug,
		SSL:   cfg.Security.SSL,
	})

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Server, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, shutdownTelemetry, log)
	return nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, sc config.ServerConfig, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("listening", "addr", sc.Addr())
		if err := srv.Run(sc.Host, sc.Port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, shutdownTelemetry telemetry.ShutdownFunc, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
	if err := shutdownTelemetry(ctx); err != nil {
		log.Errorw("telemetry shutdown failed", "err", err)
	}
	_ = log.Sync()
}
