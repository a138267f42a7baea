package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/geo-server/internal/config"
	"github.com/zestagio/geo-server/internal/logger"
	"github.com/zestagio/geo-server/internal/resources"
	"github.com/zestagio/geo-server/internal/server"
	serverdebug "github.com/zestagio/geo-server/internal/server-debug"
)

var configPath = flag.String("config", "configs/config.toml", "Path to config file")

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.ParseAndValidate(*configPath)
	if err != nil {
		return fmt.Errorf("parse and validate config %q: %v", *configPath, err)
	}

	logger.MustInit(
		logger.NewOptions(
			cfg.Log.Level,
			logger.WithSentryEnv(cfg.Global.Env),
			logger.WithSentryDsn(cfg.Sentry.Dsn),
			logger.WithProductionMode(cfg.Global.IsProduction()),
		),
	)
	defer logger.Sync()

	lg := zap.L().Named("main")

	if cfg.Global.IsProduction() && cfg.Servers.Public.StaticRoot == "." {
		lg.Warn("static root is the working directory, every file in it is public")
	}

	// Resources.
	catalog, err := resources.New(resources.NewOptions(
		zap.L().Named("resources"),
		cfg.Servers.Public.StaticRoot,
		resourcesFromConfig(cfg.Servers.Public.Resources),
	))
	if err != nil {
		return fmt.Errorf("create resources catalog: %v", err)
	}
	catalog.Probe()

	// Servers.
	publicSwagger, err := server.GetSwagger(catalog.Paths()...)
	if err != nil {
		return fmt.Errorf("get public swagger: %v", err)
	}

	srvPublic, err := initServerPublic(
		cfg.Global.IsProduction(),
		cfg.Servers.Public.Addr,
		cfg.Servers.Public.AllowOrigins,
		cfg.Servers.Public.StaticRoot,
		catalog,
	)
	if err != nil {
		return fmt.Errorf("init public server: %v", err)
	}

	srvDebug, err := serverdebug.New(serverdebug.NewOptions(
		cfg.Servers.Debug.Addr,
		publicSwagger,
		catalog,
	))
	if err != nil {
		return fmt.Errorf("init debug server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	// Run servers.
	eg.Go(func() error { return srvPublic.Run(ctx) })
	eg.Go(func() error { return srvDebug.Run(ctx) })

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}

func resourcesFromConfig(cfg []config.ResourceConfig) []resources.Resource {
	result := make([]resources.Resource, 0, len(cfg))
	for _, r := range cfg {
		result = append(result, resources.Resource{
			Path:        r.Path,
			File:        r.File,
			ContentType: r.ContentType,
		})
	}
	return result
}
