package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/app"
	"resume-builder/internal/config"
	"resume-builder/internal/logging"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		logging.New(config.LogConfig{}).Error("loading config failed", "error", err)
		os.Exit(1)
	}
	log := logging.New(cfg.Log)

	a, err := app.New(rootCtx, cfg, log)
	if err != nil {
		log.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	srv := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             16 * 1024 * 1024,
	})
	httpadapter.NewHandler(a.Orchestrator, a.Exporter, log).Register(srv)

	group, gctx := errgroup.WithContext(rootCtx)

	group.Go(func() error {
		log.Info("editor server listening", "addr", cfg.Server.Addr(), "storage", cfg.Storage.Driver)
		if err := srv.Listen(cfg.Server.Addr()); err != nil {
			log.Error("editor server failed", "error", err)
			return err
		}
		log.Info("editor server stopped")
		return nil
	})

	group.Go(func() error {
		<-gctx.Done()
		log.Info("signal received, graceful shutdown...")
		return srv.ShutdownWithTimeout(10 * time.Second)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
