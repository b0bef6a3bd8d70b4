// Package main wires the HTTP server for the volleyball roster service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/XEXEU22/volleyapp/internal/transport/http/server/handlers-fiber"
	"github.com/XEXEU22/volleyapp/internal/usecase"

	"github.com/XEXEU22/volleyapp/config"
	"github.com/XEXEU22/volleyapp/internal/auth"
	"github.com/XEXEU22/volleyapp/internal/blobstore"
	"github.com/XEXEU22/volleyapp/internal/oracle"
	"github.com/XEXEU22/volleyapp/internal/repository"
	"github.com/XEXEU22/volleyapp/internal/transport/http/middleware"
	"github.com/XEXEU22/volleyapp/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	blob, err := blobstore.New("minio", log, cfg)
	if err != nil {
		log.Errorw("blob store initialization error", "error", err)
		return
	}
	if err := blob.OnStart(ctx); err != nil {
		log.Errorw("blob store start error", "error", err)
		return
	}

	tokens := auth.NewTokens(cfg.Auth)
	oracleClient := oracle.NewOpenAI(log, cfg.Oracle)

	uc := usecase.New(log, ctx, repo, blob, oracleClient, tokens, usecase.Options{
		Timeout:        cfg.HTTP.RequestTimeout,
		TeamSizes:      cfg.Draw.TeamSizes,
		MinPasswordLen: cfg.Auth.MinPasswordLen,
	})

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	handlers_fiber.RegisterRoutes(serv, h, middleware.RequireSession(log, tokens))

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
