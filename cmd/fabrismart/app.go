package main

import (
	"context"
	"fmt"

	"github.com/devanap/fabrismart-full/internal/config"
	"github.com/devanap/fabrismart-full/internal/logger"
	"github.com/devanap/fabrismart-full/internal/repository"
	"github.com/devanap/fabrismart-full/internal/server"
	"github.com/devanap/fabrismart-full/internal/service"
	"github.com/rs/zerolog"
)

// app holds everything a command needs once configuration is loaded.
type app struct {
	cfg           *config.Config
	loggerService *logger.LoggerService
	log           zerolog.Logger
	server        *server.Server
	services      *service.Services
}

// bootstrap loads config, builds the logger and opens the store (ensuring
// its schema), then wires repositories and services.
func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger service: %w", err)
	}

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		loggerService.Shutdown()
		return nil, fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		_ = srv.Close()
		loggerService.Shutdown()
		return nil, fmt.Errorf("could not create services: %w", err)
	}

	return &app{
		cfg:           cfg,
		loggerService: loggerService,
		log:           log,
		server:        srv,
		services:      services,
	}, nil
}

// context attaches the root logger so services can log through zerolog.Ctx.
func (a *app) context(parent context.Context) context.Context {
	return a.log.WithContext(parent)
}

// close releases the store and flushes telemetry for one-shot commands.
func (a *app) close() {
	if err := a.server.Close(); err != nil {
		a.log.Error().Err(err).Msg("failed to close server resources")
	}
	a.loggerService.Shutdown()
}
