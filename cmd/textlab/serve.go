package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"textlab/internal/config"
	"textlab/internal/dashboard"
	"textlab/internal/detect"
	"textlab/internal/httpapi"
)

const (
	serverShutdownWaitSeconds = 5
	serverTimeoutSeconds      = 120
)

var (
	hostFlag = &cli.StringFlag{
		Name:  "host",
		Usage: "Interface to bind (overrides TEXTLAB_HOST)",
	}

	portFlag = &cli.StringFlag{
		Name:  "port",
		Usage: "Port on which the server will listen (overrides TEXTLAB_PORT)",
	}

	serveCmd = &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the detector web UI and API",
		Action:  cmdServe,
		Flags: []cli.Flag{
			hostFlag,
			portFlag,
		},
	}
)

func cmdServe(c *cli.Context) error {
	cfg := config.Load()
	if c.IsSet(hostFlag.Name) {
		cfg.Host = c.String(hostFlag.Name)
	}
	if c.IsSet(portFlag.Name) {
		cfg.Port = c.String(portFlag.Name)
	}
	if c.Bool(debugFlag.Name) {
		cfg.DebugMode = true
	}

	builder := dashboard.Builder{Logger: stageLogger{}}
	if cfg.Seed != 0 {
		builder.Sampler = detect.NewSeededSampler(cfg.Seed)
		slog.Info("sampler seeded, runs will be reproducible", "seed", cfg.Seed)
	}

	handler := httpapi.NewHandler(cfg, builder)
	s := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      httpapi.SetupRouter(handler),
		ReadTimeout:  serverTimeoutSeconds * time.Second,
		WriteTimeout: serverTimeoutSeconds * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("error starting server", "error", err)
		}
	}()

	slog.Info("server started", "address", cfg.Addr())

	<-done

	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownWaitSeconds*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil && err != http.ErrServerClosed {
		slog.Error("error shutting down server", "error", err)
	}
	return nil
}
