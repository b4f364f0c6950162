package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

var (
	version = "v0.1.0-default"
	commit  = ""

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}
)

func main() {
	initLogging(false)

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:            "textlab",
		Version:         fmt.Sprintf("%s (%s)", version, commit),
		Compiled:        time.Now(),
		HideHelpCommand: true,
		Usage:           "AI text detector demo built on perplexity and burstiness heuristics",
		Flags: []cli.Flag{
			debugFlag,
		},
		Commands: []*cli.Command{
			serveCmd,
			analyzeCmd,
		},
		Before: func(c *cli.Context) error {
			if c.Bool(debugFlag.Name) {
				initLogging(true)
			}
			return nil
		},
	}
}

func initLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

// stageLogger forwards pipeline stage logs to the process logger.
type stageLogger struct{}

func (stageLogger) Log(level, stage, message, detail string) {
	attrs := []any{"stage", stage, "detail", detail}
	switch level {
	case "ERROR":
		slog.Error(message, attrs...)
	case "WARN":
		slog.Warn(message, attrs...)
	default:
		slog.Debug(message, attrs...)
	}
}

func encode(format string, v any) error {
	if format == formatYAML || format == "yml" {
		return yaml.NewEncoder(os.Stdout).Encode(v)
	}
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
