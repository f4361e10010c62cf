package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/JackWReid/zor/internal/config"
	"github.com/JackWReid/zor/internal/editor"
	"github.com/JackWReid/zor/internal/terminal"
)

func main() {
	configPath := flag.String("config", config.Path(), "path to the TOML config file")
	logPath := flag.String("log", os.Getenv("ZOR_LOG"), "write a debug log to this file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("zor", editor.Version)
		return
	}

	if err := run(*configPath, *logPath, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "zor: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath, filename string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	app := editor.NewApp(cfg, logger)
	if filename != "" {
		if err := app.Open(filename); err != nil {
			return err
		}
	}

	t, err := terminal.New()
	if err != nil {
		return err
	}
	defer t.Restore()

	return app.Run(t)
}

// newLogger returns a text logger writing to path, or a discarding logger
// when path is empty.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
