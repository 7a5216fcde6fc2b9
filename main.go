package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-state/internal"
	"github.com/rocketscienceinc/tictactoe-state/internal/config"
	"github.com/rocketscienceinc/tictactoe-state/transport/cli"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the command tree.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	level := initLevel(conf)
	logger := initLogger(os.Stderr, conf, level)

	if err := app.RunApp(logger, level, conf, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

func initLevel(conf *config.Config) *slog.LevelVar {
	level, err := cli.ParseLevel(conf.LogLevel)
	if err != nil {
		panic(fmt.Errorf("failed to parse log level: %w", err))
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(level)

	return levelVar
}

// initialize logger. stdout is kept for command output.
func initLogger(out io.Writer, conf *config.Config, level *slog.LevelVar) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}

	if conf.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(out, options))
	}

	return slog.New(slog.NewJSONHandler(out, options))
}
