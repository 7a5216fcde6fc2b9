package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-state/internal/config"
	"github.com/rocketscienceinc/tictactoe-state/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-state/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-state/transport/cli"
)

// RunApp - wires the evaluator into the command tree and runs it with args.
func RunApp(logger *slog.Logger, level *slog.LevelVar, conf *config.Config, args []string) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	evaluator := tictactoe.NewEvaluator()
	stateChecker := usecase.NewStateChecker(logger, evaluator)

	root := cli.Root(logger, level, conf, stateChecker)
	root.SetArgs(args)

	log.Debug("running command", "args", args)

	if err := root.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
