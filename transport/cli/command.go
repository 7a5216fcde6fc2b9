package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-state/internal/config"
	"github.com/rocketscienceinc/tictactoe-state/internal/entity"
)

type stateUseCase interface {
	Check(ctx context.Context, cells []string) (*entity.Evaluation, error)
}

type handler struct {
	logger  *slog.Logger
	level   *slog.LevelVar
	useCase stateUseCase
}

// Root - builds the command tree. level may be nil, in which case --log-level is ignored.
func Root(logger *slog.Logger, level *slog.LevelVar, conf *config.Config, useCase stateUseCase) *cobra.Command {
	h := &handler{
		logger:  logger.With("component", "cli"),
		level:   level,
		useCase: useCase,
	}

	root := &cobra.Command{
		Use:   "tictactoe-state",
		Short: "Classify tic-tac-toe boards",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: h.applyLogLevel,
	}

	root.PersistentFlags().String("log-level", conf.LogLevel, "Log level (debug, info, warn, error)")

	root.AddCommand(h.check(conf))
	root.AddCommand(h.lines())

	return root
}

func (that *handler) applyLogLevel(cmd *cobra.Command, _ []string) error {
	if that.level == nil {
		return nil
	}

	value, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("could not read log level: %w", err)
	}

	level, err := ParseLevel(value)
	if err != nil {
		return err
	}

	that.level.Set(level)

	return nil
}

func (that *handler) check(conf *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check cells...",
		Short: "Print the state of a board",
		Long: "Cells are given either as nine arguments or as one comma separated argument, " +
			"in row-major order. X and O are marks; _, . and - stand for an empty cell " +
			"(an empty item is also empty in the comma separated form).",
		Example: "  tictactoe-state check X O X X O O _ _ _\n  tictactoe-state check 'X,X,X,O,O,,,,'",
		Args:    cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			log := that.logger.With("method", "check")

			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("could not read format: %w", err)
			}

			if err = config.ValidateFormat(format); err != nil {
				return err
			}

			explain, err := cmd.Flags().GetBool("explain")
			if err != nil {
				return fmt.Errorf("could not read explain: %w", err)
			}

			evaluation, err := that.useCase.Check(cmd.Context(), SplitCells(args))
			if err != nil {
				log.Debug("check failed", "args", args, "error", err)
				return fmt.Errorf("could not check board: %w", err)
			}

			return render(cmd.OutOrStdout(), evaluation, format, explain)
		},
	}

	cmd.Flags().StringP("format", "f", conf.OutputFormat, "Output format (label, state, json)")
	cmd.Flags().BoolP("explain", "e", false, "Print the winning line when there is one")

	return cmd
}

func (that *handler) lines() *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "Print the winning lines in scan order",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, line := range entity.WinLines {
				if _, err := fmt.Fprintln(out, formatLine(line)); err != nil {
					return fmt.Errorf("could not write line: %w", err)
				}
			}

			return nil
		},
	}
}

// SplitCells - turns command-line arguments into textual cells.
func SplitCells(args []string) []string {
	if len(args) == 1 && strings.Contains(args[0], ",") {
		args = strings.Split(args[0], ",")
	}

	cells := make([]string, 0, len(args))
	for _, arg := range args {
		cells = append(cells, normalizeCell(arg))
	}

	return cells
}

func normalizeCell(arg string) string {
	switch value := strings.TrimSpace(arg); value {
	case "_", ".", "-":
		return entity.EmptyCell
	default:
		return value
	}
}

func render(out io.Writer, evaluation *entity.Evaluation, format string, explain bool) error {
	var err error

	switch format {
	case config.FormatJSON:
		err = json.NewEncoder(out).Encode(evaluation)
	case config.FormatState:
		_, err = fmt.Fprintln(out, evaluation.State.String())
	default:
		_, err = fmt.Fprintln(out, evaluation.Label)
	}

	if err != nil {
		return fmt.Errorf("could not write result: %w", err)
	}

	if explain && format != config.FormatJSON && evaluation.Line != nil {
		if _, err = fmt.Fprintf(out, "winning line: %s\n", formatLine(*evaluation.Line)); err != nil {
			return fmt.Errorf("could not write result: %w", err)
		}
	}

	return nil
}

func formatLine(line entity.Line) string {
	return fmt.Sprintf("%d %d %d", line[0], line[1], line[2])
}
