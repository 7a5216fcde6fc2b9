package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-state/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-state/internal/config"
	"github.com/rocketscienceinc/tictactoe-state/internal/entity"
	"github.com/rocketscienceinc/tictactoe-state/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-state/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-state/testing/suite"
)

func execute(t *testing.T, level *slog.LevelVar, conf *config.Config, args ...string) (string, error) {
	t.Helper()

	ctx, st := suite.New(t)

	checker := usecase.NewStateChecker(st.Logger, tictactoe.NewEvaluator())
	root := Root(st.Logger, level, conf, checker)

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)

	return out.String(), err
}

func defaultConfig() *config.Config {
	return &config.Config{LogLevel: "info", LogFormat: "json", OutputFormat: config.FormatLabel}
}

func TestCheckCommand(t *testing.T) {
	t.Run("Prints the label for positional cells", func(t *testing.T) {
		// When: checking a board with one more X than O
		out, err := execute(t, nil, defaultConfig(), "check", "X", "O", "X", "X", "O", "O", "_", "_", "_")

		// Then: O is to play
		require.NoError(t, err)
		assert.Equal(t, "O to play\n", out)
	})

	t.Run("Accepts a comma separated board", func(t *testing.T) {
		// When: checking an empty board in comma form
		out, err := execute(t, nil, defaultConfig(), "check", ",,,,,,,,")

		// Then: X is to play
		require.NoError(t, err)
		assert.Equal(t, "X to play\n", out)
	})

	t.Run("Prints the state name", func(t *testing.T) {
		// When: checking an empty board with --format state
		out, err := execute(t, nil, defaultConfig(), "check", "--format", "state", ".", ".", ".", ".", ".", ".", ".", ".", ".")

		// Then: the distinct awaiting state is printed
		require.NoError(t, err)
		assert.Equal(t, "awaiting_first_move\n", out)
	})

	t.Run("Uses the output format from config", func(t *testing.T) {
		// Given: a config asking for state names
		conf := defaultConfig()
		conf.OutputFormat = config.FormatState

		// When: checking a tie board
		out, err := execute(t, nil, conf, "check", "X,O,X,O,X,O,O,X,O")

		// Then: the tie state is printed
		require.NoError(t, err)
		assert.Equal(t, "tie\n", out)
	})

	t.Run("Explains a win", func(t *testing.T) {
		// When: checking an O diagonal win with --explain
		out, err := execute(t, nil, defaultConfig(), "check", "-e", "O,X,X,X,O,X,X,X,O")

		// Then: the label and line are printed
		require.NoError(t, err)
		assert.Equal(t, "O wins\nwinning line: 0 4 8\n", out)
	})

	t.Run("Prints json", func(t *testing.T) {
		// When: checking an X row win as json
		out, err := execute(t, nil, defaultConfig(), "check", "-f", "json", "X,X,X,O,O,,,,")
		require.NoError(t, err)

		// Then: the evaluation decodes back with the line
		var evaluation entity.Evaluation
		require.NoError(t, json.Unmarshal([]byte(out), &evaluation))
		assert.Equal(t, entity.StateWinX, evaluation.State)
		assert.Equal(t, "X wins", evaluation.Label)
		require.NotNil(t, evaluation.Line)
		assert.Equal(t, entity.Line{0, 1, 2}, *evaluation.Line)
	})

	t.Run("Rejects a short board", func(t *testing.T) {
		// When: checking four cells
		_, err := execute(t, nil, defaultConfig(), "check", "X", "O", "X", "O")

		// Then: ErrInvalidBoard is returned
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
		assert.Contains(t, err.Error(), "invalid board")
	})

	t.Run("Rejects an unknown mark", func(t *testing.T) {
		// When: checking a board with a lowercase x
		_, err := execute(t, nil, defaultConfig(), "check", "x,,,,,,,,")

		// Then: ErrInvalidBoard is returned
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Rejects an unknown format", func(t *testing.T) {
		// When: checking with --format xml
		_, err := execute(t, nil, defaultConfig(), "check", "--format", "xml", ",,,,,,,,")

		// Then: ErrUnknownFormat is returned
		require.ErrorIs(t, err, config.ErrUnknownFormat)
	})

	t.Run("Requires at least one argument", func(t *testing.T) {
		// When: checking with no cells
		_, err := execute(t, nil, defaultConfig(), "check")

		// Then: cobra rejects the call
		require.Error(t, err)
	})
}

func TestLinesCommand(t *testing.T) {
	// When: listing the lines
	out, err := execute(t, nil, defaultConfig(), "lines")

	// Then: all eight lines are printed in scan order
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(entity.WinLines))
	assert.Equal(t, "0 1 2", lines[0])
	assert.Equal(t, "2 4 6", lines[7])
}

func TestLogLevelFlag(t *testing.T) {
	t.Run("Overrides the level", func(t *testing.T) {
		// Given: a level starting at info
		level := &slog.LevelVar{}

		// When: running with --log-level debug
		_, err := execute(t, level, defaultConfig(), "--log-level", "debug", "lines")

		// Then: the level is lowered
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, level.Level())
	})

	t.Run("Rejects an unknown level", func(t *testing.T) {
		// When: running with --log-level loud
		_, err := execute(t, &slog.LevelVar{}, defaultConfig(), "--log-level", "loud", "lines")

		// Then: ErrUnknownLogLevel is returned
		require.ErrorIs(t, err, ErrUnknownLogLevel)
	})
}

func TestSplitCells(t *testing.T) {
	t.Run("Splits one comma separated argument", func(t *testing.T) {
		assert.Equal(t, []string{"X", "", "O"}, SplitCells([]string{"X, ,O"}))
	})

	t.Run("Maps placeholders to empty cells", func(t *testing.T) {
		assert.Equal(t, []string{"", "", "", "X"}, SplitCells([]string{"_", ".", "-", "X"}))
	})
}
