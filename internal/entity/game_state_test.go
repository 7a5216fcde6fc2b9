package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameState_Label(t *testing.T) {
	t.Run("Empty board and equal counts share a label but not a state", func(t *testing.T) {
		// Then: both read "X to play"
		assert.Equal(t, LabelXToPlay, StateAwaitingFirstMove.Label())
		assert.Equal(t, LabelXToPlay, StateTurnX.Label())

		// Then: the states themselves stay distinct
		assert.NotEqual(t, StateAwaitingFirstMove, StateTurnX)
		assert.NotEqual(t, StateAwaitingFirstMove.String(), StateTurnX.String())
	})

	t.Run("Remaining labels", func(t *testing.T) {
		assert.Equal(t, "O to play", StateTurnO.Label())
		assert.Equal(t, "X wins", StateWinX.Label())
		assert.Equal(t, "O wins", StateWinO.Label())
		assert.Equal(t, "It is a tie", StateTie.Label())
		assert.Empty(t, GameState(42).Label())
	})
}

func TestGameState_IsFinished(t *testing.T) {
	assert.True(t, StateWinX.IsFinished())
	assert.True(t, StateWinO.IsFinished())
	assert.True(t, StateTie.IsFinished())
	assert.False(t, StateAwaitingFirstMove.IsFinished())
	assert.False(t, StateTurnX.IsFinished())
	assert.False(t, StateTurnO.IsFinished())
}

func TestEvaluation_JSON(t *testing.T) {
	// Given: an evaluation of a won board
	board := Board{CellX, CellX, CellX, CellO, CellO}
	evaluation := NewEvaluation(board, StateWinX)

	// When: encoding it
	data, err := json.Marshal(evaluation)
	require.NoError(t, err)

	// Then: the state is written by name
	assert.JSONEq(t, `{"board":["X","X","X","O","O","","","",""],"state":"win_x","label":"X wins"}`, string(data))

	// When: decoding it back
	var decoded Evaluation
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Then: nothing is lost
	assert.Equal(t, *evaluation, decoded)
}

func TestGameState_UnmarshalText(t *testing.T) {
	// When: decoding an unknown name
	var state GameState
	err := state.UnmarshalText([]byte("draw"))

	// Then: ErrUnknownGameState is returned
	require.ErrorIs(t, err, ErrUnknownGameState)
}
