package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-state/internal/entity"
)

type StateUseCase interface {
	Check(ctx context.Context, cells []string) (*entity.Evaluation, error)
	CheckBoard(ctx context.Context, board entity.Board) (*entity.Evaluation, error)
}

type evaluatorDep interface {
	Evaluate(board entity.Board) (entity.GameState, error)
	Winner(board entity.Board) (entity.Cell, entity.Line, bool)
}

var _ StateUseCase = (*StateChecker)(nil)

type StateChecker struct {
	logger    *slog.Logger
	evaluator evaluatorDep
}

func NewStateChecker(logger *slog.Logger, evaluator evaluatorDep) *StateChecker {
	return &StateChecker{
		logger:    logger.With("component", "state_checker"),
		evaluator: evaluator,
	}
}

// Check - parses textual cells ("X", "O", "") and classifies the board.
func (that *StateChecker) Check(ctx context.Context, cells []string) (*entity.Evaluation, error) {
	log := that.logger.With("method", "Check")

	board, err := entity.ParseBoard(cells)
	if err != nil {
		log.Debug("rejected board", "cells", cells, "error", err)
		return nil, fmt.Errorf("failed to parse board: %w", err)
	}

	return that.CheckBoard(ctx, board)
}

func (that *StateChecker) CheckBoard(ctx context.Context, board entity.Board) (*entity.Evaluation, error) {
	log := that.logger.With("method", "CheckBoard")

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("board check canceled: %w", err)
	}

	state, err := that.evaluator.Evaluate(board)
	if err != nil {
		log.Debug("evaluation failed", "error", err)
		return nil, fmt.Errorf("failed to evaluate board: %w", err)
	}

	log.DebugContext(ctx, "board evaluated", "board", board.Strings(), "state", state.String())

	evaluation := entity.NewEvaluation(board, state)
	if state == entity.StateWinX || state == entity.StateWinO {
		if _, line, ok := that.evaluator.Winner(board); ok {
			evaluation.Line = &line
		}
	}

	return evaluation, nil
}
