package engine

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StrategyRandom    = "random"
	StrategyMinimax   = "minimax"
	StrategyMinimaxAB = "minimax-ab"
	StrategyNegamax   = "negamax"
)

// Strategy chooses a cell for the given mark. Implementations are pure: the
// board is received by value and the caller's copy is never mutated.
type Strategy interface {
	ChooseCell(board Board, mark string) (int, error)
}

// Engine dispatches a board to one of the named strategies. It keeps no state
// between calls; the only external input is the randomness source used by the
// random strategy.
type Engine struct {
	strategies map[string]Strategy
}

func New(rng *rand.Rand) *Engine {
	return &Engine{
		strategies: map[string]Strategy{
			StrategyRandom:    &randomStrategy{rng: rng},
			StrategyMinimax:   &minimaxStrategy{},
			StrategyMinimaxAB: &alphaBetaStrategy{},
			StrategyNegamax:   &negamaxStrategy{},
		},
	}
}

// ChooseCell picks a cell for mark on the given board using the named strategy.
func (that *Engine) ChooseCell(board Board, mark, strategyName string) (int, error) {
	strategy, ok := that.strategies[strategyName]
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, strategyName)
	}

	if board.IsTerminal() {
		return 0, apperror.ErrGameFinished
	}

	cell, err := strategy.ChooseCell(board, mark)
	if err != nil {
		return 0, fmt.Errorf("strategy %s failed to choose a cell: %w", strategyName, err)
	}

	return cell, nil
}

// Strategies returns the recognized strategy names in sorted order.
func (that *Engine) Strategies() []string {
	names := make([]string, 0, len(that.strategies))
	for name := range that.strategies {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
