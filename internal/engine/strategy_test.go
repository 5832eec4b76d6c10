package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchStrategies_Equivalence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive equivalence check in short mode")
	}

	minimax := &minimaxStrategy{}
	alphaBeta := &alphaBetaStrategy{}
	negamax := &negamaxStrategy{}

	// Given: every reachable non-terminal board
	boards := reachableBoards(t, false)
	require.NotEmpty(t, boards)

	for _, board := range boards {
		for _, mark := range []string{PlayerX, PlayerO} {
			// When: each exhaustive strategy chooses a cell
			want, err := minimax.ChooseCell(board, mark)
			require.NoError(t, err)

			gotAB, err := alphaBeta.ChooseCell(board, mark)
			require.NoError(t, err)

			gotNega, err := negamax.ChooseCell(board, mark)
			require.NoError(t, err)

			// Then: pruning and the sign-flip rewrite never change the decision
			require.Equalf(t, want, gotAB, "alpha-beta diverged from minimax on %v for %s", board, mark)
			require.Equalf(t, want, gotNega, "negamax diverged from minimax on %v for %s", board, mark)
		}
	}
}

func TestSearchStrategies_SelfPlayDraw(t *testing.T) {
	strategies := map[string]Strategy{
		StrategyMinimax:   &minimaxStrategy{},
		StrategyMinimaxAB: &alphaBetaStrategy{},
		StrategyNegamax:   &negamaxStrategy{},
	}

	for name, strategy := range strategies {
		t.Run(name, func(t *testing.T) {
			// Given: an empty board with X to move
			board := Board{}
			mark := PlayerX

			// When: the strategy plays both sides to the end
			for !board.IsTerminal() {
				cell, err := strategy.ChooseCell(board, mark)
				require.NoError(t, err)
				require.NoError(t, board.Apply(cell, mark))
				mark = ToggleMark(mark)
			}

			// Then: optimal play on both sides always ends in a tie
			assert.Equal(t, Tie, board.Outcome())
		})
	}
}

func TestSearchStrategies_Scenarios(t *testing.T) {
	strategies := map[string]Strategy{
		StrategyMinimax:   &minimaxStrategy{},
		StrategyMinimaxAB: &alphaBetaStrategy{},
		StrategyNegamax:   &negamaxStrategy{},
	}

	t.Run("Completes its own winning line", func(t *testing.T) {
		// Given: X can win immediately at cell 2
		board := Board{
			PlayerX, PlayerX, EmptyCell,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		for name, strategy := range strategies {
			// When: the strategy chooses for X
			cell, err := strategy.ChooseCell(board, PlayerX)

			// Then: it should take the win
			require.NoError(t, err)
			assert.Equalf(t, 2, cell, "%s did not complete the winning line", name)
		}
	})

	t.Run("Prefers its own win over blocking the opponent", func(t *testing.T) {
		// Given: O threatens cell 2, but X can win immediately at cell 5
		board := Board{
			PlayerO, PlayerO, EmptyCell,
			PlayerX, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		for name, strategy := range strategies {
			// When: the strategy chooses for X
			cell, err := strategy.ChooseCell(board, PlayerX)

			// Then: winning now beats blocking
			require.NoError(t, err)
			assert.Equalf(t, 5, cell, "%s did not take the immediate win", name)
		}
	})

	t.Run("Blocks the opponent's imminent win", func(t *testing.T) {
		// Given: O threatens cell 2 and X has no win of its own;
		// every other move loses on O's next turn
		board := Board{
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, PlayerX,
			EmptyCell, PlayerX, EmptyCell,
		}

		for name, strategy := range strategies {
			// When: the strategy chooses for X
			cell, err := strategy.ChooseCell(board, PlayerX)

			// Then: it should block at cell 2, the only move avoiding a forced loss
			require.NoError(t, err)
			assert.Equalf(t, 2, cell, "%s did not block the opponent", name)
		}
	})

	t.Run("Prefers the faster win", func(t *testing.T) {
		// Given: X can win immediately on the top row or steer into a slower win
		board := Board{
			PlayerX, EmptyCell, PlayerX,
			PlayerO, PlayerX, EmptyCell,
			PlayerO, EmptyCell, PlayerO,
		}

		for name, strategy := range strategies {
			// When: the strategy chooses for X
			cell, err := strategy.ChooseCell(board, PlayerX)

			// Then: the immediate win at cell 1 should be taken
			require.NoError(t, err)
			assert.Equalf(t, 1, cell, "%s did not take the fastest win", name)
		}
	})
}
