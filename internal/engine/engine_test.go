package engine

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_ChooseCell(t *testing.T) {
	t.Run("Dispatches to the named strategy", func(t *testing.T) {
		// Given: an engine and a board where X wins at cell 2
		eng := New(rand.New(rand.NewSource(1)))
		board := Board{
			PlayerX, PlayerX, EmptyCell,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		for _, name := range []string{StrategyMinimax, StrategyMinimaxAB, StrategyNegamax} {
			// When: asking each exhaustive strategy by name
			cell, err := eng.ChooseCell(board, PlayerX, name)

			// Then: the winning cell should be returned
			require.NoError(t, err)
			assert.Equal(t, 2, cell)
		}
	})

	t.Run("Error on unknown strategy leaves the board untouched", func(t *testing.T) {
		// Given: an engine and a board mid-game
		eng := New(rand.New(rand.NewSource(1)))
		board := Board{PlayerX, PlayerO}
		before := board

		// When: asking for a strategy that does not exist
		_, err := eng.ChooseCell(board, PlayerX, "bogus")

		// Then: an ErrUnknownStrategy error should be returned and the board unchanged
		require.ErrorIs(t, err, apperror.ErrUnknownStrategy)
		assert.Equal(t, before, board)
	})

	t.Run("Error on a board that is already a draw", func(t *testing.T) {
		// Given: a drawn board
		eng := New(rand.New(rand.NewSource(1)))
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerO,
		}

		// When: asking for any move
		_, err := eng.ChooseCell(board, PlayerX, StrategyMinimax)

		// Then: an ErrGameFinished error should be returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Error on a board already won", func(t *testing.T) {
		// Given: a board won by X
		eng := New(rand.New(rand.NewSource(1)))
		board := Board{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: asking for a move
		_, err := eng.ChooseCell(board, PlayerO, StrategyNegamax)

		// Then: an ErrGameFinished error should be returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestEngine_Strategies(t *testing.T) {
	// Given: a fresh engine
	eng := New(rand.New(rand.NewSource(1)))

	// When: listing the recognized strategies
	names := eng.Strategies()

	// Then: all four names should be present, sorted
	assert.Equal(t, []string{StrategyMinimax, StrategyMinimaxAB, StrategyNegamax, StrategyRandom}, names)
}

func TestRandomStrategy_ChooseCell(t *testing.T) {
	t.Run("Chooses a legal cell", func(t *testing.T) {
		// Given: a random strategy and a board with three empty cells
		strategy := &randomStrategy{rng: rand.New(rand.NewSource(42))}
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: choosing repeatedly
		for i := 0; i < 50; i++ {
			cell, err := strategy.ChooseCell(board, PlayerX)

			// Then: the cell should always be one of the empty ones
			require.NoError(t, err)
			assert.Contains(t, []int{6, 7, 8}, cell)
		}
	})

	t.Run("Deterministic for a fixed seed", func(t *testing.T) {
		// Given: two strategies seeded identically
		first := &randomStrategy{rng: rand.New(rand.NewSource(7))}
		second := &randomStrategy{rng: rand.New(rand.NewSource(7))}
		board := Board{PlayerX}

		// When: both choose a sequence of cells
		for i := 0; i < 20; i++ {
			cellFirst, err := first.ChooseCell(board, PlayerO)
			require.NoError(t, err)

			cellSecond, err := second.ChooseCell(board, PlayerO)
			require.NoError(t, err)

			// Then: the sequences should match
			require.Equal(t, cellFirst, cellSecond)
		}
	})

	t.Run("Error when no moves are left", func(t *testing.T) {
		// Given: a full board
		strategy := &randomStrategy{rng: rand.New(rand.NewSource(1))}
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerO,
		}

		// When: choosing a cell
		_, err := strategy.ChooseCell(board, PlayerX)

		// Then: an ErrNoLegalMoves error should be returned
		require.ErrorIs(t, err, apperror.ErrNoLegalMoves)
	})
}
