package engine

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	// Tie is the Outcome of a full board without a winning line.
	Tie = "-"

	EmptyCell = ""
)

// WinCombos lists the 8 winning lines: 3 rows, 3 columns, 2 diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid in row-major order; each cell holds PlayerX, PlayerO or EmptyCell.
// It is a value type: passing a Board copies it, so search code can mutate its
// own copy freely without touching the caller's board.
type Board [9]string

// LegalMoves returns every empty cell in row-major order. The stable order
// makes tie-breaking among equally scored moves deterministic.
func (that Board) LegalMoves() []int {
	moves := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}
	return moves
}

// Apply places mark on the given cell.
func (that *Board) Apply(cell int, mark string) error {
	if cell < 0 || cell >= len(that) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if that[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that[cell] = mark

	return nil
}

// Undo resets the cell back to empty. Every Apply inside a search must be
// paired with exactly one Undo on every exit path.
func (that *Board) Undo(cell int) {
	that[cell] = EmptyCell
}

// Outcome scans all winning lines and returns PlayerX or PlayerO if one of
// them has three in a row, Tie if the board is full, or EmptyCell while the
// game is still ongoing. It is always recomputed from the grid, never cached.
func (that Board) Outcome() string {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	for _, cell := range that {
		if cell == EmptyCell {
			return EmptyCell
		}
	}

	return Tie
}

// IsTerminal reports whether the game on this board is over.
func (that Board) IsTerminal() bool {
	return that.Outcome() != EmptyCell
}

// ToggleMark returns the opposing player's mark.
func ToggleMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
