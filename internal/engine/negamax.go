package engine

import "github.com/rocketscienceinc/tictactoe-engine/internal/apperror"

// negamaxStrategy is the sign-flipped reformulation of minimax: because the
// game is zero-sum, value(board, player) == -value(board, opponent), so one
// code path serves both sides by negating every child's returned value. For
// every board and mark it chooses the same cell as minimaxStrategy.
type negamaxStrategy struct{}

func (that *negamaxStrategy) ChooseCell(board Board, mark string) (int, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return 0, apperror.ErrNoLegalMoves
	}

	bestCell := moves[0]
	bestScore := -scoreInfinity

	for _, cell := range moves {
		board[cell] = mark
		score := -that.search(board, ToggleMark(mark), 1)
		board.Undo(cell)

		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell, nil
}

// search returns the board's value from the perspective of the player to move.
func (that *negamaxStrategy) search(board Board, mark string, depth int) int {
	if outcome := board.Outcome(); outcome != EmptyCell {
		return evaluate(outcome, mark, depth)
	}

	maxScore := -scoreInfinity
	for _, cell := range board.LegalMoves() {
		board[cell] = mark
		if score := -that.search(board, ToggleMark(mark), depth+1); score > maxScore {
			maxScore = score
		}
		board.Undo(cell)
	}
	return maxScore
}
