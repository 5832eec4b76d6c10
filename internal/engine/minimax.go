package engine

import "github.com/rocketscienceinc/tictactoe-engine/internal/apperror"

// minimaxStrategy explores the whole remaining game tree: the mover maximizes
// its own score and assumes the opponent minimizes it. At most 9! positions,
// so no depth limit is needed.
type minimaxStrategy struct{}

func (that *minimaxStrategy) ChooseCell(board Board, mark string) (int, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return 0, apperror.ErrNoLegalMoves
	}

	bestCell := moves[0]
	bestScore := -scoreInfinity

	for _, cell := range moves {
		board[cell] = mark
		score := that.search(board, mark, 1, false)
		board.Undo(cell)

		// strictly > keeps the first best cell in LegalMoves order
		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell, nil
}

// search returns the value of the board for the root player. The maximizing
// flag alternates per level: true when the root player is to move again.
// Depth counts plies from the root board.
func (that *minimaxStrategy) search(board Board, rootMark string, depth int, maximizing bool) int {
	if outcome := board.Outcome(); outcome != EmptyCell {
		return evaluate(outcome, rootMark, depth)
	}

	if maximizing {
		maxScore := -scoreInfinity
		for _, cell := range board.LegalMoves() {
			board[cell] = rootMark
			if score := that.search(board, rootMark, depth+1, false); score > maxScore {
				maxScore = score
			}
			board.Undo(cell)
		}
		return maxScore
	}

	minScore := scoreInfinity
	for _, cell := range board.LegalMoves() {
		board[cell] = ToggleMark(rootMark)
		if score := that.search(board, rootMark, depth+1, true); score < minScore {
			minScore = score
		}
		board.Undo(cell)
	}
	return minScore
}
