package engine

import "github.com/rocketscienceinc/tictactoe-engine/internal/apperror"

// alphaBetaStrategy is minimax with alpha-beta pruning. Alpha is the best
// score the maximizer can already guarantee, beta the best the minimizer can;
// once alpha meets beta the remaining siblings cannot change the result and
// are skipped. Pruning changes how many nodes are visited, never the chosen
// cell: for every board and mark the result is identical to minimaxStrategy.
type alphaBetaStrategy struct{}

func (that *alphaBetaStrategy) ChooseCell(board Board, mark string) (int, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return 0, apperror.ErrNoLegalMoves
	}

	bestCell := moves[0]
	bestScore := -scoreInfinity

	// Each root child is searched with a full window so its value is exact,
	// which keeps the first-best tie-break aligned with plain minimax.
	for _, cell := range moves {
		board[cell] = mark
		score := that.search(board, mark, 1, -scoreInfinity, scoreInfinity, false)
		board.Undo(cell)

		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell, nil
}

func (that *alphaBetaStrategy) search(board Board, rootMark string, depth, alpha, beta int, maximizing bool) int {
	if outcome := board.Outcome(); outcome != EmptyCell {
		return evaluate(outcome, rootMark, depth)
	}

	if maximizing {
		maxScore := -scoreInfinity
		for _, cell := range board.LegalMoves() {
			board[cell] = rootMark
			score := that.search(board, rootMark, depth+1, alpha, beta, false)
			board.Undo(cell)

			if score > maxScore {
				maxScore = score
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break // beta cutoff
			}
		}
		return maxScore
	}

	minScore := scoreInfinity
	for _, cell := range board.LegalMoves() {
		board[cell] = ToggleMark(rootMark)
		score := that.search(board, rootMark, depth+1, alpha, beta, true)
		board.Undo(cell)

		if score < minScore {
			minScore = score
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break // alpha cutoff
		}
	}
	return minScore
}
