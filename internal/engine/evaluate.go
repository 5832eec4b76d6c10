package engine

const (
	// winScore must exceed the deepest possible search depth (9 plies), so a
	// depth-weighted win always outscores a tie.
	winScore = 10

	scoreInfinity = 1 << 10
)

// evaluate scores a terminal board from the given player's perspective.
// Scores are depth-weighted: a win d plies away is worth winScore-d, a loss
// -(winScore-d), a tie 0. The engine therefore prefers faster wins and slower
// losses. All exhaustive strategies share this function, which keeps their
// move choices comparable.
func evaluate(outcome, mark string, depth int) int {
	switch outcome {
	case mark:
		return winScore - depth
	case Tie:
		return 0
	default:
		return depth - winScore
	}
}
