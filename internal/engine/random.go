package engine

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// randomStrategy picks a uniformly random legal cell. The randomness source
// is injected, so a fixed seed makes the strategy deterministic in tests.
type randomStrategy struct {
	rng *rand.Rand
}

func (that *randomStrategy) ChooseCell(board Board, _ string) (int, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return 0, apperror.ErrNoLegalMoves
	}

	return moves[that.rng.Intn(len(moves))], nil
}
