package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = engine.PlayerX
	PlayerO   = engine.PlayerO
	PlayerTie = engine.Tie

	EmptyCell = engine.EmptyCell
)

const (
	PublicType  = "public"
	PrivateType = "private"
	WithBotType = "bot"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID          string       `json:"id"`
	Board       engine.Board `json:"board"`
	Winner      string       `json:"winner"`
	Status      string       `json:"status"`
	Turn        string       `json:"player_turn"`
	Players     []*Player    `json:"players,omitempty"`
	Type        string       `json:"type,omitempty"`
	BotStrategy string       `json:"bot_strategy,omitempty"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Board:  engine.Board{},
		Turn:   PlayerX,
		Status: StatusWaiting,
		Type:   gameType,
	}
}

// DetermineGameResult returns the mark of the winner, PlayerTie for a draw,
// or EmptyCell while the game continues.
func (that *Game) DetermineGameResult() string {
	return that.Board.Outcome()
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark string, cell int) error {
	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Apply(cell, playerMark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Turn = engine.ToggleMark(playerMark)

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsPublic() bool {
	return that.Type == PublicType
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}
