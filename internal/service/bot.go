package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type moveChooser interface {
	ChooseCell(board engine.Board, mark, strategyName string) (int, error)
}

type botService struct {
	engine          moveChooser
	defaultStrategy string
}

func NewBotService(eng moveChooser, defaultStrategy string) BotService {
	return &botService{
		engine:          eng,
		defaultStrategy: defaultStrategy,
	}
}

func (that *botService) MakeTurn(game *entity.Game) error {
	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	strategy := game.BotStrategy
	if strategy == "" {
		strategy = that.defaultStrategy
	}

	cell, err := that.engine.ChooseCell(game.Board, botPlayer.Mark, strategy)
	if err != nil {
		return fmt.Errorf("failed to choose a cell: %w", err)
	}

	if err = game.MakeTurn(botPlayer.Mark, cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
