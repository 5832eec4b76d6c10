package service

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *engine.Engine {
	return engine.New(rand.New(rand.NewSource(1)))
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Bot completes its winning line", func(t *testing.T) {
		// Given: a bot game where the bot (O) can win at cell 2
		game := entity.NewGame("123", entity.WithBotType)
		game.BotStrategy = engine.StrategyMinimaxAB
		game.Status = entity.StatusOngoing
		game.Turn = entity.PlayerO
		game.Board = engine.Board{
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
		}
		game.Players = []*entity.Player{
			{ID: "human", Mark: entity.PlayerX},
			entity.NewBotPlayer(game.ID, entity.PlayerO),
		}

		botService := NewBotService(newTestEngine(), engine.StrategyMinimaxAB)

		// When: the bot makes its turn
		err := botService.MakeTurn(game)

		// Then: the bot should take the winning cell and finish the game
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, game.Board[2])
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.PlayerO, game.Winner)
	})

	t.Run("Falls back to the default strategy", func(t *testing.T) {
		// Given: a bot game without a strategy of its own
		game := entity.NewGame("123", entity.WithBotType)
		game.Status = entity.StatusOngoing
		game.Turn = entity.PlayerO
		game.Board = engine.Board{entity.PlayerX}
		game.Players = []*entity.Player{
			{ID: "human", Mark: entity.PlayerX},
			entity.NewBotPlayer(game.ID, entity.PlayerO),
		}

		botService := NewBotService(newTestEngine(), engine.StrategyNegamax)

		// When: the bot makes its turn
		err := botService.MakeTurn(game)

		// Then: a move should be made with the default strategy
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Error when no bot is seated", func(t *testing.T) {
		// Given: a game with only human players
		game := entity.NewGame("123", entity.WithBotType)
		game.Status = entity.StatusOngoing
		game.Players = []*entity.Player{{ID: "human", Mark: entity.PlayerX}}

		botService := NewBotService(newTestEngine(), engine.StrategyMinimaxAB)

		// When: the bot is asked to move
		err := botService.MakeTurn(game)

		// Then: an ErrBotNotFound error should be returned
		require.ErrorIs(t, err, ErrBotNotFound)
	})

	t.Run("Error on unknown strategy", func(t *testing.T) {
		// Given: a bot game with a strategy name the engine does not know
		game := entity.NewGame("123", entity.WithBotType)
		game.BotStrategy = "bogus"
		game.Status = entity.StatusOngoing
		game.Turn = entity.PlayerO
		game.Players = []*entity.Player{
			{ID: "human", Mark: entity.PlayerX},
			entity.NewBotPlayer(game.ID, entity.PlayerO),
		}

		botService := NewBotService(newTestEngine(), engine.StrategyMinimaxAB)

		// When: the bot is asked to move
		err := botService.MakeTurn(game)

		// Then: an ErrUnknownStrategy error should be returned
		require.ErrorIs(t, err, apperror.ErrUnknownStrategy)
	})
}
