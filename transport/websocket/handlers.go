package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// handleConnect binds the socket to a player session, creating one when the
// client has no id yet.
func (that *Server) handleConnect(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleConnect")

	var payload Payload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return that.sendError(conn, msg.Action, "invalid payload")
		}
	}

	var playerID string
	if payload.Player != nil {
		playerID = payload.Player.ID
	}

	player, err := that.playerService.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to get or create player", "error", err)
		return that.sendError(conn, msg.Action, "failed to connect")
	}

	that.registerConnection(player.ID, conn)

	log.Info("player connected", "playerID", player.ID)

	return that.sendMessage(conn, msg.Action, Payload{Player: player})
}

// handleNewGame creates a game for the player; public games first try to seat
// the player into an already waiting one.
func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleNewGame")

	player, payload, err := that.resolvePlayer(ctx, msg)
	if err != nil {
		return that.sendError(conn, msg.Action, err.Error())
	}

	gameType := entity.PrivateType
	botStrategy := ""

	if payload.Game != nil {
		if payload.Game.Type != "" {
			gameType = payload.Game.Type
		}
		botStrategy = payload.Game.BotStrategy
	}

	if gameType == entity.PublicType {
		if game, joinErr := that.gamePlay.JoinWaitingPublicGame(ctx, player.ID); joinErr == nil {
			that.broadcastGame(game, msg.Action)
			return nil
		} else if !errors.Is(joinErr, apperror.ErrNoActiveGames) {
			log.Error("failed to join waiting public game", "error", joinErr)
			return that.sendError(conn, msg.Action, "failed to create game")
		}
	}

	game, err := that.gamePlay.GetOrCreateGame(ctx, player, gameType, botStrategy)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return that.sendError(conn, msg.Action, "failed to create game")
	}

	log.Info("game created", "gameID", game.ID, "playerID", player.ID)

	that.broadcastGame(game, msg.Action)

	return nil
}

func (that *Server) handleJoinGame(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleJoinGame")

	player, payload, err := that.resolvePlayer(ctx, msg)
	if err != nil {
		return that.sendError(conn, msg.Action, err.Error())
	}

	if payload.Game == nil || payload.Game.ID == "" {
		return that.sendError(conn, msg.Action, "game id is required")
	}

	game, err := that.gamePlay.JoinGameByID(ctx, payload.Game.ID, player.ID)
	if err != nil {
		log.Error("failed to join game", "gameID", payload.Game.ID, "error", err)

		switch {
		case errors.Is(err, apperror.ErrGameAlreadyExists):
			return that.sendError(conn, msg.Action, "game is full")
		default:
			return that.sendError(conn, msg.Action, "failed to join game")
		}
	}

	log.Info("player joined game", "gameID", game.ID, "playerID", player.ID)

	that.broadcastGame(game, msg.Action)

	return nil
}

// handleGameTurn applies the player's move and pushes the updated state to
// everyone in the game; finished games are cleaned up afterwards.
func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleGameTurn")

	player, payload, err := that.resolvePlayer(ctx, msg)
	if err != nil {
		return that.sendError(conn, msg.Action, err.Error())
	}

	if payload.Cell == nil {
		return that.sendError(conn, msg.Action, "cell is required")
	}

	game, err := that.gamePlay.MakeTurn(ctx, player.ID, *payload.Cell)
	if err != nil {
		log.Error("failed to make turn", "playerID", player.ID, "error", err)

		switch {
		case errors.Is(err, apperror.ErrNotYourTurn):
			return that.sendError(conn, msg.Action, "not your turn")
		case errors.Is(err, apperror.ErrCellOccupied):
			return that.sendError(conn, msg.Action, "cell is already occupied")
		case errors.Is(err, apperror.ErrInvalidCell):
			return that.sendError(conn, msg.Action, "invalid cell")
		case errors.Is(err, apperror.ErrGameIsNotStarted):
			return that.sendError(conn, msg.Action, "game is not started yet")
		case errors.Is(err, apperror.ErrGameFinished):
			return that.sendError(conn, msg.Action, "game is already finished")
		default:
			return that.sendError(conn, msg.Action, "failed to make turn")
		}
	}

	that.broadcastGame(game, msg.Action)

	if game.IsFinished() {
		that.gamePlay.CleanupGame(ctx, game)
	}

	return nil
}

// resolvePlayer extracts the player id from the payload and loads the session.
func (that *Server) resolvePlayer(ctx context.Context, msg *Message) (*entity.Player, *Payload, error) {
	var payload Payload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return nil, nil, errors.New("invalid payload")
		}
	}

	if payload.Player == nil || payload.Player.ID == "" {
		return nil, nil, errors.New("player id is required")
	}

	player, err := that.playerService.GetOrCreatePlayer(ctx, payload.Player.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve player: %w", err)
	}

	return player, &payload, nil
}
