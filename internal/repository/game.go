package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	GetWaitingPublicGame(ctx context.Context) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	gameKey := "game:" + game.ID
	err = that.client.Set(ctx, gameKey, gameJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	if game.IsPublic() && game.IsWaiting() {
		if err = that.client.SAdd(ctx, "games:public:waiting", game.ID).Err(); err != nil {
			return fmt.Errorf("failed to index waiting public game: %w", err)
		}
	} else {
		if err = that.client.SRem(ctx, "games:public:waiting", game.ID).Err(); err != nil {
			return fmt.Errorf("failed to unindex public game: %w", err)
		}
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	gameKey := "game:" + id

	response, err := that.client.Get(ctx, gameKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Game{}, ErrGameNotFound
	}

	if err != nil {
		return &entity.Game{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return &entity.Game{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbGame) GetWaitingPublicGame(ctx context.Context) (*entity.Game, error) {
	gameID, err := that.client.SRandMember(ctx, "games:public:waiting").Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Game{}, apperror.ErrNoActiveGames
	}

	if err != nil {
		return &entity.Game{}, fmt.Errorf("failed to pick waiting public game: %w", err)
	}

	return that.GetByID(ctx, gameID)
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	err := that.client.Del(ctx, "game:"+id).Err()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if err = that.client.SRem(ctx, "games:public:waiting", id).Err(); err != nil {
		return fmt.Errorf("failed to unindex public game: %w", err)
	}

	return nil
}
