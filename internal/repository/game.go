package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-rest/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rest/internal/entity"
)

const gamesIndexKey = "games"

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Game, error)
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKey(game.ID), gameJSON, 0)
		pipe.SAdd(ctx, gamesIndexKey, game.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	var deleted *redis.IntCmd

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, gameKey(id))
		pipe.SRem(ctx, gamesIndexKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted.Val() == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

// List - all stored games, oldest first.
func (that *dbGame) List(ctx context.Context) ([]*entity.Game, error) {
	ids, err := that.client.SMembers(ctx, gamesIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list game ids: %w", err)
	}

	games := make([]*entity.Game, 0, len(ids))
	if len(ids) == 0 {
		return games, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, gameKey(id))
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// the index may briefly outlive a game deleted by another writer
			continue
		}

		var game entity.Game
		if err = json.Unmarshal([]byte(raw), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", ids[i], err)
		}

		games = append(games, &game)
	}

	sort.Slice(games, func(i, j int) bool {
		if games[i].StartTime.Equal(games[j].StartTime) {
			return games[i].ID < games[j].ID
		}
		return games[i].StartTime.Before(games[j].StartTime)
	})

	return games, nil
}
