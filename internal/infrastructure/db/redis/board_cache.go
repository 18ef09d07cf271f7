package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openboard/board-service/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// BoardCache is a cache-aside store for board reads backed by Redis.
// Key format: board:<id>
type BoardCache struct {
	client *redis.Client
}

// NewBoardCache creates a BoardCache wrapping the given Redis client.
func NewBoardCache(client *redis.Client) *BoardCache {
	return &BoardCache{client: client}
}

// Get returns the cached board, or (nil, nil) on a miss.
func (c *BoardCache) Get(ctx context.Context, id string) (*domain.Board, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var board domain.Board
	if err := json.Unmarshal(raw, &board); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &board, nil
}

// Set stores the board for cacheTTL.
func (c *BoardCache) Set(ctx context.Context, board *domain.Board) error {
	raw, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(board.ID), raw, cacheTTL).Err()
}

// Invalidate drops the cached entry after a mutation.
func (c *BoardCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *BoardCache) key(id string) string {
	return "board:" + id
}
