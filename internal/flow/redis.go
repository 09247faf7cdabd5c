package flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps flow state in redis so pending prompts survive a restart.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Create(ctx context.Context, state State) (string, error) {
	token := uuid.NewString()
	data, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, flowKey(token), data, TTL).Err(); err != nil {
		return "", fmt.Errorf("store flow state: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Consume(ctx context.Context, token string) (*State, error) {
	data, err := s.client.GetDel(ctx, flowKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("consume flow state: %w", err)
	}
	var state State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("decode flow state: %w", err)
	}
	return &state, nil
}

func flowKey(token string) string {
	return "flow:" + token
}
