package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	apperrors "messagemural/internal/errors"
	"messagemural/internal/models"
	"messagemural/internal/service"

	"github.com/redis/go-redis/v9"
)

// RedisRepo keeps the collection in one hash: field = id, value = JSON message.
type RedisRepo struct {
	client *redis.Client
	key    string
	log    *slog.Logger
}

func NewRedisRepo(client *redis.Client, collection string, log *slog.Logger) *RedisRepo {
	return &RedisRepo{client: client, key: collection, log: log}
}

func initRedis(ctx context.Context, addr string, password string) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

var _ service.MessageStore = (*RedisRepo)(nil)

func (r *RedisRepo) ListAll(ctx context.Context) ([]models.Message, error) {
	values, err := r.client.HVals(ctx, r.key).Result()
	if err != nil {
		r.log.Error("Error fetching messages", "key", r.key, "error", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	messages := make([]models.Message, 0, len(values))
	for _, value := range values {
		var msg models.Message
		if err := json.Unmarshal([]byte(value), &msg); err != nil {
			r.log.Error("Error decoding message", "key", r.key, "error", err)
			return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *RedisRepo) Insert(ctx context.Context, message models.Message) error {
	value, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	if err := r.client.HSet(ctx, r.key, message.ID, value).Err(); err != nil {
		r.log.Error("Error creating message", "key", r.key, "id", message.ID, "error", err)
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}
