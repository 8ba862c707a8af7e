package repository

import (
	"context"
	"fmt"
	"log/slog"

	"messagemural/internal/config"
	apperrors "messagemural/internal/errors"
	"messagemural/internal/service"

	"github.com/dgraph-io/badger/v4"
)

// NewMessageStore builds the backend selected by cfg.StoreDriver. The caller
// owns the returned close function.
func NewMessageStore(ctx context.Context, cfg config.Config, log *slog.Logger) (service.MessageStore, func() error, error) {
	switch cfg.StoreDriver {
	case config.DriverDynamo:
		endpoint := ""
		if cfg.UseLocalStore {
			endpoint = cfg.LocalStoreEndpoint
		}
		client, err := NewDynamoClient(ctx, cfg.Region, endpoint)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Using DynamoDB", "table", cfg.CollectionName, "region", cfg.Region, "endpoint", endpoint)
		return NewDynamoRepo(client, cfg.CollectionName, log), func() error { return nil }, nil

	case config.DriverPostgres:
		repo, err := NewPostgresRepo(ctx, cfg.PostgresDSN, cfg.CollectionName, log)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Connected to PostgreSQL", "table", cfg.CollectionName)
		return repo, repo.Close, nil

	case config.DriverRedis:
		client, err := initRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Connected to Redis", "addr", cfg.RedisAddr, "key", cfg.CollectionName)
		return NewRedisRepo(client, cfg.CollectionName, log), client.Close, nil

	case config.DriverBadger:
		db, err := badger.Open(badger.DefaultOptions(cfg.BadgerFilepath).WithLoggingLevel(badger.WARNING))
		if err != nil {
			return nil, nil, fmt.Errorf("database opening failed: %w", err)
		}
		log.Info("Opened BadgerDB", "path", cfg.BadgerFilepath, "prefix", cfg.CollectionName)
		return NewBadgerRepo(db, cfg.CollectionName, log), db.Close, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownStoreDriver, cfg.StoreDriver)
}
