package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	apperrors "messagemural/internal/errors"
	"messagemural/internal/models"
	"messagemural/internal/service"

	"github.com/dgraph-io/badger/v4"
)

// BadgerRepo stores each message under "<collection>:<id>".
type BadgerRepo struct {
	db     *badger.DB
	prefix []byte
	log    *slog.Logger
}

func NewBadgerRepo(db *badger.DB, collection string, log *slog.Logger) *BadgerRepo {
	return &BadgerRepo{db: db, prefix: []byte(collection + ":"), log: log}
}

var _ service.MessageStore = (*BadgerRepo)(nil)

func (r *BadgerRepo) ListAll(ctx context.Context) ([]models.Message, error) {
	messages := []models.Message{}
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(r.prefix); it.ValidForPrefix(r.prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var msg models.Message
				if err := json.Unmarshal(value, &msg); err != nil {
					return err
				}
				messages = append(messages, msg)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.log.Error("Error fetching messages", "prefix", string(r.prefix), "error", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return messages, nil
}

func (r *BadgerRepo) Insert(ctx context.Context, message models.Message) error {
	value, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	key := append(append([]byte{}, r.prefix...), message.ID...)
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		r.log.Error("Error creating message", "key", string(key), "error", err)
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}
