package repository

import (
	"context"
	"log/slog"
	"testing"

	apperrors "messagemural/internal/errors"
	"messagemural/internal/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func openBadger(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sampleMessages() []models.Message {
	return []models.Message{
		{ID: "a1", Content: "hello", Author: "Ann", CreatedAt: "2025-01-02T03:04:05.000Z", Timestamp: 1735787045000},
		{ID: "b2", Content: "world", Author: "Anonymous", CreatedAt: "2025-01-02T03:04:06.000Z", Timestamp: 1735787046000},
		{ID: "c3", Content: "ça va ?", Author: "Bob", CreatedAt: "2025-01-02T03:04:07.000Z", Timestamp: 1735787047000},
	}
}

func Test_Badger_Empty_Collection(t *testing.T) {
	req := require.New(t)
	repo := NewBadgerRepo(openBadger(t), "MessageMural", logs.GetLoggerFromLevel(slog.LevelDebug))

	messages, err := repo.ListAll(context.Background())
	req.NoError(err)
	req.NotNil(messages)
	req.Empty(messages)
}

func Test_Badger_Insert_Then_ListAll(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewBadgerRepo(openBadger(t), "MessageMural", logs.GetLoggerFromLevel(slog.LevelDebug))

	for _, msg := range sampleMessages() {
		req.NoError(repo.Insert(ctx, msg))
	}

	first, err := repo.ListAll(ctx)
	req.NoError(err)
	req.ElementsMatch(sampleMessages(), first)

	second, err := repo.ListAll(ctx)
	req.NoError(err)
	req.ElementsMatch(first, second)
}

func Test_Badger_Collections_Are_Isolated(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := openBadger(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	mural := NewBadgerRepo(db, "MessageMural", log)
	other := NewBadgerRepo(db, "MessageMuralArchive", log)

	req.NoError(mural.Insert(ctx, sampleMessages()[0]))

	messages, err := other.ListAll(ctx)
	req.NoError(err)
	req.Empty(messages)
}

func Test_Badger_Closed_Database(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	repo := NewBadgerRepo(db, "MessageMural", logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(db.Close())

	err = repo.Insert(context.Background(), sampleMessages()[0])
	req.ErrorIs(err, apperrors.ErrStoreUnavailable)
}
