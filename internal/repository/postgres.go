package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	apperrors "messagemural/internal/errors"
	"messagemural/internal/models"
	"messagemural/internal/service"

	"github.com/lib/pq"
)

type PostgresRepo struct {
	db    *sql.DB
	table string
	log   *slog.Logger
}

func NewPostgresRepo(ctx context.Context, dsn, collection string, log *slog.Logger) (*PostgresRepo, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	table := pq.QuoteIdentifier(collection)
	createTableQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		id TEXT PRIMARY KEY,
		content TEXT NOT NULL,
		author VARCHAR(100) NOT NULL,
		created_at TEXT NOT NULL,
		"timestamp" BIGINT NOT NULL
	);
	`, table)
	if _, err = db.ExecContext(ctx, createTableQuery); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ensure %s table exists: %w", collection, err)
	}
	return &PostgresRepo{db: db, table: table, log: log}, nil
}

var _ service.MessageStore = (*PostgresRepo)(nil)

func (r *PostgresRepo) ListAll(ctx context.Context) ([]models.Message, error) {
	query := fmt.Sprintf(`SELECT id, content, author, created_at, "timestamp" FROM %s;`, r.table)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Error("Error fetching messages", "table", r.table, "error", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	results := []models.Message{}
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(&msg.ID, &msg.Content, &msg.Author, &msg.CreatedAt, &msg.Timestamp); err != nil {
			r.log.Error("Error reading message row", "table", r.table, "error", err)
			return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
		}
		results = append(results, msg)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("Error fetching messages", "table", r.table, "error", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return results, nil
}

func (r *PostgresRepo) Insert(ctx context.Context, message models.Message) error {
	query := fmt.Sprintf(`INSERT INTO %s (id, content, author, created_at, "timestamp")
	          VALUES ($1, $2, $3, $4, $5);`, r.table)
	_, err := r.db.ExecContext(ctx, query,
		message.ID, message.Content, message.Author, message.CreatedAt, message.Timestamp)
	if err != nil {
		r.log.Error("Error creating message", "table", r.table, "id", message.ID, "error", err)
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *PostgresRepo) Close() error {
	return r.db.Close()
}
