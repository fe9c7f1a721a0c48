// Package sqlite provides a SQLite implementation of the ResponseArchive interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/infrastructure/config"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.ResponseArchive using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// A second connection to ":memory:" would see an empty database.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Generated responses, one row per answered question
	CREATE TABLE IF NOT EXISTS responses (
		id TEXT PRIMARY KEY,
		philosopher TEXT NOT NULL,
		question TEXT NOT NULL,
		prompt TEXT NOT NULL,
		response TEXT NOT NULL,
		transformation_id TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_responses_philosopher ON responses(philosopher, created_at);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveResponse stores a generated response. Missing IDs and timestamps
// are filled in.
func (r *Repository) SaveResponse(ctx context.Context, resp *entities.Response) error {
	if resp.ID == "" {
		resp.ID = uuid.New().String()
	}
	if resp.CreatedAt.IsZero() {
		resp.CreatedAt = timeNow()
	}

	query := `
		INSERT INTO responses (id, philosopher, question, prompt, response, transformation_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		resp.ID,
		resp.Philosopher,
		resp.Question,
		resp.Prompt,
		resp.Text,
		resp.TransformationID,
		resp.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("saving response: %w", err)
	}
	return nil
}

// FindResponsesByPhilosopher returns up to limit responses for a
// philosopher, newest first. A limit of 0 or less returns all of them.
func (r *Repository) FindResponsesByPhilosopher(ctx context.Context, philosopher string, limit int) ([]entities.Response, error) {
	if limit <= 0 {
		limit = -1
	}

	query := `
		SELECT id, philosopher, question, prompt, response, transformation_id, created_at
		FROM responses
		WHERE philosopher = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, philosopher, limit)
	if err != nil {
		return nil, fmt.Errorf("querying responses: %w", err)
	}
	defer rows.Close()

	responses := []entities.Response{}
	for rows.Next() {
		var resp entities.Response
		var createdAt int64
		if err := rows.Scan(
			&resp.ID,
			&resp.Philosopher,
			&resp.Question,
			&resp.Prompt,
			&resp.Text,
			&resp.TransformationID,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning response: %w", err)
		}
		resp.CreatedAt = time.Unix(0, createdAt).UTC()
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}

// CountResponses returns the number of archived responses.
func (r *Repository) CountResponses(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM responses`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting responses: %w", err)
	}
	return count, nil
}
