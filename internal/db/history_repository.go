package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/backshelf/reelpath/internal/models"
)

// History repository errors.
var (
	ErrHistoryNotFound = errors.New("history record not found")
	ErrInvalidHistory  = errors.New("invalid history record")
)

// HistoryRepository handles persistence of rendered rename plans.
type HistoryRepository struct {
	db *DB
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(db *DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create stores a new history record, assigning an id and timestamp if unset.
func (r *HistoryRepository) Create(ctx context.Context, record *models.HistoryRecord) error {
	if record.SourceFile == "" || record.RenderedPath == "" {
		return ErrInvalidHistory
	}

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	} else {
		record.CreatedAt = record.CreatedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO history (id, source_file, rendered_path, template, preset, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		record.ID,
		record.SourceFile,
		record.RenderedPath,
		record.Template,
		record.Preset,
		record.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", err)
	}

	return nil
}

// Get retrieves a history record by id.
func (r *HistoryRepository) Get(ctx context.Context, id string) (*models.HistoryRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, source_file, rendered_path, template, preset, created_at
		FROM history WHERE id = ?
	`, id)

	record, err := scanHistory(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHistoryNotFound
		}
		return nil, err
	}
	return record, nil
}

// List returns the most recent records, newest first.
func (r *HistoryRepository) List(ctx context.Context, limit int) ([]*models.HistoryRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, source_file, rendered_path, template, preset, created_at
		FROM history
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []*models.HistoryRecord
	for rows.Next() {
		record, err := scanHistory(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history: %w", err)
	}

	return records, nil
}

// Purge deletes all history records and returns how many were removed.
func (r *HistoryRepository) Purge(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM history`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged history: %w", err)
	}
	return n, nil
}

func scanHistory(scan func(...any) error) (*models.HistoryRecord, error) {
	var record models.HistoryRecord
	var createdAt string

	if err := scan(
		&record.ID,
		&record.SourceFile,
		&record.RenderedPath,
		&record.Template,
		&record.Preset,
		&createdAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan history record: %w", err)
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		record.CreatedAt = t
	}

	return &record, nil
}
