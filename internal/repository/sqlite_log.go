package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rdubel/trailhead/internal/db"
	"github.com/rdubel/trailhead/internal/domain"
)

const logColumns = `id, path_id, path_name, entry_date, content, created_at, updated_at`

// SQLiteLogRepo implements LogRepo over the log_entries table.
type SQLiteLogRepo struct {
	db db.DBTX
}

func NewSQLiteLogRepo(dbtx db.DBTX) *SQLiteLogRepo {
	return &SQLiteLogRepo{db: dbtx}
}

func (r *SQLiteLogRepo) Create(ctx context.Context, e *domain.LogEntry) error {
	query := `INSERT INTO log_entries (` + logColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.PathID,
		e.PathName,
		e.Date.Format(dateLayout),
		e.Content,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting log entry: %w", err)
	}
	return nil
}

func (r *SQLiteLogRepo) GetByID(ctx context.Context, id string) (*domain.LogEntry, error) {
	query := `SELECT ` + logColumns + ` FROM log_entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	e, err := scanLogEntry(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("log entry: %w", ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLiteLogRepo) List(ctx context.Context) ([]*domain.LogEntry, error) {
	query := `SELECT ` + logColumns + ` FROM log_entries ORDER BY entry_date DESC, created_at, id`
	return r.queryEntries(ctx, query)
}

func (r *SQLiteLogRepo) ListByDate(ctx context.Context, date time.Time) ([]*domain.LogEntry, error) {
	query := `SELECT ` + logColumns + ` FROM log_entries WHERE entry_date = ? ORDER BY created_at, id`
	return r.queryEntries(ctx, query, date.Format(dateLayout))
}

func (r *SQLiteLogRepo) Update(ctx context.Context, e *domain.LogEntry) error {
	query := `UPDATE log_entries SET content = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, e.Content, e.UpdatedAt.Format(time.RFC3339), e.ID)
	if err != nil {
		return fmt.Errorf("updating log entry: %w", err)
	}
	return nil
}

func (r *SQLiteLogRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM log_entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting log entry: %w", err)
	}
	return nil
}

func (r *SQLiteLogRepo) queryEntries(ctx context.Context, query string, args ...any) ([]*domain.LogEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing log entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.LogEntry
	for rows.Next() {
		e, err := scanLogEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating log entries: %w", err)
	}
	return entries, nil
}

func scanLogEntry(scan func(dest ...any) error) (*domain.LogEntry, error) {
	var e domain.LogEntry
	var dateStr, createdAtStr, updatedAtStr string
	if err := scan(&e.ID, &e.PathID, &e.PathName, &dateStr, &e.Content, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning log entry: %w", err)
	}

	var err error
	e.Date, err = time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing entry_date: %w", err)
	}
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &e, nil
}
