package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rdubel/trailhead/internal/db"
	"github.com/rdubel/trailhead/internal/domain"
)

const pathColumns = `id, name, description, created_at, updated_at`

// SQLitePathRepo implements PathRepo over the learning_paths table.
type SQLitePathRepo struct {
	db db.DBTX
}

func NewSQLitePathRepo(dbtx db.DBTX) *SQLitePathRepo {
	return &SQLitePathRepo{db: dbtx}
}

func (r *SQLitePathRepo) Create(ctx context.Context, p *domain.LearningPath) error {
	query := `INSERT INTO learning_paths (` + pathColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting learning path: %w", err)
	}
	return nil
}

func (r *SQLitePathRepo) GetByID(ctx context.Context, id string) (*domain.LearningPath, error) {
	query := `SELECT ` + pathColumns + ` FROM learning_paths WHERE id = ?`
	return scanPath(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLitePathRepo) List(ctx context.Context) ([]*domain.LearningPath, error) {
	query := `SELECT ` + pathColumns + ` FROM learning_paths ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing learning paths: %w", err)
	}
	defer rows.Close()

	var paths []*domain.LearningPath
	for rows.Next() {
		p, err := scanPathRow(rows)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating learning paths: %w", err)
	}
	return paths, nil
}

func (r *SQLitePathRepo) Update(ctx context.Context, p *domain.LearningPath) error {
	query := `UPDATE learning_paths SET name = ?, description = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Description,
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating learning path: %w", err)
	}
	return nil
}

func (r *SQLitePathRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM learning_paths WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting learning path: %w", err)
	}
	return nil
}

func scanPath(row *sql.Row) (*domain.LearningPath, error) {
	var p domain.LearningPath
	var createdAtStr, updatedAtStr string
	err := row.Scan(&p.ID, &p.Name, &p.Description, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("learning path: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning learning path: %w", err)
	}
	return populatePath(&p, createdAtStr, updatedAtStr)
}

func scanPathRow(rows *sql.Rows) (*domain.LearningPath, error) {
	var p domain.LearningPath
	var createdAtStr, updatedAtStr string
	if err := rows.Scan(&p.ID, &p.Name, &p.Description, &createdAtStr, &updatedAtStr); err != nil {
		return nil, fmt.Errorf("scanning learning path row: %w", err)
	}
	return populatePath(&p, createdAtStr, updatedAtStr)
}

func populatePath(p *domain.LearningPath, createdAtStr, updatedAtStr string) (*domain.LearningPath, error) {
	var err error
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return p, nil
}
