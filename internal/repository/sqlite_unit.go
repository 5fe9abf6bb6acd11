package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rdubel/trailhead/internal/db"
	"github.com/rdubel/trailhead/internal/domain"
)

const unitColumns = `id, path_id, name, order_index, complete_by, created_at, updated_at`

// SQLiteUnitRepo implements UnitRepo over the units table.
type SQLiteUnitRepo struct {
	db db.DBTX
}

func NewSQLiteUnitRepo(dbtx db.DBTX) *SQLiteUnitRepo {
	return &SQLiteUnitRepo{db: dbtx}
}

func (r *SQLiteUnitRepo) Create(ctx context.Context, u *domain.Unit) error {
	query := `INSERT INTO units (` + unitColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.PathID,
		u.Name,
		u.OrderIndex,
		nullableTimeToString(u.CompleteBy, dateLayout),
		u.CreatedAt.Format(time.RFC3339),
		u.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting unit: %w", err)
	}
	return nil
}

func (r *SQLiteUnitRepo) GetByID(ctx context.Context, id string) (*domain.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	u, err := scanUnit(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("unit: %w", ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

func (r *SQLiteUnitRepo) ListByPath(ctx context.Context, pathID string) ([]*domain.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE path_id = ? ORDER BY order_index, created_at`
	rows, err := r.db.QueryContext(ctx, query, pathID)
	if err != nil {
		return nil, fmt.Errorf("listing units by path: %w", err)
	}
	defer rows.Close()

	var units []*domain.Unit
	for rows.Next() {
		u, err := scanUnit(rows.Scan)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating units: %w", err)
	}
	return units, nil
}

func (r *SQLiteUnitRepo) Update(ctx context.Context, u *domain.Unit) error {
	query := `UPDATE units SET name = ?, order_index = ?, complete_by = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		u.Name,
		u.OrderIndex,
		nullableTimeToString(u.CompleteBy, dateLayout),
		u.UpdatedAt.Format(time.RFC3339),
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("updating unit: %w", err)
	}
	return nil
}

func (r *SQLiteUnitRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM units WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting unit: %w", err)
	}
	return nil
}

func scanUnit(scan func(dest ...any) error) (*domain.Unit, error) {
	var u domain.Unit
	var completeByStr sql.NullString
	var createdAtStr, updatedAtStr string
	if err := scan(&u.ID, &u.PathID, &u.Name, &u.OrderIndex, &completeByStr, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning unit: %w", err)
	}

	u.CompleteBy = parseNullableTime(completeByStr, dateLayout)

	var err error
	u.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	u.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &u, nil
}
