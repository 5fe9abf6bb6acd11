package repository

import (
	"context"
	"fmt"

	"database/sql"

	"github.com/rdubel/trailhead/internal/db"
	"github.com/rdubel/trailhead/internal/domain"
)

// SQLiteResourceRepo implements ResourceRepo over the resources table.
// Resources are inert reference rows: created at import, read for display.
type SQLiteResourceRepo struct {
	db db.DBTX
}

func NewSQLiteResourceRepo(dbtx db.DBTX) *SQLiteResourceRepo {
	return &SQLiteResourceRepo{db: dbtx}
}

func (r *SQLiteResourceRepo) Create(ctx context.Context, res *domain.Resource) error {
	query := `INSERT INTO resources (id, section_id, name, url, description, order_index)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		res.ID,
		res.SectionID,
		res.Name,
		nullableStr(res.URL),
		nullableStr(res.Description),
		res.OrderIndex,
	)
	if err != nil {
		return fmt.Errorf("inserting resource: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) ListBySection(ctx context.Context, sectionID string) ([]*domain.Resource, error) {
	query := `SELECT id, section_id, name, url, description, order_index
		FROM resources WHERE section_id = ? ORDER BY order_index, id`
	rows, err := r.db.QueryContext(ctx, query, sectionID)
	if err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}
	defer rows.Close()

	var resources []*domain.Resource
	for rows.Next() {
		var res domain.Resource
		var urlStr, descStr sql.NullString
		if err := rows.Scan(&res.ID, &res.SectionID, &res.Name, &urlStr, &descStr, &res.OrderIndex); err != nil {
			return nil, fmt.Errorf("scanning resource row: %w", err)
		}
		res.URL = strPtr(urlStr)
		res.Description = strPtr(descStr)
		resources = append(resources, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resources: %w", err)
	}
	return resources, nil
}
