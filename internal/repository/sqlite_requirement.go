package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rdubel/trailhead/internal/db"
	"github.com/rdubel/trailhead/internal/domain"
)

const requirementColumns = `id, section_id, parent_id, content, order_index, completed`

// SQLiteRequirementRepo implements RequirementRepo over the requirements table.
type SQLiteRequirementRepo struct {
	db db.DBTX
}

func NewSQLiteRequirementRepo(dbtx db.DBTX) *SQLiteRequirementRepo {
	return &SQLiteRequirementRepo{db: dbtx}
}

func (r *SQLiteRequirementRepo) Create(ctx context.Context, req *domain.Requirement) error {
	query := `INSERT INTO requirements (` + requirementColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		req.ID,
		req.SectionID,
		nullableStr(req.ParentID),
		req.Content,
		req.OrderIndex,
		boolToInt(req.Completed),
	)
	if err != nil {
		return fmt.Errorf("inserting requirement: %w", err)
	}
	return nil
}

func (r *SQLiteRequirementRepo) GetScoped(ctx context.Context, pathID, sectionID, reqID string) (*domain.Requirement, error) {
	query := `SELECT q.id, q.section_id, q.parent_id, q.content, q.order_index, q.completed
		FROM requirements q
		JOIN sections s ON q.section_id = s.id
		JOIN units u ON s.unit_id = u.id
		WHERE q.id = ? AND q.section_id = ? AND u.path_id = ? AND q.parent_id IS NULL`
	return scanRequirement(r.db.QueryRowContext(ctx, query, reqID, sectionID, pathID))
}

func (r *SQLiteRequirementRepo) GetChild(ctx context.Context, parentID, childID string) (*domain.Requirement, error) {
	query := `SELECT ` + requirementColumns + ` FROM requirements WHERE id = ? AND parent_id = ?`
	return scanRequirement(r.db.QueryRowContext(ctx, query, childID, parentID))
}

func (r *SQLiteRequirementRepo) ListBySection(ctx context.Context, sectionID string) ([]*domain.Requirement, error) {
	// Top-level rows first so consumers can index children by parent id.
	query := `SELECT ` + requirementColumns + ` FROM requirements
		WHERE section_id = ?
		ORDER BY parent_id IS NOT NULL, order_index, id`
	rows, err := r.db.QueryContext(ctx, query, sectionID)
	if err != nil {
		return nil, fmt.Errorf("listing requirements: %w", err)
	}
	defer rows.Close()
	return scanRequirements(rows)
}

func (r *SQLiteRequirementRepo) ListChildren(ctx context.Context, parentID string) ([]*domain.Requirement, error) {
	query := `SELECT ` + requirementColumns + ` FROM requirements WHERE parent_id = ? ORDER BY order_index, id`
	rows, err := r.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing child requirements: %w", err)
	}
	defer rows.Close()
	return scanRequirements(rows)
}

func (r *SQLiteRequirementRepo) Update(ctx context.Context, req *domain.Requirement) error {
	query := `UPDATE requirements SET content = ?, order_index = ?, completed = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, req.Content, req.OrderIndex, boolToInt(req.Completed), req.ID)
	if err != nil {
		return fmt.Errorf("updating requirement: %w", err)
	}
	return nil
}

func scanRequirement(row *sql.Row) (*domain.Requirement, error) {
	var req domain.Requirement
	var parentIDStr sql.NullString
	var completedInt int
	err := row.Scan(&req.ID, &req.SectionID, &parentIDStr, &req.Content, &req.OrderIndex, &completedInt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("requirement: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning requirement: %w", err)
	}
	req.ParentID = strPtr(parentIDStr)
	req.Completed = intToBool(completedInt)
	return &req, nil
}

func scanRequirements(rows *sql.Rows) ([]*domain.Requirement, error) {
	var reqs []*domain.Requirement
	for rows.Next() {
		var req domain.Requirement
		var parentIDStr sql.NullString
		var completedInt int
		if err := rows.Scan(&req.ID, &req.SectionID, &parentIDStr, &req.Content, &req.OrderIndex, &completedInt); err != nil {
			return nil, fmt.Errorf("scanning requirement row: %w", err)
		}
		req.ParentID = strPtr(parentIDStr)
		req.Completed = intToBool(completedInt)
		reqs = append(reqs, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating requirements: %w", err)
	}
	return reqs, nil
}
