package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rdubel/trailhead/internal/db"
	"github.com/rdubel/trailhead/internal/domain"
)

const sectionColumns = `id, unit_id, name, code, deadline, order_index,
		unlocked, completed, completed_at, created_at, updated_at`

const sectionColumnsAliased = `s.id, s.unit_id, s.name, s.code, s.deadline, s.order_index,
		s.unlocked, s.completed, s.completed_at, s.created_at, s.updated_at`

// SQLiteSectionRepo implements SectionRepo over the sections table.
type SQLiteSectionRepo struct {
	db db.DBTX
}

func NewSQLiteSectionRepo(dbtx db.DBTX) *SQLiteSectionRepo {
	return &SQLiteSectionRepo{db: dbtx}
}

func (r *SQLiteSectionRepo) Create(ctx context.Context, s *domain.Section) error {
	query := `INSERT INTO sections (` + sectionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.UnitID,
		s.Name,
		s.Code,
		nullableTimeToString(s.Deadline, dateLayout),
		s.OrderIndex,
		boolToInt(s.Unlocked),
		boolToInt(s.Completed),
		nullableTimeToString(s.CompletedAt, time.RFC3339),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting section: %w", err)
	}
	return nil
}

func (r *SQLiteSectionRepo) GetByID(ctx context.Context, id string) (*domain.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE id = ?`
	return r.scanSection(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSectionRepo) GetScoped(ctx context.Context, pathID, sectionID string) (*domain.Section, error) {
	query := `SELECT ` + sectionColumnsAliased + `
		FROM sections s
		JOIN units u ON s.unit_id = u.id
		WHERE s.id = ? AND u.path_id = ?`
	return r.scanSection(r.db.QueryRowContext(ctx, query, sectionID, pathID))
}

func (r *SQLiteSectionRepo) ListByUnit(ctx context.Context, unitID string) ([]*domain.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE unit_id = ? ORDER BY order_index, created_at`
	rows, err := r.db.QueryContext(ctx, query, unitID)
	if err != nil {
		return nil, fmt.Errorf("listing sections by unit: %w", err)
	}
	defer rows.Close()
	return r.scanSections(rows)
}

func (r *SQLiteSectionRepo) NextInUnit(ctx context.Context, unitID string, afterOrder int) (*domain.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections
		WHERE unit_id = ? AND order_index > ?
		ORDER BY order_index LIMIT 1`
	return r.scanSection(r.db.QueryRowContext(ctx, query, unitID, afterOrder))
}

func (r *SQLiteSectionRepo) ListDeadlineCandidates(ctx context.Context) ([]DeadlineCandidate, error) {
	query := `SELECT ` + sectionColumnsAliased + `,
			u.path_id, p.name AS path_name, u.id AS unit_id, u.name AS unit_name
		FROM sections s
		JOIN units u ON s.unit_id = u.id
		JOIN learning_paths p ON u.path_id = p.id
		WHERE s.deadline IS NOT NULL AND s.completed = 0
		ORDER BY p.created_at, p.id, u.order_index, s.order_index`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing deadline candidates: %w", err)
	}
	defer rows.Close()

	var candidates []DeadlineCandidate
	for rows.Next() {
		var s domain.Section
		var deadlineStr, completedAtStr sql.NullString
		var unlockedInt, completedInt int
		var createdAtStr, updatedAtStr string
		var pathID, pathName, unitID, unitName string

		err := rows.Scan(
			&s.ID, &s.UnitID, &s.Name, &s.Code, &deadlineStr, &s.OrderIndex,
			&unlockedInt, &completedInt, &completedAtStr, &createdAtStr, &updatedAtStr,
			&pathID, &pathName, &unitID, &unitName,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning deadline candidate: %w", err)
		}

		if _, err := populateSection(&s, deadlineStr, completedAtStr, unlockedInt, completedInt, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}

		candidates = append(candidates, DeadlineCandidate{
			Section:  s,
			PathID:   pathID,
			PathName: pathName,
			UnitID:   unitID,
			UnitName: unitName,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deadline candidates: %w", err)
	}
	return candidates, nil
}

func (r *SQLiteSectionRepo) Update(ctx context.Context, s *domain.Section) error {
	query := `UPDATE sections SET name = ?, code = ?, deadline = ?, order_index = ?,
		unlocked = ?, completed = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.Name,
		s.Code,
		nullableTimeToString(s.Deadline, dateLayout),
		s.OrderIndex,
		boolToInt(s.Unlocked),
		boolToInt(s.Completed),
		nullableTimeToString(s.CompletedAt, time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating section: %w", err)
	}
	return nil
}

func (r *SQLiteSectionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sections WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting section: %w", err)
	}
	return nil
}

func (r *SQLiteSectionRepo) scanSection(row *sql.Row) (*domain.Section, error) {
	var s domain.Section
	var deadlineStr, completedAtStr sql.NullString
	var unlockedInt, completedInt int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&s.ID, &s.UnitID, &s.Name, &s.Code, &deadlineStr, &s.OrderIndex,
		&unlockedInt, &completedInt, &completedAtStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("section: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning section: %w", err)
	}

	return populateSection(&s, deadlineStr, completedAtStr, unlockedInt, completedInt, createdAtStr, updatedAtStr)
}

func (r *SQLiteSectionRepo) scanSections(rows *sql.Rows) ([]*domain.Section, error) {
	var sections []*domain.Section
	for rows.Next() {
		var s domain.Section
		var deadlineStr, completedAtStr sql.NullString
		var unlockedInt, completedInt int
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&s.ID, &s.UnitID, &s.Name, &s.Code, &deadlineStr, &s.OrderIndex,
			&unlockedInt, &completedInt, &completedAtStr, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning section row: %w", err)
		}

		sec, err := populateSection(&s, deadlineStr, completedAtStr, unlockedInt, completedInt, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	return sections, nil
}

func populateSection(
	s *domain.Section,
	deadlineStr, completedAtStr sql.NullString,
	unlockedInt, completedInt int,
	createdAtStr, updatedAtStr string,
) (*domain.Section, error) {
	s.Deadline = parseNullableTime(deadlineStr, dateLayout)
	s.CompletedAt = parseNullableTime(completedAtStr, time.RFC3339)
	s.Unlocked = intToBool(unlockedInt)
	s.Completed = intToBool(completedInt)

	var err error
	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return s, nil
}
