package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rdubel/trailhead/internal/db"
	"github.com/rdubel/trailhead/internal/domain"
)

const topicColumns = `id, section_id, content, order_index, completed`

// SQLiteTopicRepo implements TopicRepo over the topics table.
type SQLiteTopicRepo struct {
	db db.DBTX
}

func NewSQLiteTopicRepo(dbtx db.DBTX) *SQLiteTopicRepo {
	return &SQLiteTopicRepo{db: dbtx}
}

func (r *SQLiteTopicRepo) Create(ctx context.Context, t *domain.Topic) error {
	query := `INSERT INTO topics (` + topicColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.SectionID, t.Content, t.OrderIndex, boolToInt(t.Completed),
	)
	if err != nil {
		return fmt.Errorf("inserting topic: %w", err)
	}
	return nil
}

func (r *SQLiteTopicRepo) GetScoped(ctx context.Context, pathID, sectionID, topicID string) (*domain.Topic, error) {
	query := `SELECT t.id, t.section_id, t.content, t.order_index, t.completed
		FROM topics t
		JOIN sections s ON t.section_id = s.id
		JOIN units u ON s.unit_id = u.id
		WHERE t.id = ? AND t.section_id = ? AND u.path_id = ?`
	row := r.db.QueryRowContext(ctx, query, topicID, sectionID, pathID)

	var t domain.Topic
	var completedInt int
	err := row.Scan(&t.ID, &t.SectionID, &t.Content, &t.OrderIndex, &completedInt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("topic: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning topic: %w", err)
	}
	t.Completed = intToBool(completedInt)
	return &t, nil
}

func (r *SQLiteTopicRepo) ListBySection(ctx context.Context, sectionID string) ([]*domain.Topic, error) {
	query := `SELECT ` + topicColumns + ` FROM topics WHERE section_id = ? ORDER BY order_index, id`
	rows, err := r.db.QueryContext(ctx, query, sectionID)
	if err != nil {
		return nil, fmt.Errorf("listing topics: %w", err)
	}
	defer rows.Close()

	var topics []*domain.Topic
	for rows.Next() {
		var t domain.Topic
		var completedInt int
		if err := rows.Scan(&t.ID, &t.SectionID, &t.Content, &t.OrderIndex, &completedInt); err != nil {
			return nil, fmt.Errorf("scanning topic row: %w", err)
		}
		t.Completed = intToBool(completedInt)
		topics = append(topics, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating topics: %w", err)
	}
	return topics, nil
}

func (r *SQLiteTopicRepo) Update(ctx context.Context, t *domain.Topic) error {
	query := `UPDATE topics SET content = ?, order_index = ?, completed = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, t.Content, t.OrderIndex, boolToInt(t.Completed), t.ID)
	if err != nil {
		return fmt.Errorf("updating topic: %w", err)
	}
	return nil
}
