package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/lifeos/internal/db"
	"github.com/alexanderramin/lifeos/internal/domain"
)

// SQLiteMilestoneRepo implements MilestoneRepo using a SQLite database.
type SQLiteMilestoneRepo struct {
	db db.DBTX
}

// NewSQLiteMilestoneRepo creates a new SQLiteMilestoneRepo.
func NewSQLiteMilestoneRepo(conn db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: conn}
}

func (r *SQLiteMilestoneRepo) ListByChild(ctx context.Context, childID string) ([]*domain.Milestone, error) {
	query := `SELECT id, child_id, age_phase, title, achieved
		FROM milestones WHERE child_id = ? ORDER BY age_phase, title`
	rows, err := r.db.QueryContext(ctx, query, childID)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	var milestones []*domain.Milestone
	for rows.Next() {
		var m domain.Milestone
		var achieved int
		if err := rows.Scan(&m.ID, &m.ChildID, &m.AgePhase, &m.Title, &achieved); err != nil {
			return nil, fmt.Errorf("scanning milestone: %w", err)
		}
		m.Achieved = intToBool(achieved)
		milestones = append(milestones, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}
	return milestones, nil
}

func (r *SQLiteMilestoneRepo) Upsert(ctx context.Context, m *domain.Milestone) error {
	query := `INSERT INTO milestones (id, child_id, age_phase, title, achieved)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(child_id, age_phase, title) DO UPDATE SET achieved = excluded.achieved`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.ChildID,
		m.AgePhase,
		m.Title,
		boolToInt(m.Achieved),
	)
	if err != nil {
		return fmt.Errorf("upserting milestone: %w", err)
	}
	return nil
}
