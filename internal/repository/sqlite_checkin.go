package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lifeos/internal/db"
	"github.com/alexanderramin/lifeos/internal/domain"
)

// SQLiteCheckinRepo implements CheckinRepo using a SQLite database.
type SQLiteCheckinRepo struct {
	db db.DBTX
}

// NewSQLiteCheckinRepo creates a new SQLiteCheckinRepo.
func NewSQLiteCheckinRepo(conn db.DBTX) *SQLiteCheckinRepo {
	return &SQLiteCheckinRepo{db: conn}
}

func (r *SQLiteCheckinRepo) Create(ctx context.Context, c *domain.DailyCheckin) error {
	query := `INSERT INTO daily_checkins (id, child_id, joy_score, parent_notes, checkin_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.ChildID,
		c.JoyScore,
		c.ParentNotes,
		c.CheckinDate.Format(dateLayout),
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting daily checkin: %w", err)
	}
	return nil
}

func (r *SQLiteCheckinRepo) ListRecent(ctx context.Context, childID string, limit int) ([]*domain.DailyCheckin, error) {
	query := `SELECT id, child_id, joy_score, parent_notes, checkin_date, created_at
		FROM daily_checkins
		WHERE child_id = ?
		ORDER BY checkin_date DESC, created_at DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, childID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing daily checkins: %w", err)
	}
	defer rows.Close()

	var checkins []*domain.DailyCheckin
	for rows.Next() {
		var c domain.DailyCheckin
		var dateStr, createdStr string
		if err := rows.Scan(&c.ID, &c.ChildID, &c.JoyScore, &c.ParentNotes, &dateStr, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning daily checkin: %w", err)
		}
		c.CheckinDate, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing checkin_date: %w", err)
		}
		c.CreatedAt, err = time.Parse(time.RFC3339, createdStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		checkins = append(checkins, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily checkins: %w", err)
	}
	return checkins, nil
}
