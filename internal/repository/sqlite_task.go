package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/lifeos/internal/db"
	"github.com/alexanderramin/lifeos/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskColumns = `id, child_id, pillar, title, description, duration_minutes,
	difficulty_level, completed, completion_timestamp, date_assigned, created_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.DailyTask) error {
	query := `INSERT INTO daily_tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ChildID,
		string(t.Pillar),
		t.Title,
		t.Description,
		t.DurationMinutes,
		string(t.DifficultyLevel),
		boolToInt(t.Completed),
		nullableTimeToString(t.CompletionTimestamp, time.RFC3339),
		t.DateAssigned.Format(dateLayout),
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting daily task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.DailyTask, error) {
	query := `SELECT ` + taskColumns + ` FROM daily_tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	t, err := scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("daily task: %w", ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) ListByChildAndDate(ctx context.Context, childID string, date time.Time) ([]*domain.DailyTask, error) {
	query := `SELECT ` + taskColumns + ` FROM daily_tasks
		WHERE child_id = ? AND date_assigned = ?
		ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, childID, date.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing daily tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.DailyTask
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) ListOutcomesSince(ctx context.Context, childID string, since time.Time) ([]domain.TaskOutcome, error) {
	query := `SELECT pillar, completed, date_assigned FROM daily_tasks
		WHERE child_id = ? AND date_assigned >= ?
		ORDER BY date_assigned, id`
	rows, err := r.db.QueryContext(ctx, query, childID, since.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing task outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []domain.TaskOutcome
	for rows.Next() {
		var pillar, dateStr string
		var completed int
		if err := rows.Scan(&pillar, &completed, &dateStr); err != nil {
			return nil, fmt.Errorf("scanning task outcome: %w", err)
		}
		assigned, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing date_assigned: %w", err)
		}
		outcomes = append(outcomes, domain.TaskOutcome{
			Pillar:       domain.Pillar(pillar),
			Completed:    intToBool(completed),
			DateAssigned: assigned,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task outcomes: %w", err)
	}
	return outcomes, nil
}

func (r *SQLiteTaskRepo) CountSince(ctx context.Context, childID string, since time.Time) (total, completed int, err error) {
	query := `SELECT COUNT(*), COALESCE(SUM(completed), 0) FROM daily_tasks
		WHERE child_id = ? AND date_assigned >= ?`
	row := r.db.QueryRowContext(ctx, query, childID, since.Format(dateLayout))
	if err := row.Scan(&total, &completed); err != nil {
		return 0, 0, fmt.Errorf("counting tasks: %w", err)
	}
	return total, completed, nil
}

func (r *SQLiteTaskRepo) SetCompleted(ctx context.Context, id string, completed bool, completedAt *time.Time) error {
	query := `UPDATE daily_tasks SET completed = ?, completion_timestamp = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		boolToInt(completed),
		nullableTimeToString(completedAt, time.RFC3339),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating task completion: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("daily task: %w", ErrNotFound)
	}
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning code.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*domain.DailyTask, error) {
	var t domain.DailyTask
	var pillar, difficulty, assignedStr, createdStr string
	var completed int
	var completionStr sql.NullString

	err := row.Scan(&t.ID, &t.ChildID, &pillar, &t.Title, &t.Description,
		&t.DurationMinutes, &difficulty, &completed, &completionStr, &assignedStr, &createdStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning daily task: %w", err)
	}

	t.Pillar = domain.Pillar(pillar)
	t.DifficultyLevel = domain.Difficulty(difficulty)
	t.Completed = intToBool(completed)
	t.CompletionTimestamp = parseNullableTime(completionStr, time.RFC3339)

	t.DateAssigned, err = time.Parse(dateLayout, assignedStr)
	if err != nil {
		return nil, fmt.Errorf("parsing date_assigned: %w", err)
	}
	t.CreatedAt, err = time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &t, nil
}
