package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/lifeos/internal/db"
	"github.com/alexanderramin/lifeos/internal/domain"
)

// SQLiteChildProfileRepo implements ChildProfileRepo using a SQLite database.
type SQLiteChildProfileRepo struct {
	db db.DBTX
}

// NewSQLiteChildProfileRepo creates a new SQLiteChildProfileRepo.
func NewSQLiteChildProfileRepo(conn db.DBTX) *SQLiteChildProfileRepo {
	return &SQLiteChildProfileRepo{db: conn}
}

func (r *SQLiteChildProfileRepo) Create(ctx context.Context, p *domain.ChildProfile) error {
	interests, err := marshalInterests(p.Interests)
	if err != nil {
		return err
	}

	query := `INSERT INTO child_profiles (id, name, date_of_birth, interests, parent_priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.DateOfBirth.Format(dateLayout),
		interests,
		p.ParentPriority,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting child profile: %w", err)
	}
	return nil
}

func (r *SQLiteChildProfileRepo) GetByID(ctx context.Context, id string) (*domain.ChildProfile, error) {
	query := `SELECT id, name, date_of_birth, interests, parent_priority, created_at, updated_at
		FROM child_profiles WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanProfile(row)
}

func (r *SQLiteChildProfileRepo) List(ctx context.Context) ([]*domain.ChildProfile, error) {
	query := `SELECT id, name, date_of_birth, interests, parent_priority, created_at, updated_at
		FROM child_profiles ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing child profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.ChildProfile
	for rows.Next() {
		var p domain.ChildProfile
		var dobStr, interestsStr, createdStr, updatedStr string
		if err := rows.Scan(&p.ID, &p.Name, &dobStr, &interestsStr, &p.ParentPriority, &createdStr, &updatedStr); err != nil {
			return nil, fmt.Errorf("scanning child profile row: %w", err)
		}
		profile, parseErr := r.populateProfile(&p, dobStr, interestsStr, createdStr, updatedStr)
		if parseErr != nil {
			return nil, parseErr
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating child profiles: %w", err)
	}
	return profiles, nil
}

func (r *SQLiteChildProfileRepo) Update(ctx context.Context, p *domain.ChildProfile) error {
	interests, err := marshalInterests(p.Interests)
	if err != nil {
		return err
	}

	query := `UPDATE child_profiles
		SET name = ?, date_of_birth = ?, interests = ?, parent_priority = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.DateOfBirth.Format(dateLayout),
		interests,
		p.ParentPriority,
		nowUTC(),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating child profile: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("child profile: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteChildProfileRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM child_profiles WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting child profile: %w", err)
	}
	return nil
}

// scanProfile scans a single profile from a *sql.Row.
func (r *SQLiteChildProfileRepo) scanProfile(row *sql.Row) (*domain.ChildProfile, error) {
	var p domain.ChildProfile
	var dobStr, interestsStr, createdStr, updatedStr string

	err := row.Scan(&p.ID, &p.Name, &dobStr, &interestsStr, &p.ParentPriority, &createdStr, &updatedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("child profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning child profile: %w", err)
	}

	return r.populateProfile(&p, dobStr, interestsStr, createdStr, updatedStr)
}

// populateProfile fills in parsed fields after scanning raw strings.
func (r *SQLiteChildProfileRepo) populateProfile(p *domain.ChildProfile, dobStr, interestsStr, createdStr, updatedStr string) (*domain.ChildProfile, error) {
	var parseErr error
	p.DateOfBirth, parseErr = time.Parse(dateLayout, dobStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing date_of_birth: %w", parseErr)
	}
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	if err := json.Unmarshal([]byte(interestsStr), &p.Interests); err != nil {
		return nil, fmt.Errorf("parsing interests: %w", err)
	}
	return p, nil
}

func marshalInterests(interests []string) (string, error) {
	if interests == nil {
		interests = []string{}
	}
	data, err := json.Marshal(interests)
	if err != nil {
		return "", fmt.Errorf("encoding interests: %w", err)
	}
	return string(data), nil
}
