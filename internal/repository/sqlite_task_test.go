package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/lifeos/internal/db"
	"github.com/alexanderramin/lifeos/internal/domain"
	"github.com/alexanderramin/lifeos/internal/testutil"
)

func seedTask(t *testing.T, conn db.DBTX, childID string, pillar domain.Pillar, completed bool, assigned time.Time) *domain.DailyTask {
	t.Helper()
	task := &domain.DailyTask{
		ID:              uuid.NewString(),
		ChildID:         childID,
		Pillar:          pillar,
		Title:           "Seeded task",
		Description:     "A task seeded for tests.",
		DurationMinutes: 15,
		DifficultyLevel: domain.DifficultyMedium,
		Completed:       completed,
		DateAssigned:    assigned,
		CreatedAt:       assigned.Add(6 * time.Hour),
	}
	require.NoError(t, NewSQLiteTaskRepo(conn).Create(context.Background(), task))
	return task
}

func TestTaskRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	child := seedChild(t, database, "Mira")
	completedAt := time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)
	task := &domain.DailyTask{
		ID:                  uuid.NewString(),
		ChildID:             child.ID,
		Pillar:              domain.PillarLanguage,
		Title:               "Story retell",
		Description:         "Retell today's story in your own words.",
		DurationMinutes:     17,
		DifficultyLevel:     domain.DifficultyHard,
		Completed:           true,
		CompletionTimestamp: &completedAt,
		DateAssigned:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		CreatedAt:           time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PillarLanguage, got.Pillar)
	assert.Equal(t, "Story retell", got.Title)
	assert.Equal(t, 17, got.DurationMinutes)
	assert.Equal(t, domain.DifficultyHard, got.DifficultyLevel)
	assert.True(t, got.Completed)
	require.NotNil(t, got.CompletionTimestamp)
	assert.True(t, completedAt.Equal(*got.CompletionTimestamp))
	assert.Equal(t, task.DateAssigned, got.DateAssigned)
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_ListByChildAndDate_FiltersByDate(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	child := seedChild(t, database, "Mira")
	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	seedTask(t, database, child.ID, domain.PillarCognitive, false, day1)
	seedTask(t, database, child.ID, domain.PillarPhysical, false, day1)
	seedTask(t, database, child.ID, domain.PillarLanguage, false, day2)

	tasks, err := repo.ListByChildAndDate(ctx, child.ID, day1)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, day1, task.DateAssigned)
	}
}

func TestTaskRepo_ListOutcomesSince_WindowBoundary(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	child := seedChild(t, database, "Mira")
	inside := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	outside := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	seedTask(t, database, child.ID, domain.PillarCognitive, true, inside)
	seedTask(t, database, child.ID, domain.PillarPhysical, false, outside)

	outcomes, err := repo.ListOutcomesSince(ctx, child.ID, inside)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.PillarCognitive, outcomes[0].Pillar)
	assert.True(t, outcomes[0].Completed)
	assert.Equal(t, inside, outcomes[0].DateAssigned)
}

func TestTaskRepo_CountSince(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	child := seedChild(t, database, "Mira")
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	seedTask(t, database, child.ID, domain.PillarCognitive, true, since)
	seedTask(t, database, child.ID, domain.PillarPhysical, false, since.AddDate(0, 0, 1))
	seedTask(t, database, child.ID, domain.PillarLanguage, true, since.AddDate(0, 0, -1))

	total, completed, err := repo.CountSince(ctx, child.ID, since)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, completed)
}

func TestTaskRepo_CountSince_NoTasks(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)

	child := seedChild(t, database, "Mira")
	total, completed, err := repo.CountSince(context.Background(), child.ID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, completed)
}

func TestTaskRepo_SetCompleted_Toggle(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	child := seedChild(t, database, "Mira")
	task := seedTask(t, database, child.ID, domain.PillarCognitive, false, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	completedAt := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SetCompleted(ctx, task.ID, true, &completedAt))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	require.NotNil(t, got.CompletionTimestamp)
	assert.True(t, completedAt.Equal(*got.CompletionTimestamp))

	require.NoError(t, repo.SetCompleted(ctx, task.ID, false, nil))
	got, err = repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
	assert.Nil(t, got.CompletionTimestamp)
}

func TestTaskRepo_SetCompleted_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)

	err := repo.SetCompleted(context.Background(), "missing", true, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
