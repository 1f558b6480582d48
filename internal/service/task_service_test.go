package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/lifeos/internal/domain"
	"github.com/alexanderramin/lifeos/internal/repository"
	"github.com/alexanderramin/lifeos/internal/testutil"
)

func TestTaskService_SetCompleted_SetsTimestamp(t *testing.T) {
	database := testutil.NewTestDB(t)
	profiles := repository.NewSQLiteChildProfileRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	svc := NewTaskService(tasks)
	ctx := context.Background()

	child := createProfile(t, profiles, 8, "")
	seedHistoryTask(t, tasks, child.ID, domain.PillarCognitive, false, 0)

	today, err := svc.ListByChildAndDate(ctx, child.ID, time.Now())
	require.NoError(t, err)
	require.Len(t, today, 1)

	updated, err := svc.SetCompleted(ctx, today[0].ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.CompletionTimestamp)

	// Toggling back clears the timestamp.
	updated, err = svc.SetCompleted(ctx, today[0].ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Completed)
	assert.Nil(t, updated.CompletionTimestamp)
}

func TestTaskService_SetCompleted_UnknownTask(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewTaskService(repository.NewSQLiteTaskRepo(database))

	_, err := svc.SetCompleted(context.Background(), "missing", true)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
