package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/lifeos/internal/repository"
	"github.com/alexanderramin/lifeos/internal/testutil"
)

func TestCheckinService_Record(t *testing.T) {
	database := testutil.NewTestDB(t)
	profiles := repository.NewSQLiteChildProfileRepo(database)
	svc := NewCheckinService(profiles, repository.NewSQLiteCheckinRepo(database))
	ctx := context.Background()

	child := createProfile(t, profiles, 8, "")

	checkin, err := svc.Record(ctx, child.ID, 4, "good day at school")
	require.NoError(t, err)
	assert.NotEmpty(t, checkin.ID)
	assert.Equal(t, 4, checkin.JoyScore)
	assert.Equal(t, "good day at school", checkin.ParentNotes)

	recent, err := svc.ListRecent(ctx, child.ID, 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, checkin.ID, recent[0].ID)
}

func TestCheckinService_Record_RejectsOutOfRangeJoy(t *testing.T) {
	database := testutil.NewTestDB(t)
	profiles := repository.NewSQLiteChildProfileRepo(database)
	svc := NewCheckinService(profiles, repository.NewSQLiteCheckinRepo(database))

	child := createProfile(t, profiles, 8, "")

	for _, joy := range []int{0, 6} {
		_, err := svc.Record(context.Background(), child.ID, joy, "")
		assert.Error(t, err, "joy %d", joy)
	}
}

func TestCheckinService_Record_UnknownChild(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCheckinService(
		repository.NewSQLiteChildProfileRepo(database),
		repository.NewSQLiteCheckinRepo(database),
	)

	_, err := svc.Record(context.Background(), "missing", 3, "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
