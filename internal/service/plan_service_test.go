package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/lifeos/internal/app"
	"github.com/alexanderramin/lifeos/internal/domain"
	"github.com/alexanderramin/lifeos/internal/generation"
	"github.com/alexanderramin/lifeos/internal/llm"
	"github.com/alexanderramin/lifeos/internal/repository"
	"github.com/alexanderramin/lifeos/internal/testutil"
)

type planFixture struct {
	profiles repository.ChildProfileRepo
	tasks    repository.TaskRepo
	checkins repository.CheckinRepo
	plan     PlanService
}

func newPlanFixture(t *testing.T, factory GeneratorFactory) *planFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	profiles := repository.NewSQLiteChildProfileRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	checkins := repository.NewSQLiteCheckinRepo(database)
	plan := NewPlanService(profiles, tasks, checkins, testutil.NewTestUoW(database), factory)
	return &planFixture{profiles: profiles, tasks: tasks, checkins: checkins, plan: plan}
}

func fallbackFactory(string) generation.TaskGenerator {
	return generation.NewStaticFallbackGenerator()
}

func createProfile(t *testing.T, repo repository.ChildProfileRepo, ageYears int, priority string) *domain.ChildProfile {
	t.Helper()
	now := time.Now().UTC()
	p := &domain.ChildProfile{
		ID:             uuid.NewString(),
		Name:           "Test Child",
		DateOfBirth:    now.AddDate(-ageYears, 0, -30),
		Interests:      []string{},
		ParentPriority: priority,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func seedHistoryTask(t *testing.T, repo repository.TaskRepo, childID string, pillar domain.Pillar, completed bool, daysAgo int) {
	t.Helper()
	assigned := dateOnly(time.Now()).AddDate(0, 0, -daysAgo)
	task := &domain.DailyTask{
		ID:              uuid.NewString(),
		ChildID:         childID,
		Pillar:          pillar,
		Title:           "History task",
		Description:     "Past assignment.",
		DurationMinutes: 15,
		DifficultyLevel: domain.DifficultyMedium,
		Completed:       completed,
		DateAssigned:    assigned,
		CreatedAt:       assigned,
	}
	require.NoError(t, repo.Create(context.Background(), task))
}

func seedCheckin(t *testing.T, repo repository.CheckinRepo, childID string, joy int, daysAgo int) {
	t.Helper()
	date := dateOnly(time.Now()).AddDate(0, 0, -daysAgo)
	c := &domain.DailyCheckin{
		ID:          uuid.NewString(),
		ChildID:     childID,
		JoyScore:    joy,
		CheckinDate: date,
		CreatedAt:   date,
	}
	require.NoError(t, repo.Create(context.Background(), c))
}

func TestGeneratePlan_FullLoadWithSpotlight(t *testing.T) {
	f := newPlanFixture(t, fallbackFactory)
	ctx := context.Background()
	child := createProfile(t, f.profiles, 10, "encourage fitness")

	// 10 tasks in the window, 9 completed: rate 90. Language at 1/2 sits
	// far enough under the global rate to be flagged weak.
	for i := 0; i < 8; i++ {
		seedHistoryTask(t, f.tasks, child.ID, domain.PillarCognitive, true, 1+i%5)
	}
	seedHistoryTask(t, f.tasks, child.ID, domain.PillarLanguage, true, 2)
	seedHistoryTask(t, f.tasks, child.ID, domain.PillarLanguage, false, 3)

	created, err := f.plan.GeneratePlan(ctx, child.ID, generation.ModelHintFallback)
	require.NoError(t, err)
	require.Len(t, created, 9) // 5 generated + 4 character lessons

	// Generated block follows canonical pillar order.
	for i, pillar := range domain.AllPillars {
		assert.Equal(t, pillar, created[i].Pillar)
	}

	// High completion shifted the Language seed from easy to medium, and
	// the weak pillar got the duration boost and description marker.
	language := created[2]
	assert.Equal(t, 17, language.DurationMinutes)
	assert.Equal(t, domain.DifficultyMedium, language.DifficultyLevel)
	assert.True(t, strings.HasPrefix(language.Description, "(Priority pillar focus) "))

	// Character lessons keep their age-band values untouched.
	for _, task := range created[5:] {
		assert.Equal(t, domain.PillarCharacter, task.Pillar)
		assert.Equal(t, 10, task.DurationMinutes)
		assert.Equal(t, domain.DifficultyMedium, task.DifficultyLevel)
	}

	// The plan was persisted for today.
	stored, err := f.tasks.ListByChildAndDate(ctx, child.ID, dateOnly(time.Now()))
	require.NoError(t, err)
	assert.Len(t, stored, 9)
}

func TestGeneratePlan_ReducedLoadOnLowJoyStreak(t *testing.T) {
	f := newPlanFixture(t, fallbackFactory)
	ctx := context.Background()
	child := createProfile(t, f.profiles, 10, "discipline")

	// Rate 20 with a single pillar, so no weak pillar is flagged.
	seedHistoryTask(t, f.tasks, child.ID, domain.PillarCognitive, true, 1)
	for i := 0; i < 4; i++ {
		seedHistoryTask(t, f.tasks, child.ID, domain.PillarCognitive, false, 1+i)
	}
	for day := 0; day < 5; day++ {
		seedCheckin(t, f.checkins, child.ID, 2, day)
	}

	created, err := f.plan.GeneratePlan(ctx, child.ID, generation.ModelHintFallback)
	require.NoError(t, err)
	require.Len(t, created, 8) // 4 reduced-load tasks + 4 character lessons

	// Priority keyword "discipline" puts Character first, then canonical fill.
	assert.Equal(t, domain.PillarCharacter, created[0].Pillar)
	assert.Equal(t, domain.PillarCognitive, created[1].Pillar)
	assert.Equal(t, domain.PillarPhysical, created[2].Pillar)
	assert.Equal(t, domain.PillarLanguage, created[3].Pillar)

	// Low completion scales durations by 0.85 with the minimum floor and
	// eases difficulty.
	assert.Equal(t, 9, created[0].DurationMinutes)  // round(10*0.85)
	assert.Equal(t, 17, created[1].DurationMinutes) // round(20*0.85)
	assert.Equal(t, domain.DifficultyEasy, created[0].DifficultyLevel)
	assert.Equal(t, domain.DifficultyEasy, created[1].DifficultyLevel) // medium eased
	for _, task := range created[:4] {
		assert.GreaterOrEqual(t, task.DurationMinutes, 8)
	}
}

func TestGeneratePlan_NoHistoryUsesEasierBaseline(t *testing.T) {
	f := newPlanFixture(t, fallbackFactory)
	child := createProfile(t, f.profiles, 5, "")

	// Empty history means rate 0, which triggers the low-completion rule.
	created, err := f.plan.GeneratePlan(context.Background(), child.ID, generation.ModelHintFallback)
	require.NoError(t, err)
	require.Len(t, created, 9)
	assert.Equal(t, domain.DifficultyEasy, created[0].DifficultyLevel)
}

func TestGeneratePlan_ProfileNotFound(t *testing.T) {
	f := newPlanFixture(t, fallbackFactory)

	_, err := f.plan.GeneratePlan(context.Background(), "missing", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// missingPillarGenerator drops one requested pillar from its output.
type missingPillarGenerator struct {
	drop domain.Pillar
}

func (g *missingPillarGenerator) Name() string { return "missing-pillar" }

func (g *missingPillarGenerator) Generate(ctx context.Context, age int, parentPriority string, strategy domain.GenerationStrategy) ([]domain.RawTask, error) {
	var tasks []domain.RawTask
	for _, pillar := range strategy.TargetPillars {
		if pillar == g.drop {
			continue
		}
		tasks = append(tasks, domain.RawTask{
			Pillar:          pillar,
			Title:           "Task",
			Description:     "d",
			DurationMinutes: 20,
			DifficultyLevel: domain.DifficultyMedium,
		})
	}
	return tasks, nil
}

func TestGeneratePlan_MissingPillarFailsWhole(t *testing.T) {
	f := newPlanFixture(t, func(string) generation.TaskGenerator {
		return &missingPillarGenerator{drop: domain.PillarCreativity}
	})
	ctx := context.Background()
	child := createProfile(t, f.profiles, 10, "")

	_, err := f.plan.GeneratePlan(ctx, child.ID, "")
	require.Error(t, err)

	var planErr *app.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, app.PlanErrIncomplete, planErr.Code)

	// No partial plan may be persisted.
	stored, err := f.tasks.ListByChildAndDate(ctx, child.ID, dateOnly(time.Now()))
	require.NoError(t, err)
	assert.Empty(t, stored)
}

// failingGenerator simulates a malformed live backend response.
type failingGenerator struct {
	err error
}

func (g *failingGenerator) Name() string { return "failing" }

func (g *failingGenerator) Generate(ctx context.Context, age int, parentPriority string, strategy domain.GenerationStrategy) ([]domain.RawTask, error) {
	return nil, g.err
}

func TestGeneratePlan_MalformedOutputIsAdapterFormatError(t *testing.T) {
	f := newPlanFixture(t, func(string) generation.TaskGenerator {
		return &failingGenerator{err: fmt.Errorf("extract: %w", llm.ErrInvalidOutput)}
	})
	child := createProfile(t, f.profiles, 10, "")

	_, err := f.plan.GeneratePlan(context.Background(), child.ID, "")
	require.Error(t, err)

	var planErr *app.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, app.PlanErrAdapterFormat, planErr.Code)
}

func TestGeneratePlan_LiveFailureNeverFallsBack(t *testing.T) {
	backendErr := llm.ErrOllamaUnavailable
	f := newPlanFixture(t, func(string) generation.TaskGenerator {
		return &failingGenerator{err: backendErr}
	})
	ctx := context.Background()
	child := createProfile(t, f.profiles, 10, "")

	_, err := f.plan.GeneratePlan(ctx, child.ID, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, backendErr))

	stored, err := f.tasks.ListByChildAndDate(ctx, child.ID, dateOnly(time.Now()))
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestGeneratePlan_NilGeneratorIsConfigError(t *testing.T) {
	f := newPlanFixture(t, func(string) generation.TaskGenerator { return nil })
	child := createProfile(t, f.profiles, 10, "")

	_, err := f.plan.GeneratePlan(context.Background(), child.ID, "bogus")
	require.Error(t, err)

	var planErr *app.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, app.PlanErrConfig, planErr.Code)
}

func TestGeneratePlan_PersistFailureRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	profiles := repository.NewSQLiteChildProfileRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	checkins := repository.NewSQLiteCheckinRepo(database)
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: fmt.Errorf("disk full")}
	plan := NewPlanService(profiles, tasks, checkins, uow, fallbackFactory)

	ctx := context.Background()
	child := createProfile(t, profiles, 10, "")

	_, err := plan.GeneratePlan(ctx, child.ID, generation.ModelHintFallback)
	require.Error(t, err)

	var planErr *app.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, app.PlanErrDataAccess, planErr.Code)

	stored, listErr := tasks.ListByChildAndDate(ctx, child.ID, dateOnly(time.Now()))
	require.NoError(t, listErr)
	assert.Empty(t, stored)
}
