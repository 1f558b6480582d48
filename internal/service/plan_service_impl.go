package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/lifeos/internal/app"
	"github.com/alexanderramin/lifeos/internal/db"
	"github.com/alexanderramin/lifeos/internal/domain"
	"github.com/alexanderramin/lifeos/internal/generation"
	"github.com/alexanderramin/lifeos/internal/llm"
	"github.com/alexanderramin/lifeos/internal/planner"
	"github.com/alexanderramin/lifeos/internal/repository"
)

const signalWindowDays = 7

// GeneratorFactory resolves a task generator for a model hint.
type GeneratorFactory func(modelHint string) generation.TaskGenerator

type planService struct {
	profiles  repository.ChildProfileRepo
	tasks     repository.TaskRepo
	checkins  repository.CheckinRepo
	uow       db.UnitOfWork
	selectGen GeneratorFactory
	observer  UseCaseObserver
}

// NewPlanService wires the full plan generation pipeline: signal
// aggregation, strategy derivation, task generation, post-processing,
// character injection and transactional persistence.
func NewPlanService(
	profiles repository.ChildProfileRepo,
	tasks repository.TaskRepo,
	checkins repository.CheckinRepo,
	uow db.UnitOfWork,
	selectGen GeneratorFactory,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		profiles:  profiles,
		tasks:     tasks,
		checkins:  checkins,
		uow:       uow,
		selectGen: selectGen,
		observer:  useCaseObserverOrNoop(observers),
	}
}

type generateResult struct {
	tasks []domain.RawTask
	err   error
}

func (s *planService) GeneratePlan(ctx context.Context, childID string, modelHint string) (created []*domain.DailyTask, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"child_id": childID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	profile, err := s.profiles.GetByID(ctx, childID)
	if err != nil {
		return nil, err
	}

	today := dateOnly(time.Now())
	age := profile.AgeYears(today)

	signal, err := s.computeSignal(ctx, childID, today)
	if err != nil {
		return nil, app.NewPlanError(app.PlanErrDataAccess, err, "reading history for child %s", childID)
	}

	strategy := planner.DeriveStrategy(signal, profile.ParentPriority)
	fields["pillars"] = len(strategy.TargetPillars)

	gen := s.selectGen(modelHint)
	if gen == nil {
		return nil, app.NewPlanError(app.PlanErrConfig, nil, "no task generator resolvable for hint %q", modelHint)
	}
	fields["generator"] = gen.Name()

	// The generator may block on a network call; run it off the calling
	// goroutine and await the result.
	resultCh := make(chan generateResult, 1)
	go func() {
		tasks, genErr := gen.Generate(ctx, age, profile.ParentPriority, strategy)
		resultCh <- generateResult{tasks: tasks, err: genErr}
	}()
	result := <-resultCh
	if result.err != nil {
		if errors.Is(result.err, llm.ErrInvalidOutput) {
			return nil, app.NewPlanError(app.PlanErrAdapterFormat, result.err, "generator returned malformed output")
		}
		return nil, result.err
	}

	ordered, err := reconcileByPillar(result.tasks, strategy.TargetPillars)
	if err != nil {
		return nil, err
	}

	finalTasks := planner.PostProcess(ordered, strategy)
	finalTasks = append(finalTasks, planner.CharacterTasks(age)...)

	now := time.Now().UTC()
	created = make([]*domain.DailyTask, 0, len(finalTasks))
	for _, task := range finalTasks {
		created = append(created, &domain.DailyTask{
			ID:              uuid.New().String(),
			ChildID:         childID,
			Pillar:          task.Pillar,
			Title:           task.Title,
			Description:     task.Description,
			DurationMinutes: task.DurationMinutes,
			DifficultyLevel: task.DifficultyLevel,
			DateAssigned:    today,
			CreatedAt:       now,
		})
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		taskRepo := repository.NewSQLiteTaskRepo(tx)
		for _, task := range created {
			if err := taskRepo.Create(ctx, task); err != nil {
				return app.NewPlanError(app.PlanErrDataAccess, err, "persisting plan for child %s", childID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// computeSignal fetches the trailing history window and reduces it to the
// personalization signal.
func (s *planService) computeSignal(ctx context.Context, childID string, today time.Time) (domain.PersonalizationSignal, error) {
	since := today.AddDate(0, 0, -(signalWindowDays - 1))
	outcomes, err := s.tasks.ListOutcomesSince(ctx, childID, since)
	if err != nil {
		return domain.PersonalizationSignal{}, err
	}

	checkins, err := s.checkins.ListRecent(ctx, childID, planner.JoyStreakLength)
	if err != nil {
		return domain.PersonalizationSignal{}, err
	}
	joyScores := make([]int, 0, len(checkins))
	for _, c := range checkins {
		joyScores = append(joyScores, c.JoyScore)
	}

	return planner.ComputeSignal(outcomes, joyScores), nil
}

// reconcileByPillar re-emits generated tasks in target pillar order and
// fails when any requested pillar is missing.
func reconcileByPillar(tasks []domain.RawTask, targetPillars []domain.Pillar) ([]domain.RawTask, error) {
	byPillar := make(map[domain.Pillar]domain.RawTask, len(tasks))
	for _, task := range tasks {
		byPillar[task.Pillar] = task
	}

	ordered := make([]domain.RawTask, 0, len(targetPillars))
	for _, pillar := range targetPillars {
		task, ok := byPillar[pillar]
		if !ok {
			return nil, app.NewPlanError(app.PlanErrIncomplete, nil,
				"generated tasks did not include required pillar %q", pillar)
		}
		ordered = append(ordered, task)
	}
	return ordered, nil
}
