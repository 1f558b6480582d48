package generation

import (
	"context"
	"fmt"

	"github.com/alexanderramin/lifeos/internal/domain"
)

type seedTask struct {
	title       string
	description string
	duration    int
	difficulty  domain.Difficulty
}

// StaticFallbackGenerator emits fixed seed tasks per pillar. It needs no
// external backend and always succeeds for valid strategies.
type StaticFallbackGenerator struct{}

// NewStaticFallbackGenerator creates the deterministic generator variant.
func NewStaticFallbackGenerator() *StaticFallbackGenerator {
	return &StaticFallbackGenerator{}
}

func (g *StaticFallbackGenerator) Name() string { return "static-fallback" }

func (g *StaticFallbackGenerator) Generate(ctx context.Context, age int, parentPriority string, strategy domain.GenerationStrategy) ([]domain.RawTask, error) {
	seeds := map[domain.Pillar]seedTask{
		domain.PillarCognitive: {
			title:       "Focus Sprint Puzzle",
			description: fmt.Sprintf("Solve one age-%d logic puzzle aligned with %s.", age, parentPriority),
			duration:    20,
			difficulty:  domain.DifficultyMedium,
		},
		domain.PillarPhysical: {
			title:       "Movement Circuit",
			description: "Complete a short movement routine with stretching and balance.",
			duration:    25,
			difficulty:  domain.DifficultyEasy,
		},
		domain.PillarLanguage: {
			title:       "Story Retell",
			description: "Read/listen to a short story and retell key points aloud.",
			duration:    15,
			difficulty:  domain.DifficultyEasy,
		},
		domain.PillarCharacter: {
			title:       "Kindness Action",
			description: "Plan and complete one helpful action for family or friends.",
			duration:    10,
			difficulty:  domain.DifficultyEasy,
		},
		domain.PillarCreativity: {
			title:       "Create and Share",
			description: "Create a drawing, beat, or short craft and explain your choices.",
			duration:    30,
			difficulty:  domain.DifficultyMedium,
		},
	}

	tasks := make([]domain.RawTask, 0, len(strategy.TargetPillars))
	for _, pillar := range strategy.TargetPillars {
		seed, ok := seeds[pillar]
		if !ok {
			return nil, fmt.Errorf("no seed task for pillar %q", pillar)
		}
		tasks = append(tasks, domain.RawTask{
			Pillar:          pillar,
			Title:           seed.title,
			Description:     seed.description,
			DurationMinutes: seed.duration,
			DifficultyLevel: seed.difficulty,
		})
	}
	return tasks, nil
}
