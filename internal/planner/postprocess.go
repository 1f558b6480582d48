package planner

import (
	"math"
	"strings"

	"github.com/alexanderramin/lifeos/internal/domain"
)

const (
	// MinTaskDurationMinutes floors every scaled duration.
	MinTaskDurationMinutes = 8

	// SpotlightDurationFactor boosts the weak pillar's task duration.
	SpotlightDurationFactor = 1.15

	// SpotlightPrefix marks the weak pillar's task description.
	SpotlightPrefix = "(Priority pillar focus) "
)

// PostProcess applies the strategy's deterministic adjustments to generated
// tasks: duration scaling with a floor, difficulty shifting, and the weak
// pillar spotlight. Input order is preserved.
func PostProcess(tasks []domain.RawTask, strategy domain.GenerationStrategy) []domain.RawTask {
	adjusted := make([]domain.RawTask, 0, len(tasks))
	for _, task := range tasks {
		duration := int(math.Round(float64(task.DurationMinutes) * strategy.DurationScale))
		if duration < MinTaskDurationMinutes {
			duration = MinTaskDurationMinutes
		}

		task.DifficultyLevel = ShiftDifficulty(task.DifficultyLevel, strategy.DifficultyBias)

		if strategy.LowPillar != nil && task.Pillar == *strategy.LowPillar {
			duration = int(math.Round(float64(duration) * SpotlightDurationFactor))
			task.Description = strings.TrimSpace(SpotlightPrefix + task.Description)
		}

		task.DurationMinutes = duration
		adjusted = append(adjusted, task)
	}
	return adjusted
}

// ShiftDifficulty moves a difficulty level by bias steps along the ordered
// scale, clamped at the boundaries. Unknown levels are treated as medium
// before shifting.
func ShiftDifficulty(level domain.Difficulty, bias int) domain.Difficulty {
	index := 1
	for i, known := range domain.DifficultyOrder {
		if known == level {
			index = i
			break
		}
	}
	index += bias
	if index < 0 {
		index = 0
	}
	if index > len(domain.DifficultyOrder)-1 {
		index = len(domain.DifficultyOrder) - 1
	}
	return domain.DifficultyOrder[index]
}
