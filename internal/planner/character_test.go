package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/lifeos/internal/domain"
)

func TestCharacterTasks_AlwaysFourCharacterTasks(t *testing.T) {
	for _, age := range []int{0, 3, 4, 7, 8, 12, 13, 16, 17, 21} {
		tasks := CharacterTasks(age)
		require.Len(t, tasks, 4, "age %d", age)
		for _, task := range tasks {
			assert.Equal(t, domain.PillarCharacter, task.Pillar, "age %d", age)
			assert.NoError(t, task.Validate())
		}
	}
}

func TestCharacterTasks_FixedTemplateOrder(t *testing.T) {
	tasks := CharacterTasks(10)

	assert.Equal(t, "Stoic Reflection", tasks[0].Title)
	assert.Equal(t, "Gratitude Practice", tasks[1].Title)
	assert.Equal(t, "Responsibility Assignment", tasks[2].Title)
	assert.Equal(t, "Story Excerpt Reflection", tasks[3].Title)
}

func TestCharacterTasks_AgeBands(t *testing.T) {
	tests := []struct {
		age        int
		difficulty domain.Difficulty
		duration   int
	}{
		{0, domain.DifficultyEasy, 6},
		{3, domain.DifficultyEasy, 6},
		{4, domain.DifficultyEasy, 8},
		{7, domain.DifficultyEasy, 8},
		{8, domain.DifficultyMedium, 10},
		{12, domain.DifficultyMedium, 10},
		{13, domain.DifficultyMedium, 12},
		{16, domain.DifficultyMedium, 12},
		{17, domain.DifficultyHard, 14},
		{21, domain.DifficultyHard, 14},
	}
	for _, tt := range tests {
		tasks := CharacterTasks(tt.age)
		for _, task := range tasks {
			assert.Equal(t, tt.difficulty, task.DifficultyLevel, "age %d", tt.age)
			assert.Equal(t, tt.duration, task.DurationMinutes, "age %d", tt.age)
		}
	}
}

func TestCharacterTasks_DescriptionJoinsPromptAndTone(t *testing.T) {
	tasks := CharacterTasks(10)
	assert.Equal(t,
		"What can you control today? Use practical examples and one written sentence.",
		tasks[0].Description)
}

func TestCharacterTasks_OnlyAgeChangesOutput(t *testing.T) {
	easy := CharacterTasks(2)
	hard := CharacterTasks(20)

	assert.Equal(t, 6, easy[0].DurationMinutes)
	assert.Equal(t, 14, hard[0].DurationMinutes)
}
