package planner

import (
	"github.com/alexanderramin/lifeos/internal/domain"
)

// CharacterTemplate is one fixed Stoic-inspired character lesson prompt.
type CharacterTemplate struct {
	Kind   string
	Title  string
	Prompt string
}

// CharacterTemplates is the fixed lesson catalog injected into every plan,
// in this order.
var CharacterTemplates = []CharacterTemplate{
	{Kind: "stoic_reflection", Title: "Stoic Reflection", Prompt: "What can you control today?"},
	{Kind: "gratitude", Title: "Gratitude Practice", Prompt: "Name three good things that happened."},
	{Kind: "responsibility", Title: "Responsibility Assignment", Prompt: "Complete one small responsibility before free time."},
	{Kind: "story_excerpt", Title: "Story Excerpt Reflection", Prompt: "Read or listen to a short story excerpt and note one moral lesson."},
}

type characterConfig struct {
	difficulty domain.Difficulty
	duration   int
	tone       string
}

// ageScaledCharacterConfig maps an age to lesson complexity and duration.
// Bands have inclusive upper bounds at 3, 7, 12 and 16.
func ageScaledCharacterConfig(age int) characterConfig {
	switch {
	case age <= 3:
		return characterConfig{domain.DifficultyEasy, 6, "Use simple language and parent-guided reflection."}
	case age <= 7:
		return characterConfig{domain.DifficultyEasy, 8, "Use short sentences and concrete examples."}
	case age <= 12:
		return characterConfig{domain.DifficultyMedium, 10, "Use practical examples and one written sentence."}
	case age <= 16:
		return characterConfig{domain.DifficultyMedium, 12, "Use reflective journaling with personal responsibility."}
	default:
		return characterConfig{domain.DifficultyHard, 14, "Use deeper self-audit and independent decision framing."}
	}
}

// CharacterTasks builds the age-scaled character lesson tasks appended to
// every plan. These bypass generation and post-processing entirely.
func CharacterTasks(age int) []domain.RawTask {
	cfg := ageScaledCharacterConfig(age)
	tasks := make([]domain.RawTask, 0, len(CharacterTemplates))
	for _, template := range CharacterTemplates {
		tasks = append(tasks, domain.RawTask{
			Pillar:          domain.PillarCharacter,
			Title:           template.Title,
			Description:     template.Prompt + " " + cfg.tone,
			DurationMinutes: cfg.duration,
			DifficultyLevel: cfg.difficulty,
		})
	}
	return tasks
}
