package planner

import (
	"strings"

	"github.com/alexanderramin/lifeos/internal/domain"
)

// ReducedLoadMaxTasks is the pillar cap applied during a low-joy streak.
const ReducedLoadMaxTasks = 4

// priorityKeyword maps a parent-priority keyword to its pillar. Match order
// is behaviorally significant: the first keyword contained in the priority
// text wins.
type priorityKeyword struct {
	keyword string
	pillar  domain.Pillar
}

var priorityKeywords = []priorityKeyword{
	{"study", domain.PillarCognitive},
	{"fitness", domain.PillarPhysical},
	{"exercise", domain.PillarPhysical},
	{"language", domain.PillarLanguage},
	{"communication", domain.PillarLanguage},
	{"behavior", domain.PillarCharacter},
	{"discipline", domain.PillarCharacter},
	{"creative", domain.PillarCreativity},
	{"art", domain.PillarCreativity},
}

// DeriveStrategy converts behavioral signals into a concrete generation
// strategy. High completion raises difficulty, low completion lowers it and
// shortens tasks, and a sustained low-joy streak trims the pillar list.
func DeriveStrategy(signal domain.PersonalizationSignal, parentPriority string) domain.GenerationStrategy {
	targetPillars := make([]domain.Pillar, len(domain.AllPillars))
	copy(targetPillars, domain.AllPillars)
	difficultyBias := 0
	durationScale := 1.0

	if signal.CompletionRate7d > 80 {
		difficultyBias = 1
	}

	// Evaluated after the high-completion rule so it wins if both somehow hold.
	if signal.CompletionRate7d < 40 {
		difficultyBias = -1
		durationScale = 0.85
	}

	if signal.JoyBelowThreeStreak5d {
		targetPillars = SelectReducedPillars(signal.LowPillar, parentPriority, ReducedLoadMaxTasks)
	}

	return domain.GenerationStrategy{
		TargetPillars:  targetPillars,
		DifficultyBias: difficultyBias,
		DurationScale:  durationScale,
		LowPillar:      signal.LowPillar,
	}
}

// SelectReducedPillars chooses which pillars survive load reduction. The
// weak pillar is kept first, then the pillar implied by the parent priority
// text, then canonical order fills the rest before truncation.
func SelectReducedPillars(lowPillar *domain.Pillar, parentPriority string, maxTasks int) []domain.Pillar {
	var ordered []domain.Pillar

	if lowPillar != nil && domain.ValidPillar(*lowPillar) {
		ordered = append(ordered, *lowPillar)
	}

	normalized := strings.ToLower(parentPriority)
	for _, entry := range priorityKeywords {
		if !strings.Contains(normalized, entry.keyword) {
			continue
		}
		if !containsPillar(ordered, entry.pillar) {
			ordered = append(ordered, entry.pillar)
		}
		break
	}

	for _, pillar := range domain.AllPillars {
		if !containsPillar(ordered, pillar) {
			ordered = append(ordered, pillar)
		}
	}

	if len(ordered) > maxTasks {
		ordered = ordered[:maxTasks]
	}
	return ordered
}

func containsPillar(pillars []domain.Pillar, p domain.Pillar) bool {
	for _, known := range pillars {
		if known == p {
			return true
		}
	}
	return false
}
