package domain

// Pillar is one of the five fixed developmental categories a task belongs to.
type Pillar string

const (
	PillarCognitive  Pillar = "Cognitive"
	PillarPhysical   Pillar = "Physical"
	PillarLanguage   Pillar = "Language"
	PillarCharacter  Pillar = "Character"
	PillarCreativity Pillar = "Creativity"
)

// AllPillars is the canonical pillar ordering. Code that iterates pillars
// must use this slice; the order is behaviorally significant.
var AllPillars = []Pillar{
	PillarCognitive,
	PillarPhysical,
	PillarLanguage,
	PillarCharacter,
	PillarCreativity,
}

// ValidPillar reports whether p is one of the five canonical pillars.
func ValidPillar(p Pillar) bool {
	for _, known := range AllPillars {
		if p == known {
			return true
		}
	}
	return false
}

// Difficulty is a task difficulty level on the ordered scale easy < medium < hard.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyOrder is the ordered difficulty scale used for bias shifting.
var DifficultyOrder = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ValidDifficulty reports whether d is one of the known difficulty levels.
func ValidDifficulty(d Difficulty) bool {
	for _, known := range DifficultyOrder {
		if d == known {
			return true
		}
	}
	return false
}
