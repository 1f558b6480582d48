package domain

// PersonalizationSignal holds the behavioral signals computed from a child's
// recent task and check-in history. Signals are ephemeral: they are
// recomputed from raw history on every plan request and never persisted.
type PersonalizationSignal struct {
	// CompletionRate7d is the task completion percentage over the trailing
	// 7-day window, in [0, 100]. Zero when the window is empty.
	CompletionRate7d float64

	// LowPillar is the pillar performing meaningfully below the global
	// average, or nil when no pillar qualifies.
	LowPillar *Pillar

	// JoyBelowThreeStreak5d is true when the five most recent check-ins
	// all scored joy below 3.
	JoyBelowThreeStreak5d bool
}

// GenerationStrategy is the concrete set of generation parameters derived
// from a personalization signal for one plan request.
type GenerationStrategy struct {
	// TargetPillars is the ordered set of pillars to generate for,
	// 1 to 5 entries with no duplicates.
	TargetPillars []Pillar

	// DifficultyBias shifts generated difficulty one step: -1 easier,
	// 0 neutral, +1 harder.
	DifficultyBias int

	// DurationScale multiplies generated task durations. Always > 0.
	DurationScale float64

	// LowPillar is the spotlight pillar carried through from the signal,
	// or nil.
	LowPillar *Pillar
}
