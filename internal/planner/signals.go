package planner

import (
	"github.com/alexanderramin/lifeos/internal/domain"
)

// LowPillarMarginPct is how many percentage points below the global
// completion rate a pillar must fall before it is flagged as weak.
const LowPillarMarginPct = 15.0

// JoyStreakLength is the number of consecutive low check-ins that trigger
// load reduction.
const JoyStreakLength = 5

// CompletionRate returns the completion percentage over the supplied task
// outcomes. Returns 0 when there are no outcomes.
func CompletionRate(outcomes []domain.TaskOutcome) float64 {
	if len(outcomes) == 0 {
		return 0.0
	}
	completed := 0
	for _, o := range outcomes {
		if o.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(outcomes)) * 100.0
}

// DetectLowPillar identifies a consistently weak pillar from recent task
// outcomes. A pillar is flagged only when its completion rate sits at least
// LowPillarMarginPct percentage points below the global rate. Ties on the
// minimum resolve to the first pillar in canonical order.
func DetectLowPillar(outcomes []domain.TaskOutcome) *domain.Pillar {
	if len(outcomes) == 0 {
		return nil
	}

	totals := make(map[domain.Pillar]int)
	completed := make(map[domain.Pillar]int)
	totalAll, completedAll := 0, 0
	for _, o := range outcomes {
		totals[o.Pillar]++
		totalAll++
		if o.Completed {
			completed[o.Pillar]++
			completedAll++
		}
	}

	globalRate := float64(completedAll) / float64(totalAll) * 100.0

	var low *domain.Pillar
	lowRate := 0.0
	for _, pillar := range domain.AllPillars {
		total, ok := totals[pillar]
		if !ok {
			continue
		}
		rate := float64(completed[pillar]) / float64(total) * 100.0
		if low == nil || rate < lowRate {
			p := pillar
			low = &p
			lowRate = rate
		}
	}

	if low != nil && lowRate <= globalRate-LowPillarMarginPct {
		return low
	}
	return nil
}

// JoyLowStreak reports whether the most recent check-ins form a sustained
// low-mood streak. Scores must be ordered most recent first. Fewer than
// JoyStreakLength check-ins never count as a streak.
func JoyLowStreak(joyScores []int) bool {
	if len(joyScores) < JoyStreakLength {
		return false
	}
	for _, score := range joyScores[:JoyStreakLength] {
		if score >= 3 {
			return false
		}
	}
	return true
}

// ComputeSignal reduces already-fetched history into the personalization
// signal driving strategy derivation. Outcomes are expected to be scoped to
// the trailing 7-day window; joyScores most recent first.
func ComputeSignal(outcomes []domain.TaskOutcome, joyScores []int) domain.PersonalizationSignal {
	return domain.PersonalizationSignal{
		CompletionRate7d:      CompletionRate(outcomes),
		LowPillar:             DetectLowPillar(outcomes),
		JoyBelowThreeStreak5d: JoyLowStreak(joyScores),
	}
}
