package domain

// Milestone tracks one phase-based growth milestone for a child.
type Milestone struct {
	ID       string
	ChildID  string
	AgePhase string
	Title    string
	Achieved bool
}

// MilestoneExample is a catalog entry describing an expected milestone for
// one developmental phase.
type MilestoneExample struct {
	AgePhase string
	Focus    string
	Title    string
}

// MilestoneStatus is a catalog entry overlaid with a child's achieved flag.
type MilestoneStatus struct {
	AgePhase string
	Focus    string
	Title    string
	Achieved bool
}

// MilestoneLibrary is the fixed milestone catalog covering all developmental
// phases from 0 to 21. Entries are ordered by phase.
var MilestoneLibrary = []MilestoneExample{
	{AgePhase: "Phase 1 (0-3)", Focus: "sensory", Title: "Responds to familiar sounds and voices"},
	{AgePhase: "Phase 1 (0-3)", Focus: "language", Title: "Uses first meaningful words"},
	{AgePhase: "Phase 2 (4-7)", Focus: "curiosity", Title: "Asks exploratory why/how questions"},
	{AgePhase: "Phase 2 (4-7)", Focus: "basic skills", Title: "Reads simple instructions independently"},
	{AgePhase: "Phase 3 (8-12)", Focus: "competence", Title: "Completes multi-step projects consistently"},
	{AgePhase: "Phase 3 (8-12)", Focus: "logic", Title: "Applies logic to solve age-level problems"},
	{AgePhase: "Phase 4 (13-16)", Focus: "identity", Title: "Expresses personal values and goals"},
	{AgePhase: "Phase 4 (13-16)", Focus: "responsibility", Title: "Manages responsibilities with minimal reminders"},
	{AgePhase: "Phase 5 (17-21)", Focus: "mastery", Title: "Builds mastery in a chosen domain"},
	{AgePhase: "Phase 5 (17-21)", Focus: "independence", Title: "Plans and executes independent life routines"},
}
