package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lifeos/internal/domain"
)

// FormatMilestones formats the milestone catalog with achieved flags,
// grouped by developmental phase.
func FormatMilestones(childName string, statuses []domain.MilestoneStatus) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Milestones — %s", childName)))
	b.WriteString("\n\n")

	if len(statuses) == 0 {
		b.WriteString(Dim("No milestones in the catalog."))
		b.WriteString("\n")
		return RenderBox("Milestones", b.String())
	}

	achieved := 0
	lastPhase := ""
	for _, s := range statuses {
		if s.AgePhase != lastPhase {
			if lastPhase != "" {
				b.WriteString("\n")
			}
			b.WriteString(StylePurple.Render(s.AgePhase) + "\n")
			lastPhase = s.AgePhase
		}

		mark := StyleDim.Render("○")
		title := StyleFg.Render(s.Title)
		if s.Achieved {
			mark = StyleGreen.Render("✔")
			title = StyleDim.Render(s.Title)
			achieved++
		}
		b.WriteString(fmt.Sprintf("  %s %s  %s\n", mark, title, Dim(s.Focus)))
	}

	b.WriteString("\n")
	pct := float64(achieved) / float64(len(statuses))
	b.WriteString(fmt.Sprintf("%s %s\n",
		Dim(fmt.Sprintf("Achieved %d of %d", achieved, len(statuses))),
		RenderProgress(pct, 10),
	))

	return RenderBox("Milestones", b.String())
}
