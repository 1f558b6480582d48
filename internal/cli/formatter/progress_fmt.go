package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lifeos/internal/service"
)

const weeklyProgressBarWidth = 14

// FormatWeeklyProgress formats a weekly completion summary.
func FormatWeeklyProgress(childName string, p *service.WeeklyProgress) string {
	var b strings.Builder

	weekLabel := fmt.Sprintf("Week of %s", p.WeekStart.Format("Jan 2, 2006"))
	b.WriteString(Header(fmt.Sprintf("%s — %s", childName, weekLabel)))
	b.WriteString("\n\n")

	if p.TotalTasks == 0 {
		b.WriteString(Dim("No tasks assigned this week."))
		b.WriteString("\n")
		return RenderBox("Weekly Progress", b.String())
	}

	b.WriteString(fmt.Sprintf("%s %s\n",
		Dim("Completion:"),
		RenderProgress(p.CompletionRate, weeklyProgressBarWidth),
	))
	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		StyleGreen.Render(fmt.Sprintf("%d completed", p.CompletedTasks)),
		StyleDim.Render("|"),
		StyleDim.Render(fmt.Sprintf("%d assigned", p.TotalTasks)),
	))

	return RenderBox("Weekly Progress", b.String())
}
