package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lifeos/internal/domain"
)

// FormatTaskList formats a day's tasks into a styled CLI dashboard string.
func FormatTaskList(childName string, date time.Time, tasks []*domain.DailyTask) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s — %s", childName, HumanDate(date))))
	b.WriteString("\n\n")

	if len(tasks) == 0 {
		b.WriteString(Dim("No tasks assigned for this day."))
		b.WriteString("\n")
		return RenderBox("Daily Plan", b.String())
	}

	total := 0
	completed := 0
	for i, task := range tasks {
		total += task.DurationMinutes
		if task.Completed {
			completed++
		}

		num := fmt.Sprintf("%d.", i+1)
		pillar := PillarStyle(task.Pillar).Render(string(task.Pillar))

		titleLine := fmt.Sprintf(
			"%s %s  %s  %s  %s",
			Bold(num),
			StyleFg.Render(task.Title),
			StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(task.DurationMinutes))),
			DifficultyLabel(task.DifficultyLevel),
			CompletionPill(task.Completed),
		)
		b.WriteString(titleLine + "\n")
		b.WriteString(fmt.Sprintf("   %s  %s\n", pillar, TruncID(task.ID)))

		if task.Description != "" {
			b.WriteString(fmt.Sprintf("   %s\n", Dim(task.Description)))
		}

		if i < len(tasks)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	summaryLine := fmt.Sprintf(
		"%s  %s  %s",
		StyleGreen.Render(fmt.Sprintf("Completed: %d/%d", completed, len(tasks))),
		StyleDim.Render("|"),
		StyleDim.Render(fmt.Sprintf("Total time: %s", FormatMinutes(total))),
	)
	b.WriteString(summaryLine + "\n")

	return RenderBox("Daily Plan", b.String())
}
