package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lifeos/internal/domain"
)

// FormatCheckin formats a freshly recorded check-in confirmation.
func FormatCheckin(c *domain.DailyCheckin) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		Dim("Joy:"),
		JoyBadge(c.JoyScore),
		Dim(HumanDate(c.CheckinDate)),
	))
	if c.ParentNotes != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Notes:"), StyleFg.Render(c.ParentNotes)))
	}

	return RenderBox("Check-in Recorded", b.String())
}

// FormatCheckinList formats recent check-ins, most recent first.
func FormatCheckinList(checkins []*domain.DailyCheckin) string {
	if len(checkins) == 0 {
		return Dim("No check-ins recorded yet.") + "\n"
	}

	headers := []string{"DATE", "JOY", "NOTES"}
	rows := make([][]string, 0, len(checkins))

	for _, c := range checkins {
		notes := c.ParentNotes
		if notes == "" {
			notes = Dim("--")
		} else {
			notes = StyleFg.Render(notes)
		}
		rows = append(rows, []string{
			StyleFg.Render(HumanDate(c.CheckinDate)),
			JoyBadge(c.JoyScore),
			notes,
		})
	}

	return RenderTable(headers, rows)
}
