package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lifeos/internal/domain"
)

// FormatProfile formats a single child profile into a styled detail view.
func FormatProfile(p *domain.ChildProfile) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(p.Name), TruncID(p.ID)))
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		Dim("Born:"),
		StyleFg.Render(p.DateOfBirth.Format("Jan 2, 2006")),
		Dim(fmt.Sprintf("(age %d)", p.AgeYears(time.Now()))),
	))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Priority:"), StyleYellow.Render(p.ParentPriority)))

	if len(p.Interests) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Interests:"), StylePurple.Render(strings.Join(p.Interests, ", "))))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Created:"), Dim(HumanTimestamp(p.CreatedAt))))

	return RenderBox("Profile", b.String())
}

// FormatProfileList formats all profiles into an aligned table.
func FormatProfileList(profiles []*domain.ChildProfile) string {
	if len(profiles) == 0 {
		return Dim("No profiles yet. Create one with `lifeos profile create`.") + "\n"
	}

	headers := []string{"NAME", "AGE", "PRIORITY", "ID"}
	rows := make([][]string, 0, len(profiles))
	now := time.Now()

	for _, p := range profiles {
		rows = append(rows, []string{
			Bold(p.Name),
			StyleFg.Render(fmt.Sprintf("%d", p.AgeYears(now))),
			StyleYellow.Render(p.ParentPriority),
			TruncID(p.ID),
		})
	}

	return RenderTable(headers, rows)
}
