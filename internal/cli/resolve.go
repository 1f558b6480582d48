package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveChildID resolves user input to a child profile ID. Accepts the
// child's name (case-insensitive), a full profile ID, or an ID prefix.
func resolveChildID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("child name or ID is required")
	}

	profiles, err := app.Profiles.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact name match (case-insensitive)
	for _, p := range profiles {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}

	// 2. Exact ID match
	for _, p := range profiles {
		if p.ID == input {
			return p.ID, nil
		}
	}

	// 3. ID prefix match
	var matches []string
	for _, p := range profiles {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("child not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("child ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
