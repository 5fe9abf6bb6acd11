package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rdubel/trailhead/internal/contract"
)

// resolvePath matches user input against path names (case-insensitive),
// exact UUIDs, then UUID prefixes.
func resolvePath(ctx context.Context, app *App, input string) (*contract.PathOverview, error) {
	if input == "" {
		return nil, fmt.Errorf("learning path is required")
	}

	overviews, err := app.Paths.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, ov := range overviews {
		if strings.EqualFold(ov.Path.Name, input) {
			return ov, nil
		}
	}
	for _, ov := range overviews {
		if ov.Path.ID == input {
			return ov, nil
		}
	}

	var matches []*contract.PathOverview
	for _, ov := range overviews {
		if strings.HasPrefix(ov.Path.ID, input) {
			matches = append(matches, ov)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("learning path not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("path ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveSectionID matches input against section codes (case-insensitive),
// exact UUIDs, then UUID prefixes within one path's tree.
func resolveSectionID(ov *contract.PathOverview, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("section is required")
	}

	var ids []string
	for _, u := range ov.Units {
		for _, s := range u.Sections {
			if s.Code != "" && strings.EqualFold(s.Code, input) {
				return s.ID, nil
			}
			ids = append(ids, s.ID)
		}
	}
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("section not found in %q: %q", ov.Path.Name, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("section ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
