package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func validSnapshot() *Snapshot {
	return &Snapshot{
		Paths: []PathImport{{
			ID:   "path-1",
			Name: "Korean",
			Units: []UnitImport{{
				Name: "Unit 1",
				Sections: []SectionImport{{
					Name:     "Hangul",
					Code:     "1a",
					Deadline: strp("2026-04-01"),
					Topics:   []TopicImport{{Content: "Vowels"}},
					Requirements: []RequirementImport{{
						Content:  "Finish drills",
						Children: []RequirementImport{{Content: "Drill 1"}},
					}},
					Resources: []ResourceImport{{Name: "Textbook"}},
				}},
			}},
		}},
		LogEntries: []LogEntryImport{{
			PathID:  "path-1",
			Date:    "2026-03-10",
			Content: "studied",
		}},
	}
}

func TestValidateSnapshot_Valid(t *testing.T) {
	assert.Empty(t, ValidateSnapshot(validSnapshot()))
}

func TestValidateSnapshot_MissingNames(t *testing.T) {
	snap := validSnapshot()
	snap.Paths[0].Name = ""
	snap.Paths[0].Units[0].Sections[0].Name = ""
	snap.Paths[0].Units[0].Sections[0].Topics[0].Content = ""

	errs := ValidateSnapshot(snap)
	require.Len(t, errs, 3)
	assert.Contains(t, joined(errs), "paths[0].name is required")
	assert.Contains(t, joined(errs), "sections[0].name is required")
	assert.Contains(t, joined(errs), "topics[0].content is required")
}

func TestValidateSnapshot_BadDates(t *testing.T) {
	snap := validSnapshot()
	snap.Paths[0].Units[0].Sections[0].Deadline = strp("April 1st")
	snap.LogEntries[0].Date = "03/10/2026"

	errs := ValidateSnapshot(snap)
	require.Len(t, errs, 2)
	assert.Contains(t, joined(errs), "expected YYYY-MM-DD")
}

func TestValidateSnapshot_NestingDepth(t *testing.T) {
	snap := validSnapshot()
	snap.Paths[0].Units[0].Sections[0].Requirements[0].Children[0].Children =
		[]RequirementImport{{Content: "Too deep"}}

	errs := ValidateSnapshot(snap)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "nest at most one level")
}

func TestValidateSnapshot_DuplicateIDs(t *testing.T) {
	snap := validSnapshot()
	snap.Paths[0].Units[0].ID = "dup"
	snap.Paths[0].Units[0].Sections[0].ID = "dup"

	errs := ValidateSnapshot(snap)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicates")
}

func TestValidateSnapshot_LogEntryPathRef(t *testing.T) {
	snap := validSnapshot()
	snap.LogEntries[0].PathID = "nowhere"

	errs := ValidateSnapshot(snap)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "does not match any path")
}

func TestValidateSnapshot_CompletedStateConsistency(t *testing.T) {
	snap := validSnapshot()
	sec := &snap.Paths[0].Units[0].Sections[0]
	sec.CompletedAt = strp("2026-03-01T10:00:00Z")

	errs := ValidateSnapshot(snap)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "completed is false")

	sec.Completed = true
	sec.Unlocked = boolp(false)
	errs = ValidateSnapshot(snap)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "cannot be locked")
}

func joined(errs []error) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "\n")
}
