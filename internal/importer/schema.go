package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot is the single structured document the whole tracker state
// serializes to: an array of learning path aggregates plus the flat log
// journal. The same shape serves curriculum import (ids and state flags
// omitted) and full state export/restore (everything present).
type Snapshot struct {
	Paths      []PathImport     `json:"paths"`
	LogEntries []LogEntryImport `json:"log_entries,omitempty"`
}

// PathImport is one learning path aggregate. ID is optional; a fresh UUID
// is minted when absent.
type PathImport struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Units       []UnitImport `json:"units"`
}

// UnitImport is an ordered unit within a path. Slice position determines
// unlock order.
type UnitImport struct {
	ID         string          `json:"id,omitempty"`
	Name       string          `json:"name"`
	CompleteBy *string         `json:"complete_by,omitempty"`
	Sections   []SectionImport `json:"sections"`
}

// SectionImport is a section with its leaves. Unlocked is a tri-state:
// nil applies the default rule (only the first section of a path's first
// unit starts unlocked), an explicit value is preserved verbatim.
type SectionImport struct {
	ID           string              `json:"id,omitempty"`
	Name         string              `json:"name"`
	Code         string              `json:"code,omitempty"`
	Deadline     *string             `json:"deadline,omitempty"`
	Unlocked     *bool               `json:"unlocked,omitempty"`
	Completed    bool                `json:"completed,omitempty"`
	CompletedAt  *string             `json:"completed_at,omitempty"`
	Topics       []TopicImport       `json:"topics,omitempty"`
	Resources    []ResourceImport    `json:"resources,omitempty"`
	Requirements []RequirementImport `json:"requirements,omitempty"`
}

type TopicImport struct {
	ID        string `json:"id,omitempty"`
	Content   string `json:"content"`
	Completed bool   `json:"completed,omitempty"`
}

// RequirementImport nests at most one level: children of children are a
// validation error, and a parent with children has its completed flag
// recomputed from them on conversion.
type RequirementImport struct {
	ID        string              `json:"id,omitempty"`
	Content   string              `json:"content"`
	Completed bool                `json:"completed,omitempty"`
	Children  []RequirementImport `json:"children,omitempty"`
}

type ResourceImport struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	URL         *string `json:"url,omitempty"`
	Description *string `json:"description,omitempty"`
}

// LogEntryImport references its path by explicit id, so log entries only
// round-trip through snapshots whose paths carry ids.
type LogEntryImport struct {
	ID        string `json:"id,omitempty"`
	PathID    string `json:"path_id"`
	PathName  string `json:"path_name,omitempty"`
	Date      string `json:"date"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// LoadSnapshot reads and parses a snapshot JSON file.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot file: %w", err)
	}
	return &snap, nil
}

// WriteSnapshot serializes a snapshot to an indented JSON file.
func WriteSnapshot(path string, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing snapshot file: %w", err)
	}
	return nil
}
