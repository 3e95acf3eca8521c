package domain

import (
	"encoding/json"
	"strings"
)

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	StatusOpen       ProjectStatus = "open"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
	StatusCancelled  ProjectStatus = "cancelled"
)

// IsValid reports whether s is one of the known project statuses. There is
// deliberately no transition matrix: any status may move to any other, the
// server is the sole authority on legality.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// SkillList is the normalized form of a project's required skills: trimmed,
// non-empty strings. The wire contract is loose: older producers send a
// single comma-separated string, newer ones a JSON array, so decoding
// accepts both shapes.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*s = NormalizeSkills(items...)
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*s = SplitSkills(joined)
	return nil
}

// Joined renders the list as the comma-separated string the project creation
// endpoint expects.
func (s SkillList) Joined() string {
	return strings.Join(s, ", ")
}

// NormalizeSkills trims each entry and drops empties, preserving order.
func NormalizeSkills(items ...string) SkillList {
	out := make(SkillList, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// SplitSkills parses a comma-separated skill string into a normalized list.
func SplitSkills(joined string) SkillList {
	return NormalizeSkills(strings.Split(joined, ",")...)
}

// Project is a unit of work posted by a client. Budget is kept as a string
// to match the wire contract (decimal-as-string); Deadline is a YYYY-MM-DD
// date string.
type Project struct {
	ID             int64         `json:"id" bson:"id"`
	ClientID       int64         `json:"client_id" bson:"client_id"`
	Title          string        `json:"title" bson:"title"`
	Description    string        `json:"description" bson:"description"`
	SkillsRequired SkillList     `json:"skills_required" bson:"skills_required"`
	Budget         string        `json:"budget" bson:"budget"`
	Deadline       string        `json:"deadline" bson:"deadline"`
	Category       string        `json:"category" bson:"category"`
	Status         ProjectStatus `json:"status" bson:"status"`
}

// Normalize re-applies skill normalization in place. Called at every
// ingestion boundary so render-time code can rely on the invariant.
func (p *Project) Normalize() {
	p.SkillsRequired = NormalizeSkills(p.SkillsRequired...)
}
