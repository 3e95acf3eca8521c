package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeSkills(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want SkillList
	}{
		{"already clean", []string{"React", "Node.js"}, SkillList{"React", "Node.js"}},
		{"trims whitespace", []string{" React ", "  Node.js"}, SkillList{"React", "Node.js"}},
		{"drops empties", []string{"React", "", "  "}, SkillList{"React"}},
		{"empty input", nil, SkillList{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeSkills(tc.in...)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("NormalizeSkills(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSplitSkills(t *testing.T) {
	got := SplitSkills("a, b,c ,  ,d")
	want := SkillList{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSkills: got %v, want %v", got, want)
	}
}

func TestSkillList_UnmarshalJSON_BothShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want SkillList
	}{
		{"array form", `["A","B"]`, SkillList{"A", "B"}},
		{"array with padding", `[" A ","B "]`, SkillList{"A", "B"}},
		{"joined string form", `"A, B"`, SkillList{"A", "B"}},
		{"single skill string", `"Python"`, SkillList{"Python"}},
		{"empty string", `""`, SkillList{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got SkillList
			if err := json.Unmarshal([]byte(tc.raw), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.raw, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("unmarshal %s = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestSkillList_UnmarshalJSON_Invalid(t *testing.T) {
	var got SkillList
	if err := json.Unmarshal([]byte(`42`), &got); err == nil {
		t.Fatal("expected error for non-string, non-array input")
	}
}

func TestSkillList_Joined(t *testing.T) {
	if got := (SkillList{"A", "B"}).Joined(); got != "A, B" {
		t.Errorf("Joined: got %q, want %q", got, "A, B")
	}
}

func TestProjectStatus_IsValid(t *testing.T) {
	for _, s := range []ProjectStatus{StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled} {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if ProjectStatus("archived").IsValid() {
		t.Error("unknown status should be invalid")
	}
}
