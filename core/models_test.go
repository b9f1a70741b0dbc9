package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "same content produces same ID", content: "test content"},
		{name: "empty string", content: ""},
		{name: "cjk content", content: "贵州茅台|白酒"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestConceptIDFor(t *testing.T) {
	a := ConceptIDFor("600519", "premium liquor")
	b := ConceptIDFor("600519", "premium liquor")
	if a != b {
		t.Errorf("ConceptIDFor() is not deterministic: %d vs %d", a, b)
	}

	c := ConceptIDFor("600520", "premium liquor")
	if a == c {
		t.Errorf("ConceptIDFor() collided across companies")
	}

	d := ConceptIDFor("600519", "retail banking")
	if a == d {
		t.Errorf("ConceptIDFor() collided across concept names")
	}
}

func TestMasterConcept_Tuple(t *testing.T) {
	concept := MasterConcept{
		CompanyCode: "600519",
		ConceptName: "premium liquor",
	}
	want := "600519|premium liquor"
	if got := concept.Tuple(); got != want {
		t.Errorf("Tuple() = %q, want %q", got, want)
	}
}

func TestParseConceptCategory(t *testing.T) {
	tests := []struct {
		label   string
		want    ConceptCategory
		wantErr bool
	}{
		{"core", CategoryCore, false},
		{"emerging", CategoryEmerging, false},
		{"strategic", CategoryStrategic, false},
		{"CORE", CategoryCore, false},
		{" core ", CategoryCore, false},
		{"pivotal", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseConceptCategory(tt.label)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseConceptCategory(%q) expected error", tt.label)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseConceptCategory(%q) unexpected error: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("ParseConceptCategory(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestParseDevelopmentStage(t *testing.T) {
	tests := []struct {
		label   string
		want    DevelopmentStage
		wantErr bool
	}{
		{"exploring", StageExploring, false},
		{"growing", StageGrowing, false},
		{"mature", StageMature, false},
		{"declining", StageDeclining, false},
		{"Growing", StageGrowing, false},
		{"booming", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseDevelopmentStage(tt.label)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDevelopmentStage(%q) expected error", tt.label)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseDevelopmentStage(%q) unexpected error: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("ParseDevelopmentStage(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestEnumString(t *testing.T) {
	if CategoryCore.String() != "core" {
		t.Errorf("CategoryCore.String() = %q", CategoryCore.String())
	}
	if StageDeclining.String() != "declining" {
		t.Errorf("StageDeclining.String() = %q", StageDeclining.String())
	}
}
