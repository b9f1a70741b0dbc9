package core

import (
	"errors"
	"testing"
)

func validMasterConcept() *MasterConcept {
	return &MasterConcept{
		CompanyCode:     "600519",
		CompanyName:     "Kweichow Moutai",
		ConceptName:     "premium liquor",
		Category:        CategoryCore,
		ImportanceScore: 0.9,
		Stage:           StageMature,
		Version:         1,
		IsActive:        true,
	}
}

func TestValidateMasterConcept(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MasterConcept)
		wantErr error
	}{
		{name: "valid", mutate: func(c *MasterConcept) {}, wantErr: nil},
		{name: "empty company code", mutate: func(c *MasterConcept) { c.CompanyCode = "" }, wantErr: ErrEmptyCompanyCode},
		{name: "empty concept name", mutate: func(c *MasterConcept) { c.ConceptName = "" }, wantErr: ErrEmptyConceptName},
		{name: "invalid category", mutate: func(c *MasterConcept) { c.Category = 99 }, wantErr: ErrInvalidCategory},
		{name: "invalid stage", mutate: func(c *MasterConcept) { c.Stage = 0 }, wantErr: ErrInvalidStage},
		{name: "importance too high", mutate: func(c *MasterConcept) { c.ImportanceScore = 1.5 }, wantErr: ErrScoreOutOfRange},
		{name: "importance negative", mutate: func(c *MasterConcept) { c.ImportanceScore = -0.1 }, wantErr: ErrScoreOutOfRange},
		{name: "zero version", mutate: func(c *MasterConcept) { c.Version = 0 }, wantErr: ErrInvalidVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			concept := validMasterConcept()
			tt.mutate(concept)
			err := ValidateMasterConcept(concept)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateMasterConcept() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateMasterConcept() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidConcept) {
				t.Errorf("ValidateMasterConcept() error should wrap ErrInvalidConcept, got %v", err)
			}
		})
	}

	t.Run("nil concept", func(t *testing.T) {
		if err := ValidateMasterConcept(nil); !errors.Is(err, ErrInvalidConcept) {
			t.Errorf("ValidateMasterConcept(nil) = %v", err)
		}
	})
}

func TestValidateExtractedConcept(t *testing.T) {
	valid := &ExtractedConcept{
		Name:            "retail banking",
		Category:        CategoryCore,
		ImportanceScore: 0.7,
		Stage:           StageGrowing,
	}
	if err := ValidateExtractedConcept(valid); err != nil {
		t.Errorf("ValidateExtractedConcept() unexpected error: %v", err)
	}

	noName := *valid
	noName.Name = ""
	if err := ValidateExtractedConcept(&noName); !errors.Is(err, ErrEmptyConceptName) {
		t.Errorf("ValidateExtractedConcept() error = %v, want ErrEmptyConceptName", err)
	}
}

func TestValidateScore(t *testing.T) {
	for _, score := range []float64{0, 0.5, 1} {
		if err := ValidateScore(score); err != nil {
			t.Errorf("ValidateScore(%g) unexpected error: %v", score, err)
		}
	}
	for _, score := range []float64{-0.01, 1.01} {
		if err := ValidateScore(score); !errors.Is(err, ErrScoreOutOfRange) {
			t.Errorf("ValidateScore(%g) = %v, want ErrScoreOutOfRange", score, err)
		}
	}
}
