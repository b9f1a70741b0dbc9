package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/kindred/core"
	"github.com/poiesic/kindred/storage"
)

func TestPutAndGetExtraction(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	extraction := &core.ConceptExtraction{
		DocId:       "annual-report-2025",
		CompanyCode: "600100",
		CompanyName: "Alpha Robotics",
		Concepts: []core.ExtractedConcept{
			{
				Name:            "industrial robots",
				Category:        core.CategoryCore,
				ImportanceScore: 0.8,
				Stage:           core.StageGrowing,
				Details: core.ConceptDetails{
					Description: "six-axis arms for assembly lines",
					Relations:   core.Relations{Customers: []string{"Beta Motors"}},
				},
			},
			{
				Name:            "machine vision",
				Category:        core.CategoryEmerging,
				ImportanceScore: 0.5,
				Stage:           core.StageExploring,
			},
		},
	}

	if err := repos.Documents.PutExtraction(ctx, extraction); err != nil {
		t.Fatalf("Failed to put extraction: %v", err)
	}
	if extraction.ExtractedAt.IsZero() {
		t.Fatal("Expected ExtractedAt to be stamped on put")
	}

	retrieved, err := repos.Documents.GetExtraction(ctx, "annual-report-2025")
	if err != nil {
		t.Fatalf("Failed to get extraction: %v", err)
	}
	if retrieved.CompanyCode != "600100" {
		t.Fatalf("Expected company 600100, got %q", retrieved.CompanyCode)
	}
	if len(retrieved.Concepts) != 2 {
		t.Fatalf("Expected 2 concepts, got %d", len(retrieved.Concepts))
	}
	if retrieved.Concepts[0].Name != "industrial robots" {
		t.Fatalf("Expected 'industrial robots', got %q", retrieved.Concepts[0].Name)
	}
	if retrieved.Concepts[0].Details.Description != "six-axis arms for assembly lines" {
		t.Fatalf("Unexpected description %q", retrieved.Concepts[0].Details.Description)
	}
}

func TestPutExtraction_EmptyDocId(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	err = repos.Documents.PutExtraction(context.Background(), &core.ConceptExtraction{CompanyCode: "600100"})
	if !errors.Is(err, storage.ErrInvalidQuery) {
		t.Fatalf("Expected invalid query error, got %v", err)
	}
}

func TestGetExtraction_NotFound(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	_, err = repos.Documents.GetExtraction(context.Background(), "no-such-doc")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected not-found error, got %v", err)
	}
}
