package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/kindred/core"
)

func float64Ptr(v float64) *float64 { return &v }

func TestPutAndGetMarketData(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	err = repos.Market.PutMarketData(ctx,
		core.MarketData{CompanyCode: "600100", MarketCapCny: float64Ptr(50e8), AvgVolume5Day: float64Ptr(1.5e8)},
		core.MarketData{CompanyCode: "600200", MarketCapCny: float64Ptr(120e8), AvgVolume5Day: nil},
	)
	if err != nil {
		t.Fatalf("Failed to put market data: %v", err)
	}

	result, err := repos.Market.GetMarketData(ctx, []string{"600100", "600200", "600300"})
	if err != nil {
		t.Fatalf("Failed to get market data: %v", err)
	}

	// Absent codes are simply missing from the map
	if len(result) != 2 {
		t.Fatalf("Expected 2 snapshots, got %d", len(result))
	}
	if _, ok := result["600300"]; ok {
		t.Fatal("Expected no snapshot for 600300")
	}

	first := result["600100"]
	if first.MarketCapCny == nil || *first.MarketCapCny != 50e8 {
		t.Fatalf("Expected market cap 50e8, got %+v", first.MarketCapCny)
	}
	if first.AvgVolume5Day == nil || *first.AvgVolume5Day != 1.5e8 {
		t.Fatalf("Expected volume 1.5e8, got %+v", first.AvgVolume5Day)
	}

	second := result["600200"]
	if second.AvgVolume5Day != nil {
		t.Fatalf("Expected nil volume to survive the round-trip, got %v", *second.AvgVolume5Day)
	}
}

func TestPutMarketData_EmptyCode(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	err = repos.Market.PutMarketData(context.Background(), core.MarketData{MarketCapCny: float64Ptr(50e8)})
	if !errors.Is(err, core.ErrEmptyCompanyCode) {
		t.Fatalf("Expected empty code error, got %v", err)
	}
}

func TestGetMarketData_Empty(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	result, err := repos.Market.GetMarketData(context.Background(), []string{"600100"})
	if err != nil {
		t.Fatalf("Failed to get market data: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("Expected empty map, got %d entries", len(result))
	}
}
