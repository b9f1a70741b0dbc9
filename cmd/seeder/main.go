package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/kindred"
	"github.com/poiesic/kindred/ai"
	"github.com/poiesic/kindred/core"
	"github.com/poiesic/kindred/fusion"
)

// seedDoc is the JSON shape of one seed document: a company, its market
// snapshot, and the concepts disclosed in one filing.
type seedDoc struct {
	DocID         string   `json:"docId"`
	CompanyCode   string   `json:"companyCode"`
	CompanyName   string   `json:"companyName"`
	CompanyShort  string   `json:"companyShort"`
	MarketCapCny  *float64 `json:"marketCapCny"`
	AvgVolume5Day *float64 `json:"avgVolume5Day"`
	Concepts      []seedConcept `json:"concepts"`
}

type seedConcept struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Importance  float64 `json:"importance"`
	Stage       string  `json:"stage"`
	Description string  `json:"description"`
}

func f(v float64) *float64 { return &v }

// demoDocs is a small universe of companies used when no seed file is given.
var demoDocs = []seedDoc{
	{
		DocID: "seed-600100", CompanyCode: "600100", CompanyName: "Alpha Industrial Robotics", CompanyShort: "Alpha",
		MarketCapCny: f(32e8), AvgVolume5Day: f(0.4e8),
		Concepts: []seedConcept{
			{Name: "industrial robots", Category: "core", Importance: 0.9, Stage: "growing", Description: "Six-axis industrial robot arms for assembly lines"},
			{Name: "motion control", Category: "core", Importance: 0.8, Stage: "mature", Description: "Servo and motion control systems"},
		},
	},
	{
		DocID: "seed-600200", CompanyCode: "600200", CompanyName: "Beta Automation Systems", CompanyShort: "Beta",
		MarketCapCny: f(55e8), AvgVolume5Day: f(0.8e8),
		Concepts: []seedConcept{
			{Name: "robot arms", Category: "core", Importance: 0.85, Stage: "growing", Description: "Collaborative robot arms for light manufacturing"},
			{Name: "servo motors", Category: "emerging", Importance: 0.6, Stage: "exploring", Description: "High-precision servo motor production"},
		},
	},
	{
		DocID: "seed-600300", CompanyCode: "600300", CompanyName: "Gamma Precision Machining", CompanyShort: "Gamma",
		MarketCapCny: f(72e8), AvgVolume5Day: f(1.5e8),
		Concepts: []seedConcept{
			{Name: "cnc machining", Category: "core", Importance: 0.9, Stage: "mature", Description: "Five-axis CNC machining centers"},
			{Name: "precision gears", Category: "strategic", Importance: 0.5, Stage: "growing", Description: "Precision gear reducers for robotics"},
		},
	},
}

var (
	dbPath         = flag.String("db", "./kindred_db", "path to BadgerDB database directory")
	seedFileName   = flag.String("src", "", "JSON file of seed documents")
	embeddingHost  = flag.String("embedding-host", "http://localhost:11434/v1", "embedding service host URL")
	embeddingModel = flag.String("embedding-model", "embeddinggemma", "embedding model name")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func loadDocs() ([]seedDoc, error) {
	if *seedFileName == "" {
		return demoDocs, nil
	}
	data, err := os.ReadFile(*seedFileName)
	if err != nil {
		return nil, err
	}
	var docs []seedDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func main() {
	docs, err := loadDocs()
	if err != nil {
		panic(err)
	}

	config := ai.NewConfig(
		ai.WithEmbeddingHost(*embeddingHost),
		ai.WithEmbeddingModel(*embeddingModel),
	)
	db, err := kindred.NewDatabase(*dbPath, kindred.WithAIConfig(config))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	updater, err := db.NewUpdater()
	if err != nil {
		panic(err)
	}
	defer updater.Release()

	ctx := context.Background()
	for _, doc := range docs {
		if err := seedOne(ctx, db, updater, doc); err != nil {
			slog.Error("seeding document failed", "docId", doc.DocID, "err", err)
			continue
		}
	}
	slog.Info("seeding complete", "documents", len(docs))
}

func seedOne(ctx context.Context, db *kindred.Database, updater *fusion.Updater, doc seedDoc) error {
	err := db.CompanyRepository().PutCompanies(ctx, &core.Company{
		Code:      doc.CompanyCode,
		Name:      doc.CompanyName,
		ShortName: doc.CompanyShort,
	})
	if err != nil {
		return err
	}

	err = db.MarketDataRepository().PutMarketData(ctx, core.MarketData{
		CompanyCode:   doc.CompanyCode,
		MarketCapCny:  doc.MarketCapCny,
		AvgVolume5Day: doc.AvgVolume5Day,
	})
	if err != nil {
		return err
	}

	concepts := make([]core.ExtractedConcept, 0, len(doc.Concepts))
	for _, c := range doc.Concepts {
		converted, err := fusion.ConvertExtracted(ai.ExtractedConcept{
			Name:        c.Name,
			Category:    c.Category,
			Importance:  c.Importance,
			Stage:       c.Stage,
			Description: c.Description,
		})
		if err != nil {
			return err
		}
		concepts = append(concepts, converted)
	}

	err = db.DocumentRepository().PutExtraction(ctx, &core.ConceptExtraction{
		DocId:       doc.DocID,
		CompanyCode: doc.CompanyCode,
		CompanyName: doc.CompanyName,
		Concepts:    concepts,
	})
	if err != nil {
		return err
	}

	result, err := updater.UpdateMasterData(ctx, doc.DocID)
	if err != nil {
		return err
	}
	slog.Info("seeded document",
		"docId", doc.DocID,
		"company", doc.CompanyCode,
		"created", result.Created,
		"updated", result.Updated,
		"failed", result.Failed)
	return nil
}
