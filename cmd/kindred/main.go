// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/kindred"
	"github.com/poiesic/kindred/ai"
	"github.com/poiesic/kindred/fusion"
	"github.com/poiesic/kindred/search"
)

func main() {
	app := &cli.App{
		Name:  "kindred",
		Usage: "Company business-concept similarity search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Find companies with similar business concepts",
				Action:    searchCommand,
				ArgsUsage: "<company code or name>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Maximum number of candidate concepts",
						Value: 20,
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Minimum cosine similarity for a candidate",
						Value: 0.60,
					},
					&cli.StringFlag{
						Name:  "rerank-host",
						Usage: "Cross-encoder rerank service host URL (empty disables reranking)",
					},
					&cli.BoolFlag{
						Name:  "no-market-filters",
						Usage: "Disable the market cap and volume screens",
					},
					&cli.Float64Flag{
						Name:  "max-cap",
						Usage: "Market cap limit in CNY",
						Value: 85e8,
					},
					&cli.Float64Flag{
						Name:  "max-volume",
						Usage: "5-day average traded value limit in CNY",
						Value: 2e8,
					},
				},
			},
			{
				Name:      "update",
				Usage:     "Fuse a staged document extraction into the master concept store",
				Action:    updateCommand,
				ArgsUsage: "<document id>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of concepts to fuse in each batch",
						Value: 50,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum attempts per concept on write conflicts",
						Value: 3,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("company identifier required")
	}
	identifier := strings.Join(c.Args().Slice(), " ")

	config := ai.DefaultConfig()
	config.RerankHost = c.String("rerank-host")

	db, err := kindred.NewDatabase(c.String("db"), kindred.WithAIConfig(config))
	if err != nil {
		return err
	}
	defer db.Close()

	service, err := db.NewSearchService()
	if err != nil {
		return err
	}

	req := search.SearchRequest{
		Identifier:          identifier,
		TopK:                c.Int("top-k"),
		SimilarityThreshold: c.Float64("threshold"),
	}
	if !c.Bool("no-market-filters") {
		maxCap := c.Float64("max-cap")
		maxVolume := c.Float64("max-volume")
		req.Filters = search.Filters{
			MaxMarketCapCny:  &maxCap,
			MaxAvgVolume5Day: &maxVolume,
		}
	}

	result, err := service.Search(c.Context, req)
	if err != nil {
		return err
	}

	fmt.Printf("Query %q resolved to %s (%s)\n", identifier, result.Company.Name, result.Company.Code)
	fmt.Printf("%d companies matched, %d after market filters\n\n",
		result.TotalBeforeFilter, len(result.Companies))
	for i, company := range result.Companies {
		fmt.Printf("%2d. %s (%s)  score=%.3f  relevance=%.3f\n",
			i+1, company.CompanyName, company.CompanyCode, company.FinalScore, company.RelevanceScore)
		for _, hit := range company.Hits {
			fmt.Printf("      %-40s sim=%.3f final=%.3f\n",
				hit.ConceptName, hit.SimilarityScore, hit.FinalScore)
		}
	}
	return nil
}

func updateCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("document id required")
	}
	docID := c.Args().First()

	config := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := config.Validate(); err != nil {
		return err
	}

	db, err := kindred.NewDatabase(c.String("db"), kindred.WithAIConfig(config))
	if err != nil {
		return err
	}
	defer db.Close()

	updater, err := db.NewUpdater(
		fusion.WithBatchSize(c.Int("batch-size")),
		fusion.WithMaxRetries(c.Int("max-retries")),
	)
	if err != nil {
		return err
	}
	defer updater.Release()

	result, err := updater.UpdateMasterData(c.Context, docID)
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d concepts: %d created, %d updated, %d skipped, %d failed\n",
		result.TotalProcessed, result.Created, result.Updated, result.Skipped, result.Failed)
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
