// Command lead-score scores a JSON batch of leads and prints the results
// ranked by score descending.
//
// Input file shape:
//
//	{
//	  "leads": [ {lead record}, ... ],
//	  "interactions": { "<lead id>": [ {interaction}, ... ] }
//	}
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"placement_portal_backend/internal/leads/domain"
	"placement_portal_backend/internal/leads/scoring"
	"placement_portal_backend/platform/config"
	"placement_portal_backend/platform/logger"
)

type batchInput struct {
	Leads        []domain.Lead                   `json:"leads"`
	Interactions map[string][]domain.Interaction `json:"interactions"`
}

func main() {
	inputPath := flag.String("input", "", "path to the leads JSON file (required)")
	format := flag.String("format", "table", "output format: table or json")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)

	if *inputPath == "" {
		log.Error("missing -input flag")
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Error("failed to read input file", "error", err, "path", *inputPath)
		os.Exit(1)
	}

	var batch batchInput
	if err := json.Unmarshal(data, &batch); err != nil {
		log.Error("failed to parse input file", "error", err, "path", *inputPath)
		os.Exit(1)
	}

	catalog, err := scoring.LoadCatalog(cfg.MessageCatalogPath)
	if err != nil {
		log.Error("failed to load message catalog", "error", err)
		os.Exit(1)
	}

	scorer := scoring.New(catalog, cfg.BulkScoreConcurrency, log)
	results, err := scorer.ScoreAll(context.Background(), batch.Leads, batch.Interactions)
	if err != nil {
		log.Error("bulk scoring failed", "error", err)
		os.Exit(1)
	}

	switch *format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			log.Error("failed to encode results", "error", err)
			os.Exit(1)
		}
	default:
		printTable(results)
	}

	log.Info("batch scoring complete", "leads", len(results))
}

func printTable(results []scoring.Result) {
	fmt.Printf("%-4s %-38s %-6s %-6s %-8s %s\n", "#", "LEAD", "SCORE", "GRADE", "PRIORITY", "NEXT ACTION")
	for i, result := range results {
		fmt.Printf("%-4d %-38s %-6d %-6s %-8s %s\n",
			i+1, result.LeadID, result.Score, result.Grade, result.Priority, result.NextAction.Action)
	}
}
