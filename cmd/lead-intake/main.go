// Command lead-intake runs a JSON batch of lead submissions through the
// full intake pipeline: validation, normalization, storage, scoring, and
// analytics ingestion over the in-process event bus. It prints each score
// result and the dashboard snapshot the batch produced.
//
// Input is a JSON array of intake requests.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"placement_portal_backend/internal/analytics"
	"placement_portal_backend/internal/events"
	"placement_portal_backend/internal/leads/intake"
	"placement_portal_backend/internal/leads/scoring"
	"placement_portal_backend/internal/leads/store"
	"placement_portal_backend/internal/reporting"
	"placement_portal_backend/platform/config"
	"placement_portal_backend/platform/logger"
	"placement_portal_backend/platform/validator"
)

type batchOutput struct {
	Accepted  []intake.CreateLeadResult   `json:"accepted"`
	Rejected  []rejectedLead              `json:"rejected,omitempty"`
	Dashboard analytics.DashboardSnapshot `json:"dashboard"`
}

type rejectedLead struct {
	Index int    `json:"index"`
	Name  string `json:"name,omitempty"`
	Error string `json:"error"`
}

func main() {
	inputPath := flag.String("input", "", "path to the intake requests JSON file (required)")
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

	var requests []intake.CreateLeadRequest
	if err := json.Unmarshal(data, &requests); err != nil {
		log.Error("failed to parse input file", "error", err, "path", *inputPath)
		os.Exit(1)
	}

	catalog, err := scoring.LoadCatalog(cfg.MessageCatalogPath)
	if err != nil {
		log.Error("failed to load message catalog", "error", err)
		os.Exit(1)
	}

	eventBus := events.NewInMemoryBus(log)
	analyticsModule := analytics.NewModule(cfg, eventBus, log)
	defer analyticsModule.Close()

	leadStore := store.NewMemory()
	scorer := scoring.New(catalog, cfg.BulkScoreConcurrency, log)
	intakeService := intake.New(leadStore, scorer, eventBus, validator.New(), cfg.DefaultPhoneRegion, log)
	reportingService := reporting.NewService(analyticsModule.Engine())

	ctx := context.Background()
	output := batchOutput{}
	for i, request := range requests {
		result, err := intakeService.CreateLead(ctx, request)
		if err != nil {
			output.Rejected = append(output.Rejected, rejectedLead{
				Index: i,
				Name:  request.Name,
				Error: err.Error(),
			})
			continue
		}
		output.Accepted = append(output.Accepted, result)
	}

	eventBus.Wait()
	output.Dashboard = reportingService.Dashboard()

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		log.Error("failed to encode results", "error", err)
		os.Exit(1)
	}

	log.Info("intake batch complete", "accepted", len(output.Accepted), "rejected", len(output.Rejected))
}
