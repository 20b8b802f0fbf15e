// Command analytics-replay rebuilds analytics state from a JSONL event log
// and prints the derived views. The engine keeps state only in process
// memory, so replay is how an external event store restores views after a
// restart, and how operators inspect historical windows offline.
//
// Each input line is one event:
//
//	{"kind":"lead","lead":{...},"event":"created"}
//	{"kind":"conversation","conversation_id":"c1","message":"hi","response":"hello","duration_ms":900}
//	{"kind":"email","email_id":"m1","event":"sent","data":{"subject":"Welcome"}}
//	{"kind":"conversion","lead_id":"l1","conversion_type":"lease_signed","value":500}
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"os"

	"placement_portal_backend/internal/analytics"
	"placement_portal_backend/internal/leads/domain"
	"placement_portal_backend/platform/config"
	"placement_portal_backend/platform/logger"
)

type replayEvent struct {
	Kind string `json:"kind"`

	Lead  domain.Lead `json:"lead,omitempty"`
	Event string      `json:"event,omitempty"`

	ConversationID string `json:"conversation_id,omitempty"`
	Message        string `json:"message,omitempty"`
	Response       string `json:"response,omitempty"`
	DurationMs     int64  `json:"duration_ms,omitempty"`

	EmailID string            `json:"email_id,omitempty"`
	Data    map[string]string `json:"data,omitempty"`

	LeadID         string  `json:"lead_id,omitempty"`
	ConversionType string  `json:"conversion_type,omitempty"`
	Value          float64 `json:"value,omitempty"`
}

type replayOutput struct {
	Dashboard analytics.DashboardSnapshot            `json:"dashboard"`
	Funnel    analytics.Funnel                       `json:"funnel"`
	Sources   map[string]analytics.SourcePerformance `json:"sources"`
	TimeOfDay map[string]int                         `json:"time_of_day"`
}

func main() {
	inputPath := flag.String("input", "", "path to the JSONL event log (required)")
	timeframe := flag.String("timeframe", "30d", "window for funnel/source/time views: 24h, 7d, 30d, 90d")
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

	file, err := os.Open(*inputPath)
	if err != nil {
		log.Error("failed to open event log", "error", err, "path", *inputPath)
		os.Exit(1)
	}
	defer file.Close()

	engine := analytics.New(cfg, log)
	defer engine.Close()

	var replayed, skipped int
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var event replayEvent
		if err := json.Unmarshal(line, &event); err != nil {
			skipped++
			continue
		}

		switch event.Kind {
		case "lead":
			engine.TrackLead(event.Lead, domain.LeadEvent(event.Event))
		case "conversation":
			engine.TrackConversation(event.ConversationID, event.Message, event.Response, event.DurationMs)
		case "email":
			engine.TrackEmail(event.EmailID, domain.EmailEvent(event.Event), event.Data)
		case "conversion":
			engine.TrackConversion(event.LeadID, event.ConversionType, event.Value)
		default:
			skipped++
			continue
		}
		replayed++
	}
	if err := scanner.Err(); err != nil {
		log.Error("failed to read event log", "error", err)
		os.Exit(1)
	}

	window, ok := domain.ParseTimeframe(*timeframe)
	if !ok {
		window = domain.Timeframe30Days
	}

	output := replayOutput{
		Dashboard: engine.Dashboard(),
		Funnel:    engine.ConversionFunnel(window),
		Sources:   engine.SourceAnalysis(window),
		TimeOfDay: engine.TimeOfDayAnalysis(window),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		log.Error("failed to encode views", "error", err)
		os.Exit(1)
	}

	log.Info("replay complete", "replayed", replayed, "skipped", skipped)
}
