// Package analytics provides the process-local analytics engine: it ingests
// discrete lead, conversation, email, and conversion events and serves
// derived views (dashboard snapshot, conversion funnel, source analysis,
// time-of-day distribution, periodic reports). All state lives in memory for
// the lifetime of the engine; an external store must replay events to
// rebuild it after a restart.
package analytics

import (
	"sync"
	"time"

	"placement_portal_backend/internal/leads/domain"
	"placement_portal_backend/platform/config"
	"placement_portal_backend/platform/logger"

	"golang.org/x/time/rate"
)

// dropLogInterval throttles warn logs for dropped events so a misbehaving
// caller cannot flood the log.
const dropLogInterval = time.Second

// leadEventEntry is one lifecycle milestone in a lead's event log.
type leadEventEntry struct {
	Event domain.LeadEvent `json:"event"`
	At    time.Time        `json:"at"`
	// ConversionType carries the conversion tag for "converted" entries.
	ConversionType string `json:"conversion_type,omitempty"`
}

// leadRecord is the engine's registry entry for one lead. Source, creation
// instant, and estimated value are fixed at "created" time; the event log
// grows append-only.
type leadRecord struct {
	id        string
	source    string
	createdAt time.Time
	value     float64
	events    []leadEventEntry
}

// hasEvent reports whether the lead's log contains the given event anywhere.
// Stage membership is a presence check, not a progression check.
func (r *leadRecord) hasEvent(event domain.LeadEvent) bool {
	for _, entry := range r.events {
		if entry.Event == event {
			return true
		}
	}
	return false
}

// conversationTurn is one message/response pair in a conversation log.
type conversationTurn struct {
	Message    string    `json:"message,omitempty"`
	Response   string    `json:"response,omitempty"`
	DurationMs int64     `json:"duration_ms,omitempty"`
	At         time.Time `json:"at"`
}

type conversationRecord struct {
	id     string
	lastAt time.Time
	turns  []conversationTurn
}

// emailEventEntry is one lifecycle transition in an email's event log.
type emailEventEntry struct {
	Event domain.EmailEvent `json:"event"`
	At    time.Time         `json:"at"`
	Data  map[string]string `json:"data,omitempty"`
}

type emailRecord struct {
	id     string
	events []emailEventEntry
}

// counters are the true monotonic totals. Today/week/month lead counts are
// not kept here: they are derived from the lead registry at read time, so
// they respect calendar boundaries without a midnight reset job.
type counters struct {
	TotalConversations int64
	EmailsSent         int64
	EmailsOpened       int64
	EmailsClicked      int64
	Conversions        int64
	Revenue            float64
}

// Engine is the stateful analytics aggregator. One instance per process;
// every ingestion and read method serializes behind a single mutex, so the
// engine is safe to share across goroutines.
type Engine struct {
	mu sync.Mutex

	leads     map[string]*leadRecord
	leadOrder []string

	conversations     map[string]*conversationRecord
	conversationOrder []string

	emails     map[string]*emailRecord
	emailOrder []string

	counters      counters
	responseTimes *ring
	memSamples    []memorySample

	leadCap         int
	conversationCap int
	emailCap        int
	sampleInterval  time.Duration
	sampleWindow    time.Duration

	startedAt time.Time
	now       func() time.Time

	log         *logger.Logger
	dropLimiter *rate.Limiter

	stop      chan struct{}
	closeOnce sync.Once
}

// New constructs an engine and starts its background memory sampler. Close
// stops the sampler; the rest of the engine carries no goroutines.
func New(cfg config.AnalyticsConfig, log *logger.Logger) *Engine {
	e := &Engine{
		leads:           make(map[string]*leadRecord),
		conversations:   make(map[string]*conversationRecord),
		emails:          make(map[string]*emailRecord),
		responseTimes:   newRing(cfg.GetResponseBufferSize()),
		leadCap:         cfg.GetAnalyticsLeadCap(),
		conversationCap: cfg.GetAnalyticsConversationCap(),
		emailCap:        cfg.GetAnalyticsEmailCap(),
		sampleInterval:  cfg.GetMemorySampleInterval(),
		sampleWindow:    cfg.GetMemorySampleWindow(),
		now:             time.Now,
		log:             log,
		dropLimiter:     rate.NewLimiter(rate.Every(dropLogInterval), 5),
		stop:            make(chan struct{}),
	}
	e.startedAt = e.now()
	e.sampleMemory()
	go e.sampleLoop()
	return e
}

// Close stops the background sampler. Safe to call more than once.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		close(e.stop)
	})
}

// Reset clears all accumulated state, as if the engine had just been
// constructed. Intended for test isolation.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.leads = make(map[string]*leadRecord)
	e.leadOrder = nil
	e.conversations = make(map[string]*conversationRecord)
	e.conversationOrder = nil
	e.emails = make(map[string]*emailRecord)
	e.emailOrder = nil
	e.counters = counters{}
	e.responseTimes = newRing(e.responseTimes.capacity)
	e.memSamples = nil
	e.startedAt = e.now()
}

// ========== INGESTION ==========

// TrackLead records a lifecycle event for a lead. On "created" the lead is
// registered with its source, creation instant (the record's CreatedAt when
// set, the engine clock otherwise), and estimated value; other events append
// to the log only. Unknown events are dropped and logged, never stored.
func (e *Engine) TrackLead(lead domain.Lead, event domain.LeadEvent) {
	if !domain.IsKnownLeadEvent(event) {
		e.logDrop("lead", "event", string(event))
		return
	}
	if lead.ID == "" {
		e.logDrop("lead", "lead_id", "")
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	record, exists := e.leads[lead.ID]
	if !exists {
		record = &leadRecord{id: lead.ID}
		e.leads[lead.ID] = record
		e.leadOrder = append(e.leadOrder, lead.ID)
		e.leadOrder = trimOrder(e.leadOrder, e.leadCap, func(id string) {
			delete(e.leads, id)
		})
	}

	// Registration details are fixed by the first "created" event; later
	// events of any kind never rewrite them.
	if event == domain.LeadEventCreated && record.createdAt.IsZero() {
		record.source = lead.Source
		record.createdAt = lead.CreatedAt
		if record.createdAt.IsZero() {
			record.createdAt = now
		}
		record.value = estimateLeadValue(lead)
	}

	record.events = append(record.events, leadEventEntry{Event: event, At: now})
}

// TrackConversation records one message/response turn. The conversation
// counter increments on first sight of an id, not per turn. A positive
// duration is pushed into the response-time buffer.
func (e *Engine) TrackConversation(conversationID, message, response string, durationMs int64) {
	if conversationID == "" {
		e.logDrop("conversation", "conversation_id", "")
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	record, exists := e.conversations[conversationID]
	if !exists {
		record = &conversationRecord{id: conversationID}
		e.conversations[conversationID] = record
		e.conversationOrder = append(e.conversationOrder, conversationID)
		e.conversationOrder = trimOrder(e.conversationOrder, e.conversationCap, func(id string) {
			delete(e.conversations, id)
		})
		e.counters.TotalConversations++
	}

	record.lastAt = now
	record.turns = append(record.turns, conversationTurn{
		Message:    message,
		Response:   response,
		DurationMs: durationMs,
		At:         now,
	})

	if durationMs > 0 {
		e.responseTimes.push(durationMs)
	}
}

// TrackEmail records an email lifecycle transition. Sent, opened, and
// clicked feed the rate counters; every known event lands in the per-email
// log. Unknown events are dropped and logged.
func (e *Engine) TrackEmail(emailID string, event domain.EmailEvent, data map[string]string) {
	if !domain.IsKnownEmailEvent(event) {
		e.logDrop("email", "event", string(event))
		return
	}
	if emailID == "" {
		e.logDrop("email", "email_id", "")
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	record, exists := e.emails[emailID]
	if !exists {
		record = &emailRecord{id: emailID}
		e.emails[emailID] = record
		e.emailOrder = append(e.emailOrder, emailID)
		e.emailOrder = trimOrder(e.emailOrder, e.emailCap, func(id string) {
			delete(e.emails, id)
		})
	}

	record.events = append(record.events, emailEventEntry{Event: event, At: e.now(), Data: data})

	switch event {
	case domain.EmailEventSent:
		e.counters.EmailsSent++
	case domain.EmailEventOpened:
		e.counters.EmailsOpened++
	case domain.EmailEventClicked:
		e.counters.EmailsClicked++
	}
}

// TrackConversion increments the conversion counter and revenue total by
// exactly one call's worth, and appends a "converted" event to the lead's
// log when the lead is registered. An unknown lead still counts: revenue is
// real even when the lead predates this engine instance.
func (e *Engine) TrackConversion(leadID, conversionType string, value float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.counters.Conversions++
	e.counters.Revenue += value

	record, exists := e.leads[leadID]
	if !exists {
		return
	}
	record.events = append(record.events, leadEventEntry{
		Event:          domain.LeadEventConverted,
		At:             e.now(),
		ConversionType: conversionType,
	})
}

// logDrop warn-logs a discarded event through the rate limiter. Silent drops
// mask caller bugs; unthrottled logs invite flooding.
func (e *Engine) logDrop(kind, field, value string) {
	if e.log == nil || !e.dropLimiter.Allow() {
		return
	}
	e.log.EventDropped(kind, field, value)
}
