// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// PhoneConfig provides settings for phone number normalization.
type PhoneConfig interface {
	GetDefaultPhoneRegion() string
}

// ScoringConfig provides settings needed by the scoring engine.
type ScoringConfig interface {
	GetBulkScoreConcurrency() int
	GetMessageCatalogPath() string
}

// AnalyticsConfig provides settings needed by the analytics engine.
type AnalyticsConfig interface {
	GetAnalyticsLeadCap() int
	GetAnalyticsConversationCap() int
	GetAnalyticsEmailCap() int
	GetResponseBufferSize() int
	GetMemorySampleInterval() time.Duration
	GetMemorySampleWindow() time.Duration
}

// ReportConfig provides settings for scheduled report generation.
type ReportConfig interface {
	GetReportTimezone() string
	GetDailyReportSpec() string
	GetWeeklyReportSpec() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                      string
	DefaultPhoneRegion       string
	BulkScoreConcurrency     int
	MessageCatalogPath       string
	AnalyticsLeadCap         int
	AnalyticsConversationCap int
	AnalyticsEmailCap        int
	ResponseBufferSize       int
	MemorySampleInterval     time.Duration
	MemorySampleWindow       time.Duration
	ReportTimezone           string
	DailyReportSpec          string
	WeeklyReportSpec         string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// PhoneConfig implementation
func (c *Config) GetDefaultPhoneRegion() string { return c.DefaultPhoneRegion }

// ScoringConfig implementation
func (c *Config) GetBulkScoreConcurrency() int  { return c.BulkScoreConcurrency }
func (c *Config) GetMessageCatalogPath() string { return c.MessageCatalogPath }

// AnalyticsConfig implementation
func (c *Config) GetAnalyticsLeadCap() int                  { return c.AnalyticsLeadCap }
func (c *Config) GetAnalyticsConversationCap() int          { return c.AnalyticsConversationCap }
func (c *Config) GetAnalyticsEmailCap() int                 { return c.AnalyticsEmailCap }
func (c *Config) GetResponseBufferSize() int                { return c.ResponseBufferSize }
func (c *Config) GetMemorySampleInterval() time.Duration    { return c.MemorySampleInterval }
func (c *Config) GetMemorySampleWindow() time.Duration      { return c.MemorySampleWindow }

// ReportConfig implementation
func (c *Config) GetReportTimezone() string   { return c.ReportTimezone }
func (c *Config) GetDailyReportSpec() string  { return c.DailyReportSpec }
func (c *Config) GetWeeklyReportSpec() string { return c.WeeklyReportSpec }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:                      getEnv("APP_ENV", "development"),
		DefaultPhoneRegion:       strings.ToUpper(getEnv("PHONE_DEFAULT_REGION", "US")),
		BulkScoreConcurrency:     mustInt(getEnv("SCORING_BULK_CONCURRENCY", "8")),
		MessageCatalogPath:       getEnv("SCORING_MESSAGE_CATALOG", ""),
		AnalyticsLeadCap:         mustInt(getEnv("ANALYTICS_LEAD_CAP", "10000")),
		AnalyticsConversationCap: mustInt(getEnv("ANALYTICS_CONVERSATION_CAP", "5000")),
		AnalyticsEmailCap:        mustInt(getEnv("ANALYTICS_EMAIL_CAP", "10000")),
		ResponseBufferSize:       mustInt(getEnv("ANALYTICS_RESPONSE_BUFFER_SIZE", "1000")),
		MemorySampleInterval:     mustDuration(getEnv("ANALYTICS_MEMORY_SAMPLE_INTERVAL", "60s")),
		MemorySampleWindow:       mustDuration(getEnv("ANALYTICS_MEMORY_SAMPLE_WINDOW", "24h")),
		ReportTimezone:           getEnv("REPORT_TIMEZONE", "America/New_York"),
		DailyReportSpec:          getEnv("REPORT_DAILY_CRON", "0 9 * * *"),
		WeeklyReportSpec:         getEnv("REPORT_WEEKLY_CRON", "0 9 * * 1"),
	}

	if cfg.BulkScoreConcurrency < 1 {
		return nil, fmt.Errorf("SCORING_BULK_CONCURRENCY must be at least 1")
	}
	if cfg.AnalyticsLeadCap < 1 || cfg.AnalyticsConversationCap < 1 || cfg.AnalyticsEmailCap < 1 {
		return nil, fmt.Errorf("analytics retention caps must be at least 1")
	}
	if cfg.ResponseBufferSize < 1 {
		return nil, fmt.Errorf("ANALYTICS_RESPONSE_BUFFER_SIZE must be at least 1")
	}
	if cfg.MemorySampleWindow <= 0 {
		return nil, fmt.Errorf("ANALYTICS_MEMORY_SAMPLE_WINDOW must be positive")
	}
	if _, err := time.LoadLocation(cfg.ReportTimezone); err != nil {
		return nil, fmt.Errorf("REPORT_TIMEZONE %q is invalid: %w", cfg.ReportTimezone, err)
	}
	if cfg.DailyReportSpec == "" || cfg.WeeklyReportSpec == "" {
		return nil, fmt.Errorf("report cron specs must not be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}
