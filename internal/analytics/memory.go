package analytics

import (
	"runtime"
	"time"
)

const bytesPerMB = 1024 * 1024

// memorySample is one point-in-time reading of process heap usage.
type memorySample struct {
	At      time.Time
	AllocMB float64
	SysMB   float64
}

// sampleLoop collects a memory sample on a fixed interval until Close. A
// single goroutine owns the ticker, so ticks can never overlap: a slow tick
// simply delays the next one.
func (e *Engine) sampleLoop() {
	if e.sampleInterval <= 0 {
		return
	}
	ticker := time.NewTicker(e.sampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-e.stop:
			return
		case <-ticker.C:
			e.sampleMemory()
		}
	}
}

// sampleMemory appends a reading and prunes samples older than the rolling
// window.
func (e *Engine) sampleMemory() {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	e.memSamples = append(e.memSamples, memorySample{
		At:      now,
		AllocMB: float64(stats.Alloc) / bytesPerMB,
		SysMB:   float64(stats.Sys) / bytesPerMB,
	})

	cutoff := now.Add(-e.sampleWindow)
	kept := e.memSamples[:0]
	for _, sample := range e.memSamples {
		if sample.At.After(cutoff) {
			kept = append(kept, sample)
		}
	}
	e.memSamples = kept
}

// memoryStats returns the latest, average, and peak heap allocation in MB
// over the retained window. Callers must hold the engine mutex.
func (e *Engine) memoryStats() (current, avg, peak float64) {
	if len(e.memSamples) == 0 {
		return 0, 0, 0
	}
	var sum float64
	for _, sample := range e.memSamples {
		sum += sample.AllocMB
		if sample.AllocMB > peak {
			peak = sample.AllocMB
		}
	}
	current = e.memSamples[len(e.memSamples)-1].AllocMB
	avg = sum / float64(len(e.memSamples))
	return current, avg, peak
}
