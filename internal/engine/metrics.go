package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ScrapeRequests     atomic.Int64
	FetchRequests      atomic.Int64
	FetchErrors        atomic.Int64
	TranscriptRequests atomic.Int64
	LLMCalls           atomic.Int64
	LLMErrors          atomic.Int64
	VisionCalls        atomic.Int64
	VisionErrors       atomic.Int64
	Fallbacks          atomic.Int64
	NoRecipe           atomic.Int64
	Saves              atomic.Int64
	SaveErrors         atomic.Int64
}

// IncrTranscript bumps the transcript-request counter; called from sources.
func IncrTranscript() { metrics.TranscriptRequests.Add(1) }

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"scrape_requests":     metrics.ScrapeRequests.Load(),
		"fetch_requests":      metrics.FetchRequests.Load(),
		"fetch_errors":        metrics.FetchErrors.Load(),
		"transcript_requests": metrics.TranscriptRequests.Load(),
		"llm_calls":           metrics.LLMCalls.Load(),
		"llm_errors":          metrics.LLMErrors.Load(),
		"vision_calls":        metrics.VisionCalls.Load(),
		"vision_errors":       metrics.VisionErrors.Load(),
		"fallbacks":           metrics.Fallbacks.Load(),
		"no_recipe":           metrics.NoRecipe.Load(),
		"saves":               metrics.Saves.Load(),
		"save_errors":         metrics.SaveErrors.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	keys := []string{
		"scrape_requests",
		"fetch_requests", "fetch_errors",
		"transcript_requests",
		"llm_calls", "llm_errors",
		"vision_calls", "vision_errors",
		"fallbacks", "no_recipe",
		"saves", "save_errors",
	}
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
