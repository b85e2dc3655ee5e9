package engine

import (
	"context"
	"fmt"
	"log/slog"
)

// AI normalizer, vision path: preprocess the image batch and send every
// surviving image plus the fixed instruction prompt to the vision model
// in one call. This path never raises: absent configuration, zero usable
// images, and service errors all degrade to the sentinel.

// NormalizeVision converts an ordered set of recipe photos into a
// document in the fixed schema, or the sentinel.
func NormalizeVision(ctx context.Context, images [][]byte, hint string) string {
	if cfg.VisionLLM == nil {
		slog.Warn("vision model not configured, skipping image batch")
		return Sentinel
	}

	parts := PrepareImages(images)
	if len(parts) == 0 {
		return Sentinel
	}

	metrics.VisionCalls.Add(1)
	raw, err := cfg.VisionLLM.Generate(ctx, parts, fmt.Sprintf(visionPrompt, hint))
	if err != nil {
		metrics.VisionErrors.Add(1)
		slog.Error("vision normalization failed",
			slog.Int("images", len(parts)), slog.Any("error", err))
		return Sentinel
	}

	out := stripFences(raw)
	ValidateNormalized(out, "image batch")
	return out
}
