package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Pipeline orchestration: classify → retrieve → segment → normalize →
// (fallback on invocation failure) → assemble. Each invocation is
// synchronous and keeps no state beyond the shared client handles.

// VideoSource is the video-metadata/caption service collaborator. A nil
// result with an error means total extraction failure for that source,
// never a partially filled one.
type VideoSource interface {
	Fetch(ctx context.Context, rawURL string) (*RawSource, error)
}

// ErrNoVideoSource is returned for video URLs when no video-metadata
// service is configured.
var ErrNoVideoSource = errors.New("video source not configured")

// ScrapeSource retrieves raw content for a URL according to its
// classification.
func ScrapeSource(ctx context.Context, rawURL string) (*RawSource, error) {
	if Classify(rawURL) == SourceVideo {
		if cfg.Video == nil {
			return nil, ErrNoVideoSource
		}
		return cfg.Video.Fetch(ctx, rawURL)
	}
	return FetchWebpage(ctx, rawURL)
}

// ExtractFromURL runs the full text pipeline for one URL. A retrieval
// failure is returned to the caller; a normalizer invocation failure is
// recovered locally through the fallback composer.
func ExtractFromURL(ctx context.Context, rawURL string) (*RecipeDocument, error) {
	metrics.ScrapeRequests.Add(1)

	src, err := ScrapeSource(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("scrape %s: %w", rawURL, err)
	}
	if src.Content == "" && src.Structured == nil {
		return nil, fmt.Errorf("scrape %s: no content retrieved", rawURL)
	}

	extract := SegmentSections(src.Content)

	out, err := NormalizeText(ctx, src, extract)
	if err != nil {
		slog.Warn("normalization failed, composing fallback",
			slog.String("url", rawURL), slog.Any("error", err))
		out = ComposeFallback(src, extract)
	}

	return AssembleDocument(out, src), nil
}

// ExtractFromImages runs the vision pipeline for an ordered photo batch.
// Never fails: every degradation ends in the "no recipe found" document.
func ExtractFromImages(ctx context.Context, images [][]byte, hint string) *RecipeDocument {
	metrics.ScrapeRequests.Add(1)

	out := NormalizeVision(ctx, images, hint)
	src := &RawSource{Kind: SourceImageSet, RetrievedAt: time.Now().UTC()}
	return AssembleDocument(out, src)
}

// RecordSave tracks storage outcomes for the metrics endpoint.
func RecordSave(ok bool) {
	if ok {
		metrics.Saves.Add(1)
	} else {
		metrics.SaveErrors.Add(1)
	}
}
