package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// AI normalizer, text path: build one contextual prompt from the scraped
// artifacts and ask the text model for a document in the fixed schema.
// The output is untrusted free text; callers validate it with
// ValidateNormalized before use.

// ErrNoTextModel is returned when no text model is configured.
var ErrNoTextModel = errors.New("text model not configured")

// BuildPrompt assembles the normalizer prompt: pre-extracted sections,
// serialized structured data, a source-type context sentence, the full
// content, and the fixed instruction block.
func BuildPrompt(src *RawSource, extract SectionExtract) string {
	content := strings.TrimSpace(src.Content)

	if !extract.Empty() {
		content = fmt.Sprintf(
			"PRE-EXTRACTED INGREDIENTS:\n%s\n\nPRE-EXTRACTED INSTRUCTIONS:\n%s\n\nFULL PAGE CONTENT:\n%s",
			strings.Join(extract.Ingredients, "\n"),
			strings.Join(extract.Instructions, "\n"),
			content,
		)
	}

	if src.Structured != nil {
		if blob, err := json.MarshalIndent(src.Structured.Raw, "", "  "); err == nil {
			content = fmt.Sprintf("STRUCTURED DATA:\n%s\n\n%s", blob, content)
		}
	}

	sourceContext, extraRules := contextWebpage, ""
	switch src.Kind {
	case SourceVideo:
		sourceContext, extraRules = contextVideo, rulesVideo
	case SourceImageSet:
		sourceContext, extraRules = contextImages, rulesImages
	}

	return fmt.Sprintf(extractPrompt, sourceContext, extraRules, src.Identifier, content)
}

// NormalizeText invokes the text model with temperature and token bounds
// fixed at client construction. Returns the trimmed, fence-stripped
// output; the caller routes errors to the fallback composer. Empty model
// output is an invocation failure: a valid response is either a document
// or the sentinel, never nothing.
func NormalizeText(ctx context.Context, src *RawSource, extract SectionExtract) (string, error) {
	if cfg.TextLLM == nil {
		return "", ErrNoTextModel
	}
	metrics.LLMCalls.Add(1)
	raw, err := cfg.TextLLM.Complete(ctx, systemPrompt, BuildPrompt(src, extract))
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", fmt.Errorf("normalize %s: %w", src.Identifier, err)
	}
	out := stripFences(raw)
	if out == "" {
		metrics.LLMErrors.Add(1)
		return "", fmt.Errorf("normalize %s: empty model output", src.Identifier)
	}
	ValidateNormalized(out, src.Identifier)
	return out, nil
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```markdown")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// IsSentinel reports whether normalizer output is the exact no-recipe
// sentinel. Matching is exact after trimming: near-misses are documents.
func IsSentinel(s string) bool {
	return strings.TrimSpace(s) == Sentinel
}

// ValidateNormalized checks the output contract shared by both normalizer
// variants and logs violations. The output is still used as-is: the
// assembler degrades gracefully, so mismatches are flagged, not fatal.
func ValidateNormalized(out, identifier string) {
	if IsSentinel(out) {
		return
	}
	if strings.Contains(out, Sentinel) {
		slog.Warn("normalizer emitted a near-miss sentinel, treating as document",
			slog.String("source", identifier))
	}
	if !strings.HasPrefix(out, "# ") {
		slog.Warn("normalizer output missing level-1 heading",
			slog.String("source", identifier))
	}
}
