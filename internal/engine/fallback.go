package engine

import (
	"fmt"
	"strings"
)

// Deterministic fallback composer: builds a document straight from
// structured or heuristic data when the text normalizer is unavailable
// or its invocation fails. Never invoked on the sentinel path — that is
// a legitimate "no recipe" result, not a failure.

const (
	maxFallbackIngredients  = 20
	maxFallbackInstructions = 15
)

// ComposeFallback renders the same fixed schema the AI path produces.
// Returns the sentinel when neither ingredients nor instructions exist.
func ComposeFallback(src *RawSource, extract SectionExtract) string {
	metrics.Fallbacks.Add(1)

	var title string
	var ingredients, instructions []string
	if src.Structured != nil {
		title = src.Structured.Name
		ingredients = src.Structured.Ingredients
		instructions = src.Structured.Instructions
	}
	if title == "" {
		title, _, _ = strings.Cut(src.Title, "|")
		title = strings.TrimSpace(title)
	}
	if title == "" {
		title = "Unknown Recipe"
	}
	if len(ingredients) == 0 {
		ingredients = extract.Ingredients
	}
	if len(instructions) == 0 {
		instructions = extract.Instructions
	}

	if len(ingredients) == 0 && len(instructions) == 0 {
		return Sentinel
	}
	if len(ingredients) > maxFallbackIngredients {
		ingredients = ingredients[:maxFallbackIngredients]
	}
	if len(instructions) > maxFallbackInstructions {
		instructions = instructions[:maxFallbackInstructions]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n**Ingredients:**\n", title)
	if len(ingredients) == 0 {
		sb.WriteString("• No ingredients found\n")
	}
	for _, ing := range ingredients {
		fmt.Fprintf(&sb, "• %s\n", ing)
	}
	sb.WriteString("\n**Method:**\n")
	if len(instructions) == 0 {
		sb.WriteString("1. No instructions found\n")
	}
	for i, inst := range instructions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, inst)
	}
	return strings.TrimRight(sb.String(), "\n")
}
