package engine

import (
	"regexp"
	"strings"
)

// Heuristic section segmenter: a single pass over plain-text lines driven
// by an explicit three-state value. Output is a hint for the normalizer
// prompt, never ground truth.

type segState int

const (
	segNone segState = iota
	segIngredients
	segInstructions
)

// maxHeaderLen guards section-keyword matches against full sentences.
const maxHeaderLen = 100

var (
	ingredientHeaderRe  = regexp.MustCompile(`(?i)\bingredients?\b`)
	instructionHeaderRe = regexp.MustCompile(`(?i)\b(instructions?|method|directions?|steps?)\b`)
	ingredientEndRe     = regexp.MustCompile(`(?i)\b(method|instructions?|directions?|steps?|nutrition|notes)\b`)
	instructionEndRe    = regexp.MustCompile(`(?i)\b(nutrition|notes|tips|faq)\b`)
	numberedStepRe      = regexp.MustCompile(`^\d+\.?\s+`)
)

// bulletMarkers are leading markers stripped from captured ingredient lines.
const bulletMarkers = "▢•-*"

// measurementTokens mark a non-bulleted line as ingredient-like; without
// one, prose paragraphs inside the ingredients section would be captured.
var measurementTokens = []string{
	"g ", "ml", "tbsp", "tsp", "cup", "oz", "lb", "clove", "onion", "garlic",
}

// actionVerbs mark an unnumbered line as a plausible cooking step.
var actionVerbs = []string{
	"cook", "add", "heat", "stir", "mix", "drain", "serve", "fry", "bake",
}

func containsAny(lower string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

func isBulleted(line string) bool {
	return strings.IndexAny(line, bulletMarkers) == 0
}

// SegmentSections partitions plain text into candidate ingredient and
// instruction lines. Empty output is valid, not an error.
func SegmentSections(content string) SectionExtract {
	var extract SectionExtract
	state := segNone

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Header transitions are checked first and are atomic per line:
		// a transition line is never also captured.
		if len(line) < maxHeaderLen && ingredientHeaderRe.MatchString(line) {
			state = segIngredients
			continue
		}
		if len(line) < maxHeaderLen && instructionHeaderRe.MatchString(line) {
			state = segInstructions
			continue
		}

		lower := strings.ToLower(line)

		switch state {
		case segIngredients:
			if ingredientEndRe.MatchString(line) {
				if strings.Contains(lower, "instructions") || strings.Contains(lower, "method") {
					state = segInstructions
				} else {
					state = segNone
				}
				continue
			}
			if isBulleted(line) {
				item := strings.TrimSpace(strings.TrimLeft(line, bulletMarkers+" "))
				if item != "" {
					extract.Ingredients = append(extract.Ingredients, item)
				}
			} else if containsAny(lower, measurementTokens) {
				extract.Ingredients = append(extract.Ingredients, line)
			}

		case segInstructions:
			if instructionEndRe.MatchString(line) {
				state = segNone
				continue
			}
			if numberedStepRe.MatchString(line) ||
				strings.HasPrefix(lower, "step") ||
				containsAny(lower, actionVerbs) {
				extract.Instructions = append(extract.Instructions, line)
			}
		}
	}
	return extract
}
