package engine

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Structured-data extraction: scan every JSON-LD island for the first
// object whose @type is or contains "Recipe". Malformed islands are
// skipped silently; other signals still feed the pipeline.

// ExtractStructuredData returns the first embedded Recipe object, or nil.
func ExtractStructuredData(doc *goquery.Document) *StructuredRecipe {
	var found *StructuredRecipe
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true
		}
		if list, ok := data.([]any); ok {
			if len(list) == 0 {
				return true
			}
			data = list[0]
		}
		obj, ok := data.(map[string]any)
		if !ok || !isRecipeType(obj["@type"]) {
			return true
		}
		found = recipeFromObject(obj)
		return false
	})
	return found
}

// isRecipeType accepts @type as a string or a list of strings.
func isRecipeType(t any) bool {
	switch v := t.(type) {
	case string:
		return strings.Contains(v, "Recipe")
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.Contains(s, "Recipe") {
				return true
			}
		}
	}
	return false
}

// recipeFromObject normalizes a JSON-LD Recipe object. Instruction
// entries may be plain strings or HowToStep objects carrying a text field.
func recipeFromObject(obj map[string]any) *StructuredRecipe {
	r := &StructuredRecipe{Raw: obj}
	if name, ok := obj["name"].(string); ok {
		r.Name = strings.TrimSpace(name)
	}
	if list, ok := obj["recipeIngredient"].([]any); ok {
		for _, item := range list {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				r.Ingredients = append(r.Ingredients, strings.TrimSpace(s))
			}
		}
	}
	if list, ok := obj["recipeInstructions"].([]any); ok {
		for _, item := range list {
			if s := instructionText(item); s != "" {
				r.Instructions = append(r.Instructions, s)
			}
		}
	}
	return r
}

func instructionText(item any) string {
	switch v := item.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		if s, ok := v["text"].(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
