package engine

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Document assembler: finalize normalizer output into a RecipeDocument,
// attribute the source, and derive the canonical title.

const noRecipeTitle = "No Recipe Found"

// noRecipeBody is the standard document emitted on the sentinel path.
// Arg: source identifier.
const noRecipeBody = `# No Recipe Found

**URL:** %s

Could not extract a clear recipe from this source. The page may not contain a recipe or may be behind a paywall.`

// imageSetLabel stands in for the identifier of uploaded photo batches.
const imageSetLabel = "uploaded images"

// AssembleDocument turns normalizer (or fallback) output into the
// terminal RecipeDocument. The body always begins with a level-1 heading
// and, for URL-backed sources, contains the source identifier verbatim.
func AssembleDocument(normalized string, src *RawSource) *RecipeDocument {
	now := time.Now().UTC()

	if IsSentinel(normalized) {
		metrics.NoRecipe.Add(1)
		display := src.Identifier
		if display == "" {
			display = imageSetLabel
		}
		return &RecipeDocument{
			Title:     noRecipeTitle,
			Body:      fmt.Sprintf(noRecipeBody, display),
			SourceID:  src.Identifier,
			CreatedAt: now,
		}
	}

	body := normalized
	if !strings.HasPrefix(body, "# ") {
		body = "# Unknown Recipe\n\n" + body
	}
	if src.Identifier != "" && !strings.Contains(body, src.Identifier) {
		titleLine, rest, _ := strings.Cut(body, "\n")
		body = fmt.Sprintf("%s\n\n**URL:** %s\n\n%s", titleLine, src.Identifier, strings.TrimLeft(rest, "\n"))
	}

	title := "Unknown Recipe"
	titleLine, _, _ := strings.Cut(body, "\n")
	if name := strings.TrimSpace(strings.TrimPrefix(titleLine, "# ")); name != "" {
		title = name
	}

	return &RecipeDocument{
		Title:     title,
		Body:      body,
		SourceID:  src.Identifier,
		CreatedAt: now,
	}
}

// DocumentFilename derives the canonical storage filename:
// recipe_<domain-token>_<timestamp>.md, or recipe_vision_<timestamp>.md
// when no source URL exists (image path).
func DocumentFilename(identifier string, t time.Time) string {
	token := "vision"
	if identifier != "" {
		token = domainToken(identifier)
	}
	return fmt.Sprintf("recipe_%s_%s.md", token, t.Format("20060102_150405"))
}

func domainToken(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "web"
	}
	host := strings.TrimPrefix(u.Host, "www.")
	return strings.ReplaceAll(host, "/", "_")
}
