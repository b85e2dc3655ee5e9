package engine

import (
	"context"
	"time"
)

// Sentinel is the literal the normalizers emit when no recipe is present.
// Distinct from an empty or failed extraction.
const Sentinel = "NO_RECIPE_FOUND"

// SourceKind identifies the shape of raw content a source produced.
type SourceKind string

const (
	SourceWebpage  SourceKind = "webpage"
	SourceVideo    SourceKind = "video"
	SourceImageSet SourceKind = "image_set"
)

// RawSource is the immutable result of retrieving one recipe source.
type RawSource struct {
	Kind        SourceKind
	Identifier  string
	Title       string
	Duration    int // seconds, video sources only
	Content     string
	Structured  *StructuredRecipe // webpage sources only, nil when absent
	RetrievedAt time.Time
}

// SectionExtract holds heuristically segmented ingredient and instruction
// lines. Best-effort enrichment for the normalizer prompt, never
// authoritative; empty is a valid result.
type SectionExtract struct {
	Ingredients  []string
	Instructions []string
}

// Empty reports whether the segmenter found nothing.
func (e SectionExtract) Empty() bool {
	return len(e.Ingredients) == 0 && len(e.Instructions) == 0
}

// StructuredRecipe is a machine-readable recipe object extracted from an
// embedded JSON-LD island. Raw keeps the full object for prompt context.
type StructuredRecipe struct {
	Name         string
	Ingredients  []string
	Instructions []string
	Raw          map[string]any
}

// RecipeDocument is the terminal artifact of one pipeline invocation.
// Body always begins with a level-1 heading and names the source
// identifier verbatim.
type RecipeDocument struct {
	Title     string
	Body      string
	SourceID  string
	CreatedAt time.Time
}

// NoRecipe reports whether the document is the "no recipe found" notice
// rather than an extracted recipe.
func (d *RecipeDocument) NoRecipe() bool {
	return d.Title == noRecipeTitle
}

// ImagePart is one preprocessed image ready for the vision service.
type ImagePart struct {
	MediaType string
	Data      []byte
}

// TextModel is the text-capable language-model service. Implementations
// must be safe for concurrent use; temperature and output-token bounds
// are fixed at construction.
type TextModel interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// VisionModel is the vision-capable language-model service: ordered image
// parts plus a trailing text prompt, one call per batch.
type VisionModel interface {
	Generate(ctx context.Context, parts []ImagePart, prompt string) (string, error)
}

// ScrapeInput is the input for recipe_scrape.
type ScrapeInput struct {
	URL   string `json:"url" jsonschema:"Recipe source URL (webpage or video)"`
	Owner string `json:"owner" jsonschema:"Owner identity the saved recipe is scoped to"`
}

// VisionInput is the input for recipe_from_images.
type VisionInput struct {
	Images []string `json:"images" jsonschema:"Base64-encoded photos of one recipe, in reading order"`
	Prompt string   `json:"prompt,omitempty" jsonschema:"Optional free-text hint about the photos"`
	Owner  string   `json:"owner" jsonschema:"Owner identity the saved recipe is scoped to"`
}

// ScrapeResult is the output for recipe_scrape and recipe_from_images.
type ScrapeResult struct {
	Status   string `json:"status"` // saved, no_recipe, failed
	Recipe   string `json:"recipe,omitempty"`
	Filename string `json:"filename,omitempty"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// LibraryListInput is the input for recipe_list.
type LibraryListInput struct {
	Owner string `json:"owner" jsonschema:"Owner identity whose recipes to list"`
}

// LibraryGetInput is the input for recipe_get and recipe_delete.
type LibraryGetInput struct {
	Owner    string `json:"owner" jsonschema:"Owner identity the recipe belongs to"`
	Filename string `json:"filename" jsonschema:"Recipe filename returned by recipe_list"`
}
