package engine

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse test HTML: %v", err)
	}
	return doc
}

func TestExtractStructuredData(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">{"@type":"Organization","name":"Some Site"}</script>
	<script type="application/ld+json">not even json</script>
	<script type="application/ld+json">{
		"@type": "Recipe",
		"name": "Spaghetti Carbonara",
		"recipeIngredient": ["200g spaghetti", "100g pancetta"],
		"recipeInstructions": [
			{"@type": "HowToStep", "text": "Boil the spaghetti."},
			"Fry the pancetta."
		]
	}</script>
	</head><body></body></html>`

	got := ExtractStructuredData(docFromHTML(t, html))
	if got == nil {
		t.Fatal("expected a Recipe object")
	}
	if got.Name != "Spaghetti Carbonara" {
		t.Errorf("Name = %q", got.Name)
	}
	if len(got.Ingredients) != 2 || got.Ingredients[0] != "200g spaghetti" {
		t.Errorf("Ingredients = %v", got.Ingredients)
	}
	if len(got.Instructions) != 2 || got.Instructions[0] != "Boil the spaghetti." || got.Instructions[1] != "Fry the pancetta." {
		t.Errorf("Instructions = %v", got.Instructions)
	}
	if got.Raw["name"] != "Spaghetti Carbonara" {
		t.Errorf("Raw not preserved: %v", got.Raw["name"])
	}
}

func TestExtractStructuredDataListIsland(t *testing.T) {
	// When the island is a list, only its first element is considered.
	html := `<html><head><script type="application/ld+json">[
		{"@type": "Recipe", "name": "First"},
		{"@type": "Recipe", "name": "Second"}
	]</script></head><body></body></html>`

	got := ExtractStructuredData(docFromHTML(t, html))
	if got == nil || got.Name != "First" {
		t.Fatalf("got %+v, want first list element", got)
	}
}

func TestExtractStructuredDataTypeList(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@type": ["Recipe", "NewsArticle"], "name": "Stew"}
	</script></head><body></body></html>`

	got := ExtractStructuredData(docFromHTML(t, html))
	if got == nil || got.Name != "Stew" {
		t.Fatalf("got %+v, want Recipe from @type list", got)
	}
}

func TestExtractStructuredDataNone(t *testing.T) {
	html := `<html><head><script type="application/ld+json">{"@type":"Article"}</script></head><body></body></html>`
	if got := ExtractStructuredData(docFromHTML(t, html)); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}
