package recipeserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_recipes/internal/engine"
	"github.com/anatolykoptev/go_recipes/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerScrape(server *mcp.Server, store storage.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "recipe_scrape",
		Description: "Extract a recipe from a webpage or video URL and save it as a markdown document. Measurements are converted to metric. Returns the recipe name and the saved filename, or a reason when no recipe could be extracted.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ScrapeInput) (*mcp.CallToolResult, engine.ScrapeResult, error) {
		if input.URL == "" {
			return nil, engine.ScrapeResult{}, fmt.Errorf("url is required")
		}
		if input.Owner == "" {
			return nil, engine.ScrapeResult{}, fmt.Errorf("owner is required")
		}

		doc, err := engine.ExtractFromURL(ctx, input.URL)
		if err != nil {
			return nil, engine.ScrapeResult{
				Status: "failed",
				URL:    input.URL,
				Error:  fmt.Sprintf("failed to retrieve source: %v", err),
			}, nil
		}

		return nil, saveDocument(doc, input.Owner, store), nil
	})
}

// saveDocument finishes both scrape tools: sentinel documents are
// reported as no_recipe and never stored; save failures are surfaced
// distinctly after a successful extraction.
func saveDocument(doc *engine.RecipeDocument, owner string, store storage.Store) engine.ScrapeResult {
	if doc.NoRecipe() {
		return engine.ScrapeResult{
			Status: "no_recipe",
			URL:    doc.SourceID,
			Error:  "no recipe could be extracted",
		}
	}

	filename := engine.DocumentFilename(doc.SourceID, doc.CreatedAt)
	ok := store.Save(filename, doc.Body, doc.Title, owner)
	engine.RecordSave(ok)
	if !ok {
		return engine.ScrapeResult{
			Status: "failed",
			Recipe: doc.Title,
			URL:    doc.SourceID,
			Error:  "failed to save extracted recipe",
		}
	}

	return engine.ScrapeResult{
		Status:   "saved",
		Recipe:   doc.Title,
		Filename: filename,
		URL:      doc.SourceID,
	}
}
