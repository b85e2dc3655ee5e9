package recipeserver

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_recipes/internal/engine"
	"github.com/anatolykoptev/go_recipes/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerFromImages(server *mcp.Server, store storage.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "recipe_from_images",
		Description: "Extract a single recipe from one or more photos (cookbook pages, handwritten cards, screenshots) and save it as a markdown document. The images are treated as one coherent recipe. Accepts base64-encoded image data in any common format.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.VisionInput) (*mcp.CallToolResult, engine.ScrapeResult, error) {
		if len(input.Images) == 0 {
			return nil, engine.ScrapeResult{}, fmt.Errorf("at least one image is required")
		}
		if input.Owner == "" {
			return nil, engine.ScrapeResult{}, fmt.Errorf("owner is required")
		}

		// Undecodable payloads are skipped per image, like decode
		// failures further down the pipeline.
		images := make([][]byte, 0, len(input.Images))
		for i, enc := range input.Images {
			data, err := base64.StdEncoding.DecodeString(enc)
			if err != nil {
				slog.Warn("skipping image with invalid base64", slog.Int("index", i))
				continue
			}
			images = append(images, data)
		}

		doc := engine.ExtractFromImages(ctx, images, input.Prompt)
		return nil, saveDocument(doc, input.Owner, store), nil
	})
}
