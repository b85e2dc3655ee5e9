package recipeserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_recipes/internal/engine"
	"github.com/anatolykoptev/go_recipes/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// LibraryListResult is the output for recipe_list.
type LibraryListResult struct {
	Recipes []storage.Entry `json:"recipes"`
	Total   int             `json:"total"`
}

// LibraryGetResult is the output for recipe_get.
type LibraryGetResult struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// LibraryDeleteResult is the output for recipe_delete.
type LibraryDeleteResult struct {
	Filename string `json:"filename"`
	Deleted  bool   `json:"deleted"`
}

func registerLibrary(server *mcp.Server, store storage.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "recipe_list",
		Description: "List an owner's saved recipes, newest first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input engine.LibraryListInput) (*mcp.CallToolResult, LibraryListResult, error) {
		if input.Owner == "" {
			return nil, LibraryListResult{}, fmt.Errorf("owner is required")
		}
		entries := store.List(input.Owner)
		return nil, LibraryListResult{Recipes: entries, Total: len(entries)}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recipe_get",
		Description: "Fetch the markdown body of a saved recipe by filename.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input engine.LibraryGetInput) (*mcp.CallToolResult, LibraryGetResult, error) {
		if input.Owner == "" || input.Filename == "" {
			return nil, LibraryGetResult{}, fmt.Errorf("owner and filename are required")
		}
		body, ok := store.Get(input.Filename, input.Owner)
		if !ok {
			return nil, LibraryGetResult{}, fmt.Errorf("recipe %s not found", input.Filename)
		}
		return nil, LibraryGetResult{Filename: input.Filename, Content: body}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recipe_delete",
		Description: "Delete a saved recipe by filename.",
	}, func(_ context.Context, _ *mcp.CallToolRequest, input engine.LibraryGetInput) (*mcp.CallToolResult, LibraryDeleteResult, error) {
		if input.Owner == "" || input.Filename == "" {
			return nil, LibraryDeleteResult{}, fmt.Errorf("owner and filename are required")
		}
		deleted := store.Delete(input.Filename, input.Owner)
		return nil, LibraryDeleteResult{Filename: input.Filename, Deleted: deleted}, nil
	})
}
