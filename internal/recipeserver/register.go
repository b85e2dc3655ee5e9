// Package recipeserver exposes the extraction pipeline and the recipe
// library as MCP tools. The request layer bounds concurrency; each tool
// call is one synchronous pipeline invocation.
package recipeserver

import (
	"github.com/anatolykoptev/go_recipes/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all recipe tools on the given MCP server:
// recipe_scrape, recipe_from_images, recipe_list, recipe_get,
// recipe_delete.
func RegisterTools(server *mcp.Server, store storage.Store) {
	registerScrape(server, store)
	registerFromImages(server, store)
	registerLibrary(server, store)
}
