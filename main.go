// go_recipes — recipe extraction MCP server.
//
// Ingests heterogeneous recipe sources (webpages, videos, photos) and
// produces canonical markdown recipe documents: title, metric ingredient
// list, numbered method. Exposes five MCP tools: recipe_scrape,
// recipe_from_images, recipe_list, recipe_get, recipe_delete.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_recipes/internal/engine"
	"github.com/anatolykoptev/go_recipes/internal/engine/sources"
	"github.com/anatolykoptev/go_recipes/internal/recipeserver"
	"github.com/anatolykoptev/go_recipes/internal/storage"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8894")
)

// textLLM adapts the go-kit llm client to engine.TextModel. Temperature
// and output-token bounds are fixed at construction.
type textLLM struct {
	c *llm.Client
}

func (t textLLM) Complete(ctx context.Context, system, prompt string) (string, error) {
	return t.c.Complete(ctx, system, prompt)
}

func main() {
	store := initEngine()

	slog.Info("starting go_recipes",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_recipes",
		Version: version,
	}, nil)

	recipeserver.RegisterTools(server, store)
	slog.Info("tools registered", slog.Int("count", 5))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_recipes",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 300 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() *storage.SQLiteStore {
	c := engine.Config{
		LLMModel:        env.Str("LLM_MODEL", "llama-3.3-70b-versatile"),
		VisionModel:     env.Str("VISION_MODEL", "claude-sonnet-4-5"),
		MaxContentChars: env.Int("MAX_CONTENT_CHARS", 15000),
		FetchTimeout:    env.Duration("FETCH_TIMEOUT", 10*time.Second),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
		Video: sources.NewYouTube(),
	}

	// Stealth browser client (optional — plain HTTP fetch if unavailable)
	if env.Str("STEALTH_FETCH", "1") != "0" {
		bc, err := stealth.NewClient(stealth.WithTimeout(int(c.FetchTimeout.Seconds())))
		if err != nil {
			slog.Warn("stealth client init failed, using plain fetch", slog.Any("error", err))
		} else {
			c.Browser = bc
			slog.Info("stealth browser client initialized")
		}
	}

	// Text model (required for AI normalization; fallback composer
	// covers invocation failures but not a missing key)
	if apiKey := env.Str("LLM_API_KEY", ""); apiKey != "" {
		c.TextLLM = textLLM{c: llm.NewClient(
			env.Str("LLM_API_BASE", "https://api.groq.com/openai/v1"),
			apiKey,
			c.LLMModel,
			llm.WithTemperature(0),
			llm.WithMaxTokens(env.Int("LLM_MAX_TOKENS", 5000)),
			llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
		)}
	} else {
		slog.Warn("LLM_API_KEY not set, text normalization disabled")
	}

	// Vision model (optional — image tools return no_recipe without it)
	if apiKey := env.Str("ANTHROPIC_API_KEY", ""); apiKey != "" {
		client := anthropic.NewClient(option.WithAPIKey(apiKey))
		c.VisionLLM = engine.NewAnthropicVision(client, c.VisionModel, int64(env.Int("VISION_MAX_TOKENS", 5000)))
	} else {
		slog.Warn("ANTHROPIC_API_KEY not set, vision extraction disabled")
	}

	engine.Init(c)

	store, err := storage.Open(env.Str("RECIPES_DB", "recipes.db"))
	if err != nil {
		slog.Error("storage init failed", slog.Any("error", err))
		os.Exit(1)
	}
	return store
}
