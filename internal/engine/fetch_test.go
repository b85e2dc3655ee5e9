package engine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// withTestConfig points the fetch path at a plain HTTP client for the
// duration of one test.
func withTestConfig(t *testing.T) {
	t.Helper()
	prev := cfg
	cfg = Config{
		MaxContentChars: 15000,
		FetchTimeout:    5 * time.Second,
		HTTPClient:      &http.Client{Timeout: 5 * time.Second},
	}
	t.Cleanup(func() { cfg = prev })
}

const testPage = `<html><head>
<title>  Lemon   Bars | Sweet Blog  </title>
<script type="application/ld+json">{"@type":"Recipe","name":"Lemon Bars","recipeIngredient":["2 lemons"],"recipeInstructions":["Zest the lemons."]}</script>
<script>console.log("tracking")</script>
<style>.hidden{display:none}</style>
</head><body>
<nav>Home About</nav>
<h2>Ingredients</h2>
<ul><li>2 lemons</li></ul>
<footer>copyright</footer>
</body></html>`

func TestFetchWebpage(t *testing.T) {
	withTestConfig(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(testPage))
	}))
	defer srv.Close()

	src, err := FetchWebpage(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchWebpage: %v", err)
	}
	if src.Kind != SourceWebpage || src.Identifier != srv.URL {
		t.Errorf("Kind=%q Identifier=%q", src.Kind, src.Identifier)
	}
	if src.Title != "Lemon Bars | Sweet Blog" {
		t.Errorf("Title = %q", src.Title)
	}
	// Structured data is scanned before scripts are stripped.
	if src.Structured == nil || src.Structured.Name != "Lemon Bars" {
		t.Fatalf("Structured = %+v", src.Structured)
	}
	for _, junk := range []string{"console.log", ".hidden", "Home About", "copyright"} {
		if strings.Contains(src.Content, junk) {
			t.Errorf("junk markup leaked into content: %q", junk)
		}
	}
	if !strings.Contains(src.Content, "2 lemons") {
		t.Errorf("visible text missing:\n%s", src.Content)
	}
}

func TestFetchWebpageStatusError(t *testing.T) {
	withTestConfig(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "begone", http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := FetchWebpage(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestFetchWebpageTruncates(t *testing.T) {
	withTestConfig(t)
	cfg.MaxContentChars = 50

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><body><p>" + strings.Repeat("lemon curd ", 100) + "</p></body></html>"))
	}))
	defer srv.Close()

	src, err := FetchWebpage(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchWebpage: %v", err)
	}
	if len(src.Content) > 50 {
		t.Errorf("content not truncated: %d chars", len(src.Content))
	}
}
