package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeTextModel records the last invocation and returns canned output.
type fakeTextModel struct {
	calls  int
	system string
	prompt string
	out    string
	err    error
}

func (f *fakeTextModel) Complete(_ context.Context, system, prompt string) (string, error) {
	f.calls++
	f.system = system
	f.prompt = prompt
	return f.out, f.err
}

func TestBuildPrompt(t *testing.T) {
	src := &RawSource{
		Kind:       SourceWebpage,
		Identifier: "https://example.com/pie",
		Content:    "page text here",
		Structured: &StructuredRecipe{Raw: map[string]any{"name": "Pie"}},
	}
	extract := SectionExtract{
		Ingredients:  []string{"2 apples"},
		Instructions: []string{"Bake."},
	}

	got := BuildPrompt(src, extract)
	for _, want := range []string{
		"PRE-EXTRACTED INGREDIENTS:\n2 apples",
		"PRE-EXTRACTED INSTRUCTIONS:\nBake.",
		"STRUCTURED DATA:",
		`"name": "Pie"`,
		"page text here",
		"https://example.com/pie",
		Sentinel,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Structured block precedes the pre-extracted sections.
	if strings.Index(got, "STRUCTURED DATA:") > strings.Index(got, "PRE-EXTRACTED INGREDIENTS:") {
		t.Error("structured data should lead the content block")
	}
}

func TestBuildPromptVideoContext(t *testing.T) {
	src := &RawSource{Kind: SourceVideo, Identifier: "https://youtu.be/abc123", Content: "transcript"}
	got := BuildPrompt(src, SectionExtract{})
	if !strings.Contains(got, "transcript") || !strings.Contains(strings.ToLower(got), "video") {
		t.Errorf("video prompt lacks video context:\n%.200s", got)
	}
}

func TestNormalizeText(t *testing.T) {
	fake := &fakeTextModel{out: "```markdown\n# Apple Pie\n\nGood.\n```"}
	prev := cfg.TextLLM
	cfg.TextLLM = fake
	defer func() { cfg.TextLLM = prev }()

	src := &RawSource{Kind: SourceWebpage, Identifier: "https://example.com", Content: "x"}
	got, err := NormalizeText(context.Background(), src, SectionExtract{})
	if err != nil {
		t.Fatalf("NormalizeText: %v", err)
	}
	if got != "# Apple Pie\n\nGood." {
		t.Errorf("fences not stripped: %q", got)
	}
	if fake.calls != 1 || fake.system != systemPrompt {
		t.Errorf("calls=%d system=%q", fake.calls, fake.system)
	}
}

func TestNormalizeTextError(t *testing.T) {
	svcErr := errors.New("rate limited")
	fake := &fakeTextModel{err: svcErr}
	prev := cfg.TextLLM
	cfg.TextLLM = fake
	defer func() { cfg.TextLLM = prev }()

	src := &RawSource{Kind: SourceWebpage, Identifier: "https://example.com", Content: "x"}
	_, err := NormalizeText(context.Background(), src, SectionExtract{})
	if !errors.Is(err, svcErr) {
		t.Errorf("err = %v, want wrapped service error", err)
	}
}

func TestNormalizeTextEmptyOutput(t *testing.T) {
	// Whitespace-only model output must fail the invocation so the
	// pipeline composes a fallback instead of saving an empty body.
	for _, out := range []string{"", "   \n", "```markdown\n```"} {
		fake := &fakeTextModel{out: out}
		prev := cfg.TextLLM
		cfg.TextLLM = fake
		src := &RawSource{Kind: SourceWebpage, Identifier: "https://example.com", Content: "x"}
		if _, err := NormalizeText(context.Background(), src, SectionExtract{}); err == nil {
			t.Errorf("model output %q: expected error", out)
		}
		cfg.TextLLM = prev
	}
}

func TestNormalizeTextUnconfigured(t *testing.T) {
	prev := cfg.TextLLM
	cfg.TextLLM = nil
	defer func() { cfg.TextLLM = prev }()

	src := &RawSource{Kind: SourceWebpage, Identifier: "https://example.com", Content: "x"}
	if _, err := NormalizeText(context.Background(), src, SectionExtract{}); !errors.Is(err, ErrNoTextModel) {
		t.Errorf("err = %v, want ErrNoTextModel", err)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct{ in, want string }{
		{"```markdown\n# Title\n```", "# Title"},
		{"```\n# Title\n```", "# Title"},
		{"# Title", "# Title"},
		{"  # Title  ", "# Title"},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsSentinel(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"NO_RECIPE_FOUND", true},
		{"  NO_RECIPE_FOUND\n", true},
		{"NO_RECIPE_FOUND.", false},
		{"The result is NO_RECIPE_FOUND", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSentinel(tt.in); got != tt.want {
			t.Errorf("IsSentinel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
