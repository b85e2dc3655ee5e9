package engine

import (
	"net/http"
	"time"

	stealth "github.com/anatolykoptev/go-stealth"
)

// BrowserClient is the Chrome-TLS-fingerprint HTTP client used for
// scraper-hostile recipe sites. nil disables it.
type BrowserClient = stealth.BrowserClient

// ChromeHeaders returns common Chrome browser headers.
func ChromeHeaders() map[string]string { return stealth.ChromeHeaders() }

// RandomUserAgent returns a realistic browser User-Agent string.
func RandomUserAgent() string { return stealth.RandomUserAgent() }

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMModel        string
	VisionModel     string
	MaxContentChars int           // cap on webpage plain text fed to prompts
	FetchTimeout    time.Duration // webpage fetch bound
	CaptionLangs    []string      // caption language priority

	// Shared client handles. All are long-lived and safe for concurrent
	// use; no other state crosses pipeline invocations.
	HTTPClient *http.Client
	Browser    *BrowserClient // nil = plain HTTP fetch only
	TextLLM    TextModel      // nil = fallback composer only
	VisionLLM  VisionModel    // nil = vision path disabled
	Video      VideoSource    // nil = video URLs rejected
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.MaxContentChars == 0 {
		c.MaxContentChars = 15000
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = 10 * time.Second
	}
	if len(c.CaptionLangs) == 0 {
		c.CaptionLangs = []string{"en", "en-US", "en-GB"}
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.FetchTimeout}
	}
	cfg = c
	Cfg = &cfg
}
