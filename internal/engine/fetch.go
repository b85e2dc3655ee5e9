package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// maxHTMLBytes bounds how much of a page is read before parsing.
const maxHTMLBytes = 6 * 1024 * 1024

// junkSelector matches markup stripped before visible-text extraction.
const junkSelector = "script, style, noscript, iframe, nav, header, footer"

// FetchWebpage retrieves a URL within the fetch timeout and produces a
// RawSource: page title, sanitized visible text (bounded), and any
// embedded structured recipe data. One attempt; any network error or
// non-2xx status is a fetch failure.
func FetchWebpage(ctx context.Context, rawURL string) (*RawSource, error) {
	metrics.FetchRequests.Add(1)

	body, contentType, err := fetchHTML(ctx, rawURL)
	if err != nil {
		metrics.FetchErrors.Add(1)
		return nil, err
	}

	reader := io.Reader(bytes.NewReader(body))
	if utf8, err := charset.NewReader(bytes.NewReader(body), contentType); err == nil {
		reader = utf8
	}
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		metrics.FetchErrors.Add(1)
		return nil, fmt.Errorf("parse %s: %w", rawURL, err)
	}

	return sourceFromDocument(doc, rawURL), nil
}

// sourceFromDocument builds a webpage RawSource from a parsed document.
// Structured data is scanned before junk removal: JSON-LD islands live in
// script elements.
func sourceFromDocument(doc *goquery.Document, rawURL string) *RawSource {
	structured := ExtractStructuredData(doc)
	title := CollapseLines(doc.Find("title").First().Text())

	doc.Find(junkSelector).Remove()

	var content string
	if bodyHTML, err := doc.Find("body").Html(); err == nil && bodyHTML != "" {
		if md, err := htmltomarkdown.ConvertString(bodyHTML); err == nil {
			content = md
		}
	}
	if content == "" {
		content = doc.Text()
	}
	content = Truncate(CollapseLines(content), cfg.MaxContentChars)

	return &RawSource{
		Kind:        SourceWebpage,
		Identifier:  rawURL,
		Title:       title,
		Content:     content,
		Structured:  structured,
		RetrievedAt: time.Now().UTC(),
	}
}

// fetchHTML performs the bounded GET. The stealth browser client is
// preferred when configured: recipe sites increasingly block plain
// clients by TLS fingerprint.
func fetchHTML(ctx context.Context, rawURL string) (body []byte, contentType string, err error) {
	if cfg.Browser != nil {
		data, _, status, err := cfg.Browser.Do(http.MethodGet, rawURL, ChromeHeaders(), nil)
		if err != nil {
			return nil, "", fmt.Errorf("fetch %s: %w", rawURL, err)
		}
		if status < 200 || status >= 300 {
			return nil, "", fmt.Errorf("fetch %s: status %d", rawURL, status)
		}
		return data, "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", RandomUserAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxHTMLBytes))
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", rawURL, err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}
