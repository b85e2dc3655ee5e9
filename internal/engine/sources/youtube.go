package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/anatolykoptev/go_recipes/internal/engine"
)

// YouTube video-metadata and caption retrieval via the Innertube ANDROID
// /player endpoint. One request resolves the video details (title,
// duration, description) and the caption-track descriptors; caption
// content is fetched as WebVTT cue markup.

const (
	innertubeURL   = "https://www.youtube.com/youtubei/v1/player"
	androidVersion = "20.10.38"
	androidUA      = "com.google.android.youtube/" + androidVersion + " (Linux; U; Android 11) gzip"

	maxCaptionBytes = 512 * 1024
)

type innertubeReq struct {
	VideoID        string       `json:"videoId"`
	Context        innertubeCtx `json:"context"`
	RacyCheckOk    bool         `json:"racyCheckOk"`
	ContentCheckOk bool         `json:"contentCheckOk"`
}

type innertubeCtx struct {
	Client innertubeClient `json:"client"`
}

type innertubeClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

type playerResp struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	VideoDetails *struct {
		Title            string `json:"title"`
		LengthSeconds    string `json:"lengthSeconds"`
		ShortDescription string `json:"shortDescription"`
	} `json:"videoDetails"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

// YouTube implements engine.VideoSource.
type YouTube struct{}

// NewYouTube returns the YouTube video-metadata collaborator.
func NewYouTube() *YouTube { return &YouTube{} }

// Fetch retrieves metadata and transcript text for a video URL. Returns
// a nil source on any metadata failure: the caller must treat that as
// total extraction failure, not as an empty recipe.
func (y *YouTube) Fetch(ctx context.Context, rawURL string) (*engine.RawSource, error) {
	engine.IncrTranscript()

	videoID := engine.VideoID(rawURL)
	if videoID == "" {
		return nil, fmt.Errorf("no video id in %s", rawURL)
	}

	info, err := fetchPlayer(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("video metadata %s: %w", videoID, err)
	}
	if info.VideoDetails == nil {
		reason := "missing video details"
		if info.PlayabilityStatus != nil && info.PlayabilityStatus.Reason != "" {
			reason = info.PlayabilityStatus.Reason
		}
		return nil, fmt.Errorf("video metadata %s: %s", videoID, reason)
	}

	content := fetchTranscript(ctx, info, videoID)
	if content == "" {
		// CaptionUnavailable is non-fatal: fall back to the description.
		content = strings.TrimSpace(info.VideoDetails.ShortDescription)
	}

	duration, _ := strconv.Atoi(info.VideoDetails.LengthSeconds)
	return &engine.RawSource{
		Kind:        engine.SourceVideo,
		Identifier:  rawURL,
		Title:       info.VideoDetails.Title,
		Duration:    duration,
		Content:     content,
		RetrievedAt: time.Now().UTC(),
	}, nil
}

// fetchTranscript tries caption tracks in preference order and returns
// the first retrievable plain text, or "".
func fetchTranscript(ctx context.Context, info *playerResp, videoID string) string {
	if info.Captions == nil {
		return ""
	}
	tracks := info.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	for _, track := range candidateTracks(tracks, engine.Cfg.CaptionLangs) {
		text, err := fetchCaptionText(ctx, track.BaseURL)
		if err != nil {
			slog.Warn("caption track fetch failed, trying next",
				slog.String("video", videoID),
				slog.String("lang", track.LanguageCode),
				slog.Any("err", err))
			continue
		}
		if text != "" {
			return text
		}
	}
	return ""
}

// candidateTracks orders caption tracks by preference: human-authored
// tracks in language priority order first, then auto-generated English
// ("auto-en").
func candidateTracks(tracks []captionTrack, langs []string) []captionTrack {
	out := make([]captionTrack, 0, len(tracks))
	seen := make(map[string]bool, len(tracks))
	add := func(t captionTrack) {
		if !seen[t.BaseURL] {
			seen[t.BaseURL] = true
			out = append(out, t)
		}
	}
	for _, lang := range langs {
		for _, t := range tracks {
			if t.Kind != "asr" && t.LanguageCode == lang {
				add(t)
			}
		}
	}
	for _, t := range tracks {
		if t.Kind == "asr" && strings.HasPrefix(t.LanguageCode, "en") {
			add(t)
		}
	}
	return out
}

// fetchCaptionText retrieves one caption track as WebVTT and converts the
// cue markup to plain text.
func fetchCaptionText(ctx context.Context, baseURL string) (string, error) {
	u := baseURL + "&fmt=vtt"
	if !strings.Contains(baseURL, "?") {
		u = baseURL + "?fmt=vtt"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", engine.UserAgentChrome)

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch captions: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch captions: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCaptionBytes))
	if err != nil {
		return "", err
	}
	return engine.ParseCaptions(string(body)), nil
}

// fetchPlayer calls the Innertube ANDROID /player endpoint.
func fetchPlayer(ctx context.Context, videoID string) (*playerResp, error) {
	reqBody, err := json.Marshal(innertubeReq{
		VideoID: videoID,
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, innertubeURL+"?prettyPrint=false", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUA)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", androidVersion)

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("android innertube: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("android innertube: HTTP %d: %s", resp.StatusCode, snippet)
	}

	var player playerResp
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	return &player, nil
}

var _ engine.VideoSource = (*YouTube)(nil)
