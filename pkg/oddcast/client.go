// Package oddcast is a client for the Oddcast text-to-speech service: it
// loads the remote voice catalog, answers lookups over it and fetches
// synthesized audio.
package oddcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

var (
	// ErrTransport marks requests that did not complete with a success
	// status, including network faults.
	ErrTransport = errors.New("oddcast: transport failure")
	// ErrParse marks catalog responses that could not be decoded.
	ErrParse = errors.New("oddcast: malformed catalog")
)

// Client talks to the Oddcast catalog and synthesis endpoints. SpeechURL
// overrides the production synthesis endpoint, mainly for tests.
type Client struct {
	CatalogURL string
	SpeechURL  string
	HTTPClient *http.Client
	Log        *slog.Logger
}

func NewClient(catalogURL string) *Client {
	return &Client{
		CatalogURL: catalogURL,
		SpeechURL:  speechBaseURL,
		HTTPClient: &http.Client{},
		Log:        slog.Default(),
	}
}

// LoadCatalog fetches and decodes the voice catalog. It makes a single
// attempt and never returns a partial catalog.
func (c *Client) LoadCatalog(ctx context.Context) (Catalog, error) {
	body, err := c.get(ctx, c.CatalogURL)
	if err != nil {
		c.Log.Error("failed to load voice catalog", "url", c.CatalogURL, "error", err)
		return nil, err
	}

	var catalog Catalog
	if err := json.Unmarshal(body, &catalog); err != nil {
		err = fmt.Errorf("%w: %v", ErrParse, err)
		c.Log.Error("failed to decode voice catalog", "url", c.CatalogURL, "error", err)
		return nil, err
	}
	return catalog, nil
}

// Synthesize requests audio for text spoken with the given engine, language
// and voice identifiers and returns the raw mp3 payload. Single attempt, no
// retries.
func (c *Client) Synthesize(ctx context.Context, engineID, languageID, voiceID ID, text string) ([]byte, error) {
	base := c.SpeechURL
	if base == "" {
		base = speechBaseURL
	}
	body, err := c.get(ctx, base+speechQuery(engineID, languageID, voiceID, text))
	if err != nil {
		c.Log.Error("failed to synthesize text", "voice_id", voiceID, "error", err)
		return nil, err
	}
	return body, nil
}

// Say synthesizes text with the identifiers of a catalog voice.
func (c *Client) Say(ctx context.Context, v VoiceSummary, text string) ([]byte, error) {
	return c.Synthesize(ctx, v.EngineID, v.LanguageID, v.VoiceID, text)
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrTransport, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return body, nil
}
