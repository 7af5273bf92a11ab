// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Truth is the ground-truth origin of a passage.
type Truth struct {
	Source      string `json:"source"`
	ModelDetail string `json:"model_detail,omitempty"`
	ShadeHex    string `json:"shade_hex,omitempty"`
}

// Item is one passage with known ground truth. The catalog is read-only;
// items are never mutated after load.
type Item struct {
	ID      string `json:"id"`
	Section string `json:"section"`
	Title   string `json:"title,omitempty"`
	Text    string `json:"text"`
	Truth   Truth  `json:"truth"`
}

// ErrEmpty is returned when a catalog loads successfully but has no items.
var ErrEmpty = errors.New("catalog has no items")

// Load reads the passage catalog from an http(s) URL or a local file path.
func Load(ctx context.Context, client *http.Client, source string) ([]Item, error) {
	var raw []byte
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		raw, err = fetch(ctx, client, source)
	} else {
		raw, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", source, err)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmpty
	}

	return items, nil
}

func fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// The fixed set of inline LaTeX Greek tokens that appear in the passages.
// Only these exact $\x$ forms are substituted; everything else renders as-is.
var greekTokens = [...][2]string{
	{`$\alpha$`, "α"},
	{`$\beta$`, "β"},
	{`$\gamma$`, "γ"},
	{`$\delta$`, "δ"},
	{`$\epsilon$`, "ε"},
	{`$\theta$`, "θ"},
	{`$\lambda$`, "λ"},
	{`$\mu$`, "μ"},
	{`$\pi$`, "π"},
	{`$\sigma$`, "σ"},
	{`$\omega$`, "ω"},
}

// Normalize applies the display substitutions to passage text.
func Normalize(text string) string {
	for _, sub := range greekTokens {
		text = strings.ReplaceAll(text, sub[0], sub[1])
	}
	return text
}
