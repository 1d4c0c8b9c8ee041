package discovery

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const googleEndpoint = "https://www.googleapis.com/customsearch/v1"

// googleResultLimit caps how many hits one primary query may contribute.
const googleResultLimit = 10

// GoogleSearch is the primary provider: one query against the Programmable
// Search JSON API. It needs both an API key and a search-engine ID; without
// them it fails immediately so the fallback cascade can take over.
type GoogleSearch struct {
	APIKey  string
	CX      string
	BaseURL string
	Client  *http.Client
}

func NewGoogleSearch(apiKey, cx string) *GoogleSearch {
	return &GoogleSearch{
		APIKey:  apiKey,
		CX:      cx,
		BaseURL: googleEndpoint,
		Client:  newHTTPClient(),
	}
}

func (g *GoogleSearch) Name() string { return "google" }

type googleResponse struct {
	Items []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
	} `json:"items"`
}

func (g *GoogleSearch) Discover(ctx context.Context, query string) ([]Candidate, error) {
	if g.APIKey == "" || g.CX == "" {
		return nil, ErrNoCredentials
	}

	q := url.Values{}
	q.Set("key", g.APIKey)
	q.Set("cx", g.CX)
	q.Set("q", query)
	q.Set("num", fmt.Sprint(googleResultLimit))

	var resp googleResponse
	if err := fetchJSON(ctx, g.Client, g.BaseURL+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("google search: %w", err)
	}

	out := make([]Candidate, 0, len(resp.Items))
	for _, it := range resp.Items {
		link := strings.TrimSpace(it.Link)
		if link == "" {
			continue
		}
		out = append(out, Candidate{
			Title:  strings.TrimSpace(it.Title),
			URL:    link,
			Source: g.Name(),
		})
	}
	return out, nil
}
