package discovery

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const openAlexEndpoint = "https://api.openalex.org/works"

// OpenAlexWorks queries the OpenAlex works index. Same shape as Crossref but
// the landing URL lives under primary_location, falling back to the DOI and
// finally the OpenAlex record ID.
type OpenAlexWorks struct {
	BaseURL string
	Client  *http.Client
}

func NewOpenAlexWorks() *OpenAlexWorks {
	return &OpenAlexWorks{BaseURL: openAlexEndpoint, Client: newHTTPClient()}
}

func (o *OpenAlexWorks) Name() string { return "openalex" }

type openAlexResponse struct {
	Results []struct {
		ID              string `json:"id"`
		DisplayName     string `json:"display_name"`
		DOI             string `json:"doi"`
		PrimaryLocation struct {
			LandingPageURL string `json:"landing_page_url"`
		} `json:"primary_location"`
	} `json:"results"`
}

func (o *OpenAlexWorks) Discover(ctx context.Context, query string) ([]Candidate, error) {
	q := url.Values{}
	q.Set("search", query)
	q.Set("per-page", fmt.Sprint(worksRowLimit))

	var resp openAlexResponse
	if err := fetchJSON(ctx, o.Client, o.BaseURL+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("openalex works: %w", err)
	}

	out := make([]Candidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		link := strings.TrimSpace(r.PrimaryLocation.LandingPageURL)
		if link == "" {
			link = strings.TrimSpace(r.DOI)
		}
		if link == "" {
			link = strings.TrimSpace(r.ID)
		}
		if link == "" {
			continue
		}
		out = append(out, Candidate{
			Title:  strings.TrimSpace(r.DisplayName),
			URL:    link,
			Source: o.Name(),
		})
	}
	return out, nil
}
