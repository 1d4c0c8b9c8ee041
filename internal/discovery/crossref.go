package discovery

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const crossrefEndpoint = "https://api.crossref.org/works"

const worksRowLimit = 15

// CrossrefWorks queries the Crossref works index by free text. The landing
// URL comes from the work's URL field when present, otherwise it is derived
// from the DOI.
type CrossrefWorks struct {
	BaseURL string
	Client  *http.Client
}

func NewCrossrefWorks() *CrossrefWorks {
	return &CrossrefWorks{BaseURL: crossrefEndpoint, Client: newHTTPClient()}
}

func (c *CrossrefWorks) Name() string { return "crossref" }

type crossrefResponse struct {
	Message struct {
		Items []struct {
			Title []string `json:"title"`
			URL   string   `json:"URL"`
			DOI   string   `json:"DOI"`
		} `json:"items"`
	} `json:"message"`
}

func (c *CrossrefWorks) Discover(ctx context.Context, query string) ([]Candidate, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("rows", fmt.Sprint(worksRowLimit))
	q.Set("select", "title,URL,DOI")

	var resp crossrefResponse
	if err := fetchJSON(ctx, c.Client, c.BaseURL+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("crossref works: %w", err)
	}

	out := make([]Candidate, 0, len(resp.Message.Items))
	for _, it := range resp.Message.Items {
		link := strings.TrimSpace(it.URL)
		if link == "" && it.DOI != "" {
			link = "https://doi.org/" + it.DOI
		}
		if link == "" {
			continue
		}
		title := ""
		if len(it.Title) > 0 {
			title = strings.TrimSpace(it.Title[0])
		}
		out = append(out, Candidate{Title: title, URL: link, Source: c.Name()})
	}
	return out, nil
}
