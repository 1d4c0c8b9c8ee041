package discovery

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const pubmedEndpoint = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"

// PubMedSearch queries the biomedical literature index by identifier search.
// Each returned PMID maps to its canonical record URL with a synthesized
// title, since esearch returns identifiers only.
type PubMedSearch struct {
	BaseURL string
	Client  *http.Client
}

func NewPubMedSearch() *PubMedSearch {
	return &PubMedSearch{BaseURL: pubmedEndpoint, Client: newHTTPClient()}
}

func (p *PubMedSearch) Name() string { return "pubmed" }

type pubmedResponse struct {
	ESearchResult struct {
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

func (p *PubMedSearch) Discover(ctx context.Context, query string) ([]Candidate, error) {
	q := url.Values{}
	q.Set("db", "pubmed")
	q.Set("term", query)
	q.Set("retmax", fmt.Sprint(worksRowLimit))
	q.Set("retmode", "json")

	var resp pubmedResponse
	if err := fetchJSON(ctx, p.Client, p.BaseURL+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("pubmed esearch: %w", err)
	}

	out := make([]Candidate, 0, len(resp.ESearchResult.IDList))
	for _, id := range resp.ESearchResult.IDList {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		out = append(out, Candidate{
			Title:  "PubMed record " + id,
			URL:    "https://pubmed.ncbi.nlm.nih.gov/" + id + "/",
			Source: p.Name(),
		})
	}
	return out, nil
}
