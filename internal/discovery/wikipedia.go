package discovery

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

const wikipediaEndpoint = "https://en.wikipedia.org/w/api.php"

// credibleLinkPattern keeps only references worth scoring: DOI links and
// government/education/international-organization hosts.
var credibleLinkPattern = regexp.MustCompile(
	`(?i)^https?://([^/]*\.)?(doi\.org|[^/]+\.(gov|edu|int|gov\.ph)|who\.int|un\.org|worldbank\.org)(/|$)`)

// WikipediaReferences mines an encyclopedia article for its external links:
// search for the best-matching article, fetch its external links, and keep
// only credibility-indicative ones.
type WikipediaReferences struct {
	BaseURL string
	Client  *http.Client
}

func NewWikipediaReferences() *WikipediaReferences {
	return &WikipediaReferences{BaseURL: wikipediaEndpoint, Client: newHTTPClient()}
}

func (w *WikipediaReferences) Name() string { return "wikipedia" }

type wikiSearchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type wikiExtLinksResponse struct {
	Query struct {
		Pages map[string]struct {
			ExtLinks []struct {
				URL string `json:"*"`
			} `json:"extlinks"`
		} `json:"pages"`
	} `json:"query"`
}

func (w *WikipediaReferences) Discover(ctx context.Context, query string) ([]Candidate, error) {
	article, err := w.bestArticle(ctx, query)
	if err != nil {
		return nil, err
	}
	if article == "" {
		return nil, nil
	}

	q := url.Values{}
	q.Set("action", "query")
	q.Set("format", "json")
	q.Set("prop", "extlinks")
	q.Set("ellimit", "200")
	q.Set("titles", article)

	var resp wikiExtLinksResponse
	if err := fetchJSON(ctx, w.Client, w.BaseURL+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("wikipedia extlinks: %w", err)
	}

	var out []Candidate
	for _, page := range resp.Query.Pages {
		for _, l := range page.ExtLinks {
			link := strings.TrimSpace(l.URL)
			if link == "" || !credibleLinkPattern.MatchString(link) {
				continue
			}
			out = append(out, Candidate{
				Title:  fmt.Sprintf("%s (reference)", article),
				URL:    link,
				Source: w.Name(),
			})
		}
	}
	return out, nil
}

func (w *WikipediaReferences) bestArticle(ctx context.Context, query string) (string, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("format", "json")
	q.Set("list", "search")
	q.Set("srsearch", query)
	q.Set("srlimit", "1")

	var resp wikiSearchResponse
	if err := fetchJSON(ctx, w.Client, w.BaseURL+"?"+q.Encode(), &resp); err != nil {
		return "", fmt.Errorf("wikipedia search: %w", err)
	}
	if len(resp.Query.Search) == 0 {
		return "", nil
	}
	return resp.Query.Search[0].Title, nil
}
