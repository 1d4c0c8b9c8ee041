package discovery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGoogleSearchMissingCredentials(t *testing.T) {
	g := NewGoogleSearch("", "")
	_, err := g.Discover(context.Background(), "vaccine efficacy")
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestGoogleSearchMapsItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key-1", r.URL.Query().Get("key"))
		assert.Equal(t, "cx-1", r.URL.Query().Get("cx"))
		fmt.Fprint(w, `{"items":[
			{"title":"WHO report","link":"https://www.who.int/report"},
			{"title":"No link",  "link":""},
			{"title":"CDC page", "link":"https://www.cdc.gov/page"}
		]}`)
	}))
	defer srv.Close()

	g := NewGoogleSearch("key-1", "cx-1")
	g.BaseURL = srv.URL

	got, err := g.Discover(context.Background(), "vaccine efficacy")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "WHO report", got[0].Title)
	assert.Equal(t, "https://www.who.int/report", got[0].URL)
	assert.Equal(t, "google", got[0].Source)
}

func TestGoogleSearchRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGoogleSearch("k", "c")
	g.BaseURL = srv.URL

	_, err := g.Discover(context.Background(), "q")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGoogleSearchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGoogleSearch("k", "c")
	g.BaseURL = srv.URL

	_, err := g.Discover(context.Background(), "q")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRateLimited))
}

func TestCrossrefDerivesURLFromDOI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"message":{"items":[
			{"title":["Direct link"],"URL":"https://pub.example.org/a","DOI":"10.1/a"},
			{"title":["DOI only"],"URL":"","DOI":"10.1/b"},
			{"title":["Nothing"],"URL":"","DOI":""}
		]}}`)
	}))
	defer srv.Close()

	c := NewCrossrefWorks()
	c.BaseURL = srv.URL

	got, err := c.Discover(context.Background(), "q")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "https://pub.example.org/a", got[0].URL)
	assert.Equal(t, "https://doi.org/10.1/b", got[1].URL)
}

func TestOpenAlexURLFallbackChain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[
			{"id":"https://openalex.org/W1","display_name":"Landing","doi":"https://doi.org/10.2/x",
			 "primary_location":{"landing_page_url":"https://journal.example.org/x"}},
			{"id":"https://openalex.org/W2","display_name":"DOI fallback","doi":"https://doi.org/10.2/y",
			 "primary_location":{"landing_page_url":""}},
			{"id":"https://openalex.org/W3","display_name":"ID fallback","doi":"",
			 "primary_location":{"landing_page_url":""}}
		]}`)
	}))
	defer srv.Close()

	o := NewOpenAlexWorks()
	o.BaseURL = srv.URL

	got, err := o.Discover(context.Background(), "q")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "https://journal.example.org/x", got[0].URL)
	assert.Equal(t, "https://doi.org/10.2/y", got[1].URL)
	assert.Equal(t, "https://openalex.org/W3", got[2].URL)
}

func TestPubMedSynthesizesRecordURLs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pubmed", r.URL.Query().Get("db"))
		fmt.Fprint(w, `{"esearchresult":{"idlist":["12345","67890"]}}`)
	}))
	defer srv.Close()

	p := NewPubMedSearch()
	p.BaseURL = srv.URL

	got, err := p.Discover(context.Background(), "q")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "PubMed record 12345", got[0].Title)
	assert.Equal(t, "https://pubmed.ncbi.nlm.nih.gov/12345/", got[0].URL)
}

func TestWikipediaKeepsCredibleLinksOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("list") == "search" {
			fmt.Fprint(w, `{"query":{"search":[{"title":"Influenza vaccine"}]}}`)
			return
		}
		fmt.Fprint(w, `{"query":{"pages":{"1":{"extlinks":[
			{"*":"https://doi.org/10.3/z"},
			{"*":"https://www.cdc.gov/flu/vaccine"},
			{"*":"https://randomblog.example.com/post"},
			{"*":"https://notgov.org/page"}
		]}}}}`)
	}))
	defer srv.Close()

	wp := NewWikipediaReferences()
	wp.BaseURL = srv.URL

	got, err := wp.Discover(context.Background(), "influenza vaccine")
	require.NoError(t, err)
	require.Len(t, got, 2)
	urls := []string{got[0].URL, got[1].URL}
	assert.Contains(t, urls, "https://doi.org/10.3/z")
	assert.Contains(t, urls, "https://www.cdc.gov/flu/vaccine")
}

func TestCredibleLinkPattern(t *testing.T) {
	tests := []struct {
		link string
		want bool
	}{
		{"https://doi.org/10.1/abc", true},
		{"https://dx.doi.org/10.1/abc", true},
		{"https://www.cdc.gov/page", true},
		{"https://web.mit.edu/study", true},
		{"https://www.who.int/report", true},
		{"https://doh.gov.ph/advisory", true},
		{"https://notgov.org/page", false},
		{"https://example.com/doi.org", false},
		{"https://blog.example.com/post", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, credibleLinkPattern.MatchString(tt.link), tt.link)
	}
}

func TestCuratedFeedsFiltersByKeyword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?><rss version="2.0"><channel><title>Updates</title>
<item><title>Influenza vaccine guidance updated</title><link>https://www.who.int/a</link></item>
<item><title>Unrelated budget news</title><link>https://www.who.int/b</link></item>
</channel></rss>`)
	}))
	defer srv.Close()

	c := NewCuratedFeeds()
	c.Feeds = []string{srv.URL}

	got, err := c.Discover(context.Background(), "influenza vaccine")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://www.who.int/a", got[0].URL)
	assert.Equal(t, "curated-feeds", got[0].Source)
}

func TestCuratedFeedsSharesOneBudgetAcrossFeeds(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(400 * time.Millisecond)
	}))
	defer slow.Close()

	c := NewCuratedFeeds()
	c.Feeds = []string{slow.URL, slow.URL, slow.URL}
	c.Timeout = 100 * time.Millisecond

	start := time.Now()
	got, err := c.Discover(context.Background(), "influenza vaccine")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Less(t, time.Since(start), 350*time.Millisecond,
		"sequential feed polls must not each get a fresh timeout")
}

type stubProvider struct {
	name string
	out  []Candidate
	err  error
}

func (s stubProvider) Name() string { return s.name }
func (s stubProvider) Discover(context.Context, string) ([]Candidate, error) {
	return s.out, s.err
}

func TestCascadeSwallowsProviderFailures(t *testing.T) {
	c := NewCascade(zap.NewNop(),
		stubProvider{name: "ok", out: []Candidate{{Title: "a", URL: "https://a.example.org"}}},
		stubProvider{name: "broken", err: errors.New("boom")},
		stubProvider{name: "empty"},
	)

	got, err := c.Discover(context.Background(), "q")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://a.example.org", got[0].URL)
}
