package page

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `<!DOCTYPE html>
<html><head>
<title>Vaccine Efficacy Study - Example Org</title>
<meta name="author" content="Smith, John A.">
<meta property="article:published_time" content="2023-05-10T08:00:00Z">
<meta property="article:modified_time" content="2023-06-01T08:00:00Z">
<meta property="og:site_name" content="Example Org">
</head><body>
<p>See https://doi.org/10.1000/xyz for details.</p>
</body></html>`

func TestExtractPullsMetaTags(t *testing.T) {
	md := Extract("https://example.org/study", []byte(sampleHTML))

	assert.Equal(t, "Vaccine Efficacy Study - Example Org", md.Title)
	assert.Equal(t, "Smith, John A.", md.Author)
	assert.Equal(t, "2023-05-10T08:00:00Z", md.PublishedDate)
	assert.Equal(t, "2023-06-01T08:00:00Z", md.ModifiedDate)
	assert.Equal(t, "Example Org", md.Publisher)
	assert.Contains(t, md.RawContent, "doi.org/10.1000/xyz")
	assert.False(t, md.IsPDF)
}

func TestExtractDefaultsPublisherToHost(t *testing.T) {
	md := Extract("https://www.nih.gov/report", []byte("<html><body>bare</body></html>"))
	assert.Equal(t, "nih.gov", md.Publisher)
	assert.Empty(t, md.Author)
}

func TestFetchHTMLPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, sampleHTML)
	}))
	defer srv.Close()

	md, err := NewFetcher().Fetch(context.Background(), srv.URL+"/study")
	require.NoError(t, err)
	assert.Equal(t, "Example Org", md.Publisher)
	assert.Equal(t, srv.URL+"/study", md.URL)
}

func TestFetchPDFSkipsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		fmt.Fprint(w, "%PDF-1.4 binary goes here")
	}))
	defer srv.Close()

	md, err := NewFetcher().Fetch(context.Background(), srv.URL+"/annual-report.pdf")
	require.NoError(t, err)
	assert.True(t, md.IsPDF)
	assert.Empty(t, md.RawContent)
	assert.Equal(t, "annual report", md.Title)
}

func TestFetchTimeoutReportsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	f := NewFetcher()
	f.Timeout = 20 * time.Millisecond

	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewFetcher().Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestHostOnly(t *testing.T) {
	md := HostOnly("https://www.example-blog.com/post")
	assert.Equal(t, "example-blog.com", md.Publisher)
	assert.Empty(t, md.Title)
	assert.Empty(t, md.RawContent)
}

func TestPDFTitleIgnoresQueryAndFragment(t *testing.T) {
	md := pdfMetadata("https://agency.gov/files/annual-report.pdf#page=2")
	assert.True(t, md.IsPDF)
	assert.Equal(t, "annual report", md.Title)

	md = pdfMetadata("https://agency.gov/files/q4_update.pdf?dl=1")
	assert.Equal(t, "q4 update", md.Title)
}

func TestIsPDF(t *testing.T) {
	assert.True(t, isPDF("application/pdf", "https://x.gov/a"))
	assert.True(t, isPDF("", "https://x.gov/report.PDF?dl=1"))
	assert.False(t, isPDF("text/html", "https://x.gov/report"))
}
