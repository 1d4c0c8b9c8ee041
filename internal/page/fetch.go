package page

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// FetchTimeout bounds a single page retrieval. A timed-out fetch is a
// per-candidate failure, never a pool-wide abort.
const FetchTimeout = 8500 * time.Millisecond

// maxBodyBytes caps how much markup one page may contribute to scoring.
const maxBodyBytes = 2 << 20

const userAgent = "Mozilla/5.0 (compatible; cred-checker/1.0)"

// Fetcher retrieves candidate pages under the fetch timeout and hands the
// response to the extractor.
type Fetcher struct {
	Client  *http.Client
	Timeout time.Duration
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		Client:  &http.Client{Timeout: 10 * time.Second},
		Timeout: FetchTimeout,
	}
}

// Fetch retrieves rawURL and extracts its metadata. On any failure the caller
// should degrade to HostOnly metadata; the error reports why.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Metadata, error) {
	ctx, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Metadata{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html, application/xhtml+xml, application/pdf;q=0.9, */*;q=0.5")

	resp, err := f.Client.Do(req)
	if err != nil {
		return Metadata{}, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Metadata{}, fmt.Errorf("fetching page: http %d", resp.StatusCode)
	}

	if isPDF(resp.Header.Get("Content-Type"), rawURL) {
		// PDF bodies are not parsed; headers and URL carry all the signal.
		return pdfMetadata(rawURL), nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Metadata{}, fmt.Errorf("reading body: %w", err)
	}

	return Extract(rawURL, body), nil
}

func isPDF(contentType, rawURL string) bool {
	if strings.Contains(strings.ToLower(contentType), "application/pdf") {
		return true
	}
	u := strings.ToLower(rawURL)
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	return strings.HasSuffix(u, ".pdf")
}
