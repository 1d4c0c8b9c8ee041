// Package page fetches candidate pages and derives the metadata the scorer
// consumes. Fetch failures degrade to host-only metadata so scoring can still
// run on URL and host signals alone.
package page

import "github.com/Taong-grasa/cred-checker-api/internal/trust"

// Metadata is the per-candidate extraction output. Author, dates and
// Publisher are best-effort and may be empty; RawContent is empty for PDFs,
// whose bodies are never parsed. Built once per candidate, never mutated.
type Metadata struct {
	URL           string `json:"url"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublishedDate string `json:"published_date"`
	ModifiedDate  string `json:"modified_date"`
	Publisher     string `json:"publisher"`
	RawContent    string `json:"-"`
	IsPDF         bool   `json:"is_pdf"`
}

// HostOnly is the degraded metadata used when a fetch fails or times out:
// empty title, author and dates, publisher set to the bare host.
func HostOnly(rawURL string) Metadata {
	return Metadata{
		URL:       rawURL,
		Publisher: trust.NormalizeHost(trust.HostOf(rawURL)),
	}
}
