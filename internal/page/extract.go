package page

import (
	"bytes"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Taong-grasa/cred-checker-api/internal/trust"
)

// Extract derives metadata from raw HTML. Every field is best-effort: a page
// that parses but carries none of the usual meta tags still yields usable
// metadata with the publisher defaulting to the host.
func Extract(rawURL string, body []byte) Metadata {
	md := Metadata{
		URL:        rawURL,
		Publisher:  trust.NormalizeHost(trust.HostOf(rawURL)),
		RawContent: string(body),
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return md
	}

	md.Title = firstNonEmpty(
		strings.TrimSpace(doc.Find("title").First().Text()),
		metaContent(doc, `meta[property="og:title"]`),
	)

	md.Author = firstNonEmpty(
		metaContent(doc, `meta[name="author"]`),
		metaContent(doc, `meta[property="article:author"]`),
		strings.TrimSpace(doc.Find(`[rel="author"]`).First().Text()),
	)

	md.PublishedDate = firstNonEmpty(
		metaContent(doc, `meta[property="article:published_time"]`),
		metaContent(doc, `meta[name="date"]`),
		metaContent(doc, `meta[name="publish-date"]`),
		attrContent(doc, "time[datetime]", "datetime"),
	)

	md.ModifiedDate = firstNonEmpty(
		metaContent(doc, `meta[property="article:modified_time"]`),
		metaContent(doc, `meta[name="last-modified"]`),
	)

	if site := metaContent(doc, `meta[property="og:site_name"]`); site != "" {
		md.Publisher = site
	}

	return md
}

func pdfMetadata(rawURL string) Metadata {
	md := HostOnly(rawURL)
	md.IsPDF = true

	// Best-effort title from the file name; the body stays unparsed.
	trimmed := rawURL
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	base := path.Base(trimmed)
	if name, ok := strings.CutSuffix(strings.ToLower(base), ".pdf"); ok && name != "" {
		md.Title = strings.NewReplacer("-", " ", "_", " ").Replace(base[:len(name)])
	}
	return md
}

func metaContent(doc *goquery.Document, selector string) string {
	return attrContent(doc, selector, "content")
}

func attrContent(doc *goquery.Document, selector, attr string) string {
	val, _ := doc.Find(selector).First().Attr(attr)
	return strings.TrimSpace(val)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
