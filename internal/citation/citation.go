// Package citation renders page metadata as a deterministic bibliographic
// string.
package citation

import (
	"fmt"
	"strings"
	"time"

	"github.com/Taong-grasa/cred-checker-api/internal/page"
)

// noDate is the literal used when neither date parses.
const noDate = "n.d."

// Format renders "{Author} ({Date}). {Title}. {Publisher}. {URL}", or the
// authorless variant "{Title}. ({Date}). {Publisher}. {URL}".
func Format(md page.Metadata) string {
	author := FormatAuthor(md.Author)
	date := formatDate(md.ModifiedDate, md.PublishedDate)
	title := StripSiteSuffix(md.Title)

	if author != "" {
		return fmt.Sprintf("%s (%s). %s. %s. %s", author, date, title, md.Publisher, md.URL)
	}
	return fmt.Sprintf("%s. (%s). %s. %s", title, date, md.Publisher, md.URL)
}

// FormatAuthor converts a raw author string into "Surname, I." form. With a
// comma, the left side is the surname and the remainder becomes initials;
// otherwise the last whitespace token is the surname.
func FormatAuthor(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	var surname, rest string
	if i := strings.IndexByte(raw, ','); i >= 0 {
		surname = strings.TrimSpace(raw[:i])
		rest = raw[i+1:]
	} else {
		fields := strings.Fields(raw)
		if len(fields) == 1 {
			return fields[0]
		}
		surname = fields[len(fields)-1]
		rest = strings.Join(fields[:len(fields)-1], " ")
	}

	initials := make([]string, 0, 3)
	for _, tok := range strings.Fields(rest) {
		tok = strings.Trim(tok, ".")
		if tok == "" {
			continue
		}
		initials = append(initials, string([]rune(tok)[0])+".")
	}

	if len(initials) == 0 {
		return surname
	}
	return surname + ", " + strings.Join(initials, " ")
}

// StripSiteSuffix removes a trailing " - Site Name"-style suffix from a
// title, as emitted by many CMSes.
func StripSiteSuffix(title string) string {
	title = strings.TrimSpace(title)
	for _, sep := range []string{" - ", " | ", " — "} {
		if i := strings.LastIndex(title, sep); i > 0 {
			title = strings.TrimSpace(title[:i])
		}
	}
	return title
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	"January 2, 2006",
	"2 January 2006",
	"2006/01/02",
}

// formatDate renders "YYYY, Month D" from the first parsable of the modified
// and published dates, else the n.d. literal.
func formatDate(modified, published string) string {
	for _, raw := range []string{modified, published} {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return fmt.Sprintf("%d, %s %d", t.Year(), t.Month(), t.Day())
			}
		}
	}
	return noDate
}
