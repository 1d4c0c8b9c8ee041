package citation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Taong-grasa/cred-checker-api/internal/page"
)

func TestFormatFullCitation(t *testing.T) {
	md := page.Metadata{
		URL:           "https://example.org/r",
		Title:         "Report Title - Example Org",
		Author:        "Smith, John A.",
		PublishedDate: "2023-05-10",
		Publisher:     "Example Org",
	}

	got := Format(md)
	assert.Equal(t, "Smith, J. A. (2023, May 10). Report Title. Example Org. https://example.org/r", got)
}

func TestFormatWithoutAuthorOrDate(t *testing.T) {
	md := page.Metadata{
		URL:       "https://example.org/r",
		Title:     "Untitled Notice",
		Publisher: "Example Org",
	}

	got := Format(md)
	assert.Equal(t, "Untitled Notice. (n.d.). Example Org. https://example.org/r", got)
}

func TestFormatPrefersModifiedDate(t *testing.T) {
	md := page.Metadata{
		URL:           "https://example.org/r",
		Title:         "Report",
		Author:        "Jane Doe",
		PublishedDate: "2020-01-01",
		ModifiedDate:  "2024-02-03",
		Publisher:     "Example Org",
	}

	got := Format(md)
	assert.Equal(t, "Doe, J. (2024, February 3). Report. Example Org. https://example.org/r", got)
}

func TestFormatAuthor(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Smith, John A.", "Smith, J. A."},
		{"John Smith", "Smith, J."},
		{"Mary Jane Watson", "Watson, M. J."},
		{"Cher", "Cher"},
		{"  ", ""},
		{"Lee,", "Lee"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAuthor(tt.in), "input %q", tt.in)
	}
}

func TestStripSiteSuffix(t *testing.T) {
	assert.Equal(t, "Report Title", StripSiteSuffix("Report Title - Example Org"))
	assert.Equal(t, "Deep Dive", StripSiteSuffix("Deep Dive | The Site"))
	assert.Equal(t, "No Suffix Here", StripSiteSuffix("No Suffix Here"))
	// A leading separator is not a site suffix.
	assert.Equal(t, "- starts with dash", StripSiteSuffix("- starts with dash"))
}
