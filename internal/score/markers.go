package score

import (
	"regexp"

	"github.com/Taong-grasa/cred-checker-api/internal/trust"
)

// Marker patterns are kept as data so they can be swapped or tested
// independently of the scoring logic. Bump the version when patterns change.
const markerTableVersion = "v1"

var markerPatterns = map[string]*regexp.Regexp{
	"doi-link":           regexp.MustCompile(`(?i)\bdoi\.org/[^\s"'<>)]+`),
	"references-heading": regexp.MustCompile(`(?i)\b(references|citations|bibliography|works cited)\b`),
	"opinion":            regexp.MustCompile(`(?i)\b(opinion|editorial|op-ed|commentary|i believe|in my view|i think)\b`),
	"methods":            regexp.MustCompile(`(?i)\b(methods?|methodology|study design|data collection|sample size)\b`),
	"promotional":        regexp.MustCompile(`(?i)\b(buy now|order now|discount|limited[- ]time offer|promo code|sponsored|advertisement|best price|free shipping)\b`),
	"research":           regexp.MustCompile(`(?i)\b(research|report|methodology|policy|guidelines?|white paper|dataset|peer[- ]reviewed|findings)\b`),
	"marketing-audience": regexp.MustCompile(`(?i)\b(our customers|sign up today|free trial|pricing plans|testimonials|get started|subscribe now)\b`),
	"technical-audience": regexp.MustCompile(`(?i)\b(statistical significance|confidence interval|p-value|regression|cohort|meta-analysis|randomized)\b`),
}

var urlPattern = regexp.MustCompile(`https?://[^\s"'<>)]+`)

func hasMarker(name, text string) bool {
	re, ok := markerPatterns[name]
	return ok && text != "" && re.MatchString(text)
}

// Feature detectors over raw page content.

func HasReferencesHeading(text string) bool { return hasMarker("references-heading", text) }
func HasOpinionMarkers(text string) bool { return hasMarker("opinion", text) }
func HasMethodsMarkers(text string) bool { return hasMarker("methods", text) }
func HasPromotionalMarkers(text string) bool { return hasMarker("promotional", text) }
func HasResearchMarkers(text string) bool { return hasMarker("research", text) }
func HasMarketingMarkers(text string) bool { return hasMarker("marketing-audience", text) }
func HasTechnicalMarkers(text string) bool { return hasMarker("technical-audience", text) }

// CountDOILinks counts DOI-link occurrences in the raw content.
func CountDOILinks(text string) int {
	if text == "" {
		return 0
	}
	return len(markerPatterns["doi-link"].FindAllString(text, -1))
}

// CountInstitutionalLinks counts URLs whose hosts carry an institutional
// suffix (gov/edu/int and the national government suffix).
func CountInstitutionalLinks(text string) int {
	if text == "" {
		return 0
	}
	n := 0
	for _, raw := range urlPattern.FindAllString(text, -1) {
		if trust.IsInstitutionalHost(trust.HostOf(raw)) {
			n++
		}
	}
	return n
}
