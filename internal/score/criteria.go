package score

import (
	"fmt"
	"strings"
	"time"
)

// Authority: institutional or curated hosts score top marks; a named author
// keeps an unaffiliated page passable.
func (s *Scorer) evalAuthority(ev *evaluation) CriterionScore {
	cs := CriterionScore{Name: CriterionAuthority}

	switch {
	case s.classifier.IsInstitutional(ev.host):
		cs.Value = MaxScore
		cs.Reasons = append(cs.Reasons,
			fmt.Sprintf("institutional host (%s)", ev.host))
	case s.classifier.MatchesAnyTier(ev.host):
		cs.Value = MaxScore
		cs.Reasons = append(cs.Reasons,
			fmt.Sprintf("curated trusted host (%s)", ev.host))
	case strings.TrimSpace(ev.md.Author) != "":
		cs.Value = PassThreshold
		cs.Reasons = append(cs.Reasons,
			fmt.Sprintf("no institutional affiliation, but named author %q", ev.md.Author))
	default:
		cs.Value = MinScore
		cs.Reasons = append(cs.Reasons, "no institutional host and no named author")
	}
	return cs
}

// Accuracy (kill gate): counts DOI and institutional-link occurrences in the
// raw content, with a references heading as a weaker signal.
func (s *Scorer) evalAccuracy(ev *evaluation) CriterionScore {
	cs := CriterionScore{Name: CriterionAccuracy}

	citations := CountDOILinks(ev.md.RawContent) + CountInstitutionalLinks(ev.md.RawContent)
	hasHeading := HasReferencesHeading(ev.md.RawContent)

	switch {
	case citations >= 3:
		cs.Value = MaxScore
		cs.Reasons = append(cs.Reasons,
			fmt.Sprintf("%d citation links to DOI or institutional sources", citations))
	case hasHeading || citations >= 1:
		cs.Value = PassThreshold
		if hasHeading {
			cs.Reasons = append(cs.Reasons, "references/bibliography section present")
		}
		if citations >= 1 {
			cs.Reasons = append(cs.Reasons,
				fmt.Sprintf("%d citation link(s) found", citations))
		}
	default:
		cs.Value = MinScore
		cs.Reasons = append(cs.Reasons, "no citations or references detected")
	}
	return cs
}

// Currency: age of the more recent of the modified and published dates.
func (s *Scorer) evalCurrency(ev *evaluation) CriterionScore {
	cs := CriterionScore{Name: CriterionCurrency}

	d, ok := mostRecentDate(ev.md.ModifiedDate, ev.md.PublishedDate)
	ev.dateParsed = ok
	if !ok {
		cs.Value = MinScore
		cs.Reasons = append(cs.Reasons, "no parsable publication or modification date")
		return cs
	}

	months := monthsBetween(d, ev.now)
	switch {
	case months <= currencyFreshMonths:
		cs.Value = MaxScore
		cs.Reasons = append(cs.Reasons,
			fmt.Sprintf("recently published or updated (%d months old)", months))
	case months <= currencyAgingMonths:
		cs.Value = PassThreshold
		cs.Reasons = append(cs.Reasons,
			fmt.Sprintf("moderately current (%d months old)", months))
	default:
		cs.Value = MinScore
		cs.Reasons = append(cs.Reasons,
			fmt.Sprintf("outdated content (%d months old)", months))
	}
	return cs
}

// Objectivity (kill gate): opinion language without any methods or
// references markers reads as editorializing.
func (s *Scorer) evalObjectivity(ev *evaluation) CriterionScore {
	cs := CriterionScore{Name: CriterionObjectivity}

	raw := ev.md.RawContent
	if HasOpinionMarkers(raw) && !HasMethodsMarkers(raw) && !HasReferencesHeading(raw) {
		cs.Value = 2
		cs.Reasons = append(cs.Reasons,
			"opinion/editorial language without methods or references")
	} else {
		cs.Value = 4
		cs.Reasons = append(cs.Reasons, "no dominant bias markers detected")
	}
	return cs
}

// Purpose (explain only): what the page is trying to be.
func (s *Scorer) evalPurpose(ev *evaluation) CriterionScore {
	cs := CriterionScore{Name: CriterionPurpose}

	raw := ev.md.RawContent
	switch {
	case HasPromotionalMarkers(raw) && !HasResearchMarkers(raw):
		cs.Value = MinScore
		cs.Reasons = append(cs.Reasons, "primary purpose appears promotional/advertising")
	case HasResearchMarkers(raw):
		cs.Value = MaxScore
		cs.Reasons = append(cs.Reasons, "research/report/policy purpose markers present")
	default:
		cs.Value = PassThreshold
		cs.Reasons = append(cs.Reasons, "purpose unclear, treated as informational")
	}
	return cs
}

// Audience (explain only): marketing language drops the score; a technical
// register is annotated but scored like general content.
func (s *Scorer) evalAudience(ev *evaluation) CriterionScore {
	cs := CriterionScore{Name: CriterionAudience}

	raw := ev.md.RawContent
	switch {
	case HasMarketingMarkers(raw) && !HasTechnicalMarkers(raw):
		cs.Value = 2
		cs.Reasons = append(cs.Reasons, "customer-facing marketing language dominates")
	case HasTechnicalMarkers(raw):
		cs.Value = PassThreshold
		cs.Reasons = append(cs.Reasons, "technical/academic audience")
	default:
		cs.Value = PassThreshold
		cs.Reasons = append(cs.Reasons, "general audience")
	}
	return cs
}

// dateLayouts covers the formats commonly seen in page metadata.
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

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// mostRecentDate prefers the later of the two parsable dates.
func mostRecentDate(modified, published string) (time.Time, bool) {
	m, mok := parseDate(modified)
	p, pok := parseDate(published)
	switch {
	case mok && pok:
		if m.After(p) {
			return m, true
		}
		return p, true
	case mok:
		return m, true
	case pok:
		return p, true
	}
	return time.Time{}, false
}

func monthsBetween(from, to time.Time) int {
	if from.After(to) {
		return 0
	}
	return int(to.Sub(from).Hours() / (24 * 30.44))
}
