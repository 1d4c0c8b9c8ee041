// Package score implements the six-criterion decision-tree evaluator. The
// tree is an explicit ordered list of (criterion, gate kind) stages driven by
// a single loop, so the kill semantics are a testable state transition rather
// than nested control flow.
package score

import (
	"strings"
	"time"

	"github.com/Taong-grasa/cred-checker-api/internal/page"
	"github.com/Taong-grasa/cred-checker-api/internal/trust"
)

// Criterion names, in fixed evaluation order.
const (
	CriterionAuthority   = "Authority"
	CriterionAccuracy    = "Accuracy"
	CriterionCurrency    = "Currency"
	CriterionObjectivity = "Objectivity"
	CriterionPurpose     = "Purpose"
	CriterionAudience    = "Audience"
)

const (
	VerdictCredible    = "credible"
	VerdictNotCredible = "not_credible"
)

// GateKind decides what a failing score does: soft gates note the failure,
// hard gates kill the verdict, explain gates only annotate.
type GateKind int

const (
	GateSoft GateKind = iota
	GateHard
	GateExplain
)

const (
	noteFailedSoft = "failed-soft"
	noteExplain    = "explain"
)

// CriterionScore is one criterion's outcome: a 1..5 value and the
// human-readable reasons behind it.
type CriterionScore struct {
	Name    string   `json:"name"`
	Value   int      `json:"value"`
	Reasons []string `json:"reasons"`
}

// StageNote records a criterion that fell below the pass threshold, in
// evaluation order.
type StageNote struct {
	Stage  string `json:"stage"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// Result is the full verdict for one candidate. Built once, immutable after.
type Result struct {
	Title         string         `json:"title"`
	URL           string         `json:"url"`
	Publisher     string         `json:"publisher"`
	PublishedDate string         `json:"published_date,omitempty"`
	Scores        map[string]int `json:"scores"`
	ScoreTotal    int            `json:"score_total"`
	Verdict       string         `json:"verdict"`
	Rating        string         `json:"rating"`
	FailedStage   string         `json:"failed_stage,omitempty"`
	FailedReason  string         `json:"failed_reason,omitempty"`
	StageNotes    []StageNote    `json:"stage_notes,omitempty"`
	Explanations  []string       `json:"explanations"`
	Citation      string         `json:"citation"`
}

type stage struct {
	name string
	kind GateKind
	eval func(*evaluation) CriterionScore
}

// Scorer evaluates candidates against the ordered stage list. Read-only and
// safe for concurrent use.
type Scorer struct {
	classifier *trust.Classifier
	stages     []stage
}

func NewScorer(classifier *trust.Classifier) *Scorer {
	s := &Scorer{classifier: classifier}
	s.stages = []stage{
		{CriterionAuthority, GateSoft, s.evalAuthority},
		{CriterionAccuracy, GateHard, s.evalAccuracy},
		{CriterionCurrency, GateSoft, s.evalCurrency},
		{CriterionObjectivity, GateHard, s.evalObjectivity},
		{CriterionPurpose, GateExplain, s.evalPurpose},
		{CriterionAudience, GateExplain, s.evalAudience},
	}
	return s
}

// evaluation is the per-candidate working state shared by the stage
// evaluators. Time is injected so scoring stays deterministic under test.
type evaluation struct {
	md         page.Metadata
	host       string
	now        time.Time
	dateParsed bool
}

// Evaluate runs all six criteria in order, applies the PDF adjustment, then
// applies the gates. Criteria after a hard-gate failure are still computed so
// the total is always a true sum of six values and the notes stay complete;
// only the verdict short-circuits.
func (s *Scorer) Evaluate(md page.Metadata, now time.Time) Result {
	ev := &evaluation{
		md:   md,
		host: trust.NormalizeHost(trust.HostOf(md.URL)),
		now:  now,
	}

	scored := make([]CriterionScore, 0, len(s.stages))
	for _, st := range s.stages {
		scored = append(scored, st.eval(ev))
	}
	scored = s.applyPDFAdjustment(ev, scored)

	res := Result{
		Title:         md.Title,
		URL:           md.URL,
		Publisher:     md.Publisher,
		PublishedDate: md.PublishedDate,
		Scores:        make(map[string]int, len(scored)),
		Verdict:       VerdictCredible,
	}

	for i, st := range s.stages {
		cs := scored[i]
		res.Scores[cs.Name] = cs.Value
		res.ScoreTotal += cs.Value

		if cs.Value >= PassThreshold {
			continue
		}
		switch st.kind {
		case GateHard:
			// First failing kill gate decides the verdict; later criteria
			// keep contributing scores and notes only.
			if res.FailedStage == "" {
				res.Verdict = VerdictNotCredible
				res.FailedStage = cs.Name
				res.FailedReason = strings.Join(cs.Reasons, "; ")
			}
		case GateSoft:
			res.StageNotes = append(res.StageNotes, StageNote{
				Stage:  cs.Name,
				Status: noteFailedSoft,
				Detail: strings.Join(cs.Reasons, "; "),
			})
		case GateExplain:
			res.StageNotes = append(res.StageNotes, StageNote{
				Stage:  cs.Name,
				Status: noteExplain,
				Detail: strings.Join(cs.Reasons, "; "),
			})
		}
	}

	res.Rating = ratingFor(res.ScoreTotal)
	res.Explanations = collectExplanations(scored)
	return res
}

// applyPDFAdjustment compensates for unparsed PDF bodies on institutional
// hosts: the host itself vouches for authority, and embedded citations are
// assumed present but not text-extractable.
func (s *Scorer) applyPDFAdjustment(ev *evaluation, scored []CriterionScore) []CriterionScore {
	if !ev.md.IsPDF || !trust.IsInstitutionalHost(ev.host) {
		return scored
	}
	for i := range scored {
		switch scored[i].Name {
		case CriterionAuthority:
			if scored[i].Value < MaxScore {
				scored[i].Value = MaxScore
				scored[i].Reasons = append(scored[i].Reasons,
					"institutionally hosted PDF treated as authoritative")
			}
		case CriterionAccuracy:
			if scored[i].Value < PassThreshold {
				scored[i].Value = PassThreshold
				scored[i].Reasons = append(scored[i].Reasons,
					"PDF body not parsed; assuming embedded citations")
			}
		case CriterionCurrency:
			if !ev.dateParsed && scored[i].Value < PassThreshold {
				scored[i].Value = PassThreshold
				scored[i].Reasons = append(scored[i].Reasons,
					"undated institutional PDF given the benefit of the doubt")
			}
		}
	}
	return scored
}

// collectExplanations flattens reasons across criteria, deduplicated in
// order, capped.
func collectExplanations(scored []CriterionScore) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, ExplanationCap)
	for _, cs := range scored {
		for _, r := range cs.Reasons {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			out = append(out, r)
			if len(out) >= ExplanationCap {
				return out
			}
		}
	}
	return out
}
