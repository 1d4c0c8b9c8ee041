// Package report renders a scored response as a downloadable docx
// credibility report.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gingfrederik/docx"

	"github.com/Taong-grasa/cred-checker-api/internal/pipeline"
	"github.com/Taong-grasa/cred-checker-api/internal/score"
)

// criterionOrder fixes how per-criterion scores are listed.
var criterionOrder = []string{
	score.CriterionAuthority,
	score.CriterionAccuracy,
	score.CriterionCurrency,
	score.CriterionObjectivity,
	score.CriterionPurpose,
	score.CriterionAudience,
}

// Generate writes the credibility report and returns the bytes. The docx
// library only saves to disk, so we stage through a temp file.
func Generate(resp pipeline.Response) ([]byte, error) {
	f := docx.NewFile()

	p := f.AddParagraph()
	run := p.AddText("Source Credibility Report")
	run.Size(20)

	p = f.AddParagraph()
	p.AddText(fmt.Sprintf("Query: %s", resp.Query))
	p = f.AddParagraph()
	p.AddText(fmt.Sprintf("Scope: %s | Source tier: %s | Credible sources: %d",
		resp.Scope, resp.SourceTier, len(resp.Results)))

	f.AddParagraph() // Spacer
	f.AddParagraph().AddText("--------------------------------------------------")
	f.AddParagraph() // Spacer

	for i, r := range resp.Results {
		p = f.AddParagraph()
		run = p.AddText(fmt.Sprintf("%d) %s", i+1, r.Title))
		run.Size(14)

		p = f.AddParagraph()
		run = p.AddText(r.URL)
		run.Size(10)
		run.Color("0000FF")

		p = f.AddParagraph()
		run = p.AddText(fmt.Sprintf("Total: %d/30 (%s) | %s", r.ScoreTotal, r.Rating, scoreLine(r)))
		run.Color("008000")

		p = f.AddParagraph()
		run = p.AddText("Citation: " + r.Citation)
		run.Size(10)

		for _, e := range r.Explanations {
			p = f.AddParagraph()
			run = p.AddText("- " + e)
			run.Size(10)
			run.Color("808080")
		}

		f.AddParagraph() // Spacer
	}

	tmp, err := os.CreateTemp("", "cred-report-*.docx")
	if err != nil {
		return nil, fmt.Errorf("staging report: %w", err)
	}
	path := tmp.Name()
	tmp.Close()
	defer os.Remove(path)

	if err := f.Save(path); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}
	return os.ReadFile(filepath.Clean(path))
}

func scoreLine(r score.Result) string {
	parts := make([]string, 0, len(criterionOrder))
	for _, name := range criterionOrder {
		if v, ok := r.Scores[name]; ok {
			parts = append(parts, fmt.Sprintf("%s %d", name, v))
		}
	}
	return strings.Join(parts, ", ")
}
