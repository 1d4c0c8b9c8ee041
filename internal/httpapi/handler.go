package httpapi

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/Taong-grasa/cred-checker-api/internal/pipeline"
	"github.com/Taong-grasa/cred-checker-api/internal/report"
	"github.com/Taong-grasa/cred-checker-api/internal/trust"
)

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := strings.TrimSpace(q.Get("query"))
	if ok, reason := validateQuery(query); !ok {
		writeError(w, http.StatusBadRequest, "invalid query: "+reason)
		return
	}

	req := pipeline.Request{
		Query: query,
		Scope: trust.ParseScope(q.Get("scope")),
		Debug: isTruthy(q.Get("debug")),
	}
	if n, err := strconv.Atoi(q.Get("max")); err == nil {
		req.Max = n
	}

	s.log.Info("check requested",
		zap.String("query", query),
		zap.String("scope", req.Scope.String()))

	resp := s.checker.Check(r.Context(), req)

	if strings.EqualFold(q.Get("format"), "docx") {
		body, err := report.Generate(resp)
		if err != nil {
			s.log.Error("report generation failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "report generation failed")
			return
		}
		w.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		w.Header().Set("Content-Disposition", `attachment; filename="credibility-report.docx"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	}
	return false
}

var (
	reDigitsPunctOnly = regexp.MustCompile(`^[\d\pP\pS\s]+$`)
	reWordToken       = regexp.MustCompile(`\pL{3,}`)
)

// validateQuery rejects queries that cannot plausibly drive a search: empty
// strings, punctuation/digit noise, and text with no real word token.
func validateQuery(q string) (bool, string) {
	if q == "" {
		return false, "empty"
	}
	if reDigitsPunctOnly.MatchString(q) {
		return false, "no words detected"
	}
	if !reWordToken.MatchString(q) {
		return false, "no real word token found"
	}

	total := 0
	letters := 0
	for _, r := range q {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 {
		return false, "empty"
	}
	if float64(letters)/float64(total) < 0.30 {
		return false, "too many non-letter characters"
	}
	return true, ""
}
