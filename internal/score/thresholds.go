package score

// Scoring constants, centralized so they can be tuned without touching
// evaluator logic.
const (
	// MinScore and MaxScore bound every criterion value.
	MinScore = 1
	MaxScore = 5

	// PassThreshold is the per-criterion cutoff: a score below it fails the
	// criterion's gate.
	PassThreshold = 3

	// StrongThreshold marks an individually strong criterion.
	StrongThreshold = 5

	// TotalStrong and TotalLimited map the summed score onto a rating label.
	TotalStrong  = 25
	TotalLimited = 20

	// ExplanationCap bounds the deduplicated explanation list per result.
	ExplanationCap = 12

	// Currency age cutoffs, in months.
	currencyFreshMonths = 18
	currencyAgingMonths = 60
)

// Rating labels derived from the total score. Advisory only; the verdict is
// decided by the hard gates.
const (
	RatingStrong  = "strong"
	RatingLimited = "limited"
	RatingWeak    = "weak"
)

func ratingFor(total int) string {
	switch {
	case total >= TotalStrong:
		return RatingStrong
	case total >= TotalLimited:
		return RatingLimited
	default:
		return RatingWeak
	}
}
