package lexical

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Corrector absorbs spelling and phrasing noise by snapping a query onto
// the closest known corpus question before semantic retrieval runs.
// The trade is a small false-correction risk for much higher recall on
// common questions.
type Corrector struct {
	threshold int
}

// NewCorrector creates a corrector. A candidate replaces the query only
// when its score strictly exceeds the threshold (0-100 scale).
func NewCorrector(threshold int) *Corrector {
	return &Corrector{threshold: threshold}
}

// Match is the outcome of scoring a query against the known questions.
type Match struct {
	Question string
	Score    int
	Applied  bool
}

// Correct scores the query against every known question with a
// token-order-insensitive ratio and returns the corrected query plus the
// best match. Ties keep the first-encountered maximum, so the result is
// stable on corpus order. The input is expected lower-cased and trimmed.
func (c *Corrector) Correct(query string, known []string) (string, Match) {
	best := Match{Score: -1}
	for _, candidate := range known {
		score := fuzzy.TokenSortRatio(query, candidate)
		if score > best.Score {
			best.Question = candidate
			best.Score = score
		}
	}

	if best.Score > c.threshold {
		best.Applied = true
		return best.Question, best
	}
	return query, best
}
