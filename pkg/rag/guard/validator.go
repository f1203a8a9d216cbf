package guard

import (
	"strings"
)

// CorpusPrefix is the structural marker every trustworthy context passage
// carries. Passages are built from "Q: ...\nA: ..." corpus documents;
// anything else indicates index corruption or unexpected content.
const CorpusPrefix = "q:"

// Validator gates retrieved context before it may ground a generated
// answer. Both checks must pass; either failure routes the request to the
// front-desk fallback.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Verdict explains why a passage was rejected. Empty reason means admitted.
type Verdict struct {
	Admitted bool
	Reason   string
}

// Admit applies the two sequential gates to the top-ranked passage:
//
//  1. Lexical overlap: at least one whitespace-delimited token of the
//     normalized query must appear as a substring of the lower-cased
//     context. This rejects semantically-ranked hits that share no surface
//     vocabulary with the query (gibberish or adversarial input).
//  2. Structural prefix: the lower-cased context must start with "q:",
//     proving it came from the curated corpus format.
func (v *Validator) Admit(contextText, query string) Verdict {
	lowered := strings.ToLower(contextText)

	overlap := false
	for _, token := range strings.Fields(query) {
		if strings.Contains(lowered, token) {
			overlap = true
			break
		}
	}
	if !overlap {
		return Verdict{Reason: "no lexical overlap with query"}
	}

	if !strings.HasPrefix(lowered, CorpusPrefix) {
		return Verdict{Reason: "context missing corpus prefix"}
	}

	return Verdict{Admitted: true}
}
