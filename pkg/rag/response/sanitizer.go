package response

import (
	"strings"
)

// Sanitizer is the last content gate before an answer leaves the system.
// It scans a draft for denylisted hedging/meta phrases and substitutes the
// fallback wholesale on any hit. Blunt but deterministic: no partial edits.
type Sanitizer struct {
	denied   []string
	fallback string
}

func NewSanitizer(denied []string, fallback string) *Sanitizer {
	lowered := make([]string, len(denied))
	for i, phrase := range denied {
		lowered[i] = strings.ToLower(phrase)
	}
	return &Sanitizer{
		denied:   lowered,
		fallback: fallback,
	}
}

// Sanitize trims the draft and checks it against the denylist
// case-insensitively. The second return reports whether the draft was
// replaced by the fallback.
func (s *Sanitizer) Sanitize(draft string) (string, bool) {
	trimmed := strings.TrimSpace(draft)
	lowered := strings.ToLower(trimmed)

	for _, phrase := range s.denied {
		if strings.Contains(lowered, phrase) {
			return s.fallback, true
		}
	}

	return trimmed, false
}
