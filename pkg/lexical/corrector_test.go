package lexical

import (
	"testing"
)

func TestCorrect(t *testing.T) {
	known := []string{
		"what time is breakfast",
		"where is the pool",
		"how do i connect to wifi",
	}

	tests := []struct {
		name        string
		query       string
		wantQuery   string
		wantApplied bool
	}{
		{
			name:        "identical question scores 100 and is kept",
			query:       "what time is breakfast",
			wantQuery:   "what time is breakfast",
			wantApplied: true,
		},
		{
			name:        "misspelled question snaps to known question",
			query:       "wat time is brakfast",
			wantQuery:   "what time is breakfast",
			wantApplied: true,
		},
		{
			name:        "token order is ignored",
			query:       "breakfast is what time",
			wantQuery:   "what time is breakfast",
			wantApplied: true,
		},
		{
			name:        "unrelated query is returned unmodified",
			query:       "xyzzy plugh",
			wantQuery:   "xyzzy plugh",
			wantApplied: false,
		},
	}

	corrector := NewCorrector(80)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, match := corrector.Correct(tt.query, known)
			if got != tt.wantQuery {
				t.Errorf("Correct() = %q, want %q (score %d)", got, tt.wantQuery, match.Score)
			}
			if match.Applied != tt.wantApplied {
				t.Errorf("Applied = %v, want %v (score %d)", match.Applied, tt.wantApplied, match.Score)
			}
		})
	}
}

func TestCorrectIdenticalScores100(t *testing.T) {
	corrector := NewCorrector(80)
	_, match := corrector.Correct("where is the pool", []string{"where is the pool"})
	if match.Score != 100 {
		t.Errorf("Score = %d, want 100", match.Score)
	}
}

func TestCorrectThresholdIsStrict(t *testing.T) {
	// A corrector with threshold 100 can never apply a correction, even on
	// an exact match: the score must strictly exceed the threshold.
	corrector := NewCorrector(100)
	got, match := corrector.Correct("where is the pool", []string{"where is the pool"})
	if match.Applied {
		t.Error("Applied = true, want false at score == threshold")
	}
	if got != "where is the pool" {
		t.Errorf("Correct() = %q, want input unchanged", got)
	}
}

func TestCorrectTieBreakKeepsFirst(t *testing.T) {
	corrector := NewCorrector(80)
	// Both candidates are the same distance from the query; the first one
	// encountered must win.
	got, _ := corrector.Correct("good morning", []string{"good morning", "morning good"})
	if got != "good morning" {
		t.Errorf("Correct() = %q, want first candidate", got)
	}
}

func TestCorrectEmptyKnownList(t *testing.T) {
	corrector := NewCorrector(80)
	got, match := corrector.Correct("anything", nil)
	if got != "anything" || match.Applied {
		t.Errorf("Correct() = %q (applied %v), want unchanged", got, match.Applied)
	}
}
