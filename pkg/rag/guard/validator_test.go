package guard

import (
	"testing"
)

func TestAdmit(t *testing.T) {
	tests := []struct {
		name        string
		contextText string
		query       string
		wantAdmit   bool
	}{
		{
			name:        "overlapping corpus passage admitted",
			contextText: "Q: What time is breakfast\nA: Breakfast is served 7-10am.",
			query:       "what time is breakfast",
			wantAdmit:   true,
		},
		{
			name:        "single overlapping token is enough",
			contextText: "Q: Where is the pool\nA: Level 2.",
			query:       "pool directions please",
			wantAdmit:   true,
		},
		{
			name:        "no overlap rejected despite prefix",
			contextText: "Q: Where is the pool\nA: Level 2.",
			query:       "xyzzy plugh",
			wantAdmit:   false,
		},
		{
			name:        "missing prefix rejected despite overlap",
			contextText: "The pool is on level 2.",
			query:       "where is the pool",
			wantAdmit:   false,
		},
		{
			name:        "prefix check is case-insensitive",
			contextText: "q: where is the gym\na: Level 3.",
			query:       "where is the gym",
			wantAdmit:   true,
		},
		{
			name:        "overlap check is case-insensitive on context",
			contextText: "Q: WiFi ACCESS\nA: Use the lobby network.",
			query:       "wifi password",
			wantAdmit:   true,
		},
	}

	validator := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := validator.Admit(tt.contextText, tt.query)
			if verdict.Admitted != tt.wantAdmit {
				t.Errorf("Admit() = %v (%s), want %v", verdict.Admitted, verdict.Reason, tt.wantAdmit)
			}
		})
	}
}
