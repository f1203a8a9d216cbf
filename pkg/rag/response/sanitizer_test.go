package response

import (
	"testing"

	"resort-concierge-be/internal/constant"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name         string
		draft        string
		wantReplaced bool
	}{
		{
			name:         "clean draft passes through",
			draft:        "Breakfast is served from 7 to 10 in the main restaurant.",
			wantReplaced: false,
		},
		{
			name:         "denylisted phrase replaces draft",
			draft:        "According to the context, breakfast is at 7.",
			wantReplaced: true,
		},
		{
			name:         "match is case-insensitive",
			draft:        "THE CONTEXT DOES NOT MENTION a spa.",
			wantReplaced: true,
		},
		{
			name:         "phrase buried mid-sentence still trips",
			draft:        "Well, I'm sorry but that detail is missing.",
			wantReplaced: true,
		},
		{
			name:         "apology variant trips",
			draft:        "As an AI, I cannot help with that.",
			wantReplaced: true,
		},
		{
			name:         "empty draft passes",
			draft:        "",
			wantReplaced: false,
		},
	}

	sanitizer := NewSanitizer(constant.DefaultDeniedPhrases, constant.FallbackFrontDesk)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, replaced := sanitizer.Sanitize(tt.draft)
			if replaced != tt.wantReplaced {
				t.Errorf("Sanitize() replaced = %v, want %v", replaced, tt.wantReplaced)
			}
			if replaced && got != constant.FallbackFrontDesk {
				t.Errorf("Sanitize() = %q, want fallback verbatim", got)
			}
		})
	}
}

func TestSanitizeTrims(t *testing.T) {
	sanitizer := NewSanitizer(constant.DefaultDeniedPhrases, constant.FallbackFrontDesk)
	got, replaced := sanitizer.Sanitize("  Checkout is at noon.  \n")
	if replaced {
		t.Fatal("Sanitize() replaced clean draft")
	}
	if got != "Checkout is at noon." {
		t.Errorf("Sanitize() = %q, want trimmed draft", got)
	}
}
