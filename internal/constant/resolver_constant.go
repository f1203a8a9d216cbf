package constant

// Resolution outcomes. The two fallback variants are distinct literals and
// must stay distinct: A is returned when retrieval finds nothing at all,
// B when retrieved context fails validation or a draft answer trips the
// denylist.
const (
	FallbackNoResult  = "Sorry, Please Dial '0' from your room phone, our staff will assist you."
	FallbackFrontDesk = "From your room phone, Please dial '0' for the front desk, our team is ready to assist you."

	GenericServerError = "Sorry, something went wrong on the server."

	LivenessMessage = "Resort concierge server is running"

	// DefaultRequesterId labels exchanges from callers that did not supply
	// a phone number.
	DefaultRequesterId = "unknown"
)

// DefaultDeniedPhrases flags hedging and meta-commentary in generated
// drafts. A case-insensitive substring hit anywhere in the draft discards
// it entirely in favor of FallbackFrontDesk; partial edits to model output
// cannot be trusted to preserve meaning.
var DefaultDeniedPhrases = []string{
	"the context does not mention",
	"as it is mentioned in the context.",
	"the context mentions",
	"the context indicates that",
	"please refer to the context",
	"cannot answer",
	"as per the context",
	"not enough information",
	"i'm sorry",
	"as an ai",
	"according to the context",
	"context confirms",
	"the context says",
}
