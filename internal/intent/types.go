package intent

// Intent is the canonical intent code returned to callers.
type Intent string

const (
	IntentOrderStatus Intent = "order status"
	IntentBuy         Intent = "buy"
	IntentFix         Intent = "fix"
	IntentOther       Intent = "other"
)

// --- UseCase Inputs ---

type DetectInput struct {
	Question string
}

// --- UseCase Outputs ---

// DetectOutput is the final verdict of the resolution pipeline.
//
// Confidence is the intent-stage model confidence rounded to 4 decimals,
// except on short-circuit paths where it carries the relevance score or
// the 0.0 failure sentinel. RawTopLabel is the winning label text from
// the intent-stage classifier call — diagnostic provenance that is kept
// even when a keyword rule overrides the final intent.
type DetectOutput struct {
	Intent      Intent
	Confidence  float64
	RawTopLabel string
	Reason      string
}
