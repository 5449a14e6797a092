package usecase

import "order-support-service/internal/intent"

// Relevance gate labels. The gate asks a single binary question before any
// intent classification happens.
const (
	labelRelevant  = "Customer inquiry about buying or getting support for cybersecurity products or orders (saep, sdns, pillr)"
	labelUnrelated = "General conversation unrelated to cybersecurity products or orders"
)

// Intent classification labels. The label texts are full semantic
// descriptions because zero-shot models rank hypothesis sentences, not
// bare category names.
const (
	labelOrderStatus     = "Customer wants order support or help with an existing cybersecurity product order (saep, sdns, pillr)"
	labelBuy             = "Customer wants to place a new order for cybersecurity products (saep, sdns, pillr)"
	labelFix             = "Customer wants to fix or modify details of an existing cybersecurity product order (saep, sdns, pillr)"
	labelUnrelatedIntent = "Customer message is unrelated to cybersecurity product orders"
)

// intentByLabel maps every candidate label to its canonical intent code.
// The mapping is total over the candidate set; an unmapped label falls
// back to IntentOther, never an error.
var intentByLabel = map[string]intent.Intent{
	labelOrderStatus:     intent.IntentOrderStatus,
	labelBuy:             intent.IntentBuy,
	labelFix:             intent.IntentFix,
	labelUnrelatedIntent: intent.IntentOther,
}

var (
	relevanceLabels = []string{labelRelevant, labelUnrelated}
	intentLabels    = []string{labelOrderStatus, labelBuy, labelFix, labelUnrelatedIntent}
)

// Pipeline thresholds.
const (
	relevanceThreshold = 0.40
	confidenceFloor    = 0.50
)

// Short-circuit reasons.
const (
	reasonTravelTerms = "travel/ticket-related terms detected"
	reasonNotRelated  = "not related"
)
