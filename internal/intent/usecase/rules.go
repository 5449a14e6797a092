package usecase

import (
	"regexp"
	"strings"

	"order-support-service/internal/intent"
)

// Keyword heuristics over the raw question text. All predicates are
// case-insensitive whole-word matches; they are pure and do no I/O.
var (
	// Vendor order ids: a known 3-4 letter vendor prefix followed by 8+ digits.
	orderIDPattern = regexp.MustCompile(`(?i)\b(?:MSP|SFDC|RA|ECM|RSL)\d{8,}\b`)

	fixTermsPattern = regexp.MustCompile(`(?i)\b(?:fix|correct|modify|change|update|edit|revise|adjust|amend|repair)\b`)

	// Out-of-domain travel/logistics vocabulary, checked before any model call.
	travelTermsPattern = regexp.MustCompile(`(?i)\b(?:flight|flights|airline|airport|train|bus|hotel|visa|passport|travel|trip|vacation|holiday|ticket|tickets|itinerary|dubai|london|paris|delhi|mumbai|singapore|bangkok|tokyo)\b`)

	productPattern = regexp.MustCompile(`(?i)\b(?:saep|sdns|pillr|dns)\b`)

	failureVocabPattern = regexp.MustCompile(`(?i)\b(?:fail|fails|failed|failure|error|errors|issue|issues|problem|problems|repair)\b`)

	standaloneIntPattern = regexp.MustCompile(`\b\d+\b`)
)

func containsOrderID(text string) bool {
	return orderIDPattern.MatchString(text)
}

func containsFixTerms(text string) bool {
	return fixTermsPattern.MatchString(text)
}

func containsTravelTerms(text string) bool {
	return travelTermsPattern.MatchString(text)
}

func containsProductMention(text string) bool {
	return productPattern.MatchString(text)
}

func containsFailureVocabulary(text string) bool {
	return failureVocabPattern.MatchString(text)
}

// ruleBoost applies the keyword overrides to the model's intent, in strict
// priority order with first match winning. It reports whether any rule
// fired so the confidence floor never demotes a rule-justified verdict.
//
// Explicit signals (a modification verb, a concrete order id) beat the
// model's label choice in this narrow domain; quantity+product mentions
// are a transactional signal the model under-weights.
func ruleBoost(question string, mlIntent intent.Intent) (intent.Intent, bool) {
	lower := strings.ToLower(question)

	// 1. Modification verbs take priority over everything, including
	// order ids present in the same sentence.
	if containsFixTerms(question) {
		return intent.IntentFix, true
	}

	// 2. Order ids or explicit "order status" queries.
	if containsOrderID(question) || strings.Contains(lower, "order status") {
		return intent.IntentOrderStatus, true
	}

	// 3. Quantities + product names.
	if standaloneIntPattern.MatchString(question) && containsProductMention(question) {
		return intent.IntentBuy, true
	}

	// 4. Product names without failure vocabulary.
	if containsProductMention(question) && !containsFailureVocabulary(question) {
		return intent.IntentBuy, true
	}

	return mlIntent, false
}
