package usecase

import (
	"testing"

	"order-support-service/internal/intent"
)

func TestContainsOrderID(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"SFDC123456789", true},
		{"where is sfdc00012345", true},
		{"order MSP00000001 is late", true},
		{"ra12345678 please", true},
		{"ECM1234567", false}, // only 7 digits
		{"SFDC please help", false},
		{"order 12345678", false}, // no vendor prefix
		{"XSFDC12345678X", false}, // not a standalone token
	}
	for _, tc := range cases {
		if got := containsOrderID(tc.text); got != tc.want {
			t.Errorf("containsOrderID(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestContainsFixTerms(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"please fix my order", true},
		{"can you CORRECT the dates", true},
		{"amend the delivery", true},
		{"the prefix of the id", false}, // "fix" only as substring
		{"i want a new order", false},
	}
	for _, tc := range cases {
		if got := containsFixTerms(tc.text); got != tc.want {
			t.Errorf("containsFixTerms(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestContainsTravelTerms(t *testing.T) {
	if !containsTravelTerms("book a flight to Dubai") {
		t.Error("expected travel terms in flight booking question")
	}
	if containsTravelTerms("i want 3 pillr") {
		t.Error("did not expect travel terms in product question")
	}
}

func TestContainsProductMention(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"interested in sdns", true},
		{"quote for SAEP please", true},
		{"pillr pricing", true},
		{"dns setup", true},
		{"my sdnsx subscription", false}, // not a whole word
		{"order status please", false},
	}
	for _, tc := range cases {
		if got := containsProductMention(tc.text); got != tc.want {
			t.Errorf("containsProductMention(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestRuleBoost(t *testing.T) {
	cases := []struct {
		name      string
		question  string
		mlIntent  intent.Intent
		want      intent.Intent
		wantFired bool
	}{
		{
			name:      "fix verb overrides model",
			question:  "please fix my order",
			mlIntent:  intent.IntentBuy,
			want:      intent.IntentFix,
			wantFired: true,
		},
		{
			name:      "fix verb beats order id when both present",
			question:  "can you correct the delivery date on SFDC00012345",
			mlIntent:  intent.IntentOrderStatus,
			want:      intent.IntentFix,
			wantFired: true,
		},
		{
			name:      "order id pattern",
			question:  "SFDC123456789",
			mlIntent:  intent.IntentBuy,
			want:      intent.IntentOrderStatus,
			wantFired: true,
		},
		{
			name:      "literal order status phrase",
			question:  "what is my Order Status",
			mlIntent:  intent.IntentBuy,
			want:      intent.IntentOrderStatus,
			wantFired: true,
		},
		{
			name:      "quantity plus product",
			question:  "I want 3 pillr",
			mlIntent:  intent.IntentOther,
			want:      intent.IntentBuy,
			wantFired: true,
		},
		{
			name:      "product without failure vocabulary",
			question:  "interested in sdns",
			mlIntent:  intent.IntentOther,
			want:      intent.IntentBuy,
			wantFired: true,
		},
		{
			name:      "product with failure vocabulary is not boosted",
			question:  "sdns error",
			mlIntent:  intent.IntentOrderStatus,
			want:      intent.IntentOrderStatus,
			wantFired: false,
		},
		{
			name:      "no rule match leaves model intent unchanged",
			question:  "hello there",
			mlIntent:  intent.IntentBuy,
			want:      intent.IntentBuy,
			wantFired: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, fired := ruleBoost(tc.question, tc.mlIntent)
			if got != tc.want {
				t.Errorf("ruleBoost(%q, %q) = %q, want %q", tc.question, tc.mlIntent, got, tc.want)
			}
			if fired != tc.wantFired {
				t.Errorf("ruleBoost(%q, %q) fired = %v, want %v", tc.question, tc.mlIntent, fired, tc.wantFired)
			}
		})
	}
}
