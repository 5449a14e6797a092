package usecase

import (
	"context"
	"errors"
	"testing"

	"order-support-service/internal/intent"
	"order-support-service/pkg/zeroshot"
)

func intentResult(topLabel string, topScore float64) zeroshot.Result {
	labels := []string{topLabel}
	scores := []float64{topScore}
	rest := (1 - topScore) / 3
	for _, label := range intentLabels {
		if label == topLabel {
			continue
		}
		labels = append(labels, label)
		scores = append(scores, rest)
	}
	return zeroshot.Result{Labels: labels, Scores: scores}
}

func TestDetectEmptyQuestion(t *testing.T) {
	uc := New(&mockClassifier{}, &mockLogger{})

	_, err := uc.Detect(context.Background(), intent.DetectInput{Question: "   "})
	if !errors.Is(err, intent.ErrEmptyQuestion) {
		t.Fatalf("expected ErrEmptyQuestion, got %v", err)
	}
}

func TestDetectTravelReject(t *testing.T) {
	classifier := &mockClassifier{}
	uc := New(classifier, &mockLogger{})

	out, err := uc.Detect(context.Background(), intent.DetectInput{Question: "book a flight to Dubai"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != intent.IntentOther {
		t.Errorf("expected intent other, got %q", out.Intent)
	}
	if out.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %v", out.Confidence)
	}
	if out.Reason != "travel/ticket-related terms detected" {
		t.Errorf("unexpected reason %q", out.Reason)
	}
	if classifier.calls != 0 {
		t.Errorf("expected no classifier calls, got %d", classifier.calls)
	}
}

func TestDetectRelevanceGateFailure(t *testing.T) {
	classifier := &mockClassifier{relevanceErr: errors.New("model unavailable")}
	uc := New(classifier, &mockLogger{})

	out, err := uc.Detect(context.Background(), intent.DetectInput{Question: "hello, what can you do"})
	if err != nil {
		t.Fatalf("classifier failure must not propagate, got %v", err)
	}
	if out.Intent != intent.IntentOther {
		t.Errorf("expected intent other, got %q", out.Intent)
	}
	if out.Confidence != 0.0 {
		t.Errorf("expected confidence 0.0, got %v", out.Confidence)
	}
	if out.Reason == "" {
		t.Error("expected a non-empty failure reason")
	}
}

func TestDetectNotRelated(t *testing.T) {
	classifier := &mockClassifier{
		relevanceResult: zeroshot.Result{
			Labels: []string{labelUnrelated, labelRelevant},
			Scores: []float64{0.873456, 0.126544},
		},
	}
	uc := New(classifier, &mockLogger{})

	out, err := uc.Detect(context.Background(), intent.DetectInput{Question: "tell me a joke"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != intent.IntentOther {
		t.Errorf("expected intent other, got %q", out.Intent)
	}
	if out.Confidence != 0.8735 {
		t.Errorf("expected relevance score 0.8735, got %v", out.Confidence)
	}
	if out.Reason != "not related" {
		t.Errorf("unexpected reason %q", out.Reason)
	}
	if classifier.calls != 1 {
		t.Errorf("expected pipeline to stop after the gate, got %d calls", classifier.calls)
	}
}

func TestDetectRelevantButBelowGateThreshold(t *testing.T) {
	// Top label is the relevant one but under 0.40: not relevant.
	classifier := &mockClassifier{
		relevanceResult: zeroshot.Result{
			Labels: []string{labelRelevant, labelUnrelated},
			Scores: []float64{0.39, 0.61},
		},
	}
	uc := New(classifier, &mockLogger{})

	out, err := uc.Detect(context.Background(), intent.DetectInput{Question: "maybe something about orders"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != intent.IntentOther {
		t.Errorf("expected intent other, got %q", out.Intent)
	}
	if out.Reason != "not related" {
		t.Errorf("unexpected reason %q", out.Reason)
	}
}

func TestDetectIntentClassificationFailure(t *testing.T) {
	classifier := &mockClassifier{
		relevanceResult: relevantResult(0.9),
		intentErr:       errors.New("boom"),
	}
	uc := New(classifier, &mockLogger{})

	out, err := uc.Detect(context.Background(), intent.DetectInput{Question: "what happened to my purchase"})
	if err != nil {
		t.Fatalf("classifier failure must not propagate, got %v", err)
	}
	if out.Intent != intent.IntentOther || out.Confidence != 0.0 || out.Reason == "" {
		t.Errorf("expected other/0.0/non-empty reason, got %+v", out)
	}
}

func TestDetectEmptyIntentLabels(t *testing.T) {
	classifier := &mockClassifier{
		relevanceResult: relevantResult(0.9),
		intentResult:    zeroshot.Result{},
	}
	uc := New(classifier, &mockLogger{})

	out, err := uc.Detect(context.Background(), intent.DetectInput{Question: "what happened to my purchase"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != intent.IntentOther || out.Confidence != 0.0 || out.Reason == "" {
		t.Errorf("expected other/0.0/non-empty reason, got %+v", out)
	}
}

func TestDetectSuccess(t *testing.T) {
	classifier := &mockClassifier{
		relevanceResult: relevantResult(0.95),
		intentResult:    intentResult(labelBuy, 0.854321),
	}
	uc := New(classifier, &mockLogger{})

	out, err := uc.Detect(context.Background(), intent.DetectInput{Question: "i would like a quote please"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != intent.IntentBuy {
		t.Errorf("expected intent buy, got %q", out.Intent)
	}
	if out.Confidence != 0.8543 {
		t.Errorf("expected confidence rounded to 0.8543, got %v", out.Confidence)
	}
	if out.RawTopLabel != labelBuy {
		t.Errorf("expected raw top label %q, got %q", labelBuy, out.RawTopLabel)
	}
	if out.Reason != "" {
		t.Errorf("expected empty reason on success, got %q", out.Reason)
	}
}

func TestDetectRuleOverrideKeepsProvenance(t *testing.T) {
	// Model says buy, but the fix verb wins; raw_top_label still reports
	// the model's winning label.
	classifier := &mockClassifier{
		relevanceResult: relevanceOK(),
		intentResult:    intentResult(labelBuy, 0.7),
	}
	uc := New(classifier, &mockLogger{})

	out, err := uc.Detect(context.Background(), intent.DetectInput{Question: "please amend my subscription"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != intent.IntentFix {
		t.Errorf("expected intent fix, got %q", out.Intent)
	}
	if out.RawTopLabel != labelBuy {
		t.Errorf("expected raw top label %q, got %q", labelBuy, out.RawTopLabel)
	}
	if out.Confidence != 0.7 {
		t.Errorf("expected model confidence 0.7, got %v", out.Confidence)
	}
}

func TestDetectConfidenceFloorDemotes(t *testing.T) {
	classifier := &mockClassifier{
		relevanceResult: relevanceOK(),
		intentResult:    intentResult(labelBuy, 0.42),
	}
	uc := New(classifier, &mockLogger{})

	out, err := uc.Detect(context.Background(), intent.DetectInput{Question: "hmm not sure what i need"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != intent.IntentOther {
		t.Errorf("expected low-confidence guess demoted to other, got %q", out.Intent)
	}
	if out.Confidence != 0.42 {
		t.Errorf("expected confidence 0.42, got %v", out.Confidence)
	}
	if out.RawTopLabel != labelBuy {
		t.Errorf("expected raw top label kept, got %q", out.RawTopLabel)
	}
}

func TestDetectConfidenceFloorSparesRuleOverride(t *testing.T) {
	classifier := &mockClassifier{
		relevanceResult: relevanceOK(),
		intentResult:    intentResult(labelBuy, 0.42),
	}
	uc := New(classifier, &mockLogger{})

	out, err := uc.Detect(context.Background(), intent.DetectInput{Question: "please fix my subscription"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != intent.IntentFix {
		t.Errorf("rule-justified intent must survive the floor, got %q", out.Intent)
	}
}

func TestDetectFixBeatsOrderID(t *testing.T) {
	classifier := &mockClassifier{
		relevanceResult: relevanceOK(),
		intentResult:    intentResult(labelOrderStatus, 0.9),
	}
	uc := New(classifier, &mockLogger{})

	out, err := uc.Detect(context.Background(), intent.DetectInput{
		Question: "can you correct the delivery date on SFDC00012345",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != intent.IntentFix {
		t.Errorf("fix verb must beat the order id, got %q", out.Intent)
	}
}

func TestDetectUnmappedLabelFallsBackToOther(t *testing.T) {
	classifier := &mockClassifier{
		relevanceResult: relevanceOK(),
		intentResult: zeroshot.Result{
			Labels: []string{"some label no one mapped"},
			Scores: []float64{0.99},
		},
	}
	uc := New(classifier, &mockLogger{})

	out, err := uc.Detect(context.Background(), intent.DetectInput{Question: "something ambiguous здесь"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != intent.IntentOther {
		t.Errorf("unmapped label must resolve to other, got %q", out.Intent)
	}
	if out.RawTopLabel != "some label no one mapped" {
		t.Errorf("raw top label must be kept, got %q", out.RawTopLabel)
	}
}

func relevanceOK() zeroshot.Result {
	return relevantResult(0.92)
}
