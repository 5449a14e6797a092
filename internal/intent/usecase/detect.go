package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"order-support-service/internal/intent"
	"order-support-service/pkg/zeroshot"
)

// Detect resolves the intent of a free-text customer question.
//
// The pipeline runs in strict order with early exits: travel-term
// rejection, relevance gate, intent classification, keyword rule boost,
// confidence floor. Classifier failures at either gate are converted to
// an IntentOther verdict with a diagnostic reason; they never propagate
// to the caller.
func (uc *implUseCase) Detect(ctx context.Context, input intent.DetectInput) (intent.DetectOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return intent.DetectOutput{}, intent.ErrEmptyQuestion
	}

	// Stage 1: out-of-domain travel vocabulary rejects before any model call.
	if containsTravelTerms(question) {
		return intent.DetectOutput{
			Intent:     intent.IntentOther,
			Confidence: 1.0,
			Reason:     reasonTravelTerms,
		}, nil
	}

	// Stage 2: relevance gate.
	relevance, err := uc.classifier.Classify(ctx, zeroshot.ClassifyRequest{
		Text:            question,
		CandidateLabels: relevanceLabels,
	})
	if err != nil || len(relevance.Labels) == 0 {
		if err == nil {
			err = zeroshot.ErrNoLabels
		}
		uc.l.Warnf(ctx, "intent/usecase.Detect relevance gate: %v", err)
		return intent.DetectOutput{
			Intent:     intent.IntentOther,
			Confidence: 0.0,
			Reason:     fmt.Sprintf("relevance check failed: %s", err),
		}, nil
	}

	relevanceLabel, relevanceScore := relevance.Top()
	if relevanceLabel != labelRelevant || relevanceScore < relevanceThreshold {
		return intent.DetectOutput{
			Intent:     intent.IntentOther,
			Confidence: round4(relevanceScore),
			Reason:     reasonNotRelated,
		}, nil
	}

	// Stage 3: four-way intent classification.
	verdict, err := uc.classifier.Classify(ctx, zeroshot.ClassifyRequest{
		Text:            question,
		CandidateLabels: intentLabels,
	})
	if err != nil || len(verdict.Labels) == 0 {
		if err == nil {
			err = zeroshot.ErrNoLabels
		}
		uc.l.Warnf(ctx, "intent/usecase.Detect intent classification: %v", err)
		return intent.DetectOutput{
			Intent:     intent.IntentOther,
			Confidence: 0.0,
			Reason:     fmt.Sprintf("intent classification failed: %s", err),
		}, nil
	}

	topLabel, confidence := verdict.Top()
	mlIntent, ok := intentByLabel[topLabel]
	if !ok {
		mlIntent = intent.IntentOther
	}

	// Stage 4: keyword rules override the model.
	final, ruleFired := ruleBoost(question, mlIntent)

	// Stage 5: low-confidence unmodified model guesses are demoted.
	if confidence < confidenceFloor && !ruleFired {
		final = intent.IntentOther
	}

	return intent.DetectOutput{
		Intent:      final,
		Confidence:  round4(confidence),
		RawTopLabel: topLabel,
	}, nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
