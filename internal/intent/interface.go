package intent

import (
	"context"

	"order-support-service/pkg/zeroshot"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Detect(ctx context.Context, input DetectInput) (DetectOutput, error)
}

// Classifier is the zero-shot classification collaborator. The production
// implementation is pkg/zeroshot; it is created once at startup and shared
// across requests.
type Classifier interface {
	Classify(ctx context.Context, req zeroshot.ClassifyRequest) (zeroshot.Result, error)
}
