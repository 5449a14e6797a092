package usecase

import (
	"context"

	"order-support-service/pkg/zeroshot"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockClassifier answers relevance-gate and intent-stage calls separately,
// keyed on the number of candidate labels.
type mockClassifier struct {
	relevanceResult zeroshot.Result
	relevanceErr    error
	intentResult    zeroshot.Result
	intentErr       error

	calls int
}

func (m *mockClassifier) Classify(ctx context.Context, req zeroshot.ClassifyRequest) (zeroshot.Result, error) {
	m.calls++
	if len(req.CandidateLabels) == 2 {
		return m.relevanceResult, m.relevanceErr
	}
	return m.intentResult, m.intentErr
}

// relevantResult builds a passing relevance-gate verdict.
func relevantResult(score float64) zeroshot.Result {
	return zeroshot.Result{
		Labels: []string{labelRelevant, labelUnrelated},
		Scores: []float64{score, 1 - score},
	}
}
