package usecase

import (
	"order-support-service/internal/intent"
	"order-support-service/pkg/log"
)

// implUseCase is the private implementation of intent.UseCase.
type implUseCase struct {
	classifier intent.Classifier
	l          log.Logger
}

// New creates a new intent UseCase implementation.
func New(classifier intent.Classifier, l log.Logger) *implUseCase {
	if classifier == nil {
		panic("intent/usecase: classifier is required")
	}
	return &implUseCase{
		classifier: classifier,
		l:          l,
	}
}

var _ intent.UseCase = (*implUseCase)(nil)
