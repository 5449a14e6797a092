package usecase

import (
	"order-support-service/internal/order"
	"order-support-service/internal/order/repository"
	"order-support-service/pkg/log"
)

// implUseCase is the private implementation of order.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger

	// serviceUser is the acting-user identity used when the request
	// carries none.
	serviceUser string
}

// New creates a new order UseCase implementation.
func New(repo repository.Repository, serviceUser string, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:        repo,
		serviceUser: serviceUser,
		l:           l,
	}
}

var _ order.UseCase = (*implUseCase)(nil)
