package patients

import (
	"context"
)

func NewService(repository Repository) (Service, error) {
	return &service{
		repository: repository,
	}, nil
}

type service struct {
	repository Repository
}

func (s *service) Get(ctx context.Context, userId string) (*Patient, error) {
	return s.repository.Get(ctx, userId)
}

func (s *service) ListActive(ctx context.Context, clinicId string) ([]*Patient, error) {
	return s.repository.ListActive(ctx, clinicId)
}
