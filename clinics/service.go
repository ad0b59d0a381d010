package clinics

import (
	"context"

	"github.com/carelink-org/rpm/store"
)

func NewService(repository Repository) (Service, error) {
	return &service{
		repository: repository,
	}, nil
}

type service struct {
	repository Repository
}

func (s *service) Get(ctx context.Context, id string) (*Clinic, error) {
	return s.repository.Get(ctx, id)
}

func (s *service) List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Clinic, error) {
	return s.repository.List(ctx, filter, pagination)
}
