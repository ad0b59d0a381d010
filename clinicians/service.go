package clinicians

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

func (s *service) Get(ctx context.Context, clinicId string, clinicianId string) (*Clinician, error) {
	return s.repository.Get(ctx, clinicId, clinicianId)
}

func (s *service) List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Clinician, error) {
	return s.repository.List(ctx, filter, pagination)
}
