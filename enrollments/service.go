package enrollments

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

func (s *service) HasActiveEnrollment(ctx context.Context, clinicianId string, patientId string) (bool, error) {
	return s.repository.HasActiveEnrollment(ctx, clinicianId, patientId)
}
