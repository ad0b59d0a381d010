package patients

import (
	"context"
	"fmt"

	"github.com/carelink-org/rpm/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = fmt.Errorf("patient %w", errors.NotFound)

// Clinic enrollment statuses. Only active patients appear in clinic-wide
// billing reports; paused and discharged patients are excluded.
const (
	StatusActive     = "active"
	StatusPaused     = "paused"
	StatusDischarged = "discharged"
)

type Service interface {
	Get(ctx context.Context, userId string) (*Patient, error)
	ListActive(ctx context.Context, clinicId string) ([]*Patient, error)
}

type Patient struct {
	Id        *primitive.ObjectID `bson:"_id,omitempty"`
	ClinicId  *primitive.ObjectID `bson:"clinicId,omitempty"`
	UserId    *string             `bson:"userId,omitempty"`
	BirthDate *string             `bson:"birthDate,omitempty"`
	Email     *string             `bson:"email,omitempty"`
	FullName  *string             `bson:"fullName,omitempty"`
	Mrn       *string             `bson:"mrn,omitempty"`
	Status    *string             `bson:"status,omitempty"`
}

type Filter struct {
	ClinicId *string
	UserId   *string
	Status   *string
}

func (p *Patient) IsActive() bool {
	return p.Status != nil && *p.Status == StatusActive
}
