package enrollments

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Care-team enrollment statuses. A clinician may only read a patient's
// billing data while an active enrollment exists between the two.
const (
	StatusActive = "active"
	StatusEnded  = "ended"
)

type Service interface {
	HasActiveEnrollment(ctx context.Context, clinicianId string, patientId string) (bool, error)
}

type Enrollment struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty"`
	ClinicId    *primitive.ObjectID `bson:"clinicId,omitempty"`
	ClinicianId *string             `bson:"clinicianId,omitempty"`
	PatientId   *string             `bson:"patientId,omitempty"`
	Status      *string             `bson:"status,omitempty"`
	StartedAt   *time.Time          `bson:"startedAt,omitempty"`
	EndedAt     *time.Time          `bson:"endedAt,omitempty"`
}
