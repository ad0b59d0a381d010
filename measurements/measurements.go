package measurements

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SourceManual marks a measurement the patient typed in by hand. Every
// other source value is a device vendor tag; only those count toward
// device-transmission days.
const SourceManual = "manual"

// Repository is a read-only projection over the measurement store. The
// store is owned by the ingestion pipeline; this service never writes to it.
type Repository interface {
	List(ctx context.Context, patientId string, from time.Time, to time.Time) ([]*Measurement, error)
}

type Measurement struct {
	Id        *primitive.ObjectID `bson:"_id,omitempty"`
	PatientId string              `bson:"patientId"`
	Timestamp time.Time           `bson:"timestamp"`
	Source    string              `bson:"source"`
}

func (m *Measurement) IsDeviceTransmitted() bool {
	return m.Source != SourceManual
}
