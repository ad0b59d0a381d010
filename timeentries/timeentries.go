package timeentries

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity types a clinician can log time against.
const (
	ActivityCarePlanUpdate           = "CARE_PLAN_UPDATE"
	ActivityCoordination             = "COORDINATION"
	ActivityPhoneCall                = "PHONE_CALL"
	ActivityPatientReview            = "PATIENT_REVIEW"
	ActivityDeviceSetup              = "DEVICE_SETUP"
	ActivityMedicationReconciliation = "MEDICATION_RECONCILIATION"
)

const (
	PerformerClinicalStaff = "CLINICAL_STAFF"
	PerformerPhysician     = "PHYSICIAN"
)

// DateLayout is how entry dates are stored. Entries are attributed to
// clinic-local calendar dates, matching how clinicians log them.
const DateLayout = "2006-01-02"

// Repository is a read-only projection over the time-entry store. Entries
// are created and edited by the time-tracking service; this service only
// reads them.
type Repository interface {
	// List returns all entries for the patient with entryDate in
	// [fromDate, toDate), both clinic-local dates in DateLayout form.
	List(ctx context.Context, patientId string, fromDate string, toDate string) ([]*TimeEntry, error)
}

type TimeEntry struct {
	Id              *primitive.ObjectID `bson:"_id,omitempty"`
	ClinicId        *primitive.ObjectID `bson:"clinicId,omitempty"`
	PatientId       string              `bson:"patientId"`
	EntryDate       string              `bson:"entryDate"`
	DurationMinutes int                 `bson:"durationMinutes"`
	ActivityType    string              `bson:"activityType"`
	PerformerType   string              `bson:"performerType"`
	Notes           *string             `bson:"notes,omitempty"`
}
