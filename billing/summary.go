package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carelink-org/rpm/clinics"
	"github.com/carelink-org/rpm/enrollments"
	internalErrs "github.com/carelink-org/rpm/errors"
	"github.com/carelink-org/rpm/patients"
	"github.com/carelink-org/rpm/pointer"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen --build_flags=--mod=mod -source=./summary.go -destination=./test/mock_summaries.go -package test MockSummaries

type PatientBillingSummary struct {
	PatientId          string                     `json:"patientId"`
	PatientName        string                     `json:"patientName"`
	Period             Period                     `json:"period"`
	DeviceTransmission *DeviceTransmissionSummary `json:"deviceTransmission"`
	Time               *TimeSummary               `json:"time"`
	EligibleCodes      []string                   `json:"eligibleCodes"`
}

type Summaries interface {
	// GetPatientSummary authorizes the calling clinician against the
	// patient's care team, then builds the summary for the requested
	// window. The response never reveals whether the patient exists when
	// the caller is not authorized.
	GetPatientSummary(ctx context.Context, clinicianId string, patientId string, from *time.Time, to *time.Time) (*PatientBillingSummary, error)

	// BuildSummary computes a summary for an already-authorized patient
	// against a pre-resolved period. The clinic report uses it so that
	// every patient is measured against the identical window.
	BuildSummary(ctx context.Context, patient *patients.Patient, loc *time.Location, period Period) (*PatientBillingSummary, error)
}

type SummariesParams struct {
	fx.In

	Clinics     clinics.Service
	Patients    patients.Service
	Enrollments enrollments.Service
	DeviceDays  *DeviceDayCounter
	Time        *TimeAggregator
	Logger      *zap.SugaredLogger
}

func NewSummaries(p SummariesParams) (Summaries, error) {
	return &summaries{
		clinics:     p.Clinics,
		patients:    p.Patients,
		enrollments: p.Enrollments,
		deviceDays:  p.DeviceDays,
		time:        p.Time,
		logger:      p.Logger,
		now:         time.Now,
	}, nil
}

type summaries struct {
	clinics     clinics.Service
	patients    patients.Service
	enrollments enrollments.Service
	deviceDays  *DeviceDayCounter
	time        *TimeAggregator
	logger      *zap.SugaredLogger
	now         func() time.Time
}

func (s *summaries) GetPatientSummary(ctx context.Context, clinicianId string, patientId string, from *time.Time, to *time.Time) (*PatientBillingSummary, error) {
	enrolled, err := s.enrollments.HasActiveEnrollment(ctx, clinicianId, patientId)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, internalErrs.NotAuthorized
	}

	patient, err := s.patients.Get(ctx, patientId)
	if err != nil {
		// An active enrollment without a patient record is an upstream
		// inconsistency, but the response must still not reveal whether
		// the patient exists.
		if errors.Is(err, internalErrs.NotFound) {
			s.logger.Warnw("active enrollment references missing patient", "patientId", patientId)
			return nil, internalErrs.NotAuthorized
		}
		return nil, err
	}

	if patient.ClinicId == nil {
		return nil, fmt.Errorf("patient %s is not associated with a clinic", patientId)
	}
	clinic, err := s.clinics.Get(ctx, patient.ClinicId.Hex())
	if err != nil {
		return nil, err
	}
	loc, err := clinic.Location()
	if err != nil {
		return nil, err
	}

	period, err := ResolvePeriod(from, to, loc, s.now())
	if err != nil {
		return nil, err
	}

	return s.BuildSummary(ctx, patient, loc, period)
}

func (s *summaries) BuildSummary(ctx context.Context, patient *patients.Patient, loc *time.Location, period Period) (*PatientBillingSummary, error) {
	patientId := pointer.ToString(patient.UserId)

	var device *DeviceTransmissionSummary
	var times *TimeSummary

	// The two store reads are independent of each other; issue them
	// concurrently. Sequential execution would produce identical results.
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		device, err = s.deviceDays.Summarize(groupCtx, patientId, period, loc)
		return err
	})
	group.Go(func() error {
		var err error
		times, err = s.time.Summarize(groupCtx, patientId, period, loc)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &PatientBillingSummary{
		PatientId:          patientId,
		PatientName:        pointer.ToString(patient.FullName),
		Period:             period,
		DeviceTransmission: device,
		Time:               times,
		EligibleCodes:      EvaluateCodes(device, times),
	}, nil
}
