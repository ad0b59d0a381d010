package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carelink-org/rpm/clinicians"
	"github.com/carelink-org/rpm/clinics"
	internalErrs "github.com/carelink-org/rpm/errors"
	"github.com/carelink-org/rpm/patients"
	"github.com/carelink-org/rpm/pointer"
	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen --build_flags=--mod=mod -source=./report.go -destination=./test/mock_reports.go -package test MockReports

// Failure policies for per-patient computation errors during a clinic
// report. The default degrades gracefully: the affected patient is flagged
// and excluded instead of failing the whole report.
const (
	FailurePolicySkip  = "skip"
	FailurePolicyAbort = "abort"
)

type ReportConfig struct {
	FailurePolicy  string `envconfig:"CARELINK_REPORT_FAILURE_POLICY" default:"skip"`
	MaxConcurrency int    `envconfig:"CARELINK_REPORT_MAX_CONCURRENCY" default:"8"`
}

func NewReportConfig() (*ReportConfig, error) {
	cfg := &ReportConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if cfg.FailurePolicy != FailurePolicySkip && cfg.FailurePolicy != FailurePolicyAbort {
		return nil, fmt.Errorf("invalid report failure policy %q", cfg.FailurePolicy)
	}
	if cfg.MaxConcurrency < 1 {
		return nil, fmt.Errorf("report concurrency must be positive")
	}
	return cfg, nil
}

type ReportTotals struct {
	// TotalPatients counts the patients included in the report's Patients
	// list. Patients excluded by the failure policy are not counted here;
	// they are listed in Skipped.
	TotalPatients           int            `json:"totalPatients"`
	PatientsWithDeviceData  int            `json:"patientsWithDeviceData"`
	PatientsEligibleByCode  map[string]int `json:"patientsEligibleByCode"`
	RpmMinutes              int            `json:"rpmMinutes"`
	CcmClinicalStaffMinutes int            `json:"ccmClinicalStaffMinutes"`
	CcmPhysicianMinutes     int            `json:"ccmPhysicianMinutes"`
}

type SkippedPatient struct {
	PatientId string `json:"patientId"`
	Reason    string `json:"reason"`
}

type ClinicBillingReport struct {
	ClinicId string                   `json:"clinicId"`
	Period   Period                   `json:"period"`
	Totals   ReportTotals             `json:"totals"`
	Patients []*PatientBillingSummary `json:"patients"`
	Skipped  []SkippedPatient         `json:"skipped,omitempty"`
}

type Reports interface {
	// GetClinicReport builds a billing summary for every actively enrolled
	// patient of the clinic over a single resolved period and aggregates
	// the clinic-wide totals. The caller must hold an elevated clinic role.
	GetClinicReport(ctx context.Context, clinicianId string, clinicId string, from *time.Time, to *time.Time) (*ClinicBillingReport, error)
}

type ReportsParams struct {
	fx.In

	Config     *ReportConfig
	Clinics    clinics.Service
	Clinicians clinicians.Service
	Patients   patients.Service
	Summaries  Summaries
	Logger     *zap.SugaredLogger
}

func NewReports(p ReportsParams) (Reports, error) {
	return &reports{
		config:     p.Config,
		clinics:    p.Clinics,
		clinicians: p.Clinicians,
		patients:   p.Patients,
		summaries:  p.Summaries,
		logger:     p.Logger,
		now:        time.Now,
	}, nil
}

type reports struct {
	config     *ReportConfig
	clinics    clinics.Service
	clinicians clinicians.Service
	patients   patients.Service
	summaries  Summaries
	logger     *zap.SugaredLogger
	now        func() time.Time
}

func (r *reports) GetClinicReport(ctx context.Context, clinicianId string, clinicId string, from *time.Time, to *time.Time) (*ClinicBillingReport, error) {
	clinician, err := r.clinicians.Get(ctx, clinicId, clinicianId)
	if err != nil {
		// The response must not reveal whether the clinic exists.
		if errors.Is(err, internalErrs.NotFound) {
			return nil, internalErrs.NotAuthorized
		}
		return nil, err
	}
	if !clinician.IsAdmin() {
		return nil, internalErrs.NotAuthorized
	}

	clinic, err := r.clinics.Get(ctx, clinicId)
	if err != nil {
		return nil, err
	}
	loc, err := clinic.Location()
	if err != nil {
		return nil, err
	}

	// Resolved once so every patient in the report is measured against the
	// identical window.
	period, err := ResolvePeriod(from, to, loc, r.now())
	if err != nil {
		return nil, err
	}

	listed, err := r.patients.ListActive(ctx, clinicId)
	if err != nil {
		return nil, err
	}

	// The listing queries by status, but the projection can lag a discharge;
	// drop any record that is no longer active.
	active := make([]*patients.Patient, 0, len(listed))
	for _, patient := range listed {
		if patient.IsActive() {
			active = append(active, patient)
		}
	}

	// Per-patient computation has no cross-patient dependency; fan out over
	// a bounded pool and keep results in patient-list order so the report
	// is deterministic.
	built := make([]*PatientBillingSummary, len(active))
	failed := make([]error, len(active))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.config.MaxConcurrency)
	for i, patient := range active {
		i, patient := i, patient
		group.Go(func() error {
			summary, err := r.summaries.BuildSummary(groupCtx, patient, loc, period)
			if err != nil {
				if r.config.FailurePolicy == FailurePolicyAbort {
					return err
				}
				failed[i] = err
				return nil
			}
			built[i] = summary
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	report := &ClinicBillingReport{
		ClinicId: clinicId,
		Period:   period,
		Patients: make([]*PatientBillingSummary, 0, len(active)),
		Totals: ReportTotals{
			PatientsEligibleByCode: newCodeCounts(),
		},
	}
	for i, patient := range active {
		if err := failed[i]; err != nil {
			patientId := pointer.ToString(patient.UserId)
			r.logger.Warnw("skipping patient in clinic billing report",
				"clinicId", clinicId,
				"patientId", patientId,
				"incidentId", uuid.NewString(),
				zap.Error(err),
			)
			report.Skipped = append(report.Skipped, SkippedPatient{
				PatientId: patientId,
				Reason:    "computation failed",
			})
			continue
		}
		report.addPatient(built[i])
	}

	return report, nil
}

func (r *ClinicBillingReport) addPatient(summary *PatientBillingSummary) {
	r.Patients = append(r.Patients, summary)
	r.Totals.TotalPatients++
	if summary.DeviceTransmission.TotalDays > 0 {
		r.Totals.PatientsWithDeviceData++
	}
	// A patient counts once per code regardless of unit multiplicity.
	seen := map[string]struct{}{}
	for _, code := range summary.EligibleCodes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		r.Totals.PatientsEligibleByCode[code]++
	}
	r.Totals.RpmMinutes += summary.Time.RpmMinutes
	r.Totals.CcmClinicalStaffMinutes += summary.Time.CcmClinicalStaffMinutes
	r.Totals.CcmPhysicianMinutes += summary.Time.CcmPhysicianMinutes
}

func newCodeCounts() map[string]int {
	counts := make(map[string]int, len(codeTable))
	for _, code := range Codes() {
		counts[code] = 0
	}
	return counts
}
