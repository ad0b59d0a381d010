package billing_test

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/carelink-org/rpm/billing"
	billingTest "github.com/carelink-org/rpm/billing/test"
	"github.com/carelink-org/rpm/clinicians"
	cliniciansTest "github.com/carelink-org/rpm/clinicians/test"
	"github.com/carelink-org/rpm/clinics"
	clinicsTest "github.com/carelink-org/rpm/clinics/test"
	"github.com/carelink-org/rpm/errors"
	"github.com/carelink-org/rpm/patients"
	patientsTest "github.com/carelink-org/rpm/patients/test"
	"github.com/carelink-org/rpm/pointer"
)

var _ = Describe("Reports", func() {
	const clinicianId = "clinician-user-id"

	var ctrl *gomock.Controller
	var cliniciansService *cliniciansTest.MockService
	var clinicsService *clinicsTest.MockService
	var patientsService *patientsTest.MockService
	var summariesService *billingTest.MockSummaries
	var config *billing.ReportConfig

	var clinic clinics.Clinic
	var clinicId string
	var period billing.Period

	newReports := func() billing.Reports {
		reports, err := billing.NewReports(billing.ReportsParams{
			Config:     config,
			Clinics:    clinicsService,
			Clinicians: cliniciansService,
			Patients:   patientsService,
			Summaries:  summariesService,
			Logger:     zap.NewNop().Sugar(),
		})
		Expect(err).ToNot(HaveOccurred())
		return reports
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		cliniciansService = cliniciansTest.NewMockService(ctrl)
		clinicsService = clinicsTest.NewMockService(ctrl)
		patientsService = patientsTest.NewMockService(ctrl)
		summariesService = billingTest.NewMockSummaries(ctrl)
		config = &billing.ReportConfig{
			FailurePolicy:  billing.FailurePolicySkip,
			MaxConcurrency: 4,
		}

		clinic = clinicsTest.RandomClinic()
		clinicId = clinic.Id.Hex()
		period = billing.Period{
			Start: time.Date(2024, time.August, 1, 4, 0, 0, 0, time.UTC),
			End:   time.Date(2024, time.September, 1, 4, 0, 0, 0, time.UTC),
		}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	expectAdmin := func() {
		clinician := cliniciansTest.RandomClinician(clinicians.ClinicAdmin)
		cliniciansService.EXPECT().
			Get(gomock.Any(), clinicId, clinicianId).
			Return(&clinician, nil)
	}

	summaryFor := func(patient *patients.Patient, deviceDays int, times *billing.TimeSummary) *billing.PatientBillingSummary {
		device := &billing.DeviceTransmissionSummary{
			TotalDays:     deviceDays,
			Dates:         []string{},
			Eligible99454: deviceDays >= billing.DeviceDaysThreshold,
		}
		return &billing.PatientBillingSummary{
			PatientId:          pointer.ToString(patient.UserId),
			PatientName:        pointer.ToString(patient.FullName),
			Period:             period,
			DeviceTransmission: device,
			Time:               times,
			EligibleCodes:      billing.EvaluateCodes(device, times),
		}
	}

	It("fails when the caller is not a member of the clinic", func() {
		cliniciansService.EXPECT().
			Get(gomock.Any(), clinicId, clinicianId).
			Return(nil, clinicians.ErrNotFound)

		_, err := newReports().GetClinicReport(context.Background(), clinicianId, clinicId, &period.Start, &period.End)
		Expect(err).To(MatchError(errors.NotAuthorized))
	})

	It("fails when the caller is not a clinic admin", func() {
		clinician := cliniciansTest.RandomClinician()
		cliniciansService.EXPECT().
			Get(gomock.Any(), clinicId, clinicianId).
			Return(&clinician, nil)

		_, err := newReports().GetClinicReport(context.Background(), clinicianId, clinicId, &period.Start, &period.End)
		Expect(err).To(MatchError(errors.NotAuthorized))
	})

	It("aggregates clinic-wide totals over every active patient", func() {
		expectAdmin()
		clinicsService.EXPECT().Get(gomock.Any(), clinicId).Return(&clinic, nil)

		first := patientsTest.RandomPatient()
		second := patientsTest.RandomPatient()
		patientsService.EXPECT().
			ListActive(gomock.Any(), clinicId).
			Return([]*patients.Patient{&first, &second}, nil)

		firstSummary := summaryFor(&first, 18, &billing.TimeSummary{
			RpmMinutes:              61,
			CcmClinicalStaffMinutes: 20,
			Eligible99457:           true,
			Eligible99458Count:      2,
			Eligible99490:           true,
		})
		secondSummary := summaryFor(&second, 0, &billing.TimeSummary{
			RpmMinutes:          30,
			CcmPhysicianMinutes: 30,
			Eligible99457:       true,
			Eligible99491:       true,
		})
		summariesService.EXPECT().
			BuildSummary(gomock.Any(), &first, gomock.Any(), period).
			Return(firstSummary, nil)
		summariesService.EXPECT().
			BuildSummary(gomock.Any(), &second, gomock.Any(), period).
			Return(secondSummary, nil)

		report, err := newReports().GetClinicReport(context.Background(), clinicianId, clinicId, &period.Start, &period.End)
		Expect(err).ToNot(HaveOccurred())
		Expect(report.ClinicId).To(Equal(clinicId))
		Expect(report.Period).To(Equal(period))
		Expect(report.Patients).To(Equal([]*billing.PatientBillingSummary{firstSummary, secondSummary}))
		Expect(report.Skipped).To(BeEmpty())

		Expect(report.Totals.TotalPatients).To(Equal(2))
		Expect(report.Totals.PatientsWithDeviceData).To(Equal(1))
		Expect(report.Totals.RpmMinutes).To(Equal(91))
		Expect(report.Totals.CcmClinicalStaffMinutes).To(Equal(20))
		Expect(report.Totals.CcmPhysicianMinutes).To(Equal(30))
		// A patient counts once per code regardless of 99458 multiplicity
		Expect(report.Totals.PatientsEligibleByCode).To(Equal(map[string]int{
			billing.Code99454: 1,
			billing.Code99457: 2,
			billing.Code99458: 1,
			billing.Code99490: 1,
			billing.Code99491: 1,
		}))
	})

	It("excludes patients that are no longer active", func() {
		expectAdmin()
		clinicsService.EXPECT().Get(gomock.Any(), clinicId).Return(&clinic, nil)

		active := patientsTest.RandomPatient()
		discharged := patientsTest.RandomPatient()
		discharged.Status = pointer.FromAny(patients.StatusDischarged)
		patientsService.EXPECT().
			ListActive(gomock.Any(), clinicId).
			Return([]*patients.Patient{&active, &discharged}, nil)

		summary := summaryFor(&active, 16, &billing.TimeSummary{RpmMinutes: 20, Eligible99457: true})
		summariesService.EXPECT().
			BuildSummary(gomock.Any(), &active, gomock.Any(), period).
			Return(summary, nil)

		report, err := newReports().GetClinicReport(context.Background(), clinicianId, clinicId, &period.Start, &period.End)
		Expect(err).ToNot(HaveOccurred())
		Expect(report.Patients).To(Equal([]*billing.PatientBillingSummary{summary}))
		Expect(report.Totals.TotalPatients).To(Equal(1))
	})

	It("yields byte-identical output for unchanged source data", func() {
		expectAdmin()
		expectAdmin()
		clinicsService.EXPECT().Get(gomock.Any(), clinicId).Return(&clinic, nil).Times(2)

		first := patientsTest.RandomPatient()
		second := patientsTest.RandomPatient()
		patientsService.EXPECT().
			ListActive(gomock.Any(), clinicId).
			Return([]*patients.Patient{&first, &second}, nil).
			Times(2)

		firstSummary := summaryFor(&first, 18, &billing.TimeSummary{RpmMinutes: 45, Eligible99457: true, Eligible99458Count: 1})
		summariesService.EXPECT().
			BuildSummary(gomock.Any(), &first, gomock.Any(), period).
			Return(firstSummary, nil).
			Times(2)
		// The second patient's data anomaly persists across both runs
		summariesService.EXPECT().
			BuildSummary(gomock.Any(), &second, gomock.Any(), period).
			Return(nil, fmt.Errorf("%w: connection reset", errors.UpstreamReadFailure)).
			Times(2)

		reports := newReports()
		firstReport, err := reports.GetClinicReport(context.Background(), clinicianId, clinicId, &period.Start, &period.End)
		Expect(err).ToNot(HaveOccurred())
		secondReport, err := reports.GetClinicReport(context.Background(), clinicianId, clinicId, &period.Start, &period.End)
		Expect(err).ToNot(HaveOccurred())

		firstBody, err := json.Marshal(firstReport)
		Expect(err).ToNot(HaveOccurred())
		secondBody, err := json.Marshal(secondReport)
		Expect(err).ToNot(HaveOccurred())
		Expect(firstBody).To(Equal(secondBody))
	})

	It("flags and skips patients whose computation fails", func() {
		expectAdmin()
		clinicsService.EXPECT().Get(gomock.Any(), clinicId).Return(&clinic, nil)

		first := patientsTest.RandomPatient()
		second := patientsTest.RandomPatient()
		third := patientsTest.RandomPatient()
		patientsService.EXPECT().
			ListActive(gomock.Any(), clinicId).
			Return([]*patients.Patient{&first, &second, &third}, nil)

		firstSummary := summaryFor(&first, 16, &billing.TimeSummary{RpmMinutes: 20, Eligible99457: true})
		thirdSummary := summaryFor(&third, 2, &billing.TimeSummary{RpmMinutes: 5})
		summariesService.EXPECT().
			BuildSummary(gomock.Any(), &first, gomock.Any(), period).
			Return(firstSummary, nil)
		summariesService.EXPECT().
			BuildSummary(gomock.Any(), &second, gomock.Any(), period).
			Return(nil, fmt.Errorf("%w: connection reset", errors.UpstreamReadFailure))
		summariesService.EXPECT().
			BuildSummary(gomock.Any(), &third, gomock.Any(), period).
			Return(thirdSummary, nil)

		report, err := newReports().GetClinicReport(context.Background(), clinicianId, clinicId, &period.Start, &period.End)
		Expect(err).ToNot(HaveOccurred())
		Expect(report.Patients).To(Equal([]*billing.PatientBillingSummary{firstSummary, thirdSummary}))
		Expect(report.Skipped).To(Equal([]billing.SkippedPatient{
			{PatientId: pointer.ToString(second.UserId), Reason: "computation failed"},
		}))
		Expect(report.Totals.TotalPatients).To(Equal(2))
	})

	It("aborts the whole report when configured to", func() {
		config.FailurePolicy = billing.FailurePolicyAbort

		expectAdmin()
		clinicsService.EXPECT().Get(gomock.Any(), clinicId).Return(&clinic, nil)

		first := patientsTest.RandomPatient()
		second := patientsTest.RandomPatient()
		patientsService.EXPECT().
			ListActive(gomock.Any(), clinicId).
			Return([]*patients.Patient{&first, &second}, nil)

		summariesService.EXPECT().
			BuildSummary(gomock.Any(), &first, gomock.Any(), period).
			Return(nil, fmt.Errorf("%w: connection reset", errors.UpstreamReadFailure))
		summariesService.EXPECT().
			BuildSummary(gomock.Any(), &second, gomock.Any(), period).
			Return(summaryFor(&second, 0, &billing.TimeSummary{}), nil).
			AnyTimes()

		_, err := newReports().GetClinicReport(context.Background(), clinicianId, clinicId, &period.Start, &period.End)
		Expect(err).To(MatchError(errors.UpstreamReadFailure))
	})

	It("returns an empty report for a clinic with no active patients", func() {
		expectAdmin()
		clinicsService.EXPECT().Get(gomock.Any(), clinicId).Return(&clinic, nil)
		patientsService.EXPECT().
			ListActive(gomock.Any(), clinicId).
			Return(nil, nil)

		report, err := newReports().GetClinicReport(context.Background(), clinicianId, clinicId, &period.Start, &period.End)
		Expect(err).ToNot(HaveOccurred())
		Expect(report.Patients).To(BeEmpty())
		Expect(report.Totals.TotalPatients).To(Equal(0))
		Expect(report.Totals.PatientsEligibleByCode).To(HaveLen(5))
	})
})
