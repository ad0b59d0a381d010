package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/labstack/echo/v4"
	"go.uber.org/mock/gomock"

	"github.com/carelink-org/rpm/api"
	"github.com/carelink-org/rpm/billing"
	billingTest "github.com/carelink-org/rpm/billing/test"
	"github.com/carelink-org/rpm/errors"
)

var _ = Describe("Handler", func() {
	const clinicianId = "clinician-user-id"
	const patientId = "1234567890"
	const clinicId = "60d1dc0eac5285d45bef8c36"

	var ctrl *gomock.Controller
	var summaries *billingTest.MockSummaries
	var reports *billingTest.MockReports
	var handler *api.Handler
	var e *echo.Echo

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		summaries = billingTest.NewMockSummaries(ctrl)
		reports = billingTest.NewMockReports(ctrl)
		handler = api.NewHandler(api.Params{
			Summaries: summaries,
			Reports:   reports,
		})
		e = echo.New()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	newContext := func(target string, subjectId string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if subjectId != "" {
			req.Header.Set("x-auth-subject-id", subjectId)
		}
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	Describe("GetPatientBillingSummary", func() {
		It("fails without an authenticated subject", func() {
			c, _ := newContext("/v1/patients/"+patientId+"/billing-summary", "")
			c.SetParamNames("patientId")
			c.SetParamValues(patientId)

			err := handler.GetPatientBillingSummary(c)
			Expect(err).To(MatchError(errors.NotAuthorized))
		})

		It("rejects malformed period parameters", func() {
			c, _ := newContext("/v1/patients/"+patientId+"/billing-summary?from=yesterday", clinicianId)
			c.SetParamNames("patientId")
			c.SetParamValues(patientId)

			err := handler.GetPatientBillingSummary(c)
			Expect(err).To(MatchError(errors.BadRequest))
		})

		It("passes the parsed window to the billing service", func() {
			from := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
			to := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
			summary := &billing.PatientBillingSummary{
				PatientId:          patientId,
				Period:             billing.Period{Start: from, End: to},
				DeviceTransmission: &billing.DeviceTransmissionSummary{},
				Time:               &billing.TimeSummary{},
				EligibleCodes:      []string{},
			}

			summaries.EXPECT().
				GetPatientSummary(gomock.Any(), clinicianId, patientId, &from, &to).
				Return(summary, nil)

			c, rec := newContext(
				"/v1/patients/"+patientId+"/billing-summary?from=2024-07-01T00:00:00Z&to=2024-08-01T00:00:00Z",
				clinicianId,
			)
			c.SetParamNames("patientId")
			c.SetParamValues(patientId)

			Expect(handler.GetPatientBillingSummary(c)).To(Succeed())
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := &billing.PatientBillingSummary{}
			Expect(json.Unmarshal(rec.Body.Bytes(), body)).To(Succeed())
			Expect(body.PatientId).To(Equal(patientId))
		})

		It("propagates authorization failures from the billing service", func() {
			summaries.EXPECT().
				GetPatientSummary(gomock.Any(), clinicianId, patientId, gomock.Any(), gomock.Any()).
				Return(nil, errors.NotAuthorized)

			c, _ := newContext("/v1/patients/"+patientId+"/billing-summary", clinicianId)
			c.SetParamNames("patientId")
			c.SetParamValues(patientId)

			err := handler.GetPatientBillingSummary(c)
			Expect(err).To(MatchError(errors.NotAuthorized))
		})
	})

	Describe("GetClinicBillingReport", func() {
		It("fails without an authenticated subject", func() {
			c, _ := newContext("/v1/clinics/"+clinicId+"/billing-report", "")
			c.SetParamNames("clinicId")
			c.SetParamValues(clinicId)

			err := handler.GetClinicBillingReport(c)
			Expect(err).To(MatchError(errors.NotAuthorized))
		})

		It("returns the report built by the billing service", func() {
			report := &billing.ClinicBillingReport{
				ClinicId: clinicId,
				Patients: []*billing.PatientBillingSummary{},
			}
			reports.EXPECT().
				GetClinicReport(gomock.Any(), clinicianId, clinicId, gomock.Nil(), gomock.Nil()).
				Return(report, nil)

			c, rec := newContext("/v1/clinics/"+clinicId+"/billing-report", clinicianId)
			c.SetParamNames("clinicId")
			c.SetParamValues(clinicId)

			Expect(handler.GetClinicBillingReport(c)).To(Succeed())
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := &billing.ClinicBillingReport{}
			Expect(json.Unmarshal(rec.Body.Bytes(), body)).To(Succeed())
			Expect(body.ClinicId).To(Equal(clinicId))
		})
	})
})
