package billing_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/carelink-org/rpm/billing"
	"github.com/carelink-org/rpm/timeentries"
	timeentriesTest "github.com/carelink-org/rpm/timeentries/test"
)

var _ = Describe("TimeAggregator", func() {
	const patientId = "1234567890"

	var ctrl *gomock.Controller
	var repo *timeentriesTest.MockRepository
	var aggregator *billing.TimeAggregator
	var loc *time.Location
	var period billing.Period

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		repo = timeentriesTest.NewMockRepository(ctrl)

		var err error
		aggregator, err = billing.NewTimeAggregator(repo)
		Expect(err).ToNot(HaveOccurred())

		loc, err = time.LoadLocation("America/New_York")
		Expect(err).ToNot(HaveOccurred())

		period = billing.Period{
			Start: time.Date(2024, time.August, 1, 4, 0, 0, 0, time.UTC),
			End:   time.Date(2024, time.September, 1, 4, 0, 0, 0, time.UTC),
		}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	returnEntries := func(entries ...*timeentries.TimeEntry) {
		repo.EXPECT().
			List(gomock.Any(), patientId, "2024-08-01", "2024-09-01").
			Return(entries, nil)
	}

	summarize := func() *billing.TimeSummary {
		summary, err := aggregator.Summarize(context.Background(), patientId, period, loc)
		Expect(err).ToNot(HaveOccurred())
		return summary
	}

	It("returns a zero summary when no time was logged", func() {
		returnEntries()

		summary := summarize()
		Expect(summary.TotalMinutes).To(Equal(0))
		Expect(summary.ByActivity).To(BeEmpty())
		Expect(summary.Eligible99457).To(BeFalse())
		Expect(summary.Eligible99458Count).To(Equal(0))
		Expect(summary.Eligible99490).To(BeFalse())
		Expect(summary.Eligible99491).To(BeFalse())
	})

	It("buckets minutes by activity type", func() {
		returnEntries(
			timeentriesTest.Entry(patientId, "2024-08-02", 10, timeentries.ActivityPatientReview, timeentries.PerformerClinicalStaff),
			timeentriesTest.Entry(patientId, "2024-08-09", 5, timeentries.ActivityPatientReview, timeentries.PerformerClinicalStaff),
			timeentriesTest.Entry(patientId, "2024-08-12", 15, timeentries.ActivityPhoneCall, timeentries.PerformerClinicalStaff),
		)

		summary := summarize()
		Expect(summary.TotalMinutes).To(Equal(30))
		Expect(summary.ByActivity).To(Equal(map[string]int{
			timeentries.ActivityPatientReview: 15,
			timeentries.ActivityPhoneCall:     15,
		}))
	})

	DescribeTable("99457 and 99458 follow total RPM minutes",
		func(minutes int, eligible99457 bool, count99458 int) {
			returnEntries(
				timeentriesTest.Entry(patientId, "2024-08-02", minutes, timeentries.ActivityPatientReview, timeentries.PerformerClinicalStaff),
			)

			summary := summarize()
			Expect(summary.RpmMinutes).To(Equal(minutes))
			Expect(summary.Eligible99457).To(Equal(eligible99457))
			Expect(summary.Eligible99458Count).To(Equal(count99458))
		},
		Entry("19 minutes falls short of 99457", 19, false, 0),
		Entry("20 minutes qualifies for 99457 only", 20, true, 0),
		Entry("39 minutes has no complete additional block", 39, true, 0),
		Entry("40 minutes earns one 99458 unit", 40, true, 1),
		Entry("61 minutes earns two 99458 units", 61, true, 2),
	)

	It("counts only care-management activities toward CCM time", func() {
		returnEntries(
			// Patient review counts toward RPM time only
			timeentriesTest.Entry(patientId, "2024-08-02", 25, timeentries.ActivityPatientReview, timeentries.PerformerClinicalStaff),
			timeentriesTest.Entry(patientId, "2024-08-05", 10, timeentries.ActivityCarePlanUpdate, timeentries.PerformerClinicalStaff),
			timeentriesTest.Entry(patientId, "2024-08-09", 10, timeentries.ActivityPhoneCall, timeentries.PerformerClinicalStaff),
		)

		summary := summarize()
		Expect(summary.RpmMinutes).To(Equal(45))
		Expect(summary.CcmClinicalStaffMinutes).To(Equal(20))
		Expect(summary.CcmPhysicianMinutes).To(Equal(0))
		Expect(summary.Eligible99490).To(BeTrue())
		Expect(summary.Eligible99491).To(BeFalse())
	})

	It("splits CCM time by performer", func() {
		returnEntries(
			timeentriesTest.Entry(patientId, "2024-08-02", 20, timeentries.ActivityCoordination, timeentries.PerformerPhysician),
			timeentriesTest.Entry(patientId, "2024-08-05", 10, timeentries.ActivityCarePlanUpdate, timeentries.PerformerPhysician),
			timeentriesTest.Entry(patientId, "2024-08-09", 15, timeentries.ActivityPhoneCall, timeentries.PerformerClinicalStaff),
		)

		summary := summarize()
		Expect(summary.CcmPhysicianMinutes).To(Equal(30))
		Expect(summary.CcmClinicalStaffMinutes).To(Equal(15))
		Expect(summary.Eligible99491).To(BeTrue())
		Expect(summary.Eligible99490).To(BeFalse())
	})

	It("requires thirty physician minutes for 99491", func() {
		returnEntries(
			timeentriesTest.Entry(patientId, "2024-08-02", 29, timeentries.ActivityCoordination, timeentries.PerformerPhysician),
		)

		summary := summarize()
		Expect(summary.CcmPhysicianMinutes).To(Equal(29))
		Expect(summary.Eligible99491).To(BeFalse())
	})
})
