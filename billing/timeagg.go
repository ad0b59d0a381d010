package billing

import (
	"context"
	"time"

	"github.com/carelink-org/rpm/timeentries"
)

// Reimbursement time thresholds, in minutes.
const (
	RpmTimeThreshold          = 20 // 99457: first 20 minutes of RPM time
	RpmAdditionalBlockMinutes = 20 // 99458: each additional complete block
	CcmClinicalStaffThreshold = 20 // 99490
	CcmPhysicianThreshold     = 30 // 99491
)

// ccmActivities is the fixed subset of activity types that counts toward
// chronic care management time. Every activity type counts toward RPM time.
var ccmActivities = map[string]struct{}{
	timeentries.ActivityCarePlanUpdate: {},
	timeentries.ActivityCoordination:   {},
	timeentries.ActivityPhoneCall:      {},
}

type TimeSummary struct {
	TotalMinutes            int            `json:"totalMinutes"`
	ByActivity              map[string]int `json:"byActivity"`
	RpmMinutes              int            `json:"rpmMinutes"`
	CcmClinicalStaffMinutes int            `json:"ccmClinicalStaffMinutes"`
	CcmPhysicianMinutes     int            `json:"ccmPhysicianMinutes"`
	Eligible99457           bool           `json:"eligible99457"`
	Eligible99458Count      int            `json:"eligible99458Count"`
	Eligible99490           bool           `json:"eligible99490"`
	Eligible99491           bool           `json:"eligible99491"`
}

type TimeAggregator struct {
	timeEntries timeentries.Repository
}

func NewTimeAggregator(repo timeentries.Repository) (*TimeAggregator, error) {
	return &TimeAggregator{
		timeEntries: repo,
	}, nil
}

// Summarize buckets the clinician minutes logged for the patient in the
// period by activity type and derives the RPM and CCM category totals with
// their threshold flags. 99458 counts additional complete 20-minute blocks
// beyond the first 20; a partial block never counts.
func (a *TimeAggregator) Summarize(ctx context.Context, patientId string, period Period, loc *time.Location) (*TimeSummary, error) {
	fromDate, toDate := period.LocalDateRange(loc)
	entries, err := a.timeEntries.List(ctx, patientId, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	summary := &TimeSummary{
		ByActivity: map[string]int{},
	}
	for _, entry := range entries {
		summary.TotalMinutes += entry.DurationMinutes
		summary.ByActivity[entry.ActivityType] += entry.DurationMinutes

		if _, ok := ccmActivities[entry.ActivityType]; ok {
			switch entry.PerformerType {
			case timeentries.PerformerClinicalStaff:
				summary.CcmClinicalStaffMinutes += entry.DurationMinutes
			case timeentries.PerformerPhysician:
				summary.CcmPhysicianMinutes += entry.DurationMinutes
			}
		}
	}

	summary.RpmMinutes = summary.TotalMinutes
	summary.Eligible99457 = summary.RpmMinutes >= RpmTimeThreshold
	if summary.Eligible99457 {
		summary.Eligible99458Count = (summary.RpmMinutes - RpmTimeThreshold) / RpmAdditionalBlockMinutes
	}
	summary.Eligible99490 = summary.CcmClinicalStaffMinutes >= CcmClinicalStaffThreshold
	summary.Eligible99491 = summary.CcmPhysicianMinutes >= CcmPhysicianThreshold

	return summary, nil
}
