package billing

import (
	"context"
	"sort"
	"time"

	"github.com/carelink-org/rpm/measurements"
	mapset "github.com/deckarep/golang-set/v2"
)

// A patient qualifies for CPT 99454 when a device transmitted measurements
// on at least this many distinct clinic-local calendar days in the period.
const DeviceDaysThreshold = 16

type DeviceTransmissionSummary struct {
	TotalDays     int      `json:"totalDays"`
	Dates         []string `json:"dates"`
	Eligible99454 bool     `json:"eligible99454"`
}

type DeviceDayCounter struct {
	measurements measurements.Repository
}

func NewDeviceDayCounter(repo measurements.Repository) (*DeviceDayCounter, error) {
	return &DeviceDayCounter{
		measurements: repo,
	}, nil
}

// Summarize counts the distinct clinic-local calendar days on which a
// device transmitted at least one measurement. Multiple transmissions on
// the same local day collapse to one; manually entered measurements never
// count. Days are bucketed in the clinic's timezone, not UTC, so two
// readings either side of local midnight land on different days.
func (c *DeviceDayCounter) Summarize(ctx context.Context, patientId string, period Period, loc *time.Location) (*DeviceTransmissionSummary, error) {
	records, err := c.measurements.List(ctx, patientId, period.Start, period.End)
	if err != nil {
		return nil, err
	}

	days := mapset.NewThreadUnsafeSet[string]()
	for _, record := range records {
		if !record.IsDeviceTransmitted() {
			continue
		}
		days.Add(record.Timestamp.In(loc).Format(DateLayout))
	}

	dates := days.ToSlice()
	sort.Strings(dates)

	return &DeviceTransmissionSummary{
		TotalDays:     len(dates),
		Dates:         dates,
		Eligible99454: len(dates) >= DeviceDaysThreshold,
	}, nil
}
