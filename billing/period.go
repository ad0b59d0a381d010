package billing

import (
	"fmt"
	"time"

	"github.com/carelink-org/rpm/errors"
)

// DateLayout is how calendar dates are rendered in summaries.
const DateLayout = "2006-01-02"

// Period is a half-open [Start, End) instant interval. When defaulted it is
// aligned to the clinic's local calendar month and converted to UTC.
type Period struct {
	Start time.Time `json:"from"`
	End   time.Time `json:"to"`
}

// ResolvePeriod normalizes an optional billing window. An omitted start
// defaults to the beginning of the current month in the clinic's timezone;
// an omitted end defaults to now. The reference instant is injected so the
// resolution is a pure function of its inputs.
func ResolvePeriod(from *time.Time, to *time.Time, loc *time.Location, now time.Time) (Period, error) {
	period := Period{}
	if from != nil {
		period.Start = from.UTC()
	} else {
		local := now.In(loc)
		period.Start = time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc).UTC()
	}
	if to != nil {
		period.End = to.UTC()
	} else {
		period.End = now.UTC()
	}

	if !period.Start.Before(period.End) {
		return Period{}, fmt.Errorf("%w: from must be before to", errors.InvalidPeriod)
	}

	return period, nil
}

// LocalDateRange converts the period to an inclusive-from, exclusive-to
// pair of clinic-local calendar dates, for querying records that are
// attributed to local dates rather than instants.
func (p Period) LocalDateRange(loc *time.Location) (string, string) {
	fromDate := p.Start.In(loc).Format(DateLayout)

	end := p.End.In(loc)
	upper := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc)
	if upper.Before(end) {
		upper = upper.AddDate(0, 0, 1)
	}
	return fromDate, upper.Format(DateLayout)
}
