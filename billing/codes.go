package billing

// CPT procedure codes this engine can mark billable.
const (
	Code99454 = "99454" // RPM device supply, >=16 transmission days
	Code99457 = "99457" // RPM treatment management, first 20 minutes
	Code99458 = "99458" // RPM treatment management, each additional 20 minutes
	Code99490 = "99490" // CCM clinical staff, first 20 minutes
	Code99491 = "99491" // CCM physician, first 30 minutes
)

type codeEntry struct {
	code         string
	multiplicity func(device *DeviceTransmissionSummary, times *TimeSummary) int
}

// codeTable holds every billable code in evaluation order: RPM device codes
// first, then RPM time codes, then CCM codes. Adding or adjusting a code is
// a table change; aggregation is untouched.
var codeTable = []codeEntry{
	{Code99454, func(d *DeviceTransmissionSummary, _ *TimeSummary) int { return unit(d.Eligible99454) }},
	{Code99457, func(_ *DeviceTransmissionSummary, t *TimeSummary) int { return unit(t.Eligible99457) }},
	{Code99458, func(_ *DeviceTransmissionSummary, t *TimeSummary) int { return t.Eligible99458Count }},
	{Code99490, func(_ *DeviceTransmissionSummary, t *TimeSummary) int { return unit(t.Eligible99490) }},
	{Code99491, func(_ *DeviceTransmissionSummary, t *TimeSummary) int { return unit(t.Eligible99491) }},
}

// EvaluateCodes maps the two summaries to the ordered list of billable
// codes. A code appears once per billable unit, so consumers can render
// multiplicity (e.g. "99458 x2") by counting occurrences.
func EvaluateCodes(device *DeviceTransmissionSummary, times *TimeSummary) []string {
	codes := make([]string, 0, len(codeTable))
	for _, entry := range codeTable {
		for i := 0; i < entry.multiplicity(device, times); i++ {
			codes = append(codes, entry.code)
		}
	}
	return codes
}

// Codes returns every known code, in evaluation order.
func Codes() []string {
	codes := make([]string, 0, len(codeTable))
	for _, entry := range codeTable {
		codes = append(codes, entry.code)
	}
	return codes
}

func unit(eligible bool) int {
	if eligible {
		return 1
	}
	return 0
}
