package test

import (
	"github.com/carelink-org/rpm/timeentries"
)

func Entry(patientId string, entryDate string, minutes int, activityType string, performerType string) *timeentries.TimeEntry {
	return &timeentries.TimeEntry{
		PatientId:       patientId,
		EntryDate:       entryDate,
		DurationMinutes: minutes,
		ActivityType:    activityType,
		PerformerType:   performerType,
	}
}
