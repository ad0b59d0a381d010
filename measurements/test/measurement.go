package test

import (
	"time"

	"github.com/carelink-org/rpm/measurements"
	"github.com/carelink-org/rpm/test"
)

var deviceVendors = []string{"terra", "withings", "dexcom", "omron"}

func DeviceMeasurement(patientId string, timestamp time.Time) *measurements.Measurement {
	return &measurements.Measurement{
		PatientId: patientId,
		Timestamp: timestamp,
		Source:    test.Choice(deviceVendors),
	}
}

func ManualMeasurement(patientId string, timestamp time.Time) *measurements.Measurement {
	return &measurements.Measurement{
		PatientId: patientId,
		Timestamp: timestamp,
		Source:    measurements.SourceManual,
	}
}
