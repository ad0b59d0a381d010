package test

import (
	"time"

	"github.com/carelink-org/rpm/patients"
	"github.com/carelink-org/rpm/pointer"
	"github.com/carelink-org/rpm/test"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func RandomPatient() patients.Patient {
	clinicId := primitive.NewObjectID()
	return patients.Patient{
		ClinicId:  &clinicId,
		UserId:    pointer.FromAny(test.Faker.UUID().V4()),
		BirthDate: pointer.FromAny(test.Faker.Time().ISO8601(time.Now())[:10]),
		Email:     pointer.FromAny(test.Faker.Internet().Email()),
		FullName:  pointer.FromAny(test.Faker.Person().Name()),
		Mrn:       pointer.FromAny(test.Faker.UUID().V4()),
		Status:    pointer.FromAny(patients.StatusActive),
	}
}
