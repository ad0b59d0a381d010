package test

import (
	"github.com/carelink-org/rpm/clinicians"
	"github.com/carelink-org/rpm/pointer"
	"github.com/carelink-org/rpm/test"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func RandomClinician(roles ...string) clinicians.Clinician {
	id := primitive.NewObjectID()
	clinicId := primitive.NewObjectID()
	return clinicians.Clinician{
		Id:       &id,
		ClinicId: &clinicId,
		UserId:   pointer.FromAny(test.Faker.UUID().V4()),
		Email:    pointer.FromAny(test.Faker.Internet().Email()),
		Name:     pointer.FromAny(test.Faker.Person().Name()),
		Roles:    roles,
	}
}
