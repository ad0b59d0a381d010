package test

import (
	"github.com/carelink-org/rpm/clinics"
	"github.com/carelink-org/rpm/pointer"
	"github.com/carelink-org/rpm/test"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func RandomClinic() clinics.Clinic {
	id := primitive.NewObjectID()
	return clinics.Clinic{
		Id:          &id,
		Name:        pointer.FromAny(test.Faker.Company().Name()),
		Timezone:    pointer.FromAny("America/New_York"),
		Address:     pointer.FromAny(test.Faker.Address().StreetAddress()),
		City:        pointer.FromAny(test.Faker.Address().City()),
		Country:     pointer.FromAny(test.Faker.Address().Country()),
		PostalCode:  pointer.FromAny(test.Faker.Address().PostCode()),
		State:       pointer.FromAny(test.Faker.Address().State()),
		PhoneNumber: pointer.FromAny(test.Faker.Phone().Number()),
	}
}
