package test

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

var (
	Faker  = faker.NewWithSeed(Source)
	Rand   = rand.New(Source)
	Source = rand.NewSource(ginkgo.GinkgoRandomSeed())
)

// Choice returns a random element of items, drawn from the suite's seeded
// source so failures reproduce with the same ginkgo seed.
func Choice[T any](items []T) T {
	return items[Rand.Intn(len(items))]
}
