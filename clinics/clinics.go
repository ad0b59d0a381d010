package clinics

import (
	"context"
	"fmt"
	"time"

	"github.com/carelink-org/rpm/errors"
	"github.com/carelink-org/rpm/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = fmt.Errorf("clinic %w", errors.NotFound)

// DefaultTimezone is used when a clinic was created without an explicit
// timezone. Billing windows and device-day deduplication are always
// computed against the clinic's local calendar.
const DefaultTimezone = "UTC"

type Service interface {
	Get(ctx context.Context, id string) (*Clinic, error)
	List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Clinic, error)
}

type Clinic struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty"`
	Name        *string             `bson:"name,omitempty"`
	Timezone    *string             `bson:"timezone,omitempty"`
	Address     *string             `bson:"address,omitempty"`
	City        *string             `bson:"city,omitempty"`
	Country     *string             `bson:"country,omitempty"`
	PostalCode  *string             `bson:"postalCode,omitempty"`
	State       *string             `bson:"state,omitempty"`
	PhoneNumber *string             `bson:"phoneNumber,omitempty"`
	CreatedTime *time.Time          `bson:"createdTime,omitempty"`
	UpdatedTime *time.Time          `bson:"updatedTime,omitempty"`
}

type Filter struct {
	Ids []string
}

// Location resolves the clinic's IANA timezone.
func (c *Clinic) Location() (*time.Location, error) {
	tz := DefaultTimezone
	if c.Timezone != nil && *c.Timezone != "" {
		tz = *c.Timezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("clinic has invalid timezone %q: %w", tz, err)
	}
	return loc, nil
}
