package clinicians

import (
	"context"
	"fmt"

	"github.com/carelink-org/rpm/errors"
	"github.com/carelink-org/rpm/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound = fmt.Errorf("clinician %w", errors.NotFound)

	ClinicAdmin = "CLINIC_ADMIN"
	ClinicOwner = "CLINIC_OWNER"
)

type Service interface {
	Get(ctx context.Context, clinicId string, clinicianId string) (*Clinician, error)
	List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Clinician, error)
}

type Clinician struct {
	Id       *primitive.ObjectID `bson:"_id,omitempty"`
	ClinicId *primitive.ObjectID `bson:"clinicId,omitempty"`
	UserId   *string             `bson:"userId,omitempty"`
	Email    *string             `bson:"email,omitempty"`
	Name     *string             `bson:"name"`
	Roles    []string            `bson:"roles"`
}

type Filter struct {
	ClinicId *string
	UserId   *string
}

func (c *Clinician) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the clinician holds an elevated clinic role.
func (c *Clinician) IsAdmin() bool {
	return c.HasRole(ClinicAdmin) || c.HasRole(ClinicOwner)
}
