package enrollments

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	enrollmentsCollectionName = "enrollments"
)

//go:generate mockgen --build_flags=--mod=mod -source=./enrollments.go -destination=./test/mock_service.go -package test MockService

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(enrollmentsCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "clinicianId", Value: 1},
				{Key: "patientId", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index().
				SetName("EnrollmentByCareTeam"),
		},
	})
	return err
}

func (r *repository) HasActiveEnrollment(ctx context.Context, clinicianId string, patientId string) (bool, error) {
	selector := bson.M{
		"clinicianId": clinicianId,
		"patientId":   patientId,
		"status":      StatusActive,
	}

	err := r.collection.FindOne(ctx, selector).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("error getting enrollment: %w", err)
	}

	return true, nil
}
