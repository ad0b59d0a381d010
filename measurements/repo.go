package measurements

import (
	"context"
	"fmt"
	"time"

	"github.com/carelink-org/rpm/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	measurementsCollectionName = "measurements"
)

//go:generate mockgen --build_flags=--mod=mod -source=./measurements.go -destination=./test/mock_repository.go -package test MockRepository

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(measurementsCollectionName),
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
				{Key: "patientId", Value: 1},
				{Key: "timestamp", Value: 1},
			},
			Options: options.Index().
				SetName("MeasurementsByPatientTime"),
		},
	})
	return err
}

// List returns all measurements for the patient with timestamp in [from, to).
func (r *repository) List(ctx context.Context, patientId string, from time.Time, to time.Time) ([]*Measurement, error) {
	selector := bson.M{
		"patientId": patientId,
		"timestamp": bson.M{
			"$gte": from,
			"$lt":  to,
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: error listing measurements: %s", errors.UpstreamReadFailure, err)
	}

	var result []*Measurement
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%w: error decoding measurements: %s", errors.UpstreamReadFailure, err)
	}

	return result, nil
}
