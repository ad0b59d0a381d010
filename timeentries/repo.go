package timeentries

import (
	"context"
	"fmt"

	"github.com/carelink-org/rpm/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	timeEntriesCollectionName = "timeEntries"
)

//go:generate mockgen --build_flags=--mod=mod -source=./timeentries.go -destination=./test/mock_repository.go -package test MockRepository

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(timeEntriesCollectionName),
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
				{Key: "entryDate", Value: 1},
			},
			Options: options.Index().
				SetName("TimeEntriesByPatientDate"),
		},
	})
	return err
}

func (r *repository) List(ctx context.Context, patientId string, fromDate string, toDate string) ([]*TimeEntry, error) {
	selector := bson.M{
		"patientId": patientId,
		"entryDate": bson.M{
			"$gte": fromDate,
			"$lt":  toDate,
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "entryDate", Value: 1}})

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: error listing time entries: %s", errors.UpstreamReadFailure, err)
	}

	var result []*TimeEntry
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%w: error decoding time entries: %s", errors.UpstreamReadFailure, err)
	}

	return result, nil
}
