package clinicians

import (
	"context"
	"fmt"

	"github.com/carelink-org/rpm/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	cliniciansCollectionName = "clinicians"
)

//go:generate mockgen --build_flags=--mod=mod -source=./clinicians.go -destination=./test/mock_service.go -package test MockService

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(cliniciansCollectionName),
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
				{Key: "clinicId", Value: 1},
				{Key: "userId", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueClinician"),
		},
	})
	return err
}

func (r *repository) Get(ctx context.Context, clinicId string, clinicianId string) (*Clinician, error) {
	clinicObjId, err := primitive.ObjectIDFromHex(clinicId)
	if err != nil {
		return nil, ErrNotFound
	}
	selector := bson.M{
		"clinicId": clinicObjId,
		"userId":   clinicianId,
	}

	clinician := &Clinician{}
	err = r.collection.FindOne(ctx, selector).Decode(&clinician)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error getting clinician: %w", err)
	}

	return clinician, nil
}

func (r *repository) List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Clinician, error) {
	selector := bson.M{}
	if filter.ClinicId != nil {
		clinicObjId, _ := primitive.ObjectIDFromHex(*filter.ClinicId)
		selector["clinicId"] = clinicObjId
	}
	if filter.UserId != nil {
		selector["userId"] = filter.UserId
	}
	opts := options.Find().
		SetSkip(int64(pagination.Offset)).
		SetLimit(int64(pagination.Limit))

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing clinicians: %w", err)
	}

	var clinicians []*Clinician
	if err = cursor.All(ctx, &clinicians); err != nil {
		return nil, fmt.Errorf("error decoding clinicians list: %w", err)
	}

	return clinicians, nil
}
