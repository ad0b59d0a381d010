package clinics

import (
	"context"
	"fmt"

	"github.com/carelink-org/rpm/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	clinicsCollectionName = "clinics"
)

//go:generate mockgen --build_flags=--mod=mod -source=./clinics.go -destination=./test/mock_service.go -package test MockService

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database) (Repository, error) {
	repo := &repository{
		collection: db.Collection(clinicsCollectionName),
	}

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) Get(ctx context.Context, id string) (*Clinic, error) {
	clinicObjId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	selector := bson.M{
		"_id": clinicObjId,
	}

	clinic := &Clinic{}
	err = r.collection.FindOne(ctx, selector).Decode(&clinic)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error getting clinic: %w", err)
	}

	return clinic, nil
}

func (r *repository) List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Clinic, error) {
	selector := bson.M{}
	if len(filter.Ids) > 0 {
		selector["_id"] = bson.M{
			"$in": store.ObjectIDSFromStringArray(filter.Ids),
		}
	}
	opts := options.Find().
		SetSkip(int64(pagination.Offset)).
		SetLimit(int64(pagination.Limit))

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing clinics: %w", err)
	}

	var clinics []*Clinic
	if err = cursor.All(ctx, &clinics); err != nil {
		return nil, fmt.Errorf("error decoding clinics list: %w", err)
	}

	return clinics, nil
}
