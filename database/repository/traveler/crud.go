package travelerRepo

import (
	"context"

	"github.com/krharsh17/alexa-flight-booking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type travelerDoc struct {
	UserID  string                 `bson:"userId"`
	Profile models.TravelerProfile `bson:"profile"`
}

// GetByUserID returns the traveler profile for a user, or ErrNotFound.
func (r *mongoTravelerRepo) GetByUserID(ctx context.Context, userID string) (*models.TravelerProfile, error) {
	var doc travelerDoc
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc.Profile, nil
}

// Upsert creates or replaces the traveler profile for a user.
func (r *mongoTravelerRepo) Upsert(ctx context.Context, userID string, profile *models.TravelerProfile) error {
	doc := travelerDoc{UserID: userID, Profile: *profile}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"userId": userID}, doc, opts)
	return err
}
