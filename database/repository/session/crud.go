package sessionRepo

import (
	"context"
	"time"

	"github.com/krharsh17/alexa-flight-booking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Load returns the user's session record. A missing record is not an
// error: an empty record is returned so callers only have to check for
// offers.
func (r *mongoSessionRepo) Load(ctx context.Context, userID string) (*models.SessionRecord, error) {
	var rec models.SessionRecord
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return &models.SessionRecord{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Save replaces the user's whole session record, creating it on first use.
func (r *mongoSessionRepo) Save(ctx context.Context, userID string, rec *models.SessionRecord) error {
	rec.UserID = userID
	rec.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"userId": userID}, rec, opts)
	return err
}
