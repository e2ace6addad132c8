package travelerRepo

import (
	"context"
	"errors"

	"github.com/krharsh17/alexa-flight-booking/database"
	"github.com/krharsh17/alexa-flight-booking/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a user has no traveler profile provisioned.
var ErrNotFound = errors.New("traveler profile not found")

// Repository stores the traveler profile required to place an order.
type Repository interface {
	GetByUserID(ctx context.Context, userID string) (*models.TravelerProfile, error)
	Upsert(ctx context.Context, userID string, profile *models.TravelerProfile) error
}

type mongoTravelerRepo struct {
	coll *mongo.Collection
}

// NewMongoTravelerRepo returns a new traveler Repository instance using MongoDB.
func NewMongoTravelerRepo() Repository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoTravelerRepo{
		coll: db.Collection("traveler_profiles"),
	}
}
