package sessionRepo

import (
	"context"

	"github.com/krharsh17/alexa-flight-booking/database"
	"github.com/krharsh17/alexa-flight-booking/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository is the session state store: one persisted record per user,
// read and replaced whole. Load never fails on a missing record.
type Repository interface {
	Load(ctx context.Context, userID string) (*models.SessionRecord, error)
	Save(ctx context.Context, userID string, rec *models.SessionRecord) error
}

type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo returns a new session Repository instance using MongoDB.
func NewMongoSessionRepo() Repository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoSessionRepo{
		coll: db.Collection("skill_sessions"),
	}
}
