package tripsRepo

import (
	"context"
	"time"

	"summitos/database"
	"summitos/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TripLogRepository stores the durable record of confirmed trips. The booking
// flow writes here best-effort after the calendar reservation succeeds; the
// reminder worker reads upcoming trips back out.
type TripLogRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]models.Booking, error)
}

type mongoTripRepo struct {
	coll *mongo.Collection
}

// NewMongoTripRepo returns a new TripLogRepository instance using MongoDB.
func NewMongoTripRepo() TripLogRepository {
	db := database.MongoClient.Database("summitos")
	return &mongoTripRepo{
		coll: db.Collection("trip_log"),
	}
}
