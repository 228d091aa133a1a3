// File: database/repository/tour/interface.go
package tourRepo

import (
	"context"

	"tourtravels/database"
	"tourtravels/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TourRepository interface {
	Create(ctx context.Context, tour *models.Tour) error
	GetByID(ctx context.Context, id string) (*models.Tour, error)
	GetByCityID(ctx context.Context, cityID string) ([]models.Tour, error)
	GetAll(ctx context.Context) ([]models.Tour, error)
	GetFeatured(ctx context.Context) ([]models.Tour, error)
	Update(ctx context.Context, tour *models.Tour) error
	Delete(ctx context.Context, id string) error
	DeleteByCityID(ctx context.Context, cityID string) (int64, error)
	SetFeatured(ctx context.Context, id string, featured bool) error
	UpdateOrder(ctx context.Context, id string, order int) error
}

type mongoTourRepo struct {
	coll *mongo.Collection
}

// NewMongoTourRepo constructs a new MongoDB TourRepository.
func NewMongoTourRepo() TourRepository {
	return &mongoTourRepo{
		coll: database.DB().Collection("tours"),
	}
}
