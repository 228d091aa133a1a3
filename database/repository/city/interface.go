// File: database/repository/city/interface.go
package cityRepo

import (
	"context"

	"tourtravels/database"
	"tourtravels/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CityRepository interface {
	Create(ctx context.Context, city *models.City) error
	GetByID(ctx context.Context, id string) (*models.City, error)
	GetAll(ctx context.Context) ([]models.City, error)
	Update(ctx context.Context, city *models.City) error
	Delete(ctx context.Context, id string) error
	AddTour(ctx context.Context, cityID, tourID string) error
	RemoveTour(ctx context.Context, cityID, tourID string) error
	UpdateOrder(ctx context.Context, id string, order int) error
}

type mongoCityRepo struct {
	coll *mongo.Collection
}

// NewMongoCityRepo constructs a new MongoDB CityRepository.
func NewMongoCityRepo() CityRepository {
	return &mongoCityRepo{
		coll: database.DB().Collection("city_tours"),
	}
}
