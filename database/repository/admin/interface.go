// File: database/repository/admin/interface.go
package adminRepo

import (
	"context"

	"tourtravels/database"
	"tourtravels/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type mongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo constructs a new MongoDB AdminRepository.
func NewMongoAdminRepo() AdminRepository {
	return &mongoAdminRepo{
		coll: database.DB().Collection("admins"),
	}
}
