package tourRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourtravels/models"
)

func (r *mongoTourRepo) Create(ctx context.Context, tour *models.Tour) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if tour.ID == "" {
		tour.ID = uuid.New().String()
	}
	now := time.Now()
	tour.CreatedAt = now
	tour.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, tour)
	return err
}

func (r *mongoTourRepo) GetByID(ctx context.Context, id string) (*models.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tour models.Tour
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tour); err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *mongoTourRepo) find(ctx context.Context, filter bson.M) ([]models.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

func (r *mongoTourRepo) GetByCityID(ctx context.Context, cityID string) ([]models.Tour, error) {
	return r.find(ctx, bson.M{"cityId": cityID})
}

func (r *mongoTourRepo) GetAll(ctx context.Context) ([]models.Tour, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoTourRepo) GetFeatured(ctx context.Context) ([]models.Tour, error) {
	return r.find(ctx, bson.M{"featured": true})
}

func (r *mongoTourRepo) Update(ctx context.Context, tour *models.Tour) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tour.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": tour.ID}, tour)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTourRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTourRepo) DeleteByCityID(ctx context.Context, cityID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"cityId": cityID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *mongoTourRepo) SetFeatured(ctx context.Context, id string, featured bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"featured": featured, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTourRepo) UpdateOrder(ctx context.Context, id string, order int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"order": order, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
