package cityRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourtravels/models"
)

func (r *mongoCityRepo) Create(ctx context.Context, city *models.City) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if city.ID == "" {
		city.ID = uuid.New().String()
	}
	now := time.Now()
	city.CreatedAt = now
	city.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, city)
	return err
}

func (r *mongoCityRepo) GetByID(ctx context.Context, id string) (*models.City, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var city models.City
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&city); err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *mongoCityRepo) GetAll(ctx context.Context) ([]models.City, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cities []models.City
	if err := cursor.All(ctx, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *mongoCityRepo) Update(ctx context.Context, city *models.City) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	city.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": city.ID}, city)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCityRepo) Delete(ctx context.Context, id string) error {
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

func (r *mongoCityRepo) AddTour(ctx context.Context, cityID, tourID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"tourIds": tourID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": cityID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCityRepo) RemoveTour(ctx context.Context, cityID, tourID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"tourIds": tourID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": cityID}, update)
	return err
}

func (r *mongoCityRepo) UpdateOrder(ctx context.Context, id string, order int) error {
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
