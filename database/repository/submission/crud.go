package submissionRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourtravels/models"
)

func (r *mongoSubmissionRepo) Create(ctx context.Context, sub *models.ContactSubmission) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, sub)
	return err
}

func (r *mongoSubmissionRepo) List(ctx context.Context, filter models.SubmissionFilter) (*models.SubmissionPage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	if filter.Date != "" {
		query["meetingDate"] = filter.Date
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := make([]models.ContactSubmission, 0)
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, err
	}

	return &models.SubmissionPage{
		Data:  subs,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (r *mongoSubmissionRepo) MeetingSlotsFrom(ctx context.Context, date string) ([]models.MeetingSlotRef, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{
		"meetingDate": bson.M{"$gte": date},
		"meetingTime": bson.M{"$ne": ""},
	}
	opts := options.Find().SetProjection(bson.M{"meetingDate": 1, "meetingTime": 1, "_id": 0})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var refs []models.MeetingSlotRef
	if err := cursor.All(ctx, &refs); err != nil {
		return nil, err
	}
	return refs, nil
}
