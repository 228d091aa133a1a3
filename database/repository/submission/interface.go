// File: database/repository/submission/interface.go
package submissionRepo

import (
	"context"

	"tourtravels/database"
	"tourtravels/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SubmissionRepository is the append-only store for contact submissions.
// The slot engine never reads it on the hot path; it is consulted once at
// boot to warm the in-memory booking registry.
type SubmissionRepository interface {
	Create(ctx context.Context, sub *models.ContactSubmission) error
	List(ctx context.Context, filter models.SubmissionFilter) (*models.SubmissionPage, error)
	MeetingSlotsFrom(ctx context.Context, date string) ([]models.MeetingSlotRef, error)
}

type mongoSubmissionRepo struct {
	coll *mongo.Collection
}

// NewMongoSubmissionRepo constructs a new MongoDB SubmissionRepository.
func NewMongoSubmissionRepo() SubmissionRepository {
	return &mongoSubmissionRepo{
		coll: database.DB().Collection("contact_submissions"),
	}
}
