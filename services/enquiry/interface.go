// File: services/enquiry/interface.go
package enquiry

import (
	"context"

	"tourtravels/models"
)

// EnquiryService handles contact-form submissions and meeting-slot queries.
type EnquiryService interface {
	// AvailableSlots returns bookable meeting slots for an IST date.
	AvailableSlots(date string) ([]string, error)

	// Submit validates and stores a contact submission. Submissions carrying
	// meeting fields reserve the slot first; a collision or window violation
	// aborts before anything is persisted. The notification email is
	// dispatched after the store append and never affects the outcome.
	Submit(ctx context.Context, sub models.ContactSubmission) (*models.ContactSubmission, error)

	// ListSubmissions serves the admin back-office listing.
	ListSubmissions(ctx context.Context, filter models.SubmissionFilter) (*models.SubmissionPage, error)
}
