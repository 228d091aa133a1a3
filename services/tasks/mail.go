package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"tourtravels/models"
	"tourtravels/services/mailer"
)

const TypeEnquiryMail = "enquiry:mail"

// EnquiryMailPayload is the queued notification for one contact submission.
type EnquiryMailPayload struct {
	SubmissionID string `json:"submissionId"`
	To           string `json:"to"`
	Subject      string `json:"subject"`
	Text         string `json:"text"`
	HTML         string `json:"html"`
}

// NewEnquiryMailTask builds the asynq task for an enquiry notification.
func NewEnquiryMailTask(p EnquiryMailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeEnquiryMail, b), nil
}

// MailDispatcher hands a submission notification off for delivery. The
// enquiry service treats dispatch as fire-and-forget: a dispatch failure is
// logged and never affects the stored submission or a slot reservation.
type MailDispatcher interface {
	DispatchSubmissionMail(sub models.ContactSubmission) error
}

// AsynqMailDispatcher enqueues notifications onto the redis-backed queue
// consumed by the cron worker.
type AsynqMailDispatcher struct {
	Client *asynq.Client
	Inbox  string
}

func (d *AsynqMailDispatcher) DispatchSubmissionMail(sub models.ContactSubmission) error {
	subject, text, html := mailer.FormatSubmission(sub)
	task, err := NewEnquiryMailTask(EnquiryMailPayload{
		SubmissionID: sub.ID,
		To:           d.Inbox,
		Subject:      subject,
		Text:         text,
		HTML:         html,
	})
	if err != nil {
		return err
	}
	_, err = d.Client.Enqueue(task, asynq.MaxRetry(3))
	return err
}
