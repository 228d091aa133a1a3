package enquiry

import (
	"context"

	"go.uber.org/zap"

	submissionRepo "tourtravels/database/repository/submission"
	"tourtravels/models"
	"tourtravels/services/scheduling"
	"tourtravels/services/tasks"
	"tourtravels/utils"
)

// DefaultEnquiryService is the production EnquiryService.
type DefaultEnquiryService struct {
	Repo   submissionRepo.SubmissionRepository
	Slots  scheduling.SlotService
	Mailer tasks.MailDispatcher
}

func (s *DefaultEnquiryService) AvailableSlots(date string) ([]string, error) {
	return s.Slots.AvailableSlots(date)
}

func (s *DefaultEnquiryService) Submit(ctx context.Context, sub models.ContactSubmission) (*models.ContactSubmission, error) {
	logger := utils.GetLogger()

	if sub.Name == "" || sub.Email == "" {
		return nil, scheduling.ValidationError{Msg: "name and email are required"}
	}

	if sub.HasMeeting() {
		if sub.MeetingDate == "" || sub.MeetingTime == "" {
			return nil, scheduling.ValidationError{Msg: "meeting date and time are required"}
		}
		if err := s.Slots.Reserve(sub.MeetingDate, sub.MeetingTime); err != nil {
			return nil, err
		}
		labels := scheduling.ToUserDisplay(sub.MeetingDate, sub.MeetingTime, sub.UserTimeZone)
		sub.SlotIST = labels.Reference
		sub.SlotUser = labels.User
	}

	if err := s.Repo.Create(ctx, &sub); err != nil {
		logger.Error("failed to persist contact submission", zap.Error(err))
		return nil, err
	}

	// Fire-and-forget: the reservation and the stored submission stand even
	// if the notification cannot be queued.
	if err := s.Mailer.DispatchSubmissionMail(sub); err != nil {
		logger.Error("failed to dispatch enquiry mail",
			zap.String("submissionId", sub.ID), zap.Error(err))
	}

	return &sub, nil
}

func (s *DefaultEnquiryService) ListSubmissions(ctx context.Context, filter models.SubmissionFilter) (*models.SubmissionPage, error) {
	return s.Repo.List(ctx, filter)
}

// WarmRegistry replays persisted meeting bookings into the slot engine's
// in-memory registry, called once at boot.
func (s *DefaultEnquiryService) WarmRegistry(ctx context.Context, engine *scheduling.DefaultSlotService) error {
	today := engine.Clock.Now().In(scheduling.IST).Format("2006-01-02")
	refs, err := s.Repo.MeetingSlotsFrom(ctx, today)
	if err != nil {
		return err
	}
	engine.WarmFromStore(refs)
	return nil
}
