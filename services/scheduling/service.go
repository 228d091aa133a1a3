package scheduling

import (
	"time"

	"tourtravels/models"
)

// SlotService computes bookable meeting slots and reserves them.
type SlotService interface {
	// AvailableSlots returns the bookable "HH:MM" slots for an IST calendar
	// date, in grid order. An empty result is success, not an error.
	AvailableSlots(date string) ([]string, error)

	// Reserve books (date, slot). It re-derives availability internally, so
	// a caller that skipped AvailableSlots still cannot double-book or land
	// adjacent to an existing meeting.
	Reserve(date, slot string) error
}

// DefaultSlotService is the production SlotService. Registry and Clock are
// injected so tests can run with isolated registries and a frozen clock.
type DefaultSlotService struct {
	Registry *BookingRegistry
	Clock    Clock
}

// NewSlotService constructs a DefaultSlotService with a fresh registry and
// the system clock.
func NewSlotService() *DefaultSlotService {
	return &DefaultSlotService{
		Registry: NewBookingRegistry(),
		Clock:    SystemClock{},
	}
}

// validateDate checks presence, format, and the advance-booking window:
// only dates from tomorrow (IST) onward are bookable.
func (s *DefaultSlotService) validateDate(date string) error {
	if date == "" {
		return ValidationError{Msg: msgDateRequired}
	}
	day, err := time.ParseInLocation("2006-01-02", date, IST)
	if err != nil {
		return ValidationError{Msg: msgInvalidDate}
	}

	now := s.Clock.Now().In(IST)
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, IST).AddDate(0, 0, 1)
	if day.Before(tomorrow) {
		return PolicyViolation{Msg: msgWindow}
	}
	return nil
}

func (s *DefaultSlotService) AvailableSlots(date string) ([]string, error) {
	if err := s.validateDate(date); err != nil {
		return nil, err
	}

	grid := DailySlots()
	booked := s.Registry.Booked(date)

	available := make([]string, 0, len(grid))
	for i, slot := range grid {
		if !slotClear(grid, booked, i) {
			continue
		}
		available = append(available, slot)
	}
	return available, nil
}

// slotClear reports whether grid[i] and both of its existing neighbours are
// unreserved. The neighbour checks enforce the mandatory 30-minute buffer
// around every booked meeting.
func slotClear(grid []string, booked map[string]struct{}, i int) bool {
	if _, ok := booked[grid[i]]; ok {
		return false
	}
	if i > 0 {
		if _, ok := booked[grid[i-1]]; ok {
			return false
		}
	}
	if i < len(grid)-1 {
		if _, ok := booked[grid[i+1]]; ok {
			return false
		}
	}
	return true
}

func (s *DefaultSlotService) Reserve(date, slot string) error {
	if err := s.validateDate(date); err != nil {
		return err
	}

	grid := DailySlots()
	i := slotIndex(grid, slot)
	if i < 0 {
		return PolicyViolation{Msg: msgSlotCollision}
	}

	now := s.Clock.Now().In(IST)
	s.Registry.PruneBefore(now.Format("2006-01-02"))

	ok := s.Registry.Reserve(date, slot, func(booked map[string]struct{}) bool {
		return slotClear(grid, booked, i)
	})
	if !ok {
		return PolicyViolation{Msg: msgSlotCollision}
	}
	return nil
}

// WarmFromStore replays persisted meeting bookings into the registry,
// closing the restart gap of the in-memory design. Entries in the past are
// ignored; the window rule makes them unreachable anyway.
func (s *DefaultSlotService) WarmFromStore(refs []models.MeetingSlotRef) {
	today := s.Clock.Now().In(IST).Format("2006-01-02")
	for _, ref := range refs {
		if ref.Date == "" || ref.Time == "" || ref.Date < today {
			continue
		}
		s.Registry.Warm(ref.Date, ref.Time)
	}
}
