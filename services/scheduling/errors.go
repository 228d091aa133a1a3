package scheduling

import "errors"

// ValidationError signals missing or malformed input (for example, no date).
// Handlers surface it as 400.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

// PolicyViolation signals well-formed input that breaks a booking rule:
// the advance-booking window or a slot collision. Handlers surface the
// window case as 400 and the collision case as 409.
type PolicyViolation struct {
	Msg string
}

func (e PolicyViolation) Error() string { return e.Msg }

const (
	msgDateRequired  = "date is required"
	msgInvalidDate   = "invalid date"
	msgWindow        = "bookings allowed from tomorrow onwards"
	msgSlotCollision = "selected time slot is not available"
)

// IsSlotCollision reports whether err is the slot-collision violation, which
// the HTTP layer maps to 409 (window violations stay 400).
func IsSlotCollision(err error) bool {
	var pv PolicyViolation
	if !errors.As(err, &pv) {
		return false
	}
	return pv.Msg == msgSlotCollision
}
