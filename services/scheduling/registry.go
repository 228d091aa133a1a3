package scheduling

import "sync"

// BookingRegistry tracks reserved meeting slots per calendar date. It is the
// only mutable shared state in the engine: all access goes through the
// mutex, and reservation is check-then-act under a single lock acquisition
// so concurrent requests for the same (date, time) can never both succeed.
//
// The registry lives in process memory; the durable record of a booking is
// the appended contact submission. Warm re-seeds it from that store on boot.
type BookingRegistry struct {
	mu     sync.Mutex
	booked map[string]map[string]struct{}
}

// NewBookingRegistry returns an empty registry.
func NewBookingRegistry() *BookingRegistry {
	return &BookingRegistry{booked: make(map[string]map[string]struct{})}
}

// Booked returns a copy of the reserved slot set for date.
func (r *BookingRegistry) Booked(date string) map[string]struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]struct{}, len(r.booked[date]))
	for s := range r.booked[date] {
		out[s] = struct{}{}
	}
	return out
}

// Reserve atomically records slot for date if permit approves the reserved
// set as it stands. permit runs with the registry lock held, which makes the
// whole check-then-act sequence linearizable per registry.
func (r *BookingRegistry) Reserve(date, slot string, permit func(booked map[string]struct{}) bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := r.booked[date]
	if day == nil {
		day = make(map[string]struct{})
	}
	if !permit(day) {
		return false
	}
	day[slot] = struct{}{}
	r.booked[date] = day
	return true
}

// Warm seeds an already-booked slot, used when rebuilding the registry from
// the submission store after a restart.
func (r *BookingRegistry) Warm(date, slot string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.booked[date] == nil {
		r.booked[date] = make(map[string]struct{})
	}
	r.booked[date][slot] = struct{}{}
}

// PruneBefore drops every date strictly before cutoff. Dates are ISO
// YYYY-MM-DD, so lexicographic comparison is chronological. Called
// opportunistically on reserve to keep the registry from growing without
// bound over the process lifetime.
func (r *BookingRegistry) PruneBefore(cutoff string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for date := range r.booked {
		if date < cutoff {
			delete(r.booked, date)
		}
	}
}
