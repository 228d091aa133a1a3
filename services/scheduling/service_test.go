package scheduling

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourtravels/models"
)

type frozenClock struct {
	now time.Time
}

func (c frozenClock) Now() time.Time { return c.now }

// newTestService returns an engine frozen at 2024-01-10 15:00 IST, so
// 2024-01-11 is the first bookable date.
func newTestService() *DefaultSlotService {
	return &DefaultSlotService{
		Registry: NewBookingRegistry(),
		Clock:    frozenClock{now: time.Date(2024, 1, 10, 15, 0, 0, 0, IST)},
	}
}

func TestAvailableSlotsDateValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.AvailableSlots("")
	require.Error(t, err)
	assert.IsType(t, ValidationError{}, err)
	assert.EqualError(t, err, "date is required")

	_, err = svc.AvailableSlots("not-a-date")
	require.Error(t, err)
	assert.IsType(t, ValidationError{}, err)
	assert.EqualError(t, err, "invalid date")

	_, err = svc.AvailableSlots("2024/01/15")
	require.Error(t, err)
	assert.IsType(t, ValidationError{}, err)
}

func TestAvailableSlotsBookingWindow(t *testing.T) {
	svc := newTestService()

	for _, date := range []string{"2024-01-10", "2024-01-09", "2023-12-31"} {
		_, err := svc.AvailableSlots(date)
		require.Error(t, err, date)
		assert.IsType(t, PolicyViolation{}, err)
		assert.EqualError(t, err, "bookings allowed from tomorrow onwards")
		assert.False(t, IsSlotCollision(err))
	}

	slots, err := svc.AvailableSlots("2024-01-11")
	require.NoError(t, err)
	assert.Len(t, slots, 34)

	slots, err = svc.AvailableSlots("2024-06-01")
	require.NoError(t, err)
	assert.Len(t, slots, 34)
}

func TestAvailableSlotsGapExclusion(t *testing.T) {
	svc := newTestService()
	svc.Registry.Warm("2024-02-01", "10:00")

	slots, err := svc.AvailableSlots("2024-02-01")
	require.NoError(t, err)

	assert.Len(t, slots, 31)
	assert.NotContains(t, slots, "09:30")
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "11:00")
}

func TestAvailableSlotsGapAtGridBoundaries(t *testing.T) {
	svc := newTestService()
	svc.Registry.Warm("2024-02-01", "07:00")
	svc.Registry.Warm("2024-02-01", "23:30")

	slots, err := svc.AvailableSlots("2024-02-01")
	require.NoError(t, err)

	// Each boundary booking knocks out itself plus its single neighbour.
	assert.Len(t, slots, 30)
	assert.NotContains(t, slots, "07:00")
	assert.NotContains(t, slots, "07:30")
	assert.NotContains(t, slots, "23:00")
	assert.NotContains(t, slots, "23:30")
	assert.Contains(t, slots, "08:00")
	assert.Contains(t, slots, "22:30")
}

func TestAvailableSlotsIsolatedPerDate(t *testing.T) {
	svc := newTestService()
	svc.Registry.Warm("2024-02-01", "10:00")

	slots, err := svc.AvailableSlots("2024-02-02")
	require.NoError(t, err)
	assert.Len(t, slots, 34)
}

func TestReserveValidatesLikeAvailability(t *testing.T) {
	svc := newTestService()

	err := svc.Reserve("", "10:00")
	assert.IsType(t, ValidationError{}, err)

	err = svc.Reserve("garbage", "10:00")
	assert.IsType(t, ValidationError{}, err)

	err = svc.Reserve("2024-01-10", "10:00")
	require.Error(t, err)
	assert.EqualError(t, err, "bookings allowed from tomorrow onwards")
	assert.False(t, IsSlotCollision(err))
}

func TestReserveRejectsNonGridSlot(t *testing.T) {
	svc := newTestService()

	for _, slot := range []string{"06:30", "10:15", "24:00", ""} {
		err := svc.Reserve("2024-02-01", slot)
		require.Error(t, err, slot)
		assert.True(t, IsSlotCollision(err), slot)
	}
}

func TestReserveThenCollision(t *testing.T) {
	svc := newTestService()

	require.NoError(t, svc.Reserve("2024-02-01", "10:00"))

	// Same slot again and both neighbours now collide.
	for _, slot := range []string{"10:00", "09:30", "10:30"} {
		err := svc.Reserve("2024-02-01", slot)
		require.Error(t, err, slot)
		assert.True(t, IsSlotCollision(err), slot)
		assert.EqualError(t, err, "selected time slot is not available")
	}

	// Two steps away is still fine.
	require.NoError(t, svc.Reserve("2024-02-01", "09:00"))
	require.NoError(t, svc.Reserve("2024-02-01", "11:00"))

	// Same slot on another date is unaffected.
	require.NoError(t, svc.Reserve("2024-02-02", "10:00"))
}

func TestReserveMatchesAvailability(t *testing.T) {
	svc := newTestService()

	require.NoError(t, svc.Reserve("2024-02-01", "10:00"))

	slots, err := svc.AvailableSlots("2024-02-01")
	require.NoError(t, err)
	for _, slot := range slots {
		assert.NotContains(t, []string{"09:30", "10:00", "10:30"}, slot)
	}
}

func TestReserveConcurrentSameSlot(t *testing.T) {
	svc := newTestService()

	const workers = 50
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- svc.Reserve("2024-02-01", "14:00")
		}()
	}
	wg.Wait()
	close(results)

	var wins, collisions int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		require.True(t, IsSlotCollision(err))
		collisions++
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, workers-1, collisions)
}

func TestReservePrunesStaleDates(t *testing.T) {
	svc := newTestService()
	svc.Registry.Warm("2023-11-01", "10:00")

	require.NoError(t, svc.Reserve("2024-02-01", "10:00"))

	assert.Empty(t, svc.Registry.Booked("2023-11-01"))
	assert.Len(t, svc.Registry.Booked("2024-02-01"), 1)
}

func TestWarmFromStore(t *testing.T) {
	svc := newTestService()
	svc.WarmFromStore([]models.MeetingSlotRef{
		{Date: "2024-02-01", Time: "10:00"},
		{Date: "2024-01-09", Time: "11:00"}, // past, dropped
		{Date: "", Time: "12:00"},           // incomplete, dropped
		{Date: "2024-02-01", Time: ""},      // incomplete, dropped
	})

	assert.Len(t, svc.Registry.Booked("2024-02-01"), 1)
	assert.Empty(t, svc.Registry.Booked("2024-01-09"))

	err := svc.Reserve("2024-02-01", "10:00")
	require.Error(t, err)
	assert.True(t, IsSlotCollision(err))
}

func TestIsSlotCollision(t *testing.T) {
	assert.True(t, IsSlotCollision(PolicyViolation{Msg: "selected time slot is not available"}))
	assert.False(t, IsSlotCollision(PolicyViolation{Msg: "bookings allowed from tomorrow onwards"}))
	assert.False(t, IsSlotCollision(ValidationError{Msg: "invalid date"}))
	assert.False(t, IsSlotCollision(nil))
}
