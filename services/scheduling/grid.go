package scheduling

import "fmt"

// Meeting slots run from 07:00 to 23:30 IST in 30-minute steps. The end
// bound is expressed as a fractional hour; a slot belongs to the grid iff
// its start is <= the end bound.
const (
	gridStartHour = 7.0
	gridEndHour   = 23.5
	gridStepHour  = 0.5
)

// DailySlots returns the full ordered slot grid for one calendar day as
// "HH:MM" labels. The grid is constant; a fresh slice is returned on every
// call so callers can never share mutable state.
func DailySlots() []string {
	var slots []string
	for h := gridStartHour; h <= gridEndHour; h += gridStepHour {
		hour := int(h)
		min := 0
		if h-float64(hour) >= 0.5 {
			min = 30
		}
		slots = append(slots, fmt.Sprintf("%02d:%02d", hour, min))
	}
	return slots
}

// slotIndex returns the position of slot in the grid, or -1 if it is not a
// valid grid slot.
func slotIndex(grid []string, slot string) int {
	for i, s := range grid {
		if s == slot {
			return i
		}
	}
	return -1
}
