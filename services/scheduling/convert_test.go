package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUserDisplayNewYork(t *testing.T) {
	// 14:00 IST is 08:30 UTC, which is 03:30 in New York (EST, UTC-5).
	labels := ToUserDisplay("2024-03-01", "14:00", "America/New_York")

	assert.Equal(t, "2024-03-01 14:00 IST", labels.Reference)
	assert.Equal(t, "2024-03-01 03:30 EST", labels.User)
}

func TestToUserDisplayDateRollover(t *testing.T) {
	// Late-evening IST slots land on the previous calendar day further west.
	labels := ToUserDisplay("2024-03-01", "07:00", "America/Los_Angeles")

	assert.Equal(t, "2024-03-01 07:00 IST", labels.Reference)
	assert.Equal(t, "2024-02-29 17:30 PST", labels.User)
}

func TestToUserDisplayFallsBackToIST(t *testing.T) {
	for _, zone := range []string{"", "Not/AZone"} {
		labels := ToUserDisplay("2024-03-01", "14:00", zone)
		assert.Equal(t, "2024-03-01 14:00 IST", labels.Reference, zone)
		assert.Equal(t, "2024-03-01 14:00 IST", labels.User, zone)
	}
}

func TestToUserDisplayBadInput(t *testing.T) {
	assert.Equal(t, SlotLabels{}, ToUserDisplay("garbage", "14:00", "America/New_York"))
	assert.Equal(t, SlotLabels{}, ToUserDisplay("2024-03-01", "25:99", "America/New_York"))
}
