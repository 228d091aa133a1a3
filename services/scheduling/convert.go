package scheduling

import "time"

// IST is the fixed reference zone for all stored meeting times (UTC+5:30,
// no daylight saving).
var IST = time.FixedZone("IST", 5*3600+30*60)

// SlotLabels carries the two display renderings of a booked slot.
type SlotLabels struct {
	Reference string `json:"slotIST"`
	User      string `json:"slotUser"`
}

// ToUserDisplay projects (date, slot) from the reference zone into the
// visitor's IANA zone for display. Storage and validation stay in IST; an
// absent or unknown zone falls back to IST rather than failing, since this
// is a display-only concern.
func ToUserDisplay(date, slot, userTimeZone string) SlotLabels {
	instant, err := time.ParseInLocation("2006-01-02 15:04", date+" "+slot, IST)
	if err != nil {
		return SlotLabels{}
	}

	loc := IST
	if userTimeZone != "" {
		if l, err := time.LoadLocation(userTimeZone); err == nil {
			loc = l
		}
	}

	return SlotLabels{
		Reference: instant.Format("2006-01-02 15:04") + " IST",
		User:      instant.In(loc).Format("2006-01-02 15:04 MST"),
	}
}
