package models

import "time"

// ContactSubmission is an appended enquiry record. General contact messages
// fill only the top block; tailor-made trip requests add the trip fields;
// meeting bookings add the slot fields.
type ContactSubmission struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	InquiryType string `bson:"inquiryType,omitempty" json:"inquiryType,omitempty"`
	Subject     string `bson:"subject,omitempty" json:"subject,omitempty"`
	Message     string `bson:"message,omitempty" json:"message,omitempty"`

	// Tailor-made trip fields.
	CountryCode     string   `bson:"countryCode,omitempty" json:"countryCode,omitempty"`
	Country         string   `bson:"country,omitempty" json:"country,omitempty"`
	Adults          int      `bson:"adults,omitempty" json:"adults,omitempty"`
	Children        int      `bson:"children,omitempty" json:"children,omitempty"`
	StartDate       string   `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate         string   `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Destinations    []string `bson:"destinations,omitempty" json:"destinations,omitempty"`
	HotelCategory   string   `bson:"hotelCategory,omitempty" json:"hotelCategory,omitempty"`
	Interests       string   `bson:"interests,omitempty" json:"interests,omitempty"`
	SpecialRequests string   `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`

	// Meeting slot fields. Dates and times are wall-clock IST; SlotUser is
	// the display label projected into the visitor's own zone.
	MeetingDate  string `bson:"meetingDate,omitempty" json:"meetingDate,omitempty"`
	MeetingTime  string `bson:"meetingTime,omitempty" json:"meetingTime,omitempty"`
	UserTimeZone string `bson:"userTimeZone,omitempty" json:"userTimeZone,omitempty"`
	SlotIST      string `bson:"slotIST,omitempty" json:"slotIST,omitempty"`
	SlotUser     string `bson:"slotUser,omitempty" json:"slotUser,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// HasMeeting reports whether the submission carries a meeting-slot request.
func (s ContactSubmission) HasMeeting() bool {
	return s.MeetingDate != "" || s.MeetingTime != ""
}

// SubmissionFilter selects submissions for the admin listing.
type SubmissionFilter struct {
	Email string
	Date  string
	Page  int64
	Limit int64
}

// SubmissionPage is one page of the admin submission listing.
type SubmissionPage struct {
	Data  []ContactSubmission `json:"data"`
	Total int64               `json:"total"`
	Page  int64               `json:"page"`
	Limit int64               `json:"limit"`
}

// MeetingSlotRef is a (date, time) pair of an already-booked meeting, used to
// warm the in-memory registry from the durable store at boot.
type MeetingSlotRef struct {
	Date string `bson:"meetingDate"`
	Time string `bson:"meetingTime"`
}
