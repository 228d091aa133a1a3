package mailer

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"tourtravels/models"
)

// field is one labelled line of the notification body. The contact form has
// a fixed, known field set, so the body is rendered from an ordered list of
// typed fields rather than by iterating arbitrary keys.
type field struct {
	label string
	value string
}

func submissionFields(sub models.ContactSubmission) []field {
	fields := []field{
		{"Name", sub.Name},
		{"Email", sub.Email},
		{"Phone", sub.Phone},
		{"Inquiry Type", sub.InquiryType},
		{"Subject", sub.Subject},
		{"Message", sub.Message},
		{"Country Code", sub.CountryCode},
		{"Country", sub.Country},
	}
	if sub.Adults > 0 {
		fields = append(fields, field{"Adults", strconv.Itoa(sub.Adults)})
	}
	if sub.Children > 0 {
		fields = append(fields, field{"Children", strconv.Itoa(sub.Children)})
	}
	fields = append(fields,
		field{"Start Date", sub.StartDate},
		field{"End Date", sub.EndDate},
		field{"Destinations", strings.Join(sub.Destinations, ", ")},
		field{"Hotel Category", sub.HotelCategory},
		field{"Interests", sub.Interests},
		field{"Special Requests", sub.SpecialRequests},
		field{"Meeting Date", sub.MeetingDate},
		field{"Meeting Time", sub.MeetingTime},
		field{"User Time Zone", sub.UserTimeZone},
		field{"Slot (IST)", sub.SlotIST},
		field{"Slot (Local)", sub.SlotUser},
	)

	out := fields[:0]
	for _, f := range fields {
		if f.value != "" {
			out = append(out, f)
		}
	}
	return out
}

// FormatSubmission renders the admin notification for a contact submission
// as subject, plain-text body and HTML body.
func FormatSubmission(sub models.ContactSubmission) (subject, text, htmlBody string) {
	subject = "New Contact Form Submission"
	if sub.HasMeeting() {
		subject = "New Meeting Booking Request"
	}

	var textB, htmlB strings.Builder
	htmlB.WriteString("<h2>" + subject + "</h2><ul>")
	for _, f := range submissionFields(sub) {
		fmt.Fprintf(&textB, "%s: %s\n", f.label, f.value)
		fmt.Fprintf(&htmlB, "<li><strong>%s:</strong> %s</li>", f.label, html.EscapeString(f.value))
	}
	htmlB.WriteString("</ul>")

	return subject, textB.String(), htmlB.String()
}
