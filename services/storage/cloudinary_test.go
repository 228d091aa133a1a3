package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	svc := &CloudinaryStorageService{}

	cases := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1700000000/TourTravels/goa.jpg", "TourTravels/goa"},
		{"https://res.cloudinary.com/demo/image/upload/TourTravels/goa.jpg", "TourTravels/goa"},
		{"https://res.cloudinary.com/demo/image/upload/v1700000000/Reviews/sub/face.png", "Reviews/sub/face"},
		// A folder that merely starts with "v" is not a version segment.
		{"https://res.cloudinary.com/demo/image/upload/vacations/goa.jpg", "vacations/goa"},
		{"https://res.cloudinary.com/demo/image/upload/v1700000000/noext", "noext"},
		{"https://example.com/no/upload/here.jpg", "here"},
		{"https://res.cloudinary.com/demo/image/fetch/v1700000000/x.jpg", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, svc.PublicIDFromURL(tc.url), tc.url)
	}
}
