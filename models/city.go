package models

import "time"

// City represents a destination city shown on the storefront, with its
// linked tours and the admin-curated display order.
type City struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Image       string    `bson:"image" json:"image"`
	TourIDs     []string  `bson:"tourIds,omitempty" json:"tourIds,omitempty"`
	Order       int       `bson:"order" json:"order"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CityWithTours is the city detail payload including resolved tour summaries.
type CityWithTours struct {
	City  City   `json:"city"`
	Tours []Tour `json:"tours"`
}
