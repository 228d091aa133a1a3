package models

import "time"

// ItineraryDay is one day entry of a tour itinerary.
type ItineraryDay struct {
	Day         string `bson:"day" json:"day"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

// Tour represents a tour package linked to a city. Featured tours surface in
// the hero section; Order drives the admin drag-and-drop arrangement.
type Tour struct {
	ID           string         `bson:"id" json:"id"`
	Title        string         `bson:"title" json:"title"`
	Duration     string         `bson:"duration" json:"duration"`
	Destinations []string       `bson:"destinations" json:"destinations"`
	Itinerary    []ItineraryDay `bson:"itinerary" json:"itinerary"`
	CityID       string         `bson:"cityId" json:"cityId"`
	Image        string         `bson:"image,omitempty" json:"image,omitempty"`
	Featured     bool           `bson:"featured" json:"featured"`
	Order        int            `bson:"order" json:"order"`
	CreatedAt    time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// TourOrderUpdate is one entry of a bulk reorder request.
type TourOrderUpdate struct {
	TourID string `json:"tourId" binding:"required"`
	Order  int    `json:"order"`
}
