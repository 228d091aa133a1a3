// File: services/catalog/interface.go
package catalog

import (
	"context"

	"tourtravels/models"
)

// CreateCityInput carries the fields of a new city; ImagePath points at the
// uploaded temp file to push to media storage.
type CreateCityInput struct {
	Title       string
	Description string
	ImagePath   string
}

// UpdateCityInput carries optional replacements; empty fields are kept.
type UpdateCityInput struct {
	Title       string
	Description string
	ImagePath   string
}

// CreateTourInput carries the fields of a new tour.
type CreateTourInput struct {
	Title        string
	Duration     string
	Destinations []string
	Itinerary    []models.ItineraryDay
	CityID       string
	ImagePath    string
}

// UpdateTourInput carries optional replacements; empty fields are kept.
type UpdateTourInput struct {
	Title        string
	Duration     string
	Destinations []string
	Itinerary    []models.ItineraryDay
	ImagePath    string
}

// CityService manages destination cities and their linked tours.
type CityService interface {
	CreateCity(ctx context.Context, in CreateCityInput) (*models.City, error)
	GetAllCities(ctx context.Context) ([]models.City, error)
	GetCityByID(ctx context.Context, id string) (*models.City, error)
	GetCityWithTours(ctx context.Context, id string) (*models.CityWithTours, error)
	UpdateCity(ctx context.Context, id string, in UpdateCityInput) (*models.City, error)
	// DeleteCity removes the city, its linked tours, and their media assets.
	// It returns the number of tours deleted alongside the city.
	DeleteCity(ctx context.Context, id string) (int64, error)
	UpdateCityOrder(ctx context.Context, id string, order int) error
}

// TourService manages tour packages, featured curation and ordering.
type TourService interface {
	CreateTour(ctx context.Context, in CreateTourInput) (*models.Tour, error)
	GetTourByID(ctx context.Context, id string) (*models.Tour, error)
	GetToursByCity(ctx context.Context, cityID string) ([]models.Tour, error)
	GetAllTours(ctx context.Context) ([]models.Tour, error)
	GetFeaturedTours(ctx context.Context) ([]models.Tour, error)
	ToggleFeatured(ctx context.Context, id string) (*models.Tour, error)
	UpdateTour(ctx context.Context, id string, in UpdateTourInput) (*models.Tour, error)
	DeleteTour(ctx context.Context, id string) error
	UpdateTourOrder(ctx context.Context, id string, order int) error
	ReorderTours(ctx context.Context, orders []models.TourOrderUpdate) error
}
