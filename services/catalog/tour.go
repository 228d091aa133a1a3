package catalog

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	cityRepo "tourtravels/database/repository/city"
	tourRepo "tourtravels/database/repository/tour"
	"tourtravels/models"
	"tourtravels/services/storage"
	"tourtravels/utils"
)

// DefaultTourService is the production TourService.
type DefaultTourService struct {
	Tours   tourRepo.TourRepository
	Cities  cityRepo.CityRepository
	Storage storage.StorageService
}

func (s *DefaultTourService) CreateTour(ctx context.Context, in CreateTourInput) (*models.Tour, error) {
	if in.Title == "" || in.Duration == "" || in.CityID == "" {
		return nil, InvalidInputError{Msg: "title, duration and cityId are required"}
	}
	if len(in.Destinations) == 0 || len(in.Itinerary) == 0 {
		return nil, InvalidInputError{Msg: "destinations and itinerary are required"}
	}

	// The tour must link to an existing city.
	if _, err := s.Cities.GetByID(ctx, in.CityID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NotFoundError{Resource: "city"}
		}
		return nil, err
	}

	var imageURL string
	if in.ImagePath != "" {
		url, err := s.Storage.UploadFile(ctx, in.ImagePath, "")
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	tour := &models.Tour{
		Title:        in.Title,
		Duration:     in.Duration,
		Destinations: in.Destinations,
		Itinerary:    in.Itinerary,
		CityID:       in.CityID,
		Image:        imageURL,
	}
	if err := s.Tours.Create(ctx, tour); err != nil {
		return nil, err
	}
	if err := s.Cities.AddTour(ctx, in.CityID, tour.ID); err != nil {
		utils.GetLogger().Warn("failed to link tour to city",
			zap.String("tourId", tour.ID), zap.String("cityId", in.CityID), zap.Error(err))
	}
	return tour, nil
}

func (s *DefaultTourService) GetTourByID(ctx context.Context, id string) (*models.Tour, error) {
	tour, err := s.Tours.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, NotFoundError{Resource: "tour"}
	}
	return tour, err
}

func (s *DefaultTourService) GetToursByCity(ctx context.Context, cityID string) ([]models.Tour, error) {
	return s.Tours.GetByCityID(ctx, cityID)
}

func (s *DefaultTourService) GetAllTours(ctx context.Context) ([]models.Tour, error) {
	return s.Tours.GetAll(ctx)
}

func (s *DefaultTourService) GetFeaturedTours(ctx context.Context) ([]models.Tour, error) {
	return s.Tours.GetFeatured(ctx)
}

func (s *DefaultTourService) ToggleFeatured(ctx context.Context, id string) (*models.Tour, error) {
	tour, err := s.GetTourByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tour.Featured = !tour.Featured
	if err := s.Tours.SetFeatured(ctx, id, tour.Featured); err != nil {
		return nil, err
	}
	return tour, nil
}

func (s *DefaultTourService) UpdateTour(ctx context.Context, id string, in UpdateTourInput) (*models.Tour, error) {
	tour, err := s.GetTourByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		tour.Title = in.Title
	}
	if in.Duration != "" {
		tour.Duration = in.Duration
	}
	if len(in.Destinations) > 0 {
		tour.Destinations = in.Destinations
	}
	if len(in.Itinerary) > 0 {
		tour.Itinerary = in.Itinerary
	}
	if in.ImagePath != "" {
		imageURL, err := s.Storage.UploadFile(ctx, in.ImagePath, "")
		if err != nil {
			return nil, err
		}
		s.removeMedia(ctx, tour.Image)
		tour.Image = imageURL
	}

	if err := s.Tours.Update(ctx, tour); err != nil {
		return nil, err
	}
	return tour, nil
}

func (s *DefaultTourService) DeleteTour(ctx context.Context, id string) error {
	tour, err := s.GetTourByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Tours.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Cities.RemoveTour(ctx, tour.CityID, id); err != nil {
		utils.GetLogger().Warn("failed to unlink tour from city",
			zap.String("tourId", id), zap.String("cityId", tour.CityID), zap.Error(err))
	}
	s.removeMedia(ctx, tour.Image)
	return nil
}

func (s *DefaultTourService) UpdateTourOrder(ctx context.Context, id string, order int) error {
	err := s.Tours.UpdateOrder(ctx, id, order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return NotFoundError{Resource: "tour"}
	}
	return err
}

func (s *DefaultTourService) ReorderTours(ctx context.Context, orders []models.TourOrderUpdate) error {
	if len(orders) == 0 {
		return InvalidInputError{Msg: "tour orders array is required"}
	}
	for _, o := range orders {
		if err := s.UpdateTourOrder(ctx, o.TourID, o.Order); err != nil {
			return err
		}
	}
	return nil
}

func (s *DefaultTourService) removeMedia(ctx context.Context, deliveryURL string) {
	if deliveryURL == "" {
		return
	}
	publicID := s.Storage.PublicIDFromURL(deliveryURL)
	if publicID == "" {
		return
	}
	if err := s.Storage.DeleteFile(ctx, publicID); err != nil {
		utils.GetLogger().Warn("failed to delete media asset",
			zap.String("publicId", publicID), zap.Error(err))
	}
}
