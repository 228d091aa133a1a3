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

// DefaultCityService is the production CityService.
type DefaultCityService struct {
	Cities  cityRepo.CityRepository
	Tours   tourRepo.TourRepository
	Storage storage.StorageService
}

func (s *DefaultCityService) CreateCity(ctx context.Context, in CreateCityInput) (*models.City, error) {
	if in.Title == "" || in.Description == "" {
		return nil, InvalidInputError{Msg: "title and description are required"}
	}
	if in.ImagePath == "" {
		return nil, InvalidInputError{Msg: "image is required"}
	}

	imageURL, err := s.Storage.UploadFile(ctx, in.ImagePath, "")
	if err != nil {
		return nil, err
	}

	city := &models.City{
		Title:       in.Title,
		Description: in.Description,
		Image:       imageURL,
	}
	if err := s.Cities.Create(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *DefaultCityService) GetAllCities(ctx context.Context) ([]models.City, error) {
	return s.Cities.GetAll(ctx)
}

func (s *DefaultCityService) GetCityByID(ctx context.Context, id string) (*models.City, error) {
	city, err := s.Cities.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, NotFoundError{Resource: "city"}
	}
	return city, err
}

func (s *DefaultCityService) GetCityWithTours(ctx context.Context, id string) (*models.CityWithTours, error) {
	city, err := s.GetCityByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tours, err := s.Tours.GetByCityID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.CityWithTours{City: *city, Tours: tours}, nil
}

func (s *DefaultCityService) UpdateCity(ctx context.Context, id string, in UpdateCityInput) (*models.City, error) {
	city, err := s.GetCityByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		city.Title = in.Title
	}
	if in.Description != "" {
		city.Description = in.Description
	}
	if in.ImagePath != "" {
		imageURL, err := s.Storage.UploadFile(ctx, in.ImagePath, "")
		if err != nil {
			return nil, err
		}
		s.removeMedia(ctx, city.Image)
		city.Image = imageURL
	}

	if err := s.Cities.Update(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *DefaultCityService) DeleteCity(ctx context.Context, id string) (int64, error) {
	city, err := s.GetCityByID(ctx, id)
	if err != nil {
		return 0, err
	}

	// Collect linked tours first so their media can be removed after the
	// documents are gone.
	tours, err := s.Tours.GetByCityID(ctx, id)
	if err != nil {
		return 0, err
	}

	if err := s.Cities.Delete(ctx, id); err != nil {
		return 0, err
	}
	deleted, err := s.Tours.DeleteByCityID(ctx, id)
	if err != nil {
		return 0, err
	}

	s.removeMedia(ctx, city.Image)
	for _, t := range tours {
		s.removeMedia(ctx, t.Image)
	}
	return deleted, nil
}

func (s *DefaultCityService) UpdateCityOrder(ctx context.Context, id string, order int) error {
	err := s.Cities.UpdateOrder(ctx, id, order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return NotFoundError{Resource: "city"}
	}
	return err
}

// removeMedia deletes a stored asset by its delivery URL. Failures are
// logged only; a stale asset on the media host never blocks the operation.
func (s *DefaultCityService) removeMedia(ctx context.Context, deliveryURL string) {
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
