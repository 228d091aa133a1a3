package review

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	reviewRepo "tourtravels/database/repository/review"
	"tourtravels/models"
	"tourtravels/services/catalog"
	"tourtravels/services/storage"
	"tourtravels/utils"
)

const maxReviewLength = 2000

// DefaultReviewService is the production ReviewService.
type DefaultReviewService struct {
	Repo    reviewRepo.ReviewRepository
	Storage storage.StorageService
}

func (s *DefaultReviewService) CreateReview(ctx context.Context, in CreateReviewInput) (*models.Review, error) {
	if in.CustomerName == "" || in.Review == "" {
		return nil, catalog.InvalidInputError{Msg: "customer name, rating, and review are required"}
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, catalog.InvalidInputError{Msg: "rating must be between 1 and 5"}
	}
	if len(in.Review) > maxReviewLength {
		return nil, catalog.InvalidInputError{Msg: "review exceeds maximum length"}
	}
	if in.ImagePath == "" {
		return nil, catalog.InvalidInputError{Msg: "customer image is required"}
	}

	imageURL, err := s.Storage.UploadFile(ctx, in.ImagePath, "Reviews")
	if err != nil {
		return nil, err
	}

	rev := &models.Review{
		CustomerName: in.CustomerName,
		Rating:       in.Rating,
		Review:       in.Review,
		Image:        imageURL,
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *DefaultReviewService) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultReviewService) GetActiveReviews(ctx context.Context) ([]models.Review, error) {
	return s.Repo.GetActive(ctx)
}

func (s *DefaultReviewService) GetReviewByID(ctx context.Context, id string) (*models.Review, error) {
	rev, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, catalog.NotFoundError{Resource: "review"}
	}
	return rev, err
}

func (s *DefaultReviewService) UpdateReview(ctx context.Context, id string, in UpdateReviewInput) (*models.Review, error) {
	rev, err := s.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Rating != 0 {
		if in.Rating < 1 || in.Rating > 5 {
			return nil, catalog.InvalidInputError{Msg: "rating must be between 1 and 5"}
		}
		rev.Rating = in.Rating
	}
	if in.CustomerName != "" {
		rev.CustomerName = in.CustomerName
	}
	if in.Review != "" {
		if len(in.Review) > maxReviewLength {
			return nil, catalog.InvalidInputError{Msg: "review exceeds maximum length"}
		}
		rev.Review = in.Review
	}
	if in.IsActive != nil {
		rev.IsActive = *in.IsActive
	}
	if in.ImagePath != "" {
		imageURL, err := s.Storage.UploadFile(ctx, in.ImagePath, "Reviews")
		if err != nil {
			return nil, err
		}
		s.removeMedia(ctx, rev.Image)
		rev.Image = imageURL
	}

	if err := s.Repo.Update(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *DefaultReviewService) DeleteReview(ctx context.Context, id string) error {
	rev, err := s.GetReviewByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.removeMedia(ctx, rev.Image)
	return nil
}

func (s *DefaultReviewService) ToggleReviewStatus(ctx context.Context, id string) (*models.Review, error) {
	rev, err := s.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rev.IsActive = !rev.IsActive
	if err := s.Repo.Update(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *DefaultReviewService) UpdateReviewOrder(ctx context.Context, id string, order int) error {
	err := s.Repo.UpdateOrder(ctx, id, order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return catalog.NotFoundError{Resource: "review"}
	}
	return err
}

func (s *DefaultReviewService) ReorderReviews(ctx context.Context, orders []models.ReviewOrderUpdate) error {
	if len(orders) == 0 {
		return catalog.InvalidInputError{Msg: "review orders array is required"}
	}
	for _, o := range orders {
		if err := s.UpdateReviewOrder(ctx, o.ReviewID, o.Order); err != nil {
			return err
		}
	}
	return nil
}

func (s *DefaultReviewService) removeMedia(ctx context.Context, deliveryURL string) {
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
