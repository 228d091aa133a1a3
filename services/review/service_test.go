package review

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"tourtravels/models"
	"tourtravels/services/catalog"
)

type memReviewRepo struct {
	reviews map[string]*models.Review
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{reviews: make(map[string]*models.Review)}
}

func (r *memReviewRepo) Create(_ context.Context, rev *models.Review) error {
	if rev.ID == "" {
		rev.ID = uuid.New().String()
	}
	cp := *rev
	r.reviews[rev.ID] = &cp
	return nil
}

func (r *memReviewRepo) GetByID(_ context.Context, id string) (*models.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *rev
	return &cp, nil
}

func (r *memReviewRepo) GetAll(_ context.Context) ([]models.Review, error) {
	out := make([]models.Review, 0, len(r.reviews))
	for _, rev := range r.reviews {
		out = append(out, *rev)
	}
	return out, nil
}

func (r *memReviewRepo) GetActive(_ context.Context) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.reviews {
		if rev.IsActive {
			out = append(out, *rev)
		}
	}
	return out, nil
}

func (r *memReviewRepo) Update(_ context.Context, rev *models.Review) error {
	if _, ok := r.reviews[rev.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	cp := *rev
	r.reviews[rev.ID] = &cp
	return nil
}

func (r *memReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.reviews, id)
	return nil
}

func (r *memReviewRepo) UpdateOrder(_ context.Context, id string, order int) error {
	rev, ok := r.reviews[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	rev.Order = order
	return nil
}

type memStorage struct {
	deleted []string
}

func (s *memStorage) UploadFile(_ context.Context, _, folder string) (string, error) {
	return "https://res.cloudinary.com/demo/image/upload/v1/" + folder + "/" + uuid.New().String() + ".jpg", nil
}

func (s *memStorage) DeleteFile(_ context.Context, publicID string) error {
	s.deleted = append(s.deleted, publicID)
	return nil
}

func (s *memStorage) PublicIDFromURL(url string) string { return url }

func newTestService() (*DefaultReviewService, *memReviewRepo, *memStorage) {
	repo := newMemReviewRepo()
	store := &memStorage{}
	return &DefaultReviewService{Repo: repo, Storage: store}, repo, store
}

func validInput() CreateReviewInput {
	return CreateReviewInput{
		CustomerName: "Priya",
		Rating:       5,
		Review:       "Wonderful Rajasthan trip.",
		ImagePath:    "/tmp/priya.jpg",
	}
}

func TestCreateReviewValidation(t *testing.T) {
	svc, repo, _ := newTestService()

	cases := []CreateReviewInput{
		{},
		{CustomerName: "Priya", Review: "ok", Rating: 0, ImagePath: "/tmp/x.jpg"},
		{CustomerName: "Priya", Review: "ok", Rating: 6, ImagePath: "/tmp/x.jpg"},
		{CustomerName: "Priya", Review: strings.Repeat("a", 2001), Rating: 5, ImagePath: "/tmp/x.jpg"},
		{CustomerName: "Priya", Review: "ok", Rating: 5},
	}
	for i, in := range cases {
		_, err := svc.CreateReview(context.Background(), in)
		require.Error(t, err, i)
		assert.IsType(t, catalog.InvalidInputError{}, err, i)
	}
	assert.Empty(t, repo.reviews)
}

func TestCreateReviewDefaultsActive(t *testing.T) {
	svc, _, _ := newTestService()

	rev, err := svc.CreateReview(context.Background(), validInput())
	require.NoError(t, err)

	assert.True(t, rev.IsActive)
	assert.NotEmpty(t, rev.ID)
	assert.Contains(t, rev.Image, "/Reviews/")

	active, err := svc.GetActiveReviews(context.Background())
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestToggleReviewStatus(t *testing.T) {
	svc, _, _ := newTestService()
	rev, err := svc.CreateReview(context.Background(), validInput())
	require.NoError(t, err)

	toggled, err := svc.ToggleReviewStatus(context.Background(), rev.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	active, err := svc.GetActiveReviews(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.GetAllReviews(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateReviewPartial(t *testing.T) {
	svc, _, store := newTestService()
	rev, err := svc.CreateReview(context.Background(), validInput())
	require.NoError(t, err)
	oldImage := rev.Image

	inactive := false
	updated, err := svc.UpdateReview(context.Background(), rev.ID, UpdateReviewInput{
		Rating:    4,
		IsActive:  &inactive,
		ImagePath: "/tmp/new.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, "Priya", updated.CustomerName)
	assert.False(t, updated.IsActive)
	assert.NotEqual(t, oldImage, updated.Image)
	assert.Contains(t, store.deleted, oldImage)

	_, err = svc.UpdateReview(context.Background(), rev.ID, UpdateReviewInput{Rating: 9})
	assert.IsType(t, catalog.InvalidInputError{}, err)
}

func TestDeleteReviewRemovesMedia(t *testing.T) {
	svc, repo, store := newTestService()
	rev, err := svc.CreateReview(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReview(context.Background(), rev.ID))
	assert.Empty(t, repo.reviews)
	assert.Contains(t, store.deleted, rev.Image)

	err = svc.DeleteReview(context.Background(), rev.ID)
	assert.IsType(t, catalog.NotFoundError{}, err)
}

func TestReorderReviews(t *testing.T) {
	svc, repo, _ := newTestService()
	a, err := svc.CreateReview(context.Background(), validInput())
	require.NoError(t, err)
	b, err := svc.CreateReview(context.Background(), validInput())
	require.NoError(t, err)

	err = svc.ReorderReviews(context.Background(), []models.ReviewOrderUpdate{
		{ReviewID: a.ID, Order: 2},
		{ReviewID: b.ID, Order: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.reviews[a.ID].Order)
	assert.Equal(t, 1, repo.reviews[b.ID].Order)

	assert.IsType(t, catalog.InvalidInputError{}, svc.ReorderReviews(context.Background(), nil))
	assert.IsType(t, catalog.NotFoundError{},
		svc.ReorderReviews(context.Background(), []models.ReviewOrderUpdate{{ReviewID: "missing"}}))
}
