package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"tourtravels/models"
)

type memCityRepo struct {
	cities map[string]*models.City
}

func newMemCityRepo() *memCityRepo {
	return &memCityRepo{cities: make(map[string]*models.City)}
}

func (r *memCityRepo) Create(_ context.Context, city *models.City) error {
	if city.ID == "" {
		city.ID = uuid.New().String()
	}
	cp := *city
	r.cities[city.ID] = &cp
	return nil
}

func (r *memCityRepo) GetByID(_ context.Context, id string) (*models.City, error) {
	city, ok := r.cities[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *city
	return &cp, nil
}

func (r *memCityRepo) GetAll(_ context.Context) ([]models.City, error) {
	out := make([]models.City, 0, len(r.cities))
	for _, c := range r.cities {
		out = append(out, *c)
	}
	return out, nil
}

func (r *memCityRepo) Update(_ context.Context, city *models.City) error {
	if _, ok := r.cities[city.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	cp := *city
	r.cities[city.ID] = &cp
	return nil
}

func (r *memCityRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.cities[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.cities, id)
	return nil
}

func (r *memCityRepo) AddTour(_ context.Context, cityID, tourID string) error {
	city, ok := r.cities[cityID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	city.TourIDs = append(city.TourIDs, tourID)
	return nil
}

func (r *memCityRepo) RemoveTour(_ context.Context, cityID, tourID string) error {
	city, ok := r.cities[cityID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	kept := city.TourIDs[:0]
	for _, id := range city.TourIDs {
		if id != tourID {
			kept = append(kept, id)
		}
	}
	city.TourIDs = kept
	return nil
}

func (r *memCityRepo) UpdateOrder(_ context.Context, id string, order int) error {
	city, ok := r.cities[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	city.Order = order
	return nil
}

type memTourRepo struct {
	tours map[string]*models.Tour
}

func newMemTourRepo() *memTourRepo {
	return &memTourRepo{tours: make(map[string]*models.Tour)}
}

func (r *memTourRepo) Create(_ context.Context, tour *models.Tour) error {
	if tour.ID == "" {
		tour.ID = uuid.New().String()
	}
	cp := *tour
	r.tours[tour.ID] = &cp
	return nil
}

func (r *memTourRepo) GetByID(_ context.Context, id string) (*models.Tour, error) {
	tour, ok := r.tours[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *tour
	return &cp, nil
}

func (r *memTourRepo) GetByCityID(_ context.Context, cityID string) ([]models.Tour, error) {
	var out []models.Tour
	for _, t := range r.tours {
		if t.CityID == cityID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTourRepo) GetAll(_ context.Context) ([]models.Tour, error) {
	out := make([]models.Tour, 0, len(r.tours))
	for _, t := range r.tours {
		out = append(out, *t)
	}
	return out, nil
}

func (r *memTourRepo) GetFeatured(_ context.Context) ([]models.Tour, error) {
	var out []models.Tour
	for _, t := range r.tours {
		if t.Featured {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTourRepo) Update(_ context.Context, tour *models.Tour) error {
	if _, ok := r.tours[tour.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	cp := *tour
	r.tours[tour.ID] = &cp
	return nil
}

func (r *memTourRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tours[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.tours, id)
	return nil
}

func (r *memTourRepo) DeleteByCityID(_ context.Context, cityID string) (int64, error) {
	var n int64
	for id, t := range r.tours {
		if t.CityID == cityID {
			delete(r.tours, id)
			n++
		}
	}
	return n, nil
}

func (r *memTourRepo) SetFeatured(_ context.Context, id string, featured bool) error {
	tour, ok := r.tours[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	tour.Featured = featured
	return nil
}

func (r *memTourRepo) UpdateOrder(_ context.Context, id string, order int) error {
	tour, ok := r.tours[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	tour.Order = order
	return nil
}

type memStorage struct {
	uploads int
	deleted []string
}

func (s *memStorage) UploadFile(_ context.Context, localFilePath, folder string) (string, error) {
	s.uploads++
	if folder == "" {
		folder = "TourTravels"
	}
	return fmt.Sprintf("https://res.cloudinary.com/demo/image/upload/v1/%s/img%d.jpg", folder, s.uploads), nil
}

func (s *memStorage) DeleteFile(_ context.Context, publicID string) error {
	s.deleted = append(s.deleted, publicID)
	return nil
}

func (s *memStorage) PublicIDFromURL(deliveryURL string) string {
	return deliveryURL
}

func newCatalogFixtures() (*DefaultCityService, *DefaultTourService, *memCityRepo, *memTourRepo, *memStorage) {
	cities := newMemCityRepo()
	tours := newMemTourRepo()
	store := &memStorage{}
	citySvc := &DefaultCityService{Cities: cities, Tours: tours, Storage: store}
	tourSvc := &DefaultTourService{Tours: tours, Cities: cities, Storage: store}
	return citySvc, tourSvc, cities, tours, store
}

func mustCreateCity(t *testing.T, svc *DefaultCityService) *models.City {
	t.Helper()
	city, err := svc.CreateCity(context.Background(), CreateCityInput{
		Title:       "Jaipur",
		Description: "The pink city",
		ImagePath:   "/tmp/jaipur.jpg",
	})
	require.NoError(t, err)
	return city
}

func mustCreateTour(t *testing.T, svc *DefaultTourService, cityID string) *models.Tour {
	t.Helper()
	tour, err := svc.CreateTour(context.Background(), CreateTourInput{
		Title:        "Forts and Palaces",
		Duration:     "3 days",
		Destinations: []string{"Amber Fort", "Hawa Mahal"},
		Itinerary:    []models.ItineraryDay{{Day: "1", Title: "Arrival", Description: "Check in"}},
		CityID:       cityID,
		ImagePath:    "/tmp/tour.jpg",
	})
	require.NoError(t, err)
	return tour
}

func TestCreateCityValidation(t *testing.T) {
	citySvc, _, _, _, store := newCatalogFixtures()

	_, err := citySvc.CreateCity(context.Background(), CreateCityInput{Title: "Jaipur"})
	assert.IsType(t, InvalidInputError{}, err)

	_, err = citySvc.CreateCity(context.Background(), CreateCityInput{Title: "Jaipur", Description: "x"})
	assert.IsType(t, InvalidInputError{}, err)

	assert.Zero(t, store.uploads)
}

func TestCreateCityUploadsImage(t *testing.T) {
	citySvc, _, _, _, store := newCatalogFixtures()

	city := mustCreateCity(t, citySvc)
	assert.NotEmpty(t, city.ID)
	assert.Contains(t, city.Image, "res.cloudinary.com")
	assert.Equal(t, 1, store.uploads)
}

func TestGetCityNotFound(t *testing.T) {
	citySvc, _, _, _, _ := newCatalogFixtures()

	_, err := citySvc.GetCityByID(context.Background(), "missing")
	require.Error(t, err)
	assert.IsType(t, NotFoundError{}, err)
	assert.EqualError(t, err, "city not found")
}

func TestUpdateCityReplacesImage(t *testing.T) {
	citySvc, _, _, _, store := newCatalogFixtures()
	city := mustCreateCity(t, citySvc)
	oldImage := city.Image

	updated, err := citySvc.UpdateCity(context.Background(), city.ID, UpdateCityInput{
		Title:     "Jaipur Deluxe",
		ImagePath: "/tmp/new.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jaipur Deluxe", updated.Title)
	assert.Equal(t, "The pink city", updated.Description)
	assert.NotEqual(t, oldImage, updated.Image)
	assert.Contains(t, store.deleted, oldImage)
}

func TestDeleteCityCascades(t *testing.T) {
	citySvc, tourSvc, _, tours, store := newCatalogFixtures()
	city := mustCreateCity(t, citySvc)
	tour := mustCreateTour(t, tourSvc, city.ID)

	deleted, err := citySvc.DeleteCity(context.Background(), city.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = citySvc.GetCityByID(context.Background(), city.ID)
	assert.IsType(t, NotFoundError{}, err)
	assert.Empty(t, tours.tours)
	assert.Contains(t, store.deleted, city.Image)
	assert.Contains(t, store.deleted, tour.Image)
}

func TestCreateTourRequiresExistingCity(t *testing.T) {
	_, tourSvc, _, _, _ := newCatalogFixtures()

	_, err := tourSvc.CreateTour(context.Background(), CreateTourInput{
		Title:        "Ghost Tour",
		Duration:     "1 day",
		Destinations: []string{"Nowhere"},
		Itinerary:    []models.ItineraryDay{{Day: "1"}},
		CityID:       "missing",
	})
	require.Error(t, err)
	assert.IsType(t, NotFoundError{}, err)
}

func TestCreateTourLinksCity(t *testing.T) {
	citySvc, tourSvc, cities, _, _ := newCatalogFixtures()
	city := mustCreateCity(t, citySvc)

	tour := mustCreateTour(t, tourSvc, city.ID)

	stored, err := cities.GetByID(context.Background(), city.ID)
	require.NoError(t, err)
	assert.Contains(t, stored.TourIDs, tour.ID)
}

func TestToggleFeatured(t *testing.T) {
	citySvc, tourSvc, _, _, _ := newCatalogFixtures()
	city := mustCreateCity(t, citySvc)
	tour := mustCreateTour(t, tourSvc, city.ID)

	toggled, err := tourSvc.ToggleFeatured(context.Background(), tour.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Featured)

	featured, err := tourSvc.GetFeaturedTours(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, 1)

	toggled, err = tourSvc.ToggleFeatured(context.Background(), tour.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Featured)
}

func TestDeleteTourUnlinksCity(t *testing.T) {
	citySvc, tourSvc, cities, _, store := newCatalogFixtures()
	city := mustCreateCity(t, citySvc)
	tour := mustCreateTour(t, tourSvc, city.ID)

	require.NoError(t, tourSvc.DeleteTour(context.Background(), tour.ID))

	stored, err := cities.GetByID(context.Background(), city.ID)
	require.NoError(t, err)
	assert.NotContains(t, stored.TourIDs, tour.ID)
	assert.Contains(t, store.deleted, tour.Image)
}

func TestReorderTours(t *testing.T) {
	citySvc, tourSvc, _, tours, _ := newCatalogFixtures()
	city := mustCreateCity(t, citySvc)
	a := mustCreateTour(t, tourSvc, city.ID)
	b := mustCreateTour(t, tourSvc, city.ID)

	err := tourSvc.ReorderTours(context.Background(), []models.TourOrderUpdate{
		{TourID: a.ID, Order: 2},
		{TourID: b.ID, Order: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, tours.tours[a.ID].Order)
	assert.Equal(t, 1, tours.tours[b.ID].Order)

	err = tourSvc.ReorderTours(context.Background(), nil)
	assert.IsType(t, InvalidInputError{}, err)

	err = tourSvc.ReorderTours(context.Background(), []models.TourOrderUpdate{{TourID: "missing", Order: 1}})
	assert.IsType(t, NotFoundError{}, err)
}
