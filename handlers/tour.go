package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourtravels/models"
	"tourtravels/services/catalog"
)

// TourHandler serves tour-package endpoints, public reads and admin writes.
type TourHandler struct {
	Svc catalog.TourService
}

func NewTourHandler(svc catalog.TourService) *TourHandler {
	return &TourHandler{Svc: svc}
}

// GetAllToursHandler handles GET /tour.
func (h *TourHandler) GetAllToursHandler(c *gin.Context) {
	tours, err := h.Svc.GetAllTours(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tours": tours})
}

// GetFeaturedToursHandler handles GET /tour/featured.
func (h *TourHandler) GetFeaturedToursHandler(c *gin.Context) {
	tours, err := h.Svc.GetFeaturedTours(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tours": tours})
}

// GetTourHandler handles GET /tour/:id.
func (h *TourHandler) GetTourHandler(c *gin.Context) {
	tour, err := h.Svc.GetTourByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tour": tour})
}

// GetToursByCityHandler handles GET /tour/city/:cityId.
func (h *TourHandler) GetToursByCityHandler(c *gin.Context) {
	tours, err := h.Svc.GetToursByCity(c.Request.Context(), c.Param("cityId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tours": tours})
}

// CreateTourHandler handles POST /tour/admin. Destinations and itinerary
// arrive as JSON strings inside the multipart form.
func (h *TourHandler) CreateTourHandler(c *gin.Context) {
	imagePath, err := saveUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	defer removeTempFile(imagePath)

	destinations, itinerary, err := parseTourFields(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	tour, err := h.Svc.CreateTour(c.Request.Context(), catalog.CreateTourInput{
		Title:        c.PostForm("title"),
		Duration:     c.PostForm("duration"),
		Destinations: destinations,
		Itinerary:    itinerary,
		CityID:       c.PostForm("cityId"),
		ImagePath:    imagePath,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "tour": tour})
}

// UpdateTourHandler handles PUT /tour/admin/:id.
func (h *TourHandler) UpdateTourHandler(c *gin.Context) {
	imagePath, err := saveUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	defer removeTempFile(imagePath)

	destinations, itinerary, err := parseTourFields(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	tour, err := h.Svc.UpdateTour(c.Request.Context(), c.Param("id"), catalog.UpdateTourInput{
		Title:        c.PostForm("title"),
		Duration:     c.PostForm("duration"),
		Destinations: destinations,
		Itinerary:    itinerary,
		ImagePath:    imagePath,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tour": tour})
}

// ToggleFeaturedHandler handles PATCH /tour/admin/:id/featured.
func (h *TourHandler) ToggleFeaturedHandler(c *gin.Context) {
	tour, err := h.Svc.ToggleFeatured(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tour": tour})
}

// DeleteTourHandler handles DELETE /tour/admin/:id.
func (h *TourHandler) DeleteTourHandler(c *gin.Context) {
	if err := h.Svc.DeleteTour(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Tour deleted successfully."})
}

// UpdateTourOrderHandler handles PATCH /tour/admin/:id/order.
func (h *TourHandler) UpdateTourOrderHandler(c *gin.Context) {
	var body struct {
		Order *int `json:"order"`
	}
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil || body.Order == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "order is required"})
		return
	}
	if err := h.Svc.UpdateTourOrder(c.Request.Context(), c.Param("id"), *body.Order); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Tour order updated."})
}

// ReorderToursHandler handles PUT /tour/admin/reorder with a batch of
// {tourId, order} pairs.
func (h *TourHandler) ReorderToursHandler(c *gin.Context) {
	var body struct {
		Orders []models.TourOrderUpdate `json:"orders"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Orders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "orders is required"})
		return
	}
	if err := h.Svc.ReorderTours(c.Request.Context(), body.Orders); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Tours reordered."})
}

// parseTourFields decodes the optional destinations and itinerary JSON
// strings from a multipart form.
func parseTourFields(c *gin.Context) ([]string, []models.ItineraryDay, error) {
	var destinations []string
	if raw := c.PostForm("destinations"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &destinations); err != nil {
			return nil, nil, catalog.InvalidInputError{Msg: "destinations must be a JSON array of strings"}
		}
	}

	var itinerary []models.ItineraryDay
	if raw := c.PostForm("itinerary"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &itinerary); err != nil {
			return nil, nil, catalog.InvalidInputError{Msg: "itinerary must be a JSON array of day entries"}
		}
	}
	return destinations, itinerary, nil
}
