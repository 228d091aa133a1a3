package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourtravels/services/catalog"
	"tourtravels/utils"
)

// CityHandler serves destination-city endpoints, public reads and admin writes.
type CityHandler struct {
	Svc catalog.CityService
}

func NewCityHandler(svc catalog.CityService) *CityHandler {
	return &CityHandler{Svc: svc}
}

// GetAllCitiesHandler handles GET /city.
func (h *CityHandler) GetAllCitiesHandler(c *gin.Context) {
	cities, err := h.Svc.GetAllCities(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cities": cities})
}

// GetCityHandler handles GET /city/:id, returning the city with its tours.
func (h *CityHandler) GetCityHandler(c *gin.Context) {
	city, err := h.Svc.GetCityWithTours(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "city": city})
}

// CreateCityHandler handles POST /city/admin (multipart form).
func (h *CityHandler) CreateCityHandler(c *gin.Context) {
	imagePath, err := saveUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	defer removeTempFile(imagePath)

	city, err := h.Svc.CreateCity(c.Request.Context(), catalog.CreateCityInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		ImagePath:   imagePath,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "city": city})
}

// UpdateCityHandler handles PUT /city/admin/:id (multipart form, all fields optional).
func (h *CityHandler) UpdateCityHandler(c *gin.Context) {
	imagePath, err := saveUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	defer removeTempFile(imagePath)

	city, err := h.Svc.UpdateCity(c.Request.Context(), c.Param("id"), catalog.UpdateCityInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		ImagePath:   imagePath,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "city": city})
}

// DeleteCityHandler handles DELETE /city/admin/:id. Linked tours and their
// media are removed along with the city.
func (h *CityHandler) DeleteCityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	deletedTours, err := h.Svc.DeleteCity(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	logger.Info("City deleted", zap.String("cityID", c.Param("id")), zap.Int64("toursRemoved", deletedTours))
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "City deleted successfully.",
		"toursRemoved": deletedTours,
	})
}

// UpdateCityOrderHandler handles PATCH /city/admin/:id/order.
func (h *CityHandler) UpdateCityOrderHandler(c *gin.Context) {
	var body struct {
		Order *int `json:"order"`
	}
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil || body.Order == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "order is required"})
		return
	}
	if err := h.Svc.UpdateCityOrder(c.Request.Context(), c.Param("id"), *body.Order); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "City order updated."})
}
