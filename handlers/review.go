package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourtravels/models"
	"tourtravels/services/review"
)

// ReviewHandler serves testimonial endpoints, public reads and admin writes.
type ReviewHandler struct {
	Svc review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Svc: svc}
}

// GetActiveReviewsHandler handles GET /review, the public listing.
func (h *ReviewHandler) GetActiveReviewsHandler(c *gin.Context) {
	reviews, err := h.Svc.GetActiveReviews(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews})
}

// GetAllReviewsHandler handles GET /review/admin, including hidden reviews.
func (h *ReviewHandler) GetAllReviewsHandler(c *gin.Context) {
	reviews, err := h.Svc.GetAllReviews(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews})
}

// CreateReviewHandler handles POST /review/admin (multipart form).
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	imagePath, err := saveUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	defer removeTempFile(imagePath)

	rating, _ := strconv.Atoi(c.PostForm("rating"))
	rev, err := h.Svc.CreateReview(c.Request.Context(), review.CreateReviewInput{
		CustomerName: c.PostForm("customerName"),
		Rating:       rating,
		Review:       c.PostForm("review"),
		ImagePath:    imagePath,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "review": rev})
}

// UpdateReviewHandler handles PUT /review/admin/:id.
func (h *ReviewHandler) UpdateReviewHandler(c *gin.Context) {
	imagePath, err := saveUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	defer removeTempFile(imagePath)

	in := review.UpdateReviewInput{
		CustomerName: c.PostForm("customerName"),
		Review:       c.PostForm("review"),
		ImagePath:    imagePath,
	}
	if raw := c.PostForm("rating"); raw != "" {
		in.Rating, _ = strconv.Atoi(raw)
	}
	if raw := c.PostForm("isActive"); raw != "" {
		active := raw == "true"
		in.IsActive = &active
	}

	rev, err := h.Svc.UpdateReview(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "review": rev})
}

// DeleteReviewHandler handles DELETE /review/admin/:id.
func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	if err := h.Svc.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review deleted successfully."})
}

// ToggleReviewStatusHandler handles PATCH /review/admin/:id/status.
func (h *ReviewHandler) ToggleReviewStatusHandler(c *gin.Context) {
	rev, err := h.Svc.ToggleReviewStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "review": rev})
}

// UpdateReviewOrderHandler handles PATCH /review/admin/:id/order.
func (h *ReviewHandler) UpdateReviewOrderHandler(c *gin.Context) {
	var body struct {
		Order *int `json:"order"`
	}
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil || body.Order == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "order is required"})
		return
	}
	if err := h.Svc.UpdateReviewOrder(c.Request.Context(), c.Param("id"), *body.Order); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review order updated."})
}

// ReorderReviewsHandler handles PUT /review/admin/reorder.
func (h *ReviewHandler) ReorderReviewsHandler(c *gin.Context) {
	var body struct {
		Orders []models.ReviewOrderUpdate `json:"orders"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Orders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "orders is required"})
		return
	}
	if err := h.Svc.ReorderReviews(c.Request.Context(), body.Orders); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reviews reordered."})
}
