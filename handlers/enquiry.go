package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourtravels/models"
	"tourtravels/services/enquiry"
	"tourtravels/utils"
)

// EnquiryHandler serves the contact form, slot availability and the admin
// submission listing.
type EnquiryHandler struct {
	Svc enquiry.EnquiryService
}

func NewEnquiryHandler(svc enquiry.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{Svc: svc}
}

// AvailableSlotsHandler handles GET /contact/available-slots?date=YYYY-MM-DD.
func (h *EnquiryHandler) AvailableSlotsHandler(c *gin.Context) {
	slots, err := h.Svc.AvailableSlots(c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "slots": slots})
}

// SubmitHandler handles POST /contact.
func (h *EnquiryHandler) SubmitHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var sub models.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No form data received."})
		return
	}

	saved, err := h.Svc.Submit(c.Request.Context(), sub)
	if err != nil {
		logger.Warn("contact submission rejected", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Your message has been sent successfully.",
		"submission": saved,
	})
}

// ListSubmissionsHandler handles GET /contact/admin/submissions.
func (h *EnquiryHandler) ListSubmissionsHandler(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	pageData, err := h.Svc.ListSubmissions(c.Request.Context(), models.SubmissionFilter{
		Email: c.Query("email"),
		Date:  c.Query("date"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    pageData.Data,
		"total":   pageData.Total,
		"page":    pageData.Page,
		"limit":   pageData.Limit,
	})
}
