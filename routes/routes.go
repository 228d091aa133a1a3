package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tourtravels/config"
	"tourtravels/handlers"
	"tourtravels/middleware"
)

// RegisterCityRoutes registers destination-city endpoints.
func RegisterCityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/city")
	{
		api.GET("", hb.City.GetAllCitiesHandler)
		api.GET("/:id", hb.City.GetCityHandler)

		// Admin-only mutations.
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		admin.POST("", hb.City.CreateCityHandler)
		admin.PUT("/:id", hb.City.UpdateCityHandler)
		admin.DELETE("/:id", hb.City.DeleteCityHandler)
		admin.PATCH("/:id/order", hb.City.UpdateCityOrderHandler)
	}
}

// RegisterTourRoutes registers tour-package endpoints.
func RegisterTourRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/tour")
	{
		api.GET("", hb.Tour.GetAllToursHandler)
		api.GET("/featured", hb.Tour.GetFeaturedToursHandler)
		api.GET("/city/:cityId", hb.Tour.GetToursByCityHandler)
		api.GET("/:id", hb.Tour.GetTourHandler)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		admin.POST("", hb.Tour.CreateTourHandler)
		admin.PUT("/reorder", hb.Tour.ReorderToursHandler)
		admin.PUT("/:id", hb.Tour.UpdateTourHandler)
		admin.DELETE("/:id", hb.Tour.DeleteTourHandler)
		admin.PATCH("/:id/featured", hb.Tour.ToggleFeaturedHandler)
		admin.PATCH("/:id/order", hb.Tour.UpdateTourOrderHandler)
	}
}

// RegisterReviewRoutes registers testimonial endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/review")
	{
		api.GET("", hb.Review.GetActiveReviewsHandler)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		admin.GET("", hb.Review.GetAllReviewsHandler)
		admin.POST("", hb.Review.CreateReviewHandler)
		admin.PUT("/reorder", hb.Review.ReorderReviewsHandler)
		admin.PUT("/:id", hb.Review.UpdateReviewHandler)
		admin.DELETE("/:id", hb.Review.DeleteReviewHandler)
		admin.PATCH("/:id/status", hb.Review.ToggleReviewStatusHandler)
		admin.PATCH("/:id/order", hb.Review.UpdateReviewOrderHandler)
	}
}

// RegisterContactRoutes registers the contact form and slot availability.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/contact")
	{
		api.GET("/available-slots", hb.Enquiry.AvailableSlotsHandler)
		api.POST("", middleware.RateLimitMiddleware(), hb.Enquiry.SubmitHandler)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		admin.GET("/submissions", hb.Enquiry.ListSubmissionsHandler)
	}
}

// RegisterAdminRoutes registers back-office auth endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/admin")
	{
		api.POST("/signup", hb.Admin.SignupHandler)
		api.POST("/login", hb.Admin.LoginHandler)
		api.POST("/logout", hb.Admin.LogoutHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm TourTravels"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := []string{"http://localhost:5173"}
	if config.AppConfig.FrontendURL != "" {
		origins = []string{config.AppConfig.FrontendURL}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCityRoutes(r, hb)
	RegisterTourRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
