// File: tourtravels/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"tourtravels/config"
	"tourtravels/cron"
	"tourtravels/database"
	adminRepoPkg "tourtravels/database/repository/admin"
	cityRepoPkg "tourtravels/database/repository/city"
	reviewRepoPkg "tourtravels/database/repository/review"
	submissionRepoPkg "tourtravels/database/repository/submission"
	tourRepoPkg "tourtravels/database/repository/tour"
	"tourtravels/handlers"
	"tourtravels/routes"
	adminSvc "tourtravels/services/admin"
	"tourtravels/services/catalog"
	"tourtravels/services/enquiry"
	"tourtravels/services/mailer"
	reviewSvc "tourtravels/services/review"
	"tourtravels/services/scheduling"
	"tourtravels/services/tasks"
	"tourtravels/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// repositories.
	cityRepo := cityRepoPkg.NewMongoCityRepo()
	tourRepo := tourRepoPkg.NewMongoTourRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	submissionRepo := submissionRepoPkg.NewMongoSubmissionRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()

	for name, ensure := range map[string]func() error{
		"city":       cityRepoPkg.EnsureIndexes,
		"tour":       tourRepoPkg.EnsureIndexes,
		"submission": submissionRepoPkg.EnsureIndexes,
		"admin":      adminRepoPkg.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// async mail pipeline.
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}
	mailClient := asynq.NewClient(redisOpts)
	defer mailClient.Close()

	smtpSender := &mailer.SMTPSender{
		Host:     config.AppConfig.SMTPHost,
		Port:     config.AppConfig.SMTPPort,
		Username: config.AppConfig.SMTPUser,
		Password: config.AppConfig.SMTPPassword,
		From:     config.AppConfig.MailFrom,
	}
	cron.InitMailWorker(smtpSender)

	// services.
	slotEngine := scheduling.NewSlotService()

	enquiryService := &enquiry.DefaultEnquiryService{
		Repo:  submissionRepo,
		Slots: slotEngine,
		Mailer: &tasks.AsynqMailDispatcher{
			Client: mailClient,
			Inbox:  config.AppConfig.ContactInbox,
		},
	}

	// Replay persisted meeting bookings so restarts keep reserved slots.
	warmCtx, warmCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := enquiryService.WarmRegistry(warmCtx, slotEngine); err != nil {
		logger.Sugar().Warnf("main: failed to warm slot registry: %v", err)
	}
	warmCancel()

	cityService := &catalog.DefaultCityService{
		Cities:  cityRepo,
		Tours:   tourRepo,
		Storage: storageService,
	}
	tourService := &catalog.DefaultTourService{
		Tours:   tourRepo,
		Cities:  cityRepo,
		Storage: storageService,
	}
	reviewService := &reviewSvc.DefaultReviewService{
		Repo:    reviewRepo,
		Storage: storageService,
	}
	adminService := &adminSvc.DefaultAdminService{
		Repo: adminRepo,
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	handlerBundle := &handlers.HandlerBundle{
		City:    handlers.NewCityHandler(cityService),
		Tour:    handlers.NewTourHandler(tourService),
		Review:  handlers.NewReviewHandler(reviewService),
		Enquiry: handlers.NewEnquiryHandler(enquiryService),
		Admin:   handlers.NewAdminHandler(adminService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
