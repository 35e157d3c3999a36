// File: geolumiere/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"geolumiere/config"
	"geolumiere/database"
	agencyRepo "geolumiere/database/repository/agency"
	appointmentRepo "geolumiere/database/repository/appointment"
	blockedRepo "geolumiere/database/repository/blockeddate"
	blogRepo "geolumiere/database/repository/blog"
	contactRepo "geolumiere/database/repository/contactinfo"
	testimonialRepo "geolumiere/database/repository/testimonial"
	userRepo "geolumiere/database/repository/user"
	"geolumiere/handlers"
	"geolumiere/middleware"
	"geolumiere/routes"
	"geolumiere/services/auth"
	"geolumiere/services/notification"
	"geolumiere/services/scheduling"
	"geolumiere/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	agencies := agencyRepo.NewMongoAgencyRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()
	blockedDates := blockedRepo.NewMongoBlockedDateRepo()
	contactInfo := contactRepo.NewMongoContactInfoRepo()
	blog := blogRepo.NewMongoBlogRepo()
	testimonials := testimonialRepo.NewMongoTestimonialRepo()
	users := userRepo.NewMongoUserRepo()

	for name, ensure := range map[string]func() error{
		"agencies":      agencies.EnsureIndexes,
		"appointments":  appointments.EnsureIndexes,
		"blocked_dates": blockedDates.EnsureIndexes,
		"blog_posts":    blog.EnsureIndexes,
		"users":         users.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	mailer := notification.NewSMTPMailer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPFrom,
	)

	schedulingService := &scheduling.DefaultSchedulingService{
		Agencies:      agencies,
		Appointments:  appointments,
		BlockedDates:  blockedDates,
		ContactInfo:   contactInfo,
		Mailer:        mailer,
		AdminBaseURL:  config.AppConfig.AdminBaseURL,
		FallbackEmail: config.AppConfig.ContactFallbackEmail,
	}

	authService := &auth.DefaultAuthService{
		Users:    users,
		Sessions: utils.GetAuthCacheClient(),
		TokenTTL: 24 * time.Hour,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		AuthSvc: authService,

		Appointments: handlers.NewAppointmentHandler(schedulingService),
		BlockedDates: handlers.NewBlockedDateHandler(schedulingService, utils.GetCacheClient()),
		Agencies:     handlers.NewAgencyHandler(agencies),
		Blog:         handlers.NewBlogHandler(blog),
		Testimonials: handlers.NewTestimonialHandler(testimonials),
		Contact:      handlers.NewContactHandler(contactInfo, mailer),
		Auth:         handlers.NewAuthHandler(authService),
		Seed:         handlers.NewSeedHandler(users, agencies, contactInfo),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
