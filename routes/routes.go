package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"geolumiere/handlers"
	"geolumiere/middleware"
	"geolumiere/services/auth"
)

// HandlerBundle groups every handler the router needs.
type HandlerBundle struct {
	AuthSvc auth.AuthService

	Appointments *handlers.AppointmentHandler
	BlockedDates *handlers.BlockedDateHandler
	Agencies     *handlers.AgencyHandler
	Blog         *handlers.BlogHandler
	Testimonials *handlers.TestimonialHandler
	Contact      *handlers.ContactHandler
	Auth         *handlers.AuthHandler
	Seed         *handlers.SeedHandler
}

// RegisterPublicRoutes registers the endpoints behind the public site.
func RegisterPublicRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/appointments/available-slots", hb.Appointments.GetAvailableSlots)
		api.POST("/appointments", hb.Appointments.CreateAppointment)

		api.GET("/blocked-dates", hb.BlockedDates.ListBlockedDates)
		api.GET("/agencies", hb.Agencies.ListAgencies)
		api.GET("/testimonials", hb.Testimonials.ListActive)
		api.GET("/blog", hb.Blog.ListPublished)
		api.GET("/blog/:slug", hb.Blog.GetBySlug)
		api.GET("/contact-info", hb.Contact.GetContactInfo)
		api.POST("/contact", hb.Contact.SubmitContactForm)

		api.POST("/admin/login", hb.Auth.Login)
	}
}

// RegisterAdminRoutes registers the back-office endpoints, all behind the
// admin session middleware.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.AdminAuthMiddleware(hb.AuthSvc))
	{
		api.POST("/admin/logout", hb.Auth.Logout)

		api.GET("/appointments", hb.Appointments.ListAppointments)
		api.PUT("/appointments/:id", hb.Appointments.UpdateAppointment)
		api.DELETE("/appointments/:id", hb.Appointments.DeleteAppointment)

		api.POST("/blocked-dates", hb.BlockedDates.CreateBlockedDate)
		api.DELETE("/blocked-dates/:id", hb.BlockedDates.DeleteBlockedDate)

		api.GET("/agencies/all", hb.Agencies.ListAllAgencies)
		api.POST("/agencies", hb.Agencies.CreateAgency)
		api.PUT("/agencies/:id", hb.Agencies.UpdateAgency)
		api.DELETE("/agencies/:id", hb.Agencies.DeleteAgency)

		api.GET("/blog/all", hb.Blog.ListAll)
		api.POST("/blog", hb.Blog.Create)
		api.PUT("/blog/:id", hb.Blog.Update)
		api.DELETE("/blog/:id", hb.Blog.Delete)

		api.GET("/testimonials/all", hb.Testimonials.ListAll)
		api.POST("/testimonials", hb.Testimonials.Create)
		api.PUT("/testimonials/:id", hb.Testimonials.Update)
		api.DELETE("/testimonials/:id", hb.Testimonials.Delete)

		api.PUT("/contact-info", hb.Contact.UpdateContactInfo)
		api.POST("/seed", hb.Seed.Seed)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
