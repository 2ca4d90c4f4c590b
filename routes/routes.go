package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"studyspace/handlers"
	"studyspace/middleware"
	"studyspace/utils"
)

// HandlerBundle collects the page handlers and the session store the
// middleware needs.
type HandlerBundle struct {
	Auth     *handlers.AuthHandler
	Spaces   *handlers.SpaceHandler
	Bookings *handlers.BookingHandler
	Profile  *handlers.ProfileHandler
	Admin    *handlers.AdminHandler
	Sessions *utils.SessionStore
}

// RegisterAuthRoutes registers the session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", hb.Auth.LoginHandler)
		auth.POST("/register", hb.Auth.RegisterHandler)
		auth.GET("/check-email", hb.Auth.CheckEmailHandler)
		auth.POST("/logout", hb.Auth.LogoutHandler)
		auth.GET("/me", middleware.SessionAuthMiddleware(hb.Sessions), hb.Auth.MeHandler)
	}
}

// RegisterSpaceRoutes registers the public catalogue and the authenticated
// booking-dialog endpoints.
func RegisterSpaceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/spaces")
	{
		api.GET("", hb.Spaces.ListSpacesHandler)
		api.GET("/:id", hb.Spaces.GetSpaceHandler)

		// The slot grid needs the user's token for the bookings fetch.
		api.GET("/:id/slots", middleware.SessionAuthMiddleware(hb.Sessions), hb.Bookings.SlotGridHandler)
	}
}

// RegisterBookingRoutes registers the authenticated booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/bookings")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.GET("", hb.Bookings.ListBookingsHandler)
		api.POST("", hb.Bookings.CreateBookingHandler)
		api.PUT("/:id/cancel", hb.Bookings.CancelBookingHandler)
	}
}

// RegisterProfileRoutes registers the profile page endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/profile")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.GET("", hb.Profile.GetProfileHandler)
		api.PUT("", hb.Profile.UpdateProfileHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for the admin dashboard.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	admin := r.Group("/admin")
	{
		admin.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		admin.Use(middleware.AdminRoleMiddleware())

		admin.GET("/users", hb.Admin.ListUsersHandler)
		admin.POST("/users", hb.Admin.CreateUserHandler)
		admin.PUT("/users/:id", hb.Admin.UpdateUserHandler)
		admin.DELETE("/users/:id", hb.Admin.DeleteUserHandler)

		admin.POST("/spaces", hb.Admin.CreateSpaceHandler)
		admin.PUT("/spaces/:id", hb.Admin.UpdateSpaceHandler)
		admin.DELETE("/spaces/:id", hb.Admin.DeleteSpaceHandler)

		admin.GET("/bookings", hb.Admin.ListBookingsHandler)
		admin.PUT("/bookings/:id", hb.Admin.UpdateBookingHandler)
		admin.DELETE("/bookings/:id", hb.Admin.DeleteBookingHandler)
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
		AllowCredentials: false,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterSpaceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
