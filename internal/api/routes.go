package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"rentwheels-backend-go/internal/core"
	"rentwheels-backend-go/internal/db"
	"rentwheels-backend-go/internal/middleware"
)

// SetupRoutes configures all application routes with their handlers and
// middleware. Global middleware (logging, recovery, CORS, metrics) is
// applied to the router before this function is called, in main.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	userService core.UserService,
	carService core.CarService,
	bookingService core.BookingService,
	listingService core.ListingService,
	uploadService core.UploadService,
) {
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("Firebase Auth client is not initialized; routes cannot be secured.")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient)

	authHandler := NewAuthHandler(userService)
	userHandler := NewUserHandler(userService)
	carHandler := NewCarHandler(carService)
	bookingHandler := NewBookingHandler(bookingService)
	listingHandler := NewListingHandler(listingService)
	uploadHandler := NewUploadHandler(uploadService)

	apiV1 := router.Group("/api/v1")
	{
		// Public car browsing.
		carsGroup := apiV1.Group("/cars")
		{
			carsGroup.GET("", carHandler.ListCars)
			carsGroup.GET("/available", carHandler.ListAvailableCars)
			carsGroup.GET("/:carId", carHandler.GetCar)
		}

		// Identity bootstrap and profile.
		usersGroup := apiV1.Group("/users")
		{
			usersGroup.POST("/initialize", authMW.VerifyToken(), authHandler.InitializeUserProfile)
			usersGroup.GET("/me", authMW.VerifyToken(), authHandler.GetCurrentUserProfile)
		}

		// Booking record path.
		bookingsGroup := apiV1.Group("/bookings", authMW.VerifyToken())
		{
			bookingsGroup.POST("", bookingHandler.CreateBooking)
			bookingsGroup.GET("", bookingHandler.ListBookings)
		}

		// Listing wizard; drafts are owner-scoped inside the service.
		listingsGroup := apiV1.Group("/listings", authMW.VerifyToken())
		{
			listingsGroup.POST("", listingHandler.StartDraft)
			listingsGroup.GET("/:draftId", listingHandler.GetDraft)
			listingsGroup.PATCH("/:draftId", listingHandler.UpdateDraft)
			listingsGroup.POST("/:draftId/next", listingHandler.NextStep)
			listingsGroup.POST("/:draftId/back", listingHandler.PrevStep)
			listingsGroup.POST("/:draftId/submit", listingHandler.Submit)
		}

		// Upload broker.
		uploadsGroup := apiV1.Group("/uploads", authMW.VerifyToken())
		{
			uploadsGroup.POST("", uploadHandler.CreateUploadSlot)
			uploadsGroup.GET("/:objectName/url", uploadHandler.ResolveURL)
		}

		// Admin surface. The token middleware authenticates; the role check
		// itself runs inside every mutating service method.
		adminGroup := apiV1.Group("/admin", authMW.VerifyToken())
		{
			adminGroup.GET("/cars", carHandler.ListCars)
			adminGroup.POST("/cars", carHandler.CreateCar)
			adminGroup.PATCH("/cars/:carId", carHandler.UpdateCar)
			adminGroup.DELETE("/cars/:carId", carHandler.DeleteCar)

			adminGroup.GET("/users", userHandler.ListUsers)
			adminGroup.PUT("/users/:externalId/role", userHandler.SetRole)
			adminGroup.DELETE("/users/:externalId", userHandler.DeleteUser)
			adminGroup.GET("/users/:externalId/cars", carHandler.ListCarsByOwner)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "RentWheels backend is healthy."})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("API routes configured under /api/v1, /health and /metrics.")
}
