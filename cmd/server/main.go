package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentwheels-backend-go/internal/api"
	"rentwheels-backend-go/internal/config"
	"rentwheels-backend-go/internal/core"
	"rentwheels-backend-go/internal/db"
	"rentwheels-backend-go/internal/middleware"
)

func main() {
	// --- 1. Initialize Logger (Zap) ---
	// Using NewDevelopment for more verbose, human-readable output during development.
	// For production, consider zap.NewProduction() or a custom configuration.
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync() // Flushes buffer, if any. IMPORTANT for buffered loggers.
	zapLogger.Info("Zap logger initialized successfully.")

	// --- 2. Load Application Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.")

	// --- 3. Initialize Firebase Admin SDK (Firestore, Auth, Cloud Storage clients) ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second) // Timeout for initialization
	defer cancelInitCtx()
	if err := db.InitFirebase(initCtx, appConfig); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth, Storage) initialized successfully.")

	// --- 4. Retrieve initialized clients ---
	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient() // Needed for AuthMiddleware
	storageClient := db.GetStorageClient()

	// Ensure clients are not nil (critical for application function)
	if firestoreClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firestore client is nil after initialization. Application cannot start.")
	}
	if firebaseAuthClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firebase Auth client is nil after initialization. Application cannot start.")
	}
	if storageClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Cloud Storage client is nil after initialization. Application cannot start.")
	}
	zapLogger.Info("Firestore, Firebase Auth and Cloud Storage clients retrieved successfully.")

	// --- 5. Connect to Redis (listing draft store) ---
	redisClient := db.NewRedisClient(appConfig)
	pingCtx, cancelPingCtx := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPingCtx()
	if err := db.PingRedis(pingCtx, redisClient); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to connect to Redis", zap.Error(err), zap.String("addr", appConfig.RedisAddr))
	}
	zapLogger.Info("Redis connection established.", zap.String("addr", appConfig.RedisAddr))

	// --- 6. Initialize Repositories ---
	userRepo := db.NewFirestoreUserRepository(firestoreClient)
	carRepo := db.NewFirestoreCarRepository(firestoreClient)
	bookingRepo := db.NewFirestoreBookingRepository(firestoreClient)
	draftRepo := db.NewRedisDraftRepository(redisClient)
	uploadStore := db.NewGCSUploadStore(storageClient, appConfig.StorageBucket)
	zapLogger.Info("Repositories initialized successfully.")

	// --- 7. Initialize Services ---
	userService := core.NewUserService(userRepo)
	carService := core.NewCarService(carRepo, userRepo)
	bookingService := core.NewBookingService(bookingRepo)
	listingService := core.NewListingService(draftRepo, carRepo, time.Duration(appConfig.DraftTTLMinutes)*time.Minute)
	uploadService := core.NewUploadService(uploadStore)
	zapLogger.Info("Core services initialized successfully.")

	// --- 8. Setup Gin HTTP Engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
		zapLogger.Info("Gin mode set to 'release'.")
	} else {
		gin.SetMode(gin.DebugMode) // Default or "debug"
		zapLogger.Info("Gin mode set to 'debug'.")
	}
	// Using gin.New() to have control over the middleware stack (e.g., not using gin.DefaultLogger if using custom Zap logger).
	router := gin.New()
	zapLogger.Info("Gin engine created.")

	// --- 9. Apply Global Middleware (Order is important) ---
	router.Use(middleware.RequestLogger(zapLogger))      // Log every request; should be early.
	router.Use(middleware.RecoveryMiddleware(zapLogger)) // Recover from panics; should be after logger, before other handlers.
	router.Use(middleware.NewMetrics().Handler())        // Request counters and latency histograms, exposed on /metrics.

	// Apply CORS middleware only if ClientURL is configured, otherwise log a warning.
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured. API might not be accessible from a web frontend.")
	}

	// --- 10. Setup API Routes ---
	api.SetupRoutes(
		router,
		zapLogger,
		userService,
		carService,
		bookingService,
		listingService,
		uploadService,
	)
	// SetupRoutes logs its own success message.

	// --- 11. Configure and Start HTTP Server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	// Goroutine for starting the server, so it doesn't block graceful shutdown logic.
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 12. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received on the quitChannel.
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	// Give active connections time to finish before the server is forced to close.
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	zapLogger.Info("Attempting graceful shutdown of HTTP server...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		zapLogger.Warn("Error closing Redis client during shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
