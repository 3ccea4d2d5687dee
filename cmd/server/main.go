package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dochouse/internal/config"
	"dochouse/internal/handler"
	"dochouse/internal/middleware"
	"dochouse/internal/repository"
	"dochouse/internal/service"
	"dochouse/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpiryHours)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	doctorRepo := repository.NewDoctorRepository(dbPool)
	reviewRepo := repository.NewReviewRepository(dbPool)
	appointmentRepo := repository.NewAppointmentRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	doctorService := service.NewDoctorService(doctorRepo)
	reviewService := service.NewReviewService(reviewRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, userRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()

	// Simple CORS middleware (allow all for development)
	// For production, configure specific origins, methods, headers
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)

	// --- Register Routes ---
	apiGroup := router.Group("/api/v1") // Base path for API
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW, userRepo)
	doctorHandler.RegisterDoctorRoutes(apiGroup, jwtAuthMW, userRepo)
	reviewHandler.RegisterReviewRoutes(apiGroup, jwtAuthMW, userRepo)
	appointmentHandler.RegisterAppointmentRoutes(apiGroup, jwtAuthMW, userRepo)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		// Check DB connection
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
