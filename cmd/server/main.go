package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"oficina_api/internal/config"
	"oficina_api/internal/handler"
	"oficina_api/internal/middleware"
	"oficina_api/internal/repository"
	"oficina_api/internal/service"
	"oficina_api/internal/utils"
	"oficina_api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log := logger.NewLogger()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHours, err := strconv.ParseInt(os.Getenv("JWT_EXPIRATION_HOURS"), 10, 64)
	if err != nil {
		log.Warnf("Invalid JWT_EXPIRATION_HOURS, defaulting to 24: %v", err)
		jwtExpHours = 24
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool, log); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool, log)
	clientRepo := repository.NewClientRepository(dbPool, log)
	vehicleRepo := repository.NewVehicleRepository(dbPool, log)
	orderRepo := repository.NewOrderRepository(dbPool, log)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	orderService, err := service.NewOrderService(orderRepo)
	if err != nil {
		log.Fatalf("Failed to initialize order service: %v", err)
	}
	clientService := service.NewClientService(clientRepo, vehicleRepo, orderRepo)
	vehicleService := service.NewVehicleService(vehicleRepo, clientRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, log)
	clientHandler := handler.NewClientHandler(clientService, orderService, log)
	vehicleHandler := handler.NewVehicleHandler(vehicleService, log)
	orderHandler := handler.NewOrderHandler(orderService, log)

	// --- Setup Gin Router ---
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.MetricsMiddleware())

	// Simple CORS middleware (allow all for development)
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
	adminMW := middleware.AdminMiddleware(userRepo, log)

	// --- Register Routes --- (legacy paths, no API prefix)
	rootGroup := router.Group("")
	authHandler.RegisterAuthRoutes(rootGroup, jwtAuthMW, adminMW)
	clientHandler.RegisterClientRoutes(rootGroup)
	vehicleHandler.RegisterVehicleRoutes(rootGroup)
	orderHandler.RegisterOrderRoutes(rootGroup)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "Hello, World!")
	})

	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Infof("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exiting")
}
