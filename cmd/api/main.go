package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"shuddhify/internal/adapter/api"
	"shuddhify/internal/adapter/api/handler"
	apimiddleware "shuddhify/internal/adapter/api/middleware"
	"shuddhify/internal/adapter/api/router"
	"shuddhify/internal/adapter/repository"
	"shuddhify/internal/infrastructure/cache"
	"shuddhify/internal/infrastructure/firebase"
	"shuddhify/internal/infrastructure/ratelimit"
	"shuddhify/internal/infrastructure/storage"
	"shuddhify/internal/infrastructure/websocket"
	"shuddhify/internal/infrastructure/workflow"
	"shuddhify/internal/usecase"
	"shuddhify/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Try to get service account from environment variable (for production)
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	serviceAccountPath := ""
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		// Fallback to file path (for local development)
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(
		ctx,
		cfg.StorageBucket,
		cfg.FirebaseProject,
		serviceAccountPath,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	reportRepo := repository.NewFirestoreReportRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	foodItemRepo := repository.NewFirestoreFoodItemRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	// Redis is optional; without it hotspots are recomputed per request.
	var hotspotCache usecase.HotspotCache
	if redisCache := cache.NewRedisHotspotCache(cfg.RedisAddr, cfg.RedisPassword); redisCache != nil {
		defer redisCache.Close()
		hotspotCache = redisCache
	}

	reportUseCase := usecase.NewReportUseCase(reportRepo, userRepo, wsManager)
	geoUseCase := usecase.NewGeoUseCase(reportRepo, hotspotCache)
	foodItemUseCase := usecase.NewFoodItemUseCase(foodItemRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, firebaseAuthClient)

	analysisClient := workflow.NewClient(cfg.AnalysisWebhook)

	handler.Setup(reportUseCase, geoUseCase, foodItemUseCase, userUseCase)
	handler.SetupAnalyzeHandler(analysisClient)
	handler.SetupFileHandler(storageClient)
	handler.SetupHealthHandler(firebaseAuthClient)
	handler.SetupDevTokenHandler(firebaseAuthClient, userRepo)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient, userUseCase)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(rateLimiter)

	wsHandler := handler.NewWebSocketHandler(wsManager)

	router.Setup(e, authMiddleware, rateLimitMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)
	router.SetupDevRouter(e, cfg.Environment)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
