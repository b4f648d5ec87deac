package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/contract"
	handlerHttp "github.com/ShaiBatonya/starquestDevServer/internal/handler/http"
	redisclient "github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/cache"
	"github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/config"
	database "github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/database"
	externalservices "github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/external_services"
	"github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/jwt"
	"github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/logger"
	passwordservice "github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/password_service"
	randomgenerator "github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/random_generator"
	"github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/repository/mongodb"
	"github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/store"
	"github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/uuidgen"
	"github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/validator"
	"github.com/ShaiBatonya/starquestDevServer/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userCollection := db.Collection("users")
	workspaceCollection := db.Collection("workspaces")
	userRepo := mongodb.NewMongoUserRepository(userCollection)
	workspaceRepo := mongodb.NewMongoWorkspaceRepository(workspaceCollection, userCollection)
	invitationRepo := mongodb.NewMongoInvitationRepository(db.Collection("invitations"))
	dailyReportRepo := mongodb.NewMongoDailyReportRepository(db.Collection("daily_reports"))
	weeklyReportRepo := mongodb.NewMongoWeeklyReportRepository(db.Collection("weekly_reports"))

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := invitationRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("Failed to create invitation indexes: %v", err)
	}
	cancelIndex()

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	appConfig := config.NewConfig()
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetJWTCookieExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	mailService := externalservices.NewEmailService(
		os.Getenv("EMAIL_HOST"),
		os.Getenv("EMAIL_PORT"),
		os.Getenv("EMAIL_USERNAME"),
		os.Getenv("EMAIL_APP_PASSWORD"),
		os.Getenv("EMAIL_FROM"),
	)
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Optional Dependency Injection: Redis leaderboard cache
	var leaderboardCache contract.ILeaderboardCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if rdb != nil {
			defer redisclient.Close(rdb)
			leaderboardCache = store.NewLeaderboardCacheStore(rdb)
		}
	}

	// Dependency Injection: Usecases
	taskUsecase := usecase.NewTaskUseCase(workspaceRepo, uuidGenerator, appLogger)
	invitationUsecase := usecase.NewInvitationUseCase(invitationRepo, workspaceRepo, userRepo, taskUsecase, mailService, uuidGenerator, randomGenerator, appConfig, appLogger)
	authUsecase := usecase.NewAuthUseCase(userRepo, invitationUsecase, hasher, jwtService, mailService, uuidGenerator, randomGenerator, appValidator, appConfig, appLogger)
	workspaceUsecase := usecase.NewWorkspaceUseCase(workspaceRepo, userRepo, invitationRepo, uuidGenerator, appLogger)
	questUsecase := usecase.NewQuestUseCase(workspaceRepo, leaderboardCache, appLogger)
	leaderboardUsecase := usecase.NewLeaderboardUseCase(workspaceRepo, leaderboardCache, appLogger)
	reportUsecase := usecase.NewReportUseCase(dailyReportRepo, weeklyReportRepo, workspaceRepo, uuidGenerator, appLogger)

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		authUsecase, workspaceUsecase, invitationUsecase,
		taskUsecase, questUsecase, leaderboardUsecase, reportUsecase,
		appConfig,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
