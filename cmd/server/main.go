package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/segunqa2/next-peptok-sub000/internal/config"
	"github.com/segunqa2/next-peptok-sub000/internal/database"
	"github.com/segunqa2/next-peptok-sub000/internal/jobs"
	"github.com/segunqa2/next-peptok-sub000/internal/logger"
	"github.com/segunqa2/next-peptok-sub000/internal/repository"
	"github.com/segunqa2/next-peptok-sub000/internal/routes"
	"github.com/segunqa2/next-peptok-sub000/internal/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()
	zlog := logger.Get()

	if cfg.DBUrl == "" {
		zlog.Fatal("DB_URL is required")
	}
	if err := database.ConnectDB(cfg.DBUrl, cfg.DBMaxConns, cfg.DBMinConns); err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB()

	matchingService := services.NewMatchingService(
		repository.NewCoachRepository(database.DB),
		repository.NewMatchRepository(database.DB),
		repository.NewMatchingRequestRepository(database.DB),
		services.ScoreWeights{
			Expertise:  cfg.ExpertiseWeight,
			Experience: cfg.ExperienceWeight,
			Rating:     cfg.RatingWeight,
		},
	)
	scheduler := jobs.NewScheduler(matchingService, cfg.MatchExpiryHours)
	if err := scheduler.Start(); err != nil {
		zlog.Fatal("Failed to start scheduler", zap.Error(err))
	}
	defer scheduler.Stop()

	app := fiber.New()

	app.Use(cors.New())
	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	routes.RegisterRoutes(app, cfg, database.DB)

	zlog.Info("Server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("Server failed to start", zap.Error(err))
	}
}
