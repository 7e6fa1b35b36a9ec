package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/segunqa2/next-peptok-sub000/internal/config"
	"github.com/segunqa2/next-peptok-sub000/internal/handlers"
	"github.com/segunqa2/next-peptok-sub000/internal/middleware"
	"github.com/segunqa2/next-peptok-sub000/internal/repository"
	"github.com/segunqa2/next-peptok-sub000/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	coachRepo := repository.NewCoachRepository(db)
	requestRepo := repository.NewMatchingRequestRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	rateCardRepo := repository.NewRateCardRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	weights := services.ScoreWeights{
		Expertise:  cfg.ExpertiseWeight,
		Experience: cfg.ExperienceWeight,
		Rating:     cfg.RatingWeight,
	}
	defaultTier := services.DefaultServiceChargeTier()
	defaultTier.ServiceChargePercentage = cfg.ServiceChargePercent
	defaultTier.CommissionPercentage = cfg.CommissionPercent

	matchingService := services.NewMatchingService(coachRepo, matchRepo, requestRepo, weights)
	programService := services.NewProgramService(requestRepo, sessionRepo, rateCardRepo, companyRepo, defaultTier)
	sessionService := services.NewSessionService(sessionRepo)
	metricsService := services.NewMetricsService(sessionRepo, requestRepo, reviewRepo, companyRepo)

	requestHandler := handlers.NewRequestHandler(requestRepo)
	matchingHandler := handlers.NewMatchingHandler(matchingService, requestRepo)
	programHandler := handlers.NewProgramHandler(programService, requestRepo)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	metricsHandler := handlers.NewMetricsHandler(metricsService)

	api := app.Group("/api")
	v1 := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	matchingRequests := v1.Group("/matching-requests")
	matchingRequests.Post("/", requestHandler.CreateRequest)
	matchingRequests.Get("/:id", requestHandler.GetRequest)
	matchingRequests.Post("/:id/matches", matchingHandler.GenerateMatches)
	matchingRequests.Get("/:id/matches", matchingHandler.ListMatches)
	matchingRequests.Post("/:id/search", matchingHandler.SearchCoaches)
	matchingRequests.Post("/:id/sessions", programHandler.GenerateSessions)
	matchingRequests.Get("/:id/sessions", programHandler.ListProgramSessions)

	matches := v1.Group("/matches")
	matches.Put("/:id/status", matchingHandler.UpdateMatchStatus)

	sessions := v1.Group("/sessions")
	sessions.Get("/", sessionHandler.ListSessions)
	sessions.Get("/:id", sessionHandler.GetSession)
	sessions.Put("/:id/status", sessionHandler.UpdateSessionStatus)

	companies := v1.Group("/companies")
	companies.Get("/:id/matching-requests", requestHandler.ListCompanyRequests)
	companies.Get("/:id/metrics", metricsHandler.GetCompanyMetrics)
}
