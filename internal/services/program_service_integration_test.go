package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/segunqa2/next-peptok-sub000/internal/models"
	"github.com/segunqa2/next-peptok-sub000/internal/repository"
)

var (
	testDBOnce sync.Once
	testDBPool *pgxpool.Pool
	testDBErr  error
)

func TestMatchingAndSessionGenerationFlow(t *testing.T) {
	ctx := context.Background()
	pool := integrationTestPool(t)

	companyID := createTestCompany(t, ctx, pool, "standard", 10)
	strongCoachID := createTestCoach(t, ctx, pool, []string{"Leadership", "Communication"}, "10+ years", 4.8, 150)
	weakCoachID := createTestCoach(t, ctx, pool, []string{"cooking"}, "1 year", 2.0, 60)
	t.Cleanup(func() { cleanupTestData(t, ctx, pool, companyID, strongCoachID, weakCoachID) })

	requestRepo := repository.NewMatchingRequestRepository(pool)
	request, err := requestRepo.Create(ctx, repository.CreateMatchingRequestInput{
		CompanyID:       companyID,
		RequesterID:     9001,
		Title:           "Leadership coaching",
		RequiredSkills:  []string{"leadership"},
		ExperienceLevel: "5 years",
		StartDate:       time.Date(2030, time.July, 17, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2030, time.July, 31, 0, 0, 0, 0, time.UTC),
		Frequency:       "weekly",
		HoursPerSession: 1,
	})
	if err != nil {
		t.Fatalf("Create request: %v", err)
	}

	matchingService := NewMatchingService(
		repository.NewCoachRepository(pool),
		repository.NewMatchRepository(pool),
		requestRepo,
		DefaultScoreWeights(),
	)

	matches, err := matchingService.GenerateMatches(ctx, request.Profile())
	if err != nil {
		t.Fatalf("GenerateMatches: %v", err)
	}
	if len(matches) < 2 {
		t.Fatalf("expected at least the 2 test coaches matched, got %d", len(matches))
	}
	var top *models.Match
	for i := range matches {
		if matches[i].CoachID == strongCoachID {
			top = &matches[i]
			break
		}
		if matches[i].CoachID == weakCoachID {
			t.Fatalf("weaker coach ranked above stronger coach: %+v", matches)
		}
	}
	if top == nil {
		t.Fatalf("strong coach missing from matches: %+v", matches)
	}

	accepted, err := matchingService.UpdateMatchStatus(ctx, top.ID, "accept")
	if err != nil {
		t.Fatalf("UpdateMatchStatus: %v", err)
	}
	if accepted.Status != models.MatchStatusAccepted {
		t.Fatalf("expected accepted match, got %q", accepted.Status)
	}

	assigned, err := requestRepo.GetByID(ctx, request.ID)
	if err != nil {
		t.Fatalf("GetByID request: %v", err)
	}
	if assigned.CoachID == nil || *assigned.CoachID != strongCoachID {
		t.Fatalf("expected coach %d assigned, got %+v", strongCoachID, assigned.CoachID)
	}
	if assigned.CoachHourlyRate == nil || *assigned.CoachHourlyRate != 150 {
		t.Fatalf("expected hourly rate 150 captured, got %+v", assigned.CoachHourlyRate)
	}

	programService := NewProgramService(
		requestRepo,
		repository.NewSessionRepository(pool),
		repository.NewRateCardRepository(pool),
		repository.NewCompanyRepository(pool),
		DefaultServiceChargeTier(),
	)

	sessions, err := programService.GenerateSessions(ctx, GenerateSessionsInput{
		ProgramID:        request.ID,
		StartDate:        assigned.StartDate,
		EndDate:          assigned.EndDate,
		Frequency:        assigned.Frequency,
		HoursPerSession:  assigned.HoursPerSession,
		CoachID:          strongCoachID,
		CoachRate:        *assigned.CoachHourlyRate,
		ParticipantCount: 1,
	})
	if err != nil {
		t.Fatalf("GenerateSessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 weekly sessions, got %d", len(sessions))
	}
	if sessions[0].TotalAmount != 165 {
		t.Fatalf("expected total 165 per session, got %v", sessions[0].TotalAmount)
	}

	listed, err := programService.ListProgramSessions(ctx, request.ID)
	if err != nil {
		t.Fatalf("ListProgramSessions: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 listed sessions, got %d", len(listed))
	}
}

func integrationTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	testDBOnce.Do(func() {
		_ = godotenv.Load(".env")
		_ = godotenv.Load(filepath.Join("..", "..", ".env"))

		dbURL := os.Getenv("DB_URL")
		if dbURL == "" {
			testDBErr = fmt.Errorf("DB_URL is not set")
			return
		}

		cfg, err := pgxpool.ParseConfig(dbURL)
		if err != nil {
			testDBErr = err
			return
		}

		testDBPool, testDBErr = pgxpool.NewWithConfig(context.Background(), cfg)
		if testDBErr != nil {
			return
		}
		testDBErr = testDBPool.Ping(context.Background())
	})

	if testDBErr != nil {
		t.Skipf("skipping integration test: %v", testDBErr)
	}
	return testDBPool
}

func createTestCompany(t *testing.T, ctx context.Context, pool *pgxpool.Pool, tier string, employees int) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(ctx,
		"INSERT INTO companies (name, subscription_tier, employee_count) VALUES ($1, $2, $3) RETURNING id",
		fmt.Sprintf("test-company-%d", time.Now().UnixNano()), tier, employees,
	).Scan(&id)
	if err != nil {
		t.Fatalf("create company: %v", err)
	}
	return id
}

func createTestCoach(t *testing.T, ctx context.Context, pool *pgxpool.Pool, expertise []string, experience string, rating, hourlyRate float64) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO coach_profiles (user_id, full_name, expertise, experience, hourly_rate, rating, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, true) RETURNING id`,
		time.Now().UnixNano(), "Test Coach", expertise, experience, hourlyRate, rating,
	).Scan(&id)
	if err != nil {
		t.Fatalf("create coach: %v", err)
	}
	return id
}

func cleanupTestData(t *testing.T, ctx context.Context, pool *pgxpool.Pool, companyID int64, coachIDs ...int64) {
	t.Helper()

	if _, err := pool.Exec(ctx, "DELETE FROM sessions WHERE company_id = $1", companyID); err != nil {
		t.Fatalf("cleanup sessions: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM matches WHERE request_id IN (SELECT id FROM matching_requests WHERE company_id = $1)", companyID); err != nil {
		t.Fatalf("cleanup matches: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM matching_requests WHERE company_id = $1", companyID); err != nil {
		t.Fatalf("cleanup requests: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM coach_profiles WHERE id = ANY($1)", coachIDs); err != nil {
		t.Fatalf("cleanup coaches: %v", err)
	}
	if _, err := pool.Exec(ctx, "DELETE FROM companies WHERE id = $1", companyID); err != nil {
		t.Fatalf("cleanup company: %v", err)
	}
}
