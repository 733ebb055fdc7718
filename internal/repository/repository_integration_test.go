package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"crisis-server/internal/model"
	"crisis-server/internal/repository"
	"crisis-server/migrations"
	"crisis-server/pkg/migration"
)

// RepositoryIntegrationSuite поднимает реальный PostgreSQL в контейнере и
// прогоняет репозитории против настоящей схемы.
type RepositoryIntegrationSuite struct {
	suite.Suite
	ctx          context.Context
	pgContainer  *tcpostgres.PostgresContainer
	pool         *pgxpool.Pool
	scenarioRepo *repository.PgScenarioRepository
	progressRepo *repository.PgProgressRepository
	logger       *zap.Logger
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	var err error

	s.logger, err = zap.NewDevelopment()
	require.NoError(s.T(), err, "Failed to create logger for tests")

	s.pgContainer, err = tcpostgres.Run(s.ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
	)
	require.NoError(s.T(), err, "Failed to start postgres container")

	connStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "Failed to get postgres connection string")

	s.pool, err = pgxpool.New(s.ctx, connStr)
	require.NoError(s.T(), err, "Failed to connect to test postgres")

	migrator := migration.NewMigrator(migration.Config{
		MigrationsPath: ".",
		MigrationsFS:   migrations.FS,
	}, s.pool)
	require.NoError(s.T(), migrator.Up(s.ctx), "Failed to run migrations")

	s.scenarioRepo = repository.NewPgScenarioRepository(s.pool, s.logger)
	s.progressRepo = repository.NewPgProgressRepository(s.pool, s.logger)
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(s.ctx); err != nil {
			s.logger.Error("Failed to terminate postgres container", zap.Error(err))
		}
	}
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, "TRUNCATE TABLE user_responses, crisis_scenarios CASCADE")
	require.NoError(s.T(), err, "Failed to truncate tables")
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func sampleScenario(userID uuid.UUID) *model.Scenario {
	return &model.Scenario{
		UserID:          userID,
		ScenarioKey:     "technical_TECH_001_tech-startup-critical-hours-mixed",
		Category:        "technical",
		Difficulty:      "advanced",
		TemplateID:      "TECH_001",
		Industry:        "tech",
		CompanySize:     "startup",
		Severity:        "critical",
		Timeline:        "hours",
		StakeholderType: "mixed",
		Title:           "Server Outage During Peak Sales",
		Description:     "The primary database cluster went down during a flash sale, and every minute of downtime costs revenue and reputation.",
		Context:         "A startup tech company with aggressive growth targets.",
		Stakeholders:    "CTO, engineering team, customers",
		TimePressure:    "Resolution required within hours.",
		ExpertSolution:  "Failover to the replica, then run a blameless postmortem.",
		AssessmentCriteria: model.AssessmentCriteria{
			StrategyKeywords: []string{"failover", "postmortem"},
			CategorySpecific: []string{"system recovery"},
		},
		Source: model.ScenarioSourceTemplate,
	}
}

func (s *RepositoryIntegrationSuite) TestSaveAndGetScenario() {
	t := s.T()
	userID := uuid.New()

	scenario := sampleScenario(userID)
	require.NoError(t, s.scenarioRepo.Save(s.ctx, scenario))
	require.NotEqual(t, uuid.Nil, scenario.ID, "Save should assign an id")

	loaded, err := s.scenarioRepo.GetByID(s.ctx, scenario.ID)
	require.NoError(t, err)
	require.Equal(t, scenario.ScenarioKey, loaded.ScenarioKey)
	require.Equal(t, scenario.Title, loaded.Title)
	require.Equal(t, scenario.AssessmentCriteria.StrategyKeywords, loaded.AssessmentCriteria.StrategyKeywords)
	require.Equal(t, model.ScenarioSourceTemplate, loaded.Source)
}

func (s *RepositoryIntegrationSuite) TestGetScenario_NotFound() {
	_, err := s.scenarioRepo.GetByID(s.ctx, uuid.New())
	require.ErrorIs(s.T(), err, model.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestListUsedKeys() {
	t := s.T()
	userID := uuid.New()
	otherUser := uuid.New()

	first := sampleScenario(userID)
	require.NoError(t, s.scenarioRepo.Save(s.ctx, first))

	second := sampleScenario(userID)
	second.ScenarioKey = "business_BUS_001_fintech-scaleup-major-days-customer"
	require.NoError(t, s.scenarioRepo.Save(s.ctx, second))

	foreign := sampleScenario(otherUser)
	foreign.ScenarioKey = "resource_RES_001_healthcare-enterprise-minor-weeks-internal"
	require.NoError(t, s.scenarioRepo.Save(s.ctx, foreign))

	keys, err := s.scenarioRepo.ListUsedKeys(s.ctx, userID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{first.ScenarioKey, second.ScenarioKey}, keys)
}

func (s *RepositoryIntegrationSuite) TestProgressSummary() {
	t := s.T()
	userID := uuid.New()

	// No responses yet: zero summary, no error.
	summary, err := s.progressRepo.GetSummary(s.ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 0, summary.TotalCompleted)
	require.Equal(t, 0.0, summary.AverageScore)

	scenario := sampleScenario(userID)
	require.NoError(t, s.scenarioRepo.Save(s.ctx, scenario))

	for _, score := range []int{60, 80, 100} {
		require.NoError(t, s.progressRepo.RecordResponse(s.ctx, &model.ScenarioResponse{
			UserID:     userID,
			ScenarioID: scenario.ID,
			Score:      score,
		}))
	}

	summary, err = s.progressRepo.GetSummary(s.ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 3, summary.TotalCompleted)
	require.InDelta(t, 80.0, summary.AverageScore, 0.001)
}
