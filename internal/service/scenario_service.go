package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"crisis-server/internal/config"
	"crisis-server/internal/engine"
	"crisis-server/internal/model"
	"crisis-server/internal/repository"
)

const (
	minAcceptableTitleLen       = 10
	minAcceptableDescriptionLen = 50
	maxCategorySpecificKeywords = 8
)

// GenerateParams carries the raw generation preferences from the API.
type GenerateParams struct {
	Category      string
	Difficulty    string
	Industry      string
	CompanySize   string
	UsedScenarios []string
}

// ScenarioService is the application-level scenario API: generation with
// optional AI enhancement, daily scenarios, progress recording and stats.
type ScenarioService interface {
	Generate(ctx context.Context, userID uuid.UUID, params GenerateParams) (*model.Scenario, error)
	GenerateDaily(ctx context.Context, userID uuid.UUID) (*model.Scenario, error)
	RecordResponse(ctx context.Context, userID, scenarioID uuid.UUID, score int) error
	Stats() engine.AlgorithmStats
}

type scenarioService struct {
	cfg       *config.Config
	generator *engine.Generator
	catalog   *engine.Catalog
	aiClient  AIClient // nil when enhancement is disabled
	scenarios repository.ScenarioRepository
	progress  repository.ProgressRepository
	daily     repository.DailyScenarioCache
	logger    *zap.Logger

	newRand func() *rand.Rand
	now     func() time.Time
	sleep   func(time.Duration)
}

var _ ScenarioService = (*scenarioService)(nil)

// NewScenarioService wires the generation engine with its collaborators.
// aiClient may be nil; generation then stays purely template-based.
func NewScenarioService(
	cfg *config.Config,
	catalog *engine.Catalog,
	aiClient AIClient,
	scenarios repository.ScenarioRepository,
	progress repository.ProgressRepository,
	daily repository.DailyScenarioCache,
	logger *zap.Logger,
) ScenarioService {
	return &scenarioService{
		cfg:       cfg,
		generator: engine.NewGenerator(catalog),
		catalog:   catalog,
		aiClient:  aiClient,
		scenarios: scenarios,
		progress:  progress,
		daily:     daily,
		logger:    logger.Named("ScenarioService"),
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Generate produces one scenario for the user. The request never fails on
// generation itself; storage problems degrade to a warning so the trainee
// still gets content.
func (s *scenarioService) Generate(ctx context.Context, userID uuid.UUID, params GenerateParams) (*model.Scenario, error) {
	used, err := s.scenarios.ListUsedKeys(ctx, userID)
	if err != nil {
		s.logger.Warn("Could not load used scenario keys, generating without history",
			zap.String("user_id", userID.String()), zap.Error(err))
		used = nil
	}
	used = append(used, params.UsedScenarios...)

	rng := s.newRand()
	scenario := s.generator.Generate(engine.GenerateRequest{
		Category:      params.Category,
		Difficulty:    params.Difficulty,
		Industry:      params.Industry,
		CompanySize:   params.CompanySize,
		UsedScenarios: used,
	}, rng)
	scenario.UserID = userID

	s.enhanceWithAI(ctx, scenario)
	s.persist(ctx, scenario)

	return scenario, nil
}

// GenerateDaily returns the scenario of the day for the user, generating and
// caching it on the first request of the day.
func (s *scenarioService) GenerateDaily(ctx context.Context, userID uuid.UUID) (*model.Scenario, error) {
	day := s.now().UTC().Format("2006-01-02")

	if cached, err := s.daily.Get(ctx, userID, day); err == nil {
		return cached, nil
	}

	summary, err := s.progress.GetSummary(ctx, userID)
	if err != nil {
		s.logger.Warn("Could not load progress summary, defaulting to beginner",
			zap.String("user_id", userID.String()), zap.Error(err))
		summary = model.ProgressSummary{UserID: userID}
	}

	used, err := s.scenarios.ListUsedKeys(ctx, userID)
	if err != nil {
		s.logger.Warn("Could not load used scenario keys for daily generation",
			zap.String("user_id", userID.String()), zap.Error(err))
		used = nil
	}

	rng := s.newRand()
	scenario := s.generator.GenerateDaily(engine.DailyProfile{
		Progress: engine.Progress{
			TotalCompleted: summary.TotalCompleted,
			AverageScore:   summary.AverageScore,
		},
		UsedScenarios: used,
	}, rng)
	scenario.UserID = userID

	s.enhanceWithAI(ctx, scenario)
	s.persist(ctx, scenario)

	if err := s.daily.Set(ctx, userID, day, scenario, untilMidnightUTC(s.now())); err != nil {
		s.logger.Warn("Could not cache daily scenario", zap.String("user_id", userID.String()), zap.Error(err))
	}

	return scenario, nil
}

// RecordResponse stores a scored answer after verifying the scenario exists.
func (s *scenarioService) RecordResponse(ctx context.Context, userID, scenarioID uuid.UUID, score int) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("score %d out of range [0,100]", score)
	}
	if _, err := s.scenarios.GetByID(ctx, scenarioID); err != nil {
		return err
	}
	return s.progress.RecordResponse(ctx, &model.ScenarioResponse{
		UserID:     userID,
		ScenarioID: scenarioID,
		Score:      score,
	})
}

// Stats returns the capacity formula and real catalog coverage.
func (s *scenarioService) Stats() engine.AlgorithmStats {
	return engine.Stats(s.catalog)
}

// enhanceWithAI asks the AI provider to rewrite the scenario narrative.
// Any failure leaves the template content in place; enhancement is strictly
// best-effort.
func (s *scenarioService) enhanceWithAI(ctx context.Context, scenario *model.Scenario) {
	if s.aiClient == nil {
		return
	}

	userPrompt := buildScenarioPrompt(scenario)
	raw, err := s.generateWithRetries(ctx, scenario.UserID.String(), userPrompt)
	if err != nil {
		s.logger.Warn("AI enhancement failed, keeping template content",
			zap.String("scenario_key", scenario.ScenarioKey), zap.Error(err))
		return
	}

	content := parseScenarioContent(raw)
	applyEnhancedContent(scenario, content)
	scenario.Source = model.ScenarioSourceAI
}

// generateWithRetries calls the AI client with exponential backoff and
// jitter, mirroring the worker retry policy.
func (s *scenarioService) generateWithRetries(ctx context.Context, userID, userPrompt string) (string, error) {
	baseDelay := s.cfg.AIBaseRetryDelay
	var lastErr error

	for attempt := 1; attempt <= s.cfg.AIMaxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.AITimeout)
		raw, _, err := s.aiClient.GenerateText(callCtx, userID, systemPrompt, userPrompt, GenerationParams{
			Temperature: float64Ptr(0.8),
			MaxTokens:   intPtr(1500),
			TopP:        float64Ptr(0.9),
		})
		cancel()

		if err == nil {
			return raw, nil
		}
		lastErr = err
		s.logger.Warn("AI call failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", s.cfg.AIMaxAttempts),
			zap.Error(err))

		if attempt == s.cfg.AIMaxAttempts {
			break
		}

		delay := float64(baseDelay) * math.Pow(2, float64(attempt-1))
		jitter := delay * 0.1
		delay += jitter * (rand.Float64()*2 - 1)
		waitDuration := time.Duration(delay)
		if waitDuration < baseDelay {
			waitDuration = baseDelay
		}
		s.sleep(waitDuration)
	}

	return "", fmt.Errorf("%w: %v", model.ErrAIGenerationFailed, lastErr)
}

// applyEnhancedContent merges parsed AI content into the scenario, keeping
// minimum quality floors: too-short titles and descriptions fall back to
// synthesized ones, and category keywords are topped up and capped.
func applyEnhancedContent(scenario *model.Scenario, content ScenarioContent) {
	if len(content.Title) < minAcceptableTitleLen {
		content.Title = fmt.Sprintf("%s Crisis at %s %s Company",
			capitalizeWord(scenario.Category), scenario.CompanySize, scenario.Industry)
	}
	if len(content.Description) < minAcceptableDescriptionLen {
		content.Description = fmt.Sprintf("A %s %s crisis has emerged affecting operations. Immediate intervention required within %s.",
			scenario.Severity, scenario.Category, scenario.Timeline)
	}

	merged := append(content.AssessmentCriteria.CategorySpecific,
		engine.CategoryKeywords(engine.Category(scenario.Category))...)
	if len(merged) > maxCategorySpecificKeywords {
		merged = merged[:maxCategorySpecificKeywords]
	}
	content.AssessmentCriteria.CategorySpecific = merged

	scenario.Title = content.Title
	scenario.Description = content.Description
	scenario.Context = content.Context
	scenario.Stakeholders = content.Stakeholders
	scenario.TimePressure = content.TimePressure
	scenario.ExpertSolution = content.ExpertSolution
	scenario.AssessmentCriteria = content.AssessmentCriteria
}

// persist saves the scenario, logging instead of failing the request when
// storage is down. The trainee keeps the generated content either way.
func (s *scenarioService) persist(ctx context.Context, scenario *model.Scenario) {
	if err := s.scenarios.Save(ctx, scenario); err != nil {
		s.logger.Error("Could not persist scenario",
			zap.String("scenario_key", scenario.ScenarioKey), zap.Error(err))
	}
}

// untilMidnightUTC returns the duration until the next UTC midnight, so the
// daily cache entry expires with the calendar day.
func untilMidnightUTC(now time.Time) time.Duration {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	return midnight.Sub(now)
}

func capitalizeWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func float64Ptr(f float64) *float64 { return &f }
func intPtr(i int) *int             { return &i }
