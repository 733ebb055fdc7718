package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"crisis-server/internal/engine"
	"crisis-server/internal/handler"
	"crisis-server/internal/middleware"
	"crisis-server/internal/mocks"
	"crisis-server/internal/model"
	"crisis-server/internal/service"
)

func setupRouter(t *testing.T, userID uuid.UUID) (*gin.Engine, *mocks.MockScenarioService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockService := mocks.NewMockScenarioService(t)
	h := handler.NewScenarioHandler(mockService, zap.NewNop())

	router := gin.New()
	authStub := func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, userID)
		c.Next()
	}
	h.RegisterRoutes(router, authStub)
	return router, mockService
}

func TestScenarioHandler_Generate(t *testing.T) {
	userID := uuid.New()
	router, mockService := setupRouter(t, userID)

	expected := &model.Scenario{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    "technical",
		ScenarioKey: "technical_TECH_001_tech-startup-minor-days-internal",
		Title:       "Server Outage Crisis",
	}
	mockService.On("Generate", mock.Anything, userID, service.GenerateParams{
		Category:   "technical",
		Difficulty: "beginner",
	}).Return(expected, nil).Once()

	body := `{"category": "technical", "difficulty": "beginner"}`
	req := httptest.NewRequest(http.MethodPost, "/api/scenarios/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got model.Scenario
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, expected.ScenarioKey, got.ScenarioKey)
	assert.Equal(t, expected.Title, got.Title)
	mockService.AssertExpectations(t)
}

func TestScenarioHandler_Generate_EmptyBodyIsAllowed(t *testing.T) {
	userID := uuid.New()
	router, mockService := setupRouter(t, userID)

	mockService.On("Generate", mock.Anything, userID, service.GenerateParams{}).
		Return(&model.Scenario{ID: uuid.New(), UserID: userID}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/scenarios/generate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestScenarioHandler_Generate_MalformedBody(t *testing.T) {
	router, mockService := setupRouter(t, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/api/scenarios/generate", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Generate")
}

func TestScenarioHandler_Daily(t *testing.T) {
	userID := uuid.New()
	router, mockService := setupRouter(t, userID)

	mockService.On("GenerateDaily", mock.Anything, userID).
		Return(&model.Scenario{ID: uuid.New(), UserID: userID, Difficulty: "intermediate"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/scenarios/daily", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got model.Scenario
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "intermediate", got.Difficulty)
	mockService.AssertExpectations(t)
}

func TestScenarioHandler_RecordResponse(t *testing.T) {
	userID := uuid.New()
	scenarioID := uuid.New()

	t.Run("accepts valid score", func(t *testing.T) {
		router, mockService := setupRouter(t, userID)
		mockService.On("RecordResponse", mock.Anything, userID, scenarioID, 85).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/scenarios/"+scenarioID.String()+"/response", strings.NewReader(`{"score": 85}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("rejects score out of range", func(t *testing.T) {
		router, mockService := setupRouter(t, userID)

		req := httptest.NewRequest(http.MethodPost, "/api/scenarios/"+scenarioID.String()+"/response", strings.NewReader(`{"score": 150}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "RecordResponse")
	})

	t.Run("rejects missing score", func(t *testing.T) {
		router, _ := setupRouter(t, userID)

		req := httptest.NewRequest(http.MethodPost, "/api/scenarios/"+scenarioID.String()+"/response", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects bad scenario id", func(t *testing.T) {
		router, _ := setupRouter(t, userID)

		req := httptest.NewRequest(http.MethodPost, "/api/scenarios/not-a-uuid/response", strings.NewReader(`{"score": 50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps unknown scenario to 404", func(t *testing.T) {
		router, mockService := setupRouter(t, userID)
		mockService.On("RecordResponse", mock.Anything, userID, scenarioID, 50).Return(model.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/scenarios/"+scenarioID.String()+"/response", strings.NewReader(`{"score": 50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestScenarioHandler_Stats(t *testing.T) {
	router, mockService := setupRouter(t, uuid.New())

	mockService.On("Stats").Return(engine.Stats(engine.DefaultCatalog())).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/scenarios/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got engine.AlgorithmStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 44928, got.TotalScenarios)
	assert.Equal(t, 123, got.YearsOfContent)
	mockService.AssertExpectations(t)
}

func TestScenarioHandler_Health(t *testing.T) {
	router, _ := setupRouter(t, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}
