package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"crisis-server/internal/middleware"
	"crisis-server/internal/model"
	"crisis-server/internal/service"
)

// ScenarioHandler exposes scenario generation over HTTP.
type ScenarioHandler struct {
	scenarios service.ScenarioService
	logger    *zap.Logger
}

func NewScenarioHandler(scenarios service.ScenarioService, logger *zap.Logger) *ScenarioHandler {
	return &ScenarioHandler{
		scenarios: scenarios,
		logger:    logger.Named("ScenarioHandler"),
	}
}

// RegisterRoutes wires all scenario endpoints. Everything except /health and
// the stats endpoint requires an authenticated user.
func (h *ScenarioHandler) RegisterRoutes(router *gin.Engine, authMW gin.HandlerFunc) {
	router.GET("/health", h.health)

	api := router.Group("/api/scenarios")
	api.GET("/stats", h.stats)
	protected := api.Group("")
	protected.Use(authMW)
	{
		protected.POST("/generate", h.generate)
		protected.GET("/daily", h.daily)
		protected.POST("/:id/response", h.recordResponse)
	}
}

func (h *ScenarioHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// generate produces a scenario from the caller's preferences.
func (h *ScenarioHandler) generate(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		handleServiceError(c, model.ErrTokenInvalid)
		return
	}

	var req generateRequest
	// An empty body is a valid request: everything is then randomized.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{
				Code:    model.ErrCodeInvalidInput,
				Message: fmt.Sprintf("invalid request body: %v", err),
			})
			return
		}
	}

	scenario, err := h.scenarios.Generate(c.Request.Context(), userID, service.GenerateParams{
		Category:      req.Category,
		Difficulty:    req.Difficulty,
		Industry:      req.Industry,
		CompanySize:   req.CompanySize,
		UsedScenarios: req.UsedScenarios,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, scenario)
}

// daily returns the scenario of the day for the caller.
func (h *ScenarioHandler) daily(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		handleServiceError(c, model.ErrTokenInvalid)
		return
	}

	scenario, err := h.scenarios.GenerateDaily(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, scenario)
}

// recordResponse stores the caller's scored answer for a scenario.
func (h *ScenarioHandler) recordResponse(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		handleServiceError(c, model.ErrTokenInvalid)
		return
	}

	scenarioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    model.ErrCodeInvalidInput,
			Message: "scenario id must be a uuid",
		})
		return
	}

	var req recordResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    model.ErrCodeInvalidInput,
			Message: fmt.Sprintf("invalid request body: %v", err),
		})
		return
	}
	if *req.Score < 0 || *req.Score > 100 {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{
			Code:    model.ErrCodeInvalidInput,
			Message: "score must be between 0 and 100",
		})
		return
	}

	if err := h.scenarios.RecordResponse(c.Request.Context(), userID, scenarioID, *req.Score); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// stats reports the generation capacity of the engine.
func (h *ScenarioHandler) stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.scenarios.Stats())
}
