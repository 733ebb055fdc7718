package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"crisis-server/internal/model"
)

func handleServiceError(c *gin.Context, err error) {
	var statusCode int
	var errResp model.ErrorResponse

	switch {
	case errors.Is(err, model.ErrNotFound):
		statusCode = http.StatusNotFound
		errResp = model.ErrorResponse{Code: model.ErrCodeNotFound, Message: "Requested record not found"}
	case errors.Is(err, model.ErrTokenInvalid):
		statusCode = http.StatusUnauthorized
		errResp = model.ErrorResponse{Code: model.ErrCodeTokenInvalid, Message: "Token is invalid or malformed"}
	case errors.Is(err, model.ErrTokenExpired):
		statusCode = http.StatusUnauthorized
		errResp = model.ErrorResponse{Code: model.ErrCodeTokenExpired, Message: "Token has expired"}
	case errors.Is(err, model.ErrForbidden):
		statusCode = http.StatusForbidden
		errResp = model.ErrorResponse{Code: model.ErrCodeForbidden, Message: "Operation forbidden"}
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResp = model.ErrorResponse{Code: model.ErrCodeInternalError, Message: "An unexpected internal error occurred"}
	}

	c.AbortWithStatusJSON(statusCode, errResp)
}
