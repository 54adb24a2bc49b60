package utils

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps the sentinel errors of the service layer onto HTTP
// statuses. A duplicate same-day check-in is a 409 with a "warning" status so
// the admin UI can render it as a recoverable condition; an expired
// membership is a hard 403 refusal.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMemberNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrWorkoutNotFound),
		errors.Is(err, ErrPaymentNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyCheckedIn):
		c.JSON(http.StatusConflict, APIResponse{
			Status:  "warning",
			Code:    http.StatusConflict,
			Message: err.Error(),
			TraceID: traceID(c),
		})
	case errors.Is(err, ErrMembershipExpired):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidResetToken):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// ValidationError wraps ErrValidation with the offending field so errors.Is
// still matches while the message names the field.
func ValidationError(field string) error {
	return fmt.Errorf("%w: %s is required", ErrValidation, field)
}
