package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/wellness/backend/internal/apierror"
	"github.com/JonnyWalker81/wellness/backend/internal/logger"
	"github.com/JonnyWalker81/wellness/backend/internal/service"
)

// writeServiceError maps a service error onto a problem response.
// Unrecognised errors are logged and reported as a generic 500.
func writeServiceError(c *gin.Context, err error, resource, id string) {
	requestID := apierror.GetRequestID(c)

	switch {
	case errors.Is(err, service.ErrLogNotFound), errors.Is(err, service.ErrProfileNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, resource, id))
	case errors.Is(err, service.ErrProfileExists):
		apierror.WriteProblem(c, apierror.NewConflictError(requestID, err.Error()))
	case errors.Is(err, service.ErrInvalidUUID),
		errors.Is(err, service.ErrNotUUIDv7),
		errors.Is(err, service.ErrFutureTimestamp):
		apierror.WriteProblem(c, apierror.NewInvalidIDError(requestID, "id", id))
	case errors.Is(err, service.ErrInvalidPeriod), errors.Is(err, service.ErrUnknownDimension):
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), capitalize(err.Error())))
	case errors.Is(err, service.ErrNoReportData):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Report data", ""))
	default:
		logger.Ctx(c.Request.Context()).Error("request failed",
			logger.String("resource", resource),
			logger.Err(err),
		)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// validID rejects path ids that are not UUIDs before touching storage.
func validID(c *gin.Context, id string) bool {
	if err := service.ValidateID(id); err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidIDError(apierror.GetRequestID(c), "id", id))
		return false
	}
	return true
}

// bindJSON binds the body and writes a problem on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		apierror.WriteProblem(c, apierror.FromBindingError(apierror.GetRequestID(c), err))
		return false
	}
	return true
}
