package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/wellness/backend/internal/apierror"
	"github.com/JonnyWalker81/wellness/backend/internal/models"
	"github.com/JonnyWalker81/wellness/backend/internal/repository"
)

// dateRange reads the optional from/to query parameters.
func dateRange(c *gin.Context) (repository.ListOptions, bool) {
	var opts repository.ListOptions
	for _, p := range []struct {
		name string
		dst  *models.Date
	}{
		{"from", &opts.From},
		{"to", &opts.To},
	} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		d, err := models.ParseDate(raw)
		if err != nil {
			apierror.WriteProblem(c, apierror.NewInvalidDateError(apierror.GetRequestID(c), p.name, raw))
			return opts, false
		}
		*p.dst = d
	}

	if !opts.From.IsZero() && !opts.To.IsZero() && opts.To.Before(opts.From) {
		apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c),
			"'to' must not be before 'from'", "The end date must be on or after the start date"))
		return opts, false
	}
	return opts, true
}

// intQuery parses an optional integer query parameter, returning def when absent.
func intQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: name, Message: "must be an integer", Code: "type"},
		}))
		return 0, false
	}
	return n, true
}
