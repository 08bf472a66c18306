package service

import (
	"errors"

	"github.com/JonnyWalker81/wellness/backend/internal/report"
)

var (
	// ErrLogNotFound is returned when a daily log id does not exist.
	ErrLogNotFound = errors.New("daily log not found")
	// ErrProfileNotFound is returned when no profile exists or the id does not match.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileExists is returned when creating a second profile.
	ErrProfileExists = errors.New("a profile already exists")
	// ErrInvalidPeriod is returned for a report period other than week or month.
	ErrInvalidPeriod = errors.New("period must be week or month")
	// ErrUnknownDimension is returned for a trend over an untracked metric.
	ErrUnknownDimension = errors.New("unknown dimension")
	// ErrNoReportData is returned when the report period holds no entries.
	ErrNoReportData = report.ErrNoData
)
