package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidUUID indicates the string is not a valid UUID format
	ErrInvalidUUID = errors.New("invalid UUID format")
	// ErrNotUUIDv7 indicates the UUID is not version 7
	ErrNotUUIDv7 = errors.New("UUID must be version 7")
	// ErrFutureTimestamp indicates the UUIDv7 timestamp is too far in the future
	ErrFutureTimestamp = errors.New("UUID timestamp is too far in the future")
)

// MaxFutureSkew is how far ahead of the server clock a client-generated
// id may be.
const MaxFutureSkew = time.Minute

// NewID returns a fresh UUIDv7, time-ordered so ids sort by creation.
func NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}

// ValidateUUIDv7 checks that id is a UUIDv7 whose embedded timestamp is not
// more than MaxFutureSkew ahead of now. Errors wrap ErrInvalidUUID,
// ErrNotUUIDv7 or ErrFutureTimestamp.
func ValidateUUIDv7(id string, now time.Time) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUUID, err)
	}

	if parsed.Version() != 7 {
		return fmt.Errorf("%w: got version %d", ErrNotUUIDv7, parsed.Version())
	}

	sec, nsec := parsed.Time().UnixTime()
	timestamp := time.Unix(sec, nsec)

	if timestamp.After(now.Add(MaxFutureSkew)) {
		return fmt.Errorf("%w: %v is more than %v ahead",
			ErrFutureTimestamp, timestamp.Format(time.RFC3339), MaxFutureSkew)
	}

	return nil
}

// ValidateID checks that a path id is a well-formed UUID. Any version is
// accepted so rows created elsewhere stay addressable.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUUID, err)
	}
	return nil
}
