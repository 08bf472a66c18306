package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// newUUIDv7AtTime creates a UUIDv7 whose leading 48 bits encode t in Unix
// milliseconds, with fixed random bits for determinism.
func newUUIDv7AtTime(t time.Time) uuid.UUID {
	var id uuid.UUID

	ms := uint64(t.UnixMilli())
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)

	id[6] = 0x70 // version 7
	id[8] = 0x80 // RFC 4122 variant
	id[15] = 0x01

	return id
}

func TestNewIDIsUUIDv7(t *testing.T) {
	id, err := NewID()
	if err != nil {
		t.Fatalf("NewID() failed: %v", err)
	}
	if err := ValidateUUIDv7(id, time.Now()); err != nil {
		t.Errorf("ValidateUUIDv7(NewID()) = %v, want nil", err)
	}
}

func TestValidateUUIDv7(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "past timestamp", id: newUUIDv7AtTime(now.Add(-24 * time.Hour)).String()},
		{name: "within skew", id: newUUIDv7AtTime(now.Add(30 * time.Second)).String()},
		{name: "too far ahead", id: newUUIDv7AtTime(now.Add(5 * time.Minute)).String(), wantErr: ErrFutureTimestamp},
		{name: "version 4", id: uuid.New().String(), wantErr: ErrNotUUIDv7},
		{name: "malformed", id: "not-a-uuid", wantErr: ErrInvalidUUID},
		{name: "truncated", id: "019471a0-0000-7000-8000-", wantErr: ErrInvalidUUID},
		{name: "empty", id: "", wantErr: ErrInvalidUUID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUUIDv7(tt.id, now)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateUUIDv7(%q) = %v, want nil", tt.id, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateUUIDv7(%q) = %v, want %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateID(t *testing.T) {
	if err := ValidateID(uuid.New().String()); err != nil {
		t.Errorf("ValidateID(v4) = %v, want nil", err)
	}
	if err := ValidateID("abc"); !errors.Is(err, ErrInvalidUUID) {
		t.Errorf("ValidateID(abc) = %v, want ErrInvalidUUID", err)
	}
}
