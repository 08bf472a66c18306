package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNullableString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantSet   bool
		wantValid bool
		wantValue string
	}{
		{
			name:      "field present with string value",
			json:      `{"notes": "hello"}`,
			wantSet:   true,
			wantValid: true,
			wantValue: "hello",
		},
		{
			name:      "field present with null value",
			json:      `{"notes": null}`,
			wantSet:   true,
			wantValid: false,
			wantValue: "",
		},
		{
			name:      "field absent",
			json:      `{}`,
			wantSet:   false,
			wantValid: false,
			wantValue: "",
		},
		{
			name:      "field present with empty string",
			json:      `{"notes": ""}`,
			wantSet:   true,
			wantValid: true,
			wantValue: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result struct {
				Notes NullableString `json:"notes"`
			}
			err := json.Unmarshal([]byte(tt.json), &result)
			if err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}

			if result.Notes.Set != tt.wantSet {
				t.Errorf("Set = %v, want %v", result.Notes.Set, tt.wantSet)
			}
			if result.Notes.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", result.Notes.Valid, tt.wantValid)
			}
			if result.Notes.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", result.Notes.Value, tt.wantValue)
			}
		})
	}
}

func TestUpdateDailyLogRequest_WithNullableFields(t *testing.T) {
	// A null note clears the field
	json1 := `{"daily_note": null}`
	var req1 UpdateDailyLogRequest
	if err := json.Unmarshal([]byte(json1), &req1); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if !req1.DailyNote.Set {
		t.Error("Expected DailyNote.Set to be true when field is present with null")
	}
	if req1.DailyNote.Valid {
		t.Error("Expected DailyNote.Valid to be false when value is null")
	}

	// Absent fields are not set
	json2 := `{"mood": 7}`
	var req2 UpdateDailyLogRequest
	if err := json.Unmarshal([]byte(json2), &req2); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if req2.DailyNote.Set {
		t.Error("Expected DailyNote.Set to be false when field is absent")
	}
	if req2.Mood == nil || *req2.Mood != 7 {
		t.Errorf("Expected Mood=7, got %v", req2.Mood)
	}
}

func TestUpdateDailyLogRequest_Apply(t *testing.T) {
	log := DailyLog{
		LogDate:      NewDate(2024, time.March, 1),
		SleepHours:   6,
		Mood:         5,
		ExerciseType: "running",
		DailyNote:    "tired",
	}

	var req UpdateDailyLogRequest
	body := `{"sleep_hours": 8.5, "daily_note": null, "log_date": "2024-03-02"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	req.Apply(&log)

	if log.SleepHours != 8.5 {
		t.Errorf("SleepHours = %v, want 8.5", log.SleepHours)
	}
	if log.Mood != 5 {
		t.Errorf("Mood = %v, want untouched 5", log.Mood)
	}
	if log.DailyNote != "" {
		t.Errorf("DailyNote = %q, want cleared", log.DailyNote)
	}
	if log.ExerciseType != "running" {
		t.Errorf("ExerciseType = %q, want untouched", log.ExerciseType)
	}
	if log.LogDate != NewDate(2024, time.March, 2) {
		t.Errorf("LogDate = %v, want 2024-03-02", log.LogDate)
	}
}
