package apierror

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestProblemDetailsJSON(t *testing.T) {
	problem := &ProblemDetails{
		Type:        TypeValidation,
		Title:       TitleValidation,
		Status:      http.StatusBadRequest,
		Detail:      "Field validation failed",
		Instance:    "/api/v1/daily-logs",
		RequestID:   "req-abc123",
		UserMessage: "Please fix the errors",
		Errors: []FieldError{
			{Field: "mood", Message: "is required", Code: "required"},
			{Field: "log_date", Message: "must be a date in YYYY-MM-DD format", Code: "invalid_date"},
		},
	}

	data, err := json.Marshal(problem)
	if err != nil {
		t.Fatalf("Failed to marshal ProblemDetails: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if result["type"] != TypeValidation {
		t.Errorf("Expected type=%q, got %q", TypeValidation, result["type"])
	}
	if result["title"] != TitleValidation {
		t.Errorf("Expected title=%q, got %q", TitleValidation, result["title"])
	}
	if result["status"] != float64(http.StatusBadRequest) {
		t.Errorf("Expected status=%d, got %v", http.StatusBadRequest, result["status"])
	}
	if result["instance"] != "/api/v1/daily-logs" {
		t.Errorf("Expected instance=%q, got %q", "/api/v1/daily-logs", result["instance"])
	}
	if result["request_id"] != "req-abc123" {
		t.Errorf("Expected request_id=%q, got %q", "req-abc123", result["request_id"])
	}
	if result["user_message"] != "Please fix the errors" {
		t.Errorf("Expected user_message=%q, got %q", "Please fix the errors", result["user_message"])
	}

	errors, ok := result["errors"].([]interface{})
	if !ok || len(errors) != 2 {
		t.Errorf("Expected 2 errors, got %v", result["errors"])
	}
}

func TestProblemDetailsJSONOmitsEmpty(t *testing.T) {
	problem := &ProblemDetails{
		Type:   TypeInternal,
		Title:  TitleInternal,
		Status: http.StatusInternalServerError,
	}

	data, err := json.Marshal(problem)
	if err != nil {
		t.Fatalf("Failed to marshal ProblemDetails: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	for _, field := range []string{"detail", "instance", "request_id", "user_message", "errors"} {
		if _, exists := result[field]; exists {
			t.Errorf("Expected field %q to be omitted when empty, but it was present", field)
		}
	}
	for _, field := range []string{"type", "title", "status"} {
		if _, exists := result[field]; !exists {
			t.Errorf("Expected required field %q to be present", field)
		}
	}
}

func TestWriteProblemContentType(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)

	WriteProblem(c, NewInternalError("req-123"))

	if ct := w.Header().Get("Content-Type"); ct != ContentTypeProblemJSON {
		t.Errorf("Expected Content-Type=%q, got %q", ContentTypeProblemJSON, ct)
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status=%d, got %d", http.StatusInternalServerError, w.Code)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal response body: %v", err)
	}
	if result["instance"] != "/api/v1/profile" {
		t.Errorf("Expected instance to default to request path, got %v", result["instance"])
	}
}

func TestAbortWithProblemStopsChain(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	AbortWithProblem(c, NewBadRequestError("req-1", "bad", "bad"))

	if !c.IsAborted() {
		t.Error("Expected context to be aborted")
	}
}

func TestNewValidationErrorMultipleFields(t *testing.T) {
	errors := []FieldError{
		{Field: "mood", Message: "is required", Code: "required"},
		{Field: "sleep_hours", Message: "must be at most 24", Code: "lte"},
		{Field: "meal_quality", Message: "must be at least 1", Code: "gte"},
	}

	problem := NewValidationError("req-abc", errors)

	if problem.Type != TypeValidation {
		t.Errorf("Expected type=%q, got %q", TypeValidation, problem.Type)
	}
	if problem.Status != http.StatusBadRequest {
		t.Errorf("Expected status=%d, got %d", http.StatusBadRequest, problem.Status)
	}
	if len(problem.Errors) != 3 {
		t.Errorf("Expected 3 field errors, got %d", len(problem.Errors))
	}
}

func TestNewInternalErrorHidesDetails(t *testing.T) {
	problem := NewInternalError("req-xyz")

	if problem.Detail != "An unexpected error occurred" {
		t.Errorf("Expected generic detail, got %q", problem.Detail)
	}
	if problem.UserMessage == "" {
		t.Error("Expected user_message to be set")
	}
}

func TestNewNotFoundError(t *testing.T) {
	problem := NewNotFoundError("req-123", "Daily log", "0190a1b2")

	if problem.Type != TypeNotFound {
		t.Errorf("Expected type=%q, got %q", TypeNotFound, problem.Type)
	}
	if problem.Status != http.StatusNotFound {
		t.Errorf("Expected status=%d, got %d", http.StatusNotFound, problem.Status)
	}
	if problem.Detail != "Daily log with ID '0190a1b2' was not found" {
		t.Errorf("Unexpected detail: %q", problem.Detail)
	}

	singleton := NewNotFoundError("req-123", "Profile", "")
	if singleton.Detail != "Profile was not found" {
		t.Errorf("Unexpected detail without id: %q", singleton.Detail)
	}
}

func TestNewConflictError(t *testing.T) {
	problem := NewConflictError("req-1", "a profile already exists")

	if problem.Status != http.StatusConflict || problem.Type != TypeConflict {
		t.Errorf("Unexpected conflict problem: %+v", problem)
	}
}

func TestNewInvalidIDError(t *testing.T) {
	problem := NewInvalidIDError("req-ghi", "id", "not-a-uuid")

	if problem.Type != TypeInvalidID {
		t.Errorf("Expected type=%q, got %q", TypeInvalidID, problem.Type)
	}
	if problem.Status != http.StatusBadRequest {
		t.Errorf("Expected status=%d, got %d", http.StatusBadRequest, problem.Status)
	}
	if len(problem.Errors) != 1 || problem.Errors[0].Field != "id" {
		t.Errorf("Expected one field error for id, got %v", problem.Errors)
	}
}

func TestNewInvalidDateError(t *testing.T) {
	problem := NewInvalidDateError("req-jkl", "log_date", "03/01/2024")

	if problem.Type != TypeInvalidDate {
		t.Errorf("Expected type=%q, got %q", TypeInvalidDate, problem.Type)
	}
	if problem.Detail != "Field 'log_date' must be a date in YYYY-MM-DD format, got '03/01/2024'" {
		t.Errorf("Unexpected detail: %q", problem.Detail)
	}
	if len(problem.Errors) != 1 || problem.Errors[0].Code != "invalid_date" {
		t.Errorf("Expected one invalid_date field error, got %v", problem.Errors)
	}
}

func TestProblemDetailsError(t *testing.T) {
	p1 := &ProblemDetails{Title: TitleValidation, Detail: "Custom error message"}
	if p1.Error() != "Custom error message" {
		t.Errorf("Expected Error()=%q, got %q", "Custom error message", p1.Error())
	}

	p2 := &ProblemDetails{Title: TitleValidation}
	if p2.Error() != TitleValidation {
		t.Errorf("Expected Error()=%q, got %q", TitleValidation, p2.Error())
	}
}

func TestGetRequestID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("request_id", "ctx-req-123")
	if got := GetRequestID(c); got != "ctx-req-123" {
		t.Errorf("Expected request_id=%q, got %q", "ctx-req-123", got)
	}

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	c2.Request.Header.Set("X-Request-ID", "header-req-456")
	if got := GetRequestID(c2); got != "header-req-456" {
		t.Errorf("Expected request_id from header=%q, got %q", "header-req-456", got)
	}

	c3, _ := gin.CreateTestContext(httptest.NewRecorder())
	c3.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	if got := GetRequestID(c3); got != "" {
		t.Errorf("Expected empty request_id, got %q", got)
	}
}
