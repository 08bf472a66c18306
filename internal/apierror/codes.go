package apierror

// Error type URIs following the urn:wellness:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:wellness:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:wellness:error:not_found"

	// TypeConflict indicates a resource conflict (409)
	TypeConflict = "urn:wellness:error:conflict"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:wellness:error:internal"

	// TypeInvalidID indicates a malformed resource identifier (400)
	TypeInvalidID = "urn:wellness:error:invalid_id"

	// TypeInvalidDate indicates a date that is not YYYY-MM-DD (400)
	TypeInvalidDate = "urn:wellness:error:invalid_date"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:wellness:error:bad_request"
)

const (
	TitleValidation  = "Validation Error"
	TitleNotFound    = "Resource Not Found"
	TitleConflict    = "Resource Conflict"
	TitleInternal    = "Internal Server Error"
	TitleInvalidID   = "Invalid Identifier"
	TitleInvalidDate = "Invalid Date"
	TitleBadRequest  = "Bad Request"
)
