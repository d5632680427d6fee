package errors

import "net/http"

// Common error codes used across domains
const (
	CodeNotFound       Code = "not_found"
	CodeAlreadyExists  Code = "already_exists"
	CodeInvalidRequest Code = "invalid_request"
	CodeUnauthorized   Code = "unauthorized"
	CodeForbidden      Code = "forbidden"
	CodeInternal       Code = "internal_error"
)

// ============================================================================
// Authentication Errors
// ============================================================================

var (
	// ErrMissingToken is returned when no bearer token is present on the request
	ErrMissingToken = New(DomainAuth, "missing_token", http.StatusUnauthorized,
		"Access denied")

	// ErrTokenInvalid is returned when a token is malformed, forged, or expired.
	// Expiry is not distinguished from invalidity at the API boundary.
	ErrTokenInvalid = New(DomainAuth, "token_invalid", http.StatusForbidden,
		"Invalid token")

	// ErrForbidden is returned when the authenticated user lacks the admin role
	ErrForbidden = New(DomainAuth, CodeForbidden, http.StatusForbidden,
		"Administrator access required")

	// ErrBadPassword is returned when password verification fails on login
	ErrBadPassword = New(DomainAuth, "bad_password", http.StatusBadRequest,
		"Incorrect password")
)

// ============================================================================
// User Errors
// ============================================================================

var (
	// ErrUserNotFound is returned on login when no user matches the email
	ErrUserNotFound = New(DomainUser, "unknown_user", http.StatusBadRequest,
		"User does not exist")

	// ErrNotFound is returned when a user lookup by id finds no row
	ErrNotFound = New(DomainUser, CodeNotFound, http.StatusNotFound,
		"User not found")

	// ErrDuplicateEmail is returned when the email is already registered
	ErrDuplicateEmail = New(DomainUser, "duplicate_email", http.StatusBadRequest,
		"This user is already registered")
)

// ============================================================================
// Validation Errors
// ============================================================================

var (
	// ErrInvalidRole is returned when the role is outside {ADMIN, USER}
	ErrInvalidRole = New(DomainValidation, "invalid_role", http.StatusBadRequest,
		"Role must be 'ADMIN' or 'USER'")

	// ErrMissingRequiredField is returned when a required field is missing
	ErrMissingRequiredField = New(DomainValidation, "missing_field", http.StatusBadRequest,
		"Missing required field")

	// ErrInvalidJSON is returned when JSON parsing fails
	ErrInvalidJSON = New(DomainValidation, "invalid_json", http.StatusBadRequest,
		"Invalid JSON")
)

// ============================================================================
// Database Errors
// ============================================================================

var (
	// ErrDatabaseQuery is returned when a database query fails
	ErrDatabaseQuery = New(DomainDatabase, "query_failed", http.StatusInternalServerError,
		"Database query failed")

	// ErrDatabaseTransaction is returned when a database transaction fails
	ErrDatabaseTransaction = New(DomainDatabase, "transaction_failed", http.StatusInternalServerError,
		"Database transaction failed")
)

// ============================================================================
// Internal Errors
// ============================================================================

var (
	// ErrInternal is a generic internal server error
	ErrInternal = New(DomainInternal, CodeInternal, http.StatusInternalServerError,
		"Internal server error")
)
