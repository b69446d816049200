package errors

import "net/http"

// Common error codes used across domains
const (
	CodeNotFound       Code = "not_found"
	CodeInvalidRequest Code = "invalid_request"
	CodeInternal       Code = "internal_error"
	CodeRateLimited    Code = "rate_limited"
)

// ============================================================================
// Port Errors
// ============================================================================

var (
	// ErrInvalidPortKey is returned when a port key does not parse
	ErrInvalidPortKey = New(DomainPort, "invalid_key", http.StatusBadRequest,
		"Invalid port key")

	// ErrMissingProtocol is returned when a port has no protocol
	ErrMissingProtocol = New(DomainPort, "missing_protocol", http.StatusBadRequest,
		"Port protocol is required")

	// ErrMissingAddress is returned when a port has no address
	ErrMissingAddress = New(DomainPort, "missing_address", http.StatusBadRequest,
		"Port address is required")
)

// ============================================================================
// Board Errors
// ============================================================================

var (
	// ErrMissingBoardName is returned when a selected board has neither a name nor an FQBN
	ErrMissingBoardName = New(DomainBoard, "missing_name", http.StatusBadRequest,
		"Board name or FQBN is required")

	// ErrInvalidFQBN is returned when an FQBN is not vendor:arch:id[:options]
	ErrInvalidFQBN = New(DomainBoard, "invalid_fqbn", http.StatusBadRequest,
		"Invalid FQBN")
)

// ============================================================================
// Snapshot Errors
// ============================================================================

var (
	// ErrSnapshotRead is returned when a snapshot, config or history file cannot be read
	ErrSnapshotRead = New(DomainSnapshot, "read_failed", http.StatusBadRequest,
		"Failed to read input")

	// ErrSnapshotDecode is returned when an input document is not valid YAML or JSON
	ErrSnapshotDecode = New(DomainSnapshot, "decode_failed", http.StatusBadRequest,
		"Failed to decode input")
)

// ============================================================================
// Validation Errors
// ============================================================================

var (
	// ErrValidationFailed is returned when request validation fails
	ErrValidationFailed = New(DomainValidation, "validation_failed", http.StatusBadRequest,
		"Validation failed")

	// ErrInvalidJSON is returned when request body contains invalid JSON
	ErrInvalidJSON = New(DomainValidation, "invalid_json", http.StatusBadRequest,
		"Invalid JSON in request body")

	// ErrInvalidRequest is returned when query parameters are malformed
	ErrInvalidRequest = New(DomainValidation, CodeInvalidRequest, http.StatusBadRequest,
		"Invalid request")
)

// ============================================================================
// Internal Errors
// ============================================================================

var (
	// ErrRouteNotFound is returned for unknown endpoints
	ErrRouteNotFound = New(DomainInternal, CodeNotFound, http.StatusNotFound,
		"Route not found")

	// ErrInternal is returned for unexpected internal errors
	ErrInternal = New(DomainInternal, CodeInternal, http.StatusInternalServerError,
		"Internal server error")

	// ErrRateLimited is returned when a client sends too many requests
	ErrRateLimited = New(DomainInternal, CodeRateLimited, http.StatusTooManyRequests,
		"Too many requests, please try again later")
)
