package apierror

// Error type URIs following the urn:innerlog:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:innerlog:error:validation"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:innerlog:error:bad_request"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:innerlog:error:unauthorized"

	// TypeForbidden indicates insufficient permissions (403)
	TypeForbidden = "urn:innerlog:error:forbidden"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:innerlog:error:not_found"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:innerlog:error:rate_limit"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:innerlog:error:internal"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation   = "Validation Error"
	TitleBadRequest   = "Bad Request"
	TitleUnauthorized = "Authentication Required"
	TitleForbidden    = "Permission Denied"
	TitleNotFound     = "Resource Not Found"
	TitleRateLimit    = "Rate Limit Exceeded"
	TitleInternal     = "Internal Server Error"
)
