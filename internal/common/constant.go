// Package common contains shared constants and sentinel errors used across
// YouQuote components.
package common

// AuthorizationHeaderName carries the bearer credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the credential in the Authorization header value.
const BearerPrefix = "Bearer "

// RequestIDHeaderName tags every outbound request with a unique id so that
// client and server logs can be correlated.
const RequestIDHeaderName = "X-Request-ID"

// Keys of the persisted session values in the local metadata table.
const (
	SessionCredentialKey = "authToken"
	SessionRoleKey       = "role"
)
