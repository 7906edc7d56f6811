// Package common contains shared constants and sentinel errors used across
// vetclinic client components.
package common

// AuthorizationHeaderName carries the bearer credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries a per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"

// BearerScheme is the authorization scheme prefix.
const BearerScheme = "Bearer"

// Keys under which the session is persisted in the local key/value store.
const (
	TokenStorageKey = "token"
	UserStorageKey  = "user"
)

// APIPrefix is appended to the configured server origin.
const APIPrefix = "/api"
