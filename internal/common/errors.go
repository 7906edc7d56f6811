// Package common defines shared constants and sentinel errors used across
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

// ErrInvalidToken marks a stored bearer token that cannot be decoded.
var ErrInvalidToken = errors.New("invalid token")
