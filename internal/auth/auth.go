// Package auth defines the authentication provider port. The storefront
// treats any failure reason as an opaque display string.
package auth

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials is returned when the provider rejects the
	// email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrProviderUnavailable is returned when the provider cannot be reached.
	ErrProviderUnavailable = errors.New("authentication provider unavailable")
)

// Authenticator verifies an email/password pair. A nil error means success;
// any non-nil error carries the reason to display inline.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) error
}
