package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/iwholesale/storefront/internal/auth"
)

const minPasswordLength = 6

var _ auth.Authenticator = (*Auth)(nil)

// Auth simulates an authentication provider. Any email is accepted as long
// as the password meets the minimum length.
type Auth struct {
	Delay time.Duration
}

func NewAuth(delay time.Duration) *Auth {
	return &Auth{Delay: delay}
}

func (a *Auth) Authenticate(ctx context.Context, _, password string) error {
	if err := wait(ctx, a.Delay); err != nil {
		return err
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password should be at least %d characters",
			auth.ErrInvalidCredentials, minPasswordLength)
	}
	return nil
}
