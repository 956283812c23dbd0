// Package keycloak implements the auth.Authenticator port against a Keycloak
// realm, replacing the simulated provider with real network calls.
package keycloak

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Nerzal/gocloak/v13"
	"github.com/iwholesale/storefront/internal/auth"
)

var _ auth.Authenticator = (*Authenticator)(nil)

type Authenticator struct {
	client       *gocloak.GoCloak
	realm        string
	clientID     string
	clientSecret string
}

// NewAuthenticator creates an Authenticator for the given Keycloak base URL
// and realm.
func NewAuthenticator(baseURL, realm, clientID, clientSecret string) *Authenticator {
	return &Authenticator{
		client:       gocloak.NewClient(baseURL),
		realm:        realm,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// Authenticate performs a direct-grant login. The issued token is discarded;
// the storefront only tracks the boolean authentication flag.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) error {
	_, err := a.client.Login(ctx, a.clientID, a.clientSecret, a.realm, email, password)
	if err == nil {
		return nil
	}

	var apiErr *gocloak.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized {
		return fmt.Errorf("%w: email or password is incorrect", auth.ErrInvalidCredentials)
	}
	return fmt.Errorf("%w: %v", auth.ErrProviderUnavailable, err)
}
