// Package config defines the storefront service configuration.
package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/iwholesale/storefront/pkg/config"
)

// Config is the root configuration for the storefront service.
type Config struct {
	HTTPServer    pkgconfig.HTTPConfig      `koanf:"server"`
	Log           pkgconfig.LogConfig       `koanf:"log"`
	PProf         pkgconfig.PProfConfig     `koanf:"pprof"`
	Shutdown      pkgconfig.ShutdownConfig  `koanf:"shutdown"`
	Database      pkgconfig.DatabaseConfig  `koanf:"database"`
	Nats          pkgconfig.NATSConfig      `koanf:"nats"`
	Telemetry     pkgconfig.TelemetryConfig `koanf:"telemetry"`
	Collaborators CollaboratorsConfig       `koanf:"collaborators"`
}

// CollaboratorsConfig selects and tunes the external collaborator ports.
type CollaboratorsConfig struct {
	Auth      AuthConfig      `koanf:"auth"`
	Payment   PaymentConfig   `koanf:"payment"`
	Assistant AssistantConfig `koanf:"assistant"`
}

const (
	AuthProviderSim      = "sim"
	AuthProviderKeycloak = "keycloak"
)

type AuthConfig struct {
	Provider string         `koanf:"provider"`
	Delay    time.Duration  `koanf:"delay"`
	Keycloak KeycloakConfig `koanf:"keycloak"`
}

type KeycloakConfig struct {
	URL          string `koanf:"url"`
	Realm        string `koanf:"realm"`
	ClientID     string `koanf:"clientId"`
	ClientSecret string `koanf:"clientSecret"`
}

func (c *AuthConfig) Validate() error {
	switch c.Provider {
	case "", AuthProviderSim:
		return nil
	case AuthProviderKeycloak:
		if c.Keycloak.URL == "" {
			return fmt.Errorf("keycloak URL is not configured")
		}
		if c.Keycloak.Realm == "" {
			return fmt.Errorf("keycloak realm is not configured")
		}
		if c.Keycloak.ClientID == "" {
			return fmt.Errorf("keycloak client id is not configured")
		}
		return nil
	default:
		return fmt.Errorf("unknown auth provider: %q", c.Provider)
	}
}

type PaymentConfig struct {
	Delay time.Duration `koanf:"delay"`
}

type AssistantConfig struct {
	Delay time.Duration `koanf:"delay"`
	Reply string        `koanf:"reply"`
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.HTTPServer.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.PProf.Validate(); err != nil {
		return err
	}
	if err := c.Shutdown.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Nats.Validate(); err != nil {
		return err
	}
	if err := c.Telemetry.Validate(); err != nil {
		return err
	}
	return c.Collaborators.Auth.Validate()
}

// String renders the configuration with secrets masked.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Server: %+v, Log: %+v, PProf: %+v, Shutdown: %+v, Database: {URL: %s, Timeout: %v}, Nats: %+v, Telemetry: %+v, Auth: {Provider: %s, Delay: %v, Keycloak: {URL: %s, Realm: %s, ClientID: %s, ClientSecret: ***}}, Payment: %+v, Assistant: {Delay: %v}}",
		c.HTTPServer, c.Log, c.PProf, c.Shutdown,
		maskURL(c.Database.URL), c.Database.Timeout,
		c.Nats, c.Telemetry,
		c.Collaborators.Auth.Provider, c.Collaborators.Auth.Delay,
		c.Collaborators.Auth.Keycloak.URL, c.Collaborators.Auth.Keycloak.Realm,
		c.Collaborators.Auth.Keycloak.ClientID,
		c.Collaborators.Payment, c.Collaborators.Assistant.Delay,
	)
}

func maskURL(url string) string {
	if url == "" {
		return "(in-memory)"
	}
	return "***"
}
