// Package app wires the storefront's dependencies into a running service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	natsgo "github.com/nats-io/nats.go"

	"github.com/iwholesale/storefront/internal/assistant"
	"github.com/iwholesale/storefront/internal/auth"
	"github.com/iwholesale/storefront/internal/auth/keycloak"
	"github.com/iwholesale/storefront/internal/catalog"
	"github.com/iwholesale/storefront/internal/catalog/store"
	"github.com/iwholesale/storefront/internal/checkout"
	"github.com/iwholesale/storefront/internal/config"
	"github.com/iwholesale/storefront/internal/payment"
	"github.com/iwholesale/storefront/internal/session"
	"github.com/iwholesale/storefront/internal/sim"
	"github.com/iwholesale/storefront/internal/transport/rest"
	"github.com/iwholesale/storefront/pkg/bootstrap"
	"github.com/iwholesale/storefront/pkg/messaging"
	"github.com/iwholesale/storefront/pkg/nats"
	"github.com/iwholesale/storefront/pkg/server"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds the wired services and the resources they own.
type Dependencies struct {
	CatalogService  catalog.CatalogService
	CheckoutService checkout.CheckoutService
	Authenticator   auth.Authenticator
	Sessions        *session.Manager

	dbPool   *pgxpool.Pool
	natsConn *natsgo.Conn
}

// SetupDependencies builds the service graph from the configuration. The
// catalog store, event publisher and auth provider are all selected here;
// everything downstream depends only on the ports.
func SetupDependencies(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{}

	productStore, err := setupProductStore(ctx, cfg, logger, deps)
	if err != nil {
		return nil, err
	}

	publisher, err := setupPublisher(cfg, logger, deps)
	if err != nil {
		deps.Close(logger)
		return nil, err
	}

	deps.CatalogService = catalog.NewService(productStore)
	deps.CheckoutService = checkout.NewService(setupPaymentProcessor(cfg), publisher, logger)
	deps.Authenticator = setupAuthenticator(cfg)
	deps.Sessions = session.NewManager(setupReplier(cfg))
	return deps, nil
}

func setupProductStore(ctx context.Context, cfg config.Config, logger *slog.Logger, deps *Dependencies) (store.ProductStore, error) {
	if !cfg.Database.Enabled() {
		logger.Info("Database not configured, using in-memory catalog")
		return store.NewInMemoryStore(store.SeedProducts()), nil
	}

	dbPool, err := bootstrap.NewDbPool(ctx, cfg.Database.URL, cfg.Database.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database pool: %w", err)
	}
	deps.dbPool = dbPool
	logger.Info("Connected to database")
	return store.NewPgStore(dbPool), nil
}

func setupPublisher(cfg config.Config, logger *slog.Logger, deps *Dependencies) (messaging.Publisher, error) {
	if !cfg.Nats.Enabled {
		logger.Info("NATS not configured, order events will not be published")
		return messaging.NoopPublisher{}, nil
	}

	nc, err := nats.NewClient(cfg.Nats.Url, cfg.Nats.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	deps.natsConn = nc

	js, err := nats.NewJetStreamContext(nc)
	if err != nil {
		deps.natsConn = nil
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}
	logger.Info("Connected to NATS", "url", cfg.Nats.Url)
	return nats.NewNatsPublisher(js), nil
}

func setupPaymentProcessor(cfg config.Config) payment.Processor {
	return sim.NewPayment(cfg.Collaborators.Payment.Delay)
}

func setupAuthenticator(cfg config.Config) auth.Authenticator {
	authCfg := cfg.Collaborators.Auth
	if authCfg.Provider == config.AuthProviderKeycloak {
		return keycloak.NewAuthenticator(
			authCfg.Keycloak.URL,
			authCfg.Keycloak.Realm,
			authCfg.Keycloak.ClientID,
			authCfg.Keycloak.ClientSecret,
		)
	}
	return sim.NewAuth(authCfg.Delay)
}

func setupReplier(cfg config.Config) assistant.Replier {
	return sim.NewAssistant(cfg.Collaborators.Assistant.Delay, cfg.Collaborators.Assistant.Reply)
}

// Close releases the resources held by the dependency graph.
func (d *Dependencies) Close(logger *slog.Logger) {
	if d.natsConn != nil {
		d.natsConn.Close()
		logger.Info("NATS connection closed")
	}
	if d.dbPool != nil {
		d.dbPool.Close()
		logger.Info("Database pool closed")
	}
}

// SetupHttpHandler builds the chi router with the service routes mounted.
func SetupHttpHandler(deps *Dependencies, logger *slog.Logger) http.Handler {
	router := server.NewChiRouter(logger)
	handler := rest.NewHandler(deps.CatalogService, deps.CheckoutService, deps.Authenticator, deps.Sessions, logger)
	handler.RegisterRoutes(router)
	return router
}

// SetupHttpServer builds the HTTP server from the configuration.
func SetupHttpServer(cfg config.Config, handler http.Handler) *http.Server {
	return server.NewHTTPServer(server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}, handler)
}
