package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/paybr/cielo_facade/internal/bin"
	"github.com/paybr/cielo_facade/internal/card"
	"github.com/paybr/cielo_facade/internal/config"
	"github.com/paybr/cielo_facade/internal/creditcard"
	"github.com/paybr/cielo_facade/internal/gateway"
	"github.com/paybr/cielo_facade/internal/middleware"
	"github.com/paybr/cielo_facade/internal/policy"
	"github.com/paybr/cielo_facade/internal/zeroauth"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	// Gateway collaborator: real client with merchant credentials, the
	// simulator otherwise.
	var gw interface {
		creditcard.Gateway
		zeroauth.Gateway
		bin.Fetcher
	}
	if d.Cfg.HasGatewayCredentials() {
		gw = gateway.NewClient(gateway.Options{
			APIURL:      d.Cfg.CieloAPIURL,
			QueryAPIURL: d.Cfg.CieloQueryAPIURL,
			MerchantId:  d.Cfg.CieloMerchantId,
			MerchantKey: d.Cfg.CieloMerchantKey,
			Timeout:     d.Cfg.GatewayTimeout,
		}, d.Logger)
	} else {
		d.Logger.Warn("no merchant credentials configured, using simulated gateway")
		gw = gateway.Static{}
	}

	var binFetcher bin.Fetcher = gw
	if d.Cache != nil {
		binFetcher = bin.NewCachedFetcher(gw, d.Cache, d.Cfg.BinCacheTTL, d.Logger)
	}

	var rulesSource policy.Source
	if d.DB != nil {
		rulesSource = policy.NewPostgresSource(d.DB, d.Cfg.CieloMerchantId, policy.DefaultRules)
	} else {
		rulesSource = policy.NewStaticSource(policy.DefaultRules)
	}
	policyValidator := policy.NewValidator(rulesSource)

	clock := card.SystemClock{}
	creditSvc := creditcard.NewService(gw, policyValidator, clock, d.Logger)
	zeroAuthSvc := zeroauth.NewService(gw, d.Logger)
	binSvc := bin.NewService(binFetcher, bin.EligibilityPolicy{
		AllowForeignCards: d.Cfg.AllowForeignCards,
	}, d.Logger)

	creditHandler := creditcard.NewHandler(creditSvc)
	zeroAuthHandler := zeroauth.NewHandler(zeroAuthSvc)
	binHandler := bin.NewHandler(binSvc)

	api := app.Group("/api/cielo/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	api.Post("/card/credit", creditHandler.Charge)
	api.Post("/zeroauth", zeroAuthHandler.Verify)
	api.Get("/cardBin/:bin", binHandler.Lookup)
	api.Get("/cardBin/:bin/eligibility", binHandler.Eligibility)
	api.Post("/cardBin/validate", binHandler.Batch)
	api.Post("/cardBin/extract", binHandler.Extract)

	return nil
}
