package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"weather-api/cmd/server/handlers"
	"weather-api/cmd/server/handlers/httperr"
	usersHandlers "weather-api/cmd/server/handlers/users"
	weatherHandlers "weather-api/cmd/server/handlers/weather"
	"weather-api/cmd/server/middlewares"
	"weather-api/internal/clients/mongo"
	"weather-api/internal/config"
	"weather-api/internal/logger"
	"weather-api/internal/services/users"
	"weather-api/internal/services/weather"
	"weather-api/internal/utils/validate"

	_ "weather-api/docs" // Load swagger docs

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

const (
	RateLimitExpiration = 1 * time.Minute
)

// UsersService is everything the users routes and the auth gate need.
type UsersService interface {
	usersHandlers.Service
	middlewares.Authenticator
}

// dependencies are the collaborators newApp wires into routes.
type dependencies struct {
	Users     UsersService
	Weather   weatherHandlers.Service
	DB        handlers.Pinger
	Validator *validator.Validate
}

// setupRouter builds repositories and services on top of the connected client and
// returns a Fiber app with all routes.
func setupRouter(ctx context.Context, cfg config.Config, client *mongo.Client) (*fiber.App, error) {
	v, err := validate.New()
	if err != nil {
		return nil, fmt.Errorf("validator: %w", err)
	}

	usersRepo, err := mongo.NewUsersRepo(ctx, client.DB())
	if err != nil {
		return nil, fmt.Errorf("users repository: %w", err)
	}
	weatherRepo, err := mongo.NewWeatherRepo(ctx, client.DB())
	if err != nil {
		return nil, fmt.Errorf("weather repository: %w", err)
	}

	return newApp(cfg, dependencies{
		Users:     users.NewService(usersRepo, cfg, logger.L()),
		Weather:   weather.NewService(weatherRepo, cfg, logger.L()),
		DB:        client,
		Validator: v,
	}), nil
}

// newApp registers middlewares and routes. Every route declares the roles it admits.
func newApp(cfg config.Config, d dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
		Immutable:    true, // make Fiber copy all request-derived strings
	})

	app.Use(recover.New())
	app.Use(middlewares.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: strings.Join([]string{"Origin", "Content-Type", "Accept", cfg.AuthHeader, middlewares.RequestIDHeader}, ", "),
	}))

	var metrics *middlewares.Metrics
	if cfg.RouteMetricsEnabled {
		metrics = middlewares.NewMetrics()
		metrics.Attach(app)
	}

	// Health check and docs stay outside the logged API routes
	app.Get("/healthz", handlers.Healthz(d.DB))
	app.Get("/docs/*", swagger.HandlerDefault)

	var api fiber.Router = app
	if cfg.RequestLoggingEnabled {
		api = app.Group("/", fiberlogger.New(fiberlogger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
		logger.L().Info("request logging enabled")
	} else {
		logger.L().Info("request logging disabled")
	}

	gateCfg := middlewares.AuthConfig{Header: cfg.AuthHeader, OnReject: metrics.AuthRejected}
	everyone := middlewares.Auth(d.Users, gateCfg, users.RoleAdmin, users.RoleTeacher, users.RoleStudent)
	staff := middlewares.Auth(d.Users, gateCfg, users.RoleAdmin, users.RoleTeacher)
	adminOnly := middlewares.Auth(d.Users, gateCfg, users.RoleAdmin)

	loginLimiter := middlewares.BuildRateLimiter(cfg.LoginRatePerMin, RateLimitExpiration)

	uh := usersHandlers.NewHandlers(d.Users, d.Validator)
	api.Post("/users/login", loginLimiter, uh.Login)
	api.Post("/users/logout", uh.Logout)
	api.Post("/users/register", uh.Register)
	api.Get("/users", staff, uh.List)
	api.Post("/users", staff, uh.Create)
	api.Patch("/users/update", staff, uh.Update)
	api.Delete("/users/deleteOne/:id", staff, uh.Delete)
	api.Delete("/users/deleteMany", staff, uh.DeleteMany)
	api.Get("/users/by-key/:authenticationKey", adminOnly, uh.GetByKey)
	api.Get("/users/:id", staff, uh.Get)
	api.Put("/user/role", staff, uh.UpdateRole)
	api.Put("/user/:id", staff, uh.Replace)

	wh := weatherHandlers.NewHandlers(d.Weather, d.Validator, cfg)
	api.Get("/weather/all", everyone, wh.List)
	api.Get("/weather/paged/:page", everyone, wh.Page)
	api.Get("/weather/Woodford/:months", everyone, wh.MaxRainRecent)
	api.Get("/weather/spaceTime", everyone, wh.ReadingAt)
	api.Get("/weather/deviceName/:deviceName", everyone, wh.MaxRainForDevice)
	api.Get("/weather/max-temperature", everyone, wh.MaxTemperature)
	api.Get("/weather/specificReading/:id", everyone, wh.Get)
	api.Post("/weather/createOne", everyone, wh.Create)
	api.Post("/weather/createMany", everyone, wh.CreateMany)
	api.Patch("/weather/update", everyone, wh.Update)
	api.Put("/entries/updatePrecipitation", everyone, wh.UpdatePrecipitation)
	api.Delete("/weather/delete/:id", staff, wh.Delete)

	return app
}
