package providers

import (
	"github.com/km-arc/go-container/framework/config"
	"github.com/km-arc/go-container/framework/container"
	"github.com/km-arc/go-container/framework/logging"
	"github.com/km-arc/go-container/framework/routing"
	"github.com/km-arc/go-container/framework/singleton"
)

// Framework services are process-wide: each provider wraps its constructor
// in singleton.Shared so the factory builds once and every Get returns the
// same instance, without resolving anything during Register.

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container.
//
// Bound identifiers:
//   - "config"        → *config.Config
//   - "configuration" → alias of "config"
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	load := singleton.Shared(func([]any) any {
		return config.Load(envFiles...)
	})
	app.Set("config", container.Factory(func() any { return load(nil) })).
		Set("configuration", "config")
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider binds the structured logger, configured from "config".
//
// Bound identifiers:
//   - "log"    → *logging.Logger
//   - "logger" → alias of "log"
type LogServiceProvider struct {
	container.BaseProvider
}

func (p *LogServiceProvider) Register(app *container.Container) {
	build := singleton.Shared(func([]any) any {
		cfg := container.MustResolve[*config.Config](app, "config")
		return logging.New(cfg.Log)
	})
	app.Set("log", container.Factory(func() any { return build(nil) })).
		Set("logger", "log")
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Bound identifiers:
//   - "router" → *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	build := singleton.Shared(func([]any) any {
		log := container.MustResolve[*logging.Logger](app, "log")
		return routing.New(log.WithComponent("http"))
	})
	app.Set("router", container.Factory(func() any { return build(nil) }))
}
