package app_test

import (
	"testing"

	"github.com/km-arc/go-container/framework/app"
	"github.com/km-arc/go-container/framework/container"
)

func TestNew_FrameworkServicesBound(t *testing.T) {
	application := app.New("testdata/empty.env")

	for _, id := range []string{"config", "log", "router"} {
		if !application.Has(id) {
			t.Errorf("expected %q to be bound", id)
		}
	}
}

func TestNew_AliasesForward(t *testing.T) {
	application := app.New("testdata/empty.env")

	direct, err := application.Get("log")
	if err != nil {
		t.Fatalf("Get(log): %v", err)
	}
	viaAlias, err := application.Get("logger")
	if err != nil {
		t.Fatalf("Get(logger): %v", err)
	}
	if direct != viaAlias {
		t.Error("alias 'logger' should resolve to the same instance as 'log'")
	}
}

func TestNew_ConfigIsShared(t *testing.T) {
	application := app.New("testdata/empty.env")

	first := application.Config()
	second := application.Config()
	if first != second {
		t.Error("config should be constructed once and shared")
	}
}

func TestEnvironment_Helpers(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	application := app.New("testdata/empty.env")

	if !application.IsTesting() {
		t.Error("IsTesting() should be true when APP_ENV=testing")
	}
	if application.IsProduction() {
		t.Error("IsProduction() should be false")
	}
}

func TestRegister_CustomProvider(t *testing.T) {
	application := app.New("testdata/empty.env")

	application.Register(&greeterProvider{})
	application.Boot()

	got, err := container.Resolve[string](application.Container, "greeting")
	if err != nil {
		t.Fatalf("Get(greeting): %v", err)
	}
	if got != "hello" {
		t.Errorf("greeting: got %q want %q", got, "hello")
	}
}

type greeterProvider struct {
	container.BaseProvider
}

func (p *greeterProvider) Register(c *container.Container) {
	c.Set("greeting", container.Factory(func() any { return "hello" }))
}
