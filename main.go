package main

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/km-arc/go-container/framework/app"
	"github.com/km-arc/go-container/framework/container"
	gohttp "github.com/km-arc/go-container/framework/http"
	"github.com/km-arc/go-container/framework/inspect"
	"github.com/km-arc/go-container/framework/logging"
	"github.com/km-arc/go-container/framework/routing"
	"github.com/km-arc/go-container/framework/singleton"
)

// Demo application: a small user service whose object graph is auto-wired
// by the container from the constructor signatures registered below.

// ── Services ─────────────────────────────────────────────────────────────────

// UserRepo is an in-memory user store.
type UserRepo struct {
	mu    sync.RWMutex
	next  int
	users map[int]string
}

func NewUserRepo() *UserRepo {
	return &UserRepo{next: 1, users: make(map[int]string)}
}

func (r *UserRepo) Add(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.next
	r.next++
	r.users[id] = name
	return id
}

func (r *UserRepo) Find(id int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.users[id]
	return name, ok
}

func (r *UserRepo) All() map[int]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[int]string, len(r.users))
	for id, name := range r.users {
		out[id] = name
	}
	return out
}

// EventBus fans out domain events. It manages its own shared instance via
// the singleton protocol, so every resolution sees the same bus.
type EventBus struct {
	log *logging.Logger
}

func NewEventBus(log *logging.Logger) *EventBus {
	return &EventBus{log: log.WithComponent("events")}
}

func (b *EventBus) Publish(event string, fields map[string]any) {
	e := b.log.Raw().Info().Str("event", event)
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	e.Msg("published")
}

// UserService is the auto-wired composition of repo and bus.
type UserService struct {
	repo *UserRepo
	bus  *EventBus
}

func NewUserService(repo *UserRepo, bus *EventBus) *UserService {
	return &UserService{repo: repo, bus: bus}
}

func (s *UserService) Create(name string) int {
	id := s.repo.Add(name)
	s.bus.Publish("user.created", map[string]any{"id": id, "name": name})
	return id
}

// ── Bootstrap ────────────────────────────────────────────────────────────────

func main() {
	application := app.New() // loads .env automatically

	// Auto-wired constructors asking for *logging.Logger get the framework
	// logger through an alias binding.
	application.Set(inspect.TypeKey((*logging.Logger)(nil)), "log")

	// Describe the service graph once; the container wires the rest.
	types := application.Types()
	must(inspect.Register[*UserRepo](types, NewUserRepo))
	must(inspect.Register[*EventBus](types, NewEventBus))
	must(inspect.Register[*UserService](types, NewUserService))

	busKey := inspect.TypeKey((*EventBus)(nil))
	application.Singletons().Declare(busKey, singleton.Shared(func(deps []any) any {
		return NewEventBus(deps[0].(*logging.Logger))
	}))

	svcKey := inspect.TypeKey((*UserService)(nil))

	r := application.Router()

	r.Prefix("/api/v1", func(api *routing.Router) {

		api.Get("/users", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)
			svc, err := resolveService(application, svcKey)
			if err != nil {
				res.ServerError(err.Error())
				return
			}
			res.Success(svc.repo.All())
		})

		api.Post("/users", func(w http.ResponseWriter, req *http.Request) {
			request := gohttp.NewRequest(req)
			res := gohttp.NewResponse(w)

			var body struct {
				Name string `json:"name"`
			}
			if err := request.Bind(&body); err != nil || body.Name == "" {
				res.Error(http.StatusBadRequest, "name is required")
				return
			}

			svc, err := resolveService(application, svcKey)
			if err != nil {
				res.ServerError(err.Error())
				return
			}
			id := svc.Create(body.Name)
			res.Created(map[string]any{"id": id, "name": body.Name})
		})

		api.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)
			svc, err := resolveService(application, svcKey)
			if err != nil {
				res.ServerError(err.Error())
				return
			}
			var id int
			if _, err := fmt.Sscanf(routing.Param(req, "id"), "%d", &id); err != nil {
				res.Error(http.StatusBadRequest, "invalid id")
				return
			}
			name, ok := svc.repo.Find(id)
			if !ok {
				res.NotFound()
				return
			}
			res.Success(map[string]any{"id": id, "name": name})
		})
	})

	application.Run()
}

func resolveService(a *app.Application, key string) (*UserService, error) {
	return container.Resolve[*UserService](a.Container, key)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
