package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	foundation "github.com/UNGVSN/symfony-educational-project-sub002"
	"github.com/UNGVSN/symfony-educational-project-sub002/middlewares"
	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/config"
	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/cookie"
)

type contact struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// store is an in-memory contact list.
type store struct {
	contacts map[int]contact
	mu       sync.Mutex
	next     int
}

func (s *store) add(name, email string) contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	c := contact{ID: s.next, Name: name, Email: email}
	s.contacts[c.ID] = c
	return c
}

func (s *store) get(id int) (contact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contacts[id]
	return c, ok
}

func (s *store) list() []contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b contact) int { return a.ID - b.ID })
	return out
}

type handlers struct {
	store   *store
	cookies *cookie.Manager
}

func (h *handlers) list(r *foundation.Request) (*foundation.Response, error) {
	resp, err := foundation.NewJSONResponse(h.store.list(), http.StatusOK)
	if err != nil {
		return nil, err
	}
	resp.SetNoCacheHeaders()
	return resp, nil
}

func (h *handlers) show(r *foundation.Request) (*foundation.Response, error) {
	c, ok := h.store.get(foundation.Param[int](r, "id"))
	if !ok {
		return nil, foundation.ErrNotFound("contact not found")
	}

	resp, err := foundation.NewJSONResponse(c, http.StatusOK)
	if err != nil {
		return nil, err
	}
	resp.SetETag(strconv.Itoa(c.ID)+"-"+c.Email, true)
	resp.IsNotModified(r)
	return resp, nil
}

// create accepts a form post or a JSON body and redirects to the new contact.
func (h *handlers) create(r *foundation.Request) (*foundation.Response, error) {
	name := r.Body().GetText("name", "")
	email := r.Body().GetString("email", "")
	if r.IsJSON() {
		data, err := r.JSONContent()
		if err != nil {
			return nil, err
		}
		bag := foundation.NewBag(data)
		name, email = bag.GetText("name", ""), bag.GetString("email", "")
	}
	if name == "" || email == "" {
		return nil, foundation.ErrBadRequest("name and email are required")
	}

	c := h.store.add(name, email)

	resp, err := foundation.NewRedirectResponse("/contacts/"+strconv.Itoa(c.ID), http.StatusSeeOther)
	if err != nil {
		return nil, err
	}
	signed, err := h.cookies.Signed("last_contact", strconv.Itoa(c.ID), time.Now().Add(24*time.Hour))
	if err != nil {
		return nil, err
	}
	resp.SetCookie(signed)
	return resp, nil
}

// options answers plain OPTIONS requests; CORS preflights are handled by the
// middleware before it runs.
func options(allow ...string) foundation.HandlerFunc {
	header := strings.Join(append(allow, http.MethodOptions), ", ")
	return func(*foundation.Request) (*foundation.Response, error) {
		return foundation.NewResponse("", http.StatusNoContent, map[string]string{"Allow": header})
	}
}

func (h *handlers) whoami(r *foundation.Request) (*foundation.Response, error) {
	ip, _ := r.ClientIP()
	return foundation.NewJSONResponse(map[string]any{
		"ip":         ip,
		"locale":     r.Locale(),
		"method":     r.Method(),
		"uri":        r.URI(),
		"request_id": foundation.RequestIDFromContext(r.Context()),
	}, http.StatusOK)
}

func main() {
	var opts []config.Option
	if path := os.Getenv("FOUNDATION_CONFIG"); path != "" {
		opts = append(opts, config.WithFile(path))
	}
	cfg, err := foundation.LoadConfig(opts...)
	if err != nil {
		foundation.NewLogger(config.LogConfig{}, os.Stderr).Error("load config", "error", err)
		os.Exit(1)
	}

	log := foundation.NewLogger(cfg.Log, os.Stdout)

	h := &handlers{
		store:   &store{contacts: make(map[int]contact)},
		cookies: foundation.NewCookieManager(cfg),
	}

	handlerOpts := append(foundation.OptionsFromConfig(cfg),
		foundation.WithMiddleware(
			middlewares.CORS(),
			middlewares.Recover(middlewares.WithRecoverLogger(log)),
			middlewares.Timeout(10*time.Second, middlewares.WithTimeoutLogger(log)),
			middlewares.Locale([]string{"en", "pl", "de"}),
		),
	)
	wrap := func(fn foundation.HandlerFunc) http.Handler {
		return foundation.NewHandler(fn, handlerOpts...)
	}

	router := chi.NewRouter()
	router.Method(http.MethodGet, "/contacts", wrap(h.list))
	router.Method(http.MethodPost, "/contacts", wrap(h.create))
	router.Method(http.MethodGet, "/contacts/{id}", wrap(h.show))
	router.Method(http.MethodGet, "/whoami", wrap(h.whoami))
	router.Method(http.MethodOptions, "/contacts", wrap(options(http.MethodGet, http.MethodPost)))
	router.Method(http.MethodOptions, "/contacts/{id}", wrap(options(http.MethodGet)))
	router.Method(http.MethodOptions, "/whoami", wrap(options(http.MethodGet)))

	err = foundation.Serve(context.Background(), router,
		append(foundation.ServerOptionsFromConfig(cfg), foundation.WithServerLogger(log))...,
	)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
