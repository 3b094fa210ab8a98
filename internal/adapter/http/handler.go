package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"adwallet/internal/core/port"
)

// Tokens signs and verifies the session cookie value.
type Tokens interface {
	Issue(sessionID string) (string, error)
	Parse(token string) (string, error)
}

// Options tunes the cookie and request limits of a Handler.
type Options struct {
	CookieName     string
	CookieSecure   bool
	SessionTTL     time.Duration
	MaxUploadBytes int64
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Identity is resolved once per request from the session cookie and handed
// to the use case as the caller's wallet address.
type Handler struct {
	svc      port.MarketUseCase
	sessions port.SessionStore
	tokens   Tokens
	opts     Options
	validate *validator.Validate
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.MarketUseCase, sessions port.SessionStore, tokens Tokens, opts Options, logger *slog.Logger) *Handler {
	h := &Handler{
		svc:      svc,
		sessions: sessions,
		tokens:   tokens,
		opts:     opts,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(h.identify)

		r.Get("/", h.handleHome)
		r.Post("/connect_wallet/", h.handleConnectWallet)
		r.Get("/select_role/", h.handleSelectRole)
		r.Post("/select_role/", h.handleSelectRole)
		r.Get("/publisher_dashboard/", h.handlePublisherDashboard)
		r.Get("/advertiser_dashboard/", h.handleAdvertiserDashboard)
		r.Post("/advertiser_dashboard/", h.handleAdvertiserUpload)
		r.Post("/add_eth/", h.handleAddETH)
		r.Post("/create_campaign/", h.handleCreateCampaign)
	})

	r.Post("/simulate_ad_view/{videoID}/", h.handleSimulateView)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
