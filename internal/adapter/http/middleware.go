package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type identityKey struct{}

// identity is the caller as known from its session cookie. Both fields are
// empty for a client without a valid session.
type identity struct {
	SessionID string
	Wallet    string
}

func identityFrom(ctx context.Context) identity {
	id, _ := ctx.Value(identityKey{}).(identity)
	return id
}

// identify resolves cookie -> session id -> wallet and stores the result in
// the request context. Invalid or expired cookies are treated as absent.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id identity
		if c, err := r.Cookie(h.opts.CookieName); err == nil {
			if sid, err := h.tokens.Parse(c.Value); err == nil {
				wallet, err := h.sessions.Load(r.Context(), sid)
				if err != nil {
					h.logger.Error("load session", slog.Any("error", err))
					http.Error(w, "internal error", http.StatusInternalServerError)
					return
				}
				id = identity{SessionID: sid, Wallet: wallet}
			}
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey{}, id)))
	})
}

// logRequests writes one log record per request once it has been served.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			h.logger.Info("http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}
