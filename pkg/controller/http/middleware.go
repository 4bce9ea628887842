package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/domain/types"
	"github.com/secmon-lab/qmsboard/pkg/service/metrics"
	"github.com/secmon-lab/qmsboard/pkg/utils/apperr"
)

const (
	// RoleHeader carries the acting role. It is trusted as sent.
	RoleHeader = "X-QMS-Role"
	// UserHeader carries the acting user ID
	UserHeader = "X-QMS-User"
)

// CORS middleware adds CORS headers
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RoleHeader+", "+UserHeader)

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RoleMiddleware stores the actor declared by the request headers in the
// context. A missing role means staff.
func RoleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := types.RoleStaff
		if v := r.Header.Get(RoleHeader); v != "" {
			parsed, err := types.ParseRole(v)
			if err != nil {
				apperr.HandleHTTP(w, r, goerr.Wrap(err, "invalid role header"))
				return
			}
			role = parsed
		}

		actor := &model.Actor{
			UserID: types.UserID(r.Header.Get(UserHeader)),
			Role:   role,
		}
		ctx := model.WithActor(r.Context(), actor)
		ctx = ctxlog.With(ctx, ctxlog.From(ctx).With("role", actor.Role))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission rejects actors whose role lacks perm
func RequirePermission(perm model.Permission) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := model.ActorFromContext(r.Context())
			if !model.HasPermission(actor.Role, perm) {
				apperr.HandleHTTP(w, r, goerr.Wrap(model.ErrForbidden, "missing permission",
					goerr.V("role", actor.Role),
					goerr.V("permission", perm)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// MetricsMiddleware counts requests by route pattern and status
func MetricsMiddleware(collector *metrics.Collector) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			collector.ObserveRequest(r.Method, route, ww.Status())
		})
	}
}

// LoggingMiddleware creates a chi-compatible logging middleware
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Embed logger from the initial context into request context
			logger := ctxlog.From(ctx).With("request_id", middleware.GetReqID(r.Context()))
			r = r.WithContext(ctxlog.With(r.Context(), logger))

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.Query(),
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		})
	}
}
