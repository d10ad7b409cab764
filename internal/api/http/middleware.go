package http

import (
	"net/http"
	"strings"
	"time"

	"feedbackhub-backend/internal/auth"
	"feedbackhub-backend/internal/config"
	"feedbackhub-backend/internal/logger"
	"feedbackhub-backend/internal/security"

	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

// RequestLogging tags each request with a uuid and logs method, path,
// status and duration.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		ctx := withRequestID(r.Context(), requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.WithRequest(requestID).Info("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Recovery turns panics into 500 responses instead of dropped
// connections.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic recovered", "panic", rec, "path", r.URL.Path)
				writeError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// CORS restricts browser callers to the configured origins.
func CORS(cfg *config.Config) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

// Authentication validates the bearer token and injects the actor into
// the request context. Missing, malformed or expired tokens are an
// authentication failure, distinct from an authorization deny.
func Authentication(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := extractBearerToken(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authorization token is not provided")
				return
			}

			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				if err == security.ErrExpiredToken {
					writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "token has expired")
					return
				}
				writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "invalid token")
				return
			}

			actor := auth.Actor{
				ID:    claims.UserID,
				OrgID: claims.OrgID,
				Role:  claims.Role,
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func extractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	if len(header) > 7 && strings.EqualFold(header[0:7], "BEARER ") {
		return header[7:], true
	}
	return "", false
}
