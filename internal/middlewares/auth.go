package middlewares

import (
	"context"
	"net/http"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/jwt"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TokenDenylist reports whether a token id was revoked by logout.
type TokenDenylist interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware returns a middleware that rejects requests without a
// valid bearer token. Tokens revoked by logout are rejected for their
// remaining lifetime. Handlers behind it still extract claims themselves.
func AuthMiddleware(tokener Tokener, denylist TokenDenylist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if denylist != nil {
				revoked, err := denylist.IsRevoked(ctx, claims.ID)
				if err != nil {
					logger.Log.Errorw("denylist check failed", "err", err)
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				if revoked {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
