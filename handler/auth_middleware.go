package handler

import (
	"context"
	"go-shop-api/common"
	"go-shop-api/service"
	"net/http"
	"strings"
)

type contextKey string

// UserEmailKey holds the resolved caller identity in the request
// context once the gate has forwarded a protected request.
const UserEmailKey contextKey = "userEmail"

// UserEmailHeader mirrors the resolved identity as a request header for
// downstream consumers that do not read the Go context.
const UserEmailHeader = "X-User-Email"

// AuthMiddleware is the per-request authentication gate. It runs before
// every route: public paths are forwarded unauthenticated, everything
// else must carry a valid bearer token. It mutates no response on
// success and holds no per-request shared state, so it is safe under
// concurrent requests.
func AuthMiddleware(classifier *RouteClassifier, tokens service.ITokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if classifier.IsPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				err := common.NewAppError(http.StatusUnauthorized, "Authorization header is missing or malformed", nil)
				err.Send(w)
				return
			}

			headerParts := strings.SplitN(authHeader, " ", 2)
			if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") {
				err := common.NewAppError(http.StatusUnauthorized, "Authorization header is missing or malformed", nil)
				err.Send(w)
				return
			}

			if _, err := tokens.Verify(headerParts[1]); err != nil {
				appErr := common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", err)
				appErr.Send(w)
				return
			}

			claims, err := tokens.Decode(headerParts[1])
			if err != nil {
				appErr := common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", err)
				appErr.Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserEmailKey, claims.Subject)
			r = r.WithContext(ctx)
			r.Header.Set(UserEmailHeader, claims.Subject)

			next.ServeHTTP(w, r)
		})
	}
}
