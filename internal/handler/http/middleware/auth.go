package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-leave/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-attendance-leave/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a verified access token. It runs
// after jwtauth.Verifier.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			tokenType, ok := claims[jwt.ClaimType].(string)
			if tokenType != jwt.AccessTokenType || !ok {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			if identity := IdentityFromContext(r.Context()); !identity.IsAuthenticated() || !identity.Role.Valid() {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// IdentityFromContext resolves the caller from the verified token claims.
// It returns the zero Identity when there is no token.
func IdentityFromContext(ctx context.Context) user.Identity {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil || claims == nil {
		return user.Identity{}
	}

	userID, _ := claims[jwt.ClaimUserID].(string)
	role, _ := claims[jwt.ClaimRole].(string)
	return user.Identity{UserID: userID, Role: user.Role(role)}
}
