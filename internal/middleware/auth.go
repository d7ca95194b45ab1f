package middleware

import (
	"net/http"

	"crm-be/internal/auth"
	"crm-be/internal/user"
	"crm-be/internal/utils"
)

// AuthMiddleware parses an optional Bearer token and stores the staff
// identity in the request context. Requests without a valid token pass
// through anonymously; the @auth directive decides what needs a login.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.BearerToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.WithUser(r.Context(), claims.UserID, claims.Email, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
