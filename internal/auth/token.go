package auth

import (
	"net/http"
	"strings"
)

// Browser playground sessions keep the staff JWT in a cookie; API callers
// and the worker send it in the Authorization header.
const sessionCookie = "access_token"

// BearerToken pulls the staff JWT off a request. An Authorization header
// takes precedence over the session cookie so an explicit token always
// wins over a lingering browser session.
func BearerToken(r *http.Request) string {
	if raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		if token := strings.TrimSpace(raw); token != "" {
			return token
		}
	}

	if cookie, err := r.Cookie(sessionCookie); err == nil {
		return cookie.Value
	}

	return ""
}
