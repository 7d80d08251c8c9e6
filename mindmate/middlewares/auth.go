package middlewares

import (
	"context"
	"net/http"
	"strings"

	"mindmate/mindmate/config"
	"mindmate/mindmate/session"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	UsernameKey  contextKey = "username"
	SessionIDKey contextKey = "session_id"
)

// AuthMiddleware validates the bearer token and checks the session it names
// is still alive; logout kills the session, so stale tokens stop working
// even before they expire.
func AuthMiddleware(cfg config.Config, sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			parts := strings.Split(auth, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			username, sessionID, err := ParseToken(cfg, parts[1])
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if sessions.Get(sessionID) == nil {
				http.Error(w, "session expired", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), UsernameKey, username)
			ctx = context.WithValue(ctx, SessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParseToken verifies an HS256 token and returns its username and session id
// claims. Shared with the websocket chat route, which carries the token in
// its first frame instead of a header.
func ParseToken(cfg config.Config, tokenStr string) (username, sessionID string, err error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", "", jwt.ErrTokenUnverifiable
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", jwt.ErrTokenInvalidClaims
	}
	username, ok = claims["username"].(string)
	if !ok {
		return "", "", jwt.ErrTokenInvalidClaims
	}
	sessionID, ok = claims["session_id"].(string)
	if !ok {
		return "", "", jwt.ErrTokenInvalidClaims
	}
	return username, sessionID, nil
}
