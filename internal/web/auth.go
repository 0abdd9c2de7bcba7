package web

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/justestif/moodtunes/internal/apperrors"
)

type contextKey string

const userIDKey contextKey = "user_id"

var errInvalidToken = errors.New("invalid bearer token")

// UserID returns the authenticated user id stored on the request context,
// or the empty string for unauthenticated requests.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// withUserID stores the authenticated user id on a context.
func withUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// requireAuth validates the collaborator-issued bearer token and stores its
// subject claim as the user id. Token issuance lives in the account
// service; this middleware only verifies.
func requireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			userID, err := verifyToken(secret, raw)
			if err != nil {
				unauthorized(w, "invalid bearer token")
				return
			}

			next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
		})
	}
}

// verifyToken parses an HS256 JWT and returns its subject.
func verifyToken(secret, raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !tok.Valid || claims.Subject == "" {
		return "", errInvalidToken
	}
	return claims.Subject, nil
}

func unauthorized(w http.ResponseWriter, message string) {
	appErr := apperrors.NewUnauthorized(message)
	writeJSON(w, appErr.Status, errorResponse{Error: appErr.Body()})
}
