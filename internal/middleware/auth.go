package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vaultpass/passmeter-go/internal/crypto"
)

type contextKey string

const subjectKey contextKey = "subject"

// subjectSlot lets BearerAuth report the token subject back to middleware
// mounted further out, such as Logger.
type subjectSlot struct {
	subject string
}

func withSubjectSlot(ctx context.Context) context.Context {
	return context.WithValue(ctx, subjectKey, &subjectSlot{})
}

// BearerAuth returns middleware that validates a Bearer token from the Authorization header.
// An empty secret disables the check.
func BearerAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := r.Context()
			slot, ok := ctx.Value(subjectKey).(*subjectSlot)
			if !ok {
				slot = &subjectSlot{}
				ctx = context.WithValue(ctx, subjectKey, slot)
			}
			slot.subject = claims.Subject
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SubjectFromContext extracts the authenticated token subject from the request context.
func SubjectFromContext(ctx context.Context) (string, bool) {
	slot, ok := ctx.Value(subjectKey).(*subjectSlot)
	if !ok || slot.subject == "" {
		return "", false
	}
	return slot.subject, true
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
