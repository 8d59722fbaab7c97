package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/interfaces/rest"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey int

const photographerKey contextKey = iota

// PhotographerID returns the authenticated photographer set by Auth.
func PhotographerID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(photographerKey).(string)
	return id, ok && id != ""
}

func WithPhotographerID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, photographerKey, id)
}

// Auth accepts HS256 bearer tokens whose subject is the photographer id.
func Auth(secret []byte, issuer string, logger *slog.Logger) func(http.Handler) http.Handler {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, err := authenticate(parser, secret, r.Header.Get("Authorization"))
			if err != nil {
				logger.Warn("rejected photographer request",
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
					"reason", err)
				rest.WriteError(w, application.NewUnauthorizedError("Missing or invalid bearer token"), logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPhotographerID(r.Context(), subject)))
		})
	}
}

func authenticate(parser *jwt.Parser, secret []byte, header string) (string, error) {
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	tokenString = strings.TrimSpace(tokenString)
	if !ok || tokenString == "" {
		return "", errors.New("missing bearer token")
	}

	claims := &jwt.RegisteredClaims{}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}); err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}
