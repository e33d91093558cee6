package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"

	"homeswerv/internal/domain"
	"homeswerv/internal/services/profiles"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
	// AccessTokenCookie carries the session token for browser requests.
	AccessTokenCookie = "sb-access-token"
)

var (
	errNoToken     = errors.New("no access token")
	errEmptySecret = errors.New("jwt secret not configured")
)

type ctxKey int

const userIDKey ctxKey = iota

// errorWriter renders an error in the surface's format, HTML or JSON.
type errorWriter func(w http.ResponseWriter, r *http.Request, status int, msg string)

// authenticate verifies the access token and stores its subject in the
// request context. Requests without a valid token get 401.
func (s *Server) authenticate(fail errorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := tokenFromRequest(r)
			if err != nil {
				fail(w, r, http.StatusUnauthorized, "Sign in to continue")
				return
			}
			userID, err := verifyToken(raw, s.opts.JWTSecret)
			if err != nil {
				hlog.FromRequest(r).Warn().Err(err).Str("path", r.URL.Path).Msg("JWT validation failed")
				fail(w, r, http.StatusUnauthorized, "Invalid or expired session")
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requireAdmin lets only admin profiles through. It must run after authenticate.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := s.currentUser(w, r, s.htmlError)
		if !ok {
			return
		}
		if user.Role != domain.RoleAdmin {
			s.htmlError(w, r, http.StatusForbidden, "Administrators only")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// currentUser loads the profile of the authenticated user. On failure it has
// already written the response.
func (s *Server) currentUser(w http.ResponseWriter, r *http.Request, fail errorWriter) (domain.User, bool) {
	user, err := s.profiles.Current(r.Context(), userIDFromContext(r.Context()))
	if errors.Is(err, profiles.ErrNotFound) {
		fail(w, r, http.StatusUnauthorized, "Unknown user")
		return domain.User{}, false
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Failed to load user")
		fail(w, r, http.StatusInternalServerError, "Something went wrong")
		return domain.User{}, false
	}
	return user, true
}

func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func tokenFromRequest(r *http.Request) (string, error) {
	if h := r.Header.Get(authorizationHeader); strings.HasPrefix(h, bearerPrefix) {
		if tok := strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix)); tok != "" {
			return tok, nil
		}
	}
	if c, err := r.Cookie(AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}
	return "", errNoToken
}

// verifyToken checks an HS256 token and returns its subject, which must be a UUID.
func verifyToken(raw string, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errEmptySecret
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", fmt.Errorf("token subject: %w", err)
	}
	return id.String(), nil
}
