package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	authvalidator "fixster-server/internal/infrastructure/auth"
	"fixster-server/internal/interfaces/httpserver/responses"
)

const (
	userIDContextKey    = "user_id"
	userEmailContextKey = "user_email"
	devUserIDHeader     = "X-User-Id"
)

// AuthMiddleware validates JWT bearer tokens and stores the caller's identity
// in the gin context. With a nil validator (no JWKS_URL configured) the
// X-User-Id header is trusted instead, which is only acceptable behind a dev
// proxy.
func AuthMiddleware(validator *authvalidator.JWKSValidator, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, email, err := identityFromRequest(c, validator)
		if err != nil {
			logger.Error().Err(err).Msg("jwt validation failed")
			responses.HandleErrorWithStatus(c, http.StatusUnauthorized, err, "unauthorized")
			return
		}

		if userID == "" {
			logger.Warn().
				Str("path", c.FullPath()).
				Str("method", c.Request.Method).
				Msg("unauthenticated request")
			responses.HandleErrorWithStatus(c, http.StatusUnauthorized, errors.New("authentication required"), "unauthorized")
			return
		}

		setIdentity(c, userID, email)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller's identity when credentials are
// present but lets anonymous requests through. Handlers that want to
// personalize check GetUserID themselves.
func OptionalAuthMiddleware(validator *authvalidator.JWKSValidator, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, email, err := identityFromRequest(c, validator)
		if err != nil {
			logger.Debug().Err(err).Msg("ignoring invalid credentials on public endpoint")
		} else if userID != "" {
			setIdentity(c, userID, email)
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user's ID, or "" for anonymous callers.
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDContextKey)
}

func setIdentity(c *gin.Context, userID, email string) {
	c.Set(userIDContextKey, userID)
	if email != "" {
		c.Set(userEmailContextKey, email)
	}
	c.Writer.Header().Set("X-User-Id", userID)
}

func identityFromRequest(c *gin.Context, validator *authvalidator.JWKSValidator) (string, string, error) {
	token := bearerToken(c)

	if validator == nil {
		// Dev mode: no token verification available.
		if header := strings.TrimSpace(c.GetHeader(devUserIDHeader)); header != "" {
			return header, "", nil
		}
		return "", "", nil
	}

	if token == "" {
		return "", "", nil
	}

	claims, err := validator.Validate(c.Request.Context(), token)
	if err != nil {
		return "", "", err
	}
	return claims.Subject, claims.Email, nil
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
