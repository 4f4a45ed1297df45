// Package middleware authenticates console requests and gates them by the
// operator's permission flags.
package middleware

import (
	"errors"
	"net/http"
	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase"
	"rental_console/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

const sessionKey = "console.session"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing bearer token", http.StatusUnauthorized)
	errBadSession   = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Session missing or expired", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Missing permission for this section", http.StatusForbidden)
)

// RequireSession resolves the bearer token into a session and stores it on
// the gin context.
func RequireSession(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		session, err := auth.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, usecase.ErrSessionNotFound) || errors.Is(err, usecase.ErrSessionExpired) {
				c.AbortWithStatusJSON(errBadSession.HTTPStatus, errBadSession.ToHTTPError())
				return
			}
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// RequirePermission rejects a request whose session lacks perm. It must run
// after RequireSession.
func RequirePermission(perm entities.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errBadSession.HTTPStatus, errBadSession.ToHTTPError())
			return
		}
		if !session.Permissions.Has(perm) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SessionFrom(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return entities.Session{}, false
	}
	s, ok := v.(entities.Session)
	return s, ok
}

// BearerToken returns the token of an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
