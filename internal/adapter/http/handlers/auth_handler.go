package handlers

import (
	"errors"
	"net/http"
	request "rental_console/internal/adapter/http/dto/request"
	response "rental_console/internal/adapter/http/dto/response"
	"rental_console/internal/adapter/http/middleware"
	"rental_console/internal/usecase"
	"rental_console/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const authTag = "[auth][handler]"

// AuthHandler handles operator login and logout.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
	logger  logrus.FieldLogger
}

func NewAuthHandler(uc usecase.IAuthUseCase, logger logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{usecase: uc, logger: loggerOrDiscard(logger)}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.ResolveEmail(), payload.Password)
	if err != nil {
		fail(c, h.logger, authTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusOK, response.FromSession(session, true))
}

// Logout removes the caller's session. Logging out twice is not an error.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.BearerToken(c)
	if token == "" {
		appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing bearer token", http.StatusUnauthorized)
		respond(c, appErr)
		return
	}
	if err := h.usecase.Logout(c.Request.Context(), token); err != nil && !errors.Is(err, usecase.ErrSessionNotFound) {
		fail(c, h.logger, authTag, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Me returns the session RequireSession resolved.
func (h *AuthHandler) Me(c *gin.Context) {
	session, found := middleware.SessionFrom(c)
	if !found {
		respond(c, mapDomainError(usecase.ErrSessionNotFound))
		return
	}
	writeJSON(c, http.StatusOK, response.FromSession(session, false))
}
