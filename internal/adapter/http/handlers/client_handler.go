package handlers

import (
	"net/http"
	request "rental_console/internal/adapter/http/dto/request"
	response "rental_console/internal/adapter/http/dto/response"
	"rental_console/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const clientTag = "[client][handler]"

// ClientHandler handles the client master.
type ClientHandler struct {
	usecase usecase.IClientUseCase
	logger  logrus.FieldLogger
}

func NewClientHandler(uc usecase.IClientUseCase, logger logrus.FieldLogger) *ClientHandler {
	return &ClientHandler{usecase: uc, logger: loggerOrDiscard(logger)}
}

// List returns every client, or only active ones with ?active=true.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		fail(c, h.logger, clientTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusOK, response.NewList(clients))
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.logger, clientTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return
	}
	client, err := payload.ToEntity()
	if err != nil {
		respond(c, bindError(err))
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), client)
	if err != nil {
		fail(c, h.logger, clientTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusCreated, created)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return
	}
	client, err := payload.ToEntity()
	if err != nil {
		respond(c, bindError(err))
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), client)
	if err != nil {
		fail(c, h.logger, clientTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusOK, updated)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		fail(c, h.logger, clientTag, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) ToggleActive(c *gin.Context) {
	client, err := h.usecase.ToggleActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.logger, clientTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusOK, client)
}
