package handlers

import (
	"net/http"
	request "rental_console/internal/adapter/http/dto/request"
	response "rental_console/internal/adapter/http/dto/response"
	"rental_console/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const teamTag = "[team][handler]"

type TeamMemberHandler struct {
	usecase usecase.ITeamMemberUseCase
	logger  logrus.FieldLogger
}

func NewTeamMemberHandler(uc usecase.ITeamMemberUseCase, logger logrus.FieldLogger) *TeamMemberHandler {
	return &TeamMemberHandler{usecase: uc, logger: loggerOrDiscard(logger)}
}

func (h *TeamMemberHandler) List(c *gin.Context) {
	members, err := h.usecase.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, teamTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusOK, response.NewList(response.FromTeamMembers(members)))
}

func (h *TeamMemberHandler) Create(c *gin.Context) {
	var payload request.TeamMemberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		fail(c, h.logger, teamTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusCreated, response.FromTeamMember(created))
}

func (h *TeamMemberHandler) Update(c *gin.Context) {
	var payload request.TeamMemberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		fail(c, h.logger, teamTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusOK, response.FromTeamMember(updated))
}

func (h *TeamMemberHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		fail(c, h.logger, teamTag, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
