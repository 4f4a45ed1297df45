package handlers

import (
	"net/http"
	request "rental_console/internal/adapter/http/dto/request"
	response "rental_console/internal/adapter/http/dto/response"
	"rental_console/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const termsTag = "[terms][handler]"

// TermsHandler handles terms & conditions sheets and the invoice business
// name.
type TermsHandler struct {
	terms  usecase.ITermsUseCase
	names  usecase.IInvoiceNameUseCase
	logger logrus.FieldLogger
}

func NewTermsHandler(terms usecase.ITermsUseCase, names usecase.IInvoiceNameUseCase, logger logrus.FieldLogger) *TermsHandler {
	return &TermsHandler{terms: terms, names: names, logger: loggerOrDiscard(logger)}
}

func (h *TermsHandler) List(c *gin.Context) {
	terms, err := h.terms.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, termsTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusOK, response.NewList(terms))
}

func (h *TermsHandler) ForClient(c *gin.Context) {
	terms, err := h.terms.ForClient(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		fail(c, h.logger, termsTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusOK, response.NewList(terms))
}

func (h *TermsHandler) Create(c *gin.Context) {
	var payload request.TermsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return
	}
	created, err := h.terms.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		fail(c, h.logger, termsTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusCreated, created)
}

func (h *TermsHandler) Update(c *gin.Context) {
	var payload request.TermsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return
	}
	updated, err := h.terms.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		fail(c, h.logger, termsTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusOK, updated)
}

func (h *TermsHandler) Delete(c *gin.Context) {
	if err := h.terms.Delete(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		fail(c, h.logger, termsTag, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TermsHandler) ListInvoiceNames(c *gin.Context) {
	names, err := h.names.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, termsTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusOK, response.NewList(names))
}

func (h *TermsHandler) RenameInvoiceName(c *gin.Context) {
	var payload request.InvoiceNameRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return
	}
	renamed, err := h.names.Rename(c.Request.Context(), c.Param("id"), payload.InvoiceName)
	if err != nil {
		fail(c, h.logger, termsTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusOK, renamed)
}
