package handlers

import (
	"net/http"
	request "rental_console/internal/adapter/http/dto/request"
	response "rental_console/internal/adapter/http/dto/response"
	"rental_console/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const productTag = "[product][handler]"

type ProductHandler struct {
	usecase usecase.IProductUseCase
	logger  logrus.FieldLogger
}

func NewProductHandler(uc usecase.IProductUseCase, logger logrus.FieldLogger) *ProductHandler {
	return &ProductHandler{usecase: uc, logger: loggerOrDiscard(logger)}
}

// List returns the catalog; ?available=true keeps products with stock left.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context(), c.Query("available") == "true")
	if err != nil {
		fail(c, h.logger, productTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusOK, response.NewList(products))
}

func (h *ProductHandler) Create(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		fail(c, h.logger, productTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusCreated, created)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		fail(c, h.logger, productTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusOK, updated)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		fail(c, h.logger, productTag, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
