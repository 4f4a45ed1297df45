package handlers

import (
	"net/http"
	request "rental_console/internal/adapter/http/dto/request"
	response "rental_console/internal/adapter/http/dto/response"
	"rental_console/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const orderTag = "[order][handler]"

// OrderHandler handles order screens. Every mutation answers with the
// refetched order, its totals and its effective document numbers.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
	logger  logrus.FieldLogger
}

func NewOrderHandler(uc usecase.IOrderUseCase, logger logrus.FieldLogger) *OrderHandler {
	return &OrderHandler{usecase: uc, logger: loggerOrDiscard(logger)}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context(), rentalFilter(c))
	if err != nil {
		fail(c, h.logger, orderTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusOK, response.NewList(orders))
}

func (h *OrderHandler) Get(c *gin.Context) {
	h.reply(c, http.StatusOK)(h.usecase.Get(c.Request.Context(), c.Param("id")))
}

func (h *OrderHandler) Create(c *gin.Context) {
	in, valid := bindRental(c)
	if !valid {
		return
	}
	h.reply(c, http.StatusCreated)(h.usecase.Create(c.Request.Context(), in))
}

func (h *OrderHandler) Update(c *gin.Context) {
	in, valid := bindRental(c)
	if !valid {
		return
	}
	h.reply(c, http.StatusOK)(h.usecase.Update(c.Request.Context(), c.Param("id"), in))
}

func (h *OrderHandler) EditDates(c *gin.Context) {
	start, end, valid := bindDates(c)
	if !valid {
		return
	}
	h.reply(c, http.StatusOK)(h.usecase.EditDates(c.Request.Context(), c.Param("id"), start, end))
}

func (h *OrderHandler) EditLineItem(c *gin.Context) {
	edit, valid := bindLineEdit(c)
	if !valid {
		return
	}
	h.reply(c, http.StatusOK)(h.usecase.EditLineItem(c.Request.Context(), c.Param("id"), c.Param("lineKey"), edit))
}

func (h *OrderHandler) DeleteLineItem(c *gin.Context) {
	h.reply(c, http.StatusOK)(h.usecase.DeleteLineItem(c.Request.Context(), c.Param("id"), c.Param("lineKey"), confirmed(c)))
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	h.reply(c, http.StatusOK)(h.usecase.Cancel(c.Request.Context(), c.Param("id"), confirmed(c)))
}

func (h *OrderHandler) Complete(c *gin.Context) {
	h.reply(c, http.StatusOK)(h.usecase.Complete(c.Request.Context(), c.Param("id")))
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), confirmed(c)); err != nil {
		fail(c, h.logger, orderTag, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) AssignInvoiceNo(c *gin.Context) {
	var payload request.NumberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return
	}
	h.reply(c, http.StatusOK)(h.usecase.AssignInvoiceNo(c.Request.Context(), c.Param("id"), payload.Value))
}

func (h *OrderHandler) AssignChallanNo(c *gin.Context) {
	var payload request.NumberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return
	}
	h.reply(c, http.StatusOK)(h.usecase.AssignChallanNo(c.Request.Context(), c.Param("id"), payload.Value))
}

func (h *OrderHandler) reply(c *gin.Context, status int) func(usecase.OrderDetails, error) {
	return func(details usecase.OrderDetails, err error) {
		if err != nil {
			fail(c, h.logger, orderTag, mapDomainError(err))
			return
		}
		writeJSON(c, status, details)
	}
}
