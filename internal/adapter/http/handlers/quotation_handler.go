package handlers

import (
	"net/http"
	response "rental_console/internal/adapter/http/dto/response"
	"rental_console/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const quotationTag = "[quotation][handler]"

// QuotationHandler handles quotation screens. Every mutation answers with
// the refetched quotation and its totals.
type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
	logger  logrus.FieldLogger
}

func NewQuotationHandler(uc usecase.IQuotationUseCase, logger logrus.FieldLogger) *QuotationHandler {
	return &QuotationHandler{usecase: uc, logger: loggerOrDiscard(logger)}
}

func (h *QuotationHandler) List(c *gin.Context) {
	quotations, err := h.usecase.List(c.Request.Context(), rentalFilter(c))
	if err != nil {
		fail(c, h.logger, quotationTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusOK, response.NewList(quotations))
}

func (h *QuotationHandler) Get(c *gin.Context) {
	h.reply(c, http.StatusOK)(h.usecase.Get(c.Request.Context(), c.Param("id")))
}

func (h *QuotationHandler) Create(c *gin.Context) {
	in, valid := bindRental(c)
	if !valid {
		return
	}
	h.reply(c, http.StatusCreated)(h.usecase.Create(c.Request.Context(), in))
}

func (h *QuotationHandler) Update(c *gin.Context) {
	in, valid := bindRental(c)
	if !valid {
		return
	}
	h.reply(c, http.StatusOK)(h.usecase.Update(c.Request.Context(), c.Param("id"), in))
}

func (h *QuotationHandler) EditDates(c *gin.Context) {
	start, end, valid := bindDates(c)
	if !valid {
		return
	}
	h.reply(c, http.StatusOK)(h.usecase.EditDates(c.Request.Context(), c.Param("id"), start, end))
}

func (h *QuotationHandler) EditLineItem(c *gin.Context) {
	edit, valid := bindLineEdit(c)
	if !valid {
		return
	}
	h.reply(c, http.StatusOK)(h.usecase.EditLineItem(c.Request.Context(), c.Param("id"), c.Param("lineKey"), edit))
}

func (h *QuotationHandler) DeleteLineItem(c *gin.Context) {
	h.reply(c, http.StatusOK)(h.usecase.DeleteLineItem(c.Request.Context(), c.Param("id"), c.Param("lineKey"), confirmed(c)))
}

func (h *QuotationHandler) Cancel(c *gin.Context) {
	h.reply(c, http.StatusOK)(h.usecase.Cancel(c.Request.Context(), c.Param("id"), confirmed(c)))
}

// GenerateOrder converts the quotation and answers with the new order.
func (h *QuotationHandler) GenerateOrder(c *gin.Context) {
	order, err := h.usecase.GenerateOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.logger, quotationTag, mapDomainError(err))
		return
	}
	writeJSON(c, http.StatusCreated, order)
}

func (h *QuotationHandler) reply(c *gin.Context, status int) func(usecase.QuotationDetails, error) {
	return func(details usecase.QuotationDetails, err error) {
		if err != nil {
			fail(c, h.logger, quotationTag, mapDomainError(err))
			return
		}
		writeJSON(c, status, details)
	}
}
