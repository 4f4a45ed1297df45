package handlers

import (
	"errors"
	"fmt"
	"net/http"
	request "rental_console/internal/adapter/http/dto/request"
	response "rental_console/internal/adapter/http/dto/response"
	"rental_console/internal/usecase"
	"rental_console/pkg"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	paymentTag      = "[payment][handler]"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// PaymentHandler records payments against orders and serves the payment
// reports.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	logger  logrus.FieldLogger
	now     func() time.Time
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, logger logrus.FieldLogger) *PaymentHandler {
	return &PaymentHandler{usecase: uc, logger: loggerOrDiscard(logger), now: time.Now}
}

// Record creates a payment for the order in the path. A pending order is
// confirmed by its first valid payment; the receipt says whether it was.
func (h *PaymentHandler) Record(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respond(c, bindError(err))
		return
	}

	orderID := c.Param("id")
	receipt, err := h.usecase.Record(c.Request.Context(), orderID, in)
	if err != nil {
		h.logger.WithFields(logrus.Fields{"order_id": orderID, "err": err}).Warn(paymentTag + " record failed")
		fail(c, h.logger, paymentTag, mapPaymentError(err))
		return
	}
	writeJSON(c, http.StatusCreated, receipt)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respond(c, bindError(err))
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, h.logger, paymentTag, mapPaymentError(err))
		return
	}
	writeJSON(c, http.StatusOK, updated)
}

// List is the payment report: filter by status, order, client and
// payment date range.
func (h *PaymentHandler) List(c *gin.Context) {
	filter, valid := bindPaymentFilter(c)
	if !valid {
		return
	}
	payments, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		fail(c, h.logger, paymentTag, mapPaymentError(err))
		return
	}
	writeJSON(c, http.StatusOK, response.FromPayments(payments))
}

// ListForOrder lists the payments recorded for the order in the path.
func (h *PaymentHandler) ListForOrder(c *gin.Context) {
	payments, err := h.usecase.List(c.Request.Context(), usecase.PaymentFilter{OrderID: c.Param("id")})
	if err != nil {
		fail(c, h.logger, paymentTag, mapPaymentError(err))
		return
	}
	writeJSON(c, http.StatusOK, response.FromPayments(payments))
}

// Pending is the pending payment report keyed on the next payment date.
func (h *PaymentHandler) Pending(c *gin.Context) {
	var query request.PendingPaymentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respond(c, bindError(err))
		return
	}
	q, err := query.ToQuery()
	if err != nil {
		respond(c, bindError(err))
		return
	}
	payments, err := h.usecase.Pending(c.Request.Context(), q)
	if err != nil {
		fail(c, h.logger, paymentTag, mapPaymentError(err))
		return
	}
	writeJSON(c, http.StatusOK, response.FromPayments(payments))
}

// Export downloads the filtered payment report as a workbook.
func (h *PaymentHandler) Export(c *gin.Context) {
	filter, valid := bindPaymentFilter(c)
	if !valid {
		return
	}
	data, err := h.usecase.ExportReport(c.Request.Context(), filter)
	if err != nil {
		fail(c, h.logger, paymentTag, mapPaymentError(err))
		return
	}
	if c.Request.Context().Err() != nil {
		c.Abort()
		return
	}
	name := fmt.Sprintf("payment-report-%s.xlsx", h.now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, contentTypeXLSX, data)
}

func bindPaymentFilter(c *gin.Context) (usecase.PaymentFilter, bool) {
	var query request.PaymentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respond(c, bindError(err))
		return usecase.PaymentFilter{}, false
	}
	filter, err := query.ToFilter()
	if err != nil {
		respond(c, bindError(err))
		return usecase.PaymentFilter{}, false
	}
	return filter, true
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_PROVIDER_PAYLOAD", "Invalid payment provider payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found at the payment provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller and payer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	default:
		return mapDomainError(err)
	}
}
