package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"rental_console/internal/adapter/http/dto/request"
	"rental_console/internal/domain/errs"
	"rental_console/internal/infrastructure/logging"
	"rental_console/internal/usecase"
	"rental_console/pkg"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid payload", http.StatusBadRequest)
	errInvalidDate    = pkg.NewDomainErrorSimple("INVALID_DATE", "Dates must be YYYY-MM-DD or RFC3339", http.StatusBadRequest)
)

// mapDomainError maps the error taxonomy shared by every usecase. Resource
// handlers check their own sentinels first and fall back to it.
func mapDomainError(err error) *pkg.AppError {
	var remote *errs.RemoteError
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSessionNotFound), errors.Is(err, usecase.ErrSessionExpired):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Session missing or expired", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Missing permission for this section", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidTeamMemberID),
		errors.Is(err, usecase.ErrInvalidTermsID), errors.Is(err, usecase.ErrInvalidInvoiceNameID):
		return pkg.NewDomainError("INVALID_REQUEST", capitalize(err.Error()), err, http.StatusBadRequest)
	case errors.Is(err, errs.ErrConfirmationRequired):
		return pkg.NewDomainError("CONFIRMATION_REQUIRED", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, errs.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, errs.ErrInvalidStateTransition):
		return pkg.NewDomainError("INVALID_STATE_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound), errors.Is(err, usecase.ErrQuotationNotFound),
		errors.Is(err, usecase.ErrClientNotFound), errors.Is(err, usecase.ErrLineItemNotFound),
		errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainError("NOT_FOUND", capitalize(err.Error()), err, http.StatusNotFound)
	case errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound:
		return pkg.NewDomainError("NOT_FOUND", remoteMessage(remote), err, http.StatusNotFound)
	case errors.As(err, &remote):
		return pkg.NewDomainError("RENTAL_API_ERROR", remoteMessage(remote), err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrDocumentRendererNotConfigured), errors.Is(err, usecase.ErrReportExporterNotConfigured),
		errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("NOT_CONFIGURED", capitalize(err.Error()), err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func remoteMessage(e *errs.RemoteError) string {
	if e.Message != "" {
		return e.Message
	}
	return "Rental API request failed"
}

// bindError explains a rejected payload field by field when the binding
// validator produced the failure.
func bindError(err error) *pkg.AppError {
	if errors.Is(err, request.ErrInvalidDate) {
		return errInvalidDate
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return errInvalidPayload
	}
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fieldMessage(f))
	}
	return pkg.NewDomainError("VALIDATION_ERROR", strings.Join(msgs, "; "), err, http.StatusBadRequest)
}

func fieldMessage(f validator.FieldError) string {
	name := lowerFirst(f.Field())
	switch f.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", name, f.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, f.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", name, f.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// respond writes appErr unless the caller already went away; a response to a
// cancelled request is dropped.
func respond(c *gin.Context, appErr *pkg.AppError) {
	if errors.Is(appErr, context.Canceled) || c.Request.Context().Err() != nil {
		c.Abort()
		return
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// fail logs server-side failures under tag and writes appErr.
func fail(c *gin.Context, logger logrus.FieldLogger, tag string, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.WithFields(logrus.Fields{
			"path":   c.FullPath(),
			"status": appErr.HTTPStatus,
			"err":    appErr.Err,
		}).Errorf("%s %s", tag, appErr.Code)
	}
	respond(c, appErr)
}

func loggerOrDiscard(logger logrus.FieldLogger) logrus.FieldLogger {
	if logger == nil {
		return logging.Discard()
	}
	return logger
}

// confirmed reads the explicit confirmation of a destructive action.
func confirmed(c *gin.Context) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query("confirm"))) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// writeJSON writes body unless the request context is already done.
func writeJSON(c *gin.Context, status int, body any) {
	if c.Request.Context().Err() != nil {
		c.Abort()
		return
	}
	c.JSON(status, body)
}
