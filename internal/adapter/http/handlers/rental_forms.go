package handlers

import (
	request "rental_console/internal/adapter/http/dto/request"
	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// The quotation and order forms share their payloads. Each bind helper writes
// the 400 itself and reports whether the handler may continue.

func bindRental(c *gin.Context) (usecase.RentalInput, bool) {
	var payload request.RentalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return usecase.RentalInput{}, false
	}
	in, err := payload.ToInput()
	if err != nil {
		respond(c, bindError(err))
		return usecase.RentalInput{}, false
	}
	return in, true
}

func bindDates(c *gin.Context) (time.Time, time.Time, bool) {
	var payload request.DatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return time.Time{}, time.Time{}, false
	}
	start, end, err := payload.Resolve()
	if err != nil {
		respond(c, bindError(err))
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func bindLineEdit(c *gin.Context) (usecase.LineEdit, bool) {
	var payload request.LineEditRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond(c, bindError(err))
		return usecase.LineEdit{}, false
	}
	edit, err := payload.ToEdit()
	if err != nil {
		respond(c, bindError(err))
		return usecase.LineEdit{}, false
	}
	return edit, true
}

func rentalFilter(c *gin.Context) usecase.RentalFilter {
	return usecase.RentalFilter{
		Status:   entities.Status(strings.ToLower(strings.TrimSpace(c.Query("status")))),
		ClientID: strings.TrimSpace(c.Query("clientId")),
	}
}
