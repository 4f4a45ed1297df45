package usecase

import (
	"rental_console/internal/domain/errs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

const defaultPhoneRegion = "IN"

var validate = validator.New()

func validEmail(field, email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return errs.Invalid(field, "must be a valid email address")
	}
	return nil
}

// normalizePhone validates number for the business region and returns its
// national significant number, the form the rental API stores.
func normalizePhone(field, number string) (string, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return "", errs.Invalid(field, "is required")
	}
	parsed, err := libphonenumber.Parse(number, defaultPhoneRegion)
	if err != nil || !libphonenumber.IsValidNumber(parsed) {
		return "", errs.Invalid(field, "%q is not a valid phone number", number)
	}
	return libphonenumber.GetNationalSignificantNumber(parsed), nil
}
