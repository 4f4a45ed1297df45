package errs

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestTaxonomyMatchesSentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
		not  []error
	}{
		{name: "validation", err: Invalid("amount", "must be positive"), want: ErrValidation, not: []error{ErrRemote, ErrInvalidStateTransition}},
		{name: "transition", err: &InvalidStateTransition{Status: "cancelled", Action: "edit_line_item"}, want: ErrInvalidStateTransition, not: []error{ErrValidation}},
		{name: "remote", err: &RemoteError{Op: "order.get", StatusCode: 500}, want: ErrRemote, not: []error{ErrValidation}},
		{name: "confirmation", err: RequireConfirmation(false, "delete client"), want: ErrConfirmationRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("ctx: %w", tc.err)
			if !errors.Is(wrapped, tc.want) {
				t.Fatalf("expected %v to match %v", wrapped, tc.want)
			}
			for _, n := range tc.not {
				if errors.Is(wrapped, n) {
					t.Fatalf("did not expect %v to match %v", wrapped, n)
				}
			}
		})
	}
}

func TestConfirmationErrorIsValidation(t *testing.T) {
	if err := RequireConfirmation(true, "cancel order"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := RequireConfirmation(false, "cancel order")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected confirmation error to be a validation error")
	}
	if err.Error() != "cancel order requires explicit confirmation" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestRemoteErrorMessages(t *testing.T) {
	e := &RemoteError{Op: "client.list", StatusCode: 400, Message: "bad"}
	if e.Error() != "client.list: status 400: bad" {
		t.Fatalf("unexpected %q", e.Error())
	}
	e = &RemoteError{Op: "client.list", Err: io.ErrUnexpectedEOF}
	if !errors.Is(e, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unwrap to reach transport error")
	}

	var re *RemoteError
	if !errors.As(fmt.Errorf("x: %w", e), &re) || re.Op != "client.list" {
		t.Fatalf("expected errors.As to recover RemoteError")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	if got := (&ValidationError{Field: "quantity"}).Error(); got != "quantity: invalid value" {
		t.Fatalf("unexpected %q", got)
	}
	if got := (&ValidationError{Reason: "empty"}).Error(); got != "empty" {
		t.Fatalf("unexpected %q", got)
	}
}
