package rentalapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// apiTime reads the date forms the API stores: ISO timestamps from Mongo and
// the bare YYYY-MM-DD values the console forms send. An empty string is a
// zero time.
type apiTime struct {
	time.Time
}

func (t *apiTime) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("date: unrecognised value %q", s)
}

func (t apiTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

func newAPITime(t time.Time) *apiTime {
	if t.IsZero() {
		return nil
	}
	return &apiTime{Time: t}
}

func newAPITimePtr(t *time.Time) *apiTime {
	if t == nil {
		return nil
	}
	return newAPITime(*t)
}

func (t *apiTime) value() time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.Time
}

func (t *apiTime) ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

// flexFloat accepts a JSON number, a numeric string, or an empty string.
// Form values reach the API as strings and are stored that way.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if isNull(b) {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("number: %w", err)
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

type flexInt int

func (i *flexInt) UnmarshalJSON(b []byte) error {
	var f flexFloat
	if err := f.UnmarshalJSON(b); err != nil {
		return err
	}
	*i = flexInt(f)
	return nil
}

// ref is a reference field that is either the plain id string or the
// populated document. It always marshals back to the id.
type ref[T any] struct {
	ID  string
	Doc *T
}

func (r *ref[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if isNull(b) {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}
	var probe struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}
	var doc T
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	r.ID, r.Doc = probe.ID, &doc
	return nil
}

func (r ref[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

func idRef[T any](id string) ref[T] { return ref[T]{ID: id} }
