package rentalapi

import (
	"context"
	"encoding/json"
	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	"rental_console/internal/usecase/interfaces"
)

const pathTerms = "/terms"

type TermsAPI struct{ c *Client }

var _ interfaces.ITermsAPI = (*TermsAPI)(nil)

func (a *TermsAPI) List(ctx context.Context) ([]entities.Terms, error) {
	return a.list(ctx, pathTerms+"/getallterms")
}

// GetByClient tolerates both a single terms object and a list.
func (a *TermsAPI) GetByClient(ctx context.Context, clientID string) ([]entities.Terms, error) {
	var raw json.RawMessage
	if err := a.c.get(ctx, idPath(pathTerms+"/getbyclient", clientID), &raw, "terms"); err != nil {
		return nil, err
	}
	var ws []termsWire
	if isObject(raw) {
		var w termsWire
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, &errs.RemoteError{Op: "GET " + pathTerms + "/getbyclient", Message: "unexpected response payload", Err: err}
		}
		ws = append(ws, w)
	} else if err := json.Unmarshal(raw, &ws); err != nil {
		return nil, &errs.RemoteError{Op: "GET " + pathTerms + "/getbyclient", Message: "unexpected response payload", Err: err}
	}
	out := make([]entities.Terms, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (a *TermsAPI) Create(ctx context.Context, t entities.Terms) (entities.Terms, error) {
	var w termsWire
	if err := a.c.post(ctx, pathTerms+"/create", fromTerms(t), &w, "terms"); err != nil {
		return entities.Terms{}, err
	}
	return w.toEntity(), nil
}

func (a *TermsAPI) Update(ctx context.Context, id string, t entities.Terms) (entities.Terms, error) {
	var w termsWire
	if err := a.c.put(ctx, idPath(pathTerms+"/updateterms", id), fromTerms(t), &w, "terms"); err != nil {
		return entities.Terms{}, err
	}
	return w.toEntity(), nil
}

func (a *TermsAPI) Delete(ctx context.Context, id string) error {
	return a.c.delete(ctx, idPath(pathTerms+"/deleteterms", id))
}

func (a *TermsAPI) list(ctx context.Context, path string) ([]entities.Terms, error) {
	var ws []termsWire
	if err := a.c.get(ctx, path, &ws, "terms"); err != nil {
		return nil, err
	}
	out := make([]entities.Terms, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toEntity())
	}
	return out, nil
}
