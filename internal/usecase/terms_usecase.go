package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	"rental_console/internal/usecase/interfaces"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrInvalidTermsID = errors.New("invalid terms id")

type ITermsUseCase interface {
	List(ctx context.Context) ([]entities.Terms, error)
	ForClient(ctx context.Context, clientID string) ([]entities.Terms, error)
	Create(ctx context.Context, t entities.Terms) (entities.Terms, error)
	Update(ctx context.Context, id string, t entities.Terms) (entities.Terms, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

type TermsUseCase struct {
	terms interfaces.ITermsAPI
	log   logrus.FieldLogger
}

var _ ITermsUseCase = (*TermsUseCase)(nil)

func NewTermsUseCase(terms interfaces.ITermsAPI, logger logrus.FieldLogger) *TermsUseCase {
	return &TermsUseCase{terms: terms, log: loggerOrDiscard(logger)}
}

func (u *TermsUseCase) List(ctx context.Context) ([]entities.Terms, error) {
	return u.terms.List(ctx)
}

// ForClient returns the client's terms. A client without terms yields an
// empty list, not an error.
func (u *TermsUseCase) ForClient(ctx context.Context, clientID string) ([]entities.Terms, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return clientTerms(ctx, u.terms, clientID)
}

func (u *TermsUseCase) Create(ctx context.Context, t entities.Terms) (entities.Terms, error) {
	t, err := normalizeTerms(t)
	if err != nil {
		return entities.Terms{}, err
	}
	created, err := u.terms.Create(ctx, t)
	if err != nil {
		u.log.WithFields(logrus.Fields{"client_id": t.ClientID, "err": err}).Error("[terms][usecase] create failed")
		return entities.Terms{}, err
	}
	return created, nil
}

func (u *TermsUseCase) Update(ctx context.Context, id string, t entities.Terms) (entities.Terms, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Terms{}, ErrInvalidTermsID
	}
	t, err := normalizeTerms(t)
	if err != nil {
		return entities.Terms{}, err
	}
	t.ID = id
	updated, err := u.terms.Update(ctx, id, t)
	if err != nil {
		u.log.WithFields(logrus.Fields{"terms_id": id, "err": err}).Error("[terms][usecase] update failed")
		return entities.Terms{}, err
	}
	return updated, nil
}

func (u *TermsUseCase) Delete(ctx context.Context, id string, confirmed bool) error {
	if err := errs.RequireConfirmation(confirmed, "delete terms"); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTermsID
	}
	return u.terms.Delete(ctx, id)
}

func clientTerms(ctx context.Context, api interfaces.ITermsAPI, clientID string) ([]entities.Terms, error) {
	terms, err := api.GetByClient(ctx, clientID)
	if err != nil {
		var re *errs.RemoteError
		if errors.As(err, &re) && re.StatusCode == http.StatusNotFound {
			return []entities.Terms{}, nil
		}
		return nil, err
	}
	return terms, nil
}

// normalizeTerms drops blank points and renumbers the rest from 1.
func normalizeTerms(t entities.Terms) (entities.Terms, error) {
	t.Title = strings.TrimSpace(t.Title)
	t.ClientID = strings.TrimSpace(t.ClientID)
	if t.ClientID == "" {
		return t, errs.Invalid("clientId", "is required")
	}
	points := make([]entities.TermsPoint, 0, len(t.Points))
	for _, p := range t.Points {
		d := strings.TrimSpace(p.Description)
		if d == "" {
			continue
		}
		points = append(points, entities.TermsPoint{PointNumber: len(points) + 1, Description: d})
	}
	if len(points) == 0 {
		return t, errs.Invalid("points", "at least one point is required")
	}
	t.Points = points
	if t.Title == "" {
		t.Title = fmt.Sprintf("Terms & Conditions (%d points)", len(points))
	}
	return t, nil
}
