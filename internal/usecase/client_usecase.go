package usecase

import (
	"context"
	"errors"
	"regexp"
	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	"rental_console/internal/usecase/interfaces"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrInvalidClientID = errors.New("invalid client id")
)

var gstNoPattern = regexp.MustCompile(`^[0-9]{2}[A-Z0-9]{13}$`)

type IClientUseCase interface {
	List(ctx context.Context, activeOnly bool) ([]entities.Client, error)
	Get(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, id string, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string, confirmed bool) error
	ToggleActive(ctx context.Context, id string) (entities.Client, error)
}

type ClientUseCase struct {
	clients interfaces.IClientAPI
	log     logrus.FieldLogger
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(clients interfaces.IClientAPI, logger logrus.FieldLogger) *ClientUseCase {
	return &ClientUseCase{clients: clients, log: loggerOrDiscard(logger)}
}

func (u *ClientUseCase) List(ctx context.Context, activeOnly bool) ([]entities.Client, error) {
	all, err := u.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return all, nil
	}
	out := make([]entities.Client, 0, len(all))
	for _, c := range all {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

// Get looks the client up in the list; the rental API has no single-client
// endpoint.
func (u *ClientUseCase) Get(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	all, err := u.clients.List(ctx)
	if err != nil {
		return entities.Client{}, err
	}
	for _, c := range all {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Client{}, ErrClientNotFound
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c, err := normalizeClient(c)
	if err != nil {
		return entities.Client{}, err
	}
	created, err := u.clients.Create(ctx, c)
	if err != nil {
		u.log.WithFields(logrus.Fields{"client_name": c.ClientName, "err": err}).Error("[client][usecase] create failed")
		return entities.Client{}, err
	}
	u.log.WithField("client_id", created.ID).Info("[client][usecase] created")
	return created, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id string, c entities.Client) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := normalizeClient(c)
	if err != nil {
		return entities.Client{}, err
	}
	c.ID = id
	updated, err := u.clients.Update(ctx, id, c)
	if err != nil {
		u.log.WithFields(logrus.Fields{"client_id": id, "err": err}).Error("[client][usecase] update failed")
		return entities.Client{}, err
	}
	return updated, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id string, confirmed bool) error {
	if err := errs.RequireConfirmation(confirmed, "delete client"); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	if err := u.clients.Delete(ctx, id); err != nil {
		u.log.WithFields(logrus.Fields{"client_id": id, "err": err}).Error("[client][usecase] delete failed")
		return err
	}
	u.log.WithField("client_id", id).Info("[client][usecase] deleted")
	return nil
}

func (u *ClientUseCase) ToggleActive(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.clients.ToggleActive(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	u.log.WithFields(logrus.Fields{"client_id": id, "active": c.IsActive}).Info("[client][usecase] toggled")
	return c, nil
}

func normalizeClient(c entities.Client) (entities.Client, error) {
	c.ClientName = strings.TrimSpace(c.ClientName)
	if c.ClientName == "" {
		return c, errs.Invalid("clientName", "is required")
	}
	phone, err := normalizePhone("phoneNumber", c.PhoneNumber)
	if err != nil {
		return c, err
	}
	c.PhoneNumber = phone

	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	if c.Email != "" {
		if err := validEmail("email", c.Email); err != nil {
			return c, err
		}
	}
	c.GSTNo = strings.ToUpper(strings.TrimSpace(c.GSTNo))
	if c.GSTNo != "" && !gstNoPattern.MatchString(c.GSTNo) {
		return c, errs.Invalid("gstNo", "must be a 15 character GSTIN")
	}
	if c.Amount < 0 {
		return c, errs.Invalid("amount", "must not be negative")
	}
	c.Address = strings.TrimSpace(c.Address)
	return c, nil
}
