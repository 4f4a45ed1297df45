package rentalapi

import (
	"context"
	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase/interfaces"
)

const pathClient = "/client"

type ClientAPI struct{ c *Client }

var _ interfaces.IClientAPI = (*ClientAPI)(nil)

func (a *ClientAPI) List(ctx context.Context) ([]entities.Client, error) {
	var ws []clientWire
	if err := a.c.get(ctx, pathClient+"/getallclients", &ws); err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (a *ClientAPI) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	var w clientWire
	if err := a.c.post(ctx, pathClient+"/add-client", fromClient(c), &w, "client"); err != nil {
		return entities.Client{}, err
	}
	return w.toEntity(), nil
}

func (a *ClientAPI) Update(ctx context.Context, id string, c entities.Client) (entities.Client, error) {
	var w clientWire
	if err := a.c.put(ctx, idPath(pathClient+"/edit-client", id), fromClient(c), &w, "client"); err != nil {
		return entities.Client{}, err
	}
	return w.toEntity(), nil
}

func (a *ClientAPI) Delete(ctx context.Context, id string) error {
	return a.c.delete(ctx, idPath(pathClient+"/deleteclient", id))
}

func (a *ClientAPI) ToggleActive(ctx context.Context, id string) (entities.Client, error) {
	var w clientWire
	if err := a.c.put(ctx, idPath(pathClient+"/toggleactive", id), nil, &w, "client"); err != nil {
		return entities.Client{}, err
	}
	return w.toEntity(), nil
}
