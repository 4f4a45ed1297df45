package rentalapi

import (
	"context"
	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase/interfaces"
)

const pathMaster = "/master"

type TeamMemberAPI struct{ c *Client }

var _ interfaces.ITeamMemberAPI = (*TeamMemberAPI)(nil)

// Login verifies the credentials with the API. The API answers with the
// member under "user".
func (a *TeamMemberAPI) Login(ctx context.Context, email, password string) (entities.TeamMember, error) {
	body := map[string]string{"email": email, "password": password}
	var w teamMemberWire
	if err := a.c.post(ctx, pathMaster+"/loginteammember", body, &w, "user"); err != nil {
		return entities.TeamMember{}, err
	}
	return w.toEntity(), nil
}

func (a *TeamMemberAPI) List(ctx context.Context) ([]entities.TeamMember, error) {
	var ws []teamMemberWire
	if err := a.c.get(ctx, pathMaster+"/getallteammembers", &ws); err != nil {
		return nil, err
	}
	out := make([]entities.TeamMember, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (a *TeamMemberAPI) Create(ctx context.Context, member entities.TeamMember) (entities.TeamMember, error) {
	var w teamMemberWire
	if err := a.c.post(ctx, pathMaster+"/addteammember", fromTeamMember(member), &w, "user", "member"); err != nil {
		return entities.TeamMember{}, err
	}
	return w.toEntity(), nil
}

func (a *TeamMemberAPI) Update(ctx context.Context, id string, member entities.TeamMember) (entities.TeamMember, error) {
	var w teamMemberWire
	if err := a.c.put(ctx, idPath(pathMaster+"/updateteammember", id), fromTeamMember(member), &w, "user", "member"); err != nil {
		return entities.TeamMember{}, err
	}
	return w.toEntity(), nil
}

func (a *TeamMemberAPI) Delete(ctx context.Context, id string) error {
	return a.c.delete(ctx, idPath(pathMaster+"/deleteteammember", id))
}
