package usecase

import (
	"context"
	"errors"
	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	"rental_console/internal/usecase/interfaces"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrInvalidTeamMemberID = errors.New("invalid team member id")

const minPasswordLength = 6

type ITeamMemberUseCase interface {
	List(ctx context.Context) ([]entities.TeamMember, error)
	Create(ctx context.Context, member entities.TeamMember) (entities.TeamMember, error)
	Update(ctx context.Context, id string, member entities.TeamMember) (entities.TeamMember, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

type TeamMemberUseCase struct {
	members interfaces.ITeamMemberAPI
	log     logrus.FieldLogger
}

var _ ITeamMemberUseCase = (*TeamMemberUseCase)(nil)

func NewTeamMemberUseCase(members interfaces.ITeamMemberAPI, logger logrus.FieldLogger) *TeamMemberUseCase {
	return &TeamMemberUseCase{members: members, log: loggerOrDiscard(logger)}
}

func (u *TeamMemberUseCase) List(ctx context.Context) ([]entities.TeamMember, error) {
	members, err := u.members.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		members[i].Password = ""
	}
	return members, nil
}

func (u *TeamMemberUseCase) Create(ctx context.Context, member entities.TeamMember) (entities.TeamMember, error) {
	member, err := normalizeMember(member, true)
	if err != nil {
		return entities.TeamMember{}, err
	}
	created, err := u.members.Create(ctx, member)
	if err != nil {
		u.log.WithFields(logrus.Fields{"email": member.Email, "err": err}).Error("[team][usecase] create failed")
		return entities.TeamMember{}, err
	}
	created.Password = ""
	u.log.WithField("member_id", created.ID).Info("[team][usecase] created")
	return created, nil
}

// Update replaces the member record. An empty password keeps the current one.
func (u *TeamMemberUseCase) Update(ctx context.Context, id string, member entities.TeamMember) (entities.TeamMember, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TeamMember{}, ErrInvalidTeamMemberID
	}
	member, err := normalizeMember(member, false)
	if err != nil {
		return entities.TeamMember{}, err
	}
	member.ID = id
	updated, err := u.members.Update(ctx, id, member)
	if err != nil {
		u.log.WithFields(logrus.Fields{"member_id": id, "err": err}).Error("[team][usecase] update failed")
		return entities.TeamMember{}, err
	}
	updated.Password = ""
	return updated, nil
}

func (u *TeamMemberUseCase) Delete(ctx context.Context, id string, confirmed bool) error {
	if err := errs.RequireConfirmation(confirmed, "delete team member"); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTeamMemberID
	}
	if err := u.members.Delete(ctx, id); err != nil {
		u.log.WithFields(logrus.Fields{"member_id": id, "err": err}).Error("[team][usecase] delete failed")
		return err
	}
	u.log.WithField("member_id", id).Info("[team][usecase] deleted")
	return nil
}

func normalizeMember(m entities.TeamMember, requirePassword bool) (entities.TeamMember, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	if m.Name == "" {
		return m, errs.Invalid("name", "is required")
	}
	if err := validEmail("email", m.Email); err != nil {
		return m, err
	}
	if requirePassword || m.Password != "" {
		if len(m.Password) < minPasswordLength {
			return m, errs.Invalid("password", "must be at least %d characters", minPasswordLength)
		}
	}
	perms := entities.Permissions{}
	for _, p := range entities.AllPermissions {
		perms[p] = m.Permissions.Has(p)
	}
	for p := range m.Permissions {
		if _, ok := perms[p]; !ok {
			return m, errs.Invalid("permissions", "unknown permission %q", p)
		}
	}
	m.Permissions = perms
	return m, nil
}
