package request

import (
	"rental_console/internal/domain/entities"
	"strings"
)

// TeamMemberRequest carries the operator record. Permissions lists the
// granted flags; unknown flags are dropped.
type TeamMemberRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password"`
	Permissions []string `json:"permissions"`
}

func (r TeamMemberRequest) ToEntity() entities.TeamMember {
	perms := entities.Permissions{}
	for _, known := range entities.AllPermissions {
		perms[known] = false
	}
	for _, p := range r.Permissions {
		key := entities.Permission(strings.ToLower(strings.TrimSpace(p)))
		if _, ok := perms[key]; ok {
			perms[key] = true
		}
	}
	return entities.TeamMember{
		Name:        strings.TrimSpace(r.Name),
		Email:       strings.TrimSpace(r.Email),
		Password:    r.Password,
		Permissions: perms,
	}
}
