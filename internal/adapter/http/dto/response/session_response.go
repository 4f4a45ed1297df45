package response

import (
	"rental_console/internal/domain/entities"
	"time"
)

type SessionResponse struct {
	Token       string    `json:"token,omitempty"`
	MemberID    string    `json:"memberId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Permissions []string  `json:"permissions"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// FromSession renders s. The token is only sent back on login.
func FromSession(s entities.Session, withToken bool) SessionResponse {
	out := SessionResponse{
		MemberID:    s.MemberID,
		Name:        s.Name,
		Email:       s.Email,
		Permissions: permissionNames(s.Permissions),
		ExpiresAt:   s.ExpiresAt,
	}
	if withToken {
		out.Token = s.Token
	}
	return out
}

type TeamMemberResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Permissions []string `json:"permissions"`
}

// FromTeamMember never carries the password back to the console.
func FromTeamMember(m entities.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Permissions: permissionNames(m.Permissions),
	}
}

func FromTeamMembers(members []entities.TeamMember) []TeamMemberResponse {
	out := make([]TeamMemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, FromTeamMember(m))
	}
	return out
}

func permissionNames(p entities.Permissions) []string {
	granted := p.Granted()
	out := make([]string, 0, len(granted))
	for _, g := range granted {
		out = append(out, string(g))
	}
	return out
}
