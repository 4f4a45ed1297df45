package request

import "strings"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ResolveEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}
