package interfaces

import (
	"context"
	"rental_console/internal/domain/entities"
)

// ISessionRepository stores operator sessions keyed by token.
//
// Get returns a zero Session (empty Token) when the token is unknown.

type ISessionRepository interface {
	Save(ctx context.Context, s entities.Session) error
	Get(ctx context.Context, token string) (entities.Session, error)
	Delete(ctx context.Context, token string) error
}
