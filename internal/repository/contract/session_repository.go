package contract

import (
	"context"

	"lead-generator-be/internal/entity"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, id uuid.UUID) (*entity.Session, bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
