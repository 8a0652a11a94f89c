package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/isaacphi/gptsmith/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/assistant.go -package=mocks . AssistantRepository

type AssistantRepository interface {
	Create(ctx context.Context, assistant *domain.Assistant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Assistant, error)
	// List returns the newest assistants first. A limit of 0 returns all of them.
	List(ctx context.Context, limit int) ([]*domain.Assistant, error)
	FindByPartialID(ctx context.Context, partialID string) (*domain.Assistant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
