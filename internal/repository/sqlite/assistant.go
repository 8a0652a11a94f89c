package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/isaacphi/gptsmith/internal/repository"

	"gorm.io/gorm"
)

type assistantRepo struct {
	db *gorm.DB
}

func NewAssistantRepository(db *gorm.DB) repository.AssistantRepository {
	return &assistantRepo{db: db}
}

func (r *assistantRepo) Create(ctx context.Context, assistant *domain.Assistant) error {
	return r.db.WithContext(ctx).Create(assistant).Error
}

func (r *assistantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assistant, error) {
	var assistant domain.Assistant
	if err := r.db.WithContext(ctx).Preload("Files").First(&assistant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NoAssistantError{ID: id.String()}
		}
		return nil, err
	}
	return &assistant, nil
}

func (r *assistantRepo) List(ctx context.Context, limit int) ([]*domain.Assistant, error) {
	var assistants []*domain.Assistant
	query := r.db.WithContext(ctx).Preload("Files").Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&assistants).Error; err != nil {
		return nil, err
	}
	return assistants, nil
}

func (r *assistantRepo) FindByPartialID(ctx context.Context, partialID string) (*domain.Assistant, error) {
	partialID = strings.ToLower(strings.TrimSpace(partialID))
	if partialID == "" {
		return nil, domain.NoAssistantError{}
	}

	var matches []domain.Assistant
	if err := r.db.WithContext(ctx).
		Preload("Files").
		Where("LOWER(CAST(id AS TEXT)) LIKE ?", partialID+"%").
		Limit(2).
		Find(&matches).Error; err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, domain.NoAssistantError{ID: partialID}
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("assistant id %q is ambiguous", partialID)
	}
}

func (r *assistantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assistant domain.Assistant
		if err := tx.First(&assistant, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NoAssistantError{ID: id.String()}
			}
			return err
		}
		return tx.Select("Files").Delete(&assistant).Error
	})
}
