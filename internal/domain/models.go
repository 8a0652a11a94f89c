package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Assistant struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"not null"`
	Config    string    `gorm:"type:text"`
	Public    bool
	Files     []AssistantFile `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns an ID, SQLite has no uuid default.
func (a *Assistant) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Tree decodes the stored configuration.
func (a *Assistant) Tree() (ConfigTree, error) {
	if a.Config == "" {
		return ConfigTree{}, nil
	}
	tree, err := UnmarshalConfig([]byte(a.Config))
	if err != nil {
		return nil, fmt.Errorf("assistant %s: %w", a.ID, err)
	}
	return tree, nil
}

// SetTree encodes and stores the configuration.
func (a *Assistant) SetTree(tree ConfigTree) error {
	data, err := MarshalConfig(tree)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	a.Config = string(data)
	return nil
}

type AssistantFile struct {
	ID           uint      `gorm:"primaryKey"`
	AssistantID  uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Size         int64
	LastModified time.Time
	Data         []byte
	CreatedAt    time.Time
}
