package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/isaacphi/gptsmith/internal/form"
	"github.com/isaacphi/gptsmith/internal/repository"
)

var ErrNotPublic = errors.New("assistant is not public")

type AssistantService struct {
	repo          repository.AssistantRepository
	publicBaseURL string
}

func NewAssistantService(repo repository.AssistantRepository, publicBaseURL string) *AssistantService {
	return &AssistantService{
		repo:          repo,
		publicBaseURL: publicBaseURL,
	}
}

// Create stores a new assistant built from a submitted form.
func (s *AssistantService) Create(ctx context.Context, name string, tree domain.ConfigTree, files []form.Attachment, public bool) (*domain.Assistant, error) {
	assistant := &domain.Assistant{
		Name:   name,
		Public: public,
	}
	if err := assistant.SetTree(tree); err != nil {
		return nil, err
	}
	for _, f := range files {
		assistant.Files = append(assistant.Files, domain.AssistantFile{
			Name:         f.Name,
			Size:         f.Size,
			LastModified: f.LastModified,
			Data:         f.Data,
		})
	}

	if err := s.repo.Create(ctx, assistant); err != nil {
		return nil, fmt.Errorf("failed to store assistant: %w", err)
	}
	slog.Info("saved assistant", "id", assistant.ID, "name", name, "files", len(files), "public", public)
	return assistant, nil
}

// SaveConfig has the form.SaveFunc signature.
func (s *AssistantService) SaveConfig(ctx context.Context, name string, tree domain.ConfigTree, files []form.Attachment, public bool) error {
	_, err := s.Create(ctx, name, tree, files, public)
	return err
}

// Get resolves a full or partial assistant id.
func (s *AssistantService) Get(ctx context.Context, id string) (*domain.Assistant, error) {
	assistant, err := s.repo.FindByPartialID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find assistant: %w", err)
	}
	return assistant, nil
}

func (s *AssistantService) List(ctx context.Context, limit int) ([]*domain.Assistant, error) {
	assistants, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list assistants: %w", err)
	}
	return assistants, nil
}

// Delete removes the assistant matching id and returns it.
func (s *AssistantService) Delete(ctx context.Context, id string) (*domain.Assistant, error) {
	assistant, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, assistant.ID); err != nil {
		return nil, fmt.Errorf("failed to delete assistant: %w", err)
	}
	slog.Info("deleted assistant", "id", assistant.ID)
	return assistant, nil
}

// PublicLink returns the shareable URL of a public assistant.
func (s *AssistantService) PublicLink(assistant *domain.Assistant) (string, error) {
	if !assistant.Public {
		return "", fmt.Errorf("%w: %s", ErrNotPublic, assistant.ID)
	}
	return form.PublicLink(s.publicBaseURL, assistant.ID.String())
}

// FormOptions prepares a form over a saved assistant. With view unset the form is an
// editable copy that saves as a new assistant.
func (s *AssistantService) FormOptions(assistant *domain.Assistant, view bool) (form.Options, error) {
	tree, err := assistant.Tree()
	if err != nil {
		return form.Options{}, err
	}
	return form.Options{
		Existing: tree,
		View:     view,
		Public:   assistant.Public,
	}, nil
}
