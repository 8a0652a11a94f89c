package screens

import "github.com/isaacphi/gptsmith/internal/domain"

// CatalogLoadedMsg carries the result of loading the tool catalog.
type CatalogLoadedMsg struct {
	Tools []domain.ToolSchema
	Err   error
}

// SavedMsg carries the result of the save callback back onto the event loop.
type SavedMsg struct {
	Err error
}
