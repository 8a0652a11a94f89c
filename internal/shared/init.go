package shared

import (
	"fmt"

	"github.com/isaacphi/gptsmith/internal/catalog"
	"github.com/isaacphi/gptsmith/internal/config"
	"github.com/isaacphi/gptsmith/internal/form"
	sqliteRepo "github.com/isaacphi/gptsmith/internal/repository/sqlite"
	"github.com/isaacphi/gptsmith/internal/service"
)

// InitializeAssistantService opens the configured database.
func InitializeAssistantService(cfg *config.ConfigSchema) (*service.AssistantService, error) {
	repo, err := sqliteRepo.Initialize(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open assistant store: %w", err)
	}
	return service.NewAssistantService(repo, cfg.PublicBaseURL), nil
}

// NewCatalog wires the tool sources in precedence order: the user's tools directory,
// then the built-in tools, then MCP servers.
func NewCatalog(cfg *config.ConfigSchema) catalog.Source {
	var sources []catalog.Source
	if cfg.ToolsDir != "" {
		sources = append(sources, catalog.NewDirSource(cfg.ToolsDir))
	}
	sources = append(sources, catalog.NewBuiltinSource())
	if len(cfg.MCPServers) > 0 {
		sources = append(sources, catalog.NewMCPSource(cfg.MCPServers))
	}
	return catalog.NewMulti(sources...)
}

// LoadSchema loads the configured assistant schema.
func LoadSchema(cfg *config.ConfigSchema) (*form.Schema, error) {
	schema, err := form.LoadSchemaFile(cfg.SchemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load assistant schema: %w", err)
	}
	return schema, nil
}
