package catalog

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/isaacphi/gptsmith/internal/schemacheck"
	"gopkg.in/yaml.v3"
)

//go:embed tools
var builtinTools embed.FS

var toolValidator = schemacheck.MustNew("tool", &domain.ToolSchema{})

// FileSource reads one tool descriptor per *.yaml, *.yml or *.json file.
type FileSource struct {
	name string
	fsys fs.FS
}

// NewBuiltinSource serves the tools shipped with the binary.
func NewBuiltinSource() *FileSource {
	sub, err := fs.Sub(builtinTools, "tools")
	if err != nil {
		panic(err)
	}
	return &FileSource{name: "builtin", fsys: sub}
}

// NewDirSource serves the tool files under dir. A missing directory is an empty catalog.
func NewDirSource(dir string) *FileSource {
	return &FileSource{name: dir, fsys: os.DirFS(dir)}
}

// NewFSSource serves the tool files in fsys.
func NewFSSource(name string, fsys fs.FS) *FileSource {
	return &FileSource{name: name, fsys: fsys}
}

func (s *FileSource) Name() string { return s.name }

func (s *FileSource) Tools(ctx context.Context) ([]domain.ToolSchema, error) {
	if _, err := fs.Stat(s.fsys, "."); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("tools directory does not exist", "dir", s.name)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open tools directory %s: %w", s.name, err)
	}

	var tools []domain.ToolSchema
	byID := make(map[string]string)

	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !isToolFile(d.Name()) {
			return nil
		}

		data, err := fs.ReadFile(s.fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		tool, err := parseToolFile(data, p)
		if err != nil {
			return err
		}
		if first, dup := byID[tool.ID]; dup {
			return &domain.CatalogError{Source: p, ToolID: tool.ID, Reason: "duplicate tool id, also defined in " + first}
		}
		byID[tool.ID] = p
		tool.Source = s.name
		tools = append(tools, tool)

		slog.Debug("loaded tool descriptor", "tool", tool.ID, "source", s.name, "path", p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load tools from %s: %w", s.name, err)
	}

	return tools, nil
}

func isToolFile(name string) bool {
	switch path.Ext(name) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// parseToolFile validates and decodes one descriptor. JSON is valid YAML so both go
// through the YAML decoder.
func parseToolFile(data []byte, p string) (domain.ToolSchema, error) {
	var validateErr error
	if strings.HasSuffix(p, ".json") {
		validateErr = toolValidator.ValidateJSON(data)
	} else {
		validateErr = toolValidator.ValidateYAML(data)
	}
	if validateErr != nil {
		return domain.ToolSchema{}, &domain.CatalogError{Source: p, Reason: validateErr.Error()}
	}

	var tool domain.ToolSchema
	if err := yaml.Unmarshal(data, &tool); err != nil {
		return domain.ToolSchema{}, &domain.CatalogError{Source: p, Reason: err.Error()}
	}
	if err := checkTool(tool); err != nil {
		err.Source = p
		return domain.ToolSchema{}, err
	}
	return tool, nil
}

// checkTool enforces what the descriptor schema cannot express.
func checkTool(tool domain.ToolSchema) *domain.CatalogError {
	if strings.TrimSpace(tool.ID) == "" {
		return &domain.CatalogError{Reason: "tool id is required"}
	}
	if strings.TrimSpace(tool.Name) == "" {
		return &domain.CatalogError{ToolID: tool.ID, Reason: "tool name is required"}
	}
	for _, name := range tool.PropertyNames() {
		if name == "" {
			return &domain.CatalogError{ToolID: tool.ID, Reason: "config property with an empty name"}
		}
		if t := tool.Config.Properties[name].Type; t != "" && t != "string" {
			return &domain.CatalogError{ToolID: tool.ID, Reason: fmt.Sprintf("config property %q has type %q, only string is supported", name, t)}
		}
	}
	return nil
}
