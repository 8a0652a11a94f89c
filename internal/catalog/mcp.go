package catalog

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sort"
	"strings"
	"sync"

	"github.com/isaacphi/gptsmith/internal/config"
	"github.com/isaacphi/gptsmith/internal/domain"
	mcp_golang "github.com/metoro-io/mcp-golang"
	"github.com/metoro-io/mcp-golang/transport/stdio"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type listFunc func(ctx context.Context, name string, server config.MCPServer) ([]domain.ToolSchema, error)

// MCPToolType is the tool type of every tool discovered on an MCP server.
const MCPToolType = "mcp"

// MCPSource lists the tools of the configured MCP servers. Servers run only for
// the duration of a Tools call.
type MCPSource struct {
	servers map[string]config.MCPServer
	list    listFunc
}

func NewMCPSource(servers map[string]config.MCPServer) *MCPSource {
	return &MCPSource{servers: servers, list: listServerTools}
}

func (s *MCPSource) Name() string { return "mcp" }

// Tools starts every server in parallel, lists its tools and stops it again. A
// server that fails is reported in the joined error; the tools of the others are
// still returned.
func (s *MCPSource) Tools(ctx context.Context) ([]domain.ToolSchema, error) {
	var (
		mu    sync.Mutex
		tools []domain.ToolSchema
		errs  []error
	)

	var g errgroup.Group
	for name, server := range s.servers {
		g.Go(func() error {
			found, err := s.list(ctx, name, server)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Warn("mcp server failed", "server", name, "error", err)
				errs = append(errs, errors.Wrapf(err, "server %s", name))
				return nil
			}
			tools = append(tools, found...)
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(tools, func(i, j int) bool { return tools[i].ID < tools[j].ID })
	if len(errs) > 0 {
		return tools, errors.Wrap(stderrors.Join(errs...), "failed to list MCP tools")
	}
	return tools, nil
}

func listServerTools(ctx context.Context, name string, server config.MCPServer) ([]domain.ToolSchema, error) {
	cmd := exec.CommandContext(ctx, server.Command, server.Args...)
	cmd.Env = os.Environ()
	// viper folds config keys to lower case, env var names are conventionally upper
	for k, v := range server.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", strings.ToUpper(k), v))
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get stdin pipe")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get stdout pipe")
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(err, "failed to start server")
	}
	defer func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	}()

	transport := stdio.NewStdioServerTransportWithIO(stdout, stdin)
	client := mcp_golang.NewClient(transport)
	if _, err := client.Initialize(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to initialize client")
	}

	var tools []domain.ToolSchema
	var cursor *string
	for {
		response, err := client.ListTools(ctx, cursor)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list tools")
		}
		for _, t := range response.Tools {
			description := ""
			if t.Description != nil {
				description = *t.Description
			}
			tools = append(tools, toolFromMCP(name, t.Name, description, t.InputSchema))
		}
		if response.NextCursor == nil || *response.NextCursor == "" {
			break
		}
		cursor = response.NextCursor
	}
	return tools, nil
}

// toolFromMCP converts an MCP tool listing into a catalog entry. String input
// properties become config properties; anything else is supplied by the model at
// call time and has no place in the assistant config.
func toolFromMCP(server, name, description string, inputSchema interface{}) domain.ToolSchema {
	id := fmt.Sprintf("%s.%s", server, name)
	ts := domain.ToolSchema{
		ID:          id,
		Type:        MCPToolType,
		Name:        id,
		Description: description,
		Source:      "mcp:" + server,
	}

	schema, ok := inputSchema.(map[string]interface{})
	if !ok {
		return ts
	}
	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		return ts
	}

	for propName, raw := range props {
		propMap, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		if t, _ := propMap["type"].(string); t != "string" {
			continue
		}
		prop := domain.ToolConfigProperty{Type: "string"}
		if title, ok := propMap["title"].(string); ok {
			prop.Title = title
		}
		if desc, ok := propMap["description"].(string); ok {
			prop.Description = desc
		}
		if def, ok := propMap["default"].(string); ok {
			prop.Default = def
		}
		if ts.Config.Properties == nil {
			ts.Config.Properties = make(map[string]domain.ToolConfigProperty)
		}
		ts.Config.Properties[propName] = prop
	}
	return ts
}
