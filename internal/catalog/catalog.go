// Package catalog loads the tools an assistant can be given.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/isaacphi/gptsmith/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Source supplies tool descriptors.
type Source interface {
	Name() string
	Tools(ctx context.Context) ([]domain.ToolSchema, error)
}

// Multi merges several sources. Earlier sources win when two offer the same tool id.
type Multi struct {
	sources []Source
}

func NewMulti(sources ...Source) *Multi {
	return &Multi{sources: sources}
}

func (m *Multi) Name() string { return "catalog" }

// Tools loads every source in parallel and returns the merged catalog sorted by name.
// A failing source does not hide the others: its error is joined into the returned
// error next to the tools that did load.
func (m *Multi) Tools(ctx context.Context) ([]domain.ToolSchema, error) {
	results := make([][]domain.ToolSchema, len(m.sources))
	errs := make([]error, len(m.sources))

	var g errgroup.Group
	for i, src := range m.sources {
		g.Go(func() error {
			tools, err := src.Tools(ctx)
			if err != nil {
				slog.Warn("tool source failed", "source", src.Name(), "error", err)
				errs[i] = fmt.Errorf("%s: %w", src.Name(), err)
				return nil
			}
			results[i] = tools
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[string]bool)
	var merged []domain.ToolSchema
	for i, tools := range results {
		for _, t := range tools {
			if seen[t.ID] {
				slog.Debug("tool shadowed by earlier source", "tool", t.ID, "source", m.sources[i].Name())
				continue
			}
			seen[t.ID] = true
			merged = append(merged, t)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Name != merged[j].Name {
			return merged[i].Name < merged[j].Name
		}
		return merged[i].ID < merged[j].ID
	})

	return merged, errors.Join(errs...)
}
