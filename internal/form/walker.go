package form

import (
	"sort"

	"github.com/isaacphi/gptsmith/internal/domain"
)

const retrievalDescriptionField = "retrieval_description"

// fieldOrder lists field names that are shown first, in this order.
var fieldOrder = []string{
	"system_message",
	retrievalDescriptionField,
	"interrupt_before_action",
	"tools",
	"llm_type",
	"agent_type",
}

func fieldRank(name string) int {
	for i, n := range fieldOrder {
		if n == name {
			return i
		}
	}
	return len(fieldOrder)
}

// Visible reports whether field should be rendered for tree.
func Visible(field domain.FieldDescriptor, tree domain.ConfigTree, hasFiles bool) bool {
	if field.Condition == nil {
		return false
	}
	parent, ok := tree[field.Condition.ParentPath]
	if !ok {
		return false
	}
	if s, isString := parent.(string); !isString || s != field.Condition.RequiredValue {
		return false
	}
	if field.Name == retrievalDescriptionField && !hasFiles {
		return false
	}
	return true
}

// VisibleFields returns the fields to render for tree, in display order.
func VisibleFields(schema *Schema, tree domain.ConfigTree, hasFiles bool) []domain.FieldDescriptor {
	var visible []domain.FieldDescriptor
	for _, f := range schema.fields {
		if Visible(f, tree, hasFiles) {
			visible = append(visible, f)
		}
	}

	// schema.fields is sorted by path, so the stable sort keeps unranked fields in path order.
	sort.SliceStable(visible, func(i, j int) bool {
		return fieldRank(visible[i].Name) < fieldRank(visible[j].Name)
	})
	return visible
}
