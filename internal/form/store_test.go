package form

import (
	"testing"

	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStore_SetDoesNotMutateSnapshots(t *testing.T) {
	s := NewStore(domain.ConfigTree{"type": "chatbot"})
	before := s.Snapshot()

	s.Set("type", "agent")

	assert.Equal(t, "chatbot", before["type"])
	v, ok := s.Get("type")
	assert.True(t, ok)
	assert.Equal(t, "agent", v)
}

func TestStore_NewStoreCopiesDefaults(t *testing.T) {
	defaults := domain.ConfigTree{"type": "chatbot"}
	s := NewStore(defaults)
	s.Set("type", "agent")
	assert.Equal(t, "chatbot", defaults["type"])
}

func TestStore_OnChange(t *testing.T) {
	s := NewStore(nil)
	var seen []string
	s.OnChange(func(path string, tree domain.ConfigTree) {
		seen = append(seen, path+"="+tree.StringValue(path))
	})

	s.Set("type", "agent")
	s.Reset(domain.ConfigTree{"type": "chatbot"})

	assert.Equal(t, []string{"type=agent", "="}, seen)
	assert.Equal(t, "chatbot", s.Snapshot()["type"])
}

func TestStore_BooleanChoice(t *testing.T) {
	field := domain.FieldDescriptor{Path: "type==agent/interrupt_before_action", Kind: domain.FieldKindBoolean}
	s := NewStore(nil)

	assert.Equal(t, BoolNo, s.Choice(field))

	s.SetChoice(field, BoolYes)
	assert.Equal(t, true, s.Snapshot()[field.Path])
	assert.Equal(t, BoolYes, s.Choice(field))

	s.SetChoice(field, BoolNo)
	assert.Equal(t, false, s.Snapshot()[field.Path])
}

func TestStore_SeedKeepsExistingValues(t *testing.T) {
	s := NewStore(domain.ConfigTree{"type": "agent", "type==agent/interrupt_before_action": false})
	before := s.Snapshot()

	s.Seed(domain.ConfigTree{
		"type":                                "chatbot",
		"type==agent/interrupt_before_action": true,
		"type==agent/system_message":          "You are a helpful assistant.",
	})

	tree := s.Snapshot()
	assert.Equal(t, "agent", tree["type"])
	assert.Equal(t, false, tree["type==agent/interrupt_before_action"])
	assert.Equal(t, "You are a helpful assistant.", tree["type==agent/system_message"])
	assert.NotContains(t, before, "type==agent/system_message")
}
