package config

import "encoding/json"

// Key bindings
const (
	KeyActionQuit         = "quit"
	KeyActionToggleHelp   = "toggleHelp"
	KeyActionNextField    = "nextField"
	KeyActionPrevField    = "prevField"
	KeyActionNextOption   = "nextOption"
	KeyActionPrevOption   = "prevOption"
	KeyActionSelect       = "select"
	KeyActionCancel       = "cancel"
	KeyActionSubmit       = "submit"
	KeyActionTogglePublic = "togglePublic"
	KeyActionAddTool      = "addTool"
	KeyActionEditTool     = "editTool"
	KeyActionRemoveTool   = "removeTool"
	KeyActionRemoveFile   = "removeFile"
)

type KeyMap struct {
	Quit         []string `mapstructure:"quit" json:"quit" jsonschema:"description=Exit the application,default=ctrl+c"`
	ToggleHelp   []string `mapstructure:"toggleHelp" json:"toggleHelp" jsonschema:"description=Toggle help display,default=f1"`
	NextField    []string `mapstructure:"nextField" json:"nextField" jsonschema:"description=Focus the next field,default=tab"`
	PrevField    []string `mapstructure:"prevField" json:"prevField" jsonschema:"description=Focus the previous field,default=shift+tab"`
	NextOption   []string `mapstructure:"nextOption" json:"nextOption" jsonschema:"description=Next choice of a type, enum or yes/no field,default=right"`
	PrevOption   []string `mapstructure:"prevOption" json:"prevOption" jsonschema:"description=Previous choice of a type, enum or yes/no field,default=left"`
	Select       []string `mapstructure:"select" json:"select" jsonschema:"description=Pick the highlighted tool or confirm a dialog,default=enter"`
	Cancel       []string `mapstructure:"cancel" json:"cancel" jsonschema:"description=Close the tool picker or dialog,default=esc"`
	Submit       []string `mapstructure:"submit" json:"submit" jsonschema:"description=Save the assistant,default=ctrl+s"`
	TogglePublic []string `mapstructure:"togglePublic" json:"togglePublic" jsonschema:"description=Toggle public visibility,default=ctrl+p"`
	AddTool      []string `mapstructure:"addTool" json:"addTool" jsonschema:"description=Open the tool picker,default=ctrl+a"`
	EditTool     []string `mapstructure:"editTool" json:"editTool" jsonschema:"description=Configure the highlighted selected tool,default=ctrl+e"`
	RemoveTool   []string `mapstructure:"removeTool" json:"removeTool" jsonschema:"description=Remove the highlighted selected tool,default=ctrl+x"`
	RemoveFile   []string `mapstructure:"removeFile" json:"removeFile" jsonschema:"description=Detach the highlighted file,default=ctrl+d"`

	keyCache map[string][]string
}

// Get key bindings for an action
func (k *KeyMap) GetKeys(action string) []string {
	// Initialize cache if needed
	if k.keyCache == nil {
		k.keyCache = make(map[string][]string)
		jsonBytes, err := json.Marshal(k)
		if err != nil {
			return nil
		}
		if err := json.Unmarshal(jsonBytes, &k.keyCache); err != nil {
			return nil
		}
	}

	return k.keyCache[action]
}
