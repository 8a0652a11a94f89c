package config

type Log struct {
	LogLevel string `mapstructure:"logLevel" json:"logLevel" validate:"omitempty,oneof=DEBUG INFO WARN ERROR" jsonschema:"description=Minimum level written to the log,enum=DEBUG,enum=INFO,enum=WARN,enum=ERROR,default=INFO"`
	LogFile  string `mapstructure:"logFile" json:"logFile" jsonschema:"description=Log file path. Empty logs to stdout on the command line and nowhere in the form"`
}

// MCPServer is a tool server started over stdio to extend the tool catalog.
type MCPServer struct {
	Command string            `mapstructure:"command" json:"command" validate:"required" jsonschema:"required,description=Executable that speaks MCP on stdin/stdout"`
	Args    []string          `mapstructure:"args" json:"args,omitempty" jsonschema:"description=Command arguments"`
	Env     map[string]string `mapstructure:"env" json:"env,omitempty" jsonschema:"description=Extra environment for the server process"`
}

type ConfigSchema struct {
	SchemaPath    string               `mapstructure:"schemaPath" json:"schemaPath" jsonschema:"description=Assistant config schema document. Empty uses the built-in schema"`
	ToolsDir      string               `mapstructure:"toolsDir" json:"toolsDir" jsonschema:"description=Directory of extra tool descriptor files (*.yaml or *.json)"`
	DBPath        string               `mapstructure:"dbPath" json:"dbPath" validate:"required" jsonschema:"description=SQLite database file. Empty stores it under the XDG data directory"`
	PublicBaseURL string               `mapstructure:"publicBaseURL" json:"publicBaseURL" validate:"required,url" jsonschema:"description=Page URL public assistant links are built from"`
	Log           Log                  `mapstructure:"log" json:"log"`
	KeyMap        KeyMap               `mapstructure:"keyMap" json:"keyMap"`
	MCPServers    map[string]MCPServer `mapstructure:"mcpServers" json:"mcpServers,omitempty" validate:"dive" jsonschema:"description=MCP servers whose tools join the catalog, keyed by server name"`

	// Internal fields for printing
	settings map[string]interface{}
	sources  map[string][]configSource
}
