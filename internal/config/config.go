package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

/*
Config System Design:
This configuration system implements a hierarchical config with the following precedence
(highest to lowest priority):

1. Runtime overrides (CLI flags)
2. Environment variables (GPTSMITH_*, also read from .env files)
3. Local project config (.gptsmith/*.gptsmith.{yaml,json})
4. Global user config ($XDG_CONFIG_HOME/gptsmith/*.gptsmith.{yaml,json})
5. Default values (from defaults.gptsmith.yaml)

The system supports:
- Multiple config files in each directory, merged alphabetically
- Automatic merging of lists (they combine)
- Deep merging of maps
- Override of scalar values
- Tracking where each config value originated
- Schema validation of the final config

Example:
If you have these files:
~/.config/gptsmith/servers.gptsmith.yaml:  { mcpServers: { fetch: {...} } }
./.gptsmith/servers.gptsmith.yaml:         { mcpServers: { git: {...} } }
The result will have both the fetch and git servers.
*/

const (
	appName   = "gptsmith"
	envPrefix = "GPTSMITH"
	localDir  = ".gptsmith"
)

//go:embed defaults.gptsmith.yaml
var defaultsYAML []byte

type configSource struct {
	value  interface{}
	source string
}

// New loads the merged configuration from the default locations.
func New(overrides *RuntimeOverrides) (*ConfigSchema, error) {
	loadEnv()

	globalDir, err := globalConfigDir()
	if err != nil {
		return nil, err
	}
	return load([]string{globalDir, localDir}, overrides)
}

func globalConfigDir() (string, error) {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, appName), nil
}

func defaultDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appName, appName+".db"), nil
}

// load merges defaults with the config files found in dirs, in order.
func load(dirs []string, overrides *RuntimeOverrides) (*ConfigSchema, error) {
	defaults := viper.New()
	defaults.SetConfigType("yaml")
	if err := defaults.ReadConfig(bytes.NewReader(defaultsYAML)); err != nil {
		return nil, fmt.Errorf("could not read defaults: %w", err)
	}

	sources := make(map[string][]configSource)
	merged := defaults.AllSettings()

	for _, dir := range dirs {
		files, err := findConfigFiles(dir)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}

		for _, f := range files {
			v := viper.New()
			v.SetConfigFile(f)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", f, err)
			}

			settings := v.AllSettings()
			trackSources(sources, "", settings, f)
			merged, err = mergeConfig(merged, settings)
			if err != nil {
				return nil, fmt.Errorf("error merging config from %s: %w", f, err)
			}
		}
	}

	v := viper.New()
	if err := v.MergeConfigMap(merged); err != nil {
		return nil, fmt.Errorf("error applying merged config: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	trackEnvSources(sources, v.AllKeys())

	var cfg ConfigSchema
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	overrides.apply(&cfg)

	if cfg.DBPath == "" {
		path, err := defaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.settings = v.AllSettings()
	cfg.sources = sources
	return &cfg, nil
}

// findConfigFiles returns all *.gptsmith.{yaml,json} files in a directory
func findConfigFiles(dir string) ([]string, error) {
	var files []string
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, "."+appName+".yaml") ||
			strings.HasSuffix(name, "."+appName+".json") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}

func mergeConfig(existing, settings map[string]interface{}) (map[string]interface{}, error) {
	result := make(map[string]interface{}, len(existing))
	for k, v := range existing {
		result[k] = v
	}

	for key, value := range settings {
		current, ok := result[key]
		if !ok || current == nil {
			result[key] = value
			continue
		}

		switch existingVal := current.(type) {
		case []interface{}:
			newSlice, ok := value.([]interface{})
			if !ok {
				return nil, fmt.Errorf("type mismatch for key %s: expected slice, got %T", key, value)
			}
			result[key] = combineSlices(existingVal, newSlice)

		case map[string]interface{}:
			newMap, ok := value.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("type mismatch for key %s: expected map, got %T", key, value)
			}
			merged, err := mergeConfig(existingVal, newMap)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			result[key] = merged

		default:
			result[key] = value
		}
	}
	return result, nil
}

// combineSlices appends b to a, dropping values already present.
func combineSlices(a, b []interface{}) []interface{} {
	seen := make(map[string]bool)
	combined := make([]interface{}, 0, len(a)+len(b))
	for _, v := range append(append([]interface{}{}, a...), b...) {
		k := fmt.Sprint(v)
		if seen[k] {
			continue
		}
		seen[k] = true
		combined = append(combined, v)
	}
	return combined
}

func trackSources(sources map[string][]configSource, prefix string, settings map[string]interface{}, filename string) {
	for key, value := range settings {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok && len(nested) > 0 {
			trackSources(sources, fullKey, nested, filename)
			continue
		}
		sources[fullKey] = append(sources[fullKey], configSource{
			value:  value,
			source: filename,
		})
	}
}

func trackEnvSources(sources map[string][]configSource, keys []string) {
	for _, key := range keys {
		envVar := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if val, ok := os.LookupEnv(envVar); ok {
			sources[key] = append(sources[key], configSource{
				value:  val,
				source: fmt.Sprintf("%s environment variable", envVar),
			})
		}
	}
}

var validate = validator.New()

// Validate validates the configuration against the schema
func (s *ConfigSchema) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	return nil
}
