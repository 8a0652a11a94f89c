package config

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// GetKnownKeys returns all valid configuration keys based on the schema
func GetKnownKeys() map[string]bool {
	known := make(map[string]bool)
	addKnowKeysByValue("", ConfigSchema{}, known)
	return known
}

// addKnowKeysByValue recursively adds keys by examining struct value
func addKnowKeysByValue(prefix string, val interface{}, known map[string]bool) {
	v := reflect.ValueOf(val)
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// Convert the key to lowercase since viper lowercases all keys
		key = strings.ToLower(key)
		known[key] = true

		// Add wildcard entries for maps
		switch field.Type.Kind() {
		case reflect.Struct:
			addKnowKeysByValue(key, reflect.Zero(field.Type).Interface(), known)
		case reflect.Map:
			// Add base map key
			known[key] = true

			// For maps of structs, add their fields
			if field.Type.Elem().Kind() == reflect.Struct {
				known[key+".*"] = true
				elemType := field.Type.Elem()
				for j := 0; j < elemType.NumField(); j++ {
					subField := elemType.Field(j)
					if subTag := subField.Tag.Get("mapstructure"); subTag != "" {
						wildcardKey := fmt.Sprintf("%s.*.%s", key, strings.ToLower(subTag))
						known[wildcardKey] = true
					}
				}
			} else {
				// For simple maps, allow any nested fields
				wildcardKey := fmt.Sprintf("%s.*", key)
				known[wildcardKey] = true
			}
		}
	}
}

// matchesWildcard checks if a key matches a wildcard pattern
func matchesWildcard(pattern, key string) bool {
	// Convert both to lowercase for case-insensitive matching
	pattern = strings.ToLower(pattern)
	key = strings.ToLower(key)

	// Split into parts
	patternParts := strings.Split(pattern, ".")
	keyParts := strings.Split(key, ".")

	// Must have same number of parts
	if len(patternParts) != len(keyParts) {
		return false
	}

	// Check each part
	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != keyParts[i] {
			return false
		}
	}
	return true
}

// IsKnownKey checks if a key is known, including wildcard matches
func IsKnownKey(known map[string]bool, key string) bool {
	// Check direct match first
	if known[strings.ToLower(key)] {
		return true
	}

	// Check wildcard patterns
	for pattern := range known {
		if strings.Contains(pattern, "*") && matchesWildcard(pattern, key) {
			return true
		}
	}
	return false
}

// PrintConfig writes the configuration under prefix as YAML, optionally annotating
// each value with the file or variable it came from.
func (s *ConfigSchema) PrintConfig(w io.Writer, prefix string, includeSources bool) error {
	prefix = strings.ToLower(strings.Trim(prefix, "."))
	if prefix != "" && !IsKnownKey(GetKnownKeys(), prefix) {
		return fmt.Errorf("unknown config key %q", prefix)
	}

	var value interface{} = s.settings
	if prefix != "" {
		for _, part := range strings.Split(prefix, ".") {
			m, ok := value.(map[string]interface{})
			if !ok {
				value = nil
				break
			}
			value = m[part]
		}
	}

	var node yaml.Node
	if err := node.Encode(value); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	s.annotate(&node, prefix, includeSources)

	if node.Kind != yaml.MappingNode && prefix != "" {
		node = yaml.Node{
			Kind:    yaml.MappingNode,
			Content: []*yaml.Node{{Kind: yaml.ScalarNode, Value: prefix[strings.LastIndex(prefix, ".")+1:]}, &node},
		}
		// the leaf itself was not visited as a map value
		s.annotateLeaf(node.Content[0], node.Content[1], prefix, includeSources)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return enc.Close()
}

func (s *ConfigSchema) annotate(node *yaml.Node, path string, includeSources bool) {
	if node.Kind != yaml.MappingNode {
		return
	}
	sortMapping(node)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		fullKey := key.Value
		if path != "" {
			fullKey = path + "." + key.Value
		}
		if value.Kind == yaml.MappingNode {
			s.annotate(value, fullKey, includeSources)
			continue
		}
		s.annotateLeaf(key, value, fullKey, includeSources)
	}
}

func (s *ConfigSchema) annotateLeaf(key, value *yaml.Node, fullKey string, includeSources bool) {
	if value.Kind == yaml.ScalarNode && isSecretKey(key.Value) && value.Value != "" {
		value.Value = "[REDACTED]"
		value.Tag = "!!str"
		value.Style = 0
	}
	if !includeSources {
		return
	}
	comment := "default"
	if sources := s.sources[fullKey]; len(sources) > 0 {
		comment = sources[len(sources)-1].source
	}
	if value.Kind == yaml.ScalarNode {
		value.LineComment = comment
	} else {
		key.LineComment = comment
	}
}

func sortMapping(node *yaml.Node) {
	type pair struct{ k, v *yaml.Node }
	pairs := make([]pair, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		pairs = append(pairs, pair{node.Content[i], node.Content[i+1]})
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].k.Value < pairs[j].k.Value })
	node.Content = node.Content[:0]
	for _, p := range pairs {
		node.Content = append(node.Content, p.k, p.v)
	}
}

func isSecretKey(key string) bool {
	key = strings.ToLower(key)
	if key == "keymap" {
		return false
	}
	return strings.Contains(key, "key") ||
		strings.Contains(key, "secret") ||
		strings.Contains(key, "token") ||
		strings.Contains(key, "password")
}
