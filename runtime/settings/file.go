package settings

import (
	"fmt"
	"os"

	yaml "go.yaml.in/yaml/v3"
)

// LoadFile reads a YAML settings file into the store. The file must be a
// flat-or-nested mapping; nested maps are kept as values under their top
// key. Loaded values overwrite current ones, so load before taking overlays.
func (s *Store) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	values, err := parseYAML(path, b)
	if err != nil {
		return err
	}
	s.SetAll(values)
	return nil
}

func parseYAML(path string, data []byte) (map[string]any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("settings file %s: %w", path, err)
	}
	if v == nil {
		return map[string]any{}, nil
	}
	m, ok := normalizeYAML(v).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("settings file %s: top level must be a mapping", path)
	}
	return m, nil
}

// normalizeYAML ensures all map keys are strings so values compare and render
// consistently regardless of how the YAML parser typed them.
func normalizeYAML(in any) any {
	switch x := in.(type) {
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[k] = normalizeYAML(v)
		}
		return m
	case []any:
		for i := range x {
			x[i] = normalizeYAML(x[i])
		}
		return x
	default:
		return in
	}
}
