package app

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/internal/usecase/schemas"
)

// ErrInvalidSeed is returned by LoadSeed for unusable records.
var ErrInvalidSeed = errors.New("app - invalid seed")

type seedItem struct {
	Schema        string      `yaml:"schema"`
	Version       string      `yaml:"version"`
	ConfigureLang string      `yaml:"configure_lang"`
	Kind          string      `yaml:"kind"`
	Value         interface{} `yaml:"value"`
}

// LoadSeed decodes a YAML list of local configuration values, e.g.
//
//   - schema: Bios
//     configure_lang: /Bios/Attributes/BootMode
//     kind: string
//     value: Uefi
//
// version defaults to the version of the schema descriptor. A vague set is
// given as a mapping.
func LoadSeed(r io.Reader) ([]entity.ConfigItem, error) {
	var raw []seedItem

	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	items := make([]entity.ConfigItem, 0, len(raw))

	for i, s := range raw {
		if s.Schema == "" || s.ConfigureLang == "" {
			return nil, fmt.Errorf("%w: record %d needs schema and configure_lang", ErrInvalidSeed, i)
		}

		version := s.Version
		if version == "" {
			schema, err := schemas.ByName(s.Schema)
			if err != nil {
				return nil, fmt.Errorf("%w: record %d: %w", ErrInvalidSeed, i, err)
			}

			version = schema.Version
		}

		kind, err := entity.ParseKind(s.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrInvalidSeed, i, err)
		}

		value, err := entity.ValueFromInterface(kind, normalizeYAML(s.Value))
		if err != nil {
			return nil, fmt.Errorf("%w: record %d (%s): %w", ErrInvalidSeed, i, s.ConfigureLang, err)
		}

		items = append(items, entity.ConfigItem{
			Schema:        s.Schema,
			Version:       version,
			ConfigureLang: s.ConfigureLang,
			Value:         value,
		})
	}

	return items, nil
}

// normalizeYAML rewrites yaml.v2 mappings into string-keyed maps.
func normalizeYAML(raw interface{}) interface{} {
	switch v := raw.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, item := range v {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}

		return out
	case []interface{}:
		for i := range v {
			v[i] = normalizeYAML(v[i])
		}
	}

	return raw
}
