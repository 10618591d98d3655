package reconcile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/device-management-toolkit/redfish-sync/internal/configlang"
	"github.com/device-management-toolkit/redfish-sync/internal/entity"
)

// ErrInvalidSchema is returned by Schema.Validate.
var ErrInvalidSchema = errors.New("reconcile - invalid schema")

// Property binds a JSON property of the schema to a configure language
// below the resource instance.
type Property struct {
	// Path is the JSON key path below the resource root.
	Path []string
	// ConfigureLang is relative to the instance. Empty means Path joined by "/".
	ConfigureLang string
	Kind          entity.Kind
	// ReadOnly properties are consumed but never provisioned or patched.
	ReadOnly bool
}

// Lang -.
func (p *Property) Lang() string {
	if p.ConfigureLang != "" {
		return strings.Trim(p.ConfigureLang, "/")
	}

	return strings.Join(p.Path, "/")
}

// Schema describes one resource type to the engine.
type Schema struct {
	Name    string
	Version string
	// ODataType is written into provisioned bodies, e.g. "#Bios.v1_1_0.Bios".
	ODataType string
	// Root is the configure language of the resource, or of its collection.
	Root       string
	Collection bool
	// Template is the JSON object provisioned bodies start from.
	Template   string
	Properties []Property
}

// Validate -.
func (s *Schema) Validate() error {
	if s.Name == "" || s.Version == "" {
		return fmt.Errorf("%w: name and version are required", ErrInvalidSchema)
	}

	if !strings.HasPrefix(s.Root, "/") || configlang.NumberOfNodes(s.Root) == 0 {
		return fmt.Errorf("%w: %s root %q", ErrInvalidSchema, s.Name, s.Root)
	}

	seen := make(map[string]bool, len(s.Properties))

	for i := range s.Properties {
		p := &s.Properties[i]
		if len(p.Path) == 0 || p.Kind == entity.KindUnknown {
			return fmt.Errorf("%w: %s property %d", ErrInvalidSchema, s.Name, i)
		}

		if seen[p.Lang()] {
			return fmt.Errorf("%w: %s duplicate %s", ErrInvalidSchema, s.Name, p.Lang())
		}

		seen[p.Lang()] = true
	}

	return nil
}

// Owns reports whether a resource of odataType belongs to this schema.
func (s *Schema) Owns(odataType string) bool {
	name, _ := entity.ParseODataType(odataType)

	return name != "" && name == s.Name
}

// InstanceLang returns the configure language of the resource instance at
// index. Collection members are 1-based.
func (s *Schema) InstanceLang(index int) (string, error) {
	if !s.Collection {
		return s.Root, nil
	}

	if index < 1 {
		return "", fmt.Errorf("%w: %s member index %d", ErrInvalidSchema, s.Name, index)
	}

	return configlang.SetArrayInstanceIndex(s.Root, index)
}

// resolve finds the property addressed by a configure language relative to
// the instance. For vague properties key is the entry below the property.
func (s *Schema) resolve(rel string) (prop *Property, key string) {
	for i := range s.Properties {
		p := &s.Properties[i]
		lang := p.Lang()

		if rel == lang {
			return p, ""
		}

		if p.Kind == entity.KindVague && strings.HasPrefix(rel, lang+"/") {
			return p, strings.TrimPrefix(rel, lang+"/")
		}
	}

	return nil, ""
}
