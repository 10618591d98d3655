package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/device-management-toolkit/redfish-sync/internal/configlang"
)

var (
	// ErrMalformedResource is returned when a payload is not a JSON object.
	ErrMalformedResource = errors.New("malformed redfish resource")

	// ErrMissingODataID is returned when a payload has no @odata.id.
	ErrMissingODataID = errors.New("redfish resource has no @odata.id")
)

const (
	KeyODataID   = "@odata.id"
	KeyODataType = "@odata.type"
	KeyODataEtag = "@odata.etag"
	KeyID        = "Id"
)

// NodeKind tags what a property lookup found.
type NodeKind int

const (
	NodeAbsent NodeKind = iota
	NodeNull
	NodeString
	NodeInteger
	NodeFloat
	NodeBoolean
	NodeArray
	NodeObject
	NodeLink
)

// Node is the result of looking up a property inside a Resource.
type Node struct {
	Kind NodeKind
	raw  any
}

// Present reports whether the property exists with a non-null value.
func (n Node) Present() bool {
	return n.Kind != NodeAbsent && n.Kind != NodeNull
}

// Raw returns the decoded JSON value.
func (n Node) Raw() any {
	return n.raw
}

// Link returns the referenced URI of a link node.
func (n Node) Link() string {
	if obj, ok := n.raw.(map[string]any); ok {
		s, _ := obj[KeyODataID].(string)

		return s
	}

	return ""
}

func newNode(raw any) Node {
	switch tv := raw.(type) {
	case nil:
		return Node{Kind: NodeNull}
	case string:
		return Node{Kind: NodeString, raw: tv}
	case bool:
		return Node{Kind: NodeBoolean, raw: tv}
	case int64, int:
		return Node{Kind: NodeInteger, raw: tv}
	case float64:
		return Node{Kind: NodeFloat, raw: tv}
	case []any:
		return Node{Kind: NodeArray, raw: tv}
	case map[string]any:
		if _, ok := tv[KeyODataID]; ok && len(tv) == 1 {
			return Node{Kind: NodeLink, raw: tv}
		}

		return Node{Kind: NodeObject, raw: tv}
	}

	return Node{Kind: NodeAbsent}
}

// Resource is the in-memory form of one Redfish JSON object. It owns its
// decoded tree; nothing outside the resource holds references into it.
type Resource struct {
	URI       string
	ODataID   string
	ODataType string
	ODataEtag string
	Schema    string
	Version   string

	data map[string]any
}

// ToStructure decodes a Redfish payload fetched from uri.
func ToStructure(uri string, body []byte) (*Resource, error) {
	raw, err := oj.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedResource, uri, err)
	}

	data, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: not an object", ErrMalformedResource, uri)
	}

	r := &Resource{URI: uri, data: data}

	r.ODataID, _ = data[KeyODataID].(string)
	if r.ODataID == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingODataID, uri)
	}

	r.ODataEtag, _ = data[KeyODataEtag].(string)
	r.setType(stringOf(data[KeyODataType]))

	return r, nil
}

// NewSkeleton builds an empty resource body of the given type from a JSON
// object template.
func NewSkeleton(uri, odataType, template string) (*Resource, error) {
	data := map[string]any{}

	if strings.TrimSpace(template) != "" {
		raw, err := oj.ParseString(template)
		if err != nil {
			return nil, fmt.Errorf("%w: template: %w", ErrMalformedResource, err)
		}

		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: template is not an object", ErrMalformedResource)
		}

		data = obj
	}

	r := &Resource{URI: uri, data: data}
	if odataType != "" {
		data[KeyODataType] = odataType
		r.setType(odataType)
	}

	return r, nil
}

func (r *Resource) setType(odataType string) {
	r.ODataType = odataType
	r.Schema, r.Version = ParseODataType(odataType)
}

// ParseODataType splits "#Bios.v1_1_0.Bios" into ("Bios", "v1_1_0").
func ParseODataType(odataType string) (schema, version string) {
	parts := strings.Split(strings.TrimPrefix(odataType, "#"), ".")

	switch len(parts) {
	case 0:
		return "", ""
	case 1, 2:
		return parts[0], ""
	default:
		return parts[0], parts[1]
	}
}

// Data exposes the decoded tree.
func (r *Resource) Data() map[string]any {
	return r.data
}

// Empty reports whether the resource carries no property besides @odata.type.
func (r *Resource) Empty() bool {
	for k := range r.data {
		if k != KeyODataType {
			return false
		}
	}

	return true
}

// Lookup walks path (JSON keys, "{n}" for array elements) and reports what it finds.
func (r *Resource) Lookup(path ...string) Node {
	results := Expr(path...).Get(r.data)
	if len(results) == 0 {
		return Node{Kind: NodeAbsent}
	}

	return newNode(results[0])
}

// Has reports whether path exists in the resource.
func (r *Resource) Has(path ...string) bool {
	return Expr(path...).Has(r.data)
}

// Set stores v at path, creating intermediate objects.
func (r *Resource) Set(v any, path ...string) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrMalformedResource)
	}

	parent := r.data

	for _, seg := range path[:len(path)-1] {
		if _, ok := configlang.ParseIndexSegment(seg); ok {
			break
		}

		child, ok := parent[seg].(map[string]any)
		if !ok {
			child = map[string]any{}
			parent[seg] = child
		}

		parent = child
	}

	return Expr(path...).Set(r.data, v)
}

// ToJSON encodes the resource with sorted keys.
func (r *Resource) ToJSON() ([]byte, error) {
	return oj.Marshal(r.data, &ojg.Options{Sort: true})
}

// Expr converts a property path into a JSONPath expression.
func Expr(path ...string) jp.Expr {
	x := jp.R()

	for _, seg := range path {
		if n, ok := configlang.ParseIndexSegment(seg); ok {
			x = x.N(n)

			continue
		}

		x = x.C(seg)
	}

	return x
}

func stringOf(v any) string {
	s, _ := v.(string)

	return s
}
