package entity

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
)

// Kind is the type tag of a property Value.
type Kind int

const (
	KindUnknown Kind = iota
	KindString
	KindInteger
	KindBoolean
	KindStringArray
	KindIntegerArray
	KindBooleanArray
	KindVague

	// KindUnimplemented marks a schema property that is recognized but not
	// synchronized. No Value ever carries it.
	KindUnimplemented
)

var (
	// ErrKindMismatch is returned when a raw value does not have the expected kind.
	ErrKindMismatch = errors.New("value kind mismatch")

	// ErrUnsupportedKind is returned for values no Kind can represent.
	ErrUnsupportedKind = errors.New("unsupported value kind")
)

var kindNames = map[Kind]string{
	KindUnknown:      "unknown",
	KindString:       "string",
	KindInteger:      "integer",
	KindBoolean:      "boolean",
	KindStringArray:  "string-array",
	KindIntegerArray: "integer-array",
	KindBooleanArray: "boolean-array",
	KindVague:        "vague",

	KindUnimplemented: "unimplemented",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// IsArray reports whether k is one of the array kinds.
func (k Kind) IsArray() bool {
	return k == KindStringArray || k == KindIntegerArray || k == KindBooleanArray
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s && k != KindUnknown && k != KindUnimplemented {
			return k, nil
		}
	}

	return KindUnknown, fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
}

// Value is a typed property value as held by the local configuration store.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Bool  bool
	Strs  []string
	Ints  []int64
	Bools []bool
	Vague []KeyValue
}

// KeyValue is one entry of a vague (open) property set.
type KeyValue struct {
	Key   string
	Value Value
}

func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

func IntegerValue(i int64) Value { return Value{Kind: KindInteger, Int: i} }

func BooleanValue(b bool) Value { return Value{Kind: KindBoolean, Bool: b} }

func StringArrayValue(s ...string) Value { return Value{Kind: KindStringArray, Strs: s} }

func IntegerArrayValue(i ...int64) Value { return Value{Kind: KindIntegerArray, Ints: i} }

func BooleanArrayValue(b ...bool) Value { return Value{Kind: KindBooleanArray, Bools: b} }

func VagueValue(kv ...KeyValue) Value { return Value{Kind: KindVague, Vague: kv} }

// Equal compares kind and content. Arrays and vague sets compare in order.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}

	switch v.Kind {
	case KindString:
		return v.Str == o.Str
	case KindInteger:
		return v.Int == o.Int
	case KindBoolean:
		return v.Bool == o.Bool
	case KindStringArray:
		return slices.Equal(v.Strs, o.Strs)
	case KindIntegerArray:
		return slices.Equal(v.Ints, o.Ints)
	case KindBooleanArray:
		return slices.Equal(v.Bools, o.Bools)
	case KindVague:
		return slices.EqualFunc(v.Vague, o.Vague, func(a, b KeyValue) bool {
			return a.Key == b.Key && a.Value.Equal(b.Value)
		})
	case KindUnknown:
		return true
	case KindUnimplemented:
	}

	return false
}

// Interface returns the JSON shaped form of v.
func (v Value) Interface() any {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInteger:
		return v.Int
	case KindBoolean:
		return v.Bool
	case KindStringArray:
		out := make([]any, len(v.Strs))
		for i, s := range v.Strs {
			out[i] = s
		}

		return out
	case KindIntegerArray:
		out := make([]any, len(v.Ints))
		for i, n := range v.Ints {
			out[i] = n
		}

		return out
	case KindBooleanArray:
		out := make([]any, len(v.Bools))
		for i, b := range v.Bools {
			out[i] = b
		}

		return out
	case KindVague:
		out := make(map[string]any, len(v.Vague))
		for _, kv := range v.Vague {
			out[kv.Key] = kv.Value.Interface()
		}

		return out
	case KindUnknown, KindUnimplemented:
	}

	return nil
}

// ValueFromInterface converts a decoded JSON value into a Value of the
// expected kind.
func ValueFromInterface(kind Kind, raw any) (Value, error) {
	mismatch := fmt.Errorf("%w: want %s, got %T", ErrKindMismatch, kind, raw)

	switch kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return Value{}, mismatch
		}

		return StringValue(s), nil
	case KindInteger:
		n, ok := asInt64(raw)
		if !ok {
			return Value{}, mismatch
		}

		return IntegerValue(n), nil
	case KindBoolean:
		b, ok := raw.(bool)
		if !ok {
			return Value{}, mismatch
		}

		return BooleanValue(b), nil
	case KindStringArray, KindIntegerArray, KindBooleanArray:
		return arrayFromInterface(kind, raw, mismatch)
	case KindVague:
		return vagueFromInterface(raw, mismatch)
	case KindUnknown, KindUnimplemented:
	}

	return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
}

// InferValue derives a scalar Value from a decoded JSON value. Only the
// string, boolean and integer kinds can be inferred.
func InferValue(raw any) (Value, error) {
	switch tv := raw.(type) {
	case string:
		return StringValue(tv), nil
	case bool:
		return BooleanValue(tv), nil
	}

	if n, ok := asInt64(raw); ok {
		return IntegerValue(n), nil
	}

	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedKind, raw)
}

// Encode serializes v as JSON text.
func (v Value) Encode() (string, error) {
	b, err := oj.Marshal(v.Interface(), &ojg.Options{Sort: true})
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// DecodeValue parses JSON text produced by Encode.
func DecodeValue(kind Kind, text string) (Value, error) {
	raw, err := oj.ParseString(text)
	if err != nil {
		return Value{}, err
	}

	return ValueFromInterface(kind, raw)
}

func arrayFromInterface(kind Kind, raw any, mismatch error) (Value, error) {
	items, ok := raw.([]any)
	if !ok {
		return Value{}, mismatch
	}

	v := Value{Kind: kind}

	for _, item := range items {
		switch kind {
		case KindStringArray:
			s, ok := item.(string)
			if !ok {
				return Value{}, mismatch
			}

			v.Strs = append(v.Strs, s)
		case KindIntegerArray:
			n, ok := asInt64(item)
			if !ok {
				return Value{}, mismatch
			}

			v.Ints = append(v.Ints, n)
		case KindBooleanArray:
			b, ok := item.(bool)
			if !ok {
				return Value{}, mismatch
			}

			v.Bools = append(v.Bools, b)
		default:
			return Value{}, mismatch
		}
	}

	return v, nil
}

func vagueFromInterface(raw any, mismatch error) (Value, error) {
	entries, ok := VagueEntries(raw)
	if !ok {
		return Value{}, mismatch
	}

	for _, kv := range entries {
		if kv.Value.Kind == KindUnknown {
			return Value{}, fmt.Errorf("vague key %q: %w", kv.Key, ErrUnsupportedKind)
		}
	}

	return VagueValue(entries...), nil
}

// VagueEntries converts a decoded JSON object into vague entries ordered by
// key. Null members are left out. A member whose kind cannot be inferred is
// kept with KindUnknown so the caller can skip it on its own. ok is false
// when raw is not an object.
func VagueEntries(raw any) (entries []KeyValue, ok bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}

	keys := make([]string, 0, len(obj))
	for k, item := range obj {
		if item != nil {
			keys = append(keys, k)
		}
	}

	slices.Sort(keys)

	entries = make([]KeyValue, 0, len(keys))

	for _, k := range keys {
		item, err := InferValue(obj[k])
		if err != nil {
			item = Value{Kind: KindUnknown}
		}

		entries = append(entries, KeyValue{Key: k, Value: item})
	}

	return entries, true
}

func asInt64(raw any) (int64, bool) {
	switch n := raw.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}

	return 0, false
}
