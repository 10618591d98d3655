// Package configlang implements the configure-language path algebra.
//
// A configure language is a "/" delimited path such as
// "/Systems/{1}/Boot/BootOrder". A segment wrapped in braces addresses one
// member of an array or collection. Paths are only ever composed and parsed
// here, never mutated in place.
package configlang

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NoIndex is returned by ArrayIndexAndParent when the trailing segment is not an array marker.
const NoIndex = -1

const (
	separator  = '/'
	arrayOpen  = '{'
	arrayClose = '}'
)

var (
	// ErrInvalidPath is returned for malformed configure languages.
	ErrInvalidPath = errors.New("invalid configure language")

	// ErrNodeNotFound is returned when a segment index is past the last segment.
	ErrNodeNotFound = errors.New("configure language node not found")

	// ErrNoParent is returned when a path has no parent to fall back to.
	ErrNoParent = errors.New("configure language has no parent")
)

// NumberOfNodes counts the segments of path.
func NumberOfNodes(path string) int {
	if len(path) <= 1 || path[0] != separator {
		return 0
	}

	return strings.Count(strings.TrimSuffix(path, "/"), "/")
}

// NodeAt returns the byte offsets [start, end) of the zero-based segment index.
func NodeAt(path string, index int) (start, end int, err error) {
	if path == "" || path[0] != separator {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	if index < 0 {
		return 0, 0, ErrNodeNotFound
	}

	current := -1

	for i := 0; i < len(path); i++ {
		if path[i] != separator {
			continue
		}

		current++
		if current != index {
			continue
		}

		start = i + 1

		end = strings.IndexByte(path[start:], separator)
		if end < 0 {
			end = len(path)
		} else {
			end += start
		}

		if start == end {
			return 0, 0, ErrNodeNotFound
		}

		return start, end, nil
	}

	return 0, 0, ErrNodeNotFound
}

// Node returns the zero-based segment index of path.
func Node(path string, index int) (string, error) {
	start, end, err := NodeAt(path, index)
	if err != nil {
		return "", err
	}

	return path[start:end], nil
}

// IsArraySegment reports whether path carries a {...} marker and where the
// last one sits. A path without marker is not an error; a "{" that is not
// closed within its own segment is.
func IsArraySegment(path string) (found bool, open, closing int, err error) {
	open, closing = -1, -1

	for i := 0; i < len(path); i++ {
		if path[i] != arrayOpen {
			continue
		}

		rel := strings.IndexAny(path[i+1:], "{}/")
		if rel < 0 || path[i+1+rel] != arrayClose {
			return false, -1, -1, fmt.Errorf("%w: unmatched %q in %q", ErrInvalidPath, arrayOpen, path)
		}

		open, closing = i, i+1+rel
		i = closing
	}

	return open >= 0, open, closing, nil
}

// ParseIndexSegment parses a single "{n}" segment.
func ParseIndexSegment(segment string) (int, bool) {
	if len(segment) < 3 || segment[0] != arrayOpen || segment[len(segment)-1] != arrayClose {
		return NoIndex, false
	}

	n, err := strconv.Atoi(segment[1 : len(segment)-1])
	if err != nil || n < 0 {
		return NoIndex, false
	}

	return n, true
}

// IndexSegment formats n as an array marker segment.
func IndexSegment(n int) string {
	return string(arrayOpen) + strconv.Itoa(n) + string(arrayClose)
}

// ArrayIndexAndParent splits path into its parent and, when the trailing
// segment is an array marker, the marker's index. Otherwise index is NoIndex
// and the parent is everything before the final "/".
func ArrayIndexAndParent(path string) (parent string, index int, err error) {
	if path == "" || path[0] != separator {
		return "", NoIndex, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	if _, _, _, err = IsArraySegment(path); err != nil {
		return "", NoIndex, err
	}

	trimmed := strings.TrimSuffix(path, "/")
	last := strings.LastIndexByte(trimmed, separator)
	segment := trimmed[last+1:]

	index = NoIndex

	if segment != "" && segment[0] == arrayOpen {
		n, ok := ParseIndexSegment(segment)
		if !ok {
			return "", NoIndex, fmt.Errorf("%w: bad index segment %q", ErrInvalidPath, segment)
		}

		index = n
	}

	if last <= 0 {
		return "", NoIndex, fmt.Errorf("%w: %q", ErrNoParent, path)
	}

	return trimmed[:last], index, nil
}

// SetArrayInstanceIndex rewrites the trailing "{n}" segment of path to index,
// or appends one when the trailing segment is not an array marker.
func SetArrayInstanceIndex(path string, index int) (string, error) {
	if path == "" || path[0] != separator || index < 0 {
		return "", fmt.Errorf("%w: %q index %d", ErrInvalidPath, path, index)
	}

	trimmed := strings.TrimSuffix(path, "/")
	last := strings.LastIndexByte(trimmed, separator)

	if _, ok := ParseIndexSegment(trimmed[last+1:]); ok {
		var b strings.Builder

		b.Grow(last + 1 + len(IndexSegment(index)))
		b.WriteString(trimmed[:last+1])
		b.WriteString(IndexSegment(index))

		return b.String(), nil
	}

	return trimmed + "/" + IndexSegment(index), nil
}

// PropertyName returns the part of fullPath below rootPath. With an empty
// rootPath the first node of fullPath is skipped.
func PropertyName(rootPath, fullPath string) (string, error) {
	if fullPath == "" || fullPath[0] != separator {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, fullPath)
	}

	if rootPath == "" {
		_, end, err := NodeAt(fullPath, 0)
		if err != nil || end >= len(fullPath)-1 {
			return "", fmt.Errorf("%w: %q has a single node", ErrInvalidPath, fullPath)
		}

		return fullPath[end+1:], nil
	}

	prefix := strings.TrimSuffix(rootPath, "/") + "/"
	if !strings.HasPrefix(fullPath, prefix) || len(fullPath) == len(prefix) {
		return "", fmt.Errorf("%w: %q is not below %q", ErrInvalidPath, fullPath, rootPath)
	}

	return fullPath[len(prefix):], nil
}

// InstanceOf returns the collection member path ("<root>/{n}") that fullPath
// lives under.
func InstanceOf(rootPath, fullPath string) (string, int, bool) {
	rel, err := PropertyName(rootPath, fullPath)
	if err != nil {
		return "", NoIndex, false
	}

	segment, _, _ := strings.Cut(rel, "/")

	n, ok := ParseIndexSegment(segment)
	if !ok {
		return "", NoIndex, false
	}

	return Join(rootPath, segment), n, true
}

// Join appends name to parent.
func Join(parent, name string) string {
	return strings.TrimSuffix(parent, "/") + "/" + strings.TrimPrefix(name, "/")
}

// Segments splits a relative property path into its segments.
func Segments(rel string) []string {
	parts := strings.Split(rel, "/")
	out := parts[:0]

	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}
