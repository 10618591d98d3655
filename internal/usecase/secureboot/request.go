package secureboot

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// RequestType -.
type RequestType int

const (
	Enroll RequestType = iota
	Delete
)

const (
	segmentDatabases    = "SecureBootDatabases"
	segmentCertificates = "Certificates"
	segmentSignatures   = "Signatures"
)

var (
	// ErrUnsupportedRequest is returned for operations or targets this feature does not serve.
	ErrUnsupportedRequest = errors.New("secureboot - unsupported request")

	// ErrMissingKey is returned when the target or body lacks a required key.
	ErrMissingKey = errors.New("secureboot - missing request key")
)

// Request is a task decoded into a database operation.
type Request struct {
	Type          RequestType
	Database      string
	IsCertificate bool
	EntryID       string
}

// ParseRequest decodes the HTTP operation and the target URI of a task, e.g.
// POST .../SecureBootDatabases/db/Certificates.
func ParseRequest(operation, target string) (*Request, error) {
	req := &Request{}

	switch strings.ToUpper(operation) {
	case http.MethodPost:
		req.Type = Enroll
	case http.MethodDelete:
		req.Type = Delete
	default:
		return nil, fmt.Errorf("%w: operation %q", ErrUnsupportedRequest, operation)
	}

	segments := strings.Split(strings.Trim(target, "/"), "/")

	i := 0
	for i < len(segments) && segments[i] != segmentDatabases {
		i++
	}

	if i+1 >= len(segments) || segments[i+1] == "" {
		return nil, fmt.Errorf("%w: no database in %q", ErrMissingKey, target)
	}

	req.Database = segments[i+1]

	if i+2 >= len(segments) {
		return nil, fmt.Errorf("%w: %q addresses no collection", ErrUnsupportedRequest, target)
	}

	switch segments[i+2] {
	case segmentCertificates:
		req.IsCertificate = true
	case segmentSignatures:
	default:
		return nil, fmt.Errorf("%w: collection %q", ErrUnsupportedRequest, segments[i+2])
	}

	if i+3 < len(segments) {
		req.EntryID = segments[i+3]
	}

	if req.Type == Delete && req.EntryID == "" {
		return nil, fmt.Errorf("%w: no entry id in %q", ErrMissingKey, target)
	}

	return req, nil
}
