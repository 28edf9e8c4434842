// Package schema obtains GraphQL schema definitions, either from a local
// file or by introspecting a remote endpoint, and persists them for the
// rest of the pipeline to consume.
package schema

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingSchemaFile is reported when a local schema file does not
	// exist or is not a regular file.
	ErrMissingSchemaFile = errors.New("schema: missing schema file")

	// ErrAcquisitionFailed is reported when a remote introspection request
	// fails, returns an empty body, or the result cannot be written out.
	ErrAcquisitionFailed = errors.New("schema: acquisition failed")
)

// Source identifies where a schema definition comes from. Exactly one of
// Path or Endpoint is set per run.
type Source struct {
	// Path of a schema file already on disk.
	Path string

	// Endpoint of a remote introspection service. May be http(s) or ws(s).
	Endpoint string

	// Headers are merged into the introspection request.
	Headers http.Header

	// Insecure accepts self-signed or otherwise invalid server certificates
	// for the introspection call only. It never touches global transport
	// state.
	Insecure bool
}

// Local returns a Source backed by a file on disk.
func Local(path string) Source {
	return Source{Path: path}
}

// Remote returns a Source backed by an introspection endpoint.
func Remote(endpoint string, headers http.Header, insecure bool) Source {
	return Source{Endpoint: endpoint, Headers: headers, Insecure: insecure}
}

// IsRemote reports whether acquisition requires a network call.
func (s Source) IsRemote() bool { return s.Endpoint != "" }
