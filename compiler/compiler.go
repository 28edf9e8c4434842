// Package compiler defines the boundary to the external GraphQL compiler:
// the component that actually parses schema and operations and emits typed
// client sources. The orchestration layer treats it as all-or-nothing and
// never looks inside its IR.
package compiler

//go:generate mockgen -write_package_comment=false -package=compiler -destination=./mock.go github.com/gqlcgen/gqlcgen/compiler Compiler

import (
	"context"
	"fmt"

	"github.com/gqlcgen/gqlcgen/gen"
)

// Document is one operation document handed across the boundary.
type Document struct {
	// Name is the document's path relative to the source root.
	Name string `json:"name"`

	// Content is the raw document text.
	Content []byte `json:"content"`

	// ID is the operation identifier assigned by the configured strategy.
	ID string `json:"id"`
}

// IR is the compiler's intermediate representation of a parsed schema and
// document set. It is opaque to the orchestrator, which only carries it
// from Parse to Generate.
type IR struct {
	Schema    []byte
	Documents []Document

	// backend-private state
	priv interface{}
}

// NewIR bundles parse inputs for backends that defer real parsing to
// Generate time. Backends with an eager parser attach their state via priv.
func NewIR(schema []byte, docs []Document, priv interface{}) *IR {
	return &IR{Schema: schema, Documents: docs, priv: priv}
}

// Priv returns the backend-private state attached at parse time.
func (ir *IR) Priv() interface{} { return ir.priv }

// Compiler is the collaborator invoked exactly once per run, synchronously,
// for the entire document set as a single unit.
type Compiler interface {
	// Parse turns the schema and document set into the compiler's IR.
	Parse(ctx context.Context, schema []byte, docs []Document) (*IR, error)

	// Generate emits sources for ir under req.OutputDir.
	Generate(ctx context.Context, ir *IR, req *gen.Request) error
}

// Error carries a backend's own diagnostics back to the caller unaltered.
type Error struct {
	// Backend names the compiler backend which reported the problem.
	Backend string

	// Doc is the document being worked on, if any.
	Doc string

	// Msg is the backend's diagnostic detail.
	Msg string
}

func (e *Error) Error() string {
	if e.Doc == "" {
		return fmt.Sprintf("compiler: %s: %s", e.Backend, e.Msg)
	}
	return fmt.Sprintf("compiler: %s: %s: %s", e.Backend, e.Doc, e.Msg)
}
