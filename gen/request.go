package gen

import (
	"fmt"
	"path/filepath"

	"github.com/gqlcgen/gqlcgen/document"
)

// Request is the single immutable unit of work handed to the compiler.
// Construction either yields a complete request with every path resolved
// to absolute form, or fails; a Request is never partially populated.
type Request struct {
	// SchemaFile is the local introspection schema, absolute.
	SchemaFile string

	// OutputDir receives generated sources, absolute.
	OutputDir string

	// Documents is the non-empty discovered operation set.
	Documents *document.Set

	// OperationID is the resolved identifier strategy.
	OperationID Strategy

	// Namer applies the naming options.
	Namer Namer

	// Options carries everything else through verbatim.
	Options Options
}

// NewRequest resolves and validates the inputs into a Request.
func NewRequest(docs *document.Set, schemaFile, outputDir string, opts Options) (*Request, error) {
	if docs == nil || docs.Len() == 0 {
		return nil, fmt.Errorf("gen: request requires a non-empty document set")
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	strategy, err := ResolveStrategy(opts.OperationIDStrategy)
	if err != nil {
		return nil, err
	}

	schemaFile, err = filepath.Abs(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("gen: resolving schema path: %w", err)
	}
	outputDir, err = filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("gen: resolving output path: %w", err)
	}

	return &Request{
		SchemaFile:  schemaFile,
		OutputDir:   outputDir,
		Documents:   docs,
		OperationID: strategy,
		Namer: Namer{
			semantic: opts.SemanticNaming,
			bean:     opts.BeanAccessors,
		},
		Options: opts,
	}, nil
}
