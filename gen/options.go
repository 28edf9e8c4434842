// Package gen assembles validated generation requests for the compiler
// collaborator.
package gen

import (
	"errors"
	"fmt"
)

// ErrInvalidOption is reported when an option value falls outside its
// allowed set.
var ErrInvalidOption = errors.New("gen: invalid option")

// NullableMode selects how generated code represents nullable fields.
type NullableMode string

const (
	// NullablePointer represents nullable fields as pointer types.
	NullablePointer NullableMode = "pointer"

	// NullableOptional wraps nullable fields in an optional container type.
	NullableOptional NullableMode = "optional"

	// NullableAnnotated keeps plain values and marks nullability with
	// annotations only.
	NullableAnnotated NullableMode = "annotated"
)

// Options is the flat set of generation tunables handed to the compiler.
// Every field has a usable zero-adjacent default and none are mutually
// exclusive at this layer; cross-field validation belongs to the compiler.
type Options struct {
	// Package is the root package or namespace for generated sources.
	Package string `yaml:"package"`

	// ScalarTypes maps custom GraphQL scalars to target types.
	ScalarTypes map[string]string `yaml:"scalar_types"`

	// Nullable selects the nullable-field representation.
	Nullable NullableMode `yaml:"nullable"`

	// OperationIDStrategy names a registered Strategy. Empty selects the
	// built-in content hash (see DefaultStrategy).
	OperationIDStrategy string `yaml:"operation_id_strategy"`

	SemanticNaming          bool `yaml:"semantic_naming"`
	BeanAccessors           bool `yaml:"bean_accessors"`
	Builders                bool `yaml:"builders"`
	SuppressRawTypeWarnings bool `yaml:"suppress_raw_type_warnings"`
	AltModels               bool `yaml:"alt_models"`
	Internal                bool `yaml:"internal"`
	Visitors                bool `yaml:"visitors"`

	// EnumFilters holds patterns selecting which enums get the rich
	// representation. Passed through verbatim.
	EnumFilters []string `yaml:"enum_filters"`
}

// DefaultOptions returns the options used when the caller specifies nothing.
func DefaultOptions() Options {
	return Options{
		Package:        "graphql.client",
		Nullable:       NullablePointer,
		SemanticNaming: true,
	}
}

func (o Options) validate() error {
	switch o.Nullable {
	case NullablePointer, NullableOptional, NullableAnnotated:
		return nil
	default:
		return fmt.Errorf("%w: unknown nullable mode %q", ErrInvalidOption, o.Nullable)
	}
}
