package gen

import (
	"strings"

	"github.com/go-openapi/inflect"
)

// Namer shapes identifiers in generated code according to the naming
// options in effect.
type Namer struct {
	semantic bool
	bean     bool
}

// TypeName returns the exported type name for a GraphQL type.
func (n Namer) TypeName(name string) string {
	return inflect.Camelize(name)
}

// FieldName returns the field name for a GraphQL field.
func (n Namer) FieldName(name string) string {
	return inflect.CamelizeDownFirst(name)
}

// Accessor returns the accessor name for a field. Bean-style naming
// prefixes "get"; otherwise the accessor is the field name itself.
func (n Namer) Accessor(field string) string {
	if !n.bean {
		return inflect.CamelizeDownFirst(field)
	}
	return "get" + inflect.Camelize(field)
}

// OperationName returns the class/type name for a named operation.
// Semantic naming guarantees the operation kind (Query, Mutation,
// Subscription) appears as a suffix exactly once.
func (n Namer) OperationName(name, kind string) string {
	name = inflect.Camelize(name)
	if !n.semantic {
		return name
	}

	suffix := inflect.Camelize(strings.ToLower(kind))
	if strings.HasSuffix(name, suffix) {
		return name
	}
	return name + suffix
}
