// Package schema declares tool input shapes as data and checks raw
// arguments against them with one generic engine.
package schema

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Kind is a JSON schema primitive type.
type Kind string

// Supported kinds.
const (
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindString  Kind = "string"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
)

// Schema is an object shape: an ordered list of named fields.
type Schema struct {
	fields []*Field
}

// Field describes one property, array item or nested object.
type Field struct {
	Name        string
	Description string
	Kind        Kind
	Required    bool

	// Numeric bounds. ExclusiveMinimum makes Minimum a strict bound.
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum bool

	Allowed []string

	MinItems *int
	MaxItems *int
	Items    *Field

	Props *Schema
}

// Object builds an object schema from fields, in declaration order.
func Object(fields ...*Field) *Schema {
	return &Schema{fields: fields}
}

// Fields returns the declared fields in order.
func (s *Schema) Fields() []*Field {
	if s == nil {
		return nil
	}
	return s.fields
}

// Field returns the declared field called name, or nil.
func (s *Schema) Field(name string) *Field {
	for _, f := range s.Fields() {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Required lists the names of required fields in declaration order.
func (s *Schema) Required() []string {
	var out []string
	for _, f := range s.Fields() {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}

func newField(kind Kind, name, description string) *Field {
	return &Field{Name: name, Description: description, Kind: kind}
}

// Num declares a number property.
func Num(name, description string) *Field { return newField(KindNumber, name, description) }

// Int declares an integer property.
func Int(name, description string) *Field { return newField(KindInteger, name, description) }

// Str declares a string property.
func Str(name, description string) *Field { return newField(KindString, name, description) }

// Bool declares a boolean property.
func Bool(name, description string) *Field { return newField(KindBoolean, name, description) }

// Arr declares an array property whose elements match items.
func Arr(name, description string, items *Field) *Field {
	f := newField(KindArray, name, description)
	f.Items = items
	return f
}

// Obj declares a nested object property.
func Obj(name, description string, fields ...*Field) *Field {
	f := newField(KindObject, name, description)
	f.Props = Object(fields...)
	return f
}

// NumItem is an unnamed number, for array elements.
func NumItem() *Field { return newField(KindNumber, "", "") }

// IntItem is an unnamed integer, for array elements.
func IntItem() *Field { return newField(KindInteger, "", "") }

// StrItem is an unnamed string, for array elements.
func StrItem() *Field { return newField(KindString, "", "") }

// ObjItem is an unnamed object, for array elements.
func ObjItem(fields ...*Field) *Field { return Obj("", "", fields...) }

// Pair is a two-element number array such as [x, y] or [time, fraction].
func Pair() *Field { return Arr("", "", NumItem()).Len(2) }

// Req marks the field as required.
func (f *Field) Req() *Field {
	f.Required = true
	return f
}

// Positive requires a value strictly greater than zero.
func (f *Field) Positive() *Field {
	zero := 0.0
	f.Minimum = &zero
	f.ExclusiveMinimum = true
	return f
}

// Min sets an inclusive lower bound.
func (f *Field) Min(v float64) *Field {
	f.Minimum = &v
	f.ExclusiveMinimum = false
	return f
}

// Max sets an inclusive upper bound.
func (f *Field) Max(v float64) *Field {
	f.Maximum = &v
	return f
}

// Range sets inclusive lower and upper bounds.
func (f *Field) Range(lo, hi float64) *Field {
	return f.Min(lo).Max(hi)
}

// Enum restricts a string to the given values.
func (f *Field) Enum(values ...string) *Field {
	f.Allowed = values
	return f
}

// Len requires an array of exactly n elements.
func (f *Field) Len(n int) *Field {
	f.MinItems = &n
	f.MaxItems = &n
	return f
}

// MinLen requires an array of at least n elements.
func (f *Field) MinLen(n int) *Field {
	f.MinItems = &n
	return f
}

// JSONSchema renders the object shape as a JSON schema document.
func (s *Schema) JSONSchema() map[string]any {
	out := map[string]any{
		"type":       "object",
		"properties": s.properties(),
	}
	if req := s.Required(); len(req) > 0 {
		out["required"] = req
	}
	return out
}

// InputSchema renders the shape as an MCP tool input schema.
func (s *Schema) InputSchema() mcp.ToolInputSchema {
	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: s.properties(),
		Required:   s.Required(),
	}
}

func (s *Schema) properties() map[string]any {
	props := make(map[string]any, len(s.Fields()))
	for _, f := range s.Fields() {
		props[f.Name] = f.jsonSchema()
	}
	return props
}

func (f *Field) jsonSchema() map[string]any {
	out := map[string]any{"type": string(f.Kind)}
	if f.Description != "" {
		out["description"] = f.Description
	}
	if f.Minimum != nil {
		if f.ExclusiveMinimum {
			out["exclusiveMinimum"] = *f.Minimum
		} else {
			out["minimum"] = *f.Minimum
		}
	}
	if f.Maximum != nil {
		out["maximum"] = *f.Maximum
	}
	if len(f.Allowed) > 0 {
		out["enum"] = f.Allowed
	}
	if f.Items != nil {
		out["items"] = f.Items.jsonSchema()
	}
	if f.MinItems != nil {
		out["minItems"] = *f.MinItems
	}
	if f.MaxItems != nil {
		out["maxItems"] = *f.MaxItems
	}
	if f.Props != nil {
		out["properties"] = f.Props.properties()
		if req := f.Props.Required(); len(req) > 0 {
			out["required"] = req
		}
	}
	return out
}
