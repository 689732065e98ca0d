// Package enum implements closed, string-backed enumerations whose values are
// exchanged with the identity provider service as exact wire strings.
//
// A Catalog is built once, when the package declaring the enumeration is
// initialised, and is read-only afterwards, so it may be shared by any number
// of goroutines without locking.
package enum

import (
	"fmt"
)

// Entry pairs the symbolic name of an enumeration value with its canonical
// wire string.
type Entry[T ~string] struct {
	Name  string
	Value T
}

// Vocabulary is the type-erased view of a Catalog.
type Vocabulary interface {
	TypeName() string
	Strings() []string
	Symbols() []string
	ParseString(s string) (string, error)
}

type Catalog[T ~string] struct {
	typeName string
	entries  []Entry[T]
	byWire   map[string]int
}

// New builds the catalog for one enumeration type. It panics when the
// definition itself is invalid: no values, an empty wire string, or a
// duplicated name or wire string.
func New[T ~string](typeName string, entries ...Entry[T]) *Catalog[T] {
	if typeName == "" {
		panic("enum: catalog type name must not be empty")
	}
	if len(entries) == 0 {
		panic(fmt.Sprintf("enum: %s: catalog has no values", typeName))
	}

	c := &Catalog[T]{
		typeName: typeName,
		entries:  make([]Entry[T], 0, len(entries)),
		byWire:   make(map[string]int, len(entries)),
	}
	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		wire := string(e.Value)
		switch {
		case e.Name == "":
			panic(fmt.Sprintf("enum: %s: value %q has no symbolic name", typeName, wire))
		case wire == "":
			panic(fmt.Sprintf("enum: %s: %s has an empty wire string", typeName, e.Name))
		case names[e.Name]:
			panic(fmt.Sprintf("enum: %s: duplicate symbolic name %s", typeName, e.Name))
		}
		if _, ok := c.byWire[wire]; ok {
			panic(fmt.Sprintf("enum: %s: duplicate wire string %q", typeName, wire))
		}
		names[e.Name] = true
		c.byWire[wire] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c
}

func (c *Catalog[T]) TypeName() string {
	return c.typeName
}

func (c *Catalog[T]) Len() int {
	return len(c.entries)
}

// Parse returns the value whose canonical string is exactly s. Matching is
// byte-for-byte: no trimming, no case folding.
func (c *Catalog[T]) Parse(s string) (T, error) {
	if s == "" {
		return "", &EmptyInputError{Type: c.typeName}
	}
	i, ok := c.byWire[s]
	if !ok {
		return "", &UnrecognizedValueError{Type: c.typeName, Value: s}
	}
	return c.entries[i].Value, nil
}

// ParsePointer treats a nil pointer as absent input.
func (c *Catalog[T]) ParsePointer(s *string) (T, error) {
	if s == nil {
		return "", &EmptyInputError{Type: c.typeName}
	}
	return c.Parse(*s)
}

func (c *Catalog[T]) ParseString(s string) (string, error) {
	v, err := c.Parse(s)
	return string(v), err
}

// CanonicalString returns the wire string of v. For every value defined in
// the catalog the result is non-empty.
func (c *Catalog[T]) CanonicalString(v T) string {
	return string(v)
}

// Encode is the strict form of CanonicalString used when a request field is
// written to the wire.
func (c *Catalog[T]) Encode(v T) (string, error) {
	if v == "" {
		return "", &EmptyInputError{Type: c.typeName}
	}
	if !c.Contains(v) {
		return "", &UnrecognizedValueError{Type: c.typeName, Value: string(v)}
	}
	return string(v), nil
}

func (c *Catalog[T]) Contains(v T) bool {
	_, ok := c.byWire[string(v)]
	return ok
}

// Symbol returns the symbolic name of v.
func (c *Catalog[T]) Symbol(v T) (string, bool) {
	i, ok := c.byWire[string(v)]
	if !ok {
		return "", false
	}
	return c.entries[i].Name, true
}

// Values returns the defined values in declaration order.
func (c *Catalog[T]) Values() []T {
	result := make([]T, len(c.entries))
	for i, e := range c.entries {
		result[i] = e.Value
	}
	return result
}

func (c *Catalog[T]) Strings() []string {
	result := make([]string, len(c.entries))
	for i, e := range c.entries {
		result[i] = string(e.Value)
	}
	return result
}

func (c *Catalog[T]) Symbols() []string {
	result := make([]string, len(c.entries))
	for i, e := range c.entries {
		result[i] = e.Name
	}
	return result
}

func (c *Catalog[T]) Entries() []Entry[T] {
	result := make([]Entry[T], len(c.entries))
	copy(result, c.entries)
	return result
}
