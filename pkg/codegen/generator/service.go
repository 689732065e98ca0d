package generator

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	typeString    = "string"
	typeBool      = "bool"
	typeInt32     = "int32"
	typeInt64     = "int64"
	typeMap       = "map"
	typeTimestamp = "timestamp"
)

var primitives = map[string]string{
	typeString:    "string",
	typeBool:      "bool",
	typeInt32:     "int32",
	typeInt64:     "int64",
	typeMap:       "map[string]string",
	typeTimestamp: "*time.Time",
}

// Service is the YAML description of one service's model layer.
type Service struct {
	Package        string      `yaml:"package"`
	Service        string      `yaml:"service"`
	ErrorNamespace string      `yaml:"errorNamespace"`
	Enums          []Enum      `yaml:"enums"`
	Shapes         []Shape     `yaml:"shapes"`
	Exceptions     []Exception `yaml:"exceptions"`

	enums  map[string]*Enum
	shapes map[string]*Shape
}

type Enum struct {
	Name   string      `yaml:"name"`
	Values []EnumValue `yaml:"values"`
}

type EnumValue struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type Shape struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`

	validatable bool
}

type Field struct {
	Name       string `yaml:"name"`
	Wire       string `yaml:"wire"`
	Type       string `yaml:"type"`
	List       bool   `yaml:"list"`
	Required   bool   `yaml:"required"`
	Permissive bool   `yaml:"permissive"`
}

type Exception struct {
	Name  string `yaml:"name"`
	Fault string `yaml:"fault"`
}

func LoadService(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseService(data)
}

func ParseService(data []byte) (*Service, error) {
	s := &Service{}
	if err := yaml.UnmarshalStrict(data, s); err != nil {
		return nil, errors.Wrap(err, "parsing service description")
	}
	if err := s.resolve(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) resolve() error {
	if s.Package == "" {
		return errors.New("service description has no package")
	}

	s.enums = map[string]*Enum{}
	s.shapes = map[string]*Shape{}

	for i := range s.Enums {
		e := &s.Enums[i]
		if !isExported(e.Name) {
			return fmt.Errorf("enum name %q is not an exported identifier", e.Name)
		}
		if _, ok := s.enums[e.Name]; ok {
			return fmt.Errorf("enum %s is declared twice", e.Name)
		}
		if len(e.Values) == 0 {
			return fmt.Errorf("enum %s has no values", e.Name)
		}
		names := map[string]bool{}
		wires := map[string]bool{}
		for _, v := range e.Values {
			if !isExported(v.Name) {
				return fmt.Errorf("enum %s: symbol %q is not an exported identifier", e.Name, v.Name)
			}
			if v.Value == "" {
				return fmt.Errorf("enum %s: %s has an empty wire string", e.Name, v.Name)
			}
			if names[v.Name] {
				return fmt.Errorf("enum %s: duplicate symbol %s", e.Name, v.Name)
			}
			if wires[v.Value] {
				return fmt.Errorf("enum %s: duplicate wire string %q", e.Name, v.Value)
			}
			names[v.Name] = true
			wires[v.Value] = true
		}
		s.enums[e.Name] = e
	}

	for i := range s.Shapes {
		shape := &s.Shapes[i]
		if !isExported(shape.Name) {
			return fmt.Errorf("shape name %q is not an exported identifier", shape.Name)
		}
		if _, ok := s.shapes[shape.Name]; ok {
			return fmt.Errorf("shape %s is declared twice", shape.Name)
		}
		if _, ok := s.enums[shape.Name]; ok {
			return fmt.Errorf("shape %s collides with an enum of the same name", shape.Name)
		}
		s.shapes[shape.Name] = shape
	}

	for _, shape := range s.shapes {
		seen := map[string]bool{}
		for i := range shape.Fields {
			f := &shape.Fields[i]
			if f.Type == "" {
				f.Type = typeString
			}
			if f.Wire == "" {
				f.Wire = f.Name
			}
			if !isExported(f.Name) {
				return fmt.Errorf("shape %s: field %q is not an exported identifier", shape.Name, f.Name)
			}
			if seen[f.Name] {
				return fmt.Errorf("shape %s: duplicate field %s", shape.Name, f.Name)
			}
			seen[f.Name] = true

			_, primitive := primitives[f.Type]
			_, isEnum := s.enums[f.Type]
			_, isShape := s.shapes[f.Type]
			if !primitive && !isEnum && !isShape {
				return fmt.Errorf("shape %s: field %s has unknown type %s", shape.Name, f.Name, f.Type)
			}
			if f.Permissive && (!isEnum || f.List) {
				return fmt.Errorf("shape %s: field %s: only single enum fields can be permissive", shape.Name, f.Name)
			}
			if f.List && (f.Type == typeMap || f.Type == typeTimestamp) {
				return fmt.Errorf("shape %s: field %s: lists of %s are not supported", shape.Name, f.Name, f.Type)
			}
		}
	}

	faults := map[string]bool{"client": true, "server": true}
	seenErr := map[string]bool{}
	for _, e := range s.Exceptions {
		if !isExported(e.Name) {
			return fmt.Errorf("exception name %q is not an exported identifier", e.Name)
		}
		if seenErr[e.Name] {
			return fmt.Errorf("exception %s is declared twice", e.Name)
		}
		if !faults[e.Fault] {
			return fmt.Errorf("exception %s: fault must be client or server, got %q", e.Name, e.Fault)
		}
		seenErr[e.Name] = true
	}

	s.markValidatable()
	return nil
}

// markValidatable flags shapes with required members, directly or through a
// nested shape.
func (s *Service) markValidatable() {
	for changed := true; changed; {
		changed = false
		for _, shape := range s.shapes {
			if shape.validatable {
				continue
			}
			for _, f := range shape.Fields {
				nested, ok := s.shapes[f.Type]
				if (f.Required && requiredCheckable(f)) || (ok && nested.validatable) {
					shape.validatable = true
					changed = true
					break
				}
			}
		}
	}
}

func (s *Service) IsEnum(name string) bool {
	_, ok := s.enums[name]
	return ok
}

func (s *Service) IsShape(name string) bool {
	_, ok := s.shapes[name]
	return ok
}

func (s *Service) EnumNames() []string {
	return sortedKeys(s.enums)
}

func (s *Service) ShapeNames() []string {
	return sortedKeys(s.shapes)
}

func sortedKeys[V any](m map[string]V) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}

// requiredCheckable reports whether an unset value of f can be told apart from
// a set one. Plain booleans and integers cannot.
func requiredCheckable(f Field) bool {
	if f.List {
		return true
	}
	switch f.Type {
	case typeBool, typeInt32, typeInt64:
		return false
	}
	return true
}

func isExported(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 && !unicode.IsUpper(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func fileName(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1]) && i > 0 && unicode.IsUpper(runes[i-1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
