package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	enumImport   = "github.com/rancher/idp-client/pkg/enum"
	filePrefix   = "zz_generated_"
	goFileSuffix = ".go"
)

type fieldView struct {
	Name          string
	Wire          string
	GoType        string
	Tag           string
	List          bool
	Nested        bool
	RequiredCheck string
}

type shapeView struct {
	Package    string
	Shape      *Shape
	StdImports []string
	Imports    []string
	Fields     []fieldView
}

type validatorView struct {
	Name   string
	Fields []fieldView
}

var funcs = template.FuncMap{
	"catalogVar": catalogVar,
	"fault": func(f string) string {
		if f == "server" {
			return "smithy.FaultServer"
		}
		return "smithy.FaultClient"
	},
}

func catalogVar(enumName string) string {
	return lowerFirst(enumName) + "Catalog"
}

// Generate renders every file for s into outputDir and returns the paths written.
func Generate(s *Service, outputDir string) ([]string, error) {
	files, err := Render(s)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var written []string
	for _, name := range names {
		path := filepath.Join(outputDir, name)
		logrus.Debugf("Writing %s", path)
		if err := os.WriteFile(path, files[name], 0644); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	logrus.Infof("Generated %d files for %s in %s", len(written), s.Service, outputDir)
	return written, nil
}

// Render returns the formatted contents of every generated file keyed by file name.
func Render(s *Service) (map[string][]byte, error) {
	files := map[string][]byte{}

	for _, name := range s.EnumNames() {
		e := s.enums[name]
		data, err := render("enum", enumTemplate, map[string]interface{}{
			"Package":    s.Package,
			"Enum":       e,
			"CatalogVar": catalogVar(e.Name),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "enum %s", e.Name)
		}
		files[filePrefix+fileName(e.Name)+goFileSuffix] = data
	}

	var validators []validatorView
	for _, name := range s.ShapeNames() {
		shape := s.shapes[name]
		view := s.shapeView(shape)
		data, err := render("shape", shapeTemplate, view)
		if err != nil {
			return nil, errors.Wrapf(err, "shape %s", shape.Name)
		}
		files[filePrefix+fileName(shape.Name)+goFileSuffix] = data

		if shape.validatable {
			validators = append(validators, validatorView{Name: shape.Name, Fields: view.Fields})
		}
	}

	shared := []struct {
		name string
		tmpl string
		data interface{}
	}{
		{"validators", validatorsTemplate, map[string]interface{}{"Package": s.Package, "Shapes": validators}},
		{"errors", errorsTemplate, s},
		{"registry", registryTemplate, map[string]interface{}{"Package": s.Package, "Enums": s.sortedEnums(), "Shapes": s.sortedShapes()}},
	}
	for _, f := range shared {
		if f.name == "validators" && len(validators) == 0 {
			continue
		}
		if f.name == "errors" && len(s.Exceptions) == 0 {
			continue
		}
		data, err := render(f.name, f.tmpl, f.data)
		if err != nil {
			return nil, err
		}
		files[filePrefix+f.name+goFileSuffix] = data
	}

	if len(s.Enums) > 0 {
		data, err := render("enum tests", enumTestTemplate, map[string]interface{}{"Package": s.Package, "Enums": s.sortedEnums()})
		if err != nil {
			return nil, err
		}
		files[filePrefix+"enums_test"+goFileSuffix] = data
	}

	return files, nil
}

func (s *Service) sortedEnums() []*Enum {
	var result []*Enum
	for _, name := range s.EnumNames() {
		result = append(result, s.enums[name])
	}
	return result
}

func (s *Service) sortedShapes() []*Shape {
	var result []*Shape
	for _, name := range s.ShapeNames() {
		result = append(result, s.shapes[name])
	}
	return result
}

func (s *Service) shapeView(shape *Shape) shapeView {
	view := shapeView{
		Package: s.Package,
		Shape:   shape,
	}
	stdImports := map[string]bool{}
	imports := map[string]bool{}
	for _, f := range shape.Fields {
		fv := fieldView{
			Name:   f.Name,
			Wire:   f.Wire,
			GoType: s.goType(f),
			Tag:    tag(f),
			List:   f.List,
		}
		if nested, ok := s.shapes[f.Type]; ok && nested.validatable {
			fv.Nested = true
		}
		if f.Required && requiredCheckable(f) {
			fv.RequiredCheck = requiredCheck(s, f)
		}
		if f.Type == typeTimestamp {
			stdImports["time"] = true
		}
		if f.Permissive {
			imports[enumImport] = true
		}
		view.Fields = append(view.Fields, fv)
	}
	view.StdImports = sortedKeys(stdImports)
	view.Imports = sortedKeys(imports)
	return view
}

func (s *Service) goType(f Field) string {
	var base string
	switch {
	case s.IsShape(f.Type) && f.List:
		base = f.Type
	case s.IsShape(f.Type):
		base = "*" + f.Type
	case s.IsEnum(f.Type) && f.Permissive:
		base = fmt.Sprintf("enum.Value[%s]", f.Type)
	case s.IsEnum(f.Type):
		base = f.Type
	default:
		base = primitives[f.Type]
	}
	if f.List {
		return "[]" + base
	}
	return base
}

func requiredCheck(s *Service, f Field) string {
	switch {
	case f.List, f.Type == typeMap, f.Type == typeTimestamp, s.IsShape(f.Type):
		return fmt.Sprintf("v.%s == nil", f.Name)
	case f.Permissive:
		return fmt.Sprintf("v.%s.IsZero()", f.Name)
	case s.IsEnum(f.Type):
		return fmt.Sprintf("len(v.%s) == 0", f.Name)
	}
	return fmt.Sprintf("v.%s == \"\"", f.Name)
}

// tag keeps required scalars on the wire even when they hold their zero value.
func tag(f Field) string {
	opts := ",omitempty"
	if f.Required && !requiredCheckable(f) {
		opts = ""
	}
	return fmt.Sprintf(`json:"%s%s" yaml:"%s%s"`, f.Wire, opts, f.Wire, opts)
}

func render(name, text string, data interface{}) ([]byte, error) {
	t, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := t.Execute(buf, data); err != nil {
		return nil, err
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "formatting %s output:\n%s", name, buf.String())
	}
	return formatted, nil
}

// IsGenerated reports whether path names a file produced by Generate.
func IsGenerated(path string) bool {
	return strings.HasPrefix(filepath.Base(path), filePrefix)
}
