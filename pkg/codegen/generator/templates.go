package generator

const enumTemplate = `package {{.Package}}

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type {{.Enum.Name}} string

const (
{{- range .Enum.Values}}
	{{$.Enum.Name}}{{.Name}} {{$.Enum.Name}} = "{{.Value}}"
{{- end}}
)

var {{.CatalogVar}} = enum.New[{{.Enum.Name}}]("{{.Enum.Name}}",
{{- range .Enum.Values}}
	enum.Entry[{{$.Enum.Name}}]{Name: "{{.Name}}", Value: {{$.Enum.Name}}{{.Name}}},
{{- end}}
)

func Parse{{.Enum.Name}}(s string) ({{.Enum.Name}}, error) {
	return {{.CatalogVar}}.Parse(s)
}

func ({{.Enum.Name}}) Catalog() *enum.Catalog[{{.Enum.Name}}] {
	return {{.CatalogVar}}
}

func ({{.Enum.Name}}) Values() []{{.Enum.Name}} {
	return {{.CatalogVar}}.Values()
}

func (v {{.Enum.Name}}) String() string {
	return {{.CatalogVar}}.CanonicalString(v)
}

func (v {{.Enum.Name}}) MarshalText() ([]byte, error) {
	s, err := {{.CatalogVar}}.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *{{.Enum.Name}}) UnmarshalText(text []byte) error {
	parsed, err := {{.CatalogVar}}.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
`

const shapeTemplate = `package {{.Package}}
{{- if or .StdImports .Imports}}

import (
{{- range .StdImports}}
	"{{.}}"
{{- end}}
{{- if and .StdImports .Imports}}
{{end}}
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{- end}}

const (
	{{.Shape.Name}}Shape = "{{.Shape.Name}}"
{{- range .Fields}}
	{{$.Shape.Name}}Field{{.Name}} = "{{.Wire}}"
{{- end}}
)

type {{.Shape.Name}} struct {
{{- range .Fields}}
	{{.Name}} {{.GoType}} ` + "`" + `{{.Tag}}` + "`" + `
{{- end}}
}
`

const validatorsTemplate = `package {{.Package}}

import (
	"fmt"

	"github.com/aws/smithy-go"
)
{{range .Shapes}}
func (v *{{.Name}}) Validate() error {
	if v == nil {
		return nil
	}
	invalidParams := smithy.InvalidParamsError{Context: "{{.Name}}"}
{{- range .Fields}}
{{- if .RequiredCheck}}
	if {{.RequiredCheck}} {
		invalidParams.Add(smithy.NewErrParamRequired("{{.Wire}}"))
	}
{{- end}}
{{- if .Nested}}
{{- if .List}}
	for i := range v.{{.Name}} {
		if err := v.{{.Name}}[i].Validate(); err != nil {
			invalidParams.AddNested(fmt.Sprintf("{{.Wire}}[%d]", i), err.(smithy.InvalidParamsError))
		}
	}
{{- else}}
	if err := v.{{.Name}}.Validate(); err != nil {
		invalidParams.AddNested("{{.Wire}}", err.(smithy.InvalidParamsError))
	}
{{- end}}
{{- end}}
{{- end}}
	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}
{{end}}`

const errorsTemplate = `package {{.Package}}

import (
	"fmt"

	"github.com/aws/smithy-go"
)

const ErrorNamespace = "{{.ErrorNamespace}}"
{{range .Exceptions}}
type {{.Name}} struct {
	Message string ` + "`" + `json:"message,omitempty" yaml:"message,omitempty"` + "`" + `
}

func (e *{{.Name}}) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *{{.Name}}) ErrorMessage() string {
	return e.Message
}

func (e *{{.Name}}) ErrorCode() string {
	return "{{.Name}}"
}

func (e *{{.Name}}) ErrorFault() smithy.ErrorFault {
	return {{fault .Fault}}
}
{{end}}
// NewAPIError returns the exception type registered for code, or a generic API
// error for codes outside this vocabulary.
func NewAPIError(code, message string) smithy.APIError {
	switch code {
{{- range .Exceptions}}
	case "{{.Name}}":
		return &{{.Name}}{Message: message}
{{- end}}
	}
	return &smithy.GenericAPIError{Code: code, Message: message, Fault: smithy.FaultUnknown}
}
`

const registryTemplate = `package {{.Package}}

import (
	"github.com/rancher/idp-client/pkg/enum"
)

var Enums = map[string]enum.Vocabulary{
{{- range .Enums}}
	"{{.Name}}": {{catalogVar .Name}},
{{- end}}
}

var Shapes = map[string]func() interface{}{
{{- range .Shapes}}
	"{{.Name}}": func() interface{} { return &{{.Name}}{} },
{{- end}}
}
`

const enumTestTemplate = `package {{.Package}}

import (
	"testing"

	"github.com/rancher/idp-client/pkg/enum/enumtest"
)
{{range .Enums}}
func Test{{.Name}}Catalog(t *testing.T) {
	enumtest.RunCatalogTests(t, {{catalogVar .Name}})
}
{{end}}`
