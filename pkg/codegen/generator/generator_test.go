package generator

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallService = `
package: client
service: riskdemo
errorNamespace: example.riskdemo
enums:
- name: RiskActionType
  values:
  - {name: Block, value: BLOCK}
  - {name: NoAction, value: NO_ACTION}
- name: RiskLevelType
  values:
  - {name: Low, value: Low}
  - {name: High, value: High}
shapes:
- name: RiskActionConfigType
  fields:
  - {name: Notify, type: bool, required: true}
  - {name: EventAction, type: RiskActionType, required: true}
- name: SetRiskInput
  fields:
  - {name: UserPoolID, wire: UserPoolId, required: true}
  - {name: Actions, type: RiskActionConfigType, list: true}
  - {name: Level, type: RiskLevelType, permissive: true}
  - {name: LastModifiedDate, type: timestamp}
exceptions:
- {name: ThrottledException, fault: client}
- {name: BrokenException, fault: server}
`

func TestParseService(t *testing.T) {
	s, err := ParseService([]byte(smallService))
	require.NoError(t, err)

	assert.Equal(t, []string{"RiskActionType", "RiskLevelType"}, s.EnumNames())
	assert.Equal(t, []string{"RiskActionConfigType", "SetRiskInput"}, s.ShapeNames())
	assert.True(t, s.IsEnum("RiskActionType"))
	assert.True(t, s.IsShape("SetRiskInput"))
	assert.True(t, s.shapes["RiskActionConfigType"].validatable)
	assert.True(t, s.shapes["SetRiskInput"].validatable)

	input := s.shapes["SetRiskInput"]
	assert.Equal(t, "UserPoolId", input.Fields[0].Wire)
	assert.Equal(t, "Actions", input.Fields[1].Wire)
	assert.Equal(t, typeString, input.Fields[0].Type)
}

func TestParseServiceRejectsInvalidDescriptions(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{
			name:    "missing package",
			yaml:    "service: x",
			message: "no package",
		},
		{
			name: "duplicate wire string",
			yaml: `
package: client
enums:
- name: ModeType
  values:
  - {name: A, value: X}
  - {name: B, value: X}`,
			message: `duplicate wire string "X"`,
		},
		{
			name: "duplicate symbol",
			yaml: `
package: client
enums:
- name: ModeType
  values:
  - {name: A, value: X}
  - {name: A, value: Y}`,
			message: "duplicate symbol A",
		},
		{
			name: "empty wire string",
			yaml: `
package: client
enums:
- name: ModeType
  values:
  - {name: A, value: ""}`,
			message: "empty wire string",
		},
		{
			name: "enum without values",
			yaml: `
package: client
enums:
- name: ModeType`,
			message: "has no values",
		},
		{
			name: "unknown field type",
			yaml: `
package: client
shapes:
- name: Thing
  fields:
  - {name: Mode, type: ModeType}`,
			message: "unknown type ModeType",
		},
		{
			name: "permissive non-enum",
			yaml: `
package: client
shapes:
- name: Thing
  fields:
  - {name: Mode, permissive: true}`,
			message: "only single enum fields can be permissive",
		},
		{
			name: "shape shadows enum",
			yaml: `
package: client
enums:
- name: Thing
  values:
  - {name: A, value: A}
shapes:
- name: Thing`,
			message: "collides with an enum",
		},
		{
			name: "unknown fault",
			yaml: `
package: client
exceptions:
- {name: OddException, fault: network}`,
			message: "fault must be client or server",
		},
		{
			name: "unknown key",
			yaml: `
package: client
enumz: []`,
			message: "parsing service description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseService([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestRender(t *testing.T) {
	s, err := ParseService([]byte(smallService))
	require.NoError(t, err)

	files, err := Render(s)
	require.NoError(t, err)

	var names []string
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{
		"zz_generated_enums_test.go",
		"zz_generated_errors.go",
		"zz_generated_registry.go",
		"zz_generated_risk_action_config_type.go",
		"zz_generated_risk_action_type.go",
		"zz_generated_risk_level_type.go",
		"zz_generated_set_risk_input.go",
		"zz_generated_validators.go",
	}, names)

	enumFile := string(files["zz_generated_risk_action_type.go"])
	assert.Contains(t, enumFile, `RiskActionTypeBlock    RiskActionType = "BLOCK"`)
	assert.Contains(t, enumFile, `var riskActionTypeCatalog = enum.New[RiskActionType]("RiskActionType",`)
	assert.Contains(t, enumFile, `enum.Entry[RiskActionType]{Name: "NoAction", Value: RiskActionTypeNoAction},`)
	assert.Contains(t, enumFile, "func ParseRiskActionType(s string) (RiskActionType, error) {")

	shapeFile := string(files["zz_generated_set_risk_input.go"])
	assert.Contains(t, shapeFile, "\"time\"\n\n\t\"github.com/rancher/idp-client/pkg/enum\"")
	assert.Contains(t, shapeFile, `SetRiskInputFieldUserPoolID`)
	assert.Contains(t, shapeFile, "enum.Value[RiskLevelType]")
	assert.Contains(t, shapeFile, "[]RiskActionConfigType")
	assert.Contains(t, shapeFile, `json:"UserPoolId,omitempty" yaml:"UserPoolId,omitempty"`)

	configFile := string(files["zz_generated_risk_action_config_type.go"])
	assert.Contains(t, configFile, `json:"Notify" yaml:"Notify"`)
	assert.NotContains(t, configFile, "import")

	validators := string(files["zz_generated_validators.go"])
	assert.Contains(t, validators, `invalidParams.Add(smithy.NewErrParamRequired("UserPoolId"))`)
	assert.Contains(t, validators, `invalidParams.Add(smithy.NewErrParamRequired("EventAction"))`)
	assert.Contains(t, validators, `invalidParams.AddNested(fmt.Sprintf("Actions[%d]", i), err.(smithy.InvalidParamsError))`)
	assert.NotContains(t, validators, `NewErrParamRequired("Notify")`)

	errorsFile := string(files["zz_generated_errors.go"])
	assert.Contains(t, errorsFile, `const ErrorNamespace = "example.riskdemo"`)
	assert.Contains(t, errorsFile, "return smithy.FaultServer")
	assert.Contains(t, errorsFile, `case "ThrottledException":`)

	registry := string(files["zz_generated_registry.go"])
	assert.Contains(t, registry, `"RiskLevelType":  riskLevelTypeCatalog,`)
	assert.Contains(t, registry, `"SetRiskInput":         func() interface{} { return &SetRiskInput{} },`)

	tests := string(files["zz_generated_enums_test.go"])
	assert.Contains(t, tests, "func TestRiskActionTypeCatalog(t *testing.T) {")
}

func TestGenerateWritesFiles(t *testing.T) {
	s, err := ParseService([]byte(smallService))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	written, err := Generate(s, dir)
	require.NoError(t, err)
	assert.Len(t, written, 8)

	for _, path := range written {
		assert.True(t, IsGenerated(path))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "package client\n"))
	}
}

func TestCheckedInCatalogMatchesGeneratedPackage(t *testing.T) {
	s, err := LoadService("../catalog/cognitoidp.yaml")
	require.NoError(t, err)

	files, err := Render(s)
	require.NoError(t, err)

	entries, err := os.ReadDir("../../client/generated/cognitoidp/v1")
	require.NoError(t, err)

	var onDisk []string
	for _, e := range entries {
		if IsGenerated(e.Name()) {
			onDisk = append(onDisk, e.Name())
		}
	}

	var rendered []string
	for name := range files {
		rendered = append(rendered, name)
	}
	sort.Strings(rendered)
	assert.Equal(t, onDisk, rendered)
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"AdminCreateUserInput":     "admin_create_user_input",
		"MFAOptionType":            "mfa_option_type",
		"SMSMfaSettingsType":       "sms_mfa_settings_type",
		"IdentityProviderTypeType": "identity_provider_type_type",
		"UserType":                 "user_type",
	}
	for in, want := range tests {
		assert.Equal(t, want, fileName(in), in)
	}
}
