package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/rancher/idp-client/pkg/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	app := NewApp()
	app.Writer = out
	app.ErrWriter = out
	err := app.Run(append([]string{"idpctl"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestEnums(t *testing.T) {
	out, err := run(t, "enums")
	require.NoError(t, err)
	assert.Contains(t, out, "- AuthFlowType\n")
	assert.Contains(t, out, "- VerifySoftwareTokenResponseType\n")
}

func TestValues(t *testing.T) {
	out, err := run(t, "-o", "json", "values", "RiskLevelType")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"symbol": "Low", "value": "Low"},
		{"symbol": "Medium", "value": "Medium"},
		{"symbol": "High", "value": "High"}
	]`, out)

	out, err = run(t, "values", "DeliveryMediumType")
	require.NoError(t, err)
	assert.Equal(t, "- symbol: SMS\n  value: SMS\n- symbol: Email\n  value: EMAIL\n", out)

	_, err = run(t, "values", "Nope")
	assert.EqualError(t, err, "unknown enumeration Nope")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		out     string
		wantErr string
	}{
		{
			name: "canonical",
			args: []string{"parse", "AuthFlowType", "USER_SRP_AUTH"},
			out:  "USER_SRP_AUTH\n",
		},
		{
			name:    "lower case",
			args:    []string{"parse", "AuthFlowType", "user_srp_auth"},
			wantErr: "parsing AuthFlowType: unrecognized value: user_srp_auth",
		},
		{
			name:    "empty",
			args:    []string{"parse", "AuthFlowType", ""},
			wantErr: "parsing AuthFlowType: empty input",
		},
		{
			name:    "padded",
			args:    []string{"parse", "RiskLevelType", " High"},
			wantErr: "parsing RiskLevelType: unrecognized value:  High",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.out, out)
		})
	}
}

func TestParseKeepsTypedErrors(t *testing.T) {
	_, err := run(t, "parse", "AuthFlowType", "PASSKEY")
	value, ok := enum.UnrecognizedValue(err)
	assert.True(t, ok)
	assert.Equal(t, "PASSKEY", value)
}

func TestDecode(t *testing.T) {
	path := writeFile(t, "ChallengeName: WEB_AUTHN\nSession: abc\n")

	out, err := run(t, "decode", "--shape", "InitiateAuthOutput", path)
	require.NoError(t, err)
	assert.Equal(t, "ChallengeName: WEB_AUTHN\nSession: abc\n", out)

	path = writeFile(t, `{"AuthenticationResult": {"AccessToken": "t", "ExpiresIn": 3600}}`)
	out, err = run(t, "-o", "json", "decode", "-s", "InitiateAuthOutput", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"AuthenticationResult": {"AccessToken": "t", "ExpiresIn": 3600}}`, out)
}

func TestDecodeRejectsUnknownEnum(t *testing.T) {
	path := writeFile(t, "Status: Done\n")

	_, err := run(t, "decode", "--shape", "UserImportJobType", path)
	assert.True(t, enum.IsUnrecognizedValue(err))

	_, err = run(t, "decode", "--shape", "NoSuchShape", path)
	assert.EqualError(t, err, `unknown shape "NoSuchShape"`)

	_, err = run(t, "decode", "--shape", "UserImportJobType")
	assert.EqualError(t, err, "expected exactly one file argument, use - for stdin")
}

func TestValidate(t *testing.T) {
	path := writeFile(t, "UserPoolId: us-east-1_abc\nUsername: alice\n")
	out, err := run(t, "validate", "--shape", "AdminCreateUserInput", path)
	require.NoError(t, err)
	assert.Equal(t, "AdminCreateUserInput is valid\n", out)

	path = writeFile(t, "Username: alice\nUserAttributes:\n- Value: x\n")
	_, err = run(t, "validate", "--shape", "AdminCreateUserInput", path)
	var invalidParams smithy.InvalidParamsError
	require.ErrorAs(t, err, &invalidParams)
	assert.Equal(t, 2, invalidParams.Len())
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check")
	require.NoError(t, err)
	assert.Equal(t, "checked 34 enumerations\n", out)
}

func TestSettings(t *testing.T) {
	t.Setenv("IDP_STRICT_SDK", "false")

	out, err := run(t, "-o", "json", "settings")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "output-format"`)
	assert.Contains(t, out, `"value": "json"`)
	assert.Contains(t, out, `"env": "IDP_OUTPUT_FORMAT"`)
	assert.Contains(t, out, `"readOnly": true`)
}

func TestRejectsUnknownOutputFormat(t *testing.T) {
	_, err := run(t, "-o", "xml", "enums")
	assert.EqualError(t, err, `unsupported output format "xml"`)
}
