package convert_test

import (
	"testing"
	"time"

	"github.com/aws/smithy-go"
	client "github.com/rancher/idp-client/pkg/client/generated/cognitoidp/v1"
	"github.com/rancher/idp-client/pkg/convert"
	"github.com/rancher/idp-client/pkg/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResponse(t *testing.T) {
	body := `{
		"DomainDescription": {
			"UserPoolId": "us-east-1_abc",
			"Domain": "auth.example.com",
			"Status": "ACTIVE",
			"CustomDomainConfig": {"CertificateArn": "arn:aws:acm:us-east-1:1:certificate/x"}
		}
	}`

	out := &client.DescribeUserPoolDomainOutput{}
	require.NoError(t, convert.DecodeResponse([]byte(body), out))
	require.NotNil(t, out.DomainDescription)
	assert.Equal(t, client.DomainStatusTypeActive, out.DomainDescription.Status)
	assert.Equal(t, "us-east-1_abc", out.DomainDescription.UserPoolID)
	assert.Equal(t, "arn:aws:acm:us-east-1:1:certificate/x", out.DomainDescription.CustomDomainConfig.CertificateARN)
}

func TestDecodeResponseRejectsUnknownEnumValue(t *testing.T) {
	body := `{"DomainDescription": {"Status": "MIGRATING"}}`

	err := convert.DecodeResponse([]byte(body), &client.DescribeUserPoolDomainOutput{})
	require.Error(t, err)
	assert.True(t, enum.IsUnrecognizedValue(err))
	value, ok := enum.UnrecognizedValue(err)
	assert.True(t, ok)
	assert.Equal(t, "MIGRATING", value)
	assert.Contains(t, err.Error(), "decoding DescribeUserPoolDomainOutput")
	assert.Contains(t, err.Error(), "unrecognized value: MIGRATING")
}

func TestDecodeResponseRejectsCaseVariant(t *testing.T) {
	body := `{"Status": "success"}`

	err := convert.DecodeResponse([]byte(body), &client.VerifySoftwareTokenOutput{})
	assert.True(t, enum.IsUnrecognizedValue(err))
}

func TestDecodeResponseRejectsEmptyEnum(t *testing.T) {
	body := `{"Status": ""}`

	err := convert.DecodeResponse([]byte(body), &client.VerifySoftwareTokenOutput{})
	assert.True(t, enum.IsEmptyInput(err))
	assert.False(t, enum.IsUnrecognizedValue(err))
}

func TestDecodeResponseNullEnumIsUnset(t *testing.T) {
	out := &client.VerifySoftwareTokenOutput{}
	require.NoError(t, convert.DecodeResponse([]byte(`{"Status": null, "Session": "s"}`), out))
	assert.Equal(t, client.VerifySoftwareTokenResponseType(""), out.Status)
	assert.Equal(t, "s", out.Session)
}

func TestDecodeResponseEnumLists(t *testing.T) {
	body := `{"ExplicitAuthFlows": ["ALLOW_USER_SRP_AUTH", "ALLOW_REFRESH_TOKEN_AUTH"], "AllowedOAuthFlows": ["code"]}`

	out := &client.UserPoolClientType{}
	require.NoError(t, convert.DecodeResponse([]byte(body), out))
	assert.Equal(t, []client.ExplicitAuthFlowsType{
		client.ExplicitAuthFlowsTypeAllowUserSRPAuth,
		client.ExplicitAuthFlowsTypeAllowRefreshTokenAuth,
	}, out.ExplicitAuthFlows)
	assert.Equal(t, []client.OAuthFlowType{client.OAuthFlowTypeCode}, out.AllowedOAuthFlows)

	err := convert.DecodeResponse([]byte(`{"AllowedOAuthFlows": ["code", "device_code"]}`), &client.UserPoolClientType{})
	value, ok := enum.UnrecognizedValue(err)
	assert.True(t, ok)
	assert.Equal(t, "device_code", value)
}

func TestDecodeResponsePermissiveField(t *testing.T) {
	body := `{"User": {"Username": "alice", "UserStatus": "EXTERNAL_PROVIDER", "UserCreateDate": 1700000000.25}}`

	out := &client.AdminCreateUserOutput{}
	require.NoError(t, convert.DecodeResponse([]byte(body), out))
	require.NotNil(t, out.User)
	assert.Equal(t, "EXTERNAL_PROVIDER", out.User.UserStatus.String())
	assert.False(t, out.User.UserStatus.IsKnown())

	require.NotNil(t, out.User.UserCreateDate)
	assert.Equal(t, time.Unix(1700000000, 250000000).UTC(), *out.User.UserCreateDate)

	require.NoError(t, convert.DecodeResponse([]byte(`{"User": {"UserStatus": "CONFIRMED"}}`), out))
	status, ok := out.User.UserStatus.Known()
	assert.True(t, ok)
	assert.Equal(t, client.UserStatusTypeConfirmed, status)
}

func TestDecodeResponseTimestampForms(t *testing.T) {
	out := &client.DeviceType{}
	require.NoError(t, convert.DecodeResponse([]byte(`{"DeviceCreateDate": "2023-11-14T22:13:20Z", "DeviceLastModifiedDate": 1700000000}`), out))
	assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), out.DeviceCreateDate.UTC())
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), *out.DeviceLastModifiedDate)

	err := convert.DecodeResponse([]byte(`{"DeviceCreateDate": true}`), &client.DeviceType{})
	assert.Error(t, err)
}

func TestDecodeResponseIgnoresUnknownMembers(t *testing.T) {
	out := &client.VerifySoftwareTokenOutput{}
	require.NoError(t, convert.DecodeResponse([]byte(`{"Status": "SUCCESS", "NewMember": {"x": 1}}`), out))
	assert.Equal(t, client.VerifySoftwareTokenResponseTypeSuccess, out.Status)
}

func TestEncodeRequest(t *testing.T) {
	in := &client.AdminCreateUserInput{
		UserPoolID:             "us-east-1_abc",
		Username:               "alice",
		MessageAction:          client.MessageActionTypeSuppress,
		DesiredDeliveryMediums: []client.DeliveryMediumType{client.DeliveryMediumTypeEmail, client.DeliveryMediumTypeSMS},
		UserAttributes:         []client.AttributeType{{Name: "email", Value: "alice@example.com"}},
	}

	data, err := convert.EncodeRequest(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"UserPoolId": "us-east-1_abc",
		"Username": "alice",
		"MessageAction": "SUPPRESS",
		"DesiredDeliveryMediums": ["EMAIL", "SMS"],
		"UserAttributes": [{"Name": "email", "Value": "alice@example.com"}]
	}`, string(data))
}

func TestEncodeRequestRejectsUndefinedEnum(t *testing.T) {
	in := &client.InitiateAuthInput{
		AuthFlow: client.AuthFlowType("PASSKEY"),
		ClientID: "client",
	}

	_, err := convert.EncodeRequest(in)
	require.Error(t, err)
	assert.True(t, enum.IsUnrecognizedValue(err))
	assert.Contains(t, err.Error(), "encoding InitiateAuthInput")
}

func TestEncodeRequestValidates(t *testing.T) {
	in := &client.SetRiskConfigurationInput{
		AccountTakeoverRiskConfiguration: &client.AccountTakeoverRiskConfigurationType{
			Actions: &client.AccountTakeoverActionsType{
				HighAction: &client.AccountTakeoverActionType{Notify: true},
			},
		},
	}

	_, err := convert.EncodeRequest(in)
	require.Error(t, err)

	var invalidParams smithy.InvalidParamsError
	require.ErrorAs(t, err, &invalidParams)
	assert.Equal(t, 2, invalidParams.Len())
	assert.Contains(t, err.Error(), "UserPoolId")
	assert.Contains(t, err.Error(), "AccountTakeoverRiskConfiguration.Actions.HighAction.EventAction")
}

func TestEncodeRequestTimestamps(t *testing.T) {
	created := time.Unix(1700000000, 0).UTC()
	data, err := convert.EncodeRequest(&client.DeviceType{DeviceKey: "k", DeviceCreateDate: &created})
	require.NoError(t, err)
	assert.JSONEq(t, `{"DeviceKey": "k", "DeviceCreateDate": 1700000000}`, string(data))
}

func TestDecodeYAML(t *testing.T) {
	doc := `
AccountTakeoverRiskConfiguration:
  Actions:
    LowAction:
      Notify: false
      EventAction: NO_ACTION
    HighAction:
      Notify: true
      EventAction: BLOCK
CompromisedCredentialsRiskConfiguration:
  EventFilter: [SIGN_IN, SIGN_UP]
  Actions:
    EventAction: BLOCK
`
	out := &client.RiskConfigurationType{}
	require.NoError(t, convert.DecodeYAML([]byte(doc), out))
	assert.Equal(t, client.AccountTakeoverEventActionTypeBlock, out.AccountTakeoverRiskConfiguration.Actions.HighAction.EventAction)
	assert.Equal(t, client.AccountTakeoverEventActionTypeNoAction, out.AccountTakeoverRiskConfiguration.Actions.LowAction.EventAction)
	assert.Equal(t, []client.EventFilterType{client.EventFilterTypeSignIn, client.EventFilterTypeSignUp}, out.CompromisedCredentialsRiskConfiguration.EventFilter)

	err := convert.DecodeYAML([]byte("CompromisedCredentialsRiskConfiguration:\n  Actions:\n    EventAction: block\n"), &client.RiskConfigurationType{})
	value, ok := enum.UnrecognizedValue(err)
	assert.True(t, ok)
	assert.Equal(t, "block", value)
}

func TestDecodeMap(t *testing.T) {
	input := map[string]interface{}{
		"ProviderName": "corp",
		"ProviderType": "OIDC",
		"ProviderDetails": map[string]interface{}{
			"client_id": "abc",
		},
		"IdpIdentifiers": []interface{}{"corp.example.com"},
		"CreationDate":   float64(1700000000),
	}

	out := &client.IdentityProviderType{}
	require.NoError(t, convert.DecodeMap(input, out))
	providerType, ok := out.ProviderType.Known()
	assert.True(t, ok)
	assert.Equal(t, client.IdentityProviderTypeTypeOIDC, providerType)
	assert.Equal(t, "abc", out.ProviderDetails["client_id"])
	assert.Equal(t, []string{"corp.example.com"}, out.IdpIdentifiers)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), *out.CreationDate)
}

func TestDecodeMapStrictEnum(t *testing.T) {
	input := map[string]interface{}{
		"Status": "Done",
	}

	err := convert.DecodeMap(input, &client.UserImportJobType{})
	require.Error(t, err)
	assert.True(t, enum.IsUnrecognizedValue(err))

	err = convert.DecodeMap(map[string]interface{}{"Status": ""}, &client.UserImportJobType{})
	assert.True(t, enum.IsEmptyInput(err))
}

func TestToMap(t *testing.T) {
	m, err := convert.ToMap(&client.EventRiskType{
		RiskDecision: client.RiskDecisionTypeAccountTakeover,
		RiskLevel:    client.RiskLevelTypeHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"RiskDecision": "AccountTakeover", "RiskLevel": "High"}, m)

	back := &client.EventRiskType{}
	require.NoError(t, convert.DecodeMap(m, back))
	assert.Equal(t, client.RiskLevelTypeHigh, back.RiskLevel)
}

func TestDecodeError(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		code    string
		message string
		typed   bool
	}{
		{
			name:    "namespaced type",
			body:    `{"__type": "com.amazonaws.cognito.identity.idp#UserNotFoundException", "message": "User does not exist."}`,
			code:    "UserNotFoundException",
			message: "User does not exist.",
			typed:   true,
		},
		{
			name:    "url suffix",
			body:    `{"__type": "NotAuthorizedException:http://internal.amazon.com/coral/com.amazon.coral.validate/", "Message": "Incorrect username or password."}`,
			code:    "NotAuthorizedException",
			message: "Incorrect username or password.",
			typed:   true,
		},
		{
			name:    "unknown code",
			body:    `{"code": "LimitExceededException", "message": "slow down"}`,
			code:    "LimitExceededException",
			message: "slow down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := convert.DecodeError([]byte(tt.body), client.NewAPIError)
			var apiErr smithy.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.code, apiErr.ErrorCode())
			assert.Equal(t, tt.message, apiErr.ErrorMessage())

			_, generic := err.(*smithy.GenericAPIError)
			assert.Equal(t, !tt.typed, generic)
		})
	}

	err := convert.DecodeError([]byte(`{"message": "no code"}`), client.NewAPIError)
	assert.EqualError(t, err, "error response has no error code")

	err = convert.DecodeError([]byte(`not json`), client.NewAPIError)
	assert.Error(t, err)
}

func TestDecodeErrorFault(t *testing.T) {
	err := convert.DecodeError([]byte(`{"__type": "InternalErrorException", "message": "boom"}`), client.NewAPIError)

	var internal *client.InternalErrorException
	require.ErrorAs(t, err, &internal)
	assert.Equal(t, smithy.FaultServer, internal.ErrorFault())
	assert.EqualError(t, err, "InternalErrorException: boom")
}

func TestEncodeRequestKeepsNestedEnumErrors(t *testing.T) {
	in := &client.SetRiskConfigurationInput{
		UserPoolID: "us-east-1_abc",
		AccountTakeoverRiskConfiguration: &client.AccountTakeoverRiskConfigurationType{
			Actions: &client.AccountTakeoverActionsType{
				HighAction: &client.AccountTakeoverActionType{
					Notify:      true,
					EventAction: client.AccountTakeoverEventActionType("MAYBE"),
				},
			},
		},
	}

	require.NoError(t, convert.ValidateRequest(in))

	_, err := convert.EncodeRequest(in)
	value, ok := enum.UnrecognizedValue(err)
	assert.True(t, ok)
	assert.Equal(t, "MAYBE", value)
	assert.EqualError(t, err, "encoding SetRiskConfigurationInput: unrecognized value: MAYBE")

	_, err = convert.ToMap(in)
	assert.True(t, enum.IsUnrecognizedValue(err))
}

func TestEncodeRequestTimestampPrecision(t *testing.T) {
	created := time.Unix(1700000000, 250000000).UTC()
	data, err := convert.EncodeRequest(&client.DeviceType{DeviceKey: "k", DeviceCreateDate: &created})
	require.NoError(t, err)
	assert.JSONEq(t, `{"DeviceKey": "k", "DeviceCreateDate": 1700000000.25}`, string(data))

	back := &client.DeviceType{}
	require.NoError(t, convert.DecodeResponse(data, back))
	assert.Equal(t, created, *back.DeviceCreateDate)
	assert.Nil(t, back.DeviceLastModifiedDate)
}

func TestDecodeResponseRejectsTrailingData(t *testing.T) {
	err := convert.DecodeResponse([]byte(`{"Status": "SUCCESS"} garbage`), &client.VerifySoftwareTokenOutput{})
	assert.EqualError(t, err, "decoding VerifySoftwareTokenOutput: unexpected data after the value")

	require.NoError(t, convert.DecodeResponse([]byte("{\"Status\": \"SUCCESS\"}\n  "), &client.VerifySoftwareTokenOutput{}))
}
