package awsconv

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	client "github.com/rancher/idp-client/pkg/client/generated/cognitoidp/v1"
	"github.com/rancher/idp-client/pkg/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSDK(t *testing.T) {
	flow, err := ToSDK[types.AuthFlowType](client.AuthFlowTypeUserSRPAuth)
	require.NoError(t, err)
	assert.Equal(t, types.AuthFlowTypeUserSrpAuth, flow)

	_, err = ToSDK[types.AuthFlowType](client.AuthFlowType("PASSKEY"))
	assert.True(t, enum.IsUnrecognizedValue(err))

	_, err = ToSDK[types.AuthFlowType](client.AuthFlowType(""))
	assert.True(t, enum.IsEmptyInput(err))
}

func TestFromSDK(t *testing.T) {
	medium, err := FromSDK[client.DeliveryMediumType](types.DeliveryMediumTypeEmail)
	require.NoError(t, err)
	assert.Equal(t, client.DeliveryMediumTypeEmail, medium)

	_, err = FromSDK[client.DeliveryMediumType](types.DeliveryMediumType("email"))
	value, ok := enum.UnrecognizedValue(err)
	assert.True(t, ok)
	assert.Equal(t, "email", value)

	_, err = FromSDK[client.DeliveryMediumType](types.DeliveryMediumType(""))
	assert.True(t, enum.IsEmptyInput(err))
}

func TestListConversions(t *testing.T) {
	sdk, err := ListToSDK[types.ExplicitAuthFlowsType]([]client.ExplicitAuthFlowsType{
		client.ExplicitAuthFlowsTypeAllowUserSRPAuth,
		client.ExplicitAuthFlowsTypeAllowRefreshTokenAuth,
	})
	require.NoError(t, err)
	assert.Equal(t, []types.ExplicitAuthFlowsType{
		types.ExplicitAuthFlowsTypeAllowUserSrpAuth,
		types.ExplicitAuthFlowsTypeAllowRefreshTokenAuth,
	}, sdk)

	back, err := ListFromSDK[client.ExplicitAuthFlowsType](sdk)
	require.NoError(t, err)
	assert.Equal(t, []client.ExplicitAuthFlowsType{
		client.ExplicitAuthFlowsTypeAllowUserSRPAuth,
		client.ExplicitAuthFlowsTypeAllowRefreshTokenAuth,
	}, back)

	none, err := ListToSDK[types.ExplicitAuthFlowsType]([]client.ExplicitAuthFlowsType(nil))
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = ListFromSDK[client.ExplicitAuthFlowsType]([]types.ExplicitAuthFlowsType{"ALLOW_USER_SRP_AUTH", "ALLOW_EVERYTHING"})
	assert.True(t, enum.IsUnrecognizedValue(err))
}

func TestAttributes(t *testing.T) {
	sdk := AttributesToSDK([]client.AttributeType{
		{Name: "email", Value: "alice@example.com"},
		{Name: "nickname"},
	})
	require.Len(t, sdk, 2)
	assert.Equal(t, "email", aws.ToString(sdk[0].Name))
	assert.Equal(t, "alice@example.com", aws.ToString(sdk[0].Value))
	assert.Nil(t, sdk[1].Value)

	assert.Equal(t, []client.AttributeType{
		{Name: "email", Value: "alice@example.com"},
		{Name: "nickname"},
	}, AttributesFromSDK(sdk))
	assert.Nil(t, AttributesFromSDK(nil))
}

func TestUserFromSDK(t *testing.T) {
	created := time.Unix(1700000000, 0).UTC()
	user, err := UserFromSDK(&types.UserType{
		Username:       aws.String("alice"),
		Enabled:        true,
		UserCreateDate: &created,
		UserStatus:     types.UserStatusType("EXTERNAL_PROVIDER"),
		MFAOptions: []types.MFAOptionType{
			{AttributeName: aws.String("phone_number"), DeliveryMedium: types.DeliveryMediumTypeSms},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.Enabled)
	assert.Equal(t, &created, user.UserCreateDate)
	assert.False(t, user.UserStatus.IsKnown())
	assert.Equal(t, "EXTERNAL_PROVIDER", user.UserStatus.String())
	assert.Equal(t, []client.MFAOptionType{
		{AttributeName: "phone_number", DeliveryMedium: client.DeliveryMediumTypeSMS},
	}, user.MFAOptions)

	confirmed, err := UserFromSDK(&types.UserType{UserStatus: types.UserStatusTypeConfirmed})
	require.NoError(t, err)
	status, ok := confirmed.UserStatus.Known()
	assert.True(t, ok)
	assert.Equal(t, client.UserStatusTypeConfirmed, status)

	none, err := UserFromSDK(nil)
	assert.NoError(t, err)
	assert.Nil(t, none)
}

func TestUserFromSDKRejectsUnknownDeliveryMedium(t *testing.T) {
	user, err := UserFromSDK(&types.UserType{
		Username: aws.String("alice"),
		MFAOptions: []types.MFAOptionType{
			{AttributeName: aws.String("phone_number"), DeliveryMedium: types.DeliveryMediumType("VOICE")},
		},
	})

	assert.Nil(t, user)
	value, ok := enum.UnrecognizedValue(err)
	assert.True(t, ok)
	assert.Equal(t, "VOICE", value)
	assert.EqualError(t, err, "user alice: MFA option phone_number: unrecognized value: VOICE")
}

func TestEveryCatalogHasSDKCounterpart(t *testing.T) {
	for name := range client.Enums {
		_, ok := SDKValues[name]
		assert.True(t, ok, "no SDK enumeration registered for %s", name)
	}
}

func TestLongStandingCatalogsAreKnownToSDK(t *testing.T) {
	stable := map[string]bool{
		"AuthFlowType":       true,
		"DeliveryMediumType": true,
		"DomainStatusType":   true,
		"MessageActionType":  true,
		"RiskLevelType":      true,
		"UserStatusType":     true,
	}

	drifts := Compare(client.Enums)
	require.Len(t, drifts, len(client.Enums))
	for _, d := range drifts {
		if stable[d.Type] {
			assert.Empty(t, d.Missing, "%s defines values the SDK does not know", d.Type)
		}
	}
}

func TestDiff(t *testing.T) {
	d := diff("RiskLevelType", []string{"Low", "Medium", "High"}, []string{"Low", "High", "Critical"})
	assert.Equal(t, Drift{Type: "RiskLevelType", Missing: []string{"Medium"}, Added: []string{"Critical"}}, d)
	assert.False(t, d.Empty())
	assert.True(t, diff("RiskLevelType", []string{"Low"}, []string{"Low"}).Empty())
}

func TestCompareSkipsUnknownTypes(t *testing.T) {
	drifts := Compare(map[string]enum.Vocabulary{"NotAnSDKType": client.Enums["RiskLevelType"]})
	assert.Empty(t, drifts)
}
