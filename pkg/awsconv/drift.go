package awsconv

import (
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/rancher/idp-client/pkg/enum"
)

// SDKValues lists the wire strings the linked SDK knows for each enumeration,
// keyed by the catalog type name.
var SDKValues = map[string]func() []string{
	"AccountTakeoverEventActionType":        sdkStrings(types.AccountTakeoverEventActionType("").Values),
	"AdvancedSecurityModeType":              sdkStrings(types.AdvancedSecurityModeType("").Values),
	"AliasAttributeType":                    sdkStrings(types.AliasAttributeType("").Values),
	"AttributeDataType":                     sdkStrings(types.AttributeDataType("").Values),
	"AuthFlowType":                          sdkStrings(types.AuthFlowType("").Values),
	"ChallengeName":                         sdkStrings(types.ChallengeName("").Values),
	"ChallengeNameType":                     sdkStrings(types.ChallengeNameType("").Values),
	"ChallengeResponse":                     sdkStrings(types.ChallengeResponse("").Values),
	"CompromisedCredentialsEventActionType": sdkStrings(types.CompromisedCredentialsEventActionType("").Values),
	"DefaultEmailOptionType":                sdkStrings(types.DefaultEmailOptionType("").Values),
	"DeliveryMediumType":                    sdkStrings(types.DeliveryMediumType("").Values),
	"DeviceRememberedStatusType":            sdkStrings(types.DeviceRememberedStatusType("").Values),
	"DomainStatusType":                      sdkStrings(types.DomainStatusType("").Values),
	"EmailSendingAccountType":               sdkStrings(types.EmailSendingAccountType("").Values),
	"EventFilterType":                       sdkStrings(types.EventFilterType("").Values),
	"EventResponseType":                     sdkStrings(types.EventResponseType("").Values),
	"EventType":                             sdkStrings(types.EventType("").Values),
	"ExplicitAuthFlowsType":                 sdkStrings(types.ExplicitAuthFlowsType("").Values),
	"FeedbackValueType":                     sdkStrings(types.FeedbackValueType("").Values),
	"IdentityProviderTypeType":              sdkStrings(types.IdentityProviderTypeType("").Values),
	"MessageActionType":                     sdkStrings(types.MessageActionType("").Values),
	"OAuthFlowType":                         sdkStrings(types.OAuthFlowType("").Values),
	"PreventUserExistenceErrorTypes":        sdkStrings(types.PreventUserExistenceErrorTypes("").Values),
	"RecoveryOptionNameType":                sdkStrings(types.RecoveryOptionNameType("").Values),
	"RiskDecisionType":                      sdkStrings(types.RiskDecisionType("").Values),
	"RiskLevelType":                         sdkStrings(types.RiskLevelType("").Values),
	"StatusType":                            sdkStrings(types.StatusType("").Values),
	"TimeUnitsType":                         sdkStrings(types.TimeUnitsType("").Values),
	"UserImportJobStatusType":               sdkStrings(types.UserImportJobStatusType("").Values),
	"UserPoolMfaType":                       sdkStrings(types.UserPoolMfaType("").Values),
	"UserStatusType":                        sdkStrings(types.UserStatusType("").Values),
	"UsernameAttributeType":                 sdkStrings(types.UsernameAttributeType("").Values),
	"VerifiedAttributeType":                 sdkStrings(types.VerifiedAttributeType("").Values),
	"VerifySoftwareTokenResponseType":       sdkStrings(types.VerifySoftwareTokenResponseType("").Values),
}

// Drift is the difference between a catalog and the SDK's view of the same
// enumeration. Missing values are defined here but unknown to the SDK; Added
// values are ones the service has grown that this catalog lacks.
type Drift struct {
	Type    string
	Missing []string
	Added   []string
}

func (d Drift) Empty() bool {
	return len(d.Missing) == 0 && len(d.Added) == 0
}

// Compare reports the drift for every vocabulary that has an SDK counterpart,
// sorted by type name. Vocabularies without one are skipped.
func Compare(vocabularies map[string]enum.Vocabulary) []Drift {
	var result []Drift
	for name, vocabulary := range vocabularies {
		values, ok := SDKValues[name]
		if !ok {
			continue
		}
		result = append(result, diff(name, vocabulary.Strings(), values()))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Type < result[j].Type
	})
	return result
}

func diff(name string, ours, theirs []string) Drift {
	d := Drift{Type: name}
	known := map[string]bool{}
	for _, s := range theirs {
		known[s] = true
	}
	defined := map[string]bool{}
	for _, s := range ours {
		defined[s] = true
		if !known[s] {
			d.Missing = append(d.Missing, s)
		}
	}
	for _, s := range theirs {
		if !defined[s] {
			d.Added = append(d.Added, s)
		}
	}
	return d
}

func sdkStrings[S ~string](values func() []S) func() []string {
	return func() []string {
		vs := values()
		result := make([]string, 0, len(vs))
		for _, v := range vs {
			result = append(result, string(v))
		}
		return result
	}
}
