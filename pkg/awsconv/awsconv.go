// Package awsconv moves values between the generated client models and the
// aws-sdk-go-v2 Cognito types.
package awsconv

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/pkg/errors"
	client "github.com/rancher/idp-client/pkg/client/generated/cognitoidp/v1"
	"github.com/rancher/idp-client/pkg/enum"
)

// ToSDK encodes v as the SDK string type S. The zero value and values outside
// the catalog are rejected the same way the request marshaller rejects them.
func ToSDK[S ~string, T enum.Enum[T]](v T) (S, error) {
	s, err := v.Catalog().Encode(v)
	if err != nil {
		return "", err
	}
	return S(s), nil
}

// FromSDK parses an SDK value strictly. Values the SDK knows about but this
// catalog does not come back as unrecognized-value errors.
func FromSDK[T enum.Enum[T], S ~string](s S) (T, error) {
	var zero T
	return zero.Catalog().Parse(string(s))
}

// ValueFromSDK keeps an SDK value for a permissive field, known or not.
func ValueFromSDK[T enum.Enum[T], S ~string](s S) enum.Value[T] {
	return enum.Raw[T](string(s))
}

func ListToSDK[S ~string, T enum.Enum[T]](values []T) ([]S, error) {
	if values == nil {
		return nil, nil
	}
	result := make([]S, 0, len(values))
	for _, v := range values {
		s, err := ToSDK[S](v)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

func ListFromSDK[T enum.Enum[T], S ~string](values []S) ([]T, error) {
	if values == nil {
		return nil, nil
	}
	result := make([]T, 0, len(values))
	for _, s := range values {
		v, err := FromSDK[T](s)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func AttributesToSDK(attrs []client.AttributeType) []types.AttributeType {
	if attrs == nil {
		return nil
	}
	result := make([]types.AttributeType, 0, len(attrs))
	for _, attr := range attrs {
		sdk := types.AttributeType{Name: aws.String(attr.Name)}
		if attr.Value != "" {
			sdk.Value = aws.String(attr.Value)
		}
		result = append(result, sdk)
	}
	return result
}

func AttributesFromSDK(attrs []types.AttributeType) []client.AttributeType {
	if attrs == nil {
		return nil
	}
	result := make([]client.AttributeType, 0, len(attrs))
	for _, attr := range attrs {
		result = append(result, client.AttributeType{
			Name:  aws.ToString(attr.Name),
			Value: aws.ToString(attr.Value),
		})
	}
	return result
}

// UserFromSDK converts an SDK user record. The status is carried permissively
// because the service adds statuses over time; MFA delivery mediums are strict.
func UserFromSDK(user *types.UserType) (*client.UserType, error) {
	if user == nil {
		return nil, nil
	}
	result := &client.UserType{
		Username:             aws.ToString(user.Username),
		Attributes:           AttributesFromSDK(user.Attributes),
		UserCreateDate:       user.UserCreateDate,
		UserLastModifiedDate: user.UserLastModifiedDate,
		Enabled:              user.Enabled,
	}
	if user.UserStatus != "" {
		result.UserStatus = ValueFromSDK[client.UserStatusType](user.UserStatus)
	}
	for _, option := range user.MFAOptions {
		mfa := client.MFAOptionType{AttributeName: aws.ToString(option.AttributeName)}
		if option.DeliveryMedium != "" {
			medium, err := FromSDK[client.DeliveryMediumType](option.DeliveryMedium)
			if err != nil {
				return nil, errors.Wrapf(err, "user %s: MFA option %s", result.Username, mfa.AttributeName)
			}
			mfa.DeliveryMedium = medium
		}
		result.MFAOptions = append(result.MFAOptions, mfa)
	}
	return result, nil
}
