package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type ChallengeNameType string

const (
	ChallengeNameTypeSMSMFA                 ChallengeNameType = "SMS_MFA"
	ChallengeNameTypeSoftwareTokenMFA       ChallengeNameType = "SOFTWARE_TOKEN_MFA"
	ChallengeNameTypeSelectMFAType          ChallengeNameType = "SELECT_MFA_TYPE"
	ChallengeNameTypeMFASetup               ChallengeNameType = "MFA_SETUP"
	ChallengeNameTypePasswordVerifier       ChallengeNameType = "PASSWORD_VERIFIER"
	ChallengeNameTypeCustomChallenge        ChallengeNameType = "CUSTOM_CHALLENGE"
	ChallengeNameTypeDeviceSRPAuth          ChallengeNameType = "DEVICE_SRP_AUTH"
	ChallengeNameTypeDevicePasswordVerifier ChallengeNameType = "DEVICE_PASSWORD_VERIFIER"
	ChallengeNameTypeAdminNoSRPAuth         ChallengeNameType = "ADMIN_NO_SRP_AUTH"
	ChallengeNameTypeNewPasswordRequired    ChallengeNameType = "NEW_PASSWORD_REQUIRED"
)

var challengeNameTypeCatalog = enum.New[ChallengeNameType]("ChallengeNameType",
	enum.Entry[ChallengeNameType]{Name: "SMSMFA", Value: ChallengeNameTypeSMSMFA},
	enum.Entry[ChallengeNameType]{Name: "SoftwareTokenMFA", Value: ChallengeNameTypeSoftwareTokenMFA},
	enum.Entry[ChallengeNameType]{Name: "SelectMFAType", Value: ChallengeNameTypeSelectMFAType},
	enum.Entry[ChallengeNameType]{Name: "MFASetup", Value: ChallengeNameTypeMFASetup},
	enum.Entry[ChallengeNameType]{Name: "PasswordVerifier", Value: ChallengeNameTypePasswordVerifier},
	enum.Entry[ChallengeNameType]{Name: "CustomChallenge", Value: ChallengeNameTypeCustomChallenge},
	enum.Entry[ChallengeNameType]{Name: "DeviceSRPAuth", Value: ChallengeNameTypeDeviceSRPAuth},
	enum.Entry[ChallengeNameType]{Name: "DevicePasswordVerifier", Value: ChallengeNameTypeDevicePasswordVerifier},
	enum.Entry[ChallengeNameType]{Name: "AdminNoSRPAuth", Value: ChallengeNameTypeAdminNoSRPAuth},
	enum.Entry[ChallengeNameType]{Name: "NewPasswordRequired", Value: ChallengeNameTypeNewPasswordRequired},
)

func ParseChallengeNameType(s string) (ChallengeNameType, error) {
	return challengeNameTypeCatalog.Parse(s)
}

func (ChallengeNameType) Catalog() *enum.Catalog[ChallengeNameType] {
	return challengeNameTypeCatalog
}

func (ChallengeNameType) Values() []ChallengeNameType {
	return challengeNameTypeCatalog.Values()
}

func (v ChallengeNameType) String() string {
	return challengeNameTypeCatalog.CanonicalString(v)
}

func (v ChallengeNameType) MarshalText() ([]byte, error) {
	s, err := challengeNameTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *ChallengeNameType) UnmarshalText(text []byte) error {
	parsed, err := challengeNameTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
