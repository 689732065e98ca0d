package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type RiskDecisionType string

const (
	RiskDecisionTypeNoRisk          RiskDecisionType = "NoRisk"
	RiskDecisionTypeAccountTakeover RiskDecisionType = "AccountTakeover"
	RiskDecisionTypeBlock           RiskDecisionType = "Block"
)

var riskDecisionTypeCatalog = enum.New[RiskDecisionType]("RiskDecisionType",
	enum.Entry[RiskDecisionType]{Name: "NoRisk", Value: RiskDecisionTypeNoRisk},
	enum.Entry[RiskDecisionType]{Name: "AccountTakeover", Value: RiskDecisionTypeAccountTakeover},
	enum.Entry[RiskDecisionType]{Name: "Block", Value: RiskDecisionTypeBlock},
)

func ParseRiskDecisionType(s string) (RiskDecisionType, error) {
	return riskDecisionTypeCatalog.Parse(s)
}

func (RiskDecisionType) Catalog() *enum.Catalog[RiskDecisionType] {
	return riskDecisionTypeCatalog
}

func (RiskDecisionType) Values() []RiskDecisionType {
	return riskDecisionTypeCatalog.Values()
}

func (v RiskDecisionType) String() string {
	return riskDecisionTypeCatalog.CanonicalString(v)
}

func (v RiskDecisionType) MarshalText() ([]byte, error) {
	s, err := riskDecisionTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *RiskDecisionType) UnmarshalText(text []byte) error {
	parsed, err := riskDecisionTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
