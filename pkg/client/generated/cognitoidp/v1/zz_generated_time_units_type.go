package client

import (
	"github.com/rancher/idp-client/pkg/enum"
)

type TimeUnitsType string

const (
	TimeUnitsTypeSeconds TimeUnitsType = "seconds"
	TimeUnitsTypeMinutes TimeUnitsType = "minutes"
	TimeUnitsTypeHours   TimeUnitsType = "hours"
	TimeUnitsTypeDays    TimeUnitsType = "days"
)

var timeUnitsTypeCatalog = enum.New[TimeUnitsType]("TimeUnitsType",
	enum.Entry[TimeUnitsType]{Name: "Seconds", Value: TimeUnitsTypeSeconds},
	enum.Entry[TimeUnitsType]{Name: "Minutes", Value: TimeUnitsTypeMinutes},
	enum.Entry[TimeUnitsType]{Name: "Hours", Value: TimeUnitsTypeHours},
	enum.Entry[TimeUnitsType]{Name: "Days", Value: TimeUnitsTypeDays},
)

func ParseTimeUnitsType(s string) (TimeUnitsType, error) {
	return timeUnitsTypeCatalog.Parse(s)
}

func (TimeUnitsType) Catalog() *enum.Catalog[TimeUnitsType] {
	return timeUnitsTypeCatalog
}

func (TimeUnitsType) Values() []TimeUnitsType {
	return timeUnitsTypeCatalog.Values()
}

func (v TimeUnitsType) String() string {
	return timeUnitsTypeCatalog.CanonicalString(v)
}

func (v TimeUnitsType) MarshalText() ([]byte, error) {
	s, err := timeUnitsTypeCatalog.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *TimeUnitsType) UnmarshalText(text []byte) error {
	parsed, err := timeUnitsTypeCatalog.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
