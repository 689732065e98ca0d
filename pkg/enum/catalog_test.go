package enum_test

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/rancher/idp-client/pkg/enum"
	"github.com/rancher/idp-client/pkg/enum/enumtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type riskAction string

const (
	riskActionBlock    riskAction = "BLOCK"
	riskActionNoAction riskAction = "NO_ACTION"
)

var riskActionCatalog = enum.New[riskAction]("RiskAction",
	enum.Entry[riskAction]{Name: "Block", Value: riskActionBlock},
	enum.Entry[riskAction]{Name: "NoAction", Value: riskActionNoAction},
)

func (riskAction) Catalog() *enum.Catalog[riskAction] {
	return riskActionCatalog
}

func TestCatalogContract(t *testing.T) {
	enumtest.RunCatalogTests(t, riskActionCatalog)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		want         riskAction
		empty        bool
		unrecognized bool
		message      string
	}{
		{name: "exact match", input: "BLOCK", want: riskActionBlock},
		{name: "second value", input: "NO_ACTION", want: riskActionNoAction},
		{name: "lower case", input: "block", unrecognized: true, message: "unrecognized value: block"},
		{name: "empty", input: "", empty: true, message: "empty input"},
		{name: "unknown", input: "MAYBE", unrecognized: true, message: "unrecognized value: MAYBE"},
		{name: "leading space", input: " BLOCK", unrecognized: true, message: "unrecognized value:  BLOCK"},
		{name: "prefix", input: "NO_", unrecognized: true, message: "unrecognized value: NO_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := riskActionCatalog.Parse(tt.input)
			if !tt.empty && !tt.unrecognized {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, tt.empty, enum.IsEmptyInput(err))
			assert.Equal(t, tt.unrecognized, enum.IsUnrecognizedValue(err))
			assert.Equal(t, riskAction(""), got)
		})
	}
}

func TestCanonicalString(t *testing.T) {
	assert.Equal(t, "BLOCK", riskActionCatalog.CanonicalString(riskActionBlock))
	assert.Equal(t, "NO_ACTION", riskActionCatalog.CanonicalString(riskActionNoAction))
}

func TestParsePointer(t *testing.T) {
	s := "NO_ACTION"
	got, err := riskActionCatalog.ParsePointer(&s)
	require.NoError(t, err)
	assert.Equal(t, riskActionNoAction, got)

	_, err = riskActionCatalog.ParsePointer(nil)
	assert.True(t, enum.IsEmptyInput(err))
}

func TestEncode(t *testing.T) {
	s, err := riskActionCatalog.Encode(riskActionBlock)
	require.NoError(t, err)
	assert.Equal(t, "BLOCK", s)

	_, err = riskActionCatalog.Encode("")
	assert.ErrorIs(t, err, enum.ErrEmptyInput)

	_, err = riskActionCatalog.Encode(riskAction("DROP"))
	assert.ErrorIs(t, err, enum.ErrUnrecognizedValue)
	assert.EqualError(t, err, "unrecognized value: DROP")
}

func TestErrorsSurviveWrapping(t *testing.T) {
	_, err := riskActionCatalog.Parse("MAYBE")
	wrapped := errors.Wrap(fmt.Errorf("decoding eventAction: %w", err), "RiskConfigurationType")

	assert.True(t, enum.IsUnrecognizedValue(wrapped))
	assert.ErrorIs(t, wrapped, enum.ErrUnrecognizedValue)
	value, ok := enum.UnrecognizedValue(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "MAYBE", value)

	var typed *enum.UnrecognizedValueError
	require.ErrorAs(t, wrapped, &typed)
	assert.Equal(t, "RiskAction", typed.Type)
}

func TestSymbolsAndOrder(t *testing.T) {
	assert.Equal(t, []riskAction{riskActionBlock, riskActionNoAction}, riskActionCatalog.Values())
	assert.Equal(t, []string{"BLOCK", "NO_ACTION"}, riskActionCatalog.Strings())
	assert.Equal(t, []string{"Block", "NoAction"}, riskActionCatalog.Symbols())

	name, ok := riskActionCatalog.Symbol(riskActionNoAction)
	assert.True(t, ok)
	assert.Equal(t, "NoAction", name)

	_, ok = riskActionCatalog.Symbol("MAYBE")
	assert.False(t, ok)
}

func TestValuesReturnsCopy(t *testing.T) {
	values := riskActionCatalog.Values()
	values[0] = "MUTATED"
	entries := riskActionCatalog.Entries()
	entries[0].Value = "MUTATED"

	assert.Equal(t, riskActionBlock, riskActionCatalog.Values()[0])
	assert.True(t, riskActionCatalog.Contains(riskActionBlock))
	assert.False(t, riskActionCatalog.Contains("MUTATED"))
}

func TestVocabulary(t *testing.T) {
	var v enum.Vocabulary = riskActionCatalog
	assert.Equal(t, "RiskAction", v.TypeName())

	s, err := v.ParseString("BLOCK")
	require.NoError(t, err)
	assert.Equal(t, "BLOCK", s)

	_, err = v.ParseString("Block")
	assert.True(t, enum.IsUnrecognizedValue(err))
}

func TestNewRejectsInvalidDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		entries  []enum.Entry[riskAction]
	}{
		{name: "no type name", typeName: "", entries: []enum.Entry[riskAction]{{Name: "A", Value: "A"}}},
		{name: "no values", typeName: "Empty"},
		{name: "empty wire string", typeName: "T", entries: []enum.Entry[riskAction]{{Name: "A", Value: ""}}},
		{name: "empty symbol", typeName: "T", entries: []enum.Entry[riskAction]{{Name: "", Value: "A"}}},
		{name: "duplicate wire string", typeName: "T", entries: []enum.Entry[riskAction]{{Name: "A", Value: "X"}, {Name: "B", Value: "X"}}},
		{name: "duplicate symbol", typeName: "T", entries: []enum.Entry[riskAction]{{Name: "A", Value: "X"}, {Name: "A", Value: "Y"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() {
				enum.New(tt.typeName, tt.entries...)
			})
		})
	}
}

func TestCaseVariantsMayBeDistinctValues(t *testing.T) {
	type mode string
	c := enum.New[mode]("Mode",
		enum.Entry[mode]{Name: "Upper", Value: "ON"},
		enum.Entry[mode]{Name: "Lower", Value: "on"},
	)
	enumtest.RunCatalogTests(t, c)

	got, err := c.Parse("on")
	require.NoError(t, err)
	assert.Equal(t, mode("on"), got)

	_, err = c.Parse("On")
	assert.True(t, enum.IsUnrecognizedValue(err))
}

func TestConcurrentParse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v, err := riskActionCatalog.Parse("BLOCK")
				assert.NoError(t, err)
				assert.Equal(t, riskActionBlock, v)
			}
		}()
	}
	wg.Wait()
}

func TestValue(t *testing.T) {
	known := enum.Of(riskActionBlock)
	got, ok := known.Known()
	assert.True(t, ok)
	assert.Equal(t, riskActionBlock, got)

	raw := enum.Raw[riskAction]("QUARANTINE")
	_, ok = raw.Known()
	assert.False(t, ok)
	assert.Equal(t, "QUARANTINE", raw.String())

	promoted := enum.Raw[riskAction]("NO_ACTION")
	assert.True(t, promoted.IsKnown())
	assert.Equal(t, enum.Of(riskActionNoAction), promoted)

	caseVariant := enum.Raw[riskAction]("no_action")
	assert.False(t, caseVariant.IsKnown())

	var zero enum.Value[riskAction]
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsKnown())
}

func TestValueJSON(t *testing.T) {
	type holder struct {
		Action enum.Value[riskAction] `json:"action,omitempty"`
	}

	data, err := json.Marshal(holder{Action: enum.Of(riskActionBlock)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"BLOCK"}`, string(data))

	data, err = json.Marshal(holder{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))

	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"action":"QUARANTINE"}`), &h))
	assert.Equal(t, "QUARANTINE", h.Action.String())
	assert.False(t, h.Action.IsKnown())

	require.NoError(t, json.Unmarshal([]byte(`{"action":"NO_ACTION"}`), &h))
	got, ok := h.Action.Known()
	assert.True(t, ok)
	assert.Equal(t, riskActionNoAction, got)

	err = json.Unmarshal([]byte(`{"action":""}`), &h)
	assert.True(t, enum.IsEmptyInput(err))
}
