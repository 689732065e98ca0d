package enum_test

import (
	"testing"

	"github.com/rancher/idp-client/pkg/enum"
	"github.com/stretchr/testify/assert"
)

type lenientVocabulary struct {
	enum.Vocabulary
}

func (l lenientVocabulary) ParseString(s string) (string, error) {
	if s == "block" {
		return "BLOCK", nil
	}
	return l.Vocabulary.ParseString(s)
}

func TestVerify(t *testing.T) {
	assert.NoError(t, enum.Verify(riskActionCatalog))
}

func TestVerifyReportsCaseFolding(t *testing.T) {
	err := enum.Verify(lenientVocabulary{riskActionCatalog})
	assert.EqualError(t, err, `RiskAction: "block" is not rejected as unrecognized`)
}
