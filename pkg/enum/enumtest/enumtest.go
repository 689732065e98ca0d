// Package enumtest checks the behavioural contract of an enum.Catalog. Every
// generated enumeration runs it from its own tests.
package enumtest

import (
	"strings"
	"testing"
	"unicode"

	"github.com/rancher/idp-client/pkg/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunCatalogTests asserts round trip, encoding totality, uniqueness, strict and
// case-sensitive rejection, and empty/absent rejection for c.
func RunCatalogTests[T ~string](t *testing.T, c *enum.Catalog[T]) {
	t.Helper()
	require.NotNil(t, c)
	require.NotZero(t, c.Len(), "catalog %s has no values", c.TypeName())

	t.Run("round trip", func(t *testing.T) {
		for _, v := range c.Values() {
			parsed, err := c.Parse(c.CanonicalString(v))
			require.NoError(t, err)
			assert.Equal(t, v, parsed)
		}
	})

	t.Run("encoding is total", func(t *testing.T) {
		for _, v := range c.Values() {
			assert.NotEmpty(t, c.CanonicalString(v))
			encoded, err := c.Encode(v)
			require.NoError(t, err)
			assert.Equal(t, c.CanonicalString(v), encoded)
		}
	})

	t.Run("unique", func(t *testing.T) {
		seenWire := map[string]bool{}
		seenName := map[string]bool{}
		for _, e := range c.Entries() {
			assert.False(t, seenWire[string(e.Value)], "duplicate wire string %q", e.Value)
			assert.False(t, seenName[e.Name], "duplicate symbol %s", e.Name)
			seenWire[string(e.Value)] = true
			seenName[e.Name] = true
		}
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := c.Parse("")
		assert.ErrorIs(t, err, enum.ErrEmptyInput)
		assert.False(t, enum.IsUnrecognizedValue(err))

		_, err = c.ParsePointer(nil)
		assert.ErrorIs(t, err, enum.ErrEmptyInput)
	})

	t.Run("rejects unknown", func(t *testing.T) {
		unknown := Unknown(c)
		_, err := c.Parse(unknown)
		require.ErrorIs(t, err, enum.ErrUnrecognizedValue)
		assert.Contains(t, err.Error(), unknown)
		value, ok := enum.UnrecognizedValue(err)
		assert.True(t, ok)
		assert.Equal(t, unknown, value)
	})

	t.Run("case sensitive", func(t *testing.T) {
		for _, s := range c.Strings() {
			for _, variant := range CaseVariants(s) {
				if c.Contains(T(variant)) {
					continue
				}
				_, err := c.Parse(variant)
				assert.ErrorIs(t, err, enum.ErrUnrecognizedValue, "%q parsed as a case variant of %q", variant, s)
			}
		}
	})

	t.Run("no trimming", func(t *testing.T) {
		for _, s := range c.Strings() {
			_, err := c.Parse(" " + s)
			assert.ErrorIs(t, err, enum.ErrUnrecognizedValue)
			_, err = c.Parse(s + "\n")
			assert.ErrorIs(t, err, enum.ErrUnrecognizedValue)
		}
	})
}

// Unknown returns a non-empty string that is not a canonical string of c.
func Unknown[T ~string](c *enum.Catalog[T]) string {
	candidate := "UNRECOGNIZED"
	for c.Contains(T(candidate)) {
		candidate += "_"
	}
	return candidate
}

// CaseVariants returns the upper, lower and swapped-case forms of s that
// differ from s.
func CaseVariants(s string) []string {
	swapped := strings.Map(func(r rune) rune {
		if unicode.IsUpper(r) {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, s)

	var result []string
	seen := map[string]bool{s: true}
	for _, v := range []string{strings.ToUpper(s), strings.ToLower(s), swapped} {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
