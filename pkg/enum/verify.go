package enum

import (
	"fmt"
	"strings"
)

// Verify checks at runtime that a vocabulary honours the parse contract: every
// wire string round-trips, strings and symbols are unique, and empty, unknown
// and case-folded inputs are rejected. All violations are reported together.
func Verify(v Vocabulary) error {
	var problems []string
	strs := v.Strings()
	known := make(map[string]bool, len(strs))

	if len(strs) == 0 {
		problems = append(problems, "no values")
	}
	for _, s := range strs {
		if known[s] {
			problems = append(problems, fmt.Sprintf("duplicate wire string %q", s))
		}
		known[s] = true
		parsed, err := v.ParseString(s)
		switch {
		case err != nil:
			problems = append(problems, fmt.Sprintf("%q does not parse: %v", s, err))
		case parsed != s:
			problems = append(problems, fmt.Sprintf("%q parses to %q", s, parsed))
		}
	}

	symbols := map[string]bool{}
	for _, name := range v.Symbols() {
		if symbols[name] {
			problems = append(problems, fmt.Sprintf("duplicate symbol %s", name))
		}
		symbols[name] = true
	}

	if _, err := v.ParseString(""); !IsEmptyInput(err) {
		problems = append(problems, "empty input is not rejected as empty")
	}

	candidates := []string{unknownString(known)}
	for _, s := range strs {
		candidates = append(candidates, strings.ToLower(s), strings.ToUpper(s), " "+s, s+" ")
	}
	for _, candidate := range candidates {
		if known[candidate] {
			continue
		}
		if _, err := v.ParseString(candidate); !IsUnrecognizedValue(err) {
			problems = append(problems, fmt.Sprintf("%q is not rejected as unrecognized", candidate))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s: %s", v.TypeName(), strings.Join(problems, "; "))
	}
	return nil
}

func unknownString(known map[string]bool) string {
	s := "UNDEFINED"
	for known[s] {
		s += "_"
	}
	return s
}
