package entities

import (
	"errors"
	"fmt"
	"strings"
)

// AccuracyRule is the policy governing which item-attribute combinations a
// carton may contain and in what quantities.

type AccuracyRule string

const (
	AccuracyRuleSolid AccuracyRule = "SOLID"
	AccuracyRuleRatio AccuracyRule = "RATIO"
	AccuracyRuleMix   AccuracyRule = "MIX"
)

var ErrInvalidAccuracyRule = errors.New("invalid accuracy rule")

// ParseAccuracyRule accepts only the closed SOLID/RATIO/MIX set.
func ParseAccuracyRule(v string) (AccuracyRule, error) {
	switch AccuracyRule(strings.ToUpper(strings.TrimSpace(v))) {
	case AccuracyRuleSolid:
		return AccuracyRuleSolid, nil
	case AccuracyRuleRatio:
		return AccuracyRuleRatio, nil
	case AccuracyRuleMix:
		return AccuracyRuleMix, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAccuracyRule, v)
}

// AccuracyRuleOrDefault resolves a configured rule id, falling back to SOLID
// for empty or unrecognized values. The second return reports whether the
// fallback was taken, so callers can log the bad configuration.
func AccuracyRuleOrDefault(v string) (AccuracyRule, bool) {
	if strings.TrimSpace(v) == "" {
		return AccuracyRuleSolid, false
	}
	rule, err := ParseAccuracyRule(v)
	if err != nil {
		return AccuracyRuleSolid, true
	}
	return rule, false
}
