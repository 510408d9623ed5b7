// Package detectors holds the rule tables that map lexical features to
// pattern and vulnerability verdicts.
//
// Pattern rules are independent and additive: a source can match zero,
// one, or many of them, and no rule suppresses another. Vulnerability
// rules are the opposite: an ordered decision list where the first match
// wins. Both tables are built once and never mutated.
package detectors

import (
	"javacheck/internal/lexical"
	"javacheck/internal/models"
)

// PatternRule pairs a stable pattern key with a predicate over lexical
// features. Confidence is a fixed literal reflecting how keyword-specific
// the rule is, not a calibrated probability.
type PatternRule struct {
	Key        models.PatternKey
	Confidence float64
	Theory     string
	Match      func(f *lexical.Features) bool
}

var patternRules = buildPatternRules()

func buildPatternRules() []PatternRule {
	var rules []PatternRule
	rules = append(rules, creationalRules()...)
	rules = append(rules, structuralRules()...)
	rules = append(rules, behavioralRules()...)
	rules = append(rules, frameworkRules()...)
	return rules
}

// Patterns returns the full rule table in evaluation order.
func Patterns() []PatternRule {
	return patternRules
}

// DetectPatterns evaluates every pattern rule against the features and
// returns the matches in rule-table order. The result is deterministic
// and order-stable for identical input.
func DetectPatterns(f *lexical.Features) []models.PatternMatch {
	matches := make([]models.PatternMatch, 0)
	for _, rule := range patternRules {
		if rule.Match(f) {
			matches = append(matches, models.PatternMatch{
				Pattern:    rule.Key,
				Confidence: rule.Confidence,
				Theory:     rule.Theory,
			})
		}
	}
	return matches
}
