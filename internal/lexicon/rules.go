// Package lexicon turns raw dictionary text into learner-friendly material: simplified
// meanings, ELI5 explanations, example sentences, word forms and usage patterns.
//
// Everything here is a pure string rewrite driven by ordered rule tables.
package lexicon

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxMeaningLength is the length above which a simplified meaning is cut to its first sentence
const maxMeaningLength = 120

// Rule replaces every case-insensitive, whole-word match of Pattern with Replacement
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply runs the rule over text
func (r Rule) Apply(text string) string {
	return r.Pattern.ReplaceAllLiteralString(text, r.Replacement)
}

// newRule builds a Rule matching any of the given phrases as whole words
func newRule(replacement string, phrases ...string) Rule {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return Rule{
		Pattern:     regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`),
		Replacement: replacement,
	}
}

// SimplifyRules is the ordered substitution table used by Simplify
var SimplifyRules = []Rule{
	newRule("about", "pertaining to", "relating to", "characterized by"),
	newRule("use", "utilize", "employ"),
	newRule("start", "commence", "initiate"),
	newRule("end", "terminate", "conclude"),
	newRule("enough", "sufficient"),
	newRule("then", "subsequently"),
	newRule("about", "approximately"),
	newRule("many", "numerous"),
	newRule("get", "obtain", "acquire"),
	newRule("have", "possess"),
}

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// Rewrite applies rules to text in order
func Rewrite(text string, rules []Rule) string {
	for _, r := range rules {
		text = r.Apply(text)
	}
	return text
}

// Simplify rewrites a dictionary definition into plainer words
//
// When the rewritten text is longer than 120 characters only its first sentence is kept,
// terminated by a period.
func Simplify(definition string) string {
	simple := Rewrite(definition, SimplifyRules)
	if utf8.RuneCountInString(simple) > maxMeaningLength {
		first := sentenceEnd.Split(simple, 2)[0]
		simple = strings.TrimSpace(first) + "."
	}
	return simple
}
