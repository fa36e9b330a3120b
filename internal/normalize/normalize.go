// Package normalize cleans raw bank descriptions into the title-cased form the
// rule tables are written in.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultPatterns strips boilerplate that Canadian banks inject into
// descriptions. Applied in order; each pattern sees the previous output.
var DefaultPatterns = []string{
	`(C-)?IDP PURCHASE( )?-( )?[0-9]{4}`,
	`VISA DEBIT (PUR|REF)-[0-9]{4}`,
	`WWWINTERAC PUR [0-9]{4}`,
	`INTERAC E-TRF- [0-9]{4}`,
	`[0-9]* ~ Internet Withdrawal`,
	`[^ ]*  BC  CA`,
	`[^ ]* (AB|BC|MB|NB|NL|NS|NT|NU|ON|PE|QC|SK|YT) CA$`,
	`#( )?[0-9]{1,5}`,
}

const ampEntity = "&amp;"

// Normalizer applies an ordered list of removal patterns followed by entity
// decoding, trimming and title-casing. It is immutable and safe to share.
type Normalizer struct {
	patterns []*regexp.Regexp
}

// New returns a Normalizer using the given compiled patterns in order.
func New(patterns ...*regexp.Regexp) *Normalizer {
	return &Normalizer{patterns: patterns}
}

// Compile compiles pattern strings into a Normalizer.
func Compile(patterns []string) (*Normalizer, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for i, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern %d %q: %w", i+1, p, err)
		}
		compiled = append(compiled, re)
	}
	return New(compiled...), nil
}

var defaultNormalizer = func() *Normalizer {
	n, err := Compile(DefaultPatterns)
	if err != nil {
		panic(err)
	}
	return n
}()

// Default returns the Normalizer built from DefaultPatterns.
func Default() *Normalizer { return defaultNormalizer }

// Patterns returns the source of the patterns in application order.
func (n *Normalizer) Patterns() []string {
	out := make([]string, len(n.patterns))
	for i, re := range n.patterns {
		out[i] = re.String()
	}
	return out
}

// Normalize returns the cleaned, title-cased form of raw. It never fails; text
// made only of boilerplate normalizes to "". The pass repeats until the output
// is stable, so Normalize(Normalize(x)) == Normalize(x).
func (n *Normalizer) Normalize(raw string) string {
	s := raw
	for {
		next := n.pass(s)
		if next == s {
			return s
		}
		s = next
	}
}

func (n *Normalizer) pass(s string) string {
	for _, re := range n.patterns {
		s = re.ReplaceAllLiteralString(s, "")
	}
	s = strings.ReplaceAll(s, ampEntity, "&")
	s = strings.TrimSpace(s)
	return TitleCase(s)
}
