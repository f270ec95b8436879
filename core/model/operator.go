package model

import (
	"regexp"
	"strings"
)

// Operator is a normalized driver identity. Raw spellings that differ only
// in punctuation, spacing, or case normalize to the same value, so Operator
// is safe to use as a map key or set member across tables.
type Operator string

var (
	dottedInitial = regexp.MustCompile(`\.\s+`)
	spaceRun      = regexp.MustCompile(`\s+`)
)

// NewOperator normalizes a raw operator name: period-plus-whitespace
// sequences collapse to a single space, whitespace runs collapse, and the
// result is trimmed and uppercased. The normalization is idempotent.
func NewOperator(raw string) Operator {
	s := dottedInitial.ReplaceAllString(raw, " ")
	s = spaceRun.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return Operator(strings.ToUpper(s))
}
