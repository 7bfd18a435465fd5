package domain

import (
	"fmt"
	"strconv"
)

type termKind int

const (
	termUnset termKind = iota
	termUnlimited
	termValue
)

// Term is a coverage term bound (months or kilometres) as an explicit tagged
// value. "Unlimited" (the provider set no upper bound) and "Unset" (the
// provider never configured the field) are distinct states; collapsing them
// into one nullable number is exactly the misinterpretation this type exists
// to prevent.
type Term struct {
	kind termKind
	n    int64
}

func UnsetTerm() Term {
	return Term{kind: termUnset}
}

func UnlimitedTerm() Term {
	return Term{kind: termUnlimited}
}

func TermOf(n int64) Term {
	return Term{kind: termValue, n: n}
}

func (t Term) IsUnset() bool {
	return t.kind == termUnset
}

func (t Term) IsUnlimited() bool {
	return t.kind == termUnlimited
}

// Value returns the numeric bound and true, or 0 and false for unset or
// unlimited terms.
func (t Term) Value() (int64, bool) {
	if t.kind != termValue {
		return 0, false
	}
	return t.n, true
}

// SatisfiesMin reports whether the term covers at least min. Unlimited terms
// satisfy any minimum; unset terms satisfy none, since there is no term data
// to compare.
func (t Term) SatisfiesMin(min int64) bool {
	switch t.kind {
	case termUnlimited:
		return true
	case termValue:
		return t.n >= min
	default:
		return false
	}
}

func (t Term) Equals(other Term) bool {
	if t.kind != other.kind {
		return false
	}
	return t.kind != termValue || t.n == other.n
}

const (
	termEncUnset     = ""
	termEncUnlimited = "unlimited"
)

// Encode renders the term for storage: "" for unset, "unlimited", or the
// decimal bound.
func (t Term) Encode() string {
	switch t.kind {
	case termUnlimited:
		return termEncUnlimited
	case termValue:
		return strconv.FormatInt(t.n, 10)
	default:
		return termEncUnset
	}
}

// ParseTerm is the inverse of Encode.
func ParseTerm(s string) (Term, error) {
	switch s {
	case termEncUnset:
		return UnsetTerm(), nil
	case termEncUnlimited:
		return UnlimitedTerm(), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return Term{}, fmt.Errorf("invalid term encoding: %q", s)
	}
	return TermOf(n), nil
}

func (t Term) String() string {
	switch t.kind {
	case termUnlimited:
		return "unlimited"
	case termValue:
		return strconv.FormatInt(t.n, 10)
	default:
		return "unset"
	}
}
