package domain

import (
	"strings"
	"unicode"
)

// VehicleAttributes is a decoded vehicle snapshot plus the dealer-supplied
// mileage and optional class label. It is ephemeral: supplied per resolution
// call, persisted only when a contract freezes it.
type VehicleAttributes struct {
	VIN          string
	ModelYear    int // 0 means unknown
	Make         string
	Model        string
	Trim         string
	BodyClass    string
	Engine       string
	Transmission string

	// MileageKm is supplied by the dealer, not the decoder. Nil means unknown.
	MileageKm *int64

	// VehicleClass is an optional dealer-supplied class label matched
	// case-sensitively against variant class requirements.
	VehicleClass string
}

// MileageKnown reports whether a usable (non-negative) mileage was supplied.
func (v VehicleAttributes) MileageKnown() bool {
	return v.MileageKm != nil && *v.MileageKm >= 0
}

// NormalizeAxis canonicalizes a make/model/trim string for allowlist
// comparison: case-folded with whitespace and punctuation collapsed away, so
// "Grand-Caravan SE" and "grand caravan se" compare equal.
func NormalizeAxis(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
