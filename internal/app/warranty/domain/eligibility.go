package domain

import (
	"strings"
	"time"
)

// IsProductEligible is the coarse gate deciding whether a product is offered
// to a vehicle at all. It is a boolean AND of three independent gates (age,
// mileage, allowlists); there is no partial credit or scoring. Unpublished
// products never match. asOf pins the age computation so resolution is
// deterministic; callers pass the clock's current time.
func IsProductEligible(p *Product, v VehicleAttributes, asOf time.Time) bool {
	if p == nil || !p.published {
		return false
	}
	return passesAgeGate(p, v, asOf) &&
		passesMileageGate(p, v) &&
		passesAllowlistGates(p, v)
}

func passesAgeGate(p *Product, v VehicleAttributes, asOf time.Time) bool {
	if p.maxVehicleAgeYears == nil {
		return true
	}
	if v.ModelYear <= 0 {
		// unknown model year fails a configured age cap
		return false
	}
	age := int64(asOf.Year() - v.ModelYear)
	return age <= *p.maxVehicleAgeYears
}

func passesMileageGate(p *Product, v VehicleAttributes) bool {
	if p.maxMileageKm == nil {
		return true
	}
	if !v.MileageKnown() {
		return false
	}
	return *v.MileageKm <= *p.maxMileageKm
}

func passesAllowlistGates(p *Product, v VehicleAttributes) bool {
	if !axisAllowed(p.makeAllowlist, v.Make, false) {
		return false
	}
	if !axisAllowed(p.modelAllowlist, v.Model, false) {
		return false
	}
	// Trim accepts a substring match in either direction: decoded data often
	// carries a trim code where the allowlist carries the trim name.
	return axisAllowed(p.trimAllowlist, v.Trim, true)
}

func axisAllowed(allowlist []string, value string, substring bool) bool {
	if len(allowlist) == 0 {
		return true
	}
	normalized := NormalizeAxis(value)
	if normalized == "" {
		return false
	}
	for _, entry := range allowlist {
		allowed := NormalizeAxis(entry)
		if allowed == "" {
			continue
		}
		if allowed == normalized {
			return true
		}
		if substring && (strings.Contains(allowed, normalized) || strings.Contains(normalized, allowed)) {
			return true
		}
	}
	return false
}
