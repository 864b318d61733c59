package domain

import (
	"maps"
	"math"
	"slices"
	"strings"
)

// BaseRate is the fraction of annual revenue used as the premium baseline.
const BaseRate = 0.025

// centsPerUnit converts between whole currency units and cents for rounding.
const centsPerUnit = 100

// stateMultipliers scales the base premium by jurisdiction.
// The tables are fixed at compile time: there is deliberately no mutation
// path and no runtime reconfiguration.
var stateMultipliers = map[string]float64{
	"CA": 1.2,
	"TX": 1.0,
	"NY": 1.3,
	"WI": 0.9,
	"OH": 0.85,
	"IL": 1.1,
	"NV": 1.15,
}

// businessMultipliers scales the base premium by industry category.
var businessMultipliers = map[string]float64{
	"retail":        1.0,
	"restaurant":    1.3,
	"professional":  0.8,
	"manufacturing": 1.5,
}

// NormalizeState canonicalizes a state code for table lookup.
// State codes are case-insensitive on input and uppercase canonically.
func NormalizeState(state string) string {
	return strings.ToUpper(state)
}

// NormalizeBusinessType canonicalizes a business code for table lookup.
// Business codes are case-insensitive on input and lowercase canonically.
func NormalizeBusinessType(businessType string) string {
	return strings.ToLower(businessType)
}

// StateMultiplier returns the premium multiplier for a state code.
// The code is normalized before lookup; ok is false for unknown states.
func StateMultiplier(state string) (multiplier float64, ok bool) {
	multiplier, ok = stateMultipliers[NormalizeState(state)]
	return multiplier, ok
}

// BusinessMultiplier returns the premium multiplier for a business code.
// The code is normalized before lookup; ok is false for unknown categories.
func BusinessMultiplier(businessType string) (multiplier float64, ok bool) {
	multiplier, ok = businessMultipliers[NormalizeBusinessType(businessType)]
	return multiplier, ok
}

// States returns the supported state codes in sorted order.
func States() []string {
	return slices.Sorted(maps.Keys(stateMultipliers))
}

// BusinessTypes returns the supported business categories in sorted order.
func BusinessTypes() []string {
	return slices.Sorted(maps.Keys(businessMultipliers))
}

// PremiumFor computes the premium for a validated non-negative revenue and
// the given state and business codes. Codes are normalized before lookup.
// The state check runs before the business check; the first unknown code
// aborts with its corresponding domain error.
//
// The premium is a pure function of its inputs: identical arguments always
// produce an identical result.
func PremiumFor(revenue float64, state, businessType string) (float64, error) {
	stateMult, ok := StateMultiplier(state)
	if !ok {
		return 0, NewInvalidStateError(state)
	}

	businessMult, ok := BusinessMultiplier(businessType)
	if !ok {
		return 0, NewInvalidBusinessTypeError(businessType)
	}

	return roundToCents(revenue * BaseRate * businessMult * stateMult), nil
}

// roundToCents rounds half-up to two decimal places.
// Premiums are always non-negative, so rounding half away from zero is
// equivalent to half-up here.
func roundToCents(amount float64) float64 {
	return math.Round(amount*centsPerUnit) / centsPerUnit
}
