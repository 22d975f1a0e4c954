// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainutil holds helper types built on top of the wire-level
// primitives: the monetary Amount type and its units.
package chainutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AmountUnit describes a method of converting an Amount to something other
// than the base unit of didacoin. The value of the AmountUnit is the
// exponent component of the decadic multiple to convert from an amount in
// didacoin to an amount counted in units.
type AmountUnit int

// These constants define the units used when describing a didacoin
// monetary amount.
const (
	AmountMegaDDC  AmountUnit = 6
	AmountKiloDDC  AmountUnit = 3
	AmountDDC      AmountUnit = 0
	AmountMilliDDC AmountUnit = -3
	AmountMicroDDC AmountUnit = -6
	AmountGrain    AmountUnit = -8
)

// String returns the unit as a string. For recognized units, the SI prefix
// is used, or "grain" for the base unit.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaDDC:
		return "MDDC"
	case AmountKiloDDC:
		return "kDDC"
	case AmountDDC:
		return "DDC"
	case AmountMilliDDC:
		return "mDDC"
	case AmountMicroDDC:
		return "µDDC"
	case AmountGrain:
		return "grain"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " DDC"
	}
}

// Amount represents the base didacoin monetary unit (colloquially a
// "grain"). A single Amount is equal to 1e-8 of a didacoin.
type Amount int64

// round converts a floating point number, which may or may not be
// representable as an integer, to the Amount integer type by rounding to
// the nearest integer.
func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value representing some
// value in didacoin. NewAmount errors if f is NaN or +-Infinity, but does
// not check that the amount is within the total amount producible, since f
// may not refer to an amount at a single moment in time.
func NewAmount(f float64) (Amount, error) {
	switch {
	case math.IsNaN(f):
		fallthrough
	case math.IsInf(f, 1):
		fallthrough
	case math.IsInf(f, -1):
		return 0, errors.New("invalid didacoin amount")
	}

	return round(f * GrainsPerDidacoin), nil
}

// ToUnit converts a monetary amount counted in base units to a floating
// point value representing an amount of didacoin.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToDDC is the equivalent of calling ToUnit with AmountDDC.
func (a Amount) ToDDC() float64 {
	return a.ToUnit(AmountDDC)
}

// Format formats a monetary amount counted in base units as a string for a
// given unit, appending an SI-notation label (or "grain" for the base
// unit).
func (a Amount) Format(u AmountUnit) string {
	units := " " + u.String()
	formatted := strconv.FormatFloat(a.ToUnit(u), 'f', -int(u+8), 64)

	if u == AmountDDC {
		if strings.Contains(formatted, ".") {
			return fmt.Sprintf("%.8f%s", a.ToUnit(u), units)
		}
	}
	return formatted + units
}

// String is the equivalent of calling Format with AmountDDC.
func (a Amount) String() string {
	return a.Format(AmountDDC)
}

// MulF64 multiplies an Amount by a floating point value — useful for
// services built on didanode that need, e.g., a percentage fee estimate.
func (a Amount) MulF64(f float64) Amount {
	return round(float64(a) * f)
}
