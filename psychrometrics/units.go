// Copyright (C) 2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

// Package psychrometrics calculates thermodynamic properties of moist air
// and of the standard atmosphere following ASHRAE Handbook Fundamentals
// (2017, chapter 1) in either Imperial (IP) or SI units.
package psychrometrics

import (
	"fmt"
	"math"
	"strings"
)

// UnitSystem selects the unit system of all inputs and outputs of a Calculator.
//
//	IP: °F, psi, lb_w/lb_da, Btu/lb_da, ft³/lb_da
//	SI: °C, Pa, kg_w/kg_da, J/kg_da, m³/kg_da
type UnitSystem int

const (
	// UnitsUnset is the zero value and is rejected by New.
	UnitsUnset UnitSystem = iota
	IP
	SI
)

func (u UnitSystem) String() string {
	switch u {
	case IP:
		return "IP"
	case SI:
		return "SI"
	default:
		return fmt.Sprintf("UnitSystem(%d)", int(u))
	}
}

// ParseUnitSystem parses "IP" or "SI" (case-insensitive).
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "IP":
		return IP, nil
	case "SI":
		return SI, nil
	default:
		return UnitsUnset, &ConfigError{Units: s}
	}
}

// Coefficients of ln(Pws) = c0/T + c1 + c2*T + c3*T² + c4*T³ + c5*T⁴ + c6*ln(T) + offset
// with T as absolute temperature (ASHRAE Fundamentals 2017, ch. 1, eqn. 5 and 6).
type saturationCoefficients struct {
	c      [7]float64
	offset float64
}

// Coefficients of the humidity ratio from wet-bulb relation (eqn. 33 and 35):
// W = ((a - b*Twb)*Ws* - cpDryAir*(Tdb - Twb)) / (a + cpVapor*Tdb - c*Twb)
type wetBulbCoefficients struct {
	a, b, c float64
}

// unitSet holds every constant and branch predicate that differs between
// the unit systems. Formulas read it and never test the unit system.
type unitSet struct {
	system UnitSystem

	absoluteZeroOffset float64 // °F -> °R or °C -> K
	freezingPoint      float64
	minTemperature     float64 // validity of the saturation formulas
	maxTemperature     float64
	tolerance          float64
	derivativeStep     float64

	saturationIce   saturationCoefficients
	saturationWater saturationCoefficients

	rDryAir       float64 // gas constant of dry air
	pressureScale float64 // psi -> lbf/ft² in IP, 1 in SI
	enthalpyScale float64 // kJ/kg -> J/kg in SI, 1 in IP
	cpDryAir      float64
	cpVapor       float64
	hfg           float64 // latent heat of vaporization at 0 °C / 32 °F

	wetBulbWater wetBulbCoefficients
	wetBulbIce   wetBulbCoefficients

	seaLevelPressure    float64
	seaLevelTemperature float64
	pressureLapse       float64 // k1 in P = P0*(1 - k1*Z)^5.2559
	temperatureLapse    float64 // k2 in T = T0 - k2*Z
	columnLapse         float64 // lapse rate used for the mean column temperature
	scaleHeightFactor   float64 // H = scaleHeightFactor * T_column (absolute)
}

const (
	molarMassRatio     = 0.621945 // ratio of molecular mass of water vapor to dry air
	volumeFactor       = 1.607858 // 1 / molarMassRatio
	standardAtmPowerK  = 5.2559
	maxSolverIteration = 100
)

var ipUnits = unitSet{
	system:             IP,
	absoluteZeroOffset: 459.67,
	freezingPoint:      32,
	minTemperature:     -148,
	maxTemperature:     392,
	tolerance:          0.001 * 9 / 5,
	derivativeStep:     0.01 * 9 / 5,
	saturationIce: saturationCoefficients{c: [7]float64{
		-1.0214165e+04, -4.8932428, -5.3765794e-03, 1.9202377e-07,
		3.5575832e-10, -9.0344688e-14, 4.1635019,
	}},
	saturationWater: saturationCoefficients{c: [7]float64{
		-1.0440397e+04, -1.1294650e+01, -2.7022355e-02, 1.2890360e-05,
		-2.4780681e-09, 0, 6.5459673,
	}},
	rDryAir:             53.350,
	pressureScale:       144,
	enthalpyScale:       1,
	cpDryAir:            0.240,
	cpVapor:             0.444,
	hfg:                 1061,
	wetBulbWater:        wetBulbCoefficients{a: 1093, b: 0.556, c: 1},
	wetBulbIce:          wetBulbCoefficients{a: 1220, b: 0.04, c: 0.48},
	seaLevelPressure:    14.696,
	seaLevelTemperature: 59,
	pressureLapse:       6.8754e-06,
	temperatureLapse:    0.00356620,
	columnLapse:         0.0036,
	scaleHeightFactor:   53.351,
}

var siUnits = unitSet{
	system:             SI,
	absoluteZeroOffset: 273.15,
	freezingPoint:      0,
	minTemperature:     -100,
	maxTemperature:     200,
	tolerance:          0.001,
	derivativeStep:     0.01,
	saturationIce: saturationCoefficients{
		c: [7]float64{
			-5.6745359e+03, 6.3925247, -9.677843e-03, 6.2215701e-07,
			2.0747825e-09, -9.484024e-13, 4.1635019,
		},
		offset: 4.851e-5,
	},
	saturationWater: saturationCoefficients{
		c: [7]float64{
			-5.8002206e+03, 1.3914993, -4.8640239e-02, 4.1764768e-05,
			-1.4452093e-08, 0, 6.5459673,
		},
		offset: -4.851e-5,
	},
	rDryAir:             287.042,
	pressureScale:       1,
	enthalpyScale:       1000,
	cpDryAir:            1.006,
	cpVapor:             1.86,
	hfg:                 2501,
	wetBulbWater:        wetBulbCoefficients{a: 2501, b: 2.326, c: 4.186},
	wetBulbIce:          wetBulbCoefficients{a: 2830, b: 0.24, c: 2.1},
	seaLevelPressure:    101325,
	seaLevelTemperature: 15,
	pressureLapse:       2.25577e-05,
	temperatureLapse:    0.0065,
	columnLapse:         0.0065,
	scaleHeightFactor:   287.055 / 9.807,
}

func unitsFor(system UnitSystem) (*unitSet, error) {
	switch system {
	case IP:
		return &ipUnits, nil
	case SI:
		return &siUnits, nil
	case UnitsUnset:
		return nil, &ConfigError{}
	default:
		return nil, &ConfigError{Units: system.String()}
	}
}

func (u *unitSet) absolute(t float64) float64 {
	return t + u.absoluteZeroOffset
}

func (u *unitSet) belowFreezing(t float64) bool {
	return t < u.freezingPoint
}

func (u *unitSet) inSaturationRange(t float64) bool {
	return t >= u.minTemperature && t <= u.maxTemperature
}

func (s *saturationCoefficients) lnSatVapPres(tAbsolute float64) float64 {
	c, T := s.c, tAbsolute
	return c[0]/T + c[1] + T*(c[2]+T*(c[3]+T*(c[4]+T*c[5]))) + c[6]*math.Log(T) + s.offset
}

// lnSatVapPres evaluates ln(Pws) without range validation.
func (u *unitSet) lnSatVapPres(t float64) float64 {
	if u.belowFreezing(t) {
		return u.saturationIce.lnSatVapPres(u.absolute(t))
	}
	return u.saturationWater.lnSatVapPres(u.absolute(t))
}

// freezingGap returns ln(Pws) over ice and over water at the freezing point.
// In IP the two formulas do not meet, so the saturation curve jumps there.
func (u *unitSet) freezingGap() (lnIce, lnWater float64) {
	tAbsolute := u.absolute(u.freezingPoint)
	return u.saturationIce.lnSatVapPres(tAbsolute), u.saturationWater.lnSatVapPres(tAbsolute)
}

func (u *unitSet) wetBulb(t float64) wetBulbCoefficients {
	if u.belowFreezing(t) {
		return u.wetBulbIce
	}
	return u.wetBulbWater
}
