// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	"math"

	"github.com/bdrung/psychrometric-exporter/psychrometrics"
)

// Psychrometrics are the properties of moist air derived from one sensor reading.
type Psychrometrics struct {
	psychrometrics.State
	AbsoluteHumidity     float64 // g/m³
	VaporPressureDeficit float64 // Pa
	Density              float64 // kg/m³
	SeaLevelPressure     float64 // Pa
}

// Relative2AbsoluteHumidity calculates the absolute humidity in g/m³ for a given
// relative humidity in percent, temperature in Celsius and atmospheric pressure in Pa.
//
// The absolute humidity is the mass of water vapor per volume of moist air:
// absoluteHumidity = humidityRatio / specificVolume
// where the specific volume refers to the mass of dry air (ASHRAE eqn. 26).
func Relative2AbsoluteHumidity(
	calc *psychrometrics.Calculator,
	relativeHumidity float64,
	temperatureCelsius float64,
	pressure float64,
) (float64, error) {
	humRatio, err := calc.HumRatioFromRelHum(temperatureCelsius, relativeHumidity/100, pressure)
	if err != nil {
		return 0, err
	}
	return absoluteHumidity(calc, temperatureCelsius, humRatio, pressure)
}

func absoluteHumidity(calc *psychrometrics.Calculator, temperatureCelsius, humRatio, pressure float64) (float64, error) {
	volume, err := calc.MoistAirVolume(temperatureCelsius, humRatio, pressure)
	if err != nil {
		return 0, err
	}
	return 1000 * humRatio / volume, nil
}

// clampHumidity limits a relative humidity in percent to [0, 100].
// Calibration offsets can push readings of saturated air above 100 %.
func clampHumidity(relativeHumidity float64) float64 {
	return math.Min(math.Max(relativeHumidity, 0), 100)
}

// derivePsychrometrics calculates all properties of moist air from a
// temperature in Celsius, a relative humidity in percent and the
// atmospheric pressure in Pa at the given altitude in meters.
func derivePsychrometrics(
	calc *psychrometrics.Calculator,
	temperatureCelsius float64,
	relativeHumidity float64,
	pressure float64,
	altitude float64,
) (Psychrometrics, error) {
	var p Psychrometrics
	state, err := calc.PsychrometricsFromRelHum(temperatureCelsius, clampHumidity(relativeHumidity)/100, pressure)
	if err != nil {
		return p, err
	}
	p.State = state
	if p.AbsoluteHumidity, err = absoluteHumidity(calc, temperatureCelsius, state.HumRatio, pressure); err != nil {
		return p, err
	}
	if p.VaporPressureDeficit, err = calc.VaporPressureDeficit(temperatureCelsius, state.HumRatio, pressure); err != nil {
		return p, err
	}
	if p.Density, err = calc.MoistAirDensity(temperatureCelsius, state.HumRatio, pressure); err != nil {
		return p, err
	}
	p.SeaLevelPressure = calc.SeaLevelPressure(pressure, altitude, temperatureCelsius)
	return p, nil
}
