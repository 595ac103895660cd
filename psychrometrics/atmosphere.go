// Copyright (C) 2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychrometrics

import "math"

// StandardAtmPressure returns the barometric pressure of the standard
// atmosphere [psi or Pa] at the given altitude [ft or m] (eqn. 3).
func (c *Calculator) StandardAtmPressure(altitude float64) float64 {
	u := c.units
	return u.seaLevelPressure * math.Pow(1-u.pressureLapse*altitude, standardAtmPowerK)
}

// StandardAtmTemperature returns the dry-bulb temperature of the standard
// atmosphere [°F or °C] at the given altitude [ft or m] (eqn. 4).
func (c *Calculator) StandardAtmTemperature(altitude float64) float64 {
	u := c.units
	return u.seaLevelTemperature - u.temperatureLapse*altitude
}

// SeaLevelPressure reduces an observed station pressure to sea level using
// the scale height of an air column with the mean temperature between the
// station and sea level (Hess, Introduction to Theoretical Meteorology).
func (c *Calculator) SeaLevelPressure(stationPressure float64, altitude float64, tDryBulb float64) float64 {
	u := c.units
	tColumn := tDryBulb + u.columnLapse*altitude/2
	scaleHeight := u.scaleHeightFactor * u.absolute(tColumn)
	return stationPressure * math.Exp(altitude/scaleHeight)
}

// StationPressure is the inverse of SeaLevelPressure.
func (c *Calculator) StationPressure(seaLevelPressure float64, altitude float64, tDryBulb float64) float64 {
	return seaLevelPressure / c.SeaLevelPressure(1, altitude, tDryBulb)
}
