// Copyright (C) 2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychrometrics

import "math"

// SatVapPres returns the vapor pressure of saturated air [psi or Pa]
// (ASHRAE Fundamentals 2017, ch. 1, eqn. 5 and 6).
//
// Below the freezing point the saturation pressure over ice is used, above it
// the one over liquid water. In SI a small correction on the logarithm makes
// both branches agree at 0 °C, which keeps the dew point solver continuous.
func (c *Calculator) SatVapPres(tDryBulb float64) (float64, error) {
	if !c.units.inSaturationRange(tDryBulb) {
		return 0, domainErrorf("SatVapPres", "dry bulb temperature %g is outside range [%g, %g]",
			tDryBulb, c.units.minTemperature, c.units.maxTemperature)
	}
	return math.Exp(c.units.lnSatVapPres(tDryBulb)), nil
}

// SatHumRatio returns the humidity ratio of saturated air [lb_w/lb_da or kg_w/kg_da].
func (c *Calculator) SatHumRatio(tDryBulb float64, pressure float64) (float64, error) {
	satVapPres, err := c.SatVapPres(tDryBulb)
	if err != nil {
		return 0, err
	}
	return c.HumRatioFromVapPres(satVapPres, pressure)
}

// SatAirEnthalpy returns the enthalpy of saturated air [Btu/lb_da or J/kg_da].
func (c *Calculator) SatAirEnthalpy(tDryBulb float64, pressure float64) (float64, error) {
	satHumRatio, err := c.SatHumRatio(tDryBulb, pressure)
	if err != nil {
		return 0, err
	}
	return c.MoistAirEnthalpy(tDryBulb, satHumRatio)
}
