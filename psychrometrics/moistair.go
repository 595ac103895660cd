// Copyright (C) 2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychrometrics

// DryAirEnthalpy returns the enthalpy of dry air [Btu/lb or J/kg] (eqn. 28).
func (c *Calculator) DryAirEnthalpy(tDryBulb float64) float64 {
	u := c.units
	return u.enthalpyScale * u.cpDryAir * tDryBulb
}

// DryAirVolume returns the specific volume of dry air [ft³/lb or m³/kg] (eqn. 14).
func (c *Calculator) DryAirVolume(tDryBulb float64, pressure float64) (float64, error) {
	if err := checkPressure("DryAirVolume", pressure); err != nil {
		return 0, err
	}
	u := c.units
	return u.rDryAir * u.absolute(tDryBulb) / (u.pressureScale * pressure), nil
}

// DryAirDensity returns the density of dry air [lb/ft³ or kg/m³] (eqn. 14).
func (c *Calculator) DryAirDensity(tDryBulb float64, pressure float64) (float64, error) {
	if err := checkPressure("DryAirDensity", pressure); err != nil {
		return 0, err
	}
	u := c.units
	return u.pressureScale * pressure / (u.rDryAir * u.absolute(tDryBulb)), nil
}

// MoistAirEnthalpy returns the enthalpy of moist air per mass of dry air
// [Btu/lb_da or J/kg_da] (eqn. 30).
func (c *Calculator) MoistAirEnthalpy(tDryBulb float64, humRatio float64) (float64, error) {
	if err := checkHumRatio("MoistAirEnthalpy", humRatio); err != nil {
		return 0, err
	}
	u := c.units
	return u.enthalpyScale * (u.cpDryAir*tDryBulb + humRatio*(u.hfg+u.cpVapor*tDryBulb)), nil
}

// MoistAirVolume returns the specific volume of moist air per mass of dry
// air [ft³/lb_da or m³/kg_da] (eqn. 26).
func (c *Calculator) MoistAirVolume(tDryBulb float64, humRatio float64, pressure float64) (float64, error) {
	const op = "MoistAirVolume"
	if err := checkHumRatio(op, humRatio); err != nil {
		return 0, err
	}
	if err := checkPressure(op, pressure); err != nil {
		return 0, err
	}
	u := c.units
	return u.rDryAir * u.absolute(tDryBulb) * (1 + volumeFactor*humRatio) / (u.pressureScale * pressure), nil
}

// MoistAirDensity returns the density of moist air [lb/ft³ or kg/m³] (eqn. 11).
func (c *Calculator) MoistAirDensity(tDryBulb float64, humRatio float64, pressure float64) (float64, error) {
	volume, err := c.MoistAirVolume(tDryBulb, humRatio, pressure)
	if err != nil {
		return 0, err
	}
	return (1 + humRatio) / volume, nil
}

// TDryBulbFromEnthalpyAndHumRatio solves eqn. 30 for the dry-bulb temperature.
func (c *Calculator) TDryBulbFromEnthalpyAndHumRatio(enthalpy float64, humRatio float64) (float64, error) {
	if err := checkHumRatio("TDryBulbFromEnthalpyAndHumRatio", humRatio); err != nil {
		return 0, err
	}
	u := c.units
	return (enthalpy/u.enthalpyScale - u.hfg*humRatio) / (u.cpDryAir + u.cpVapor*humRatio), nil
}

// HumRatioFromEnthalpyAndTDryBulb solves eqn. 30 for the humidity ratio.
func (c *Calculator) HumRatioFromEnthalpyAndTDryBulb(enthalpy float64, tDryBulb float64) (float64, error) {
	u := c.units
	humRatio := (enthalpy/u.enthalpyScale - u.cpDryAir*tDryBulb) / (u.hfg + u.cpVapor*tDryBulb)
	if err := checkHumRatio("HumRatioFromEnthalpyAndTDryBulb", humRatio); err != nil {
		return 0, err
	}
	return humRatio, nil
}

// TDryBulbFromMoistAirVolumeAndHumRatio solves eqn. 26 for the dry-bulb temperature.
func (c *Calculator) TDryBulbFromMoistAirVolumeAndHumRatio(
	moistAirVolume float64,
	humRatio float64,
	pressure float64,
) (float64, error) {
	const op = "TDryBulbFromMoistAirVolumeAndHumRatio"
	if err := checkHumRatio(op, humRatio); err != nil {
		return 0, err
	}
	if err := checkPressure(op, pressure); err != nil {
		return 0, err
	}
	u := c.units
	tAbsolute := moistAirVolume * u.pressureScale * pressure / (u.rDryAir * (1 + volumeFactor*humRatio))
	return tAbsolute - u.absoluteZeroOffset, nil
}

// DegreeOfSaturation returns the ratio of the humidity ratio to the
// humidity ratio of saturated air at the same temperature and pressure (eqn. 12).
func (c *Calculator) DegreeOfSaturation(tDryBulb float64, humRatio float64, pressure float64) (float64, error) {
	if err := checkHumRatio("DegreeOfSaturation", humRatio); err != nil {
		return 0, err
	}
	satHumRatio, err := c.SatHumRatio(tDryBulb, pressure)
	if err != nil {
		return 0, err
	}
	return humRatio / satHumRatio, nil
}

// VaporPressureDeficit returns the difference between the saturation vapor
// pressure and the actual vapor pressure [psi or Pa].
func (c *Calculator) VaporPressureDeficit(tDryBulb float64, humRatio float64, pressure float64) (float64, error) {
	relHum, err := c.RelHumFromHumRatio(tDryBulb, humRatio, pressure)
	if err != nil {
		return 0, err
	}
	satVapPres, err := c.SatVapPres(tDryBulb)
	if err != nil {
		return 0, err
	}
	return satVapPres * (1 - relHum), nil
}
