// Copyright (C) 2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychrometrics

// Closed-form relations between the humidity representations.
// The range checks are written so that NaN inputs are rejected as well.

func checkRelHum(op string, relHum float64) error {
	if !(relHum >= 0 && relHum <= 1) {
		return domainErrorf(op, "relative humidity %g is outside range [0, 1]", relHum)
	}
	return nil
}

func checkHumRatio(op string, humRatio float64) error {
	if !(humRatio >= 0) {
		return domainErrorf(op, "humidity ratio %g is negative", humRatio)
	}
	return nil
}

func checkVapPres(op string, vapPres float64) error {
	if !(vapPres >= 0) {
		return domainErrorf(op, "partial pressure of water vapor %g is negative", vapPres)
	}
	return nil
}

func checkPressure(op string, pressure float64) error {
	if !(pressure > 0) {
		return domainErrorf(op, "atmospheric pressure %g is not positive", pressure)
	}
	return nil
}

// VapPresFromRelHum returns the partial pressure of water vapor [psi or Pa]
// from relative humidity [0-1] (eqn. 12, 22).
func (c *Calculator) VapPresFromRelHum(tDryBulb float64, relHum float64) (float64, error) {
	if err := checkRelHum("VapPresFromRelHum", relHum); err != nil {
		return 0, err
	}
	satVapPres, err := c.SatVapPres(tDryBulb)
	if err != nil {
		return 0, err
	}
	return relHum * satVapPres, nil
}

// RelHumFromVapPres returns relative humidity [0-1] from the partial
// pressure of water vapor (eqn. 12, 22).
func (c *Calculator) RelHumFromVapPres(tDryBulb float64, vapPres float64) (float64, error) {
	if err := checkVapPres("RelHumFromVapPres", vapPres); err != nil {
		return 0, err
	}
	satVapPres, err := c.SatVapPres(tDryBulb)
	if err != nil {
		return 0, err
	}
	return vapPres / satVapPres, nil
}

// HumRatioFromVapPres returns the humidity ratio from the partial pressure
// of water vapor and the atmospheric pressure (eqn. 20).
func (c *Calculator) HumRatioFromVapPres(vapPres float64, pressure float64) (float64, error) {
	const op = "HumRatioFromVapPres"
	if err := checkVapPres(op, vapPres); err != nil {
		return 0, err
	}
	if err := checkPressure(op, pressure); err != nil {
		return 0, err
	}
	if vapPres >= pressure {
		return 0, domainErrorf(op, "partial pressure of water vapor %g is not below atmospheric pressure %g",
			vapPres, pressure)
	}
	return molarMassRatio * vapPres / (pressure - vapPres), nil
}

// VapPresFromHumRatio returns the partial pressure of water vapor from the
// humidity ratio and the atmospheric pressure (eqn. 20 solved for pw).
func (c *Calculator) VapPresFromHumRatio(humRatio float64, pressure float64) (float64, error) {
	const op = "VapPresFromHumRatio"
	if err := checkHumRatio(op, humRatio); err != nil {
		return 0, err
	}
	if err := checkPressure(op, pressure); err != nil {
		return 0, err
	}
	return pressure * humRatio / (molarMassRatio + humRatio), nil
}

// SpecificHumFromHumRatio returns the specific humidity (mass of water per
// mass of moist air) from the humidity ratio (eqn. 9b).
func (c *Calculator) SpecificHumFromHumRatio(humRatio float64) (float64, error) {
	if err := checkHumRatio("SpecificHumFromHumRatio", humRatio); err != nil {
		return 0, err
	}
	return humRatio / (1 + humRatio), nil
}

// HumRatioFromSpecificHum returns the humidity ratio from the specific
// humidity, which has to be in [0, 1) (eqn. 9b solved for W).
func (c *Calculator) HumRatioFromSpecificHum(specificHum float64) (float64, error) {
	if !(specificHum >= 0 && specificHum < 1) {
		return 0, domainErrorf("HumRatioFromSpecificHum", "specific humidity %g is outside range [0, 1)", specificHum)
	}
	return specificHum / (1 - specificHum), nil
}

// HumRatioFromRelHum returns the humidity ratio from relative humidity.
func (c *Calculator) HumRatioFromRelHum(tDryBulb float64, relHum float64, pressure float64) (float64, error) {
	vapPres, err := c.VapPresFromRelHum(tDryBulb, relHum)
	if err != nil {
		return 0, err
	}
	return c.HumRatioFromVapPres(vapPres, pressure)
}

// RelHumFromHumRatio returns relative humidity from the humidity ratio.
func (c *Calculator) RelHumFromHumRatio(tDryBulb float64, humRatio float64, pressure float64) (float64, error) {
	vapPres, err := c.VapPresFromHumRatio(humRatio, pressure)
	if err != nil {
		return 0, err
	}
	return c.RelHumFromVapPres(tDryBulb, vapPres)
}

// RelHumFromTDewPoint returns relative humidity from the dew-point
// temperature (eqn. 22, 37).
func (c *Calculator) RelHumFromTDewPoint(tDryBulb float64, tDewPoint float64) (float64, error) {
	if !(tDewPoint <= tDryBulb) {
		return 0, domainErrorf("RelHumFromTDewPoint", "dew point temperature %g is above dry bulb temperature %g",
			tDewPoint, tDryBulb)
	}
	vapPres, err := c.SatVapPres(tDewPoint)
	if err != nil {
		return 0, err
	}
	satVapPres, err := c.SatVapPres(tDryBulb)
	if err != nil {
		return 0, err
	}
	return vapPres / satVapPres, nil
}

// VapPresFromTDewPoint returns the partial pressure of water vapor, which is
// the saturation vapor pressure at the dew-point temperature (eqn. 37).
func (c *Calculator) VapPresFromTDewPoint(tDewPoint float64) (float64, error) {
	return c.SatVapPres(tDewPoint)
}

// HumRatioFromTDewPoint returns the humidity ratio from the dew-point temperature.
func (c *Calculator) HumRatioFromTDewPoint(tDewPoint float64, pressure float64) (float64, error) {
	vapPres, err := c.SatVapPres(tDewPoint)
	if err != nil {
		return 0, err
	}
	return c.HumRatioFromVapPres(vapPres, pressure)
}
