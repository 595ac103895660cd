// Copyright (C) 2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychrometrics

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// minHumRatio is the lower limit of humidity ratios derived from a wet-bulb
// temperature. Very dry air would otherwise yield a negative humidity ratio.
// Below about -87 °C the saturation humidity ratio is lower and takes over.
const minHumRatio = 1e-7

// TDewPointFromVapPres returns the dew-point temperature from the partial
// pressure of water vapor.
//
// The saturation vapor pressure formula has no closed-form inverse, so
// ln(Pws(T)) = ln(pw) is solved with Newton-Raphson starting at the dry-bulb
// temperature. The slope is a forward difference whose step points towards
// the middle of the valid temperature range, so the probe never leaves it.
// The result is limited to the dry-bulb temperature.
func (c *Calculator) TDewPointFromVapPres(tDryBulb float64, vapPres float64) (float64, error) {
	const op = "TDewPointFromVapPres"
	u := c.units
	if math.IsNaN(tDryBulb) {
		return 0, domainErrorf(op, "dry bulb temperature is NaN")
	}
	minVapPres := math.Exp(u.lnSatVapPres(u.minTemperature))
	maxVapPres := math.Exp(u.lnSatVapPres(u.maxTemperature))
	if !(vapPres >= minVapPres && vapPres <= maxVapPres) {
		return 0, domainErrorf(op, "partial pressure of water vapor %g is outside range [%g, %g]",
			vapPres, minVapPres, maxVapPres)
	}

	clamp := func(t float64) float64 {
		return math.Min(math.Max(t, u.minTemperature), u.maxTemperature)
	}
	lnVapPres := math.Log(vapPres)
	// Vapor pressures inside the jump of the saturation curve have no root.
	// They belong to air saturated at the freezing point.
	lnIce, lnWater := u.freezingGap()
	if lnVapPres >= math.Min(lnIce, lnWater) && lnVapPres <= math.Max(lnIce, lnWater) {
		return math.Min(u.freezingPoint, tDryBulb), nil
	}

	midpoint := (u.minTemperature + u.maxTemperature) / 2
	next := clamp(tDryBulb)
	for i := 1; i <= maxSolverIteration; i++ {
		t := next
		lnSatVapPres := u.lnSatVapPres(t)
		step := u.derivativeStep
		if t > midpoint {
			step = -step
		}
		slope := fd.Derivative(u.lnSatVapPres, t, &fd.Settings{
			Formula:     fd.Forward,
			Step:        step,
			OriginKnown: true,
			OriginValue: lnSatVapPres,
		})
		next = clamp(t - (lnSatVapPres-lnVapPres)/slope)
		if math.Abs(next-t) < u.tolerance {
			c.log.Debugf("%s: converged after %d iterations", op, i)
			return math.Min(next, tDryBulb), nil
		}
	}
	return 0, &ConvergenceError{Op: op, Iterations: maxSolverIteration}
}

// TDewPointFromHumRatio returns the dew-point temperature from the humidity ratio.
func (c *Calculator) TDewPointFromHumRatio(tDryBulb float64, humRatio float64, pressure float64) (float64, error) {
	vapPres, err := c.VapPresFromHumRatio(humRatio, pressure)
	if err != nil {
		return 0, err
	}
	return c.TDewPointFromVapPres(tDryBulb, vapPres)
}

// TDewPointFromRelHum returns the dew-point temperature from relative humidity.
func (c *Calculator) TDewPointFromRelHum(tDryBulb float64, relHum float64) (float64, error) {
	vapPres, err := c.VapPresFromRelHum(tDryBulb, relHum)
	if err != nil {
		return 0, err
	}
	return c.TDewPointFromVapPres(tDryBulb, vapPres)
}

// TDewPointFromTWetBulb returns the dew-point temperature from the wet-bulb temperature.
func (c *Calculator) TDewPointFromTWetBulb(tDryBulb float64, tWetBulb float64, pressure float64) (float64, error) {
	humRatio, err := c.HumRatioFromTWetBulb(tDryBulb, tWetBulb, pressure)
	if err != nil {
		return 0, err
	}
	return c.TDewPointFromHumRatio(tDryBulb, humRatio, pressure)
}

// HumRatioFromTWetBulb returns the humidity ratio from the wet-bulb
// temperature (eqn. 33 above and eqn. 35 below freezing). The result never
// exceeds the saturation humidity ratio at the wet-bulb temperature.
func (c *Calculator) HumRatioFromTWetBulb(tDryBulb float64, tWetBulb float64, pressure float64) (float64, error) {
	if !(tWetBulb <= tDryBulb) {
		return 0, domainErrorf("HumRatioFromTWetBulb", "wet bulb temperature %g is above dry bulb temperature %g",
			tWetBulb, tDryBulb)
	}
	satHumRatio, err := c.SatHumRatio(tWetBulb, pressure)
	if err != nil {
		return 0, err
	}
	u := c.units
	k := u.wetBulb(tWetBulb)
	humRatio := ((k.a-k.b*tWetBulb)*satHumRatio - u.cpDryAir*(tDryBulb-tWetBulb)) /
		(k.a + u.cpVapor*tDryBulb - k.c*tWetBulb)
	humRatio = math.Min(humRatio, satHumRatio)
	return math.Max(humRatio, math.Min(minHumRatio, satHumRatio)), nil
}

// TWetBulbFromHumRatio returns the wet-bulb temperature from the humidity ratio.
//
// The wet-bulb temperature lies between dew point and dry bulb. That interval
// is bisected until it is narrower than the tolerance. Bisection is used
// because the wet-bulb relation switches formulas at the freezing point.
func (c *Calculator) TWetBulbFromHumRatio(tDryBulb float64, humRatio float64, pressure float64) (float64, error) {
	const op = "TWetBulbFromHumRatio"
	if err := checkHumRatio(op, humRatio); err != nil {
		return 0, err
	}
	tDewPoint, err := c.TDewPointFromHumRatio(tDryBulb, humRatio, pressure)
	if err != nil {
		return 0, err
	}
	return c.bisectTWetBulb(tDryBulb, humRatio, pressure, tDewPoint)
}

// bisectTWetBulb searches the wet-bulb temperature in [tDewPoint, tDryBulb].
func (c *Calculator) bisectTWetBulb(tDryBulb, humRatio, pressure, tDewPoint float64) (float64, error) {
	lower, upper := tDewPoint, tDryBulb
	tWetBulb := (lower + upper) / 2
	for i := 0; upper-lower > c.units.tolerance; i++ {
		if i >= maxSolverIteration {
			return 0, &ConvergenceError{Op: "TWetBulbFromHumRatio", Iterations: i}
		}
		w, err := c.HumRatioFromTWetBulb(tDryBulb, tWetBulb, pressure)
		if err != nil {
			return 0, err
		}
		if w > humRatio {
			upper = tWetBulb
		} else {
			lower = tWetBulb
		}
		tWetBulb = (lower + upper) / 2
	}
	c.log.Debugf("TWetBulbFromHumRatio: bracket [%g, %g] after bisection", lower, upper)
	return tWetBulb, nil
}

// TWetBulbFromTDewPoint returns the wet-bulb temperature from the dew-point temperature.
func (c *Calculator) TWetBulbFromTDewPoint(tDryBulb float64, tDewPoint float64, pressure float64) (float64, error) {
	if !(tDewPoint <= tDryBulb) {
		return 0, domainErrorf("TWetBulbFromTDewPoint", "dew point temperature %g is above dry bulb temperature %g",
			tDewPoint, tDryBulb)
	}
	humRatio, err := c.HumRatioFromTDewPoint(tDewPoint, pressure)
	if err != nil {
		return 0, err
	}
	return c.TWetBulbFromHumRatio(tDryBulb, humRatio, pressure)
}

// TWetBulbFromRelHum returns the wet-bulb temperature from relative humidity.
func (c *Calculator) TWetBulbFromRelHum(tDryBulb float64, relHum float64, pressure float64) (float64, error) {
	humRatio, err := c.HumRatioFromRelHum(tDryBulb, relHum, pressure)
	if err != nil {
		return 0, err
	}
	return c.TWetBulbFromHumRatio(tDryBulb, humRatio, pressure)
}

// RelHumFromTWetBulb returns relative humidity from the wet-bulb temperature.
func (c *Calculator) RelHumFromTWetBulb(tDryBulb float64, tWetBulb float64, pressure float64) (float64, error) {
	humRatio, err := c.HumRatioFromTWetBulb(tDryBulb, tWetBulb, pressure)
	if err != nil {
		return 0, err
	}
	return c.RelHumFromHumRatio(tDryBulb, humRatio, pressure)
}
