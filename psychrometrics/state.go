// Copyright (C) 2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychrometrics

import "math"

// State is the full set of psychrometric properties of one air sample.
type State struct {
	TDryBulb           float64
	Pressure           float64
	TWetBulb           float64
	TDewPoint          float64
	RelHum             float64
	HumRatio           float64
	VapPres            float64
	MoistAirEnthalpy   float64
	MoistAirVolume     float64
	DegreeOfSaturation float64 // NaN if the saturation pressure exceeds the total pressure
}

// complete fills the properties that only depend on dry bulb, humidity ratio
// and pressure.
func (c *Calculator) complete(s *State) error {
	var err error
	if s.VapPres, err = c.VapPresFromHumRatio(s.HumRatio, s.Pressure); err != nil {
		return err
	}
	if s.MoistAirEnthalpy, err = c.MoistAirEnthalpy(s.TDryBulb, s.HumRatio); err != nil {
		return err
	}
	if s.MoistAirVolume, err = c.MoistAirVolume(s.TDryBulb, s.HumRatio, s.Pressure); err != nil {
		return err
	}
	satVapPres, err := c.SatVapPres(s.TDryBulb)
	if err != nil {
		return err
	}
	if satVapPres >= s.Pressure {
		// Air cannot saturate when the saturation pressure exceeds the total pressure.
		s.DegreeOfSaturation = math.NaN()
		return nil
	}
	s.DegreeOfSaturation, err = c.DegreeOfSaturation(s.TDryBulb, s.HumRatio, s.Pressure)
	return err
}

// PsychrometricsFromTWetBulb computes all properties from dry-bulb
// temperature, wet-bulb temperature and pressure.
func (c *Calculator) PsychrometricsFromTWetBulb(tDryBulb float64, tWetBulb float64, pressure float64) (State, error) {
	s := State{TDryBulb: tDryBulb, TWetBulb: tWetBulb, Pressure: pressure}
	var err error
	if s.HumRatio, err = c.HumRatioFromTWetBulb(tDryBulb, tWetBulb, pressure); err != nil {
		return State{}, err
	}
	if s.TDewPoint, err = c.TDewPointFromHumRatio(tDryBulb, s.HumRatio, pressure); err != nil {
		return State{}, err
	}
	if s.RelHum, err = c.RelHumFromHumRatio(tDryBulb, s.HumRatio, pressure); err != nil {
		return State{}, err
	}
	if err = c.complete(&s); err != nil {
		return State{}, err
	}
	return s, nil
}

// PsychrometricsFromTDewPoint computes all properties from dry-bulb
// temperature, dew-point temperature and pressure.
func (c *Calculator) PsychrometricsFromTDewPoint(tDryBulb float64, tDewPoint float64, pressure float64) (State, error) {
	s := State{TDryBulb: tDryBulb, TDewPoint: tDewPoint, Pressure: pressure}
	if !(tDewPoint <= tDryBulb) {
		return State{}, domainErrorf("PsychrometricsFromTDewPoint",
			"dew point temperature %g is above dry bulb temperature %g", tDewPoint, tDryBulb)
	}
	var err error
	if s.HumRatio, err = c.HumRatioFromTDewPoint(tDewPoint, pressure); err != nil {
		return State{}, err
	}
	if s.TWetBulb, err = c.bisectTWetBulb(tDryBulb, s.HumRatio, pressure, tDewPoint); err != nil {
		return State{}, err
	}
	if s.RelHum, err = c.RelHumFromHumRatio(tDryBulb, s.HumRatio, pressure); err != nil {
		return State{}, err
	}
	if err = c.complete(&s); err != nil {
		return State{}, err
	}
	return s, nil
}

// PsychrometricsFromRelHum computes all properties from dry-bulb
// temperature, relative humidity [0-1] and pressure.
func (c *Calculator) PsychrometricsFromRelHum(tDryBulb float64, relHum float64, pressure float64) (State, error) {
	s := State{TDryBulb: tDryBulb, RelHum: relHum, Pressure: pressure}
	var err error
	if s.HumRatio, err = c.HumRatioFromRelHum(tDryBulb, relHum, pressure); err != nil {
		return State{}, err
	}
	if s.TDewPoint, err = c.TDewPointFromHumRatio(tDryBulb, s.HumRatio, pressure); err != nil {
		return State{}, err
	}
	if s.TWetBulb, err = c.bisectTWetBulb(tDryBulb, s.HumRatio, pressure, s.TDewPoint); err != nil {
		return State{}, err
	}
	if err = c.complete(&s); err != nil {
		return State{}, err
	}
	return s, nil
}
