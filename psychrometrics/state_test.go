// Copyright (C) 2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychrometrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPsychrometricsFromRelHum(t *testing.T) {
	c := newCalculator(t, SI)
	s, err := c.PsychrometricsFromRelHum(25, 0.8, 101325)
	require.NoError(t, err)
	assert.Equal(t, 25.0, s.TDryBulb)
	assert.Equal(t, 101325.0, s.Pressure)
	assert.Equal(t, 0.8, s.RelHum)
	assert.InDelta(t, 0.0159610, s.HumRatio, 1e-7)
	assert.InDelta(t, 21.3094, s.TDewPoint, 0.001)
	assert.InDelta(t, 22.3803, s.TWetBulb, 0.001)
	assert.InDelta(t, 2535.250, s.VapPres, 1e-3)
	assert.InDelta(t, 65810.72, s.MoistAirEnthalpy, 0.01)
	assert.InDelta(t, 0.8663001, s.MoistAirVolume, 1e-7)
	assert.InDelta(t, 0.794867, s.DegreeOfSaturation, 1e-6)
}

func TestPsychrometricsFromRelHumIP(t *testing.T) {
	c := newCalculator(t, IP)
	s, err := c.PsychrometricsFromRelHum(77, 0.8, 14.696)
	require.NoError(t, err)
	assert.InDelta(t, 0.0159618, s.HumRatio, 1e-7)
	assert.InDelta(t, 70.3569, s.TDewPoint, 0.0018)
	assert.InDelta(t, 72.2829, s.TWetBulb, 0.0018)
	assert.InDelta(t, 35.96113, s.MoistAirEnthalpy, 1e-5)
	assert.InDelta(t, 13.876672, s.MoistAirVolume, 1e-6)
	assert.InDelta(t, 0.794867, s.DegreeOfSaturation, 1e-6)
}

func TestPsychrometricsFromTWetBulb(t *testing.T) {
	c := newCalculator(t, SI)
	s, err := c.PsychrometricsFromTWetBulb(25, 20, 101325)
	require.NoError(t, err)
	assert.Equal(t, 20.0, s.TWetBulb)
	assert.InDelta(t, 0.0125973, s.HumRatio, 1e-7)
	assert.InDelta(t, 17.5901, s.TDewPoint, 0.001)
	assert.InDelta(t, 0.634749, s.RelHum, 1e-6)
	assert.InDelta(t, 57241.56, s.MoistAirEnthalpy, 0.01)
	assert.InDelta(t, 0.8617320, s.MoistAirVolume, 1e-7)

	ip := newCalculator(t, IP)
	s, err = ip.PsychrometricsFromTWetBulb(77, 68, 14.696)
	require.NoError(t, err)
	assert.InDelta(t, 0.0126003, s.HumRatio, 1e-7)
	assert.InDelta(t, 63.6675, s.TDewPoint, 0.0018)
	assert.InDelta(t, 0.634868, s.RelHum, 1e-6)
	assert.InDelta(t, 32.27965, s.MoistAirEnthalpy, 1e-5)
}

func TestPsychrometricsFromTWetBulbBelowFreezing(t *testing.T) {
	c := newCalculator(t, SI)
	s, err := c.PsychrometricsFromTWetBulb(-5, -7, 101325)
	require.NoError(t, err)
	assert.InDelta(t, 0.00137060, s.HumRatio, 1e-8)
	assert.InDelta(t, -11.7240, s.TDewPoint, 0.001)
	assert.InDelta(t, 0.554532, s.RelHum, 1e-6)
	assert.InDelta(t, -1614.88, s.MoistAirEnthalpy, 0.01)
}

func TestPsychrometricsFromTDewPoint(t *testing.T) {
	c := newCalculator(t, SI)
	s, err := c.PsychrometricsFromTDewPoint(25, 15, 101325)
	require.NoError(t, err)
	assert.Equal(t, 15.0, s.TDewPoint)
	assert.InDelta(t, 0.0106469, s.HumRatio, 1e-7)
	assert.InDelta(t, 18.5037, s.TWetBulb, 0.001)
	assert.InDelta(t, 0.538129, s.RelHum, 1e-6)
	assert.InDelta(t, 52273.05, s.MoistAirEnthalpy, 0.01)

	ip := newCalculator(t, IP)
	s, err = ip.PsychrometricsFromTDewPoint(77, 59, 14.696)
	require.NoError(t, err)
	assert.InDelta(t, 0.0106474, s.HumRatio, 1e-7)
	assert.InDelta(t, 65.3023, s.TWetBulb, 0.0018)
	assert.InDelta(t, 30.14092, s.MoistAirEnthalpy, 1e-5)
}

func TestPsychrometricsConsistent(t *testing.T) {
	c := newCalculator(t, SI)
	fromRelHum, err := c.PsychrometricsFromRelHum(30, 0.45, 95000)
	require.NoError(t, err)
	fromTDewPoint, err := c.PsychrometricsFromTDewPoint(30, fromRelHum.TDewPoint, 95000)
	require.NoError(t, err)
	fromTWetBulb, err := c.PsychrometricsFromTWetBulb(30, fromRelHum.TWetBulb, 95000)
	require.NoError(t, err)

	assert.InDelta(t, 0.45, fromTDewPoint.RelHum, 1e-4)
	assert.InDelta(t, 0.45, fromTWetBulb.RelHum, 1e-4)
	assert.InDelta(t, fromRelHum.HumRatio, fromTDewPoint.HumRatio, 1e-6)
	assert.InDelta(t, fromRelHum.HumRatio, fromTWetBulb.HumRatio, 1e-6)
}

func TestPsychrometricsDomainErrors(t *testing.T) {
	c := newCalculator(t, SI)
	_, err := c.PsychrometricsFromRelHum(25, 1.5, 101325)
	requireDomainError(t, err)
	_, err = c.PsychrometricsFromTDewPoint(20, 25, 101325)
	requireDomainError(t, err)
	_, err = c.PsychrometricsFromTWetBulb(20, 25, 101325)
	requireDomainError(t, err)
	s, err := c.PsychrometricsFromRelHum(25, 0, 101325)
	requireDomainError(t, err)
	assert.Equal(t, State{}, s)
}

func TestPsychrometricsFromTWetBulbSaturatedCold(t *testing.T) {
	tests := []struct {
		units       UnitSystem
		temperature float64
		pressure    float64
	}{
		{SI, -95, 101325},
		{SI, -99, 101325},
		{IP, -145, 14.696},
	}
	for _, test := range tests {
		c := newCalculator(t, test.units)
		s, err := c.PsychrometricsFromTWetBulb(test.temperature, test.temperature, test.pressure)
		require.NoError(t, err)
		assert.InDelta(t, 1, s.RelHum, 1e-9, "%v T=%g", test.units, test.temperature)
		assert.InDelta(t, 1, s.DegreeOfSaturation, 1e-9, "%v T=%g", test.units, test.temperature)
		assert.InDelta(t, test.temperature, s.TDewPoint, c.Tolerance())
	}
}

func TestPsychrometricsFromTWetBulbInvariants(t *testing.T) {
	grids := []struct {
		units       UnitSystem
		minTemp     float64
		maxTemp     float64
		step        float64
		depressions []float64
	}{
		{SI, -99, 90, 3, []float64{0, 0.5, 2, 10}},
		{IP, -147, 194, 5.4, []float64{0, 0.9, 3.6, 18}},
	}
	for _, grid := range grids {
		c := newCalculator(t, grid.units)
		minTemp, _ := c.SaturationRange()
		pressure := c.StandardAtmPressure(0)
		for i := 0; grid.minTemp+float64(i)*grid.step <= grid.maxTemp; i++ {
			tDryBulb := grid.minTemp + float64(i)*grid.step
			for _, depression := range grid.depressions {
				tWetBulb := tDryBulb - depression
				if tWetBulb < minTemp {
					continue
				}
				msg := []interface{}{"%v Tdb=%g Twb=%g", grid.units, tDryBulb, tWetBulb}
				s, err := c.PsychrometricsFromTWetBulb(tDryBulb, tWetBulb, pressure)
				require.NoError(t, err, msg...)
				assert.GreaterOrEqual(t, s.HumRatio, 0.0, msg...)
				assert.GreaterOrEqual(t, s.RelHum, 0.0, msg...)
				assert.LessOrEqual(t, s.RelHum, 1+1e-12, msg...)
				assert.LessOrEqual(t, s.DegreeOfSaturation, 1+1e-12, msg...)
				assert.LessOrEqual(t, s.TDewPoint, s.TWetBulb+c.Tolerance(), msg...)
				assert.LessOrEqual(t, s.TWetBulb, s.TDryBulb, msg...)
			}
		}
	}
}

func TestPsychrometricsAboveBoilingPoint(t *testing.T) {
	c := newCalculator(t, SI)
	s, err := c.PsychrometricsFromRelHum(120, 0.1, 101325)
	require.NoError(t, err)
	assert.InDelta(t, 0.151693, s.HumRatio, 1e-6)
	assert.InDelta(t, 59.9184, s.TDewPoint, 0.005)
	assert.InDelta(t, 63.1312, s.TWetBulb, 0.005)
	assert.InDelta(t, 533962.07, s.MoistAirEnthalpy, 0.01)
	assert.InDelta(t, 1.385393, s.MoistAirVolume, 1e-6)
	assert.True(t, math.IsNaN(s.DegreeOfSaturation))
}
