// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	"math"
	"testing"

	"github.com/bdrung/psychrometric-exporter/psychrometrics"
)

func newSICalculator(t *testing.T) *psychrometrics.Calculator {
	t.Helper()
	calc, err := psychrometrics.New(psychrometrics.SI)
	if err != nil {
		t.Fatalf("Failed to create SI calculator: %s", err)
	}
	return calc
}

func TestRelative2AbsoluteHumidity(t *testing.T) {
	calc := newSICalculator(t)
	tests := []struct {
		rh          float64
		tempCelsius float64
		ah          float64
	}{
		{40.0, 20.0, 6.9},
		{50.0, 15.0, 6.4},
		{70.0, 20.0, 12.1},
		{80.0, 15.0, 10.3},
		{80.0, -10.0, 1.7},
		{20.0, 50.0, 16.6},
	}

	for _, test := range tests {
		ah, err := Relative2AbsoluteHumidity(calc, test.rh, test.tempCelsius, 101325)
		if err != nil {
			t.Errorf("Absolute humidity for %f%% humidity at %f° C failed: %s", test.rh, test.tempCelsius, err)
			continue
		}
		if math.Abs(ah-test.ah) > 0.05 {
			t.Errorf(
				"Absolute humidity for %f%% humidity at %f° C was incorrect, got: %f, want: %f.",
				test.rh, test.tempCelsius, ah, test.ah)
		}
	}
}

func TestRelative2AbsoluteHumidityInvalid(t *testing.T) {
	calc := newSICalculator(t)
	if _, err := Relative2AbsoluteHumidity(calc, 120, 20, 101325); err == nil {
		t.Errorf("Expected an error for 120%% relative humidity.")
	}
	if _, err := Relative2AbsoluteHumidity(calc, 50, 20, 0); err == nil {
		t.Errorf("Expected an error for zero pressure.")
	}
}

func TestClampHumidity(t *testing.T) {
	tests := []struct {
		name string
		rh   float64
		want float64
	}{
		{"negative", -1.5, 0},
		{"in range", 42.25, 42.25},
		{"saturated", 100, 100},
		{"above saturation", 102.5, 100},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := clampHumidity(test.rh); got != test.want {
				t.Errorf("clampHumidity(%v) = %v, want %v", test.rh, got, test.want)
			}
		})
	}
}

func TestDerivePsychrometrics(t *testing.T) {
	calc := newSICalculator(t)
	got, err := derivePsychrometrics(calc, 25, 80, 101325, 0)
	if err != nil {
		t.Fatalf("derivePsychrometrics() unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		got       float64
		want      float64
		tolerance float64
	}{
		{"humidity ratio", got.HumRatio, 0.0159610, 1e-6},
		{"absolute humidity", got.AbsoluteHumidity, 18.4244, 1e-3},
		{"dew point", got.TDewPoint, 21.3094, 0.005},
		{"wet bulb", got.TWetBulb, 22.3803, 0.005},
		{"vapor pressure", got.VapPres, 2535.25, 0.01},
		{"vapor pressure deficit", got.VaporPressureDeficit, 633.81, 0.01},
		{"enthalpy", got.MoistAirEnthalpy, 65810.72, 0.01},
		{"specific volume", got.MoistAirVolume, 0.8663001, 1e-6},
		{"density", got.Density, 1.172759, 1e-6},
		{"degree of saturation", got.DegreeOfSaturation, 0.794867, 1e-6},
		{"sea level pressure", got.SeaLevelPressure, 101325, 1e-6},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if math.Abs(test.got-test.want) > test.tolerance {
				t.Errorf("%s = %v, want %v", test.name, test.got, test.want)
			}
		})
	}
}

func TestDerivePsychrometricsAboveSaturation(t *testing.T) {
	calc := newSICalculator(t)
	got, err := derivePsychrometrics(calc, 25, 103.5, 101325, 0)
	if err != nil {
		t.Fatalf("derivePsychrometrics() unexpected error: %v", err)
	}
	if got.RelHum != 1 {
		t.Errorf("Relative humidity was not clamped, got: %v", got.RelHum)
	}
	if math.Abs(got.TDewPoint-25) > 0.01 || math.Abs(got.TWetBulb-25) > 0.01 {
		t.Errorf("Saturated air must have dew point and wet bulb at 25° C, got: %v, %v",
			got.TDewPoint, got.TWetBulb)
	}
	if math.Abs(got.VaporPressureDeficit) > 1e-6 {
		t.Errorf("Saturated air must not have a vapor pressure deficit, got: %v", got.VaporPressureDeficit)
	}
}

func TestDerivePsychrometricsAltitude(t *testing.T) {
	calc := newSICalculator(t)
	got, err := derivePsychrometrics(calc, 25, 50, 89874.52, 1000)
	if err != nil {
		t.Fatalf("derivePsychrometrics() unexpected error: %v", err)
	}
	if math.Abs(got.SeaLevelPressure-100661.77) > 0.05 {
		t.Errorf("Sea level pressure was incorrect, got: %f, want: %f.", got.SeaLevelPressure, 100661.77)
	}
}

func TestDerivePsychrometricsDry(t *testing.T) {
	calc := newSICalculator(t)
	if _, err := derivePsychrometrics(calc, 25, 0, 101325, 0); err == nil {
		t.Errorf("Expected an error for perfectly dry air.")
	}
}
