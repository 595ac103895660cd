// Copyright (C) 2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	"errors"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

type fakeSensor struct {
	readings Readings
	err      error
}

func (s *fakeSensor) Poll() (Readings, error) {
	return s.readings, s.err
}

func (s *fakeSensor) Labels() prometheus.Labels {
	return prometheus.Labels{"model": "FAKE"}
}

func float64ptr(v float64) *float64 {
	return &v
}

func gatherGauges(t *testing.T, collector prometheus.Collector) map[string]float64 {
	t.Helper()
	registry := prometheus.NewPedanticRegistry()
	if err := registry.Register(collector); err != nil {
		t.Fatalf("Failed to register collector: %s", err)
	}
	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %s", err)
	}
	gauges := make(map[string]float64, len(families))
	for _, family := range families {
		metrics := family.GetMetric()
		if len(metrics) != 1 {
			t.Fatalf("Expected one metric for %s, got %d", family.GetName(), len(metrics))
		}
		gauges[family.GetName()] = metrics[0].GetGauge().GetValue()
	}
	return gauges
}

func checkGauges(t *testing.T, got map[string]float64, want map[string]float64, tolerance float64) {
	t.Helper()
	for name, value := range want {
		actual, ok := got[name]
		if !ok {
			t.Errorf("Metric %s is missing", name)
			continue
		}
		if math.Abs(actual-value) > tolerance*math.Max(1, math.Abs(value)) {
			t.Errorf("Metric %s = %v, want %v", name, actual, value)
		}
	}
}

func TestSensorCollectorHumidity(t *testing.T) {
	sensor := &fakeSensor{readings: Readings{
		temperature: float64ptr(24.5),
		humidity:    float64ptr(78),
	}}
	flags := SensorFlags{Model: "FAKE", TempOffset: 0.5, HumidityOffset: 2}
	collector := NewSensorCollector(sensor, flags, newSICalculator(t), Station{})

	got := gatherGauges(t, collector)
	checkGauges(t, got, map[string]float64{
		"sensor_up":                                        1,
		"sensor_temperature_celsius":                       25,
		"sensor_raw_temperature_celsius":                   24.5,
		"sensor_humidity_percent":                          80,
		"sensor_raw_humidity_percent":                      78,
		"sensor_humidity_grams_per_cubic_meter":            18.42,
		"sensor_raw_humidity_grams_per_cubic_meter":        17.46,
		"sensor_dew_point_celsius":                         21.31,
		"sensor_wet_bulb_celsius":                          22.38,
		"sensor_humidity_ratio":                            0.015961,
		"sensor_vapor_pressure_pascals":                    2535.25,
		"sensor_vapor_pressure_deficit_pascals":            633.81,
		"sensor_enthalpy_joules_per_kilogram":              65810.7,
		"sensor_specific_volume_cubic_meters_per_kilogram": 0.8663,
		"sensor_air_density_kilograms_per_cubic_meter":     1.17276,
		"sensor_degree_of_saturation_ratio":                0.79487,
	}, 1e-4)
	for _, name := range []string{
		"sensor_pressure_pascals",
		"sensor_raw_pressure_pascals",
		"sensor_sea_level_pressure_pascals",
	} {
		if _, ok := got[name]; ok {
			t.Errorf("Metric %s must not be exported without pressure reading", name)
		}
	}
}

func TestSensorCollectorPressure(t *testing.T) {
	sensor := &fakeSensor{readings: Readings{
		temperature: float64ptr(25),
		humidity:    float64ptr(80),
		pressure:    float64ptr(101300),
	}}
	flags := SensorFlags{Model: "FAKE", PressureOffset: 25}
	station := Station{Pressure: 90000}
	collector := NewSensorCollector(sensor, flags, newSICalculator(t), station)

	got := gatherGauges(t, collector)
	checkGauges(t, got, map[string]float64{
		"sensor_up":                             1,
		"sensor_pressure_pascals":               101325,
		"sensor_raw_pressure_pascals":           101300,
		"sensor_sea_level_pressure_pascals":     101325,
		"sensor_humidity_grams_per_cubic_meter": 18.42,
		"sensor_dew_point_celsius":              21.31,
	}, 1e-4)
}

func TestSensorCollectorTemperatureOnly(t *testing.T) {
	sensor := &fakeSensor{readings: Readings{
		temperature: float64ptr(21.5),
		pressure:    float64ptr(95000),
	}}
	collector := NewSensorCollector(sensor, SensorFlags{Model: "FAKE"}, newSICalculator(t), Station{})

	got := gatherGauges(t, collector)
	checkGauges(t, got, map[string]float64{
		"sensor_up":                      1,
		"sensor_temperature_celsius":     21.5,
		"sensor_raw_temperature_celsius": 21.5,
		"sensor_pressure_pascals":        95000,
	}, 1e-9)
	if len(got) != 5 {
		t.Errorf("Expected 5 metrics without humidity reading, got %d: %v", len(got), got)
	}
}

func TestSensorCollectorPollFailure(t *testing.T) {
	sensor := &fakeSensor{err: errors.New("i2c read failed")}
	collector := NewSensorCollector(sensor, SensorFlags{Model: "FAKE"}, newSICalculator(t), Station{})

	got := gatherGauges(t, collector)
	if len(got) != 1 || got["sensor_up"] != 0 {
		t.Errorf("Expected only sensor_up = 0, got %v", got)
	}
}

func TestSensorCollectorDryAfterOffset(t *testing.T) {
	sensor := &fakeSensor{readings: Readings{
		temperature: float64ptr(20),
		humidity:    float64ptr(1.5),
	}}
	flags := SensorFlags{Model: "FAKE", HumidityOffset: -3}
	collector := NewSensorCollector(sensor, flags, newSICalculator(t), Station{})

	got := gatherGauges(t, collector)
	checkGauges(t, got, map[string]float64{
		"sensor_up":                             1,
		"sensor_humidity_percent":               -1.5,
		"sensor_humidity_grams_per_cubic_meter": 0,
	}, 1e-9)
	if _, ok := got["sensor_raw_humidity_grams_per_cubic_meter"]; !ok {
		t.Errorf("Metric sensor_raw_humidity_grams_per_cubic_meter is missing")
	}
	if _, ok := got["sensor_dew_point_celsius"]; ok {
		t.Errorf("Metric sensor_dew_point_celsius must not be exported for perfectly dry air")
	}
}
