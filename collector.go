// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/bdrung/psychrometric-exporter/psychrometrics"
)

type sensorCollector struct {
	Sensor  Sensor
	calc    *psychrometrics.Calculator
	station Station

	Up              *prometheus.Desc
	TemperatureC    *prometheus.Desc
	HumidityRH      *prometheus.Desc
	HumidityGram    *prometheus.Desc
	PressurePa      *prometheus.Desc
	RawTemperatureC *prometheus.Desc
	RawHumidityRH   *prometheus.Desc
	RawHumidityGram *prometheus.Desc
	RawPressurePa   *prometheus.Desc

	SeaLevelPressurePa   *prometheus.Desc
	DewPointC            *prometheus.Desc
	WetBulbC             *prometheus.Desc
	HumidityRatio        *prometheus.Desc
	VaporPressurePa      *prometheus.Desc
	VaporPressureDeficit *prometheus.Desc
	Enthalpy             *prometheus.Desc
	SpecificVolume       *prometheus.Desc
	Density              *prometheus.Desc
	DegreeOfSaturation   *prometheus.Desc

	TempOffset     float64
	HumidityOffset float64
	PressureOffset float64
}

func NewSensorCollector(
	s Sensor,
	flags SensorFlags,
	calc *psychrometrics.Calculator,
	station Station,
) *sensorCollector {
	labels := s.Labels()
	desc := func(name string, help string) *prometheus.Desc {
		return prometheus.NewDesc(name, help, nil, labels)
	}
	return &sensorCollector{
		Sensor:  s,
		calc:    calc,
		station: station,
		Up: desc(
			"sensor_up",
			"Value is 1 if reading sensor date was successful, 0 otherwise.",
		),
		TemperatureC:    desc("sensor_temperature_celsius", "Temperature in Celsius"),
		HumidityRH:      desc("sensor_humidity_percent", "Relative humidity in percent"),
		HumidityGram:    desc("sensor_humidity_grams_per_cubic_meter", "Absolute humidity in gram / cubic meter"),
		PressurePa:      desc("sensor_pressure_pascals", "Atmospheric pressure in Pascal"),
		RawTemperatureC: desc("sensor_raw_temperature_celsius", "Uncorrected temperature in Celsius"),
		RawHumidityRH:   desc("sensor_raw_humidity_percent", "Uncorrected relative humidity in percent"),
		RawHumidityGram: desc(
			"sensor_raw_humidity_grams_per_cubic_meter",
			"Uncorrected absolute humidity in gram / cubic meter",
		),
		RawPressurePa: desc("sensor_raw_pressure_pascals", "Uncorrected atmospheric pressure in Pascal"),
		SeaLevelPressurePa: desc(
			"sensor_sea_level_pressure_pascals",
			"Atmospheric pressure reduced to sea level in Pascal",
		),
		DewPointC: desc("sensor_dew_point_celsius", "Dew point temperature in Celsius"),
		WetBulbC:  desc("sensor_wet_bulb_celsius", "Wet bulb temperature in Celsius"),
		HumidityRatio: desc(
			"sensor_humidity_ratio",
			"Mass of water vapor per mass of dry air in kilogram / kilogram",
		),
		VaporPressurePa: desc("sensor_vapor_pressure_pascals", "Partial pressure of water vapor in Pascal"),
		VaporPressureDeficit: desc(
			"sensor_vapor_pressure_deficit_pascals",
			"Difference between saturation and actual vapor pressure in Pascal",
		),
		Enthalpy: desc(
			"sensor_enthalpy_joules_per_kilogram",
			"Moist air enthalpy in Joule / kilogram dry air",
		),
		SpecificVolume: desc(
			"sensor_specific_volume_cubic_meters_per_kilogram",
			"Moist air specific volume in cubic meter / kilogram dry air",
		),
		Density: desc("sensor_air_density_kilograms_per_cubic_meter", "Moist air density in kilogram / cubic meter"),
		DegreeOfSaturation: desc(
			"sensor_degree_of_saturation_ratio",
			"Humidity ratio divided by the humidity ratio of saturated air",
		),
		TempOffset:     flags.TempOffset,
		HumidityOffset: flags.HumidityOffset,
		PressureOffset: flags.PressureOffset,
	}
}

func (collector *sensorCollector) gauge(ch chan<- prometheus.Metric, desc *prometheus.Desc, value float64) {
	ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, value)
}

func (collector *sensorCollector) Collect(ch chan<- prometheus.Metric) {
	readings, err := collector.Sensor.Poll()
	if err != nil {
		logrus.Print(err)
		collector.gauge(ch, collector.Up, 0.0)
	} else {
		collector.gauge(ch, collector.Up, 1)
	}
	if readings.temperature != nil {
		collector.gauge(ch, collector.TemperatureC, *readings.temperature+collector.TempOffset)
		collector.gauge(ch, collector.RawTemperatureC, *readings.temperature)
	}
	if readings.humidity != nil {
		collector.gauge(ch, collector.HumidityRH, *readings.humidity+collector.HumidityOffset)
		collector.gauge(ch, collector.RawHumidityRH, *readings.humidity)
	}
	var pressure *float64
	if readings.pressure != nil {
		corrected := *readings.pressure + collector.PressureOffset
		pressure = &corrected
		collector.gauge(ch, collector.PressurePa, corrected)
		collector.gauge(ch, collector.RawPressurePa, *readings.pressure)
	}
	if readings.temperature == nil || readings.humidity == nil {
		return
	}

	calc := collector.calc
	temperature := *readings.temperature + collector.TempOffset
	humidity := *readings.humidity + collector.HumidityOffset
	atmosphericPressure := collector.station.AtmosphericPressure(calc, pressure)
	absoluteHumidity, err := Relative2AbsoluteHumidity(calc, clampHumidity(humidity), temperature, atmosphericPressure)
	if err != nil {
		logrus.WithError(err).Warn("Failed to calculate absolute humidity")
	} else {
		collector.gauge(ch, collector.HumidityGram, round64(absoluteHumidity, 2))
	}

	derived, err := derivePsychrometrics(
		calc,
		temperature,
		humidity,
		atmosphericPressure,
		collector.station.Altitude,
	)
	if err != nil {
		logrus.WithError(err).Warnf(
			"Failed to calculate psychrometrics for %.2f °C and %.2f %%", temperature, humidity)
	} else {
		collector.gauge(ch, collector.DewPointC, round64(derived.TDewPoint, 2))
		collector.gauge(ch, collector.WetBulbC, round64(derived.TWetBulb, 2))
		collector.gauge(ch, collector.HumidityRatio, derived.HumRatio)
		collector.gauge(ch, collector.VaporPressurePa, derived.VapPres)
		collector.gauge(ch, collector.VaporPressureDeficit, derived.VaporPressureDeficit)
		collector.gauge(ch, collector.Enthalpy, derived.MoistAirEnthalpy)
		collector.gauge(ch, collector.SpecificVolume, derived.MoistAirVolume)
		collector.gauge(ch, collector.Density, derived.Density)
		collector.gauge(ch, collector.DegreeOfSaturation, derived.DegreeOfSaturation)
		if pressure != nil {
			collector.gauge(ch, collector.SeaLevelPressurePa, derived.SeaLevelPressure)
		}
	}

	rawAbsoluteHumidity, err := Relative2AbsoluteHumidity(
		calc,
		clampHumidity(*readings.humidity),
		*readings.temperature,
		collector.station.AtmosphericPressure(calc, readings.pressure),
	)
	if err != nil {
		logrus.WithError(err).Warn("Failed to calculate uncorrected absolute humidity")
		return
	}
	collector.gauge(ch, collector.RawHumidityGram, round64(rawAbsoluteHumidity, 2))
}

func (collector *sensorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.TemperatureC
	ch <- collector.HumidityRH
	ch <- collector.HumidityGram
	ch <- collector.PressurePa
	ch <- collector.Up
	ch <- collector.RawTemperatureC
	ch <- collector.RawHumidityRH
	ch <- collector.RawHumidityGram
	ch <- collector.RawPressurePa
	ch <- collector.SeaLevelPressurePa
	ch <- collector.DewPointC
	ch <- collector.WetBulbC
	ch <- collector.HumidityRatio
	ch <- collector.VaporPressurePa
	ch <- collector.VaporPressureDeficit
	ch <- collector.Enthalpy
	ch <- collector.SpecificVolume
	ch <- collector.Density
	ch <- collector.DegreeOfSaturation
}
