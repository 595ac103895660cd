// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	"fmt"
	"math"
	"sync"

	bsbmp "github.com/d2r2/go-bsbmp"
	i2c "github.com/d2r2/go-i2c"
	sht3x "github.com/d2r2/go-sht3x"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Readings of one sensor poll. Quantities the sensor cannot measure are nil.
type Readings struct {
	temperature *float64 // °C
	humidity    *float64 // %
	pressure    *float64 // Pa
}

type Sensor interface {
	Poll() (Readings, error)
	Labels() prometheus.Labels
}

// i2cDevice identifies a sensor on the I²C bus and serializes access to it.
type i2cDevice struct {
	Address uint8
	Bus     int
	Model   string
	mutex   sync.Mutex
}

func (d *i2cDevice) Labels() prometheus.Labels {
	return prometheus.Labels{
		"address": fmt.Sprintf("0x%x", d.Address),
		"bus":     fmt.Sprintf("%d", d.Bus),
		"model":   d.Model,
	}
}

type BMPSensor struct {
	i2cDevice
	bmp          *bsbmp.BMP
	accuracy     bsbmp.AccuracyMode
	accuracy_str string
}

func NewBMPSensor(
	address uint8,
	bus int,
	model string,
	sensorType bsbmp.SensorType,
	accuracy bsbmp.AccuracyMode,
	accuracy_str string,
) (*BMPSensor, error) {
	logrus.Infof("New BMP sensor: %s,address=0x%x,bus=%d,accuracy=%s", model, address, bus, accuracy_str)
	i2c, err := i2c.NewI2C(address, bus)
	if err != nil {
		return nil, err
	}
	bmp, err := bsbmp.NewBMP(sensorType, i2c)
	if err != nil {
		return nil, err
	}
	return &BMPSensor{
		i2cDevice:    i2cDevice{Address: address, Bus: bus, Model: model},
		bmp:          bmp,
		accuracy:     accuracy,
		accuracy_str: accuracy_str,
	}, nil
}

func (s *BMPSensor) Labels() prometheus.Labels {
	labels := s.i2cDevice.Labels()
	labels["accuracy"] = s.accuracy_str
	return labels
}

// Poll reads temperature, pressure and (on the BME280) humidity.
// Readings taken before a failing read are returned along with the error.
func (s *BMPSensor) Poll() (Readings, error) {
	var readings Readings
	s.mutex.Lock()
	defer s.mutex.Unlock()

	temp, err := s.bmp.ReadTemperatureC(s.accuracy)
	if err != nil {
		return readings, err
	}
	readings.temperature = roundedReading(temp, 2)

	pressure, err := s.bmp.ReadPressurePa(s.accuracy)
	if err != nil {
		return readings, err
	}
	readings.pressure = roundedReading(pressure, 1)

	supported, rh, err := s.bmp.ReadHumidityRH(s.accuracy)
	if err != nil {
		return readings, err
	}
	if supported {
		readings.humidity = roundedReading(rh, 2)
	}
	return readings, nil
}

type SHT3xSensor struct {
	i2cDevice
	I2C               *i2c.I2C
	SHT3X             sht3x.SHT3X
	repeatability     sht3x.MeasureRepeatability
	repeatability_str string
}

func NewSHT3xSensor(
	address uint8,
	bus int,
	model string,
	repeatability sht3x.MeasureRepeatability,
	repeatability_str string,
) (*SHT3xSensor, error) {
	logrus.Infof(
		"New SHT3x sensor: %s,address=0x%x,bus=%d,repeatability=%s",
		model,
		address,
		bus,
		repeatability_str,
	)
	i2c, err := i2c.NewI2C(address, bus)
	if err != nil {
		return nil, err
	}
	return &SHT3xSensor{
		i2cDevice:         i2cDevice{Address: address, Bus: bus, Model: model},
		I2C:               i2c,
		SHT3X:             *sht3x.NewSHT3X(),
		repeatability:     repeatability,
		repeatability_str: repeatability_str,
	}, nil
}

func (s *SHT3xSensor) Labels() prometheus.Labels {
	labels := s.i2cDevice.Labels()
	labels["repeatability"] = s.repeatability_str
	return labels
}

// Poll reads temperature and relative humidity. The SHT3x cannot measure
// pressure, which is then taken from the station configuration.
func (s *SHT3xSensor) Poll() (Readings, error) {
	var readings Readings

	s.mutex.Lock()
	temp, rh, err := s.SHT3X.ReadTemperatureAndRelativeHumidity(s.I2C, s.repeatability)
	s.mutex.Unlock()
	if err != nil {
		return readings, err
	}

	readings.temperature = roundedReading(temp, 2)
	readings.humidity = roundedReading(rh, 2)
	return readings, nil
}

func roundedReading(value float32, precision int) *float64 {
	rounded := round64(float64(value), precision)
	return &rounded
}

func round64(value float64, precision int) float64 {
	return math.Round(value*math.Pow10(precision)) / math.Pow10(precision)
}
