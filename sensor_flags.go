// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	"fmt"
	"strconv"
	"strings"

	bsbmp "github.com/d2r2/go-bsbmp"
	sht3x "github.com/d2r2/go-sht3x"
)

// SensorFlags is the parsed form of a sensor argument like
// "BME280,bus=1,address=0x77,pressure_offset=-35".
type SensorFlags struct {
	Model          string
	Address        *uint8
	Bus            *int
	Accuracy       string
	Repeatability  string
	TempOffset     float64
	HumidityOffset float64
	PressureOffset float64
}

func parseOffset(name string, value string) (float64, error) {
	offset, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("Failed to parse %s offset '%s': %s", name, value, err)
	}
	return offset, nil
}

var sensorOptions = map[string]func(flags *SensorFlags, value string) error{
	"address": func(flags *SensorFlags, value string) error {
		address8, err := strconv.ParseUint(value, 0, 8)
		if err != nil {
			return fmt.Errorf("Specified address '%s' is not an unsigned integer: %s", value, err)
		}
		address := uint8(address8)
		flags.Address = &address
		return nil
	},
	"bus": func(flags *SensorFlags, value string) error {
		bus32, err := strconv.ParseInt(value, 0, 32)
		if err != nil {
			return fmt.Errorf("Specified bus '%s' is not an integer: %s", value, err)
		}
		bus := int(bus32)
		flags.Bus = &bus
		return nil
	},
	"accuracy": func(flags *SensorFlags, value string) error {
		flags.Accuracy = value
		return nil
	},
	"repeatability": func(flags *SensorFlags, value string) error {
		flags.Repeatability = value
		return nil
	},
	"temp_offset": func(flags *SensorFlags, value string) (err error) {
		flags.TempOffset, err = parseOffset("temperature", value)
		return err
	},
	"humidity_offset": func(flags *SensorFlags, value string) (err error) {
		flags.HumidityOffset, err = parseOffset("humidity", value)
		return err
	},
	"pressure_offset": func(flags *SensorFlags, value string) (err error) {
		flags.PressureOffset, err = parseOffset("pressure", value)
		return err
	},
}

func parseSensorFlags(sensor string) (SensorFlags, error) {
	var flags SensorFlags
	fields := strings.Split(sensor, ",")
	flags.Model = fields[0]
	for _, field := range fields[1:] {
		key, value, _ := strings.Cut(field, "=")
		parse, ok := sensorOptions[key]
		if !ok {
			return flags, fmt.Errorf("Unknown sensor option '%s'.", key)
		}
		if err := parse(&flags, value); err != nil {
			return flags, err
		}
	}
	return flags, nil
}

func (s SensorFlags) addressOrDefault(address uint8) uint8 {
	if s.Address == nil {
		return address
	}
	return *s.Address
}

func (s SensorFlags) busOrDefault() int {
	if s.Bus == nil {
		return 0
	}
	return *s.Bus
}

var bmpAccuracies = map[string]bsbmp.AccuracyMode{
	"ultra_low":  bsbmp.ACCURACY_ULTRA_LOW,
	"low":        bsbmp.ACCURACY_LOW,
	"standard":   bsbmp.ACCURACY_STANDARD,
	"high":       bsbmp.ACCURACY_HIGH,
	"ultra_high": bsbmp.ACCURACY_ULTRA_HIGH,
}

func (s SensorFlags) NewBMPSensor(sensorType bsbmp.SensorType) (*BMPSensor, error) {
	if s.Repeatability != "" {
		return nil, fmt.Errorf("Sensor model '%s' does not support repeatability", s.Model)
	}
	if s.Accuracy == "" {
		s.Accuracy = "standard"
	}
	accuracy, ok := bmpAccuracies[s.Accuracy]
	if !ok {
		return nil, fmt.Errorf("Unknown accuracy: %s", s.Accuracy)
	}
	return NewBMPSensor(s.addressOrDefault(0x76), s.busOrDefault(), s.Model, sensorType, accuracy, s.Accuracy)
}

var sht3xRepeatabilities = map[string]sht3x.MeasureRepeatability{
	"low":    sht3x.RepeatabilityLow,
	"medium": sht3x.RepeatabilityMedium,
	"high":   sht3x.RepeatabilityHigh,
}

func (s SensorFlags) NewSHT3xSensor() (*SHT3xSensor, error) {
	if s.Accuracy != "" {
		return nil, fmt.Errorf("Sensor model '%s' does not support accuracy", s.Model)
	}
	if s.Repeatability == "" {
		s.Repeatability = "high"
	}
	repeatability, ok := sht3xRepeatabilities[s.Repeatability]
	if !ok {
		return nil, fmt.Errorf("Unknown repeatability: %s", s.Repeatability)
	}
	return NewSHT3xSensor(s.addressOrDefault(0x45), s.busOrDefault(), s.Model, repeatability, s.Repeatability)
}

func (s SensorFlags) NewSensor() (Sensor, error) {
	switch s.Model {
	case "BME280":
		return s.NewBMPSensor(bsbmp.BME280)
	case "BMP180":
		return s.NewBMPSensor(bsbmp.BMP180)
	case "BMP280":
		return s.NewBMPSensor(bsbmp.BMP280)
	case "BMP388":
		return s.NewBMPSensor(bsbmp.BMP388)
	case "SHT30", "SHT31", "SHT35":
		return s.NewSHT3xSensor()
	default:
		return nil, fmt.Errorf("Invalid/Unsupported sensor model '%s'!", s.Model)
	}
}

func (s SensorFlags) String() string {
	var b strings.Builder
	b.WriteString(s.Model)
	if s.Address != nil {
		fmt.Fprintf(&b, ",address=0x%x", *s.Address)
	}
	if s.Bus != nil {
		fmt.Fprintf(&b, ",bus=%d", *s.Bus)
	}
	if s.Accuracy != "" {
		fmt.Fprintf(&b, ",accuracy=%s", s.Accuracy)
	}
	if s.Repeatability != "" {
		fmt.Fprintf(&b, ",repeatability=%s", s.Repeatability)
	}
	if s.TempOffset != 0.0 {
		fmt.Fprintf(&b, ",temp_offset=%g", s.TempOffset)
	}
	if s.HumidityOffset != 0.0 {
		fmt.Fprintf(&b, ",humidity_offset=%g", s.HumidityOffset)
	}
	if s.PressureOffset != 0.0 {
		fmt.Fprintf(&b, ",pressure_offset=%g", s.PressureOffset)
	}
	return b.String()
}

func parseSensors(args []string) ([]SensorFlags, error) {
	sensors := make([]SensorFlags, len(args))

	for i, arg := range args {
		sensor, err := parseSensorFlags(arg)
		if err != nil {
			return nil, fmt.Errorf("sensor %d '%s': %w", i+1, arg, err)
		}
		sensors[i] = sensor
	}

	return sensors, nil
}
