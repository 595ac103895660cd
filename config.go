// Copyright (C) 2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/bdrung/psychrometric-exporter/psychrometrics"
)

type WebConfig struct {
	ListenAddress string `toml:"listen_address"`
	TelemetryPath string `toml:"telemetry_path"`
}

// Station describes where the sensors are located. It provides the
// atmospheric pressure for sensors that cannot measure it.
type Station struct {
	// Altitude above sea level in meters
	Altitude float64 `toml:"altitude"`
	// Fixed station pressure in Pa. Zero selects the standard atmosphere
	// pressure at the station altitude.
	Pressure float64 `toml:"pressure"`
}

type Config struct {
	Web      WebConfig `toml:"web"`
	Station  Station   `toml:"station"`
	LogLevel string    `toml:"log_level"`
	Sensors  []string  `toml:"sensors"`
}

func defaultConfig() Config {
	return Config{
		Web: WebConfig{
			ListenAddress: ":9775",
			TelemetryPath: "/metrics",
		},
		LogLevel: "info",
	}
}

func loadConfigFile(path string, config *Config) error {
	metadata, err := toml.DecodeFile(path, config)
	if err != nil {
		return fmt.Errorf("Failed to read config file '%s': %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return fmt.Errorf("Unknown keys in config file '%s': %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// parseArgs builds the configuration from the optional config file and the
// command line. Flags that are set explicitly override the config file and
// sensors given as arguments are appended to the ones from the config file.
func parseArgs(args []string) (Config, error) {
	config := defaultConfig()

	flags := pflag.NewFlagSet("psychrometric-exporter", pflag.ContinueOnError)
	configFile := flags.String("config.file", "", "Path to a TOML configuration file.")
	listenAddress := flags.String(
		"web.listen-address", config.Web.ListenAddress, "Address on which to expose metrics and web interface.",
	)
	metricsPath := flags.String(
		"web.telemetry-path", config.Web.TelemetryPath, "Path under which to expose metrics.",
	)
	altitude := flags.Float64(
		"station.altitude", 0, "Altitude of the sensors above sea level in meters.",
	)
	pressure := flags.Float64(
		"station.pressure", 0,
		"Atmospheric pressure in Pa for sensors without pressure reading (default: standard atmosphere at station altitude).",
	)
	logLevel := flags.String("log.level", config.LogLevel, "Log level (debug, info, warn, error).")
	if err := flags.Parse(args); err != nil {
		return config, err
	}

	if *configFile != "" {
		if err := loadConfigFile(*configFile, &config); err != nil {
			return config, err
		}
	}
	if flags.Changed("web.listen-address") {
		config.Web.ListenAddress = *listenAddress
	}
	if flags.Changed("web.telemetry-path") {
		config.Web.TelemetryPath = *metricsPath
	}
	if flags.Changed("station.altitude") {
		config.Station.Altitude = *altitude
	}
	if flags.Changed("station.pressure") {
		config.Station.Pressure = *pressure
	}
	if flags.Changed("log.level") {
		config.LogLevel = *logLevel
	}
	config.Sensors = append(config.Sensors, flags.Args()...)

	if config.Station.Pressure < 0 {
		return config, fmt.Errorf("Station pressure %g is negative", config.Station.Pressure)
	}
	return config, nil
}

// AtmosphericPressure returns the pressure in Pa that applies to a sensor
// reading. The sensor's own pressure reading takes precedence over the
// configured station pressure, which in turn takes precedence over the
// standard atmosphere at the station altitude.
func (s Station) AtmosphericPressure(calc *psychrometrics.Calculator, sensorPressure *float64) float64 {
	if sensorPressure != nil {
		return *sensorPressure
	}
	if s.Pressure > 0 {
		return s.Pressure
	}
	return calc.StandardAtmPressure(s.Altitude)
}
