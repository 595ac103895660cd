// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

// psychrometric-exporter exports temperature, humidity and pressure readings
// of I²C sensors together with the derived properties of moist air as
// Prometheus metrics.
package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/bdrung/psychrometric-exporter/psychrometrics"
)

func main() {
	config, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		logrus.Fatal(err)
	}
	if err := setupLogging(config.LogLevel); err != nil {
		logrus.Fatal(err)
	}
	sensors, err := parseSensors(config.Sensors)
	if err != nil {
		logrus.Fatal(err)
	}
	if len(sensors) == 0 {
		logrus.Warn("No sensors configured")
	}

	calc, err := psychrometrics.New(
		psychrometrics.SI,
		psychrometrics.WithLogger(logrus.WithField("component", "psychrometrics")),
	)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Infof(
		"Station altitude %g m, pressure for sensors without barometer %g Pa",
		config.Station.Altitude,
		config.Station.AtmosphericPressure(calc, nil),
	)

	for _, flags := range sensors {
		sensor, err := flags.NewSensor()
		if err != nil {
			logrus.Fatal(err)
		}
		prometheus.MustRegister(NewSensorCollector(sensor, flags, calc, config.Station))
	}
	prometheus.MustRegister(versioncollector.NewCollector("psychrometric_exporter"))

	logrus.Infof(
		"Serving psychrometric exporter on %s%s - for example http://localhost%s%s",
		config.Web.ListenAddress,
		config.Web.TelemetryPath,
		config.Web.ListenAddress,
		config.Web.TelemetryPath,
	)
	http.Handle(config.Web.TelemetryPath, promhttp.Handler())
	logrus.Fatal(http.ListenAndServe(config.Web.ListenAddress, nil))
}
