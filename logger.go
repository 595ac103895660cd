// Copyright (C) 2021-2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package main

import (
	logger "github.com/d2r2/go-logger"
	"github.com/sirupsen/logrus"
)

// Package loggers of the I²C sensor drivers.
var driverPackages = []string{"bsbmp", "i2c", "sht3x"}

// setupLogging sets the logrus level. The sensor drivers only log on debug
// level when debug logging is requested.
func setupLogging(level string) error {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(logLevel)

	driverLevel := logger.InfoLevel
	if logLevel >= logrus.DebugLevel {
		driverLevel = logger.DebugLevel
	}
	for _, pkg := range driverPackages {
		logger.ChangePackageLogLevel(pkg, driverLevel)
	}
	return nil
}
