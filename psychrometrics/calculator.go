// Copyright (C) 2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychrometrics

import "github.com/sirupsen/logrus"

// Calculator evaluates psychrometric relations in one unit system.
// A Calculator is immutable and safe for concurrent use.
type Calculator struct {
	units *unitSet
	log   logrus.FieldLogger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the logger that receives solver diagnostics on debug level.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Calculator) {
		c.log = log
	}
}

// New returns a Calculator bound to the given unit system.
func New(units UnitSystem, opts ...Option) (*Calculator, error) {
	u, err := unitsFor(units)
	if err != nil {
		return nil, err
	}
	c := &Calculator{
		units: u,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Units returns the unit system of the calculator.
func (c *Calculator) Units() UnitSystem {
	return c.units.system
}

// Tolerance returns the convergence tolerance of the iterative solvers:
// 0.0018 °F in IP and 0.001 °C in SI, i.e. the same physical resolution.
func (c *Calculator) Tolerance() float64 {
	return c.units.tolerance
}

// SaturationRange returns the dry-bulb temperature range in which the
// saturation vapor pressure formulas are valid.
func (c *Calculator) SaturationRange() (min, max float64) {
	return c.units.minTemperature, c.units.maxTemperature
}
