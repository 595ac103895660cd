// Copyright (C) 2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

// psychrocalc reads dry-bulb temperatures with one humidity value per row
// from a CSV file and writes the complete psychrometric state of each row.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/bdrung/psychrometric-exporter/psychrometrics"
)

// sample is one input row. The humidity column is interpreted according to
// the --anchor flag. An empty or zero pressure falls back to the command
// line settings.
type sample struct {
	TDryBulb float64 `csv:"t_dry_bulb"`
	Humidity float64 `csv:"humidity"`
	Pressure float64 `csv:"pressure"`
}

type result struct {
	TDryBulb           float64 `csv:"t_dry_bulb"`
	Pressure           float64 `csv:"pressure"`
	TWetBulb           float64 `csv:"t_wet_bulb"`
	TDewPoint          float64 `csv:"t_dew_point"`
	RelHum             float64 `csv:"rel_hum"`
	HumRatio           float64 `csv:"hum_ratio"`
	VapPres            float64 `csv:"vap_pres"`
	MoistAirEnthalpy   float64 `csv:"moist_air_enthalpy"`
	MoistAirVolume     float64 `csv:"moist_air_volume"`
	DegreeOfSaturation float64 `csv:"degree_of_saturation"`
	Error              string  `csv:"error"`
}

type options struct {
	units    psychrometrics.UnitSystem
	anchor   string
	altitude float64
	pressure float64
	strict   bool
	input    string
	output   string
	logLevel string
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	flags := pflag.NewFlagSet("psychrocalc", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: psychrocalc [options] [input.csv]\n\n")
		fmt.Fprintf(stderr, "Reads the columns t_dry_bulb, humidity and optionally pressure.\n\n")
		flags.PrintDefaults()
	}
	units := flags.StringP("units", "u", "SI", "Unit system of input and output (IP or SI).")
	flags.StringVarP(&opts.anchor, "anchor", "a", "rh",
		"Meaning of the humidity column: rh (relative humidity 0-1), tdp (dew point) or twb (wet bulb).")
	flags.Float64Var(&opts.altitude, "altitude", 0,
		"Altitude in ft (IP) or m (SI) for rows without pressure.")
	flags.Float64Var(&opts.pressure, "pressure", 0,
		"Atmospheric pressure in psi (IP) or Pa (SI) for rows without pressure (default: standard atmosphere).")
	flags.BoolVar(&opts.strict, "strict", false, "Abort on the first row that cannot be calculated.")
	flags.StringVarP(&opts.output, "output", "o", "-", "Output CSV file.")
	flags.StringVar(&opts.logLevel, "log.level", "warn", "Log level (debug, info, warn, error).")
	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	var err error
	if opts.units, err = psychrometrics.ParseUnitSystem(*units); err != nil {
		return opts, err
	}
	switch opts.anchor {
	case "rh", "tdp", "twb":
	default:
		return opts, fmt.Errorf("Unknown anchor '%s', expected rh, tdp or twb", opts.anchor)
	}
	switch flags.NArg() {
	case 0:
		opts.input = "-"
	case 1:
		opts.input = flags.Arg(0)
	default:
		return opts, fmt.Errorf("Expected at most one input file, got %d", flags.NArg())
	}
	return opts, nil
}

type calculator struct {
	calc     *psychrometrics.Calculator
	anchor   string
	pressure float64
	strict   bool
	log      logrus.FieldLogger
}

func newCalculator(opts options, log logrus.FieldLogger) (*calculator, error) {
	calc, err := psychrometrics.New(opts.units, psychrometrics.WithLogger(log))
	if err != nil {
		return nil, err
	}
	pressure := opts.pressure
	if pressure <= 0 {
		pressure = calc.StandardAtmPressure(opts.altitude)
	}
	return &calculator{
		calc:     calc,
		anchor:   opts.anchor,
		pressure: pressure,
		strict:   opts.strict,
		log:      log,
	}, nil
}

func (c *calculator) state(s *sample) (psychrometrics.State, error) {
	pressure := s.Pressure
	if pressure == 0 {
		pressure = c.pressure
	}
	switch c.anchor {
	case "tdp":
		return c.calc.PsychrometricsFromTDewPoint(s.TDryBulb, s.Humidity, pressure)
	case "twb":
		return c.calc.PsychrometricsFromTWetBulb(s.TDryBulb, s.Humidity, pressure)
	default:
		return c.calc.PsychrometricsFromRelHum(s.TDryBulb, s.Humidity, pressure)
	}
}

func (c *calculator) process(samples []*sample) ([]*result, error) {
	results := make([]*result, 0, len(samples))
	for i, s := range samples {
		state, err := c.state(s)
		if err != nil {
			if c.strict {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			c.log.WithError(err).Warnf("Skipping row %d", i+1)
			results = append(results, &result{TDryBulb: s.TDryBulb, Pressure: s.Pressure, Error: err.Error()})
			continue
		}
		results = append(results, &result{
			TDryBulb:           state.TDryBulb,
			Pressure:           state.Pressure,
			TWetBulb:           state.TWetBulb,
			TDewPoint:          state.TDewPoint,
			RelHum:             state.RelHum,
			HumRatio:           state.HumRatio,
			VapPres:            state.VapPres,
			MoistAirEnthalpy:   state.MoistAirEnthalpy,
			MoistAirVolume:     state.MoistAirVolume,
			DegreeOfSaturation: state.DegreeOfSaturation,
		})
	}
	return results, nil
}

func (c *calculator) convert(in io.Reader, out io.Writer) error {
	var samples []*sample
	if err := gocsv.Unmarshal(in, &samples); err != nil {
		return fmt.Errorf("Failed to read CSV input: %w", err)
	}
	c.log.Debugf("Read %d rows", len(samples))
	results, err := c.process(samples)
	if err != nil {
		return err
	}
	if err := gocsv.Marshal(&results, out); err != nil {
		return fmt.Errorf("Failed to write CSV output: %w", err)
	}
	return nil
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	return os.Create(path)
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(stderr)
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	c, err := newCalculator(opts, log.WithField("units", opts.units))
	if err != nil {
		return err
	}
	in, err := openInput(opts.input, stdin)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := openOutput(opts.output, stdout)
	if err != nil {
		return err
	}
	if err := c.convert(in, out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		logrus.Fatal(err)
	}
}
