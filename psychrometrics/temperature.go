// Copyright (C) 2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychrometrics

const (
	zeroFahrenheitAsRankine = 459.67
	zeroCelsiusAsKelvin     = 273.15
)

// TRankineFromTFahrenheit converts a temperature from °F to °R (exact).
func TRankineFromTFahrenheit(tFahrenheit float64) float64 {
	return tFahrenheit + zeroFahrenheitAsRankine
}

// TFahrenheitFromTRankine converts a temperature from °R to °F (exact).
func TFahrenheitFromTRankine(tRankine float64) float64 {
	return tRankine - zeroFahrenheitAsRankine
}

// TKelvinFromTCelsius converts a temperature from °C to K (exact).
func TKelvinFromTCelsius(tCelsius float64) float64 {
	return tCelsius + zeroCelsiusAsKelvin
}

// TCelsiusFromTKelvin converts a temperature from K to °C (exact).
func TCelsiusFromTKelvin(tKelvin float64) float64 {
	return tKelvin - zeroCelsiusAsKelvin
}

// TFahrenheitFromTCelsius converts a temperature from °C to °F (exact).
func TFahrenheitFromTCelsius(tCelsius float64) float64 {
	return tCelsius*9/5 + 32
}

// TCelsiusFromTFahrenheit converts a temperature from °F to °C (exact).
func TCelsiusFromTFahrenheit(tFahrenheit float64) float64 {
	return (tFahrenheit - 32) * 5 / 9
}

// TAbsolute converts a temperature to the absolute scale of the unit
// system, i.e. °R in IP and K in SI.
func (c *Calculator) TAbsolute(t float64) float64 {
	return c.units.absolute(t)
}
