// Copyright (C) 2025, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychrometrics

import "fmt"

// DomainError reports an input outside the physical range of an operation.
// It is returned before any computation took place.
type DomainError struct {
	Op  string
	Msg string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func domainErrorf(op string, format string, args ...interface{}) error {
	return &DomainError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// ConfigError reports a missing or unknown unit system.
type ConfigError struct {
	Units string
}

func (e *ConfigError) Error() string {
	if e.Units == "" {
		return "unit system is not set"
	}
	return fmt.Sprintf("unknown unit system '%s', expected IP or SI", e.Units)
}

// ConvergenceError reports an iterative solver that did not converge
// within its iteration limit.
type ConvergenceError struct {
	Op         string
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: no convergence after %d iterations", e.Op, e.Iterations)
}
