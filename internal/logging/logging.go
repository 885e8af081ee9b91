/*
Copyright © 2026 Emilio Dominguez <emiliodominguez@users.noreply.github.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
// Package logging builds the logr.Logger every component in sass-dep takes
// as a constructor argument, instead of writing to stderr directly.
package logging

import (
	"os"

	"github.com/bombsimon/logrusr/v3"
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
)

// Verbosity maps the CLI's -q/-v/-vv/-vvv flags to a logrus level.
type Verbosity int

const (
	Quiet Verbosity = iota
	Normal
	Verbose
	VeryVerbose
	Trace
)

// FromFlags maps the -q and -v (countable) flags to a Verbosity. quiet wins
// over any -v count.
func FromFlags(quiet bool, verboseCount int) Verbosity {
	if quiet {
		return Quiet
	}
	switch {
	case verboseCount <= 0:
		return Normal
	case verboseCount == 1:
		return Verbose
	case verboseCount == 2:
		return VeryVerbose
	default:
		return Trace
	}
}

// New builds a logr.Logger backed by logrus, writing to stderr so stdout
// stays reserved for the emitted document.
func New(v Verbosity) logr.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{})
	l.SetLevel(levelFor(v))
	return logrusr.New(l)
}

func levelFor(v Verbosity) logrus.Level {
	switch v {
	case Quiet:
		return logrus.ErrorLevel
	case Normal:
		return logrus.WarnLevel
	case Verbose:
		return logrus.InfoLevel
	case VeryVerbose:
		return logrus.DebugLevel
	case Trace:
		return logrus.TraceLevel
	default:
		return logrus.WarnLevel
	}
}
