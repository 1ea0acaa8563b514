// This file is part of Gbasave.
//
// Gbasave is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gbasave is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gbasave.  If not, see <https://www.gnu.org/licenses/>.

package environment

import (
	"github.com/gbasave/gbasave/hardware/preferences"
	"github.com/gbasave/gbasave/logger"
)

// Label is used to name the environment
type Label string

// MainEmulation is the label used for the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Particularly useful
// when using more than one emulated memory at the same time, for example when
// comparing a loaded state against the running state.
type Environment struct {
	Label Label

	// diagnostic messages from the hardware are sent to this logger. if it is
	// nil then the central logger is used
	Log *logger.Logger

	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// Both arguments can be nil. A nil log means the central logger will be used.
// A nil prefs means that a new Preferences instance will be created from the
// default preferences file. Providing a non-nil value allows the preferences
// of more than one emulation to be synchronised.
func NewEnvironment(log *logger.Logger, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Log: log,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system. A nil environment is the main emulation.
func (env *Environment) IsMainEmulation() bool {
	return env == nil || env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches
func (env *Environment) IsEmulation(label Label) bool {
	if env == nil {
		return label == MainEmulation
	}
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. An environment
// with its own logger is always allowed to log. Otherwise only the main
// emulation writes to the central logger.
func (env *Environment) AllowLogging() bool {
	if env == nil {
		return true
	}
	return env.Log != nil || env.IsMainEmulation()
}

func (env *Environment) logger() *logger.Logger {
	if env == nil || env.Log == nil {
		return logger.Central()
	}
	return env.Log
}

// Logf adds a formatted entry to the environment's logger, subject to the
// AllowLogging() permission.
func (env *Environment) Logf(tag string, detail string, args ...any) {
	env.logger().Logf(env, tag, detail, args...)
}
