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

// Package preferences collates the preference values used by the storage
// emulation and the tools around it.
package preferences

import (
	"github.com/gbasave/gbasave/paths"
	"github.com/gbasave/gbasave/prefs"
)

// Preferences defines and collates all the preference values.
type Preferences struct {
	dsk *prefs.Disk

	// directory in which to look for and write save files. an empty string
	// means that the save file lives alongside the ROM file
	SaveDirectory prefs.String

	// directory for state files created by the monitor when no filename is
	// given. an empty string means the resource directory is used
	StateDirectory prefs.String

	// write the save file when the monitor quits, if the save data has
	// changed since it was loaded
	SaveOnQuit prefs.Bool

	// echo log entries to the terminal as they are made
	EchoLog prefs.Bool

	// use the colour terminal for the monitor if possible
	ColorTerminal prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences are loaded from the default preferences
// file in the resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but the preferences file can
// be specified.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("storage.saveDirectory", &p.SaveDirectory)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("storage.stateDirectory", &p.StateDirectory)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("storage.saveOnQuit", &p.SaveOnQuit)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("logging.echo", &p.EchoLog)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("monitor.color", &p.ColorTerminal)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.SaveDirectory.Set("")
	p.StateDirectory.Set("")
	p.SaveOnQuit.Set(true)
	p.EchoLog.Set(false)
	p.ColorTerminal.Set(true)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
