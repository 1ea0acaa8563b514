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

package monitor

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gbasave/gbasave/cartridgeloader"
	"github.com/gbasave/gbasave/curated"
	"github.com/gbasave/gbasave/environment"
	"github.com/gbasave/gbasave/hardware/memory"
	"github.com/gbasave/gbasave/logger"
	"github.com/gbasave/gbasave/monitor/terminal"
	"github.com/gbasave/gbasave/paths"
	"github.com/gbasave/gbasave/savefile"
)

// Monitor is the command interface to the memory bus.
type Monitor struct {
	env  *environment.Environment
	mem  *memory.Memory
	term terminal.Terminal

	// the cartridge the save device belongs to. the loader will not have
	// loaded if the monitor is running without a cartridge
	loader cartridgeloader.Loader

	// the save file for the save device. nil until a cartridge is attached
	// or the SAVE command is given a filename
	tracker *savefile.Tracker

	// the save file on disk is not the size of the save device. the file is
	// never written on quit while this is true, only by an explicit SAVE
	mismatch bool

	// the monitor input loop continues while running is true
	running bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The memory bus will have a zeroed SRAM device until Attach() is called.
func NewMonitor(env *environment.Environment, term terminal.Terminal) *Monitor {
	return &Monitor{
		env:  env,
		mem:  memory.NewMemory(env),
		term: term,
	}
}

// Memory returns the memory bus being monitored.
func (mon *Monitor) Memory() *memory.Memory {
	return mon.mem
}

// Attach loads the cartridge, creates a save device of the cartridge's save
// type and seeds it with the contents of the save file.
func (mon *Monitor) Attach(cl cartridgeloader.Loader) error {
	err := cl.Load()
	if err != nil {
		return err
	}

	tracker := savefile.NewTracker(cl.SaveFilename)
	data, err := tracker.Load()
	if err != nil {
		return err
	}

	mon.loader = cl
	mon.tracker = tracker
	mon.mem.SetSaveDevice(cl.SaveType, data)

	mon.env.Logf("monitor", "attached %s", cl.String())

	size := len(mon.mem.SaveDevice().Data())
	mon.mismatch = len(data) > 0 && len(data) != size
	if mon.mismatch {
		mon.env.Logf("monitor", "save file %s is %d bytes, expected %d bytes. save on quit disabled",
			tracker.Filename, len(data), size)
	}

	return nil
}

// log returns the logger used by the memory bus.
func (mon *Monitor) log() *logger.Logger {
	if mon.env == nil || mon.env.Log == nil {
		return logger.Central()
	}
	return mon.env.Log
}

func (mon *Monitor) printLine(style terminal.Style, s string, args ...any) {
	if len(args) > 0 {
		s = fmt.Sprintf(s, args...)
	}
	mon.term.TermPrintLine(style, s)
}

// print multi-line output one line at a time.
func (mon *Monitor) printLines(style terminal.Style, s string) {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return
	}
	for _, l := range strings.Split(s, "\n") {
		mon.term.TermPrintLine(style, l)
	}
}

func (mon *Monitor) prompt() string {
	return fmt.Sprintf("[%s] > ", mon.mem.SaveDevice().Label())
}

// statePath resolves the filename of a state file. relative filenames are
// placed in the state directory if one has been specified in the preferences.
func (mon *Monitor) statePath(filename string) string {
	if filepath.IsAbs(filename) || mon.env == nil || mon.env.Prefs == nil {
		return filename
	}
	dir := mon.env.Prefs.StateDirectory.String()
	if dir == "" {
		return filename
	}
	return filepath.Join(dir, filename)
}

// the subdirectory of the resource path used for state files if no state
// directory has been specified in the preferences.
const stateSubPath = "states"

// uniqueStatePath creates a new filename for a state file.
func (mon *Monitor) uniqueStatePath() (string, error) {
	var romName string
	if mon.loader.HasLoaded() {
		romName = mon.loader.ShortName()
	}
	filename := paths.UniqueFilename("state", romName)

	if mon.env != nil && mon.env.Prefs != nil {
		dir := mon.env.Prefs.StateDirectory.String()
		if dir != "" {
			return filepath.Join(dir, filename), nil
		}
	}

	return paths.ResourcePath(stateSubPath, filename)
}

// Start the input loop. Returns when the QUIT command is given or when the
// terminal has no more input.
func (mon *Monitor) Start() error {
	err := mon.term.Initialise()
	if err != nil {
		return err
	}
	defer mon.term.CleanUp()

	mon.running = true
	for mon.running {
		input, err := mon.term.TermRead(mon.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				break // for loop
			}
			if curated.Is(err, terminal.UserInterrupt) || curated.Is(err, terminal.UserAbort) {
				break // for loop
			}
			return err
		}

		mon.printLine(terminal.StyleEcho, input)

		err = mon.parseCommand(input)
		if err != nil {
			mon.printLine(terminal.StyleError, "%v", err)
		}
	}

	return mon.quit()
}

// quit writes the save file if the preferences require it and the save data
// has changed.
func (mon *Monitor) quit() error {
	if mon.tracker == nil || mon.env == nil || mon.env.Prefs == nil {
		return nil
	}
	if !mon.env.Prefs.SaveOnQuit.Get().(bool) || mon.mismatch {
		return nil
	}

	dev := mon.mem.SaveDevice()
	if mon.tracker.IsSaved(dev) {
		return nil
	}

	err := mon.tracker.Save(dev)
	if err != nil {
		return err
	}
	mon.printLine(terminal.StyleFeedback, "save data written to %s", mon.tracker.Filename)

	return nil
}
