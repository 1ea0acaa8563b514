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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gbasave/gbasave/cartridgeloader"
	"github.com/gbasave/gbasave/environment"
	"github.com/gbasave/gbasave/hardware/memory"
	"github.com/gbasave/gbasave/hardware/memory/storage"
	"github.com/gbasave/gbasave/logger"
	"github.com/gbasave/gbasave/modalflag"
	"github.com/gbasave/gbasave/monitor"
	"github.com/gbasave/gbasave/monitor/colorterm"
	"github.com/gbasave/gbasave/monitor/plainterm"
	"github.com/gbasave/gbasave/monitor/terminal"
	"github.com/gbasave/gbasave/prefs"
	"github.com/gbasave/gbasave/savefile"
	"github.com/gbasave/gbasave/statsview"
)

// exit values.
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// called by the interrupt handler before the program exits. used to restore
// the terminal if the color terminal is in use
var interruptCleanUp struct {
	crit sync.Mutex
	f    func()
}

func setInterruptCleanUp(f func()) {
	interruptCleanUp.crit.Lock()
	defer interruptCleanUp.crit.Unlock()
	interruptCleanUp.f = f
}

func main() {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		interruptCleanUp.crit.Lock()
		if interruptCleanUp.f != nil {
			interruptCleanUp.f()
		}
		interruptCleanUp.crit.Unlock()
		fmt.Print("\r")
		os.Exit(exitOK)
	}()

	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the exit
// value for the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("MONITOR", "INFO", "VIZ", "STATE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "MONITOR":
		err = monitorMode(md, output)

	case "INFO":
		err = info(md, output)

	case "VIZ":
		err = viz(md, output)

	case "STATE":
		err = state(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// usage string for the -prefs flag.
const prefsUsage = "preferences for this session (eg. storage.saveOnQuit::false; logging.echo::true)"

// newEnvironment creates the environment for the main emulation. The
// preferences string is used in preference to the values on disk.
func newEnvironment(prefsString string, output io.Writer) (*environment.Environment, error) {
	if prefsString != "" {
		prefs.PushCommandLineStack(prefsString)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "! unused preferences: %s\n", unused)
			}
		}()
	}
	return environment.NewEnvironment(nil, nil)
}

// prepareLoader creates a cartridge loader for the named cartridge. The save
// filename is the value of the -save flag if it has been specified or the
// save directory preference if that has been set.
func prepareLoader(env *environment.Environment, filename string, saveType string, saveFilename string) cartridgeloader.Loader {
	cl := cartridgeloader.NewLoader(filename, saveType)
	if saveFilename != "" {
		cl.SaveFilename = saveFilename
	} else if dir := env.Prefs.SaveDirectory.String(); dir != "" {
		cl.SaveFilename = filepath.Join(dir, filepath.Base(cl.SaveFilename))
	}
	return cl
}

func monitorMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	saveType := md.AddString("savetype", cartridgeloader.AutoSaveType, "save type: AUTO, NONE, SRAM, FLASH64K, FLASH128K, EEPROM4K, EEPROM64K")
	saveFile := md.AddString("save", "", "save file (default is the cartridge filename with the .sav extension)")
	termType := md.AddString("term", "", "terminal type to use: COLOR, PLAIN (default from preferences)")
	log := md.AddBool("log", false, "echo log to stdout")
	sessionPrefs := md.AddString("prefs", "", prefsUsage)

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AdditionalHelp("A cartridge is optional. Without a cartridge the monitor starts with a zeroed SRAM device")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, err := newEnvironment(*sessionPrefs, output)
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	var term terminal.Terminal

	useColor := env.Prefs.ColorTerminal.Get().(bool)
	switch strings.ToUpper(*termType) {
	case "":
	case "COLOR":
		useColor = true
	case "PLAIN":
		useColor = false
	default:
		fmt.Fprintf(output, "! unknown terminal type (%s) defaulting to plain\n", *termType)
		useColor = false
	}

	if useColor {
		ct := colorterm.NewColorTerminal(output)
		if err := ct.Initialise(); err != nil {
			fmt.Fprintf(output, "! %v. using plain terminal\n", err)
			useColor = false
		} else {
			ct.CleanUp()
			term = ct
			setInterruptCleanUp(ct.CleanUp)
			defer setInterruptCleanUp(nil)
		}
	}
	if !useColor {
		term = plainterm.NewPlainTerminal(nil, output)
	}

	if *log || env.Prefs.EchoLog.Get().(bool) {
		if useColor {
			logger.SetEcho(logger.NewColorizer(output), true)
		} else {
			logger.SetEcho(output, true)
		}
		defer logger.SetEcho(nil, false)
	}

	mon := monitor.NewMonitor(env, term)

	switch len(md.RemainingArgs()) {
	case 0:
		if *saveType != cartridgeloader.AutoSaveType {
			t, err := storage.ParseSaveType(*saveType)
			if err != nil {
				return err
			}
			mon.Memory().SetSaveDevice(t, nil)
		}
	case 1:
		err = mon.Attach(prepareLoader(env, md.GetArg(0), *saveType, *saveFile))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return mon.Start()
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	saveType := md.AddString("savetype", cartridgeloader.AutoSaveType, "save type: AUTO, NONE, SRAM, FLASH64K, FLASH128K, EEPROM4K, EEPROM64K")
	saveFile := md.AddString("save", "", "save file (default is the cartridge filename with the .sav extension)")
	sessionPrefs := md.AddString("prefs", "", prefsUsage)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, err := newEnvironment(*sessionPrefs, output)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		cl := prepareLoader(env, md.GetArg(0), *saveType, *saveFile)
		err := cl.Load()
		if err != nil {
			return err
		}

		fmt.Fprintf(output, "cartridge: %s\n", cl.Filename)
		if cl.Title != "" {
			fmt.Fprintf(output, "title: %s\n", cl.Title)
			fmt.Fprintf(output, "game code: %s\n", cl.GameCode)
		}
		fmt.Fprintf(output, "hash: %s\n", cl.Hash)
		fmt.Fprintf(output, "save type: %s\n", cl.SaveType)

		data, err := savefile.Load(cl.SaveFilename)
		if err != nil {
			return err
		}
		if data == nil {
			fmt.Fprintf(output, "save file: %s (not present)\n", cl.SaveFilename)
		} else {
			fmt.Fprintf(output, "save file: %s (%d bytes)\n", cl.SaveFilename, len(data))
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func viz(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	saveType := md.AddString("savetype", cartridgeloader.AutoSaveType, "save type: AUTO, NONE, SRAM, FLASH64K, FLASH128K, EEPROM4K, EEPROM64K")
	saveFile := md.AddString("save", "", "save file (default is the cartridge filename with the .sav extension)")
	out := md.AddString("out", "", "output file for the graph (default stdout)")
	sessionPrefs := md.AddString("prefs", "", prefsUsage)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, err := newEnvironment(*sessionPrefs, output)
	if err != nil {
		return err
	}

	mem := memory.NewMemory(env)

	switch len(md.RemainingArgs()) {
	case 0:
		if *saveType != cartridgeloader.AutoSaveType {
			t, err := storage.ParseSaveType(*saveType)
			if err != nil {
				return err
			}
			mem.SetSaveDevice(t, nil)
		}
	case 1:
		cl := prepareLoader(env, md.GetArg(0), *saveType, *saveFile)
		err := cl.Load()
		if err != nil {
			return err
		}
		data, err := savefile.Load(cl.SaveFilename)
		if err != nil {
			return err
		}
		mem.SetSaveDevice(cl.SaveType, data)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *out == "" {
		mem.Visualise(output)
		return nil
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	mem.Visualise(f)
	return f.Close()
}

func state(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	md.AdditionalHelp("Prints a summary of each state file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("state file required for %s mode", md)
	}

	// state files are examined with a private logger so that the diagnostics
	// don't end up in the central log
	env := &environment.Environment{
		Label: environment.Label("state"),
		Log:   logger.NewLogger(10),
	}

	for _, filename := range md.RemainingArgs() {
		f, err := os.Open(filename)
		if err != nil {
			return err
		}
		dev, err := storage.ReadState(env, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		fmt.Fprintf(output, "%s: %s\n", filename, dev.String())
	}

	return nil
}
