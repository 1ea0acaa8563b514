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
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gbasave/gbasave/hardware/memory/memorymap"
	"github.com/gbasave/gbasave/hardware/memory/storage"
	"github.com/gbasave/gbasave/monitor/terminal"
	"github.com/gbasave/gbasave/savefile"
)

// monitor keywords.
const (
	cmdHelp     = "HELP"
	cmdPeek     = "PEEK"
	cmdPoke     = "POKE"
	cmdDump     = "DUMP"
	cmdInfo     = "INFO"
	cmdMemMap   = "MEMMAP"
	cmdSaveType = "SAVETYPE"
	cmdSave     = "SAVE"
	cmdState    = "STATE"
	cmdLog      = "LOG"
	cmdViz      = "VIZ"
	cmdQuit     = "QUIT"
)

var help = map[string]string{
	cmdHelp:     "HELP [command]\n  Lists commands or shows help for a specific command",
	cmdPeek:     "PEEK <address> ...\n  Read from the memory bus. Reads do not affect the flash protocol",
	cmdPoke:     "POKE <address> <value> ...\n  Write to the memory bus. Writes to the save area drive the flash protocol",
	cmdDump:     "DUMP [offset] [length]\n  Hexdump of the save device data. The offset may also be an address in the save area",
	cmdInfo:     "INFO\n  Information about the cartridge and the save device",
	cmdMemMap:   "MEMMAP\n  Display the memory map",
	cmdSaveType: "SAVETYPE [type]\n  Show the save type or change the save device. The new device is seeded with the current data",
	cmdSave:     "SAVE [file]\n  Write the save data to the save file or to the named file",
	cmdState:    "STATE SAVE [file] | STATE LOAD <file>\n  Save or load the state of the save device. SAVE creates a unique filename if none is given",
	cmdLog:      "LOG [n]\n  Show the most recent log entries",
	cmdViz:      "VIZ <file>\n  Write a graph of the memory bus in the DOT language",
	cmdQuit:     "QUIT\n  Leave the monitor",
}

// number of bytes shown by DUMP if no length is given.
const defaultDumpLength = 0x100

// number of log entries shown by LOG if no number is given.
const defaultLogLength = 10

func parseNumber(s string, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bitSize)
	if err != nil {
		return 0, fmt.Errorf("not a valid number (%s)", s)
	}
	return v, nil
}

// parseCommand scans user input for valid commands and acts upon it.
func (mon *Monitor) parseCommand(input string) error {
	tokens := tokeniseInput(input)

	command, ok := tokens.get()
	if !ok {
		return nil
	}
	command = strings.ToUpper(command)

	switch command {
	default:
		return fmt.Errorf("%s is not a valid command", command)

	case cmdHelp:
		keyword, ok := tokens.get()
		if ok {
			keyword = strings.ToUpper(keyword)
			h, ok := help[keyword]
			if !ok {
				return fmt.Errorf("no help for %s", keyword)
			}
			mon.printLines(terminal.StyleHelp, h)
			return nil
		}

		keywords := make([]string, 0, len(help))
		for k := range help {
			keywords = append(keywords, k)
		}
		sort.Strings(keywords)
		mon.printLine(terminal.StyleHelp, strings.Join(keywords, " "))

	case cmdPeek:
		if tokens.remaining() == 0 {
			return fmt.Errorf("%s requires an address", cmdPeek)
		}
		for tokens.remaining() > 0 {
			a, _ := tokens.get()
			addr, err := parseNumber(a, 32)
			if err != nil {
				return err
			}
			v := mon.mem.Read(uint32(addr))
			_, area := memorymap.MapAddress(uint32(addr))
			mon.printLine(terminal.StyleFeedback, "%#08x -> %#02x :: %s", addr, v, area)
		}

	case cmdPoke:
		if tokens.remaining() < 2 || tokens.remaining()%2 != 0 {
			return fmt.Errorf("%s requires address and value pairs", cmdPoke)
		}
		for tokens.remaining() > 0 {
			a, _ := tokens.get()
			addr, err := parseNumber(a, 32)
			if err != nil {
				return err
			}
			d, _ := tokens.get()
			v, err := parseNumber(d, 8)
			if err != nil {
				return err
			}
			mon.mem.Write(uint32(addr), uint8(v))
			mon.printLine(terminal.StyleFeedback, "%#08x <- %#02x", addr, v)
		}

	case cmdDump:
		offset := uint64(0)
		length := uint64(defaultDumpLength)

		if o, ok := tokens.get(); ok {
			var err error
			offset, err = parseNumber(o, 32)
			if err != nil {
				return err
			}

			// a bus address in the save area is accepted as an offset
			if memorymap.IsArea(uint32(offset), memorymap.Save) {
				offset -= uint64(memorymap.OriginSave)
			}
		}
		if l, ok := tokens.get(); ok {
			var err error
			length, err = parseNumber(l, 32)
			if err != nil {
				return err
			}
		}

		data := mon.mem.SaveDevice().Data()
		if offset >= uint64(len(data)) {
			return fmt.Errorf("offset out of range (%#x)", offset)
		}
		end := offset + length
		if end > uint64(len(data)) {
			end = uint64(len(data))
		}
		mon.printLines(terminal.StyleDump, hexdump(data[offset:end], uint32(offset)))

	case cmdInfo:
		if mon.loader.HasLoaded() {
			mon.printLine(terminal.StyleFeedback, "cartridge: %s", mon.loader.String())
		}
		dev := mon.mem.SaveDevice()
		mon.printLine(terminal.StyleFeedback, "save type: %s", dev.SaveType())
		mon.printLine(terminal.StyleFeedback, "device: %s", dev.String())
		if mon.tracker != nil {
			if mon.mismatch {
				mon.printLine(terminal.StyleFeedback, "save file: %s (size mismatch)", mon.tracker.Filename)
			} else if mon.tracker.IsSaved(dev) {
				mon.printLine(terminal.StyleFeedback, "save file: %s", mon.tracker.Filename)
			} else {
				mon.printLine(terminal.StyleFeedback, "save file: %s (unsaved changes)", mon.tracker.Filename)
			}
		}

	case cmdMemMap:
		mon.printLines(terminal.StyleFeedback, memorymap.Summary())

	case cmdSaveType:
		t, ok := tokens.get()
		if !ok {
			mon.printLine(terminal.StyleFeedback, "%s", mon.mem.SaveDevice().SaveType())
			return nil
		}
		saveType, err := storage.ParseSaveType(t)
		if err != nil {
			return err
		}
		prev := mon.mem.SetSaveDevice(saveType, mon.mem.SaveDevice().Data())
		mon.printLine(terminal.StyleFeedback, "%s -> %s", prev.Label(), mon.mem.SaveDevice().Label())

	case cmdSave:
		dev := mon.mem.SaveDevice()
		filename, ok := tokens.get()
		if ok {
			if mon.tracker == nil {
				mon.tracker = savefile.NewTracker(filename)
			} else if filename != mon.tracker.Filename {
				err := savefile.Save(filename, dev)
				if err != nil {
					return err
				}
				mon.printLine(terminal.StyleFeedback, "save data written to %s", filename)
				return nil
			}
		}
		if mon.tracker == nil {
			return fmt.Errorf("%s requires a filename", cmdSave)
		}
		err := mon.tracker.Save(dev)
		if err != nil {
			return err
		}
		mon.mismatch = false
		mon.printLine(terminal.StyleFeedback, "save data written to %s", mon.tracker.Filename)

	case cmdState:
		op, ok := tokens.get()
		if !ok {
			return fmt.Errorf("%s requires SAVE or LOAD", cmdState)
		}
		filename, ok := tokens.get()

		switch strings.ToUpper(op) {
		case "SAVE":
			var err error
			if ok {
				filename = mon.statePath(filename)
			} else {
				filename, err = mon.uniqueStatePath()
				if err != nil {
					return err
				}
			}
			f, err := os.Create(filename)
			if err != nil {
				return err
			}
			err = mon.mem.SaveState(f)
			if err != nil {
				f.Close()
				return err
			}
			err = f.Close()
			if err != nil {
				return err
			}
			mon.printLine(terminal.StyleFeedback, "state saved to %s", filename)

		case "LOAD":
			if !ok {
				return fmt.Errorf("%s LOAD requires a filename", cmdState)
			}
			f, err := os.Open(mon.statePath(filename))
			if err != nil {
				return err
			}
			defer f.Close()
			_, err = mon.mem.LoadState(f)
			if err != nil {
				return err
			}
			mon.printLine(terminal.StyleFeedback, "state loaded from %s", mon.statePath(filename))

		default:
			return fmt.Errorf("unknown option for %s command (%s)", cmdState, op)
		}

	case cmdLog:
		n := uint64(defaultLogLength)
		if s, ok := tokens.get(); ok {
			var err error
			n, err = parseNumber(s, 16)
			if err != nil {
				return err
			}
		}
		s := &strings.Builder{}
		mon.log().Tail(s, int(n))
		mon.printLines(terminal.StyleLog, s.String())

	case cmdViz:
		filename, ok := tokens.get()
		if !ok {
			return fmt.Errorf("%s requires a filename", cmdViz)
		}
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		mon.mem.Visualise(f)
		err = f.Close()
		if err != nil {
			return err
		}
		mon.printLine(terminal.StyleFeedback, "memory graph written to %s", filename)

	case cmdQuit:
		mon.running = false
	}

	return nil
}

// hexdump formats data in rows of sixteen bytes. the origin is the offset of
// the first byte and is printed at the start of each row.
func hexdump(data []uint8, origin uint32) string {
	s := &strings.Builder{}
	for i := 0; i < len(data); i += 16 {
		end := i + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(s, "%05x:", origin+uint32(i))
		for _, v := range data[i:end] {
			fmt.Fprintf(s, " %02x", v)
		}
		s.WriteString("\n")
	}
	return s.String()
}
