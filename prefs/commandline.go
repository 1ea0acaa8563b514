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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// separators used in command line preference strings. for example:
//
//	storage.saveOnQuit::false; logging.echo::true
const (
	commandLinePairSep = ";"
	commandLineKeySep  = "::"
)

// commandLine is a stack of preference groups. each group is created from a
// single preferences string given on the command line.
type commandLine struct {
	crit   sync.Mutex
	groups []map[string]string
}

var cmdline commandLine

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()
	return len(cmdline.groups)
}

// PushCommandLineStack parses a preferences string and adds it as a new group.
// Pairs in the string that are not of the form key::value are ignored.
func PushCommandLineStack(prefs string) {
	grp := make(map[string]string)
	for _, p := range strings.Split(prefs, commandLinePairSep) {
		k, v, ok := strings.Cut(p, commandLineKeySep)
		if !ok {
			continue
		}
		grp[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()
	cmdline.groups = append(cmdline.groups, grp)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Returns the entries in the group that were never
// requested by GetCommandLinePref(), as a sorted preferences string.
func PopCommandLineStack() string {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	if len(cmdline.groups) == 0 {
		return ""
	}

	grp := cmdline.groups[len(cmdline.groups)-1]
	cmdline.groups = cmdline.groups[:len(cmdline.groups)-1]

	unused := make([]string, 0, len(grp))
	for k, v := range grp {
		unused = append(unused, fmt.Sprintf("%s%s%s", k, commandLineKeySep, v))
	}
	sort.Strings(unused)

	return strings.Join(unused, commandLinePairSep+" ")
}

// GetCommandLinePref returns the value for the key in the most recent group.
// A value can only be retrieved once.
func GetCommandLinePref(key string) (bool, Value) {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	if len(cmdline.groups) == 0 {
		return false, nil
	}

	grp := cmdline.groups[len(cmdline.groups)-1]
	v, ok := grp[key]
	if !ok {
		return false, nil
	}
	delete(grp, key)

	return true, v
}
