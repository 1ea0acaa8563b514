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

package prefs_test

import (
	"testing"

	"github.com/gbasave/gbasave/prefs"
	"github.com/gbasave/gbasave/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("storage.saveOnQuit::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "storage.saveOnQuit::false")

	// surrounding space is removed
	prefs.PushCommandLineStack("  logging.echo ::  true ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "logging.echo::true")

	// unused entries are returned in key order
	prefs.PushCommandLineStack("storage.saveOnQuit::false; logging.echo::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "logging.echo::true; storage.saveOnQuit::false")

	// malformed pairs are ignored
	prefs.PushCommandLineStack("logging.echo")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("logging.echo;monitor.color::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "monitor.color::false")
}

func TestCommandLineGet(t *testing.T) {
	prefs.PushCommandLineStack("monitor.color::false; logging")

	ok, _ := prefs.GetCommandLinePref("logging")
	test.ExpectFailure(t, ok)

	ok, v := prefs.GetCommandLinePref("monitor.color")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "false")

	// values can only be retrieved once
	ok, _ = prefs.GetCommandLinePref("monitor.color")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("storage.saveOnQuit::false")
	prefs.PushCommandLineStack("logging.echo::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the most recent group is consulted
	ok, _ := prefs.GetCommandLinePref("storage.saveOnQuit")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "logging.echo::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "storage.saveOnQuit::false")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
