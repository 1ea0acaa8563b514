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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gbasave/gbasave/logger"
	"github.com/gbasave/gbasave/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	test.ExpectFailure(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "flash", "invalid command")
	log.Log(logger.Allow, "flash", "invalid command")
	log.Log(logger.Allow, "flash", "invalid command")
	test.ExpectEquality(t, log.Len(), 1)

	log.Write(w)
	test.ExpectEquality(t, w.String(), "flash: invalid command (repeat x3)\n")

	// a different tag with the same detail is a new entry
	log.Log(logger.Allow, "sram", "invalid command")
	test.ExpectEquality(t, log.Len(), 2)
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Logf(logger.Allow, "tag", "%d", 1)
	log.Logf(logger.Allow, "tag", "%d", 2)
	log.Logf(logger.Allow, "tag", "%d", 3)
	test.ExpectEquality(t, log.Len(), 2)

	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 2\ntag: 3\n")
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "a")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "tag: a\n")

	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "tag", "b")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "tag: b\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "before")
	log.SetEcho(w, true)
	test.ExpectEquality(t, w.String(), "tag: before\n")

	w.Reset()
	log.Log(logger.Allow, "tag", "after")
	test.ExpectEquality(t, w.String(), "tag: after\n")

	w.Reset()
	log.SetEcho(nil, false)
	log.Log(logger.Allow, "tag", "silent")
	test.ExpectEquality(t, w.String(), "")
}

type prohibitLogging struct {
	allow bool
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibitLogging{allow: false}, "tag", "detail")
	log.Log(logger.Deny, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(prohibitLogging{allow: true}, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail\n")
}

// the Log() function explicitly handles error types by using the Error() result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")
}

// any other type is formatted with the %v verb
func TestIntLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 100\n")
}

func TestBorrowLog(t *testing.T) {
	log := logger.NewLogger(100)
	log.Log(logger.Allow, "flash", "erase sector 3")

	log.BorrowLog(func(entries []logger.Entry) {
		test.DemandEquality(t, len(entries), 1)
		test.ExpectEquality(t, entries[0].Tag, "flash")
		test.ExpectEquality(t, entries[0].Detail, "erase sector 3")
	})
}

func TestColorizer(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)

	n, err := c.Write([]byte("tag: detail\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len("tag: detail\n"))
	test.ExpectInequality(t, w.String(), "tag: detail\n")
	test.ExpectEquality(t, strings.HasSuffix(w.String(), ": detail\n"), true)
}
