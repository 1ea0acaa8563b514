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

package savefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gbasave/gbasave/curated"
	"github.com/gbasave/gbasave/hardware/memory/storage"
	"github.com/gbasave/gbasave/savefile"
	"github.com/gbasave/gbasave/test"
)

func TestMissingFile(t *testing.T) {
	data, err := savefile.Load(filepath.Join(t.TempDir(), "missing.sav"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(data), 0)
	test.ExpectSuccess(t, data == nil)
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.sav")

	f := storage.NewFlash(nil, storage.Flash64KSize, nil)
	test.DemandSuccess(t, storage.Poke(f, 0x1234, 0x56))
	test.DemandSuccess(t, savefile.Save(fn, f))

	data, err := savefile.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(data), storage.Flash64KSize)
	test.ExpectEquality(t, data[0x1234], uint8(0x56))

	// no temporary files left behind
	entries, err := os.ReadDir(filepath.Dir(fn))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 1)
}

func TestSaveError(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing", "game.sav")
	err := savefile.Save(fn, storage.NewSram(nil, nil))
	test.ExpectSuccess(t, curated.Is(err, savefile.SaveFileError))
}

func TestTracker(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.sav")
	tr := savefile.NewTracker(fn)

	data, err := tr.Load()
	test.DemandSuccess(t, err)

	// a new device with default content is considered saved
	f := storage.NewFlash(nil, storage.Flash128KSize, data)
	test.ExpectSuccess(t, tr.IsSaved(f))

	test.DemandSuccess(t, storage.Poke(f, 0x0000, 0x00))
	test.ExpectFailure(t, tr.IsSaved(f))

	test.DemandSuccess(t, tr.Save(f))
	test.ExpectSuccess(t, tr.IsSaved(f))

	// the tracker's copy is independent of the device
	test.DemandSuccess(t, storage.Poke(f, 0x0001, 0x00))
	test.ExpectFailure(t, tr.IsSaved(f))

	// reload
	tr = savefile.NewTracker(fn)
	data, err = tr.Load()
	test.DemandSuccess(t, err)
	s := storage.NewFlash(nil, storage.Flash128KSize, data)
	test.ExpectSuccess(t, tr.IsSaved(s))
	test.ExpectEquality(t, s.Read(0x0000), uint8(0x00))
	test.ExpectEquality(t, s.Read(0x0001), uint8(0xff))
}
