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

package savefile

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gbasave/gbasave/curated"
	"github.com/gbasave/gbasave/hardware/memory/storage"
)

// SaveFileError is the pattern of all errors returned by the package.
const SaveFileError = "savefile: %v"

// Load returns the contents of the save file. A missing file is not an error
// and results in nil data. A save device given nil data uses its default
// content.
func Load(filename string) ([]uint8, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, curated.Errorf(SaveFileError, err)
	}
	return data, nil
}

// Save writes the data of the device to the save file. The data is written to
// a temporary file in the same directory which is then renamed, so an
// existing save file is never left partially written.
func Save(filename string, dev storage.Device) error {
	f, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".*")
	if err != nil {
		return curated.Errorf(SaveFileError, err)
	}
	tmp := f.Name()

	_, err = f.Write(dev.Data())
	if err != nil {
		f.Close()
		os.Remove(tmp)
		return curated.Errorf(SaveFileError, err)
	}

	err = f.Close()
	if err != nil {
		os.Remove(tmp)
		return curated.Errorf(SaveFileError, err)
	}

	err = os.Rename(tmp, filename)
	if err != nil {
		os.Remove(tmp)
		return curated.Errorf(SaveFileError, err)
	}

	return nil
}

// Tracker keeps a copy of the data as it is on disk.
type Tracker struct {
	Filename string

	// the data as it is on disk. nil if the file has never been loaded or
	// saved
	DiskData []uint8
}

// NewTracker is the preferred method of initialisation for the Tracker type.
func NewTracker(filename string) *Tracker {
	return &Tracker{
		Filename: filename,
	}
}

// Load the save file and remember the data. The returned data is suitable
// for seeding a save device.
func (tr *Tracker) Load() ([]uint8, error) {
	data, err := Load(tr.Filename)
	if err != nil {
		return nil, err
	}
	tr.DiskData = data
	return data, nil
}

// Save the data of the device and remember it.
func (tr *Tracker) Save(dev storage.Device) error {
	err := Save(tr.Filename, dev)
	if err != nil {
		return err
	}
	tr.DiskData = bytes.Clone(dev.Data())
	return nil
}

// IsSaved returns true if the data of the device is the same as the data on
// disk. A device that has never been saved and which has not been loaded from
// disk is considered to be saved if it contains only the default content for
// its type.
func (tr *Tracker) IsSaved(dev storage.Device) bool {
	if tr.DiskData == nil {
		var fill uint8
		switch dev.SaveType() {
		case storage.Flash64K, storage.Flash128K:
			fill = 0xff
		}
		for _, v := range dev.Data() {
			if v != fill {
				return false
			}
		}
		return true
	}
	return bytes.Equal(tr.DiskData, dev.Data())
}
