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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gbasave/gbasave/curated"
	"github.com/gbasave/gbasave/hardware/memory/storage"
)

// LoaderError is the pattern of all errors returned by Load().
const LoaderError = "cartridgeloader: %v"

// AutoSaveType is the value of RequestedSaveType that indicates the save type
// should be inferred from the cartridge data.
const AutoSaveType = "AUTO"

// Loader is used to specify the cartridge to use when attaching to the
// emulated memory.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// filename of the save file for the cartridge
	SaveFilename string

	// AutoSaveType or the name of a storage.SaveType. see
	// storage.ParseSaveType() for valid names
	RequestedSaveType string

	// the save type of the cartridge. after a load operation this will be the
	// requested save type or the inferred save type
	SaveType storage.SaveType

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte

	// game title and game code from the cartridge header. empty if the data
	// is too short to have a header
	Title    string
	GameCode string
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The saveType argument is used to set the RequestedSaveType field. An empty
// string is the same as AutoSaveType.
//
// The SaveFilename field is set to the cartridge filename with the extension
// replaced by SaveExtension.
func NewLoader(filename string, saveType string) Loader {
	cl := Loader{
		Filename:          filename,
		RequestedSaveType: AutoSaveType,
		SaveFilename:      strings.TrimSuffix(filename, filepath.Ext(filename)) + SaveExtension,
	}

	saveType = strings.TrimSpace(strings.ToUpper(saveType))
	if saveType != "" {
		cl.RequestedSaveType = saveType
	}

	return cl
}

// ShortName returns a shortened version of the CartridgeLoader filename.
func (cl Loader) ShortName() string {
	shortCartName := filepath.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, filepath.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

func (cl Loader) String() string {
	if cl.Title == "" {
		return fmt.Sprintf("%s [%s]", cl.ShortName(), cl.SaveType)
	}
	return fmt.Sprintf("%s (%s %s) [%s]", cl.ShortName(), cl.Title, cl.GameCode, cl.SaveType)
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	// decide on the save type first. there's no point loading the data if the
	// requested save type is invalid
	var err error
	auto := cl.RequestedSaveType == AutoSaveType || cl.RequestedSaveType == ""
	if !auto {
		cl.SaveType, err = storage.ParseSaveType(cl.RequestedSaveType)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		defer resp.Body.Close()

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	case "file":
		fallthrough

	case "":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	default:
		// windows drive letters are parsed as a scheme
		if len(scheme) == 1 {
			cl.Data, err = os.ReadFile(cl.Filename)
			if err != nil {
				return curated.Errorf(LoaderError, err)
			}
			break
		}
		return curated.Errorf(LoaderError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(cl.Data) == 0 {
		return curated.Errorf(LoaderError, "cartridge data is empty")
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(LoaderError, "unexpected hash value")
	}

	// not generated hash
	cl.Hash = hash

	cl.Title, cl.GameCode = header(cl.Data)

	if auto {
		cl.SaveType = InferSaveType(cl.Data)
	}

	return nil
}

// location of fields in the cartridge header.
const (
	headerTitle    = 0xa0
	headerGameCode = 0xac
	headerEnd      = 0xb0
)

// header returns the title and game code from the cartridge header. trailing
// zero bytes are removed.
func header(data []byte) (string, string) {
	if len(data) < headerEnd {
		return "", ""
	}
	title := strings.TrimRight(string(data[headerTitle:headerGameCode]), "\x00 ")
	code := strings.TrimRight(string(data[headerGameCode:headerEnd]), "\x00 ")
	return title, code
}
