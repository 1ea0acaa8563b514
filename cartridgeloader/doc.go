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

// Package cartridgeloader is used to specify the cartridge data that is to be
// inspected or attached to the emulated memory.
//
// When the cartridge is ready to be loaded the Load() function should be
// used. The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported.
//
// As well as the filename, the Loader type allows the save type of the
// cartridge to be specified. If the save type is "AUTO" then the save type is
// inferred from the library identification string that the official
// development kit embeds in every ROM that uses a save device.
//
// It is preferred that the NewLoader() function is used. The NewLoader()
// function sets the save file name from the cartridge filename.
//
//	cl := cartridgeloader.NewLoader("roms/game.gba", "AUTO")
//	err := cl.Load()
//	if err != nil {
//		return err
//	}
//	mem.SetSaveDevice(cl.SaveType, data)
package cartridgeloader
