// Copyright 2017-2018 DigitalOcean.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hardware provides computer system, firmware and baseboard
// descriptors gathered from operating system inventory commands.
//
// Fields that cannot be determined are set to Unknown rather than left
// empty, so callers never need to check for unset values.
package hardware

import "fmt"

// Unknown is the value of any field that could not be determined.
const Unknown = "unknown"

// A ComputerSystem describes the machine identity along with its firmware
// and baseboard.
type ComputerSystem struct {
	Manufacturer string    `json:"manufacturer" yaml:"manufacturer"`
	Model        string    `json:"model" yaml:"model"`
	SerialNumber string    `json:"serialNumber" yaml:"serialNumber"`
	HardwareUUID string    `json:"hardwareUUID" yaml:"hardwareUUID"`
	Firmware     Firmware  `json:"firmware" yaml:"firmware"`
	Baseboard    Baseboard `json:"baseboard" yaml:"baseboard"`
}

// NewComputerSystem returns a ComputerSystem with every field set to Unknown.
func NewComputerSystem() ComputerSystem {
	return ComputerSystem{
		Manufacturer: Unknown,
		Model:        Unknown,
		SerialNumber: Unknown,
		HardwareUUID: Unknown,
		Firmware:     NewFirmware(),
		Baseboard:    NewBaseboard(BaseboardInitializer{}),
	}
}

// String implements fmt.Stringer.
func (cs ComputerSystem) String() string {
	return fmt.Sprintf("manufacturer: %s, model: %s, serial number: %s, uuid: %s",
		cs.Manufacturer, cs.Model, cs.SerialNumber, cs.HardwareUUID)
}

// Firmware describes the system BIOS or UEFI firmware.
type Firmware struct {
	Manufacturer string `json:"manufacturer" yaml:"manufacturer"`
	Version      string `json:"version" yaml:"version"`
	// ReleaseDate is YYYY-MM-DD when the reported date could be normalized.
	ReleaseDate string `json:"releaseDate" yaml:"releaseDate"`
}

// NewFirmware returns a Firmware with every field set to Unknown.
func NewFirmware() Firmware {
	return Firmware{
		Manufacturer: Unknown,
		Version:      Unknown,
		ReleaseDate:  Unknown,
	}
}

// String implements fmt.Stringer.
func (f Firmware) String() string {
	return fmt.Sprintf("manufacturer: %s, version: %s, release date: %s",
		f.Manufacturer, f.Version, f.ReleaseDate)
}

// A BaseboardInitializer carries raw baseboard values collected by a
// platform reader. Empty fields are allowed.
type BaseboardInitializer struct {
	Manufacturer string
	Model        string
	Version      string
	SerialNumber string
}

// Baseboard describes the system motherboard.
type Baseboard struct {
	Manufacturer string `json:"manufacturer" yaml:"manufacturer"`
	Model        string `json:"model" yaml:"model"`
	Version      string `json:"version" yaml:"version"`
	SerialNumber string `json:"serialNumber" yaml:"serialNumber"`
}

// NewBaseboard builds a Baseboard from bi, substituting Unknown for any
// empty field.
func NewBaseboard(bi BaseboardInitializer) Baseboard {
	return Baseboard{
		Manufacturer: orUnknown(bi.Manufacturer),
		Model:        orUnknown(bi.Model),
		Version:      orUnknown(bi.Version),
		SerialNumber: orUnknown(bi.SerialNumber),
	}
}

// String implements fmt.Stringer.
func (b Baseboard) String() string {
	return fmt.Sprintf("manufacturer: %s, model: %s, version: %s, serial number: %s",
		b.Manufacturer, b.Model, b.Version, b.SerialNumber)
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}

	return s
}
