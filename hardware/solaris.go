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

package hardware

import (
	"context"
	"strings"

	"github.com/go-logr/logr"
)

// Section markers and field labels as printed by the Solaris smbios(1M)
// command, for example:
//
//	ID    SIZE TYPE
//	0     87   SMB_TYPE_BIOS (BIOS Information)
//
//	  Vendor: Parallels Software International Inc.
//	  Version String: 11.2.1 (32686)
//	  Release Date: 07/15/2016
//
//	ID    SIZE TYPE
//	1     177  SMB_TYPE_SYSTEM (system information)
//
//	  Manufacturer: Parallels Software International Inc.
//	  Product: Parallels Virtual Platform
//	  Serial Number: Parallels-45 2E 7E 2D 57 5C 4B 59
//	  UUID: 452e7e2d-575c-4b59-b130-2881b7818934
//
//	ID    SIZE TYPE
//	2     90   SMB_TYPE_BASEBOARD (base board)
//	...
const (
	markerPrefix    = "SMB_TYPE_"
	markerBIOS      = "SMB_TYPE_BIOS"
	markerSystem    = "SMB_TYPE_SYSTEM"
	markerBaseboard = "SMB_TYPE_BASEBOARD"

	labelVendor       = "Vendor:"
	labelBIOSVersion  = "Version String:"
	labelReleaseDate  = "Release Date:"
	labelManufacturer = "Manufacturer:"
	labelProduct      = "Product:"
	labelVersion      = "Version:"
	labelSerialNumber = "Serial Number:"
	labelUUID         = "UUID:"

	// chassisSerialMarker prefixes the chassis serial property in
	// prtconf -pv output, e.g. chassis-sn:  'AB12345'.
	chassisSerialMarker = "chassis-sn:"
)

// A section is the SMBIOS structure type currently being scanned.
type section int

const (
	sectionNone section = iota
	sectionBIOS
	sectionSystem
	sectionBaseboard
)

// smbiosFields holds the raw values scraped from smbios output. Empty
// strings mean the field was absent.
type smbiosFields struct {
	biosVendor  string
	biosVersion string
	biosDate    string

	manufacturer string
	product      string
	serialNumber string
	uuid         string

	board BaseboardInitializer
}

// scanSMBIOS extracts fields from the first BIOS, system and baseboard
// sections of smbios output. Scanning stops at the first section marker of
// any other type.
func scanSMBIOS(lines []string) smbiosFields {
	var (
		f   smbiosFields
		sec = sectionNone
	)

	for _, line := range lines {
		if strings.Contains(line, markerPrefix) {
			switch {
			case strings.Contains(line, markerBIOS):
				sec = sectionBIOS
			case strings.Contains(line, markerSystem):
				sec = sectionSystem
			case strings.Contains(line, markerBaseboard):
				sec = sectionBaseboard
			default:
				return f
			}
			continue
		}

		switch sec {
		case sectionBIOS:
			scanBIOS(&f, line)
		case sectionSystem:
			scanSystem(&f, line)
		case sectionBaseboard:
			scanBaseboard(&f.board, line)
		}
	}

	return f
}

func scanBIOS(f *smbiosFields, line string) {
	if v, ok := fieldValue(line, labelVendor); ok {
		f.biosVendor = v
	} else if v, ok := fieldValue(line, labelBIOSVersion); ok {
		f.biosVersion = v
	} else if v, ok := fieldValue(line, labelReleaseDate); ok {
		f.biosDate = v
	}
}

func scanSystem(f *smbiosFields, line string) {
	if v, ok := fieldValue(line, labelManufacturer); ok {
		f.manufacturer = v
	} else if v, ok := fieldValue(line, labelProduct); ok {
		f.product = v
	} else if v, ok := fieldValue(line, labelSerialNumber); ok {
		f.serialNumber = v
	} else if v, ok := fieldValue(line, labelUUID); ok {
		f.uuid = v
	}
}

func scanBaseboard(bi *BaseboardInitializer, line string) {
	if v, ok := fieldValue(line, labelManufacturer); ok {
		bi.Manufacturer = v
	} else if v, ok := fieldValue(line, labelProduct); ok {
		bi.Model = v
	} else if v, ok := fieldValue(line, labelVersion); ok {
		bi.Version = v
	} else if v, ok := fieldValue(line, labelSerialNumber); ok {
		bi.SerialNumber = v
	}
}

// A SolarisReader reads a ComputerSystem from Solaris inventory commands.
//
// smbios(1M) generally requires root privileges; without them most fields
// come back as Unknown.
type SolarisReader struct {
	runner Runner
	log    logr.Logger
}

// An Option configures a SolarisReader.
type Option func(*SolarisReader)

// WithRunner sets the Runner used to execute commands. The default is an
// ExecRunner sharing the reader's logger.
func WithRunner(r Runner) Option {
	return func(sr *SolarisReader) {
		sr.runner = r
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(log logr.Logger) Option {
	return func(sr *SolarisReader) {
		sr.log = log
	}
}

// NewSolarisReader creates a SolarisReader.
func NewSolarisReader(opts ...Option) *SolarisReader {
	sr := &SolarisReader{log: logr.Discard()}
	for _, o := range opts {
		o(sr)
	}

	if sr.runner == nil {
		sr.runner = ExecRunner{Log: sr.log}
	}

	return sr
}

// Read takes a snapshot of the computer system. It never fails: any value
// that cannot be determined is set to Unknown.
func (sr *SolarisReader) Read(ctx context.Context) ComputerSystem {
	f := scanSMBIOS(sr.runner.RunNative(ctx, "smbios"))

	cs := NewComputerSystem()

	if f.biosVendor != "" {
		cs.Firmware.Manufacturer = f.biosVendor
	}
	if f.biosVersion != "" {
		cs.Firmware.Version = f.biosVersion
	}
	if f.biosDate != "" {
		date, ok := NormalizeReleaseDate(f.biosDate)
		if !ok {
			sr.log.V(1).Info("keeping unrecognized release date", "date", f.biosDate)
		}
		cs.Firmware.ReleaseDate = date
	}

	if f.manufacturer != "" {
		cs.Manufacturer = f.manufacturer
	}
	if f.product != "" {
		cs.Model = f.product
	}
	if f.uuid != "" {
		cs.HardwareUUID = canonicalUUID(f.uuid)
	}

	serial := f.serialNumber
	if serial == "" {
		serial = sr.systemSerialNumber(ctx)
	}
	cs.SerialNumber = serial

	cs.Baseboard = NewBaseboard(f.board)

	return cs
}

// systemSerialNumber looks up the chassis serial number when smbios does not
// report one.
func (sr *SolarisReader) systemSerialNumber(ctx context.Context) string {
	// sneep is only present if Sun Explorer is installed.
	if serial := sr.runner.FirstAnswer(ctx, "sneep"); serial != "" {
		return serial
	}

	for _, line := range sr.runner.RunNative(ctx, "prtconf", "-pv") {
		if strings.Contains(line, chassisSerialMarker) {
			if serial := SingleQuoted(line); serial != "" {
				return serial
			}
			break
		}
	}

	sr.log.V(1).Info("no serial number source available")

	return Unknown
}
