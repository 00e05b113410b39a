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

package hardware_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yywing/go-sysinfo/hardware"
)

func TestNewBaseboard(t *testing.T) {
	tests := []struct {
		name string
		bi   hardware.BaseboardInitializer
		want hardware.Baseboard
	}{
		{
			name: "empty",
			want: hardware.Baseboard{
				Manufacturer: hardware.Unknown,
				Model:        hardware.Unknown,
				Version:      hardware.Unknown,
				SerialNumber: hardware.Unknown,
			},
		},
		{
			name: "partial",
			bi: hardware.BaseboardInitializer{
				Manufacturer: "Oracle Corporation",
				SerialNumber: "465769T+1234AB0012",
			},
			want: hardware.Baseboard{
				Manufacturer: "Oracle Corporation",
				Model:        hardware.Unknown,
				Version:      hardware.Unknown,
				SerialNumber: "465769T+1234AB0012",
			},
		},
		{
			name: "full",
			bi: hardware.BaseboardInitializer{
				Manufacturer: "Oracle Corporation",
				Model:        "ASY,MB,X4170 M2",
				Version:      "51",
				SerialNumber: "465769T+1234AB0012",
			},
			want: hardware.Baseboard{
				Manufacturer: "Oracle Corporation",
				Model:        "ASY,MB,X4170 M2",
				Version:      "51",
				SerialNumber: "465769T+1234AB0012",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, hardware.NewBaseboard(tt.bi)); diff != "" {
				t.Fatalf("unexpected baseboard (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputerSystemJSON(t *testing.T) {
	cs := hardware.NewComputerSystem()
	cs.Firmware.ReleaseDate = "2016-07-15"

	b, err := json.Marshal(cs)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	want := map[string]interface{}{
		"manufacturer": "unknown",
		"model":        "unknown",
		"serialNumber": "unknown",
		"hardwareUUID": "unknown",
		"firmware": map[string]interface{}{
			"manufacturer": "unknown",
			"version":      "unknown",
			"releaseDate":  "2016-07-15",
		},
		"baseboard": map[string]interface{}{
			"manufacturer": "unknown",
			"model":        "unknown",
			"version":      "unknown",
			"serialNumber": "unknown",
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected JSON (-want +got):\n%s", diff)
	}
}

func TestComputerSystemString(t *testing.T) {
	cs := hardware.NewComputerSystem()
	cs.Manufacturer = "Acme"

	const want = "manufacturer: Acme, model: unknown, serial number: unknown, uuid: unknown"
	if got := cs.String(); got != want {
		t.Fatalf("unexpected string:\n- want: %s\n-  got: %s", want, got)
	}
}
