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

//go:build !solaris
// +build !solaris

package hardware_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yywing/go-sysinfo/hardware"
)

func TestReadComputerSystemUnsupported(t *testing.T) {
	_, err := hardware.ReadComputerSystem(context.Background())
	if !errors.Is(err, hardware.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got: %v", err)
	}
}
