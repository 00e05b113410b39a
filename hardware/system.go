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
	"errors"
)

// ErrUnsupported is returned by ReadComputerSystem on platforms without a
// computer system reader.
var ErrUnsupported = errors.New("hardware: computer system information not supported on this platform")

// ReadComputerSystem reads the computer system of the current host using
// the operating system-specific reader. A logr.Logger stored in ctx
// receives debug output.
//
// If no reader exists for the platform, an error wrapping ErrUnsupported is
// returned. Otherwise the returned ComputerSystem may still contain Unknown
// fields.
func ReadComputerSystem(ctx context.Context) (ComputerSystem, error) {
	return readComputerSystem(ctx)
}
