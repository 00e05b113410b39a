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

	"github.com/go-logr/logr"
)

// readComputerSystem reads the computer system via smbios(1M).
func readComputerSystem(ctx context.Context) (ComputerSystem, error) {
	sr := NewSolarisReader(WithLogger(logr.FromContextOrDiscard(ctx)))
	return sr.Read(ctx), nil
}
