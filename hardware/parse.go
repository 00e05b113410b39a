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
	"strings"

	"github.com/google/uuid"
)

// releaseDateLen is the length of an MM/DD/YYYY date.
const releaseDateLen = 10

// SingleQuoted returns the text between the first and the last single quote
// in line, or the empty string if line holds fewer than two quotes.
func SingleQuoted(line string) string {
	start := strings.IndexByte(line, '\'')
	end := strings.LastIndexByte(line, '\'')
	if start == -1 || end <= start {
		return ""
	}

	return line[start+1 : end]
}

// NormalizeReleaseDate rewrites an MM/DD/YYYY firmware date as YYYY-MM-DD.
//
// Only character positions are inspected, so any separator is accepted. If
// date is too short to slice, it is returned unmodified along with false.
func NormalizeReleaseDate(date string) (string, bool) {
	if len(date) < releaseDateLen {
		return date, false
	}

	return date[6:10] + "-" + date[0:2] + "-" + date[3:5], true
}

// fieldValue reports whether line contains label and, if so, returns the
// trimmed text following its first occurrence.
func fieldValue(line, label string) (string, bool) {
	_, after, ok := strings.Cut(line, label)
	if !ok {
		return "", false
	}

	return strings.TrimSpace(after), true
}

// canonicalUUID formats s as a lower case hyphenated UUID. Values that do
// not parse are returned unmodified.
func canonicalUUID(s string) string {
	id, err := uuid.Parse(s)
	if err != nil {
		return s
	}

	return id.String()
}
