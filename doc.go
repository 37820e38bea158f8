/*
Copyright 2026 The sweetsourcod-go Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package sweetsourcod defines the top level event and error types shared by
// the suffix-array LZ77 factorizers (see the kkp sub-package) and the
// entropy estimators that consume them (see the entropy sub-package).
//
// The suffix array construction collaborator lives under internal/sarray and
// the reader and writer for a suffix array stored in a file (the external,
// streamed source) live under internal/sasource.
package sweetsourcod

const (
	ERR_MISSING_PARAM    = 1
	ERR_LENGTH_MISMATCH  = 2
	ERR_INVALID_PARAM    = 3
	ERR_OPEN_FILE        = 4
	ERR_READ_FILE        = 5
	ERR_ALPHABET_CONFLICT = 6
	ERR_UNKNOWN          = 127
)
