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

package kkp

import "errors"

var (
	// ErrLengthMismatch is returned when a caller-supplied suffix array does
	// not have the same length as the text it was built from.
	ErrLengthMismatch = errors.New("kkp: suffix array length does not match text length")

	// ErrAlphabetConflict is returned by cross-parsing helpers when a text
	// already contains the byte reserved as the separator between the two
	// sequences being compared.
	ErrAlphabetConflict = errors.New("kkp: text alphabet conflicts with reserved separator byte")
)
