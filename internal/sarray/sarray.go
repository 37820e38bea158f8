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

// Package sarray is the suffix-array construction step that the kkp and
// entropy packages treat as a black box, backed by the DivSufSort
// implementation in github.com/ulikunitz/lz/suffix.
package sarray

import "github.com/ulikunitz/lz/suffix"

// Construct returns the suffix array of text, i.e. a permutation sa of
// [0, len(text)) such that text[sa[i]:] < text[sa[i+1]:] for every i.
func Construct(text []byte) []int32 {
	sa := make([]int32, len(text))
	suffix.Sort(text, sa)
	return sa
}
