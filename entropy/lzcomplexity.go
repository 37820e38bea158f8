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

package entropy

import "strings"

// LZ78Complexity returns the number of phrases in the classical LZ78
// incremental parse of seq: the shortest prefix of the unparsed remainder
// that has not been seen as a phrase before becomes the next phrase.
func LZ78Complexity(seq []byte) int {
	if len(seq) == 0 {
		return 0
	}

	n := len(seq)
	phrases := make(map[string]struct{})
	i := 0
	remainder := false

	for j := 1; j <= n; j++ {
		phrase := string(seq[i:j])
		remainder = true

		if _, ok := phrases[phrase]; !ok {
			phrases[phrase] = struct{}{}
			i = j
			remainder = false
		}
	}

	if remainder {
		return len(phrases) + 1
	}

	return len(phrases)
}

// LZ76Complexity returns the number of phrases in the LZ76 (Lempel-Ziv
// 1976) incremental parse of seq: the next phrase is the shortest
// extension of the unparsed remainder that does not already occur
// somewhere in the text consumed so far.
func LZ76Complexity(seq []byte) int {
	if len(seq) == 0 {
		return 0
	}

	n := len(seq)
	phrases := make(map[string]struct{})
	phrases[string(seq[0:1])] = struct{}{}
	i := 1

	var pastSeq, phrase string

	for j := 2; j <= n; j++ {
		pastSeq = string(seq[0 : j-1])
		phrase = string(seq[i:j])

		if !strings.Contains(pastSeq, phrase) {
			phrases[phrase] = struct{}{}
			i = j
		}
	}

	if strings.Contains(pastSeq, phrase) {
		return len(phrases) + 1
	}

	return len(phrases)
}
