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

import (
	ssc "github.com/martiniani-lab/sweetsourcod-go"
	"github.com/martiniani-lab/sweetsourcod-go/internal/sarray"
)

// CrossParse implements the Ziv-Merhav cross-parsing of s2 against the
// dictionary s1: it builds the suffix array of s1 + 0x00 + s2 and, for each
// position of s2, extends a phrase against the nearest suffix-array
// neighbors that still belong to s1. The factor count it returns is the
// basis of the cross-entropy estimator in the entropy package.
//
// Byte 0x00 is reserved as the separator between s1 and s2; CrossParse
// returns ErrAlphabetConflict if either sequence already contains it (use
// entropy.IntsToBytesShifted when the source sequence is a lattice over
// [0, 255) rather than raw bytes).
//
// Any listeners passed in are notified of EVT_FACTORIZE_START/END around
// the whole call.
func CrossParse(s1, s2 []byte, sink Sink, listeners ...ssc.Listener) (int, error) {
	for _, b := range s1 {
		if b == 0 {
			return 0, ErrAlphabetConflict
		}
	}

	for _, b := range s2 {
		if b == 0 {
			return 0, ErrAlphabetConflict
		}
	}

	ls := newListeners(listeners)
	ls.Notify(ssc.NewEvent(ssc.EVT_FACTORIZE_START, int64(len(s1)+len(s2)), 0))

	length1 := len(s1)
	sequence := make([]byte, 0, len(s1)+1+len(s2))
	sequence = append(sequence, s1...)
	sequence = append(sequence, 0)
	sequence = append(sequence, s2...)
	length := len(sequence)

	sa := sarray.Construct(sequence)
	isa := make([]int32, length)

	for i, p := range sa {
		isa[p] = int32(i)
	}

	nfactors := 0
	next := length1 + 1

	for next < length {
		nextLex := int(isa[next])

		psvLex := nextLex - 1
		for psvLex >= 0 && int(sa[psvLex]) >= length1 {
			psvLex--
		}

		psv := -1
		if psvLex != -1 {
			psv = int(sa[psvLex])
		}

		nsvLex := nextLex + 1
		for nsvLex < length && int(sa[nsvLex]) >= length1 {
			nsvLex++
		}

		nsv := -1
		if nsvLex != length {
			nsv = int(sa[nsvLex])
		}

		nextPos, f := parsePhrase(sequence, length, next, psv, nsv)

		if sink != nil {
			sink.Emit(f)
		}

		next = nextPos
		nfactors++
	}

	ls.Notify(ssc.NewEvent(ssc.EVT_FACTORIZE_END, int64(length), nfactors))

	return nfactors, nil
}
