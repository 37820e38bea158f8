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

import ssc "github.com/martiniani-lab/sweetsourcod-go"

// FactorizeInMemory computes the LZ77 factorization of x using a precomputed
// suffix array sa (kkp2 in the original paper). x and sa are both left
// untouched; nothing about the result depends on whether sink is nil.
//
// len(sa) must equal len(x), with sa a permutation of [0, len(x)) such that
// x[sa[i]:] < x[sa[i+1]:] for every i - i.e. a suffix array in the usual
// sense, as produced by internal/sarray.Construct.
//
// Any listeners passed in are notified of EVT_FACTORIZE_START/END around
// the whole call and of the PSV/NSV engine's own EVT_PSV_SCAN_START/END and
// EVT_STACK_OVERFLOW in between; nothing about the result depends on
// whether any are attached.
func FactorizeInMemory(x []byte, sa []int32, sink Sink, listeners ...ssc.Listener) (int, error) {
	n := len(x)

	if len(sa) != n {
		return 0, ErrLengthMismatch
	}

	ls := newListeners(listeners)
	ls.Notify(ssc.NewEvent(ssc.EVT_FACTORIZE_START, int64(n), 0))

	if n == 0 {
		ls.Notify(ssc.NewEvent(ssc.EVT_FACTORIZE_END, int64(n), 0))
		return 0, nil
	}

	cs, err := computePSV(func(i int) (int32, error) { return sa[i], nil }, n, ls)
	if err != nil {
		return 0, err
	}

	nfactors := runPhraseLoop(x, cs, sink)
	ls.Notify(ssc.NewEvent(ssc.EVT_FACTORIZE_END, int64(n), nfactors))

	return nfactors, nil
}

// runPhraseLoop performs the second pass shared by kkp2 and kkp1s: it walks
// the previous-smaller-value chain in cs left to right, recovering the
// matching next-smaller-value on the fly as positions are consumed, and
// calls parsePhrase whenever the scan reaches the start of the next phrase.
func runPhraseLoop(x []byte, cs []int32, sink Sink) int {
	n := len(x)
	cs[0] = 0
	nfactors := 0
	next := 1

	for t := 1; t <= n; t++ {
		psv := int(cs[t])
		nsv := int(cs[psv])

		if t == next {
			nextT, f := parsePhrase(x, n, t-1, psv-1, nsv-1)

			if sink != nil {
				sink.Emit(f)
			}

			next = nextT + 1
			nfactors++
		}

		cs[t] = int32(nsv)
		cs[psv] = int32(t)
	}

	return nfactors
}
