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

// FactorizeInMemoryDestructive computes the LZ77 factorization of x using a
// precomputed suffix array sa (kkp3 in the original paper). Unlike
// FactorizeInMemory, it derives explicit (psv, nsv) pairs for every
// position up front in one monotonic-stack pass, rather than recovering
// nsv on the fly while consuming psv. That extra pass is what the paper
// calls "destructive": once this call returns, sa no longer holds a usable
// suffix array and must not be reused. Callers that need both the
// factorization and the suffix array afterwards should use
// FactorizeInMemory instead.
//
// Any listeners passed in are notified of EVT_FACTORIZE_START/END around
// the whole call; kkp3's monotonic-stack pass has no PSV/NSV engine of its
// own to report on.
func FactorizeInMemoryDestructive(x []byte, sa []int32, sink Sink, listeners ...ssc.Listener) (int, error) {
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

	// work holds sa shifted by one slot with a -1 sentinel at each end, so
	// the scan below can treat position 0 and position n+1 like ordinary
	// (always-smallest) suffix-array entries instead of special-casing the
	// boundary.
	work := make([]int32, n+2)
	copy(work[1:], sa)
	work[0] = -1
	work[n+1] = -1

	// cpss[2*p] / cpss[2*p+1] hold the (psv, nsv) pair discovered for text
	// position p once both of its bracketing stack neighbors are known.
	cpss := make([]int32, 2*n)

	top := 0

	for i := 1; i <= n+1; i++ {
		for work[top] > work[i] {
			addr := work[top] * 2
			cpss[addr] = work[top-1]
			cpss[addr+1] = work[i]
			top--
		}

		top++
		work[top] = work[i]
	}

	copy(sa, work[1:n+1])

	nfactors := 1

	if sink != nil {
		sink.Emit(Factor{Pos: int32(x[0]), Len: 0})
	}

	i := 1

	for i < n {
		addr := int32(i) * 2
		psv := int(cpss[addr])
		nsv := int(cpss[addr+1])

		next, f := parsePhrase(x, n, i, psv, nsv)

		if sink != nil {
			sink.Emit(f)
		}

		i = next
		nfactors++
	}

	ls.Notify(ssc.NewEvent(ssc.EVT_FACTORIZE_END, int64(n), nfactors))

	return nfactors, nil
}
