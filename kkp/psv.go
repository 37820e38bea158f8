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

const (
	stackBits = 16
	stackSize = 1 << stackBits
	stackHalf = 1 << (stackBits - 1)
	stackMask = stackSize - 1
)

// computePSV builds the previous-smaller-value chain used by kkp2 and
// kkp1s. saAt(i) must return SA[i], the i-th entry of the suffix array,
// reading i in strictly increasing order starting from 0 - this is the one
// access pattern both the in-memory and the externally streamed suffix
// array sources need to support.
//
// The scan keeps only a bounded explicit stack of stackSize candidates; a
// full stack is halved by discarding its older half, and an empty stack is
// refilled by walking back through the already-computed chain (the
// "implicit stack" in the original description of the algorithm). Either
// event changes only how much work the scan does, never its result.
//
// The returned slice cs has length n+1. After this call, cs[0] == -1 and,
// for each text position p in 1..n, cs[p] is one more than the previous
// smaller suffix-array value seen at or before p (0 meaning "none").
// Drivers reset cs[0] to 0 before reusing cs as the forward/backward link
// structure that also yields the next-smaller value on the fly.
func computePSV(saAt func(i int) (int32, error), n int, listeners *ssc.Listeners) ([]int32, error) {
	listeners.Notify(ssc.NewEvent(ssc.EVT_PSV_SCAN_START, int64(n), 0))

	cs := make([]int32, n+1)
	stack := make([]int32, stackSize+5)
	top := 0
	stack[0] = 0
	cs[0] = -1

	for i := 1; i <= n; i++ {
		v, err := saAt(i - 1)
		if err != nil {
			return nil, err
		}

		sai := v + 1

		for stack[top] > sai {
			top--
		}

		if top&stackMask == 0 {
			if stack[top] < 0 {
				// Stack empty: recover the missing context implicitly by
				// walking back through the chain already written to cs.
				pos := int(-stack[top])

				for pos > int(sai) {
					pos = int(cs[pos])
				}

				stack[0] = -cs[pos]
				stack[1] = int32(pos)
				top = 1
			} else if top == stackSize {
				listeners.Notify(ssc.NewEvent(ssc.EVT_STACK_OVERFLOW, int64(n), i))

				// Stack full: keep the newer half, discard the rest.
				for j := stackHalf; j <= stackSize; j++ {
					stack[j-stackHalf] = stack[j]
				}

				stack[0] = -stack[0]
				top = stackHalf
			}
		}

		addr := sai
		v2 := stack[top]

		if v2 < 0 {
			v2 = 0
		}

		cs[addr] = v2
		top++
		stack[top] = sai
	}

	listeners.Notify(ssc.NewEvent(ssc.EVT_PSV_SCAN_END, int64(n), 0))

	return cs, nil
}
