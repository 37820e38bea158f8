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

import (
	"math"

	"github.com/martiniani-lab/sweetsourcod-go/internal/sarray"
)

// BWT returns the Burrows-Wheeler transform of the reverse of seq. Working
// on the reversed sequence matches the convention the rest of this package
// (and the original estimator this is modeled on) uses, so callers should
// not reverse seq themselves.
func BWT(seq []byte) []byte {
	n := len(seq)

	if n == 0 {
		return []byte{}
	}

	reversed := make([]byte, n)

	for i, b := range seq {
		reversed[n-1-i] = b
	}

	sa := sarray.Construct(reversed)
	bwt := make([]byte, n)

	for i, p := range sa {
		if p == 0 {
			bwt[i] = reversed[n-1]
		} else {
			bwt[i] = reversed[p-1]
		}
	}

	return bwt
}

// sumlogpSegment returns sum_s count(s) * log2(count(s)/len(seg)) over the
// symbols s appearing in seg - the (negative) cross-entropy contribution of
// treating seg as drawn i.i.d. from its own empirical distribution.
func sumlogpSegment(seg []byte) float64 {
	counts := make(map[byte]int)

	for _, b := range seg {
		counts[b]++
	}

	length := float64(len(seg))
	sumlogp := 0.0

	for _, c := range counts {
		p := float64(c) / length
		sumlogp += float64(c) * math.Log2(p)
	}

	return sumlogp
}

// BlockSortingEntropy estimates the entropy rate of seq by taking the
// Burrows-Wheeler transform of its reverse, splitting the transform into
// ceil(sqrt(len(seq)))-byte segments, and averaging the order-0 entropy of
// each segment. BWT tends to group together bytes that share a long
// right-context in the original sequence, so a uniform segmentation of it
// approximates a high-order entropy estimate at a fraction of the cost of
// conditioning directly on long contexts.
func BlockSortingEntropy(seq []byte) float64 {
	length := len(seq)

	if length == 0 {
		return 0
	}

	segLen := int(math.Ceil(math.Sqrt(float64(length))))
	bwt := BWT(seq)

	entropy := 0.0

	for i := 0; i < length; i += segLen {
		end := i + segLen

		if end > length {
			end = length
		}

		entropy -= sumlogpSegment(bwt[i:end])
	}

	return entropy / float64(length)
}
