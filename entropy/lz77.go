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

	ssc "github.com/martiniani-lab/sweetsourcod-go"
	"github.com/martiniani-lab/sweetsourcod-go/internal/sarray"
	"github.com/martiniani-lab/sweetsourcod-go/kkp"
)

// lz77Factorize always drives the factorization through kkp.FactorizeInMemory
// (kkp2), never FactorizeInMemoryDestructive (kkp3): kkp2 works in n+1
// int32s plus a fixed-size stack, while kkp3 allocates a 2n-entry
// (psv, nsv) table on top of an (n+2)-entry working copy of the suffix
// array, so every estimator below standardizes on kkp2. Any listeners are
// forwarded to the driver unchanged.
func lz77Factorize(seq []byte, sink kkp.Sink, listeners ...ssc.Listener) (int, error) {
	sa := sarray.Construct(seq)
	return kkp.FactorizeInMemory(seq, sa, sink, listeners...)
}

// LZ77Complexity returns the number of phrases in the LZ77 parse of seq,
// computed in linear time from its suffix array via kkp2.
func LZ77Complexity(seq []byte, listeners ...ssc.Listener) (int, error) {
	return lz77Factorize(seq, nil, listeners...)
}

// LZ77Factors returns the LZ77 parse of seq itself, not just its length.
func LZ77Factors(seq []byte, listeners ...ssc.Listener) ([]kkp.Factor, error) {
	sink := &kkp.SliceSink{}

	if _, err := lz77Factorize(seq, sink, listeners...); err != nil {
		return nil, err
	}

	return sink.Factors, nil
}

// LZ77ComplexitySumLog returns both the LZ77 phrase count and a proxy for
// the bits needed to encode the parse: for each factor (pos, len), it adds
// log2(max(2, pos)) + log2(max(2, len)), which is the size of the parse up
// to double-logarithmic corrections for encoding the logs themselves.
func LZ77ComplexitySumLog(seq []byte, listeners ...ssc.Listener) (int, float64, error) {
	sink := &kkp.SliceSink{}

	n, err := lz77Factorize(seq, sink, listeners...)
	if err != nil {
		return 0, 0, err
	}

	sumlog := 0.0

	for _, f := range sink.Factors {
		sumlog += math.Log2(math.Max(2, float64(f.Pos))) + math.Log2(math.Max(2, float64(f.Len)))
	}

	return n, sumlog, nil
}
