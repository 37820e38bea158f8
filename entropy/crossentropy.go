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
	"github.com/martiniani-lab/sweetsourcod-go/kkp"
)

// CrossParsingComplexity returns the number of phrases produced by
// cross-parsing s2 against the dictionary s1 (the Ziv-Merhav estimator of
// the relative entropy of s2 with respect to s1).
func CrossParsingComplexity(s1, s2 []byte, listeners ...ssc.Listener) (int, error) {
	return kkp.CrossParse(s1, s2, nil, listeners...)
}

// CrossParsingFactors returns the cross-parse of s2 against s1 itself, not
// just its length.
func CrossParsingFactors(s1, s2 []byte, listeners ...ssc.Listener) ([]kkp.Factor, error) {
	sink := &kkp.SliceSink{}

	if _, err := kkp.CrossParse(s1, s2, sink, listeners...); err != nil {
		return nil, err
	}

	return sink.Factors, nil
}

// CrossParsingComplexitySumLog returns both the cross-parsing phrase count
// and the same sumlog cost proxy LZ77ComplexitySumLog computes, applied to
// the cross-parse factors instead of the single-sequence LZ77 factors.
func CrossParsingComplexitySumLog(s1, s2 []byte, listeners ...ssc.Listener) (int, float64, error) {
	sink := &kkp.SliceSink{}

	n, err := kkp.CrossParse(s1, s2, sink, listeners...)
	if err != nil {
		return 0, 0, err
	}

	sumlog := 0.0

	for _, f := range sink.Factors {
		sumlog += math.Log2(math.Max(2, float64(f.Pos))) + math.Log2(math.Max(2, float64(f.Len)))
	}

	return n, sumlog, nil
}
