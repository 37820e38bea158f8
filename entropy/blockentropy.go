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

import "math"

// BlockEntropy estimates the order-(blockSize-1) Shannon entropy of seq by
// sliding a window of blockSize bytes across it (overlapping blocks, one
// per starting position) and computing the empirical entropy of the
// resulting block distribution. It returns 0 for inputs too short to form
// a single block.
func BlockEntropy(seq []byte, blockSize int) float64 {
	if blockSize <= 0 || blockSize > len(seq) {
		return 0
	}

	nblocks := len(seq) - blockSize + 1
	counts := make(map[string]int, nblocks)

	for i := 0; i < nblocks; i++ {
		counts[string(seq[i:i+blockSize])]++
	}

	entropy := 0.0

	for _, c := range counts {
		p := float64(c) / float64(nblocks)
		entropy -= p * math.Log2(p)
	}

	return entropy
}
