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

import "fmt"

// IntsToBytes packs a symbolic trajectory - a sequence of non-negative
// integer symbols, as produced by discretizing a random walk over a
// lattice - into a byte string suitable for the estimators in this package.
// It returns an error if any value falls outside [0, 255].
func IntsToBytes(seq []int) ([]byte, error) {
	out := make([]byte, len(seq))

	for i, v := range seq {
		if v < 0 {
			return nil, fmt.Errorf("entropy: value %d at index %d is negative", v, i)
		}

		if v > 255 {
			return nil, fmt.Errorf("entropy: value %d at index %d exceeds 255", v, i)
		}

		out[i] = byte(v)
	}

	return out, nil
}

// IntsToBytesShifted packs a symbolic trajectory into a byte string the way
// IntsToBytes does, except every value is shifted up by one so that byte
// 0x00 never appears. Use this when the resulting sequence will be handed
// to kkp.CrossParse, which reserves 0x00 as the separator between the two
// sequences being compared. It returns an error if any value falls outside
// [0, 254].
func IntsToBytesShifted(seq []int) ([]byte, error) {
	out := make([]byte, len(seq))

	for i, v := range seq {
		if v < 0 {
			return nil, fmt.Errorf("entropy: value %d at index %d is negative", v, i)
		}

		if v > 254 {
			return nil, fmt.Errorf("entropy: value %d at index %d exceeds 254", v, i)
		}

		out[i] = byte(v + 1)
	}

	return out, nil
}
