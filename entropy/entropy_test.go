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
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntsToBytesRoundTrips(t *testing.T) {
	out, err := IntsToBytes([]int{0, 1, 255, 42})
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 255, 42}, out)
}

func TestIntsToBytesRejectsOutOfRange(t *testing.T) {
	_, err := IntsToBytes([]int{-1})
	require.Error(t, err)

	_, err = IntsToBytes([]int{256})
	require.Error(t, err)
}

func TestIntsToBytesShiftedNeverProducesZero(t *testing.T) {
	out, err := IntsToBytesShifted([]int{0, 1, 254})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 255}, out)

	_, err = IntsToBytesShifted([]int{255})
	require.Error(t, err)

	_, err = IntsToBytesShifted([]int{-1})
	require.Error(t, err)
}

func TestBlockEntropyConstantSequenceIsZero(t *testing.T) {
	seq := []byte("aaaaaaaaaaaaaaaaaaaa")
	require.Equal(t, 0.0, BlockEntropy(seq, 4))
}

func TestBlockEntropyTooShortIsZero(t *testing.T) {
	require.Equal(t, 0.0, BlockEntropy([]byte("ab"), 10))
}

func TestBlockEntropyIsNonNegative(t *testing.T) {
	seq := []byte("the quick brown fox jumps over the lazy dog")
	require.GreaterOrEqual(t, BlockEntropy(seq, 4), 0.0)
}

func TestBWTIsAPermutationOfInput(t *testing.T) {
	seq := []byte("mississippi")
	bwt := BWT(seq)
	require.Len(t, bwt, len(seq))

	got := append([]byte{}, bwt...)
	want := append([]byte{}, seq...)
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	require.Equal(t, want, got)
}

func TestBlockSortingEntropyConstantSequenceIsZero(t *testing.T) {
	seq := []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	require.InDelta(t, 0.0, BlockSortingEntropy(seq), 1e-9)
}

func TestLZ78ComplexityConstantSequenceIsSmall(t *testing.T) {
	seq := []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	require.Less(t, LZ78Complexity(seq), len(seq)/2)
}

func TestLZ76ComplexityConstantSequenceIsSmall(t *testing.T) {
	seq := []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	require.Less(t, LZ76Complexity(seq), len(seq)/2)
}

func TestLZComplexityOnRandomLikeSequenceIsLarger(t *testing.T) {
	random := []byte("qzxjkvbwpmfygtlnahodcrsieu019283746")
	constant := make([]byte, len(random))

	for i := range constant {
		constant[i] = 'a'
	}

	require.Greater(t, LZ78Complexity(random), LZ78Complexity(constant))
	require.Greater(t, LZ76Complexity(random), LZ76Complexity(constant))
}

func TestLZ77ComplexityTracksFactorCount(t *testing.T) {
	seq := []byte("abababababababab")

	n, err := LZ77Complexity(seq)
	require.NoError(t, err)

	factors, err := LZ77Factors(seq)
	require.NoError(t, err)
	require.Len(t, factors, n)

	nSum, sumlog, err := LZ77ComplexitySumLog(seq)
	require.NoError(t, err)
	require.Equal(t, n, nSum)
	require.Greater(t, sumlog, 0.0)
}

func TestCrossParsingComplexityTracksFactorCount(t *testing.T) {
	s1 := []byte("abcabcabcabcabc")
	s2 := []byte("abcabcabc")

	n, err := CrossParsingComplexity(s1, s2)
	require.NoError(t, err)

	factors, err := CrossParsingFactors(s1, s2)
	require.NoError(t, err)
	require.Len(t, factors, n)

	nSum, sumlog, err := CrossParsingComplexitySumLog(s1, s2)
	require.NoError(t, err)
	require.Equal(t, n, nSum)
	require.GreaterOrEqual(t, sumlog, 0.0)
}

func TestGosperCoordToDistanceRejectsNegativeLevel(t *testing.T) {
	_, err := GosperCoordToDistance(0, 0, -1)
	require.Error(t, err)
}

func TestGosperCoordToDistanceOriginIsZero(t *testing.T) {
	d, err := GosperCoordToDistance(0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), d)
}

func TestGosperCoordToDistanceIsDeterministic(t *testing.T) {
	d1, err := GosperCoordToDistance(1.5, -2.25, 2)
	require.NoError(t, err)

	d2, err := GosperCoordToDistance(1.5, -2.25, 2)
	require.NoError(t, err)

	require.Equal(t, d1, d2)
}
