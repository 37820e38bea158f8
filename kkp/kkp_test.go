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
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	ssc "github.com/martiniani-lab/sweetsourcod-go"
	"github.com/martiniani-lab/sweetsourcod-go/internal/sarray"
	"github.com/martiniani-lab/sweetsourcod-go/internal/sasource"
)

var corpus = []string{
	"banana",
	"abracadabra",
	"mississippi",
	"aaaaaaaaaaaaaaaaaaaa",
	"abcabcabcabcabcabc",
	"the quick brown fox jumps over the lazy dog",
	"x",
	"",
}

// retile reconstructs the text a factor stream claims to produce, so the
// "exact tiling" property can be checked without a reference decoder.
func retile(factors []Factor) []byte {
	out := make([]byte, 0)

	for _, f := range factors {
		if f.Len == 0 {
			out = append(out, byte(f.Pos))
			continue
		}

		for k := int32(0); k < f.Len; k++ {
			out = append(out, out[int(f.Pos)+int(k)])
		}
	}

	return out
}

func TestFactorizeInMemoryTilesExactly(t *testing.T) {
	for _, s := range corpus {
		x := []byte(s)
		sa := sarray.Construct(x)

		sink := &SliceSink{}
		n, err := FactorizeInMemory(x, sa, sink)
		require.NoError(t, err, s)
		require.Equal(t, len(sink.Factors), n, s)

		got := retile(sink.Factors)
		require.True(t, cmp.Equal(got, x), "retile mismatch for %q: got %q want %q", s, got, x)
	}
}

func TestFactorizeInMemoryDestructiveMatchesKKP2Count(t *testing.T) {
	for _, s := range corpus {
		x := []byte(s)

		sa2 := sarray.Construct(x)
		n2, err := FactorizeInMemory(x, sa2, nil)
		require.NoError(t, err, s)

		sa3 := sarray.Construct(x)
		n3, err := FactorizeInMemoryDestructive(x, sa3, nil)
		require.NoError(t, err, s)

		require.Equal(t, n2, n3, "kkp2/kkp3 factor count mismatch for %q", s)
	}
}

func TestFactorizeInMemoryDestructiveTilesExactly(t *testing.T) {
	for _, s := range corpus {
		x := []byte(s)
		sa := sarray.Construct(x)

		sink := &SliceSink{}
		_, err := FactorizeInMemoryDestructive(x, sa, sink)
		require.NoError(t, err, s)

		got := retile(sink.Factors)
		require.True(t, cmp.Equal(got, x), "retile mismatch for %q: got %q want %q", s, got, x)
	}
}

func TestFactorizeExternalSAMatchesInMemory(t *testing.T) {
	for _, s := range corpus {
		x := []byte(s)
		sa := sarray.Construct(x)

		wantSink := &SliceSink{}
		wantN, err := FactorizeInMemory(x, sa, wantSink)
		require.NoError(t, err, s)

		f, err := os.CreateTemp(t.TempDir(), "sa-*.bin")
		require.NoError(t, err, s)
		require.NoError(t, sasource.WriteExternalSA(f, sa), s)
		require.NoError(t, f.Close(), s)

		gotSink := &SliceSink{}
		gotN, err := FactorizeExternalSA(x, f.Name(), gotSink)
		require.NoError(t, err, s)

		require.Equal(t, wantN, gotN, s)
		require.True(t, cmp.Equal(wantSink.Factors, gotSink.Factors), "factor mismatch for %q", s)
	}
}

func TestFactorizeInMemoryRejectsLengthMismatch(t *testing.T) {
	_, err := FactorizeInMemory([]byte("abc"), []int32{0, 1}, nil)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestFactorizeInMemoryDestructiveRejectsLengthMismatch(t *testing.T) {
	_, err := FactorizeInMemoryDestructive([]byte("abc"), []int32{0, 1}, nil)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestFactorizeEmptyText(t *testing.T) {
	n, err := FactorizeInMemory(nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	n, err = FactorizeInMemoryDestructive(nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestCrossParseRejectsSeparatorByte(t *testing.T) {
	_, err := CrossParse([]byte{0, 1, 2}, []byte("abc"), nil)
	require.ErrorIs(t, err, ErrAlphabetConflict)

	_, err = CrossParse([]byte("abc"), []byte{0, 1, 2}, nil)
	require.ErrorIs(t, err, ErrAlphabetConflict)
}

func TestCrossParseSelfIsFullyCompressible(t *testing.T) {
	// Cross-parsing a sequence against a dictionary equal to itself should
	// need very few phrases: everything in s2 has already appeared in s1,
	// so not even a leading literal is needed.
	s := []byte("abcabcabcabcabcabcabc")

	sink := &SliceSink{}
	n, err := CrossParse(s, s, sink)
	require.NoError(t, err)
	require.Equal(t, len(sink.Factors), n)
	require.Less(t, n, len(s)/2)
}

func TestCrossParseDisjointAlphabetsAreAllLiterals(t *testing.T) {
	s1 := []byte("aaaaaaaaaa")
	s2 := []byte("bbbbbbbbbb")

	sink := &SliceSink{}
	n, err := CrossParse(s1, s2, sink)
	require.NoError(t, err)
	require.Equal(t, len(s2), n)

	for _, f := range sink.Factors {
		require.Equal(t, int32(0), f.Len)
		require.Equal(t, int32('b'), f.Pos)
	}
}

func TestFactorizeInMemoryNotifiesListeners(t *testing.T) {
	x := []byte("mississippi")
	sa := sarray.Construct(x)

	var types []int
	listener := ssc.ListenerFunc(func(evt *ssc.Event) {
		types = append(types, evt.Type())
	})

	n, err := FactorizeInMemory(x, sa, nil, listener)
	require.NoError(t, err)
	require.NotZero(t, n)

	require.Equal(t, []int{
		ssc.EVT_FACTORIZE_START,
		ssc.EVT_PSV_SCAN_START,
		ssc.EVT_PSV_SCAN_END,
		ssc.EVT_FACTORIZE_END,
	}, types)
}

func TestFactorizeInMemoryDestructiveNotifiesListeners(t *testing.T) {
	x := []byte("mississippi")
	sa := sarray.Construct(x)

	var types []int
	listener := ssc.ListenerFunc(func(evt *ssc.Event) {
		types = append(types, evt.Type())
	})

	_, err := FactorizeInMemoryDestructive(x, sa, nil, listener)
	require.NoError(t, err)

	require.Equal(t, []int{ssc.EVT_FACTORIZE_START, ssc.EVT_FACTORIZE_END}, types)
}

func TestCrossParseNotifiesListeners(t *testing.T) {
	s1 := []byte("abcabcabcabc")
	s2 := []byte("abcabc")

	var types []int
	listener := ssc.ListenerFunc(func(evt *ssc.Event) {
		types = append(types, evt.Type())
	})

	_, err := CrossParse(s1, s2, nil, listener)
	require.NoError(t, err)

	require.Equal(t, []int{ssc.EVT_FACTORIZE_START, ssc.EVT_FACTORIZE_END}, types)
}

func TestCountingSinkMatchesFactorCount(t *testing.T) {
	x := []byte("mississippi")
	sa := sarray.Construct(x)

	slice := &SliceSink{}
	n, err := FactorizeInMemory(x, sa, slice)
	require.NoError(t, err)

	counting := &CountingSink{}
	n2, err := FactorizeInMemory(x, sa, counting)
	require.NoError(t, err)

	require.Equal(t, n, n2)
	require.Equal(t, n, counting.N)
	require.Equal(t, len(slice.Factors), counting.N)
}
