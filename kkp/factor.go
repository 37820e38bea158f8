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

// Package kkp implements the linear-time LZ77 factorization algorithms of
// Karkkainen, Kempa and Puglisi (KKP): kkp2 and kkp1s build the factor
// stream from the previous-smaller-value structure of a suffix array in a
// single left-to-right pass, kkp3 additionally records next-smaller-value
// pairs up front. A cross-parsing driver reuses the same phrase-extension
// kernel to estimate the Ziv-Merhav relative entropy between two sequences.
package kkp

// Factor is one phrase of an LZ77 parse: either a back-reference of Len
// bytes copied from Pos, or a literal byte equal to Pos when Len is 0.
type Factor struct {
	Pos int32
	Len int32
}

// Sink receives factors as a driver produces them. A driver that is given a
// nil Sink still returns the correct factor count; it simply does not
// materialize the factors themselves, which lets callers who only need the
// complexity measure skip the allocation.
type Sink interface {
	Emit(f Factor)
}

// SliceSink is a Sink that accumulates every factor it receives, in order.
type SliceSink struct {
	Factors []Factor
}

// Emit appends f to s.Factors.
func (s *SliceSink) Emit(f Factor) {
	s.Factors = append(s.Factors, f)
}

// CountingSink is a Sink that only counts the factors it receives, useful
// when a caller wants the factor count without a separate bookkeeping
// variable.
type CountingSink struct {
	N int
}

// Emit increments s.N.
func (s *CountingSink) Emit(Factor) {
	s.N++
}
