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

// parsePhrase extends a phrase starting at text position i against its two
// candidate sources psv and nsv (either may be -1, meaning "no candidate on
// that side"), picking whichever extends further. When both are available
// it first extends psv against nsv for free (that part of the match is
// independent of i), then disambiguates against x[i] to decide which source
// the phrase actually copies from.
//
// next is the position at which the following phrase starts; it always
// advances by at least one byte, even for a literal (len == 0).
//
// Every scan here is bounded against n. The textbook presentation leaves
// some of these unbounded, relying on x carrying a trailing sentinel
// strictly smaller than every other symbol to stop the comparison. x here
// is an arbitrary caller-supplied byte slice with no such guarantee, so
// every comparison checks its indices against n first; since psv and nsv
// are always < i, the added bounds never shorten a match that the
// sentinel-bearing version of the algorithm would have found.
func parsePhrase(x []byte, n, i, psv, nsv int) (next int, f Factor) {
	length := 0
	var pos int

	switch {
	case psv == -1 && nsv == -1:
		// No candidate on either side: this only happens at the very start
		// of a text (or, during cross-parsing, when the dictionary is
		// empty), so the phrase is forced to be a single literal.

	case nsv == -1:
		for i+length < n && x[psv+length] == x[i+length] {
			length++
		}

		pos = psv

	case psv == -1:
		for i+length < n && x[nsv+length] == x[i+length] {
			length++
		}

		pos = nsv

	default:
		for psv+length < n && nsv+length < n && x[psv+length] == x[nsv+length] {
			length++
		}

		if i+length < n && psv+length < n && x[i+length] == x[psv+length] {
			length++

			for i+length < n && x[i+length] == x[psv+length] {
				length++
			}

			pos = psv
		} else {
			for i+length < n && x[i+length] == x[nsv+length] {
				length++
			}

			pos = nsv
		}
	}

	if length == 0 {
		pos = int(x[i])
	}

	f = Factor{Pos: int32(pos), Len: int32(length)}

	if length < 1 {
		next = i + 1
	} else {
		next = i + length
	}

	return next, f
}
