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
	ssc "github.com/martiniani-lab/sweetsourcod-go"
	"github.com/martiniani-lab/sweetsourcod-go/internal/sasource"
)

// FactorizeExternalSA computes the LZ77 factorization of x the same way
// FactorizeInMemory does (kkp1s in the original paper), except the suffix
// array is streamed sequentially from saPath instead of held in memory.
// This is the only driver suited to texts whose suffix array does not fit
// in RAM alongside the text itself. See FactorizeInMemory for what
// listeners observe.
func FactorizeExternalSA(x []byte, saPath string, sink Sink, listeners ...ssc.Listener) (int, error) {
	n := len(x)

	ls := newListeners(listeners)
	ls.Notify(ssc.NewEvent(ssc.EVT_FACTORIZE_START, int64(n), 0))

	if n == 0 {
		ls.Notify(ssc.NewEvent(ssc.EVT_FACTORIZE_END, int64(n), 0))
		return 0, nil
	}

	r, err := sasource.Open(saPath)
	if err != nil {
		return 0, err
	}

	defer r.Close()

	cs, err := computePSV(func(i int) (int32, error) { return r.Next() }, n, ls)
	if err != nil {
		return 0, err
	}

	nfactors := runPhraseLoop(x, cs, sink)
	ls.Notify(ssc.NewEvent(ssc.EVT_FACTORIZE_END, int64(n), nfactors))

	return nfactors, nil
}
