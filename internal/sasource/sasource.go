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

// Package sasource provides a buffered, sequential-only reader and writer
// for suffix arrays that have been spilled to disk, so kkp.FactorizeExternalSA
// can stream a suffix array too large to hold in memory alongside its text.
package sasource

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// bufEntries is the number of little-endian int32 entries read from disk
// at a time.
const bufEntries = 1 << 15

// Reader streams a suffix array previously written by WriteExternalSA,
// one entry at a time, in order.
type Reader struct {
	f   *os.File
	br  *bufio.Reader
	buf []byte
}

// Open opens the suffix array file at path for sequential reading.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "sasource: opening %q", path)
	}

	return &Reader{
		f:   f,
		br:  bufio.NewReaderSize(f, bufEntries*4),
		buf: make([]byte, 4),
	}, nil
}

// Next returns the next suffix array entry, in the order it was written.
func (r *Reader) Next() (int32, error) {
	if _, err := io.ReadFull(r.br, r.buf); err != nil {
		return 0, errors.Wrap(err, "sasource: reading next entry")
	}

	return int32(binary.LittleEndian.Uint32(r.buf)), nil
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	return r.f.Close()
}

// WriteExternalSA writes sa to w as a sequence of little-endian int32
// values, the format Reader expects.
func WriteExternalSA(w io.Writer, sa []int32) error {
	bw := bufio.NewWriterSize(w, bufEntries*4)
	var buf [4]byte

	for _, v := range sa {
		binary.LittleEndian.PutUint32(buf[:], uint32(v))

		if _, err := bw.Write(buf[:]); err != nil {
			return errors.Wrap(err, "sasource: writing entry")
		}
	}

	return bw.Flush()
}
