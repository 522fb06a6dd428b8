// Copyright 2025 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package charset

import (
	"bytes"

	"golang.org/x/text/transform"
)

// Result reports why a Decode call returned.
type Result int

const (
	// ResultInputEmpty means the decoder consumed every input byte it
	// was offered. Callers should fetch more input, or finish if this
	// was the final call.
	ResultInputEmpty Result = iota
	// ResultOutputFull means dst had no room for the next decoded
	// character. Undecoded input (and any buffered decoder state) is
	// kept for the next call.
	ResultOutputFull
)

// String implements fmt.Stringer.
func (r Result) String() string {
	switch r {
	case ResultInputEmpty:
		return "input-empty"
	case ResultOutputFull:
		return "output-full"
	default:
		return "unknown"
	}
}

// Decoder is a stateful, resumable charset-to-UTF-8 conversion engine.
// A Decoder serves exactly one stream: partial multi-byte sequences
// are carried across calls, and a call with last=true flushes whatever
// is buffered.
//
// Decode reads from src, writes UTF-8 to dst and reports how many
// bytes of each it used. Input that is malformed in the source charset
// is replaced with U+FFFD and reported through the malformed flag;
// decoding itself never fails. After a last=true call has returned
// ResultInputEmpty the stream is fully drained and further calls are
// no-ops.
type Decoder interface {
	Decode(dst, src []byte, last bool) (res Result, nDst, nSrc int, malformed bool)
}

// replacementBytes is the UTF-8 encoding of U+FFFD.
var replacementBytes = []byte{0xEF, 0xBF, 0xBD}

// pendingMax bounds the partial-sequence carry buffer. The longest
// sequence in any supported charset is 4 bytes.
const pendingMax = 8

// decoder adapts an x/text transformer to the Decoder contract. The
// transformers refuse to consume a trailing partial sequence
// (transform.ErrShortSrc); decoder buffers those bytes in pending so
// that its callers can always release the input they offered.
type decoder struct {
	tr       transform.Transformer
	pending  [pendingMax]byte
	nPending int
}

func newDecoder(tr transform.Transformer) *decoder {
	return &decoder{tr: tr}
}

// Decode implements Decoder.
func (d *decoder) Decode(dst, src []byte, last bool) (res Result, nDst, nSrc int, malformed bool) {
	res, nDst, nSrc = d.decode(dst, src, last)
	// U+FFFD in the output marks replaced input. A U+FFFD literally
	// present in the source trips this too; the flag is informational
	// only, so that is acceptable.
	malformed = bytes.Contains(dst[:nDst], replacementBytes)
	return res, nDst, nSrc, malformed
}

func (d *decoder) decode(dst, src []byte, last bool) (Result, int, int) {
	var nDst, nSrc int

	// Finish the partial sequence carried over from the previous call
	// before touching fresh input, borrowing one byte at a time.
	for d.nPending > 0 {
		final := last && nSrc == len(src)
		pDst, pSrc, err := d.tr.Transform(dst[nDst:], d.pending[:d.nPending], final)
		nDst += pDst
		d.nPending = copy(d.pending[:], d.pending[pSrc:d.nPending])
		switch err {
		case nil:
			// Pending fully consumed; the loop condition exits.
		case transform.ErrShortDst:
			return ResultOutputFull, nDst, nSrc
		case transform.ErrShortSrc:
			switch {
			case final:
				// The transformer wants bytes that will never come.
				// Decoders built by this package replace truncated
				// sequences at EOF instead, so this is a misbehaving
				// transformer; drop the pending bytes rather than
				// stall the stream.
				d.nPending = 0
			case nSrc < len(src) && d.nPending < pendingMax:
				d.pending[d.nPending] = src[nSrc]
				d.nPending++
				nSrc++
			default:
				// Nothing left to borrow; resume on the next call.
				return ResultInputEmpty, nDst, nSrc
			}
		default:
			// Unreachable with replacing decoders; skip a byte so a
			// failing transformer cannot stall the stream.
			d.nPending = copy(d.pending[:], d.pending[1:d.nPending])
		}
	}

	for {
		pDst, pSrc, err := d.tr.Transform(dst[nDst:], src[nSrc:], last)
		nDst += pDst
		nSrc += pSrc
		switch err {
		case nil:
			return ResultInputEmpty, nDst, nSrc
		case transform.ErrShortDst:
			return ResultOutputFull, nDst, nSrc
		case transform.ErrShortSrc:
			if last {
				// Same misbehaving-transformer guard as above.
				return ResultInputEmpty, nDst, nSrc
			}
			// Stash the trailing partial sequence so the caller can
			// release every offered byte now. ErrShortSrc leaves at
			// most one incomplete sequence behind, and no supported
			// encoding has sequences longer than four bytes, so the
			// remainder always fits the carry buffer.
			n := copy(d.pending[:], src[nSrc:])
			d.nPending = n
			nSrc += n
			return ResultInputEmpty, nDst, nSrc
		default:
			// Unreachable with replacing decoders. Substitute one byte
			// to keep making progress.
			if len(dst)-nDst < len(replacementBytes) {
				return ResultOutputFull, nDst, nSrc
			}
			nDst += copy(dst[nDst:], replacementBytes)
			if nSrc < len(src) {
				nSrc++
			}
		}
	}
}
