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

// Package textstream implements a streaming byte-to-text transcoder:
// an io.Reader that converts bytes in a source charset into a stream
// of valid UTF-8 bytes without materializing the input.
package textstream

import (
	"bufio"
	"io"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/pingcap/textstream/pkg/charset"
)

// Reader converts bytes read from an underlying reader into UTF-8.
//
// It owns its source and decoder exclusively and is not safe for
// concurrent use. Reads block while the source blocks; there is no
// internal timeout or cancellation, that policy belongs to the source.
//
// Bytes that are malformed in the source charset are replaced with
// U+FFFD rather than reported as errors, so io.ReadAll on a Reader
// always yields valid UTF-8 (binary charset excepted). Only failures
// of the underlying reader surface as errors.
type Reader struct {
	src *bufio.Reader
	dec charset.Decoder
	cs  charset.Charset
	eof bool

	// spill[spill0:spill1] holds decoded bytes that did not fit the
	// caller's buffer. It is used only when that buffer is smaller
	// than the next character, so a few characters of room is plenty.
	spill          [64]byte
	spill0, spill1 int
}

// NewReader returns a Reader decoding r from cs to UTF-8. It fails if
// cs has no registered encoding.
func NewReader(r io.Reader, cs charset.Charset) (*Reader, error) {
	enc, err := charset.FindEncoding(cs)
	if err != nil {
		return nil, errors.Trace(err)
	}
	tr := NewReaderDecoder(r, enc.NewDecoder())
	tr.cs = cs
	return tr, nil
}

// NewReaderDecoder returns a Reader that decodes r with the given
// decoder. The decoder must be fresh: it carries per-stream state and
// the Reader assumes exclusive ownership of it.
func NewReaderDecoder(r io.Reader, dec charset.Decoder) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{src: br, dec: dec}
}

// Read implements io.Reader. It fills p with decoded UTF-8 bytes and
// returns io.EOF once the source is exhausted and the decoder drained.
// A short read only means the source had no more bytes buffered. When
// p is smaller than the next character, the character is staged
// internally and handed out across calls, so any call with a
// non-empty p makes progress.
func (r *Reader) Read(p []byte) (int, error) {
	// Hand out staged bytes from a previous call before touching the
	// decoder again.
	if r.spill0 < r.spill1 {
		n := copy(p, r.spill[r.spill0:r.spill1])
		r.spill0 += n
		return n, nil
	}
	if r.eof {
		return 0, io.EOF
	}

	total := 0
	for {
		src, err := r.fill()
		if err != nil {
			return total, errors.Trace(err)
		}

		if len(src) == 0 {
			// True source EOF: flush whatever the decoder still
			// buffers. eof is set only when the decoder confirms the
			// drain completed; on output-full the next Read call
			// lands here again and continues the flush.
			res, nDst, _, malformed := r.dec.Decode(p[total:], nil, true)
			total += nDst
			r.logReplacement(malformed, nDst)
			if res == charset.ResultOutputFull && total == 0 && len(p) > 0 {
				// The flush unit is larger than the caller's buffer;
				// stage it and hand out what fits.
				copied, _, sres := r.decodeSpill(p, nil, true)
				total += copied
				res = sres
			}
			if res == charset.ResultInputEmpty {
				r.eof = true
				if total == 0 && r.spill0 == r.spill1 {
					return 0, io.EOF
				}
			}
			return total, nil
		}

		res, nDst, nSrc, malformed := r.dec.Decode(p[total:], src, false)
		r.logReplacement(malformed, nDst)
		if res == charset.ResultOutputFull && nDst == 0 && total == 0 && len(p) > 0 {
			// p cannot hold even one character. Output-full with an
			// untouched buffer means a complete character is waiting,
			// so staging it always makes progress. The failed attempt
			// may already have moved the first nSrc bytes into the
			// decoder's carry state, so the retry resumes after them.
			copied, sn, _ := r.decodeSpill(p, src[nSrc:], false)
			if _, err := r.src.Discard(nSrc + sn); err != nil {
				return copied, errors.Trace(err)
			}
			return copied, nil
		}
		// Only the bytes the decoder actually used leave the source;
		// a trailing partial sequence stays buffered for the next
		// fill.
		if _, err := r.src.Discard(nSrc); err != nil {
			return total, errors.Trace(err)
		}
		total += nDst
		if res == charset.ResultOutputFull {
			// The caller's buffer is the constraint, not the source.
			return total, nil
		}
		// ResultInputEmpty: the decoder took everything offered, pull
		// more from the source.
	}
}

// decodeSpill decodes into the spill buffer and copies what fits into
// p; later calls drain the remainder before the decoder runs again.
func (r *Reader) decodeSpill(p, src []byte, last bool) (copied, nSrc int, res charset.Result) {
	res, nDst, nSrc, malformed := r.dec.Decode(r.spill[:], src, last)
	r.logReplacement(malformed, nDst)
	copied = copy(p, r.spill[:nDst])
	r.spill0, r.spill1 = copied, nDst
	return copied, nSrc, res
}

// fill returns the source's buffered bytes without consuming them,
// blocking on the underlying reader when the buffer is empty. An empty
// return means true end of stream.
func (r *Reader) fill() ([]byte, error) {
	if r.src.Buffered() == 0 {
		if _, err := r.src.Peek(1); err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, err
		}
	}
	return r.src.Peek(r.src.Buffered())
}

func (r *Reader) logReplacement(malformed bool, nDst int) {
	if malformed {
		log.Debug("replaced malformed input with U+FFFD",
			zap.String("charset", string(r.cs)),
			zap.Int("decodedBytes", nDst))
	}
}
