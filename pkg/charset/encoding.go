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
	"golang.org/x/text/encoding"
)

// Encoding describes a supported charset. Each variant knows how to
// build a fresh Decoder for one stream.
type Encoding interface {
	// Name returns the canonical charset name.
	Name() Charset
	// NewDecoder returns a new stateful decoder converting this
	// charset to UTF-8. Decoders are single-stream and not reusable
	// across streams.
	NewDecoder() Decoder
}

// encodings indexes the built-in Encoding variants by charset.
var encodings = map[Charset]Encoding{
	CharsetUTF8:        EncodingUTF8,
	CharsetUTF16LE:     EncodingUTF16LE,
	CharsetUTF16BE:     EncodingUTF16BE,
	CharsetWindows1252: EncodingWindows1252,
	CharsetISO88592:    EncodingISO88592,
	CharsetGBK:         EncodingGBK,
	CharsetGB18030:     EncodingGB18030,
	CharsetBig5:        EncodingBig5,
	CharsetShiftJIS:    EncodingShiftJIS,
	CharsetEUCJP:       EncodingEUCJP,
	CharsetEUCKR:       EncodingEUCKR,
	CharsetBinary:      EncodingBinary,
}

// xtextEncoding adapts a golang.org/x/text encoding. All built-in
// variants except the binary pass-through are instances of it; it also
// backs charsets resolved dynamically through the IANA index.
type xtextEncoding struct {
	name Charset
	enc  encoding.Encoding
}

// Name implements Encoding.
func (e *xtextEncoding) Name() Charset {
	return e.name
}

// NewDecoder implements Encoding. The x/text decoders replace bytes
// that are not valid in the source charset with U+FFFD instead of
// failing, which is exactly the policy the transcoding reader needs.
func (e *xtextEncoding) NewDecoder() Decoder {
	return newDecoder(e.enc.NewDecoder())
}
