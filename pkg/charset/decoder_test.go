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

package charset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pingcap/textstream/pkg/charset"
)

// “你好，世界！” in UTF-8 and in gb18030.
var (
	helloWorldUTF8    = []byte{0xE4, 0xBD, 0xA0, 0xE5, 0xA5, 0xBD, 0xEF, 0xBC, 0x8C, 0xE4, 0xB8, 0x96, 0xE7, 0x95, 0x8C, 0xEF, 0xBC, 0x81}
	helloWorldGB18030 = []byte{0xC4, 0xE3, 0xBA, 0xC3, 0xA3, 0xAC, 0xCA, 0xC0, 0xBD, 0xE7, 0xA3, 0xA1}
)

func newDecoder(t *testing.T, cs charset.Charset) charset.Decoder {
	enc, err := charset.FindEncoding(cs)
	require.NoError(t, err)
	return enc.NewDecoder()
}

func TestDecodeSingleByteExpansion(t *testing.T) {
	d := newDecoder(t, charset.CharsetWindows1252)
	dst := make([]byte, 16)
	res, nDst, nSrc, malformed := d.Decode(dst, []byte{0xC9}, false)
	require.Equal(t, charset.ResultInputEmpty, res)
	require.Equal(t, 1, nSrc)
	require.Equal(t, []byte{0xC3, 0x89}, dst[:nDst]) // É
	require.False(t, malformed)
}

func TestDecodeUndefinedByteReplaced(t *testing.T) {
	// 0x81 has no assignment in windows-1252.
	d := newDecoder(t, charset.CharsetWindows1252)
	dst := make([]byte, 16)
	res, nDst, nSrc, malformed := d.Decode(dst, []byte{0x81}, false)
	require.Equal(t, charset.ResultInputEmpty, res)
	require.Equal(t, 1, nSrc)
	require.Equal(t, []byte("�"), dst[:nDst])
	require.True(t, malformed)
}

func TestDecodePartialSequenceCarry(t *testing.T) {
	d := newDecoder(t, charset.CharsetUTF8)
	dst := make([]byte, 16)

	// First half of é; the decoder must keep it, not reject it.
	res, nDst, nSrc, _ := d.Decode(dst, []byte{0xC3}, false)
	require.Equal(t, charset.ResultInputEmpty, res)
	require.Equal(t, 1, nSrc)
	require.Equal(t, 0, nDst)

	res, nDst, nSrc, malformed := d.Decode(dst, []byte{0xA9}, false)
	require.Equal(t, charset.ResultInputEmpty, res)
	require.Equal(t, 1, nSrc)
	require.Equal(t, []byte("é"), dst[:nDst])
	require.False(t, malformed)
}

func TestDecodeOutputFull(t *testing.T) {
	d := newDecoder(t, charset.CharsetWindows1252)
	dst := make([]byte, 1) // É needs two bytes of UTF-8
	res, nDst, nSrc, _ := d.Decode(dst, []byte{0xC9}, false)
	require.Equal(t, charset.ResultOutputFull, res)
	require.Equal(t, 0, nDst)
	require.Equal(t, 0, nSrc)

	// The byte was not consumed; retrying with room succeeds.
	dst = make([]byte, 4)
	res, nDst, nSrc, _ = d.Decode(dst, []byte{0xC9}, false)
	require.Equal(t, charset.ResultInputEmpty, res)
	require.Equal(t, 1, nSrc)
	require.Equal(t, []byte("É"), dst[:nDst])
}

func TestDecodeFinalFlushTruncatedSequence(t *testing.T) {
	d := newDecoder(t, charset.CharsetUTF8)
	dst := make([]byte, 16)

	_, nDst, nSrc, _ := d.Decode(dst, []byte{0xC3}, false)
	require.Equal(t, 1, nSrc)
	require.Equal(t, 0, nDst)

	// Final flush replaces the dangling half sequence.
	res, nDst, _, malformed := d.Decode(dst, nil, true)
	require.Equal(t, charset.ResultInputEmpty, res)
	require.Equal(t, []byte("�"), dst[:nDst])
	require.True(t, malformed)

	// A drained decoder tolerates repeated final calls.
	res, nDst, _, _ = d.Decode(dst, nil, true)
	require.Equal(t, charset.ResultInputEmpty, res)
	require.Equal(t, 0, nDst)
}

func TestDecodeGB18030(t *testing.T) {
	d := newDecoder(t, charset.CharsetGB18030)
	dst := make([]byte, 64)
	res, nDst, nSrc, malformed := d.Decode(dst, helloWorldGB18030, false)
	require.Equal(t, charset.ResultInputEmpty, res)
	require.Equal(t, len(helloWorldGB18030), nSrc)
	require.Equal(t, helloWorldUTF8, dst[:nDst])
	require.False(t, malformed)
}

func TestDecodeGB18030ByteAtATime(t *testing.T) {
	// Feeding one byte per call must produce the same output as one
	// shot, with the partial double-byte characters carried across
	// calls.
	d := newDecoder(t, charset.CharsetGB18030)
	var got []byte
	dst := make([]byte, 8)
	for _, b := range helloWorldGB18030 {
		res, nDst, nSrc, _ := d.Decode(dst, []byte{b}, false)
		require.Equal(t, charset.ResultInputEmpty, res)
		require.Equal(t, 1, nSrc)
		got = append(got, dst[:nDst]...)
	}
	res, nDst, _, _ := d.Decode(dst, nil, true)
	require.Equal(t, charset.ResultInputEmpty, res)
	got = append(got, dst[:nDst]...)
	require.Equal(t, helloWorldUTF8, got)
}

func TestDecodeUTF16OddLength(t *testing.T) {
	d := newDecoder(t, charset.CharsetUTF16LE)
	dst := make([]byte, 16)

	// "ab" plus a dangling low byte.
	res, nDst, nSrc, _ := d.Decode(dst, []byte{0x61, 0x00, 0x62, 0x00, 0x61}, false)
	require.Equal(t, charset.ResultInputEmpty, res)
	require.Equal(t, 5, nSrc)
	require.Equal(t, []byte("ab"), dst[:nDst])

	res, nDst, _, malformed := d.Decode(dst, nil, true)
	require.Equal(t, charset.ResultInputEmpty, res)
	require.Equal(t, []byte("�"), dst[:nDst])
	require.True(t, malformed)
}

func TestDecodeBinaryPassThrough(t *testing.T) {
	d := newDecoder(t, charset.CharsetBinary)
	raw := []byte{0x00, 0xFF, 0x81, 0xC3}
	dst := make([]byte, 16)
	res, nDst, nSrc, _ := d.Decode(dst, raw, false)
	require.Equal(t, charset.ResultInputEmpty, res)
	require.Equal(t, len(raw), nSrc)
	require.Equal(t, raw, dst[:nDst])
}

func TestResultString(t *testing.T) {
	require.Equal(t, "input-empty", charset.ResultInputEmpty.String())
	require.Equal(t, "output-full", charset.ResultOutputFull.String())
}
