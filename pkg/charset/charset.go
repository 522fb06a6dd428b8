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

// Package charset resolves charset labels to encodings and builds the
// stateful decoders that convert those encodings to UTF-8.
package charset

import (
	"strings"

	"github.com/pingcap/errors"
	"golang.org/x/text/encoding/ianaindex"
)

// Charset is the canonical name of a byte-level text encoding.
type Charset string

// Canonical names of the charsets configured out of the box. Other
// labels are resolved through the IANA index, see Lookup.
const (
	CharsetUTF8        Charset = "utf-8"
	CharsetUTF16LE     Charset = "utf-16le"
	CharsetUTF16BE     Charset = "utf-16be"
	CharsetWindows1252 Charset = "windows-1252"
	CharsetISO88592    Charset = "iso-8859-2"
	CharsetGBK         Charset = "gbk"
	CharsetGB18030     Charset = "gb18030"
	CharsetBig5        Charset = "big5"
	CharsetShiftJIS    Charset = "shift_jis"
	CharsetEUCJP       Charset = "euc-jp"
	CharsetEUCKR       Charset = "euc-kr"
	CharsetBinary      Charset = "binary"
)

// String implements fmt.Stringer.
func (c Charset) String() string {
	return string(c)
}

// charsetAliases maps normalized labels to canonical charsets. The
// single-byte western aliases follow the WHATWG encoding standard:
// latin1 and us-ascii label data that is decoded as windows-1252 in
// practice.
var charsetAliases = map[string]Charset{
	"utf8":         CharsetUTF8,
	"utf-8":        CharsetUTF8,
	"utf8mb4":      CharsetUTF8,
	"utf-16le":     CharsetUTF16LE,
	"utf16le":      CharsetUTF16LE,
	"utf-16be":     CharsetUTF16BE,
	"utf16be":      CharsetUTF16BE,
	"latin1":       CharsetWindows1252,
	"latin-1":      CharsetWindows1252,
	"l1":           CharsetWindows1252,
	"iso-8859-1":   CharsetWindows1252,
	"iso8859-1":    CharsetWindows1252,
	"iso_8859-1":   CharsetWindows1252,
	"cp1252":       CharsetWindows1252,
	"windows-1252": CharsetWindows1252,
	"ascii":        CharsetWindows1252,
	"us-ascii":     CharsetWindows1252,
	"latin2":       CharsetISO88592,
	"iso-8859-2":   CharsetISO88592,
	"iso8859-2":    CharsetISO88592,
	"gbk":          CharsetGBK,
	"cp936":        CharsetGBK,
	"gb2312":       CharsetGBK,
	"gb18030":      CharsetGB18030,
	"big5":         CharsetBig5,
	"big-5":        CharsetBig5,
	"shift_jis":    CharsetShiftJIS,
	"shift-jis":    CharsetShiftJIS,
	"sjis":         CharsetShiftJIS,
	"euc-jp":       CharsetEUCJP,
	"euc-kr":       CharsetEUCKR,
	"binary":       CharsetBinary,
}

// Lookup resolves a charset label to its canonical Charset. Labels are
// matched case-insensitively with surrounding whitespace ignored.
// Labels outside the alias table are accepted if the IANA MIME index
// knows them.
func Lookup(label string) (Charset, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if normalized == "" {
		return "", errors.New("charset: empty label")
	}
	if cs, ok := charsetAliases[normalized]; ok {
		return cs, nil
	}
	if enc, err := ianaindex.MIME.Encoding(normalized); err == nil && enc != nil {
		return Charset(normalized), nil
	}
	return "", errors.Errorf("charset: unknown label %q", label)
}

// FindEncoding returns the Encoding variant for cs. Charsets resolved
// by Lookup always have one.
func FindEncoding(cs Charset) (Encoding, error) {
	if e, ok := encodings[cs]; ok {
		return e, nil
	}
	enc, err := ianaindex.MIME.Encoding(string(cs))
	if err != nil || enc == nil {
		return nil, errors.Errorf("charset: no encoding for %q", cs)
	}
	return &xtextEncoding{name: cs, enc: enc}, nil
}
