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
	"golang.org/x/text/encoding/unicode"
)

// UTF-16 with a fixed byte order. BOM sniffing belongs to whoever
// selects the charset; an explicit utf-16le or utf-16be label means
// the order is already known, so a leading BOM is kept as U+FEFF.
var (
	// EncodingUTF16LE decodes little-endian UTF-16.
	EncodingUTF16LE Encoding = &xtextEncoding{
		name: CharsetUTF16LE,
		enc:  unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	}

	// EncodingUTF16BE decodes big-endian UTF-16.
	EncodingUTF16BE Encoding = &xtextEncoding{
		name: CharsetUTF16BE,
		enc:  unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	}
)
