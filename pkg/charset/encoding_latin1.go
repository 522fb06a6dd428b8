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
	"golang.org/x/text/encoding/charmap"
)

// EncodingWindows1252 decodes the windows-1252 superset of latin1.
// Latin1-labeled data is decoded with it, matching what browsers and
// MySQL do.
// https://dev.mysql.com/doc/refman/8.0/en/charset-we-sets.html
var EncodingWindows1252 Encoding = &xtextEncoding{
	name: CharsetWindows1252,
	enc:  charmap.Windows1252,
}

// EncodingISO88592 decodes iso-8859-2 (latin2).
var EncodingISO88592 Encoding = &xtextEncoding{
	name: CharsetISO88592,
	enc:  charmap.ISO8859_2,
}
