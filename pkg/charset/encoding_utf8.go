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

// EncodingUTF8 is the UTF-8 pass-through. Its decoder still has work
// to do: ill-formed sequences are replaced with U+FFFD so that the
// output is always valid UTF-8.
var EncodingUTF8 Encoding = &xtextEncoding{
	name: CharsetUTF8,
	enc:  unicode.UTF8,
}
