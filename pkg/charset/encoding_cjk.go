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
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Multi-byte CJK encodings. Their decoders carry partial sequence
// state across calls, so inputs may be chunked at any byte boundary.
var (
	// EncodingGBK decodes GBK (and its GB2312 subset).
	EncodingGBK Encoding = &xtextEncoding{
		name: CharsetGBK,
		enc:  simplifiedchinese.GBK,
	}

	// EncodingGB18030 decodes GB18030, the current Chinese standard.
	EncodingGB18030 Encoding = &xtextEncoding{
		name: CharsetGB18030,
		enc:  simplifiedchinese.GB18030,
	}

	// EncodingBig5 decodes Big5.
	EncodingBig5 Encoding = &xtextEncoding{
		name: CharsetBig5,
		enc:  traditionalchinese.Big5,
	}

	// EncodingShiftJIS decodes Shift JIS.
	EncodingShiftJIS Encoding = &xtextEncoding{
		name: CharsetShiftJIS,
		enc:  japanese.ShiftJIS,
	}

	// EncodingEUCJP decodes EUC-JP.
	EncodingEUCJP Encoding = &xtextEncoding{
		name: CharsetEUCJP,
		enc:  japanese.EUCJP,
	}

	// EncodingEUCKR decodes EUC-KR.
	EncodingEUCKR Encoding = &xtextEncoding{
		name: CharsetEUCKR,
		enc:  korean.EUCKR,
	}
)
