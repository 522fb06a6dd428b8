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

package textstream

import (
	"io"

	"github.com/pingcap/errors"

	"github.com/pingcap/textstream/pkg/charset"
)

// DecodeAll reads r to completion, converting it from cs to UTF-8.
func DecodeAll(r io.Reader, cs charset.Charset) ([]byte, error) {
	tr, err := NewReader(r, cs)
	if err != nil {
		return nil, errors.Trace(err)
	}
	data, err := io.ReadAll(tr)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return data, nil
}

// DecodeString reads r to completion and returns the decoded text as
// a string.
func DecodeString(r io.Reader, cs charset.Charset) (string, error) {
	data, err := DecodeAll(r, cs)
	if err != nil {
		return "", errors.Trace(err)
	}
	return string(data), nil
}
