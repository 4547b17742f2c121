// Copyright 2026 go-numera Authors
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

package mat

import (
	"encoding/json"
	"fmt"
)

// matrixJSON is the stable wire form: explicit shape plus the row-major
// cell buffer. A flat buffer round-trips exactly and keeps the payload
// free of nested array framing.
type matrixJSON struct {
	Rows   int       `json:"Rows"`
	Cols   int       `json:"Cols"`
	Values []float64 `json:"values"`
}

// MarshalJSON encodes the matrix shape and row-major values.
func (m Matrix) MarshalJSON() ([]byte, error) {
	enc := matrixJSON{
		Rows:   m.rows,
		Cols:   m.cols,
		Values: m.data,
	}
	if enc.Values == nil {
		enc.Values = []float64{}
	}
	return json.Marshal(enc)
}

// UnmarshalJSON decodes a matrix, validating that the value count
// matches the declared shape. Mismatch or negative dimensions yield
// ErrFormat.
func (m *Matrix) UnmarshalJSON(b []byte) error {
	var dec matrixJSON
	if err := json.Unmarshal(b, &dec); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if dec.Rows < 0 || dec.Cols < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrFormat, dec.Rows, dec.Cols)
	}
	if len(dec.Values) != dec.Rows*dec.Cols {
		return fmt.Errorf("%w: %dx%d matrix needs %d values, got %d",
			ErrFormat, dec.Rows, dec.Cols, dec.Rows*dec.Cols, len(dec.Values))
	}
	m.rows = dec.Rows
	m.cols = dec.Cols
	m.data = dec.Values
	return nil
}
