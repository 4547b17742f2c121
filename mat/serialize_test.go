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
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	src, _ := FromSlice(2, 3, []float64{1, 2.5, -3, 0, 1e300, -0.125})

	b, err := json.Marshal(src)
	require.NoError(t, err)

	var back Matrix
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, src.Equal(back))
}

func TestJSONShape(t *testing.T) {
	b, err := json.Marshal(Identity(2))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Rows":2,"Cols":2,"values":[1,0,0,1]}`, string(b))

	// Empty matrix keeps an explicit empty values array.
	b, err = json.Marshal(Matrix{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Rows":0,"Cols":0,"values":[]}`, string(b))
}

func TestJSONInvalid(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"short_values", `{"Rows":2,"Cols":2,"values":[1,2,3]}`},
		{"long_values", `{"Rows":1,"Cols":1,"values":[1,2]}`},
		{"negative_rows", `{"Rows":-1,"Cols":1,"values":[]}`},
		{"wrong_type", `{"Rows":"two","Cols":2,"values":[]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var m Matrix
			assert.ErrorIs(t, json.Unmarshal([]byte(c.in), &m), ErrFormat)
		})
	}
}

func TestMmapRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.numera")

	rng := rand.New(rand.NewSource(51))
	src := RandomUniform(rng, 17, 9, -100, 100)
	require.NoError(t, Save(path, src))

	mm, err := Open(path)
	require.NoError(t, err)
	defer mm.Close()

	assert.Equal(t, 17, mm.Rows())
	assert.Equal(t, 9, mm.Cols())
	assert.Equal(t, src.At(0, 0), mm.At(0, 0))
	assert.Equal(t, src.At(-1, -1), mm.At(-1, -1))
	assert.Zero(t, mm.At(17, 0))

	back := mm.Materialize()
	assert.True(t, src.Equal(back))
}

func TestMmapEmptyMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.numera")
	require.NoError(t, Save(path, New(0, 0)))

	mm, err := Open(path)
	require.NoError(t, err)
	defer mm.Close()
	assert.Equal(t, 0, mm.Rows())
	assert.True(t, mm.Materialize().Equal(New(0, 0)))
}

func TestMmapMalformed(t *testing.T) {
	dir := t.TempDir()

	short := filepath.Join(dir, "short")
	require.NoError(t, os.WriteFile(short, []byte{1, 2, 3}, 0o644))
	_, err := Open(short)
	assert.ErrorIs(t, err, ErrFormat)

	// Valid header, truncated payload.
	truncated := filepath.Join(dir, "truncated")
	require.NoError(t, Save(truncated, Identity(3)))
	b, err := os.ReadFile(truncated)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(truncated, b[:len(b)-8], 0o644))
	_, err = Open(truncated)
	assert.ErrorIs(t, err, ErrFormat)

	// Corrupt magic.
	bad := filepath.Join(dir, "bad")
	b[0] ^= 0xff
	require.NoError(t, os.WriteFile(bad, b, 0o644))
	_, err = Open(bad)
	assert.ErrorIs(t, err, ErrFormat)

	_, err = Open(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
