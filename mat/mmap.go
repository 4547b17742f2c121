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
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// On-disk layout: a 24-byte little-endian header followed by the
// row-major float64 payload. The header keeps the payload 8-byte
// aligned so the mapped file can be viewed as a []float64 directly.
const (
	mmapMagic    uint32 = 0x4d554e47 // "GNUM"
	mmapVersion  uint32 = 1
	mmapHeadSize        = 24
)

// Save writes m to path in the mapped-file format, replacing any
// existing file.
func Save(path string, m Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var head [mmapHeadSize]byte
	binary.LittleEndian.PutUint32(head[0:], mmapMagic)
	binary.LittleEndian.PutUint32(head[4:], mmapVersion)
	binary.LittleEndian.PutUint64(head[8:], uint64(m.rows))
	binary.LittleEndian.PutUint64(head[16:], uint64(m.cols))
	if _, err := f.Write(head[:]); err != nil {
		return err
	}

	buf := make([]byte, 8*len(m.data))
	for i, x := range m.data {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(x))
	}
	if _, err := f.Write(buf); err != nil {
		return err
	}
	return f.Sync()
}

// MappedMatrix is a read-only matrix view over a memory-mapped file
// written by Save. Cell reads go straight to the mapping; nothing is
// copied until Materialize. Close unmaps the file.
type MappedMatrix struct {
	rows, cols int
	data       []float64
	m          mmap.MMap
	f          *os.File
}

// Open maps the file at path and validates its header and size.
// Malformed files yield ErrFormat.
func Open(path string) (*MappedMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.Size() < mmapHeadSize {
		f.Close()
		return nil, fmt.Errorf("%w: file too short for header", ErrFormat)
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	if magic := binary.LittleEndian.Uint32(mm[0:]); magic != mmapMagic {
		mm.Unmap()
		f.Close()
		return nil, fmt.Errorf("%w: bad magic %#x", ErrFormat, magic)
	}
	if ver := binary.LittleEndian.Uint32(mm[4:]); ver != mmapVersion {
		mm.Unmap()
		f.Close()
		return nil, fmt.Errorf("%w: unsupported version %d", ErrFormat, ver)
	}
	rows := int(binary.LittleEndian.Uint64(mm[8:]))
	cols := int(binary.LittleEndian.Uint64(mm[16:]))
	if rows < 0 || cols < 0 || info.Size() != mmapHeadSize+8*int64(rows)*int64(cols) {
		mm.Unmap()
		f.Close()
		return nil, fmt.Errorf("%w: %dx%d shape does not match file size %d",
			ErrFormat, rows, cols, info.Size())
	}

	mx := &MappedMatrix{rows: rows, cols: cols, m: mm, f: f}
	if rows*cols > 0 {
		// Payload starts 24 bytes in; the page-aligned mapping keeps
		// it 8-byte aligned, so a direct float64 view is valid.
		mx.data = unsafe.Slice((*float64)(unsafe.Pointer(&mm[mmapHeadSize])), rows*cols)
	}
	return mx, nil
}

func (x *MappedMatrix) Rows() int { return x.rows }
func (x *MappedMatrix) Cols() int { return x.cols }

// At reads a cell with the same index semantics as Matrix.At.
func (x *MappedMatrix) At(i, j int) float64 {
	i = resolve(i, x.rows)
	j = resolve(j, x.cols)
	if i < 0 || i >= x.rows || j < 0 || j >= x.cols {
		return 0
	}
	return x.data[i*x.cols+j]
}

// Materialize copies the mapped payload into an independent Matrix
// that stays valid after Close.
func (x *MappedMatrix) Materialize() Matrix {
	out := New(x.rows, x.cols)
	copy(out.data, x.data)
	return out
}

// Close unmaps the file. The view and any slices derived from it must
// not be used afterwards.
func (x *MappedMatrix) Close() error {
	x.data = nil
	err := x.m.Unmap()
	if cerr := x.f.Close(); err == nil {
		err = cerr
	}
	return err
}
