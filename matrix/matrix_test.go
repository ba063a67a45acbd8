// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValue(t *testing.T) {
	var m Matrix[int8]
	for i := range Size {
		for j := range Size {
			if m.At(i, j) != 0 {
				t.Errorf("m[%d][%d] = %d, want 0", i, j, m.At(i, j))
			}
		}
	}
}

func TestSetAt(t *testing.T) {
	var m Matrix[int16]
	m.Set(2, 5, -300)
	assert.Equal(t, int16(-300), m.At(2, 5))
	assert.Equal(t, int16(0), m.At(5, 2))
}

func TestRowWritesThrough(t *testing.T) {
	var m Matrix[int8]
	row := m.Row(3)
	for j := range Size {
		row[j] = int8(j + 1)
	}
	for j := range Size {
		assert.Equal(t, int8(j+1), m.At(3, j))
	}
	// Neighbouring rows are untouched.
	for j := range Size {
		assert.Zero(t, m.At(2, j))
		assert.Zero(t, m.At(4, j))
	}
}

func TestFillAndClear(t *testing.T) {
	var m Matrix[int32]
	m.Fill(func(i, j int) int32 { return int32(i*Size + j) })
	for i := range Size {
		for j := range Size {
			require.Equal(t, int32(i*Size+j), m.At(i, j))
		}
	}

	m.Clear()
	assert.True(t, m.Equal(&Matrix[int32]{}))
}

func TestOutOfRangePanics(t *testing.T) {
	var m Matrix[int8]
	// Variables, not constants, so the compiler cannot reject the index.
	past, neg := Size, -1
	assert.Panics(t, func() { m.Set(past, 0, 1) })
	assert.Panics(t, func() { _ = m.At(0, past) })
	assert.Panics(t, func() { _ = m.Row(neg) })
}

func TestTranspose(t *testing.T) {
	var m Matrix[int8]
	m.Fill(func(i, j int) int8 { return int8(i*10 + j) })
	tr := m.Transpose()
	for i := range Size {
		for j := range Size {
			assert.Equal(t, m.At(i, j), tr.At(j, i))
		}
	}
	back := tr.Transpose()
	assert.True(t, back.Equal(&m))
}

func TestFirstDiff(t *testing.T) {
	var a, b Matrix[uint8]
	_, _, ok := a.FirstDiff(&b)
	assert.False(t, ok)

	b.Set(4, 1, 9)
	b.Set(6, 0, 9)
	i, j, ok := a.FirstDiff(&b)
	require.True(t, ok)
	assert.Equal(t, 4, i)
	assert.Equal(t, 1, j)
	assert.False(t, a.Equal(&b))
}

func TestRandomDeterministic(t *testing.T) {
	var a, b Matrix[int8]
	a.Fill(Random[int8](rand.NewPCG(1, 2)))
	b.Fill(Random[int8](rand.NewPCG(1, 2)))
	assert.True(t, a.Equal(&b))

	var c Matrix[int8]
	c.Fill(Random[int8](rand.NewPCG(3, 4)))
	assert.False(t, a.Equal(&c))
}

func TestRandomTruncates(t *testing.T) {
	src := rand.NewPCG(7, 7)
	ref := rand.NewPCG(7, 7)
	gen := Random[uint8](src)
	for range 64 {
		want := uint8(ref.Uint64() & 0xff)
		assert.Equal(t, want, gen(0, 0))
	}
}

func TestConstant(t *testing.T) {
	var m Matrix[int64]
	m.Fill(Constant[int64](-7))
	for i := range Size {
		for j := range Size {
			assert.Equal(t, int64(-7), m.At(i, j))
		}
	}
}

func TestFromRows(t *testing.T) {
	var m Matrix[int8]
	m.Fill(FromRows([][]int8{{1, 2}, {3}}))
	assert.Equal(t, int8(1), m.At(0, 0))
	assert.Equal(t, int8(2), m.At(0, 1))
	assert.Equal(t, int8(3), m.At(1, 0))
	assert.Equal(t, int8(0), m.At(1, 1))
	assert.Equal(t, int8(0), m.At(Size-1, Size-1))
}
