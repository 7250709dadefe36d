package trace

import (
	"testing"

	"github.com/consensys/gnark-crypto/field/koalabear"
	"github.com/consensys/gnark-crypto/field/koalabear/extensions"
	"github.com/stretchr/testify/require"
)

func TestExtendColumnsDimensions(t *testing.T) {
	assert := require.New(t)

	columns := make([][]koalabear.Element, 3)
	for j := range columns {
		columns[j] = make([]koalabear.Element, 8)
		for i := range columns[j] {
			columns[j][i].SetUint64(uint64(j*8 + i))
		}
	}

	m := ExtendColumns(columns, 4)
	assert.Equal(32, m.NumRows())
	assert.Equal(3, m.NumCols())
}

// a degree-0 column extends to the same constant over the whole coset
func TestExtendConstantColumn(t *testing.T) {
	assert := require.New(t)

	var c koalabear.Element
	c.SetUint64(42)
	column := make([]koalabear.Element, 16)
	for i := range column {
		column[i] = c
	}

	m := ExtendColumns([][]koalabear.Element{column}, 8)
	assert.Equal(128, m.NumRows())
	for i := 0; i < m.NumRows(); i++ {
		assert.True(m.Row(i)[0].Equal(&c), "row %d", i)
	}
}

// an extension column with only the first coordinate set must extend exactly
// like the corresponding base column
func TestExtendExtColumnsCoordinatewise(t *testing.T) {
	assert := require.New(t)

	base := make([]koalabear.Element, 8)
	ext := make([]extensions.E4, 8)
	for i := range base {
		base[i].SetUint64(uint64(3*i + 1))
		ext[i].B0.A0 = base[i]
	}

	wantBase := ExtendColumns([][]koalabear.Element{base}, 2)
	got := ExtendExtColumns([][]extensions.E4{ext}, 2)

	assert.Equal(wantBase.NumRows(), got.NumRows())
	var zero koalabear.Element
	for i := 0; i < got.NumRows(); i++ {
		e := got.Row(i)[0]
		assert.True(e.B0.A0.Equal(&wantBase.Row(i)[0]), "row %d", i)
		assert.True(e.B0.A1.Equal(&zero), "row %d", i)
		assert.True(e.B1.A0.Equal(&zero), "row %d", i)
		assert.True(e.B1.A1.Equal(&zero), "row %d", i)
	}
}

func TestExtendInvalidArgs(t *testing.T) {
	assert := require.New(t)

	assert.Panics(func() { ExtendColumns(nil, 2) })

	// non power-of-two trace length
	bad := [][]koalabear.Element{make([]koalabear.Element, 6)}
	assert.Panics(func() { ExtendColumns(bad, 2) })

	// non power-of-two blowup
	ok := [][]koalabear.Element{make([]koalabear.Element, 8)}
	assert.Panics(func() { ExtendColumns(ok, 3) })
	assert.Panics(func() { ExtendColumns(ok, 1) })

	// ragged columns
	ragged := [][]koalabear.Element{
		make([]koalabear.Element, 8),
		make([]koalabear.Element, 4),
	}
	assert.Panics(func() { ExtendColumns(ragged, 2) })
}

func TestExtendThenStore(t *testing.T) {
	assert := require.New(t)

	columns := make([][]koalabear.Element, 2)
	for j := range columns {
		columns[j] = make([]koalabear.Element, 8)
		for i := range columns[j] {
			columns[j][i].SetUint64(uint64(j + i*i))
		}
	}

	lde := New(ExtendColumns(columns, 4), 4)
	assert.Equal(32, lde.Len())
	assert.Equal(2, lde.MainTraceWidth())

	auxColumns := make([][]extensions.E4, 1)
	auxColumns[0] = make([]extensions.E4, 8)
	for i := range auxColumns[0] {
		auxColumns[0][i].B1.A0.SetUint64(uint64(i))
	}
	lde.AppendAuxSegment(ExtendExtColumns(auxColumns, 4))
	assert.Equal(1, lde.AuxTraceWidth())
}
