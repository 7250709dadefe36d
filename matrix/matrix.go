// Package matrix implements the row-major matrix used to store execution
// trace segments. Rows are contiguous in memory so that reading a full row,
// the access pattern of constraint evaluation, is a single slice.
package matrix

import "fmt"

// RowMatrix is a two-dimensional array of field elements stored in row-major
// order. The zero value is not usable; construct with New or FromColumns.
type RowMatrix[E any] struct {
	data    []E
	numCols int
}

// New wraps the provided row-major data into a matrix with numCols columns.
// The matrix takes ownership of data; len(data) must be a non-zero multiple
// of numCols.
func New[E any](data []E, numCols int) *RowMatrix[E] {
	if numCols <= 0 {
		panic("matrix: number of columns must be positive")
	}
	if len(data) == 0 || len(data)%numCols != 0 {
		panic(fmt.Sprintf("matrix: data length %d is not a non-zero multiple of %d columns", len(data), numCols))
	}
	return &RowMatrix[E]{
		data:    data,
		numCols: numCols,
	}
}

// FromColumns transposes a list of equal-length columns into a row-major
// matrix.
func FromColumns[E any](columns [][]E) *RowMatrix[E] {
	if len(columns) == 0 || len(columns[0]) == 0 {
		panic("matrix: at least one non-empty column is required")
	}
	numRows := len(columns[0])
	for j, col := range columns {
		if len(col) != numRows {
			panic(fmt.Sprintf("matrix: column %d has %d rows, column 0 has %d", j, len(col), numRows))
		}
	}
	data := make([]E, numRows*len(columns))
	for i := 0; i < numRows; i++ {
		row := data[i*len(columns) : (i+1)*len(columns)]
		for j := range columns {
			row[j] = columns[j][i]
		}
	}
	return &RowMatrix[E]{
		data:    data,
		numCols: len(columns),
	}
}

// NumRows returns the number of rows in the matrix.
func (m *RowMatrix[E]) NumRows() int {
	return len(m.data) / m.numCols
}

// NumCols returns the number of columns in the matrix.
func (m *RowMatrix[E]) NumCols() int {
	return m.numCols
}

// Row returns the i-th row. The returned slice aliases the matrix storage
// and must not be modified by the caller.
func (m *RowMatrix[E]) Row(i int) []E {
	if i < 0 || i >= m.NumRows() {
		panic(fmt.Sprintf("matrix: row index %d out of range [0, %d)", i, m.NumRows()))
	}
	return m.data[i*m.numCols : (i+1)*m.numCols]
}

// Column returns a copy of the j-th column.
func (m *RowMatrix[E]) Column(j int) []E {
	if j < 0 || j >= m.numCols {
		panic(fmt.Sprintf("matrix: column index %d out of range [0, %d)", j, m.numCols))
	}
	res := make([]E, m.NumRows())
	for i := range res {
		res[i] = m.data[i*m.numCols+j]
	}
	return res
}
