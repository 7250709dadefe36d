package trace

import (
	"fmt"
	"math/bits"
	"time"

	"github.com/consensys/gnark-crypto/field/koalabear"
	"github.com/consensys/gnark-crypto/field/koalabear/extensions"
	"github.com/consensys/gnark-crypto/field/koalabear/fft"

	"github.com/cwkang1998/starkpack-winterfell/internal/parallel"
	"github.com/cwkang1998/starkpack-winterfell/logger"
	"github.com/cwkang1998/starkpack-winterfell/matrix"
)

// ExtendColumns computes the low-degree extension of the provided trace
// columns. Each column is interpreted as the evaluations of a polynomial
// over a domain of the original trace length and re-evaluated over a coset
// of a domain blowup times larger. Columns must all have the same
// power-of-two length, and blowup must be a power of two as well so the
// extended domain stays a subgroup coset.
func ExtendColumns(columns [][]koalabear.Element, blowup int) *matrix.RowMatrix[koalabear.Element] {
	n := checkExtendArgs(len(columns), len(columns[0]), blowup)
	for j, col := range columns {
		if len(col) != n {
			panic(fmt.Sprintf("trace: column %d has length %d, column 0 has %d", j, len(col), n))
		}
	}

	start := time.Now()
	small := fft.NewDomain(uint64(n))
	large := fft.NewDomain(uint64(n * blowup))

	extended := make([][]koalabear.Element, len(columns))
	parallel.Execute(len(columns), func(begin, end int) {
		for j := begin; j < end; j++ {
			buf := make([]koalabear.Element, n*blowup)
			copy(buf, columns[j])
			extendColumn(buf, n, small, large)
			extended[j] = buf
		}
	})

	log := logger.Logger()
	log.Debug().
		Int("cols", len(columns)).
		Int("rows", n*blowup).
		Dur("took", time.Since(start)).
		Msg("extended main trace columns")
	return matrix.FromColumns(extended)
}

// ExtendExtColumns is ExtendColumns for extension-field columns. The
// extension is linear over the base field, so each of the four coordinates
// is extended independently.
func ExtendExtColumns(columns [][]extensions.E4, blowup int) *matrix.RowMatrix[extensions.E4] {
	n := checkExtendArgs(len(columns), len(columns[0]), blowup)
	for j, col := range columns {
		if len(col) != n {
			panic(fmt.Sprintf("trace: column %d has length %d, column 0 has %d", j, len(col), n))
		}
	}

	start := time.Now()
	small := fft.NewDomain(uint64(n))
	large := fft.NewDomain(uint64(n * blowup))

	extended := make([][]extensions.E4, len(columns))
	parallel.Execute(len(columns), func(begin, end int) {
		var coords [4][]koalabear.Element
		for c := range coords {
			coords[c] = make([]koalabear.Element, n*blowup)
		}
		for j := begin; j < end; j++ {
			for i, e := range columns[j] {
				coords[0][i] = e.B0.A0
				coords[1][i] = e.B0.A1
				coords[2][i] = e.B1.A0
				coords[3][i] = e.B1.A1
			}
			for c := range coords {
				// buffers are reused across columns; the padding
				// tail must be zero before extending
				clear(coords[c][n:])
				extendColumn(coords[c], n, small, large)
			}
			col := make([]extensions.E4, n*blowup)
			for i := range col {
				col[i].B0.A0 = coords[0][i]
				col[i].B0.A1 = coords[1][i]
				col[i].B1.A0 = coords[2][i]
				col[i].B1.A1 = coords[3][i]
			}
			extended[j] = col
		}
	})

	log := logger.Logger()
	log.Debug().
		Int("cols", len(columns)).
		Int("rows", n*blowup).
		Dur("took", time.Since(start)).
		Msg("extended auxiliary trace columns")
	return matrix.FromColumns(extended)
}

// extendColumn interpolates the first n entries of buf over the small domain
// and evaluates the result over a coset of the large domain, in place.
// len(buf) must equal the large domain cardinality, with entries beyond n
// zero.
func extendColumn(buf []koalabear.Element, n int, small, large *fft.Domain) {
	small.FFTInverse(buf[:n], fft.DIF)
	fft.BitReverse(buf[:n])
	large.FFT(buf, fft.DIF, fft.OnCoset())
	fft.BitReverse(buf)
}

func checkExtendArgs(numCols, n, blowup int) int {
	if numCols == 0 {
		panic("trace: at least one column is required")
	}
	if n == 0 || bits.OnesCount(uint(n)) != 1 {
		panic(fmt.Sprintf("trace: trace length %d is not a power of two", n))
	}
	if blowup < 2 || bits.OnesCount(uint(blowup)) != 1 {
		panic(fmt.Sprintf("trace: blowup factor %d is not a power of two larger than one", blowup))
	}
	return n
}
