package arena

import "fmt"

// Table is a row-major flat float64 matrix used to build pairwise and
// enumerated log-potential tables before they are handed to fgr.Compile or
// arena.Init. It is the same "flat backing slice + explicit bounds-checked
// index arithmetic" idiom the teacher's matrix.Dense uses for general
// linear algebra, narrowed here to the one job this engine needs: building
// and flattening small per-factor log-potential tables.
type Table struct {
	rows, cols int
	data       []float64
}

// NewTable allocates a rows x cols Table initialized to zero.
func NewTable(rows, cols int) (*Table, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("arena: NewTable(%d,%d): %w", rows, cols, ErrShapeMismatch)
	}
	return &Table{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.cols }

func (t *Table) index(row, col int) (int, error) {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return 0, fmt.Errorf("arena: Table.At(%d,%d): %w", row, col, ErrShapeMismatch)
	}
	return row*t.cols + col, nil
}

// At returns the value at (row, col).
func (t *Table) At(row, col int) (float64, error) {
	idx, err := t.index(row, col)
	if err != nil {
		return 0, err
	}
	return t.data[idx], nil
}

// Set assigns v at (row, col).
func (t *Table) Set(row, col int, v float64) error {
	idx, err := t.index(row, col)
	if err != nil {
		return err
	}
	t.data[idx] = v
	return nil
}

// Flatten returns a copy of the table's row-major backing slice, the layout
// fgr.FactorGroup.LogPotentials expects for a single KindPairwise factor
// (or one row segment of a KindEnumerated factor's configuration table).
func (t *Table) Flatten() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)
	return out
}
