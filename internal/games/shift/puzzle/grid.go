// Package puzzle implements the shift puzzle engine: a toroidal grid of
// binary cells, its row/column rotation algebra, level generation,
// scrambling, drag-to-shift interaction, the phase machine with its scripted
// tutorial, and scoring. It has no terminal dependencies; time only moves
// through Engine.Advance.
package puzzle

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/shift-shift/internal/core"
)

// Axis selects rows or columns.
type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
)

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	if a == AxisColumn {
		return "column"
	}
	return "row"
}

// Shift is a cyclic rotation of one row or column. Positive amounts move
// cells right (rows) or down (columns).
type Shift struct {
	Axis   Axis
	Index  int
	Amount int
}

// Inverse returns the shift that undoes s.
func (s Shift) Inverse() Shift {
	return Shift{Axis: s.Axis, Index: s.Index, Amount: -s.Amount}
}

// String returns a compact description like "row 1 +1".
func (s Shift) String() string {
	return fmt.Sprintf("%s %d %+d", s.Axis, s.Index, s.Amount)
}

// Grid is a rows x cols matrix of occupied/empty cells with wraparound
// edges. Cells are stored in row-major order: index = row*cols + col.
type Grid struct {
	rows  int
	cols  int
	cells []bool
}

// NewGrid creates an empty grid. Both dimensions must be positive.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("puzzle: invalid grid size %dx%d", rows, cols))
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// RandomGrid fills a new grid where each cell is occupied with the given
// probability.
func RandomGrid(rows, cols int, density float64, rng *rand.Rand) *Grid {
	g := NewGrid(rows, cols)
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
	return g
}

// ParseGrid builds a grid from lines of '#' (occupied) and '.' (empty).
func ParseGrid(lines ...string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("puzzle: empty grid")
	}
	g := NewGrid(len(lines), len(lines[0]))
	for r, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("puzzle: row %d has %d cells, want %d", r, len(line), g.cols)
		}
		for c, ch := range line {
			switch ch {
			case '#':
				g.cells[r*g.cols+c] = true
			case '.':
			default:
				return nil, fmt.Errorf("puzzle: unexpected %q at row %d col %d", ch, r, c)
			}
		}
	}
	return g, nil
}

// MustParseGrid is ParseGrid that panics on malformed input.
func MustParseGrid(lines ...string) *Grid {
	g, err := ParseGrid(lines...)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells along the given axis line: a row holds
// cols cells, a column holds rows cells.
func (g *Grid) Len(axis Axis) int {
	if axis == AxisColumn {
		return g.rows
	}
	return g.cols
}

// Lines returns how many rows or columns the grid has.
func (g *Grid) Lines(axis Axis) int {
	if axis == AxisColumn {
		return g.cols
	}
	return g.rows
}

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("puzzle: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// At reports whether the cell is occupied.
func (g *Grid) At(row, col int) bool {
	return g.cells[g.index(row, col)]
}

// Set changes one cell.
func (g *Grid) Set(row, col int, occupied bool) {
	g.cells[g.index(row, col)] = occupied
}

// Toggle flips one cell.
func (g *Grid) Toggle(row, col int) {
	i := g.index(row, col)
	g.cells[i] = !g.cells[i]
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// ShiftRow rotates a row: newRow[i] = oldRow[(i - amount) mod cols].
func (g *Grid) ShiftRow(row, amount int) {
	if row < 0 || row >= g.rows {
		panic(fmt.Sprintf("puzzle: row %d outside %dx%d grid", row, g.rows, g.cols))
	}
	n := core.Mod(amount, g.cols)
	if n == 0 {
		return
	}
	line := g.cells[row*g.cols : (row+1)*g.cols]
	old := make([]bool, g.cols)
	copy(old, line)
	for i := range line {
		line[i] = old[core.Mod(i-n, g.cols)]
	}
}

// ShiftColumn rotates a column: newCol[i] = oldCol[(i - amount) mod rows].
func (g *Grid) ShiftColumn(col, amount int) {
	if col < 0 || col >= g.cols {
		panic(fmt.Sprintf("puzzle: column %d outside %dx%d grid", col, g.rows, g.cols))
	}
	n := core.Mod(amount, g.rows)
	if n == 0 {
		return
	}
	old := make([]bool, g.rows)
	for r := range old {
		old[r] = g.cells[r*g.cols+col]
	}
	for r := range old {
		g.cells[r*g.cols+col] = old[core.Mod(r-n, g.rows)]
	}
}

// Apply performs a shift.
func (g *Grid) Apply(s Shift) {
	if s.Axis == AxisColumn {
		g.ShiftColumn(s.Index, s.Amount)
		return
	}
	g.ShiftRow(s.Index, s.Amount)
}

// String renders the grid as '#' and '.' lines.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
