package model

import (
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"
)

var (
	ErrOutOfRange  = errors.New("coordinate out of range")
	ErrBadGridSize = errors.New("grid dimensions must be positive")
	ErrPercentage  = errors.New("start percentage must be within [0, 100]")
)

// maxNeighbors is the size of the 3D Moore neighborhood
const maxNeighbors = 26

// Grid is a fixed-size 3D block of cells stored x-major (x outer, y middle, z inner)
type Grid struct {
	width      int
	height     int
	depth      int
	wrapAround bool
	cells      []Cell
}

// NewGrid creates a grid of dead cells with the given extents.
// Non-positive extents are a programming error and panic.
func NewGrid(width, height, depth int, wrapAround bool) *Grid {
	if width <= 0 || height <= 0 || depth <= 0 {
		panic(errors.Wrapf(ErrBadGridSize, "[NewGrid] got %dx%dx%d", width, height, depth))
	}

	g := &Grid{
		width:      width,
		height:     height,
		depth:      depth,
		wrapAround: wrapAround,
		cells:      make([]Cell, width*height*depth),
	}
	for x := range width {
		for y := range height {
			for z := range depth {
				c := &g.cells[g.index(x, y, z)]
				c.pos = Position{X: x, Y: y, Z: z}
				c.current = Dead
				c.next = Unset
			}
		}
	}
	return g
}

// NewCubeGrid creates a worldSize³ grid
func NewCubeGrid(worldSize int, wrapAround bool) *Grid {
	return NewGrid(worldSize, worldSize, worldSize, wrapAround)
}

// Width returns the x extent
func (g *Grid) Width() int { return g.width }

// Height returns the y extent
func (g *Grid) Height() int { return g.height }

// Depth returns the z extent
func (g *Grid) Depth() int { return g.depth }

// Len returns the total number of cells
func (g *Grid) Len() int { return len(g.cells) }

// WrapAround reports whether boundary cells see the opposite face as neighbors
func (g *Grid) WrapAround() bool { return g.wrapAround }

// SetWrapAround changes the topology. It must not be called while a step is running.
func (g *Grid) SetWrapAround(wrap bool) { g.wrapAround = wrap }

func (g *Grid) index(x, y, z int) int {
	return (x*g.height+y)*g.depth + z
}

func (g *Grid) contains(x, y, z int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height && z >= 0 && z < g.depth
}

func (g *Grid) mustIndex(x, y, z int) int {
	if !g.contains(x, y, z) {
		panic(errors.Wrapf(ErrOutOfRange, "[Grid] (%d,%d,%d) outside %dx%dx%d",
			x, y, z, g.width, g.height, g.depth))
	}
	return g.index(x, y, z)
}

// Cell returns the cell at (x, y, z), panicking on out-of-range coordinates
func (g *Grid) Cell(x, y, z int) *Cell {
	return &g.cells[g.mustIndex(x, y, z)]
}

// Set overwrites the current state of a cell and clears its pending state
func (g *Grid) Set(x, y, z int, alive bool) {
	c := &g.cells[g.mustIndex(x, y, z)]
	c.current = Dead
	if alive {
		c.current = Alive
	}
	c.next = Unset
}

// Get reports whether the cell at (x, y, z) is alive
func (g *Grid) Get(x, y, z int) bool {
	return g.cells[g.mustIndex(x, y, z)].current == Alive
}

// Clear kills every cell
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].current = Dead
		g.cells[i].next = Unset
	}
}

// resolve maps a possibly out-of-range coordinate on one axis to an in-range one.
// Each axis is resolved independently so corners wrap on every axis at once.
func (g *Grid) resolve(v, extent int) (int, bool) {
	switch {
	case v < 0:
		if !g.wrapAround {
			return 0, false
		}
		return extent - 1, true
	case v >= extent:
		if !g.wrapAround {
			return 0, false
		}
		return 0, true
	default:
		return v, true
	}
}

// neighbors fills buf with the indexes of the distinct cells surrounding (x, y, z).
// The center is never included, and on axes shorter than 3 an offset that
// wraps onto an already listed cell is dropped.
func (g *Grid) neighbors(x, y, z int, buf *[maxNeighbors]int) []int {
	var (
		center = g.index(x, y, z)
		small  = g.width < 3 || g.height < 3 || g.depth < 3
		out    = buf[:0]
	)

	for dx := -1; dx <= 1; dx++ {
		nx, ok := g.resolve(x+dx, g.width)
		if !ok {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			ny, ok := g.resolve(y+dy, g.height)
			if !ok {
				continue
			}
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				nz, ok := g.resolve(z+dz, g.depth)
				if !ok {
					continue
				}
				idx := g.index(nx, ny, nz)
				if small && (idx == center || slices.Contains(out, idx)) {
					continue
				}
				out = append(out, idx)
			}
		}
	}
	return out
}

// NeighborCount returns the number of live cells in the Moore neighborhood of (x, y, z)
func (g *Grid) NeighborCount(x, y, z int) int {
	g.mustIndex(x, y, z)
	return g.neighborCount(x, y, z)
}

func (g *Grid) neighborCount(x, y, z int) int {
	var buf [maxNeighbors]int
	count := 0
	for _, idx := range g.neighbors(x, y, z, &buf) {
		if g.cells[idx].current == Alive {
			count++
		}
	}
	return count
}

// NeighborCandidates returns how many distinct cells are considered neighbors of (x, y, z)
func (g *Grid) NeighborCandidates(x, y, z int) int {
	g.mustIndex(x, y, z)
	var buf [maxNeighbors]int
	return len(g.neighbors(x, y, z, &buf))
}

// ForEachCell visits every cell exactly once. Callers must not rely on the order.
func (g *Grid) ForEachCell(visit func(c *Cell)) {
	for i := range g.cells {
		visit(&g.cells[i])
	}
}

// All returns a lazy traversal over every cell
func (g *Grid) All() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range g.cells {
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}

// CountLivingCells returns the number of live cells
func (g *Grid) CountLivingCells() (count int) {
	for i := range g.cells {
		if g.cells[i].current == Alive {
			count++
		}
	}
	return
}

// Randomize sets every cell alive independently with probability startPercentage/100
func (g *Grid) Randomize(startPercentage int, rng *rand.Rand) {
	if startPercentage < 0 || startPercentage > 100 {
		panic(errors.Wrapf(ErrPercentage, "[Grid.Randomize] got %d", startPercentage))
	}

	p := float64(startPercentage) / 100
	for i := range g.cells {
		c := &g.cells[i]
		c.current = Dead
		if rng.Float64() < p {
			c.current = Alive
		}
		c.next = Unset
	}
}
