package model

import "sync"

// Snapshot is a read-only copy of cell visibility taken after a step, laid out like Grid
type Snapshot struct {
	width  int
	height int
	depth  int
	alive  []bool

	State EngineState
}

// NewSnapshot allocates an empty snapshot with the given extents
func NewSnapshot(width, height, depth int) *Snapshot {
	s := &Snapshot{}
	s.Reset(width, height, depth)
	return s
}

// Reset resizes the snapshot and clears it
func (s *Snapshot) Reset(width, height, depth int) {
	s.width = width
	s.height = height
	s.depth = depth
	s.State = EngineState{}

	n := width * height * depth
	if cap(s.alive) < n {
		s.alive = make([]bool, n)
		return
	}
	s.alive = s.alive[:n]
	clear(s.alive)
}

// Width returns the x extent
func (s *Snapshot) Width() int { return s.width }

// Height returns the y extent
func (s *Snapshot) Height() int { return s.height }

// Depth returns the z extent
func (s *Snapshot) Depth() int { return s.depth }

// Alive reports whether the cell at (x, y, z) was alive; out-of-range reads are false
func (s *Snapshot) Alive(x, y, z int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height || z < 0 || z >= s.depth {
		return false
	}
	return s.alive[(x*s.height+y)*s.depth+z]
}

// Visible lists the positions of every live cell
func (s *Snapshot) Visible() []Position {
	var out []Position
	for x := range s.width {
		for y := range s.height {
			for z := range s.depth {
				if s.alive[(x*s.height+y)*s.depth+z] {
					out = append(out, Position{X: x, Y: y, Z: z})
				}
			}
		}
	}
	return out
}

// SnapshotToPool returns a snapshot to the pool for reuse
func SnapshotToPool(s *Snapshot, pool *SnapshotPool) {
	if pool == nil || s == nil {
		return
	}

	pool.Put(s)
}

// SnapshotPool recycles snapshot buffers between frames
type SnapshotPool struct {
	pool sync.Pool
}

func NewSnapshotPool() *SnapshotPool {
	return &SnapshotPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Snapshot{}
			},
		},
	}
}

// Get retrieves a snapshot from the pool, resetting its dimensions
func (p *SnapshotPool) Get(width, height, depth int) *Snapshot {
	s := p.pool.Get().(*Snapshot)
	s.Reset(width, height, depth)
	return s
}

// Put returns a snapshot to the pool
func (p *SnapshotPool) Put(s *Snapshot) {
	p.pool.Put(s)
}
