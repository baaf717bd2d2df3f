package model

import (
	"crypto/md5"
	"fmt"
)

const defaultHistoryWindow = 5

// History remembers hashes of recent generations to spot short cycles
type History struct {
	window int
	hashes []string
}

// NewHistory keeps up to window previous generations; window <= 0 uses 5
func NewHistory(window int) *History {
	if window <= 0 {
		window = defaultHistoryWindow
	}
	return &History{window: window}
}

// GridHash returns an MD5 hash of the live/dead pattern of the grid
func GridHash(g *Grid) string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i := range g.cells {
		if g.cells[i].current == Alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

/*
Observe records the grid's current generation and returns the cycle period.

A period of 1 means the grid repeats its previous generation (a fixed point),
k means it matches the generation k steps back. 0 means no repeat was found
inside the window.
*/
func (h *History) Observe(g *Grid) int {
	current := GridHash(g)

	period := 0
	for back := 1; back <= len(h.hashes); back++ {
		if h.hashes[len(h.hashes)-back] == current {
			period = back
			break
		}
	}

	h.hashes = append(h.hashes, current)
	if len(h.hashes) > h.window {
		h.hashes = h.hashes[1:]
	}
	return period
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of remembered generations
func (h *History) Len() int {
	return len(h.hashes)
}
