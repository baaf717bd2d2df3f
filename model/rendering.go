package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "··"
	layerGap     = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer prints z layers of a snapshot side by side, one x/y slice per layer
type TerminalRenderer struct {
	Out       io.Writer
	MaxLayers int
}

// Display renders the snapshot to the terminal
func (r *TerminalRenderer) Display(s *Snapshot) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	layers := s.Depth()
	if r.MaxLayers > 0 {
		layers = min(layers, r.MaxLayers)
	}

	for z := range layers {
		fmt.Fprintf(w, "z=%-*d", 2*s.Width()-2+len(layerGap), z)
	}
	fmt.Fprintln(w)

	for y := range s.Height() {
		for z := range layers {
			for x := range s.Width() {
				if s.Alive(x, y, z) {
					fmt.Fprint(w, gridPosBlock)
				} else {
					fmt.Fprint(w, gridPosEmpty)
				}
			}
			fmt.Fprint(w, layerGap)
		}
		fmt.Fprintln(w)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	var cmd *exec.Cmd
	cmd = exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
