package main

import (
	"github.com/advent-of-go/aoc"
	"github.com/advent-of-go/aoc/intcode"
)

// beam reports whether the tractor beam pulls at x, y.
type beam func(x, y int64) bool

// programBeam asks a fresh copy of the drone system for every point.
func programBeam(prog []int64) beam {
	drone := intcode.New(prog)
	return func(x, y int64) bool {
		c := drone.Clone()
		c.Feed(x, y)
		v, ok := c.Next()
		if !ok {
			panic("drone system halted without output")
		}
		return v == 1
	}
}

func countAffected(affected beam, size int64) int {
	n := 0
	for y := range size {
		for x := range size {
			if affected(x, y) {
				n++
			}
		}
	}
	return n
}

// fitSquare returns the top left corner of the square of the given size
// closest to the emitter that fits entirely in the beam. It walks the
// left edge of the beam along the square's bottom row.
func fitSquare(affected beam, size int64) aoc.Pt2[int64] {
	d := size - 1
	x, y := int64(0), d
	for {
		for !affected(x, y) {
			x++
		}
		if affected(x, y-d) && affected(x+d, y-d) && affected(x+d, y) {
			return aoc.Pt2[int64]{X: x, Y: y - d}
		}
		y++
	}
}
