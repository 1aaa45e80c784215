package main

import (
	"fmt"

	"github.com/advent-of-go/aoc"
	"github.com/advent-of-go/aoc/intcode"
)

type color int64

const (
	black color = 0
	white color = 1
)

// paint runs the hull painting robot on c. The robot starts facing up on
// a panel of color start; every other panel starts black. It returns the
// color of each panel painted at least once.
func paint(c *intcode.Computer, start color) map[aoc.Pt]color {
	painted := map[aoc.Pt]color{}
	colorAt := func(p aoc.Pt) color {
		if col, ok := painted[p]; ok {
			return col
		}
		if p == (aoc.Pt{}) {
			return start
		}
		return black
	}

	var pos aoc.Pt
	dir := aoc.Up
	for {
		c.Feed(int64(colorAt(pos)))
		col, ok := c.Next()
		if !ok {
			return painted
		}
		turn, ok := c.Next()
		if !ok {
			panic("robot halted between color and turn")
		}
		if col != int64(black) && col != int64(white) {
			panic(fmt.Sprintf("invalid color %d", col))
		}
		if turn != 0 && turn != 1 {
			panic(fmt.Sprintf("invalid turn %d", turn))
		}
		painted[pos] = color(col)
		dir = dir.Turn(turn == 1)
		pos = pos.Move(dir)
	}
}

func render(panels map[aoc.Pt]color) string {
	g, _ := aoc.GridFromMap(panels)
	return g.Render(func(c color) string {
		if c == white {
			return "██"
		}
		return "  "
	})
}
