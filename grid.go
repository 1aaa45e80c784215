package aoc

import (
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Move returns the point one step from p in direction d. Y grows
// downward.
func (p Pt2[T]) Move(d Direction) Pt2[T] {
	switch d {
	case Up:
		p.Y--
	case Right:
		p.X++
	case Down:
		p.Y++
	case Left:
		p.X--
	}
	return p
}

// Bounds returns the smallest and largest X and Y of the keys of m.
func Bounds[T constraints.Signed, V any](m map[Pt2[T]]V) (lo, hi Pt2[T]) {
	for i, p := range maps.Keys(m) {
		if i == 0 {
			lo, hi = p, p
			continue
		}
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
	}
	return lo, hi
}

type Grid[T any] [][]T

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// GridFromMap returns the dense grid covering the points of m, and the
// point of m that its top left cell corresponds to.
func GridFromMap[V any](m map[Pt]V) (Grid[V], Pt) {
	if len(m) == 0 {
		return nil, Pt{}
	}
	lo, hi := Bounds(m)
	g := MakeGrid[V](hi.X-lo.X+1, hi.Y-lo.Y+1)
	for p, v := range m {
		g[p.Y-lo.Y][p.X-lo.X] = v
	}
	return g, lo
}

// Render draws g one row per line, using cell to draw each value.
func (g Grid[T]) Render(cell func(T) string) string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			sb.WriteString(cell(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}
