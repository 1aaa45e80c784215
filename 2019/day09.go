package main

import "github.com/advent-of-go/aoc/intcode"

func boost(prog []int64, mode int64) int64 {
	for v := range intcode.Run(prog, mode) {
		return v
	}
	panic("BOOST produced no output")
}
