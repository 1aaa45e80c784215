package main

import "github.com/advent-of-go/aoc/intcode"

// gravityAssist runs c to completion and returns the value left at
// address 0.
func gravityAssist(c *intcode.Computer) int64 {
	if _, ok := c.Next(); ok {
		panic("gravity assist program produced output")
	}
	return c.Peek(0)
}

func runGravityAssist(prog []int64) int64 {
	return gravityAssist(intcode.New(prog))
}

func runWithNounVerb(prog []int64, noun, verb int64) int64 {
	c := intcode.New(prog)
	c.Poke(1, noun)
	c.Poke(2, verb)
	return gravityAssist(c)
}

func findNounVerb(prog []int64, target int64) (noun, verb int64, ok bool) {
	for noun := range int64(100) {
		for verb := range int64(100) {
			if runWithNounVerb(prog, noun, verb) == target {
				return noun, verb, true
			}
		}
	}
	return 0, 0, false
}
