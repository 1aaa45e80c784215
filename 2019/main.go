package main

import (
	_ "embed"
	"iter"

	"github.com/advent-of-go/aoc"
	"github.com/advent-of-go/aoc/intcode"
)

func main() {
	aoc.Run(2019, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) program() []int64 {
	return intcode.MustParse(s.InputString())
}

func last(seq iter.Seq[int64]) (v int64) {
	for v = range seq {
	}
	return v
}

/*
want=3500

1,9,10,3,2,3,11,0,99,30,40,50
*/
func (s solver) D2p1() any {
	prog := s.program()
	if s.SampleMode {
		return runGravityAssist(prog)
	}
	return runWithNounVerb(prog, 12, 2)
}

func (s solver) D2p2() any {
	noun, verb, ok := findNounVerb(s.program(), 19690720)
	if !ok {
		panic("no noun and verb found")
	}
	s.Debugf("noun=%d verb=%d", noun, verb)
	return 100*noun + verb
}

/*
want=999

3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31,1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104,999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99
*/
func (s solver) D5p1() any {
	return last(intcode.Run(s.program(), 1))
}

// want=999
func (s solver) D5p2() any {
	return last(intcode.Run(s.program(), 5))
}

/*
want=43210

3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0
*/
func (s solver) D7p1() any {
	return maxSignal(s.program(), []int64{0, 1, 2, 3, 4}, chainSignal)
}

/*
want=139629729

3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5
*/
func (s solver) D7p2() any {
	return maxSignal(s.program(), []int64{5, 6, 7, 8, 9}, feedbackSignal)
}

/*
want=1125899906842624

104,1125899906842624,99
*/
func (s solver) D9p1() any {
	return boost(s.program(), 1)
}

// want=1125899906842624
func (s solver) D9p2() any {
	return boost(s.program(), 2)
}

func (s solver) D11p1() any {
	return len(paint(intcode.New(s.program()), black))
}

func (s solver) D11p2() any {
	return "\n" + render(paint(intcode.New(s.program()), white))
}

func (s solver) D19p1() any {
	return countAffected(programBeam(s.program()), 50)
}

func (s solver) D19p2() any {
	p := fitSquare(programBeam(s.program()), 100)
	s.Debugf("square at %v", p)
	return p.X*10000 + p.Y
}
