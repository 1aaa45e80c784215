package intcode

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/advent-of-go/aoc"
)

// Run returns the values program produces when given the single input
// value input. Each iteration runs a fresh Computer, so the sequence can
// be ranged over more than once.
//
// Iteration panics with a *Fault wrapping ErrInputExhausted if the
// program asks for a second input.
func Run(program []int64, input int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		c := New(program)
		fed := false
		for {
			r := c.Resume()
			switch r.State {
			case Produced:
				if !yield(r.Value) {
					return
				}
			case Waiting:
				if fed {
					panic(c.fault(ErrInputExhausted))
				}
				fed = true
				c.Feed(input)
			case Complete:
				return
			}
		}
	}
}

// Outputs returns the values c produces from its queued input. The
// sequence ends when c halts or waits for input that has not been fed;
// in the latter case Feed more and range over Outputs again.
func (c *Computer) Outputs() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for {
			r := c.Resume()
			if r.State != Produced || !yield(r.Value) {
				return
			}
		}
	}
}

// Next returns the next value c produces, or false once it has halted.
// The caller must have fed all the input the program needs before its
// next output; Next panics with a *Fault wrapping ErrInputExhausted
// otherwise.
func (c *Computer) Next() (int64, bool) {
	switch r := c.Resume(); r.State {
	case Produced:
		return r.Value, true
	case Waiting:
		panic(c.fault(ErrInputExhausted))
	}
	return 0, false
}

// Parse parses a comma separated intcode program.
func Parse(text string) ([]int64, error) {
	fields := strings.Split(strings.TrimSpace(text), ",")
	prog := make([]int64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("intcode: parsing field %d: %w", i, err)
		}
		prog = append(prog, v)
	}
	return prog, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) []int64 {
	return aoc.MustGet(Parse(text))
}
