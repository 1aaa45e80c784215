package main

import (
	"fmt"

	"github.com/advent-of-go/aoc"
	"github.com/advent-of-go/aoc/intcode"
	"tailscale.com/util/deephash"
)

type amplifiers func(prog, phases []int64) int64

func maxSignal(prog, phases []int64, run amplifiers) int64 {
	var best int64
	for i, p := range aoc.Permutations(phases) {
		if v := run(prog, p); i == 0 || v > best {
			best = v
		}
	}
	return best
}

// chainSignal runs one amplifier per phase setting in series, feeding
// each the previous amplifier's output. The first gets 0.
func chainSignal(prog, phases []int64) int64 {
	var signal int64
	for _, phase := range phases {
		amp := intcode.New(prog)
		amp.Feed(phase, signal)
		v, ok := amp.Next()
		if !ok {
			panic("amplifier halted without output")
		}
		signal = v
	}
	return signal
}

// loopState is the state of a feedback loop between rounds.
type loopState struct {
	Amps   []deephash.Sum
	Signal int64
}

// feedbackSignal is like chainSignal, but the last amplifier's output
// goes back to the first until the first one halts. It panics if the
// loop comes back to a state it has already been in.
func feedbackSignal(prog, phases []int64) int64 {
	amps := make([]*intcode.Computer, len(phases))
	for i, phase := range phases {
		amps[i] = intcode.New(prog)
		amps[i].Feed(phase)
	}
	var signal int64
	seen := map[deephash.Sum]bool{}
	for round := 0; ; round++ {
		st := loopState{Signal: signal}
		for _, amp := range amps {
			st.Amps = append(st.Amps, amp.Hash())
		}
		h := deephash.Hash(&st)
		if seen[h] {
			panic(fmt.Sprintf("amplifiers with phases %v repeat after %d rounds", phases, round))
		}
		seen[h] = true

		for _, amp := range amps {
			amp.Feed(signal)
			v, ok := amp.Next()
			if !ok {
				return signal
			}
			signal = v
		}
	}
}
