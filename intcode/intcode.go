// Package intcode implements the intcode computer used throughout
// Advent of Code 2019.
//
// A Computer is driven incrementally: each call to Resume runs until the
// program produces a value, needs input that has not been fed yet, or
// halts. Several computers can be interleaved on one goroutine by
// alternating Resume calls.
package intcode

import (
	"errors"
	"fmt"
	"slices"

	"github.com/advent-of-go/aoc"
	"tailscale.com/util/deephash"
)

// State is the outcome of a single Resume call.
type State uint8

const (
	// Produced means an output instruction yielded Result.Value.
	Produced State = iota + 1
	// Waiting means an input instruction found no queued input. The
	// instruction pointer has not moved.
	Waiting
	// Complete means the program halted. It is terminal.
	Complete
)

func (s State) String() string {
	switch s {
	case Produced:
		return "produced"
	case Waiting:
		return "waiting"
	case Complete:
		return "complete"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Result is returned by Resume. Value is only set when State is Produced.
type Result struct {
	State State
	Value int64
}

func (r Result) String() string {
	if r.State == Produced {
		return fmt.Sprintf("produced(%d)", r.Value)
	}
	return r.State.String()
}

// Errors wrapped by a Fault.
var (
	ErrUnknownOpcode   = errors.New("unknown opcode")
	ErrUnknownMode     = errors.New("unknown parameter mode")
	ErrImmediateWrite  = errors.New("write through immediate parameter")
	ErrNegativeAddress = errors.New("negative address")
	ErrInputExhausted  = errors.New("input exhausted")
)

// Fault is the value a Computer panics with when it runs a malformed
// program, when a convenience method needs input that was never fed, or
// when Peek or Poke is given a bad address.
type Fault struct {
	// Addr is the address of the faulting instruction. For a fault raised
	// by Peek or Poke it is the address that was passed in.
	Addr int
	// Word is the instruction word at Addr. It is 0 for Peek and Poke.
	Word int64
	Err  error

	access bool // raised by Peek or Poke, not by an instruction
}

func (f *Fault) Error() string {
	if f.access {
		return fmt.Sprintf("intcode: %v", f.Err)
	}
	return fmt.Sprintf("intcode: %v at address %d (instruction %d)", f.Err, f.Addr, f.Word)
}

func (f *Fault) Unwrap() error { return f.Err }

// Computer is an intcode machine. It is not safe for concurrent use.
type Computer struct {
	mem    []int64
	ip     int
	base   int64
	in     aoc.Queue[int64]
	halted bool
}

// New returns a Computer whose memory is a copy of program.
func New(program []int64) *Computer {
	return &Computer{mem: slices.Clone(program)}
}

// Feed queues input values. They are consumed in order, one per input
// instruction.
func (c *Computer) Feed(v ...int64) {
	for _, x := range v {
		c.in.Push(x)
	}
}

// Halted reports whether the program has executed a halt instruction.
func (c *Computer) Halted() bool {
	return c.halted
}

// Peek returns the value at addr. Addresses past the end of memory read
// as 0.
func (c *Computer) Peek(addr int) int64 {
	checkAccess(addr)
	return c.load(addr)
}

// Poke stores v at addr, growing memory if needed.
func (c *Computer) Poke(addr int, v int64) {
	checkAccess(addr)
	c.storeAt(addr, v)
}

// checkAccess panics with a *Fault if addr can't be used from outside
// the running program.
func checkAccess(addr int) {
	if addr < 0 {
		panic(&Fault{
			Addr:   addr,
			Err:    fmt.Errorf("%w %d", ErrNegativeAddress, addr),
			access: true,
		})
	}
}

// Clone returns an independent copy of c, pending input included.
func (c *Computer) Clone() *Computer {
	c2 := *c
	c2.mem = slices.Clone(c.mem)
	c2.in = aoc.NewQueue(slices.Clone(c.in.Items())...)
	return &c2
}

type snapshot struct {
	Mem    []int64
	IP     int
	Base   int64
	In     []int64
	Halted bool
}

var hashSnapshot = deephash.HasherForType[snapshot]()

// Hash returns a hash of the machine state. Trailing zero memory is
// ignored, so grown-but-unwritten memory hashes the same as before the
// growth.
func (c *Computer) Hash() deephash.Sum {
	mem := c.mem
	for len(mem) > 0 && mem[len(mem)-1] == 0 {
		mem = mem[:len(mem)-1]
	}
	s := snapshot{
		Mem:    mem,
		IP:     c.ip,
		Base:   c.base,
		In:     c.in.Items(),
		Halted: c.halted,
	}
	return hashSnapshot(&s)
}

// Resume executes instructions until the program produces a value,
// waits for input, or halts. Once Complete has been returned, every
// later call returns Complete without executing anything.
//
// Resume panics with a *Fault if the program is malformed.
func (c *Computer) Resume() Result {
	if c.halted {
		return Result{State: Complete}
	}
	for {
		op := decode(c.load(c.ip))
		switch op {
		case OpAdd:
			c.store(3, c.param(1)+c.param(2))
		case OpMul:
			c.store(3, c.param(1)*c.param(2))
		case OpIn:
			v, ok := c.in.Pop()
			if !ok {
				return Result{State: Waiting}
			}
			c.store(1, v)
		case OpOut:
			v := c.param(1)
			c.ip += op.Width()
			return Result{State: Produced, Value: v}
		case OpJumpIfTrue:
			if c.param(1) != 0 {
				c.jump(c.param(2))
				continue
			}
		case OpJumpIfFalse:
			if c.param(1) == 0 {
				c.jump(c.param(2))
				continue
			}
		case OpLessThan:
			c.store(3, b2i(c.param(1) < c.param(2)))
		case OpEquals:
			c.store(3, b2i(c.param(1) == c.param(2)))
		case OpAdjustBase:
			c.base += c.param(1)
		case OpHalt:
			c.halted = true
			return Result{State: Complete}
		default:
			panic(c.fault(fmt.Errorf("%w %d", ErrUnknownOpcode, int64(op))))
		}
		c.ip += op.Width()
	}
}

func (c *Computer) fault(err error) *Fault {
	return &Fault{Addr: c.ip, Word: c.load(c.ip), Err: err}
}

func (c *Computer) load(addr int) int64 {
	if addr < len(c.mem) {
		return c.mem[addr]
	}
	return 0
}

func (c *Computer) storeAt(addr int, v int64) {
	if addr >= len(c.mem) {
		c.mem = append(c.mem, make([]int64, addr+1-len(c.mem))...)
	}
	c.mem[addr] = v
}

// addr resolves an address computed by the program.
func (c *Computer) addr(a int64) int {
	if a < 0 {
		panic(c.fault(fmt.Errorf("%w %d", ErrNegativeAddress, a)))
	}
	return int(a)
}

// paramAddr returns the address parameter i (1-based) of the current
// instruction refers to.
func (c *Computer) paramAddr(i int) int {
	word := c.load(c.ip)
	ptr := c.ip + i
	switch m := modeOf(word, i); m {
	case Position:
		return c.addr(c.load(ptr))
	case Immediate:
		return ptr
	case Relative:
		return c.addr(c.base + c.load(ptr))
	default:
		panic(c.fault(fmt.Errorf("%w %d for parameter %d of %v", ErrUnknownMode, int64(m), i, decode(word))))
	}
}

func (c *Computer) param(i int) int64 {
	return c.load(c.paramAddr(i))
}

func (c *Computer) store(i int, v int64) {
	word := c.load(c.ip)
	if modeOf(word, i) == Immediate {
		panic(c.fault(fmt.Errorf("%w %d of %v", ErrImmediateWrite, i, decode(word))))
	}
	c.storeAt(c.paramAddr(i), v)
}

func (c *Computer) jump(target int64) {
	c.ip = c.addr(target)
}

func b2i(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
