package intcode

import "fmt"

// Op is an instruction opcode, the two low decimal digits of an
// instruction word.
type Op int64

const (
	OpAdd         Op = 1
	OpMul         Op = 2
	OpIn          Op = 3
	OpOut         Op = 4
	OpJumpIfTrue  Op = 5
	OpJumpIfFalse Op = 6
	OpLessThan    Op = 7
	OpEquals      Op = 8
	OpAdjustBase  Op = 9
	OpHalt        Op = 99
)

var opNames = map[Op]string{
	OpAdd:         "add",
	OpMul:         "mul",
	OpIn:          "in",
	OpOut:         "out",
	OpJumpIfTrue:  "jump-if-true",
	OpJumpIfFalse: "jump-if-false",
	OpLessThan:    "less-than",
	OpEquals:      "equals",
	OpAdjustBase:  "adjust-relative-base",
	OpHalt:        "halt",
}

var opArity = map[Op]int{
	OpAdd:         3,
	OpMul:         3,
	OpIn:          1,
	OpOut:         1,
	OpJumpIfTrue:  2,
	OpJumpIfFalse: 2,
	OpLessThan:    3,
	OpEquals:      3,
	OpAdjustBase:  1,
	OpHalt:        0,
}

func (o Op) String() string {
	if n, ok := opNames[o]; ok {
		return n
	}
	return fmt.Sprintf("op(%d)", int64(o))
}

// Width returns the number of memory cells the instruction occupies,
// the opcode word included.
func (o Op) Width() int {
	return opArity[o] + 1
}

// Mode is a parameter addressing mode.
type Mode int64

const (
	Position  Mode = 0 // parameter is an address
	Immediate Mode = 1 // parameter is the value
	Relative  Mode = 2 // parameter is an offset from the relative base
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	default:
		return fmt.Sprintf("mode(%d)", int64(m))
	}
}

var pow10 = [...]int64{1, 10, 100, 1000, 10000}

// decode returns the opcode of an instruction word.
func decode(word int64) Op {
	return Op(word % 100)
}

// modeOf returns the mode of parameter i (1-based) of an instruction word.
func modeOf(word int64, i int) Mode {
	return Mode(word / pow10[i+1] % 10)
}
