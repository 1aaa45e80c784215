package aoc

import (
	"slices"
	"testing"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=43210`,
			want:    sample{want: "43210"},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %v, want %v", tt.comment, got, tt.want)
		}
	}
	if _, ok := parseSample("// D1p1 solves part one."); ok {
		t.Error("parseSample matched a comment without want=")
	}
}

const solverSrc = `package main

/*
want=3500

1,9,10,3,2,3,11,0,99,30,40,50
*/
func (s solver) D2p1() any { return nil }

// D2p2 has no sample.
func (s solver) D2p2() any { return nil }

// want=999
func (s solver) D5p1() any { return nil }
`

func TestExtractSamples(t *testing.T) {
	got := extractSamples([]byte(solverSrc))
	want := map[string]sample{
		"D2p1": {want: "3500", input: "1,9,10,3,2,3,11,0,99,30,40,50\n"},
		"D5p1": {want: "999", input: "1,9,10,3,2,3,11,0,99,30,40,50\n"},
	}
	if len(got) != len(want) {
		t.Fatalf("extractSamples = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("sample %s = %v, want %v", k, got[k], v)
		}
	}
}

type testSolver struct {
	*Puzzle
}

func (testSolver) D7p2() any { return 2 }
func (testSolver) D7p1() any { return 1 }
func (testSolver) D11p1() any { return 3 }
func (testSolver) Helper() any { return 0 }

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&testSolver{})
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	var names []string
	for _, ps := range days[7].parts {
		names = append(names, ps.Name)
	}
	if want := []string{"D7p1", "D7p2"}; !slices.Equal(names, want) {
		t.Errorf("day 7 parts = %v, want %v", names, want)
	}
	if got := days[11].parts[0].fn(); got != 3 {
		t.Errorf("D11p1() = %v, want 3", got)
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "a", "b"); got != "a" {
		t.Errorf("Or = %q, want a", got)
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or = %d, want 0", got)
	}
}

func TestPermutations(t *testing.T) {
	in := []int{1, 2, 3}
	got := Permutations(in)
	want := [][]int{{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1}}
	if !slices.EqualFunc(got, want, slices.Equal[[]int]) {
		t.Errorf("Permutations(%v) = %v, want %v", in, got, want)
	}
	if !slices.Equal(in, []int{1, 2, 3}) {
		t.Errorf("input modified: %v", in)
	}
	if got := len(Permutations([]int{0, 1, 2, 3, 4})); got != 120 {
		t.Errorf("len(Permutations(5 items)) = %d, want 120", got)
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	if got := q.Items(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Items() = %v, want [1 2 3]", got)
	}
	var got []int
	for v, ok := q.Pop(); ok; v, ok = q.Pop() {
		got = append(got, v)
		if v == 1 {
			q.Push(4)
		}
	}
	if !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("popped %v, want [1 2 3 4]", got)
	}
	if len(q.Items()) != 0 {
		t.Error("queue not empty after popping everything")
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		d     Direction
		right bool
		want  Direction
	}{
		{Up, true, Right},
		{Up, false, Left},
		{Left, true, Up},
		{Left, false, Down},
		{Down, true, Left},
	}
	for _, tt := range tests {
		if got := tt.d.Turn(tt.right); got != tt.want {
			t.Errorf("%v.Turn(%v) = %v, want %v", tt.d, tt.right, got, tt.want)
		}
	}
	if got := (Pt{0, 0}).Move(Up).Move(Left); got != (Pt{-1, -1}) {
		t.Errorf("Move = %v, want {-1 -1}", got)
	}
}

func TestGridFromMap(t *testing.T) {
	m := map[Pt]bool{
		{-1, 2}: true,
		{1, 3}:  true,
		{0, 2}:  false,
	}
	lo, hi := Bounds(m)
	if lo != (Pt{-1, 2}) || hi != (Pt{1, 3}) {
		t.Errorf("Bounds = %v, %v; want {-1 2}, {1 3}", lo, hi)
	}
	g, origin := GridFromMap(m)
	if origin != lo {
		t.Errorf("origin = %v, want %v", origin, lo)
	}
	if len(g) != 2 || len(g[0]) != 3 {
		t.Errorf("grid = %v, want 2 rows of 3", g)
	}
	got := g.Render(func(b bool) string {
		if b {
			return "#"
		}
		return "."
	})
	if want := "#..\n..#\n"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestParseConfig(t *testing.T) {
	c, err := parseConfig(`input-dir = "/tmp/aoc"`)
	if err != nil {
		t.Fatal(err)
	}
	if c.InputDir != "/tmp/aoc" {
		t.Errorf("InputDir = %q, want /tmp/aoc", c.InputDir)
	}
	if c.SessionFile != defaultConfig().SessionFile {
		t.Errorf("SessionFile = %q, want default %q", c.SessionFile, defaultConfig().SessionFile)
	}

	t.Setenv("HOME", "/home/gopher")
	c, err = parseConfig(`session-file = "~/aoc/session"`)
	if err != nil {
		t.Fatal(err)
	}
	if want := "/home/gopher/aoc/session"; c.SessionFile != want {
		t.Errorf("SessionFile = %q, want %q", c.SessionFile, want)
	}

	if _, err := parseConfig(`sesion-file = "x"`); err == nil {
		t.Error("parseConfig accepted an unknown key")
	}
	if _, err := parseConfig(`input-dir = `); err == nil {
		t.Error("parseConfig accepted invalid TOML")
	}
}
