package aoc

// Permutations returns every ordering of in. in is not modified.
func Permutations[T any](in []T) [][]T {
	if len(in) == 0 {
		return [][]T{{}}
	}
	var out [][]T
	for i := range in {
		rest := make([]T, 0, len(in)-1)
		rest = append(rest, in[:i]...)
		rest = append(rest, in[i+1:]...)
		for _, p := range Permutations(rest) {
			out = append(out, append([]T{in[i]}, p...))
		}
	}
	return out
}
