// Package guard builds C++ include-guard macro names.
package guard

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// DigitCount is the length of the random suffix appended to every guard
const DigitCount = 16

// Source supplies random numbers for guard suffixes. *rand.Rand satisfies it.
type Source interface {
	// IntN returns a number in [0, n)
	IntN(n int) int
}

// NewSource returns a PCG backed source. A zero seed picks a random seed.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FixedSource replays its values in order and wraps around. Values are
// reduced modulo n.
type FixedSource struct {
	Values []int
	next   int
}

// IntN returns the next value modulo n
func (f *FixedSource) IntN(n int) int {
	if len(f.Values) == 0 || n <= 0 {
		return 0
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Sanitize upper-cases name and replaces every rune outside [A-Z0-9] with '_'
func Sanitize(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range strings.ToUpper(name) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// Digits draws n decimal digits from src. Digits are in 0-8, matching the
// suffixes earlier releases produced.
func Digits(src Source, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteString(strconv.Itoa(src.IntN(9)))
	}
	return sb.String()
}

// Name returns the guard macro for a header named baseName:
// __<SANITIZED>_<digits>_H__
func Name(baseName string, src Source) string {
	return "__" + Sanitize(baseName) + "_" + Digits(src, DigitCount) + "_H__"
}
