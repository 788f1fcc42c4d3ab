package dataset

import (
	"fmt"
	"sort"
)

var builtins = map[string]func() Samples{
	"xor":   func() Samples { return truthTable(func(a, b bool) bool { return a != b }) },
	"or":    func() Samples { return truthTable(func(a, b bool) bool { return a || b }) },
	"and":   func() Samples { return truthTable(func(a, b bool) bool { return a && b }) },
	"nand":  func() Samples { return truthTable(func(a, b bool) bool { return !(a && b) }) },
	"adder": fullAdder,
}

// Builtin returns a fresh copy of a literal training set.
func Builtin(name string) (Samples, error) {
	var f, ok = builtins[name]
	if !ok {
		return Samples{}, fmt.Errorf("%q (known: %v): %w", name, BuiltinNames(), ErrUnknown)
	}
	return f(), nil
}

func BuiltinNames() []string {
	var result = make([]string, 0, len(builtins))
	for name := range builtins {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// truthTable enumerates a two-input boolean gate in the order 00, 01, 10, 11.
func truthTable(gate func(a, b bool) bool) Samples {
	var result Samples
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			result.Add([]float64{bit(a), bit(b)}, []float64{bit(gate(a, b))})
		}
	}
	return result
}

// fullAdder maps (a, b, carry in) to (sum, carry out).
func fullAdder() Samples {
	var result Samples
	for a := 0; a <= 1; a++ {
		for b := 0; b <= 1; b++ {
			for cin := 0; cin <= 1; cin++ {
				var total = a + b + cin
				result.Add(
					[]float64{float64(a), float64(b), float64(cin)},
					[]float64{float64(total & 1), float64(total >> 1)})
			}
		}
	}
	return result
}

func bit(x bool) float64 {
	if x {
		return 1
	}
	return 0
}
