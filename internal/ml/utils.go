package ml

import (
	"math/rand"
)

func initUniform(rnd *rand.Rand, data []float64, low, high float64) {
	var scale = high - low
	for i := range data {
		data[i] = low + rnd.Float64()*scale
	}
}
