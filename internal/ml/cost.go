package ml

// SquaredError is the per-coordinate term of the MSE cost.
func SquaredError(predicted, target float64) float64 {
	var x = predicted - target
	return x * x
}
