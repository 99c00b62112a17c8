package noise

import "math"

// floor32 is math.Floor in single precision.
func floor32(x float32) float32 { return float32(math.Floor(float64(x))) }
