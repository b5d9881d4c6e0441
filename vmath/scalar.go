package vmath

// Clamp bounds v to [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Clamp01 bounds v to the normalized input range
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sign returns -1, 0 or 1
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}

// Abs avoids a math import at call sites that only need magnitude
func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
