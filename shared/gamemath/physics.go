package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampFall caps downward speed at terminal. Upward speed is untouched.
func ClampFall(vy, terminal float64) float64 {
	if terminal > 0 && vy > terminal {
		return terminal
	}
	return vy
}

// ClampDt converts a frame's elapsed milliseconds to seconds, capped at
// maxDt. NaN, negative and -Inf input yield 0; +Inf is capped like any
// other long frame.
func ClampDt(elapsedMs, maxDt float64) float64 {
	if math.IsNaN(elapsedMs) || elapsedMs <= 0 {
		return 0
	}
	dt := elapsedMs / 1000
	if dt > maxDt {
		return maxDt
	}
	return dt
}

// IsFinite reports whether every value is neither NaN nor infinite.
func IsFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
