package clock

import "math"

// Checked int64 arithmetic. Each helper reports false instead of
// wrapping when the mathematical result does not fit in int64.

func addInt64(a, b int64) (int64, bool) {
	v := a + b
	if (b > 0 && v < a) || (b < 0 && v > a) {
		return 0, false
	}
	return v, true
}

func subInt64(a, b int64) (int64, bool) {
	v := a - b
	if (b > 0 && v > a) || (b < 0 && v < a) {
		return 0, false
	}
	return v, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	v := a * b
	if v/b != a {
		return 0, false
	}
	return v, true
}

func divInt64(a, b int64) (int64, bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	return a / b, true
}

func remInt64(a, b int64) (int64, bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	return a % b, true
}
