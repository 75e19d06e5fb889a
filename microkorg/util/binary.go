package util

import "math"

// BiasOffset is added to every signed parameter before it goes on the wire.
const BiasOffset = 64

func BoolToBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if hi < v {
		return hi
	}
	return v
}

// Bias encodes a signed value as value+64 after clamping it into [lo, hi]
// (and always into the 7-bit wire range).
func Bias(v, lo, hi int) uint32 {
	v = Clamp(v, lo, hi)
	return uint32(Clamp(v+BiasOffset, 0, 127))
}

func Unbias(w uint32) int {
	return int(w) - BiasOffset
}

// Quantize maps v in [0, scale] onto 0..127.
func Quantize(v, scale float64) uint32 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if scale <= v {
		return 127
	}
	return uint32(math.Round(v / scale * 127))
}

// Normalize is the inverse of Quantize.
func Normalize(w uint32, scale float64) float64 {
	return float64(w) / 127 * scale
}

func Int8ToWire(v int) uint32 {
	return uint32(uint8(int8(Clamp(v, math.MinInt8, math.MaxInt8))))
}

func WireToInt8(w uint32) int {
	return int(int8(uint8(w)))
}
