// Package bitpack converts between native 8-bit data and the 7-bit safe form
// Korg uses inside exclusive messages.
//
// Every 7 native bytes become 8 encoded bytes: a leading byte whose bit i holds
// bit 7 of native byte i, followed by the 7 bytes with their top bit cleared.
// A final chunk of fewer than 7 bytes is emitted as is, without padding.
package bitpack

// EncodedLen returns the encoded length of n native bytes.
func EncodedLen(n int) int {
	return n + (n+6)/7
}

// DecodedLen returns the native length of m encoded bytes.
func DecodedLen(m int) int {
	n := m / 8 * 7
	if rest := m % 8; 1 < rest {
		n += rest - 1
	}
	return n
}

func Encode(native []byte) []byte {
	out := make([]byte, 0, EncodedLen(len(native)))
	for ptr := 0; ptr < len(native); ptr += 7 {
		end := ptr + 7
		if len(native) < end {
			end = len(native)
		}
		chunk := native[ptr:end]
		var msb byte
		for i, b := range chunk {
			msb |= b >> 7 << uint(i)
		}
		out = append(out, msb)
		for _, b := range chunk {
			out = append(out, b&0x7F)
		}
	}
	return out
}

// Decode reverses Encode. A trailing chunk shorter than 8 bytes is accepted;
// a lone MSB byte with no data yields nothing.
func Decode(encoded []byte) []byte {
	out := make([]byte, 0, DecodedLen(len(encoded)))
	for ptr := 0; ptr < len(encoded); ptr += 8 {
		msb := encoded[ptr]
		for i := 1; i <= 7 && ptr+i < len(encoded); i++ {
			b := encoded[ptr+i] & 0x7F
			if msb&1 != 0 {
				b |= 0x80
			}
			out = append(out, b)
			msb >>= 1
		}
	}
	return out
}
