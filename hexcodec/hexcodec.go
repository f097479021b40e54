package hexcodec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedHex is reported by Decode when the cleaned input has odd
// length or contains a non-hex character. Use errors.Is to test for it.
var ErrMalformedHex = errors.New("hexcodec: malformed hex input")

const upperHexDigits = "0123456789ABCDEF"

// ============================================================
// Encoding
// ============================================================

// Encode renders data as hex text: exactly two uppercase digits per byte,
// concatenated in order. The result length is always 2*len(data).
func Encode(data []byte) string {
	var b strings.Builder
	b.Grow(2 * len(data))
	for _, c := range data {
		b.WriteByte(upperHexDigits[c>>4])
		b.WriteByte(upperHexDigits[c&0x0F])
	}
	return b.String()
}

// EncodeUint renders n as bare uppercase hex with no fixed-width padding.
// This is a distinct mode from Encode: EncodeUint(12345678) is "BC614E",
// three and a half bytes wide.
func EncodeUint(n uint64) string {
	return strings.ToUpper(strconv.FormatUint(n, 16))
}

// ============================================================
// Decoding
// ============================================================

// Decode parses hex text into bytes. A single leading "0x"/"0X" prefix is
// stripped; ASCII spaces between digits are discarded. The remaining digits
// are consumed in non-overlapping two-character windows, high nibble first.
// Odd-length digit streams and non-hex characters fail with an error
// wrapping ErrMalformedHex; nothing is returned on failure.
func Decode(s string) ([]byte, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	out := make([]byte, 0, len(s)/2)
	var hi byte
	haveHi := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			continue
		}
		nib, ok := hexNibble(c)
		if !ok {
			return nil, fmt.Errorf("%w: invalid character %q at offset %d", ErrMalformedHex, c, i)
		}
		if !haveHi {
			hi = nib
			haveHi = true
		} else {
			out = append(out, hi<<4|nib)
			haveHi = false
		}
	}
	if haveHi {
		return nil, fmt.Errorf("%w: odd number of digits", ErrMalformedHex)
	}
	return out, nil
}

// hexNibble returns the value of a hex digit character.
func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ============================================================
// Pretty Listings
// ============================================================

// Pretty renders a byte/text buffer as <<0xHH, 0xHH, ...>>.
// Empty input yields "<<>>".
func Pretty(data []byte) string {
	var b strings.Builder
	b.WriteString("<<")
	for i, c := range data {
		if i > 0 {
			b.WriteString(", ")
		}
		writeHexByte(&b, c)
	}
	b.WriteString(">>")
	return b.String()
}

// PrettyInts renders a list of small integers as [0xHH, 0xHH, ...].
// Empty input yields "[]".
func PrettyInts(ns []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range ns {
		if i > 0 {
			b.WriteString(", ")
		}
		writeHexByte(&b, byte(n))
	}
	b.WriteByte(']')
	return b.String()
}

func writeHexByte(b *strings.Builder, c byte) {
	b.WriteString("0x")
	b.WriteByte(upperHexDigits[c>>4])
	b.WriteByte(upperHexDigits[c&0x0F])
}
