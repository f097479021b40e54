// Package hexcodec encodes byte sequences as hexadecimal text and back.
//
// # Hex Text Format
//
// Canonical output is two uppercase hex digits per byte, most significant
// nibble first, no prefix and no separators:
//
//	Encode([]byte{0x31, 0x32}) == "3132"
//
// Decode is more tolerant than Encode is strict. It accepts:
//
//   - a single optional leading "0x" or "0X" prefix
//   - ASCII spaces between digits, conventionally between byte pairs
//
// After stripping those, the digit stream must have even length and contain
// only [0-9A-Fa-f]; anything else fails with an error wrapping
// ErrMalformedHex and no partial output.
//
// EncodeUint is a distinct mode: it renders a single integer as its bare
// uppercase hex representation with no per-byte zero padding
// (EncodeUint(12345678) == "BC614E", not "00BC614E").
//
// # Pretty Listings
//
// Pretty and PrettyInts render human-readable hex listings. The brackets
// encode the source's semantic type: <<0x41, 0x42>> for a byte/text buffer,
// [0x41, 0x42] for a list of small integers.
//
// All functions process input strictly left to right with constant working
// state per element, so arbitrarily long inputs stream without backtracking.
package hexcodec
