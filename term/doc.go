// Package term implements a tagged-union term model and a bidirectional
// converter between two term conventions:
//
//   - External: strings are lists of character codes, absence-of-value is
//     the atom 'undefined'.
//   - Internal: strings are packed text, absence-of-value is nil.
//
// # Data Model
//
// Scalars: nil, bool, int, float, atom
// Text: str (packed, Internal convention)
// Containers: list (variable length), tuple (fixed arity)
//
// A tagged pair is a 2-tuple whose first element is a scalar tag, e.g.
// {ok, Payload}. It has no separate kind; the converters recognize it
// structurally.
//
// # Conversion
//
// ToInternal and ToExternal are total functions: values outside the
// recognized shapes pass through unchanged, and no error is ever returned.
//
// A list whose elements are all integers (including the empty list) is
// reinterpreted as text by ToInternal. This is deliberate: systems on the
// External convention cannot distinguish a character-code list from a list
// of small integers, so the converter normalizes every string-like list
// without caller annotations. The price is that an actually-intended list
// of integers does not round-trip as a list:
//
//	ToInternal(List(Int(110), Int(111))) == Str("no")
//	ToExternal(Str("no"))                == List(Int(110), Int(111))
//
// Everything built from scalars, tuples, tagged pairs, and packed text
// round-trips exactly.
package term
