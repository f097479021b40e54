package term

import "strings"

// ToInternal converts a value from the External convention to the Internal
// convention. It is total: shapes it does not recognize are returned
// unchanged. Recursion depth is bounded by the nesting depth of the input;
// callers feeding adversarially deep structures should bound that depth
// themselves.
func ToInternal(v *Value) *Value {
	if v == nil {
		return Null()
	}

	switch v.kind {
	case KindAtom:
		if v.atomVal == externalNullAtom {
			return Null()
		}
		return v

	case KindList:
		// A list with no non-integer elements (the empty list included)
		// is External text; pack it.
		if countNonInts(v.listVal) == 0 {
			return Str(packCharlist(v.listVal))
		}
		elems := make([]*Value, len(v.listVal))
		for i, e := range v.listVal {
			elems[i] = ToInternal(e)
		}
		return List(elems...)

	case KindTuple:
		if len(v.tupleVal) == 2 {
			head, payload := v.tupleVal[0], v.tupleVal[1]
			if head.Kind() == KindAtom && head.atomVal == externalNullAtom {
				return Tuple(Null(), ToInternal(payload))
			}
			if head.IsScalar() {
				return Tuple(head, ToInternal(payload))
			}
		}
		// Tuples of any other arity convert element-wise; the text
		// reinterpretation never applies to tuples.
		elems := make([]*Value, len(v.tupleVal))
		for i, e := range v.tupleVal {
			elems[i] = ToInternal(e)
		}
		return Tuple(elems...)

	default:
		return v
	}
}

// ToExternal converts a value from the Internal convention to the External
// convention. It mirrors ToInternal: packed text expands to a list of
// integer code points, the null sentinel becomes the atom 'undefined', and
// unrecognized shapes pass through unchanged.
func ToExternal(v *Value) *Value {
	if v == nil {
		return ExternalNull()
	}

	switch v.kind {
	case KindNull:
		return ExternalNull()

	case KindStr:
		return Charlist(v.strVal)

	case KindList:
		elems := make([]*Value, len(v.listVal))
		for i, e := range v.listVal {
			elems[i] = ToExternal(e)
		}
		return List(elems...)

	case KindTuple:
		if len(v.tupleVal) == 2 {
			head, payload := v.tupleVal[0], v.tupleVal[1]
			if head.IsNull() {
				return Tuple(ExternalNull(), ToExternal(payload))
			}
			if head.IsScalar() {
				return Tuple(head, ToExternal(payload))
			}
		}
		elems := make([]*Value, len(v.tupleVal))
		for i, e := range v.tupleVal {
			elems[i] = ToExternal(e)
		}
		return Tuple(elems...)

	default:
		return v
	}
}

// countNonInts returns the number of elements that are not plain integers.
func countNonInts(elems []*Value) int {
	n := 0
	for _, e := range elems {
		if e.Kind() != KindInt {
			n++
		}
	}
	return n
}

// packCharlist packs a list of integer code points into text.
// Code points outside the Unicode range degrade to U+FFFD rather than
// failing; the converter has no error path.
func packCharlist(codes []*Value) string {
	var b strings.Builder
	b.Grow(len(codes))
	for _, c := range codes {
		b.WriteRune(rune(c.intVal))
	}
	return b.String()
}
