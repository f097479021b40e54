package term

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind represents term value kinds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindAtom // Symbolic tag: ok, error, undefined
	KindStr  // Packed text (Internal convention)
	KindList
	KindTuple // Fixed arity, preserved by conversion
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindAtom:
		return "atom"
	case KindStr:
		return "str"
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// Value represents a term value.
type Value struct {
	kind Kind

	// Scalar values (only one valid based on kind)
	boolVal  bool
	intVal   int64
	floatVal float64
	atomVal  string
	strVal   string

	// Container values
	listVal  []*Value
	tupleVal []*Value
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value. This is the Internal convention's
// absence-of-value sentinel.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Int creates an integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// Float creates a float value.
func Float(v float64) *Value {
	return &Value{kind: KindFloat, floatVal: v}
}

// Atom creates a symbolic tag value.
func Atom(name string) *Value {
	return &Value{kind: KindAtom, atomVal: name}
}

// Str creates a packed text value.
func Str(v string) *Value {
	return &Value{kind: KindStr, strVal: v}
}

// List creates a list value.
func List(values ...*Value) *Value {
	return &Value{kind: KindList, listVal: values}
}

// Tuple creates a fixed-arity tuple value.
func Tuple(values ...*Value) *Value {
	return &Value{kind: KindTuple, tupleVal: values}
}

// Charlist creates the External convention's representation of s:
// a list of integer code points.
func Charlist(s string) *Value {
	var codes []*Value
	for _, r := range s {
		codes = append(codes, Int(int64(r)))
	}
	return &Value{kind: KindList, listVal: codes}
}

// ============================================================
// Convention Sentinels
// ============================================================

// externalNullAtom is the atom name the External convention uses for
// absence-of-value.
const externalNullAtom = "undefined"

// ExternalNull returns the External convention's absence sentinel,
// the atom 'undefined'.
func ExternalNull() *Value {
	return Atom(externalNullAtom)
}

// InternalNull returns the Internal convention's absence sentinel.
func InternalNull() *Value {
	return Null()
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull returns true if this is a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v == nil {
		return false, fmt.Errorf("term: nil value")
	}
	if v.kind != KindBool {
		return false, fmt.Errorf("term: expected bool, got %s", v.kind)
	}
	return v.boolVal, nil
}

// AsInt returns the integer value.
func (v *Value) AsInt() (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("term: nil value")
	}
	if v.kind != KindInt {
		return 0, fmt.Errorf("term: expected int, got %s", v.kind)
	}
	return v.intVal, nil
}

// AsFloat returns the float value.
func (v *Value) AsFloat() (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("term: nil value")
	}
	if v.kind != KindFloat {
		return 0, fmt.Errorf("term: expected float, got %s", v.kind)
	}
	return v.floatVal, nil
}

// AsAtom returns the atom name.
func (v *Value) AsAtom() (string, error) {
	if v == nil {
		return "", fmt.Errorf("term: nil value")
	}
	if v.kind != KindAtom {
		return "", fmt.Errorf("term: expected atom, got %s", v.kind)
	}
	return v.atomVal, nil
}

// AsStr returns the packed text value.
func (v *Value) AsStr() (string, error) {
	if v == nil {
		return "", fmt.Errorf("term: nil value")
	}
	if v.kind != KindStr {
		return "", fmt.Errorf("term: expected str, got %s", v.kind)
	}
	return v.strVal, nil
}

// AsList returns the list elements.
func (v *Value) AsList() ([]*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("term: nil value")
	}
	if v.kind != KindList {
		return nil, fmt.Errorf("term: expected list, got %s", v.kind)
	}
	return v.listVal, nil
}

// AsTuple returns the tuple elements.
func (v *Value) AsTuple() ([]*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("term: nil value")
	}
	if v.kind != KindTuple {
		return nil, fmt.Errorf("term: expected tuple, got %s", v.kind)
	}
	return v.tupleVal, nil
}

// Len returns the length of a list or the arity of a tuple.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindList:
		return len(v.listVal)
	case KindTuple:
		return len(v.tupleVal)
	default:
		return 0
	}
}

// Index returns the i-th element of a list or tuple.
func (v *Value) Index(i int) (*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("term: nil value")
	}
	var elems []*Value
	switch v.kind {
	case KindList:
		elems = v.listVal
	case KindTuple:
		elems = v.tupleVal
	default:
		return nil, fmt.Errorf("term: not a list or tuple")
	}
	if i < 0 || i >= len(elems) {
		return nil, fmt.Errorf("term: index %d out of bounds (len=%d)", i, len(elems))
	}
	return elems[i], nil
}

// IsScalar returns true for null, bool, int, float, and atom values.
func (v *Value) IsScalar() bool {
	if v == nil {
		return true
	}
	switch v.kind {
	case KindNull, KindBool, KindInt, KindFloat, KindAtom:
		return true
	default:
		return false
	}
}

// ============================================================
// Equality
// ============================================================

// Equal reports deep structural equality of two values.
// nil and Null() compare equal.
func Equal(a, b *Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNull:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindInt:
		return a.intVal == b.intVal
	case KindFloat:
		return a.floatVal == b.floatVal
	case KindAtom:
		return a.atomVal == b.atomVal
	case KindStr:
		return a.strVal == b.strVal
	case KindList:
		return equalSlices(a.listVal, b.listVal)
	case KindTuple:
		return equalSlices(a.tupleVal, b.tupleVal)
	default:
		return false
	}
}

func equalSlices(a, b []*Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// ============================================================
// Debug Rendering
// ============================================================

// String returns an Erlang-flavored rendering: atoms bare, text quoted,
// lists in [], tuples in {}.
func (v *Value) String() string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v *Value) {
	if v == nil {
		b.WriteString("nil")
		return
	}

	switch v.kind {
	case KindNull:
		b.WriteString("nil")
	case KindBool:
		if v.boolVal {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindInt:
		b.WriteString(strconv.FormatInt(v.intVal, 10))
	case KindFloat:
		b.WriteString(strconv.FormatFloat(v.floatVal, 'g', -1, 64))
	case KindAtom:
		b.WriteString(v.atomVal)
	case KindStr:
		b.WriteString(strconv.Quote(v.strVal))
	case KindList:
		b.WriteByte('[')
		writeElems(b, v.listVal)
		b.WriteByte(']')
	case KindTuple:
		b.WriteByte('{')
		writeElems(b, v.tupleVal)
		b.WriteByte('}')
	default:
		b.WriteString("nil")
	}
}

func writeElems(b *strings.Builder, elems []*Value) {
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		writeValue(b, e)
	}
}
