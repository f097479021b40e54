package term

import (
	"testing"
)

// ============================================================
// Constructor / Accessor Tests
// ============================================================

func TestValue_Kinds(t *testing.T) {
	tests := []struct {
		name     string
		value    *Value
		expected Kind
	}{
		{"null", Null(), KindNull},
		{"bool", Bool(true), KindBool},
		{"int", Int(42), KindInt},
		{"float", Float(3.14), KindFloat},
		{"atom", Atom("ok"), KindAtom},
		{"str", Str("nodes"), KindStr},
		{"list", List(Int(1), Int(2)), KindList},
		{"tuple", Tuple(Atom("ok"), Int(1)), KindTuple},
		{"charlist", Charlist("ab"), KindList},
		{"nil pointer", nil, KindNull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.Kind() != tt.expected {
				t.Errorf("Expected kind %s, got %s", tt.expected, tt.value.Kind())
			}
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	if v, err := Int(42).AsInt(); err != nil || v != 42 {
		t.Errorf("AsInt: got %d, %v", v, err)
	}
	if v, err := Atom("ok").AsAtom(); err != nil || v != "ok" {
		t.Errorf("AsAtom: got %q, %v", v, err)
	}
	if v, err := Str("nodes").AsStr(); err != nil || v != "nodes" {
		t.Errorf("AsStr: got %q, %v", v, err)
	}
	if v, err := Bool(true).AsBool(); err != nil || !v {
		t.Errorf("AsBool: got %v, %v", v, err)
	}
	if v, err := Float(1.5).AsFloat(); err != nil || v != 1.5 {
		t.Errorf("AsFloat: got %v, %v", v, err)
	}

	// Kind mismatches must error.
	if _, err := Int(1).AsStr(); err == nil {
		t.Error("AsStr on int should fail")
	}
	if _, err := Str("x").AsList(); err == nil {
		t.Error("AsList on str should fail")
	}
	var nilVal *Value
	if _, err := nilVal.AsInt(); err == nil {
		t.Error("AsInt on nil should fail")
	}
}

func TestValue_LenAndIndex(t *testing.T) {
	l := List(Int(1), Int(2), Int(3))
	if l.Len() != 3 {
		t.Fatalf("Expected len 3, got %d", l.Len())
	}
	e, err := l.Index(1)
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if !Equal(e, Int(2)) {
		t.Errorf("Expected 2, got %s", e)
	}
	if _, err := l.Index(3); err == nil {
		t.Error("Index out of bounds should fail")
	}

	tup := Tuple(Atom("a"), Atom("b"))
	if tup.Len() != 2 {
		t.Errorf("Expected arity 2, got %d", tup.Len())
	}
	if Int(7).Len() != 0 {
		t.Errorf("Scalar Len should be 0")
	}
}

func TestCharlist(t *testing.T) {
	cl := Charlist("no")
	expected := List(Int(110), Int(111))
	if !Equal(cl, expected) {
		t.Errorf("Expected %s, got %s", expected, cl)
	}
	if Charlist("").Len() != 0 {
		t.Error("Empty charlist should have no elements")
	}
}

func TestSentinels(t *testing.T) {
	if !Equal(ExternalNull(), Atom("undefined")) {
		t.Error("External sentinel should be the atom 'undefined'")
	}
	if !InternalNull().IsNull() {
		t.Error("Internal sentinel should be null")
	}
	if Equal(ExternalNull(), InternalNull()) {
		t.Error("The sentinels are distinct literals")
	}
}

// ============================================================
// Equality Tests
// ============================================================

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Value
		expected bool
	}{
		{"nulls", Null(), Null(), true},
		{"nil vs null", nil, Null(), true},
		{"ints", Int(5), Int(5), true},
		{"int mismatch", Int(5), Int(6), false},
		{"atoms", Atom("ok"), Atom("ok"), true},
		{"atom vs str", Atom("ok"), Str("ok"), false},
		{"int vs float", Int(1), Float(1), false},
		{"lists", List(Int(1), Int(2)), List(Int(1), Int(2)), true},
		{"list length", List(Int(1)), List(Int(1), Int(2)), false},
		{"list vs tuple", List(Int(1)), Tuple(Int(1)), false},
		{"empty list and charlist", List(), Charlist(""), true},
		{
			"nested",
			Tuple(Atom("ok"), List(Str("a"), Null())),
			Tuple(Atom("ok"), List(Str("a"), Null())),
			true,
		},
		{
			"nested mismatch",
			Tuple(Atom("ok"), List(Str("a"))),
			Tuple(Atom("ok"), List(Str("b"))),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Equal(tt.a, tt.b) != tt.expected {
				t.Errorf("Equal(%s, %s): expected %v", tt.a, tt.b, tt.expected)
			}
		})
	}
}

// ============================================================
// Rendering Tests
// ============================================================

func TestValue_String(t *testing.T) {
	tests := []struct {
		value    *Value
		expected string
	}{
		{Null(), "nil"},
		{Bool(false), "false"},
		{Int(-7), "-7"},
		{Atom("undefined"), "undefined"},
		{Str("hi"), `"hi"`},
		{List(Int(1), Int(2)), "[1, 2]"},
		{Tuple(Atom("ok"), Str("nodes")), `{ok, "nodes"}`},
		{List(), "[]"},
		{Tuple(), "{}"},
		{List(Tuple(Atom("a"), Null())), "[{a, nil}]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.value.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
