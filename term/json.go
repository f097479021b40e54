package term

import (
	"encoding/json"
	"fmt"
	"math"
)

// JSON interop for piping terms through text tools.
//
// Scalars, text, and lists map onto their JSON counterparts directly.
// The two shapes JSON lacks use marker objects:
//
//	Atom("ok")          {"_atom": "ok"}
//	Tuple(a, b)         {"_tuple": [a, b]}
//
// Marker objects are the only JSON objects accepted on decode; this is
// interop glue, not a general JSON data model.

// ToJSON encodes a value as JSON bytes.
func ToJSON(v *Value) ([]byte, error) {
	return json.Marshal(toJSONValue(v))
}

// FromJSON parses JSON bytes into a value.
func FromJSON(data []byte) (*Value, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("term: parse json: %w", err)
	}
	return fromJSONValue(raw)
}

func toJSONValue(v *Value) any {
	if v == nil {
		return nil
	}

	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.boolVal
	case KindInt:
		return v.intVal
	case KindFloat:
		return v.floatVal
	case KindAtom:
		return map[string]any{"_atom": v.atomVal}
	case KindStr:
		return v.strVal
	case KindList:
		items := make([]any, len(v.listVal))
		for i, e := range v.listVal {
			items[i] = toJSONValue(e)
		}
		return items
	case KindTuple:
		items := make([]any, len(v.tupleVal))
		for i, e := range v.tupleVal {
			items[i] = toJSONValue(e)
		}
		return map[string]any{"_tuple": items}
	default:
		return nil
	}
}

func fromJSONValue(raw any) (*Value, error) {
	switch x := raw.(type) {
	case nil:
		return Null(), nil

	case bool:
		return Bool(x), nil

	case float64:
		// encoding/json decodes every number as float64; keep integral
		// values as ints so charlists survive the round trip.
		if x == math.Trunc(x) && !math.IsInf(x, 0) && math.Abs(x) <= math.MaxInt64 {
			return Int(int64(x)), nil
		}
		return Float(x), nil

	case string:
		return Str(x), nil

	case []any:
		elems := make([]*Value, len(x))
		for i, item := range x {
			e, err := fromJSONValue(item)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return List(elems...), nil

	case map[string]any:
		if name, ok := x["_atom"].(string); ok && len(x) == 1 {
			return Atom(name), nil
		}
		if items, ok := x["_tuple"].([]any); ok && len(x) == 1 {
			elems := make([]*Value, len(items))
			for i, item := range items {
				e, err := fromJSONValue(item)
				if err != nil {
					return nil, err
				}
				elems[i] = e
			}
			return Tuple(elems...), nil
		}
		return nil, fmt.Errorf("term: json object is not an _atom or _tuple marker")

	default:
		return nil, fmt.Errorf("term: unsupported json value %T", raw)
	}
}
