package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type Kind int

const (
	KindAbsent Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
)

// Value is a scalar taken from a provider response. Objects and arrays are kept as KindAbsent.
type Value struct {
	kind Kind
	str  string
	num  float64
	lit  string
	b    bool
}

func StringValue(s string) Value  { return Value{kind: KindString, str: s} }
func NumberValue(n float64) Value {
	return Value{kind: KindNumber, num: n, lit: strconv.FormatFloat(n, 'f', -1, 64)}
}
func BoolValue(b bool) Value      { return Value{kind: KindBool, b: b} }
func NullValue() Value            { return Value{kind: KindNull} }

func (v Value) Kind() Kind {
	return v.kind
}

// Text returns the value as text when it is a non-empty string or a non-zero number.
// Numbers keep the literal they were decoded from, so large ids survive intact.
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindString:
		s := strings.TrimSpace(v.str)
		return s, s != ""
	case KindNumber:
		if v.num == 0 {
			return "", false
		}
		return v.lit, true
	default:
		return "", false
	}
}

// Number returns a positive number, parsing numeric strings.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, v.num > 0
	case KindString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil || n <= 0 {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, v.b
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		*v = Value{}
		return nil
	}

	switch typed := raw.(type) {
	case nil:
		*v = NullValue()
	case string:
		*v = StringValue(typed)
	case json.Number:
		n, err := typed.Float64()
		if err != nil {
			*v = Value{}
			return nil
		}
		*v = Value{kind: KindNumber, num: n, lit: typed.String()}
	case bool:
		*v = BoolValue(typed)
	default:
		*v = Value{}
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return []byte(v.lit), nil
	case KindBool:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}

// RawJob is one job record as returned by the search provider. Field names vary by provider.
type RawJob map[string]Value

func (r RawJob) Get(key string) Value {
	if r == nil {
		return Value{}
	}
	return r[key]
}
