package jsonvalue

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when input is not a well-formed JSON document.
var ErrInvalidJSON = errors.New("invalid JSON")

type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value *Value
}

// Value is a node of a JSON document. Numbers keep their source text.
type Value struct {
	kind    Kind
	boolean bool
	text    string
	items   []*Value
	members []Member
}

func Null() *Value { return &Value{kind: KindNull} }
func Bool(b bool) *Value { return &Value{kind: KindBool, boolean: b} }
func Number(text string) *Value { return &Value{kind: KindNumber, text: text} }
func String(s string) *Value { return &Value{kind: KindString, text: s} }
func Array(items ...*Value) *Value { return &Value{kind: KindArray, items: items} }

// Object builds an object from members. A repeated key keeps its first
// position and takes the last value.
func Object(members ...Member) *Value {
	v := &Value{kind: KindObject}
	index := make(map[string]int, len(members))
	for _, m := range members {
		if i, ok := index[m.Key]; ok {
			v.members[i].Value = m.Value
			continue
		}
		index[m.Key] = len(v.members)
		v.members = append(v.members, m)
	}
	return v
}

func (v *Value) Kind() Kind { return v.kind }
func (v *Value) BoolValue() bool { return v.boolean }
func (v *Value) Text() string { return v.text }
func (v *Value) Items() []*Value { return v.items }
func (v *Value) Members() []Member { return v.members }

// Get returns the value of an object member.
func (v *Value) Get(key string) (*Value, bool) {
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Parse validates data and builds the document tree.
func Parse(data []byte) (*Value, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrInvalidJSON)
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

// ParseString is Parse for string input.
func ParseString(s string) (*Value, error) {
	return Parse([]byte(s))
}

// Valid reports whether data is a well-formed JSON document.
func Valid(data []byte) bool {
	return utf8.Valid(data) && gjson.ValidBytes(data)
}

func fromResult(r gjson.Result) *Value {
	switch {
	case r.IsObject():
		var members []Member
		r.ForEach(func(key, value gjson.Result) bool {
			members = append(members, Member{Key: key.Str, Value: fromResult(value)})
			return true
		})
		return Object(members...)
	case r.IsArray():
		items := []*Value{}
		r.ForEach(func(_, value gjson.Result) bool {
			items = append(items, fromResult(value))
			return true
		})
		return Array(items...)
	}

	switch r.Type {
	case gjson.True:
		return Bool(true)
	case gjson.False:
		return Bool(false)
	case gjson.Number:
		return Number(r.Raw)
	case gjson.String:
		return String(r.Str)
	default:
		return Null()
	}
}
