package jsonvalue

import (
	"fmt"
	"strings"
)

const indentUnit = "  "

// Pretty renders the value with two-space indentation and one element per
// line. Non-ASCII characters are written as-is.
func (v *Value) Pretty() string {
	var sb strings.Builder
	v.write(&sb, true, 0)
	return sb.String()
}

// Compact renders the value without insignificant whitespace.
func (v *Value) Compact() string {
	var sb strings.Builder
	v.write(&sb, false, 0)
	return sb.String()
}

func (v *Value) write(sb *strings.Builder, pretty bool, depth int) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		if v.boolean {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNumber:
		sb.WriteString(v.text)
	case KindString:
		writeString(sb, v.text)
	case KindArray:
		if len(v.items) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				sb.WriteByte(',')
			}
			newline(sb, pretty, depth+1)
			item.write(sb, pretty, depth+1)
		}
		newline(sb, pretty, depth)
		sb.WriteByte(']')
	case KindObject:
		if len(v.members) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				sb.WriteByte(',')
			}
			newline(sb, pretty, depth+1)
			writeString(sb, m.Key)
			sb.WriteByte(':')
			if pretty {
				sb.WriteByte(' ')
			}
			m.Value.write(sb, pretty, depth+1)
		}
		newline(sb, pretty, depth)
		sb.WriteByte('}')
	}
}

func newline(sb *strings.Builder, pretty bool, depth int) {
	if !pretty {
		return
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(indentUnit, depth))
}

func writeString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(sb, `\u%04x`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
}
