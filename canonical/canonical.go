package canonical

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// ErrUnsupportedType is returned when a value cannot be represented in the
// canonical encoding. Supported values are nil, bool, string, the integer and
// float kinds, json.Number, map[string]any and []any, nested arbitrarily.
var ErrUnsupportedType = fmt.Errorf("canonical: unsupported value type")

// maxExactInt is the largest float64 magnitude rendered as an integer
// literal. Beyond 2^53 float64 loses integer precision, so larger integral
// floats keep the float formatting.
const maxExactInt = 1 << 53

// Canonicalize encodes the entries mapping as byte-stable compact JSON.
//
// Contract:
//   - Mapping keys are sorted lexicographically at every nesting level
//   - Sequences preserve element order
//   - Output contains no insignificant whitespace
//   - Pure: the input is never mutated
//
// Numeric rule (fixed, platform independent): integers render in base 10;
// a float that is mathematically integral with magnitude <= 2^53 renders as
// an integer literal, so 25 and 25.0 canonicalize identically; any other
// finite float uses strconv.FormatFloat(v, 'g', -1, 64); NaN and infinities
// are rejected with ErrUnsupportedType.
func Canonicalize(entries map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := appendValue(&buf, entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeValue canonicalizes a single value rather than a whole mapping. It
// follows the same rules as Canonicalize.
func EncodeValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := appendValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendValue(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case string:
		appendString(buf, val)
	case int:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
	case int8:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
	case int16:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
	case int32:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
	case int64:
		buf.WriteString(strconv.FormatInt(val, 10))
	case uint:
		buf.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint8:
		buf.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint16:
		buf.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint32:
		buf.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint64:
		buf.WriteString(strconv.FormatUint(val, 10))
	case float32:
		return appendFloat(buf, float64(val))
	case float64:
		return appendFloat(buf, val)
	case json.Number:
		return appendNumber(buf, val)
	case map[string]any:
		return appendMapping(buf, val)
	case []any:
		return appendSequence(buf, val)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	return nil
}

func appendFloat(buf *bytes.Buffer, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: non-finite float %v", ErrUnsupportedType, v)
	}
	if v == math.Trunc(v) && math.Abs(v) <= maxExactInt {
		buf.WriteString(strconv.FormatInt(int64(v), 10))
		return nil
	}
	buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	return nil
}

// appendNumber normalizes a json.Number through the fixed numeric rule
// instead of trusting its textual form, so "25", "25.0" and 25.0 all
// canonicalize to the same bytes.
func appendNumber(buf *bytes.Buffer, n json.Number) error {
	if i, err := n.Int64(); err == nil {
		buf.WriteString(strconv.FormatInt(i, 10))
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("%w: malformed number %q", ErrUnsupportedType, n.String())
	}
	return appendFloat(buf, f)
}

func appendMapping(buf *bytes.Buffer, m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		appendString(buf, k)
		buf.WriteByte(':')
		if err := appendValue(buf, m[k]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func appendSequence(buf *bytes.Buffer, s []any) error {
	buf.WriteByte('[')
	for i, el := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := appendValue(buf, el); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

const hexDigits = "0123456789abcdef"

// appendString writes a JSON string escaping only what the grammar requires:
// quote, backslash and control characters. UTF-8 passes through unescaped and
// there is no HTML-safe escaping, keeping the byte form identical across
// encoder implementations.
func appendString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			if r < 0x20 {
				buf.WriteString(`\u00`)
				buf.WriteByte(hexDigits[byte(r)>>4])
				buf.WriteByte(hexDigits[byte(r)&0xf])
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}
