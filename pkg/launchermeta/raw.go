package launchermeta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// The manifest format is polymorphic in places (string-or-array,
// string-or-object) and the decoder must reject duplicate keys, which the
// stdlib unmarshaller silently collapses. So the input is first read into a
// small generic tree via the token stream, and the typed decoders dispatch on
// each node's shape manually.

type rawKind uint8

const (
	rawNull rawKind = iota
	rawBool
	rawNumber
	rawString
	rawArray
	rawObject
)

func (k rawKind) String() string {
	switch k {
	case rawNull:
		return "null"
	case rawBool:
		return "bool"
	case rawNumber:
		return "number"
	case rawString:
		return "string"
	case rawArray:
		return "array"
	case rawObject:
		return "object"
	}
	return "invalid"
}

type rawValue struct {
	kind rawKind
	b    bool
	num  json.Number
	str  string
	arr  []rawValue
	obj  []rawMember
}

// rawMember keeps object members in wire order so error messages point at
// the first offending key, not a map-iteration-random one.
type rawMember struct {
	key string
	val rawValue
}

func parseRaw(data []byte) (rawValue, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := readValue(dec)
	if err != nil {
		return rawValue{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return rawValue{}, fmt.Errorf("%w: trailing data after document", ErrMalformedInput)
	}
	return v, nil
}

func readValue(dec *json.Decoder) (rawValue, error) {
	tok, err := dec.Token()
	if err != nil {
		return rawValue{}, err
	}
	return readFrom(dec, tok)
}

func readFrom(dec *json.Decoder, tok json.Token) (rawValue, error) {
	switch t := tok.(type) {
	case nil:
		return rawValue{kind: rawNull}, nil
	case bool:
		return rawValue{kind: rawBool, b: t}, nil
	case json.Number:
		return rawValue{kind: rawNumber, num: t}, nil
	case string:
		return rawValue{kind: rawString, str: t}, nil
	case json.Delim:
		switch t {
		case '[':
			var arr []rawValue
			for dec.More() {
				elem, err := readValue(dec)
				if err != nil {
					return rawValue{}, err
				}
				arr = append(arr, elem)
			}
			if _, err := dec.Token(); err != nil {
				return rawValue{}, err
			}
			return rawValue{kind: rawArray, arr: arr}, nil
		case '{':
			var obj []rawMember
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return rawValue{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return rawValue{}, fmt.Errorf("unexpected object key %v", keyTok)
				}
				val, err := readValue(dec)
				if err != nil {
					return rawValue{}, err
				}
				obj = append(obj, rawMember{key: key, val: val})
			}
			if _, err := dec.Token(); err != nil {
				return rawValue{}, err
			}
			return rawValue{kind: rawObject, obj: obj}, nil
		}
	}
	return rawValue{}, fmt.Errorf("unexpected token %v", tok)
}

// objDecoder walks one JSON object, tracking which keys the caller consumed.
// The first failure sticks; finish reports it, or else the first key the
// schema never asked for.
type objDecoder struct {
	path string
	obj  []rawMember
	used map[string]bool
	err  error
}

func newObjDecoder(v rawValue, path string) (*objDecoder, error) {
	if v.kind != rawObject {
		return nil, fmt.Errorf("%s: %w: expected object, got %s", path, ErrTypeMismatch, v.kind)
	}
	seen := make(map[string]bool, len(v.obj))
	for _, m := range v.obj {
		if seen[m.key] {
			return nil, fmt.Errorf("%s: %w: %q", path, ErrDuplicateField, m.key)
		}
		seen[m.key] = true
	}
	return &objDecoder{path: path, obj: v.obj, used: make(map[string]bool, len(v.obj))}, nil
}

func (d *objDecoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *objDecoder) fieldPath(key string) string {
	if d.path == "" {
		return key
	}
	return d.path + "." + key
}

func (d *objDecoder) lookup(key string) (rawValue, bool) {
	d.used[key] = true
	for _, m := range d.obj {
		if m.key == key {
			return m.val, true
		}
	}
	return rawValue{}, false
}

func (d *objDecoder) require(key string) (rawValue, bool) {
	v, ok := d.lookup(key)
	if !ok {
		d.fail(fmt.Errorf("%s: %w: %q", d.path, ErrMissingField, key))
	}
	return v, ok
}

func (d *objDecoder) str(key string) string {
	v, ok := d.require(key)
	if !ok {
		return ""
	}
	s, err := asString(v, d.fieldPath(key))
	if err != nil {
		d.fail(err)
	}
	return s
}

func (d *objDecoder) optStr(key string) *string {
	v, ok := d.lookup(key)
	if !ok || v.kind == rawNull {
		return nil
	}
	s, err := asString(v, d.fieldPath(key))
	if err != nil {
		d.fail(err)
		return nil
	}
	return &s
}

func (d *objDecoder) uint(key string) uint64 {
	v, ok := d.require(key)
	if !ok {
		return 0
	}
	n, err := asUint(v, d.fieldPath(key))
	if err != nil {
		d.fail(err)
	}
	return n
}

func (d *objDecoder) optUint(key string) *uint64 {
	v, ok := d.lookup(key)
	if !ok || v.kind == rawNull {
		return nil
	}
	n, err := asUint(v, d.fieldPath(key))
	if err != nil {
		d.fail(err)
		return nil
	}
	return &n
}

// finish must be the last call on the decoder; leftover keys are unknown
// fields and abort the decode.
func (d *objDecoder) finish() error {
	if d.err != nil {
		return d.err
	}
	for _, m := range d.obj {
		if !d.used[m.key] {
			return fmt.Errorf("%s: %w: %q", d.path, ErrUnknownField, m.key)
		}
	}
	return nil
}

func asString(v rawValue, path string) (string, error) {
	if v.kind != rawString {
		return "", fmt.Errorf("%s: %w: expected string, got %s", path, ErrTypeMismatch, v.kind)
	}
	return v.str, nil
}

func asUint(v rawValue, path string) (uint64, error) {
	if v.kind != rawNumber {
		return 0, fmt.Errorf("%s: %w: expected unsigned integer, got %s", path, ErrTypeMismatch, v.kind)
	}
	n, err := strconv.ParseUint(v.num.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: expected unsigned integer, got %s", path, ErrTypeMismatch, v.num)
	}
	return n, nil
}

func asBool(v rawValue, path string) (bool, error) {
	if v.kind != rawBool {
		return false, fmt.Errorf("%s: %w: expected bool, got %s", path, ErrTypeMismatch, v.kind)
	}
	return v.b, nil
}
