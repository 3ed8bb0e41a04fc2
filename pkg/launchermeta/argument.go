package launchermeta

import (
	"encoding/json"
	"fmt"
)

// Argument is one entry of an argument list: the token values plus the rules
// gating their inclusion. A bare string on the wire becomes a single value
// with no rules, i.e. always included.
type Argument struct {
	Rules  []Rule
	Values []string
}

// Arguments holds the modern game/jvm argument lists. Order is significant:
// it is the final command-line order and survives filtering untouched.
type Arguments struct {
	Game []Argument `json:"game"`
	JVM  []Argument `json:"jvm"`
}

// MarshalJSON writes an unconditional single-value argument back as a bare
// string and everything else in the rules/value object form, so a decoded
// model re-encodes to an equivalent document.
func (a Argument) MarshalJSON() ([]byte, error) {
	if len(a.Rules) == 0 && len(a.Values) == 1 {
		return json.Marshal(a.Values[0])
	}
	rules := a.Rules
	if rules == nil {
		rules = []Rule{}
	}
	return json.Marshal(struct {
		Rules []Rule   `json:"rules"`
		Value []string `json:"value"`
	}{rules, a.Values})
}

// UnmarshalJSON accepts the same two shapes the strict decoder does; it lets
// an Argument participate in ordinary json.Unmarshal calls.
func (a *Argument) UnmarshalJSON(data []byte) error {
	v, err := parseRaw(data)
	if err != nil {
		return err
	}
	arg, err := decodeArgument(v, "argument")
	if err != nil {
		return err
	}
	*a = arg
	return nil
}

// decodeStringList normalizes the string-or-array-of-strings union into a
// slice, preserving order. Any other shape is a type mismatch.
func decodeStringList(v rawValue, path string) ([]string, error) {
	switch v.kind {
	case rawString:
		return []string{v.str}, nil
	case rawArray:
		out := make([]string, 0, len(v.arr))
		for i, elem := range v.arr {
			s, err := asString(elem, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%s: %w: expected string or array of strings, got %s", path, ErrTypeMismatch, v.kind)
}

func decodeArgument(v rawValue, path string) (Argument, error) {
	switch v.kind {
	case rawString:
		return Argument{Values: []string{v.str}}, nil
	case rawObject:
		d, err := newObjDecoder(v, path)
		if err != nil {
			return Argument{}, err
		}
		var arg Argument
		if rv, ok := d.require("rules"); ok {
			rules, err := decodeRules(rv, d.fieldPath("rules"))
			if err != nil {
				d.fail(err)
			}
			arg.Rules = rules
		}
		if vv, ok := d.require("value"); ok {
			values, err := decodeStringList(vv, d.fieldPath("value"))
			if err != nil {
				d.fail(err)
			}
			arg.Values = values
		}
		if err := d.finish(); err != nil {
			return Argument{}, err
		}
		return arg, nil
	}
	return Argument{}, fmt.Errorf("%s: %w: expected string or rules/value object, got %s", path, ErrTypeMismatch, v.kind)
}

func decodeArgumentList(v rawValue, path string) ([]Argument, error) {
	if v.kind != rawArray {
		return nil, fmt.Errorf("%s: %w: expected array, got %s", path, ErrTypeMismatch, v.kind)
	}
	args := make([]Argument, 0, len(v.arr))
	for i, elem := range v.arr {
		arg, err := decodeArgument(elem, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

func decodeArguments(v rawValue, path string) (*Arguments, error) {
	d, err := newObjDecoder(v, path)
	if err != nil {
		return nil, err
	}
	var args Arguments
	if gv, ok := d.require("game"); ok {
		game, err := decodeArgumentList(gv, d.fieldPath("game"))
		if err != nil {
			d.fail(err)
		}
		args.Game = game
	}
	if jv, ok := d.require("jvm"); ok {
		jvm, err := decodeArgumentList(jv, d.fieldPath("jvm"))
		if err != nil {
			d.fail(err)
		}
		args.JVM = jvm
	}
	if err := d.finish(); err != nil {
		return nil, err
	}
	return &args, nil
}
