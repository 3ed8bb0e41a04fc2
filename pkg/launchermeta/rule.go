package launchermeta

import (
	"fmt"
	"regexp"
	"runtime"
)

// RuleAction says whether a matching rule includes or excludes the element
// it guards.
type RuleAction string

const (
	ActionAllow RuleAction = "allow"
	ActionDeny  RuleAction = "deny"
)

// Rule is one allow/deny criterion. A rule with neither OS nor feature
// criteria matches every context.
type Rule struct {
	Action   RuleAction      `json:"action"`
	OS       *OSRule         `json:"os,omitempty"`
	Features map[string]bool `json:"features,omitempty"`
}

// OSRule matches the host platform. Unset fields are not tested; the version
// field is a regular expression matched against the reported OS version.
type OSRule struct {
	Name    *string `json:"name,omitempty"`
	Version *string `json:"version,omitempty"`
	Arch    *string `json:"arch,omitempty"`
}

// Context is the platform/feature state rules are evaluated against. Build
// one per launch attempt and treat it as read-only.
type Context struct {
	OSName    string
	OSArch    string
	OSVersion string
	Features  map[string]bool
}

// CurrentContext describes the running platform in the manifest's
// vocabulary (darwin reports as osx, amd64 as x86_64). The OS version is
// left empty; callers that need version-gated rules fill it in themselves.
func CurrentContext() Context {
	name := runtime.GOOS
	if name == "darwin" {
		name = "osx"
	}
	arch := runtime.GOARCH
	switch arch {
	case "386":
		arch = "x86"
	case "amd64":
		arch = "x86_64"
	}
	return Context{OSName: name, OSArch: arch, Features: map[string]bool{}}
}

// Matches reports whether every criterion the rule specifies holds for ctx.
// Feature flags absent from ctx count as false.
func (r Rule) Matches(ctx Context) bool {
	if r.OS != nil {
		if r.OS.Name != nil && *r.OS.Name != ctx.OSName {
			return false
		}
		if r.OS.Arch != nil && *r.OS.Arch != ctx.OSArch {
			return false
		}
		if r.OS.Version != nil && !versionMatches(*r.OS.Version, ctx.OSVersion) {
			return false
		}
	}
	for name, want := range r.Features {
		if ctx.Features[name] != want {
			return false
		}
	}
	return true
}

func versionMatches(pattern, version string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		// evaluation never fails; an unparseable pattern matches nothing
		return false
	}
	return re.MatchString(version)
}

// Evaluate runs the rule list against ctx and reports whether the guarded
// element is included. No rules means unconditional inclusion. Otherwise the
// verdict starts at deny and every matching rule overwrites it with its own
// action, so the last matching rule wins.
func Evaluate(rules []Rule, ctx Context) bool {
	if len(rules) == 0 {
		return true
	}
	allowed := false
	for _, r := range rules {
		if r.Matches(ctx) {
			allowed = r.Action == ActionAllow
		}
	}
	return allowed
}

func decodeRules(v rawValue, path string) ([]Rule, error) {
	if v.kind != rawArray {
		return nil, fmt.Errorf("%s: %w: expected array of rules, got %s", path, ErrTypeMismatch, v.kind)
	}
	rules := make([]Rule, 0, len(v.arr))
	for i, elem := range v.arr {
		r, err := decodeRule(elem, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

func decodeRule(v rawValue, path string) (Rule, error) {
	d, err := newObjDecoder(v, path)
	if err != nil {
		return Rule{}, err
	}
	var rule Rule
	rule.Action = RuleAction(d.str("action"))
	if av, ok := d.lookup("os"); ok {
		os, err := decodeOSRule(av, d.fieldPath("os"))
		if err != nil {
			d.fail(err)
		}
		rule.OS = os
	}
	if fv, ok := d.lookup("features"); ok {
		features, err := decodeFeatures(fv, d.fieldPath("features"))
		if err != nil {
			d.fail(err)
		}
		rule.Features = features
	}
	if err := d.finish(); err != nil {
		return Rule{}, err
	}
	if rule.Action != ActionAllow && rule.Action != ActionDeny {
		return Rule{}, fmt.Errorf("%s: %w: action %q", path, ErrInvalidEnumValue, rule.Action)
	}
	return rule, nil
}

func decodeOSRule(v rawValue, path string) (*OSRule, error) {
	d, err := newObjDecoder(v, path)
	if err != nil {
		return nil, err
	}
	os := &OSRule{
		Name:    d.optStr("name"),
		Version: d.optStr("version"),
		Arch:    d.optStr("arch"),
	}
	if err := d.finish(); err != nil {
		return nil, err
	}
	return os, nil
}

func decodeFeatures(v rawValue, path string) (map[string]bool, error) {
	if v.kind != rawObject {
		return nil, fmt.Errorf("%s: %w: expected object, got %s", path, ErrTypeMismatch, v.kind)
	}
	features := make(map[string]bool, len(v.obj))
	for _, m := range v.obj {
		if _, dup := features[m.key]; dup {
			return nil, fmt.Errorf("%s: %w: %q", path, ErrDuplicateField, m.key)
		}
		b, err := asBool(m.val, path+"."+m.key)
		if err != nil {
			return nil, err
		}
		features[m.key] = b
	}
	return features, nil
}
