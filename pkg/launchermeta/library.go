package launchermeta

import (
	"fmt"
	"strings"
)

// Artifact is a downloadable jar: repository-relative path, checksum, size
// and source URL.
type Artifact struct {
	Path string `json:"path"`
	SHA1 string `json:"sha1"`
	Size uint64 `json:"size"`
	URL  string `json:"url"`
}

// LibraryDownloads carries the primary artifact and any classified variants
// (the platform-specific native bundles live under classifier names).
type LibraryDownloads struct {
	Artifact    *Artifact           `json:"artifact,omitempty"`
	Classifiers map[string]Artifact `json:"classifiers,omitempty"`
}

// Natives maps an OS family to the classifier suffix of its native bundle.
type Natives struct {
	Linux   *string `json:"linux,omitempty"`
	OSX     *string `json:"osx,omitempty"`
	Windows *string `json:"windows,omitempty"`
}

// Extract holds extraction directives for native bundles, keyed by directive
// name ("exclude" in practice) with ordered path patterns. The patterns are
// passed through opaquely.
type Extract map[string][]string

// Library is one dependency of a version. Nil Rules means the library
// applies on every platform.
type Library struct {
	Downloads *LibraryDownloads `json:"downloads,omitempty"`
	Name      string            `json:"name"`
	Extract   Extract           `json:"extract,omitempty"`
	Natives   *Natives          `json:"natives,omitempty"`
	Rules     []Rule            `json:"rules,omitempty"`
}

// Coordinate is a parsed group:artifact:version[:classifier] library name.
type Coordinate struct {
	Group      string
	Artifact   string
	Version    string
	Classifier string
}

// ParseCoordinate splits a Maven-style library name.
func ParseCoordinate(name string) (Coordinate, error) {
	parts := strings.Split(name, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return Coordinate{}, fmt.Errorf("invalid library name %q", name)
	}
	c := Coordinate{Group: parts[0], Artifact: parts[1], Version: parts[2]}
	if len(parts) == 4 {
		c.Classifier = parts[3]
	}
	return c, nil
}

// AppliesTo reports whether the library's rules include it for ctx.
func (l *Library) AppliesTo(ctx Context) bool {
	return Evaluate(l.Rules, ctx)
}

// NativeArtifact looks up the native bundle the context's OS family needs:
// the natives map names a classifier, the classifier names an artifact.
// False means the library ships no natives for that platform.
func (l *Library) NativeArtifact(ctx Context) (Artifact, bool) {
	if l.Natives == nil || l.Downloads == nil {
		return Artifact{}, false
	}
	var classifier *string
	switch ctx.OSName {
	case "linux":
		classifier = l.Natives.Linux
	case "osx":
		classifier = l.Natives.OSX
	case "windows":
		classifier = l.Natives.Windows
	}
	if classifier == nil {
		return Artifact{}, false
	}
	artifact, ok := l.Downloads.Classifiers[*classifier]
	return artifact, ok
}

func decodeArtifact(v rawValue, path string) (Artifact, error) {
	d, err := newObjDecoder(v, path)
	if err != nil {
		return Artifact{}, err
	}
	artifact := Artifact{
		Path: d.str("path"),
		SHA1: d.str("sha1"),
		Size: d.uint("size"),
		URL:  d.str("url"),
	}
	if err := d.finish(); err != nil {
		return Artifact{}, err
	}
	return artifact, nil
}

func decodeLibraryDownloads(v rawValue, path string) (*LibraryDownloads, error) {
	d, err := newObjDecoder(v, path)
	if err != nil {
		return nil, err
	}
	var downloads LibraryDownloads
	if av, ok := d.lookup("artifact"); ok {
		artifact, err := decodeArtifact(av, d.fieldPath("artifact"))
		if err != nil {
			d.fail(err)
		}
		downloads.Artifact = &artifact
	}
	if cv, ok := d.lookup("classifiers"); ok {
		classifiers, err := decodeClassifiers(cv, d.fieldPath("classifiers"))
		if err != nil {
			d.fail(err)
		}
		downloads.Classifiers = classifiers
	}
	if err := d.finish(); err != nil {
		return nil, err
	}
	return &downloads, nil
}

func decodeClassifiers(v rawValue, path string) (map[string]Artifact, error) {
	if v.kind != rawObject {
		return nil, fmt.Errorf("%s: %w: expected object, got %s", path, ErrTypeMismatch, v.kind)
	}
	classifiers := make(map[string]Artifact, len(v.obj))
	for _, m := range v.obj {
		if _, dup := classifiers[m.key]; dup {
			return nil, fmt.Errorf("%s: %w: %q", path, ErrDuplicateField, m.key)
		}
		artifact, err := decodeArtifact(m.val, path+"."+m.key)
		if err != nil {
			return nil, err
		}
		classifiers[m.key] = artifact
	}
	return classifiers, nil
}

func decodeNatives(v rawValue, path string) (*Natives, error) {
	d, err := newObjDecoder(v, path)
	if err != nil {
		return nil, err
	}
	natives := &Natives{
		Linux:   d.optStr("linux"),
		OSX:     d.optStr("osx"),
		Windows: d.optStr("windows"),
	}
	if err := d.finish(); err != nil {
		return nil, err
	}
	return natives, nil
}

func decodeExtract(v rawValue, path string) (Extract, error) {
	if v.kind != rawObject {
		return nil, fmt.Errorf("%s: %w: expected object, got %s", path, ErrTypeMismatch, v.kind)
	}
	extract := make(Extract, len(v.obj))
	for _, m := range v.obj {
		if _, dup := extract[m.key]; dup {
			return nil, fmt.Errorf("%s: %w: %q", path, ErrDuplicateField, m.key)
		}
		patterns, err := decodeStringList(m.val, path+"."+m.key)
		if err != nil {
			return nil, err
		}
		extract[m.key] = patterns
	}
	return extract, nil
}

func decodeLibrary(v rawValue, path string) (Library, error) {
	d, err := newObjDecoder(v, path)
	if err != nil {
		return Library{}, err
	}
	var lib Library
	lib.Name = d.str("name")
	if dv, ok := d.lookup("downloads"); ok {
		downloads, err := decodeLibraryDownloads(dv, d.fieldPath("downloads"))
		if err != nil {
			d.fail(err)
		}
		lib.Downloads = downloads
	}
	if ev, ok := d.lookup("extract"); ok {
		extract, err := decodeExtract(ev, d.fieldPath("extract"))
		if err != nil {
			d.fail(err)
		}
		lib.Extract = extract
	}
	if nv, ok := d.lookup("natives"); ok {
		natives, err := decodeNatives(nv, d.fieldPath("natives"))
		if err != nil {
			d.fail(err)
		}
		lib.Natives = natives
	}
	if rv, ok := d.lookup("rules"); ok {
		rules, err := decodeRules(rv, d.fieldPath("rules"))
		if err != nil {
			d.fail(err)
		}
		lib.Rules = rules
	}
	if err := d.finish(); err != nil {
		return Library{}, err
	}
	return lib, nil
}

func decodeLibraries(v rawValue, path string) ([]Library, error) {
	if v.kind != rawArray {
		return nil, fmt.Errorf("%s: %w: expected array, got %s", path, ErrTypeMismatch, v.kind)
	}
	libs := make([]Library, 0, len(v.arr))
	for i, elem := range v.arr {
		lib, err := decodeLibrary(elem, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		libs = append(libs, lib)
	}
	return libs, nil
}
