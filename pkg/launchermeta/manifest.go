package launchermeta

import "fmt"

// Manifest is the version-list manifest (version_manifest_v2.json): the
// latest release/snapshot ids plus a summary per known version.
type Manifest struct {
	Latest   Latest           `json:"latest"`
	Versions []VersionSummary `json:"versions"`
}

// Latest names the current release and snapshot.
type Latest struct {
	Release  string `json:"release"`
	Snapshot string `json:"snapshot"`
}

// VersionSummary is one entry of the version list. SHA1 and ComplianceLevel
// only appear in the v2 manifest, so they stay optional.
type VersionSummary struct {
	ID              string      `json:"id"`
	Kind            VersionKind `json:"type"`
	URL             string      `json:"url"`
	Time            string      `json:"time"`
	ReleaseTime     string      `json:"releaseTime"`
	SHA1            *string     `json:"sha1,omitempty"`
	ComplianceLevel *uint64     `json:"complianceLevel,omitempty"`
}

// Find returns the summary for a version id.
func (m *Manifest) Find(id string) (VersionSummary, bool) {
	for _, v := range m.Versions {
		if v.ID == id {
			return v, true
		}
	}
	return VersionSummary{}, false
}

// ParseManifest decodes a version-list manifest with the same strictness as
// ParseVersion.
func ParseManifest(data []byte) (*Manifest, error) {
	raw, err := parseRaw(data)
	if err != nil {
		return nil, err
	}
	d, err := newObjDecoder(raw, "manifest")
	if err != nil {
		return nil, err
	}
	var manifest Manifest
	if lv, ok := d.require("latest"); ok {
		latest, err := decodeLatest(lv, d.fieldPath("latest"))
		if err != nil {
			d.fail(err)
		}
		manifest.Latest = latest
	}
	if vv, ok := d.require("versions"); ok {
		versions, err := decodeVersionSummaries(vv, d.fieldPath("versions"))
		if err != nil {
			d.fail(err)
		}
		manifest.Versions = versions
	}
	if err := d.finish(); err != nil {
		return nil, err
	}
	return &manifest, nil
}

func decodeLatest(v rawValue, path string) (Latest, error) {
	d, err := newObjDecoder(v, path)
	if err != nil {
		return Latest{}, err
	}
	latest := Latest{
		Release:  d.str("release"),
		Snapshot: d.str("snapshot"),
	}
	if err := d.finish(); err != nil {
		return Latest{}, err
	}
	return latest, nil
}

func decodeVersionSummaries(v rawValue, path string) ([]VersionSummary, error) {
	if v.kind != rawArray {
		return nil, fmt.Errorf("%s: %w: expected array, got %s", path, ErrTypeMismatch, v.kind)
	}
	versions := make([]VersionSummary, 0, len(v.arr))
	for i, elem := range v.arr {
		summary, err := decodeVersionSummary(elem, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		versions = append(versions, summary)
	}
	return versions, nil
}

func decodeVersionSummary(v rawValue, path string) (VersionSummary, error) {
	d, err := newObjDecoder(v, path)
	if err != nil {
		return VersionSummary{}, err
	}
	summary := VersionSummary{
		ID:              d.str("id"),
		URL:             d.str("url"),
		Time:            d.str("time"),
		ReleaseTime:     d.str("releaseTime"),
		SHA1:            d.optStr("sha1"),
		ComplianceLevel: d.optUint("complianceLevel"),
	}
	if kv, ok := d.require("type"); ok {
		kind, kerr := decodeVersionKind(kv, d.fieldPath("type"))
		if kerr != nil {
			d.fail(kerr)
		}
		summary.Kind = kind
	}
	if err := d.finish(); err != nil {
		return VersionSummary{}, err
	}
	return summary, nil
}
