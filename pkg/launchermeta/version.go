package launchermeta

import "fmt"

// VersionKind is the release classification of a version.
type VersionKind string

const (
	KindRelease  VersionKind = "release"
	KindSnapshot VersionKind = "snapshot"
	KindOldBeta  VersionKind = "old_beta"
	KindOldAlpha VersionKind = "old_alpha"
)

func decodeVersionKind(v rawValue, path string) (VersionKind, error) {
	s, err := asString(v, path)
	if err != nil {
		return "", err
	}
	kind := VersionKind(s)
	switch kind {
	case KindRelease, KindSnapshot, KindOldBeta, KindOldAlpha:
		return kind, nil
	}
	return "", fmt.Errorf("%s: %w: version type %q", path, ErrInvalidEnumValue, s)
}

// AssetIndex points at the asset index file; TotalSize is the summed size of
// every asset it references.
type AssetIndex struct {
	ID        string `json:"id"`
	SHA1      string `json:"sha1"`
	Size      uint64 `json:"size"`
	TotalSize uint64 `json:"totalSize"`
	URL       string `json:"url"`
}

// Download is a top-level artifact (client/server jar or mapping file).
// Unlike a library Artifact it carries no repository path.
type Download struct {
	SHA1 string `json:"sha1"`
	Size uint64 `json:"size"`
	URL  string `json:"url"`
}

// Downloads groups the version's top-level artifacts. Only the client jar is
// guaranteed; old versions lack servers and mappings.
type Downloads struct {
	Client         Download  `json:"client"`
	ClientMappings *Download `json:"client_mappings,omitempty"`
	Server         *Download `json:"server,omitempty"`
	ServerMappings *Download `json:"server_mappings,omitempty"`
	WindowsServer  *Download `json:"windows_server,omitempty"`
}

// JavaVersion is the Java runtime the version wants.
type JavaVersion struct {
	Component    string `json:"component"`
	MajorVersion uint64 `json:"majorVersion"`
}

// Version is the decoded version descriptor. It is immutable once decoded;
// concurrent readers need no synchronization as long as nobody writes to it.
// Exactly one of Arguments and MinecraftArguments is set in practice:
// modern manifests carry the structured lists, pre-1.13 ones the legacy
// single-string blob (kept verbatim, tokenizing it is the launcher's job).
type Version struct {
	Arguments              *Arguments   `json:"arguments,omitempty"`
	MinecraftArguments     *string      `json:"minecraftArguments,omitempty"`
	AssetIndex             AssetIndex   `json:"assetIndex"`
	Assets                 string       `json:"assets"`
	ComplianceLevel        *uint64      `json:"complianceLevel,omitempty"`
	Downloads              Downloads    `json:"downloads"`
	ID                     string       `json:"id"`
	JavaVersion            *JavaVersion `json:"javaVersion,omitempty"`
	Libraries              []Library    `json:"libraries"`
	Logging                *Logging     `json:"logging,omitempty"`
	MainClass              string       `json:"mainClass"`
	MinimumLauncherVersion uint64       `json:"minimumLauncherVersion"`
	ReleaseTime            string       `json:"releaseTime"`
	Time                   string       `json:"time"`
	Kind                   VersionKind  `json:"type"`
}

// ParseVersion decodes a version.json document. Decoding is all-or-nothing:
// any unknown, duplicate, missing or mis-shaped field aborts with an error
// naming the field path, and no partial Version is returned.
func ParseVersion(data []byte) (*Version, error) {
	raw, err := parseRaw(data)
	if err != nil {
		return nil, err
	}
	d, err := newObjDecoder(raw, "version")
	if err != nil {
		return nil, err
	}
	var ver Version
	ver.ID = d.str("id")
	ver.Assets = d.str("assets")
	ver.MainClass = d.str("mainClass")
	ver.MinimumLauncherVersion = d.uint("minimumLauncherVersion")
	ver.ReleaseTime = d.str("releaseTime")
	ver.Time = d.str("time")
	ver.ComplianceLevel = d.optUint("complianceLevel")
	ver.MinecraftArguments = d.optStr("minecraftArguments")

	if kv, ok := d.require("type"); ok {
		kind, err := decodeVersionKind(kv, d.fieldPath("type"))
		if err != nil {
			d.fail(err)
		}
		ver.Kind = kind
	}
	if av, ok := d.require("assetIndex"); ok {
		index, err := decodeAssetIndex(av, d.fieldPath("assetIndex"))
		if err != nil {
			d.fail(err)
		}
		ver.AssetIndex = index
	}
	if dv, ok := d.require("downloads"); ok {
		downloads, err := decodeDownloads(dv, d.fieldPath("downloads"))
		if err != nil {
			d.fail(err)
		}
		ver.Downloads = downloads
	}
	if lv, ok := d.require("libraries"); ok {
		libs, err := decodeLibraries(lv, d.fieldPath("libraries"))
		if err != nil {
			d.fail(err)
		}
		ver.Libraries = libs
	}
	if av, ok := d.lookup("arguments"); ok {
		args, err := decodeArguments(av, d.fieldPath("arguments"))
		if err != nil {
			d.fail(err)
		}
		ver.Arguments = args
	}
	if jv, ok := d.lookup("javaVersion"); ok {
		java, err := decodeJavaVersion(jv, d.fieldPath("javaVersion"))
		if err != nil {
			d.fail(err)
		}
		ver.JavaVersion = java
	}
	if lv, ok := d.lookup("logging"); ok {
		logging, err := decodeLogging(lv, d.fieldPath("logging"))
		if err != nil {
			d.fail(err)
		}
		ver.Logging = logging
	}
	if err := d.finish(); err != nil {
		return nil, err
	}
	return &ver, nil
}

func decodeAssetIndex(v rawValue, path string) (AssetIndex, error) {
	d, err := newObjDecoder(v, path)
	if err != nil {
		return AssetIndex{}, err
	}
	index := AssetIndex{
		ID:        d.str("id"),
		SHA1:      d.str("sha1"),
		Size:      d.uint("size"),
		TotalSize: d.uint("totalSize"),
		URL:       d.str("url"),
	}
	if err := d.finish(); err != nil {
		return AssetIndex{}, err
	}
	return index, nil
}

func decodeDownload(v rawValue, path string) (Download, error) {
	d, err := newObjDecoder(v, path)
	if err != nil {
		return Download{}, err
	}
	dl := Download{
		SHA1: d.str("sha1"),
		Size: d.uint("size"),
		URL:  d.str("url"),
	}
	if err := d.finish(); err != nil {
		return Download{}, err
	}
	return dl, nil
}

func decodeDownloads(v rawValue, path string) (Downloads, error) {
	d, err := newObjDecoder(v, path)
	if err != nil {
		return Downloads{}, err
	}
	var downloads Downloads
	if cv, ok := d.require("client"); ok {
		client, err := decodeDownload(cv, d.fieldPath("client"))
		if err != nil {
			d.fail(err)
		}
		downloads.Client = client
	}
	for _, opt := range []struct {
		key  string
		dest **Download
	}{
		{"client_mappings", &downloads.ClientMappings},
		{"server", &downloads.Server},
		{"server_mappings", &downloads.ServerMappings},
		{"windows_server", &downloads.WindowsServer},
	} {
		if ov, ok := d.lookup(opt.key); ok {
			dl, err := decodeDownload(ov, d.fieldPath(opt.key))
			if err != nil {
				d.fail(err)
			}
			*opt.dest = &dl
		}
	}
	if err := d.finish(); err != nil {
		return Downloads{}, err
	}
	return downloads, nil
}

func decodeJavaVersion(v rawValue, path string) (*JavaVersion, error) {
	d, err := newObjDecoder(v, path)
	if err != nil {
		return nil, err
	}
	java := &JavaVersion{
		Component:    d.str("component"),
		MajorVersion: d.uint("majorVersion"),
	}
	if err := d.finish(); err != nil {
		return nil, err
	}
	return java, nil
}
