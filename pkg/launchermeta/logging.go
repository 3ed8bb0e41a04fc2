package launchermeta

// Logging tells the launcher how to wire the game's log configuration. Only
// a client side exists in current manifests.
type Logging struct {
	Client *ClientLogging `json:"client,omitempty"`
}

// ClientLogging carries the JVM argument to inject (with a ${path}
// placeholder) and the configuration file to download.
type ClientLogging struct {
	Argument string  `json:"argument"`
	File     LogFile `json:"file"`
	Kind     string  `json:"type"`
}

// LogFile is the downloadable logging configuration, an asset-style
// descriptor with an id instead of a path.
type LogFile struct {
	ID   string `json:"id"`
	SHA1 string `json:"sha1"`
	Size uint64 `json:"size"`
	URL  string `json:"url"`
}

func decodeLogging(v rawValue, path string) (*Logging, error) {
	d, err := newObjDecoder(v, path)
	if err != nil {
		return nil, err
	}
	var logging Logging
	if cv, ok := d.lookup("client"); ok {
		client, err := decodeClientLogging(cv, d.fieldPath("client"))
		if err != nil {
			d.fail(err)
		}
		logging.Client = client
	}
	if err := d.finish(); err != nil {
		return nil, err
	}
	return &logging, nil
}

func decodeClientLogging(v rawValue, path string) (*ClientLogging, error) {
	d, err := newObjDecoder(v, path)
	if err != nil {
		return nil, err
	}
	client := &ClientLogging{
		Argument: d.str("argument"),
		Kind:     d.str("type"),
	}
	if fv, ok := d.require("file"); ok {
		file, err := decodeLogFile(fv, d.fieldPath("file"))
		if err != nil {
			d.fail(err)
		}
		client.File = file
	}
	if err := d.finish(); err != nil {
		return nil, err
	}
	return client, nil
}

func decodeLogFile(v rawValue, path string) (LogFile, error) {
	d, err := newObjDecoder(v, path)
	if err != nil {
		return LogFile{}, err
	}
	file := LogFile{
		ID:   d.str("id"),
		SHA1: d.str("sha1"),
		Size: d.uint("size"),
		URL:  d.str("url"),
	}
	if err := d.finish(); err != nil {
		return LogFile{}, err
	}
	return file, nil
}
