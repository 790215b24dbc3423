package config

import (
	"errors"
	"io"
	"strings"

	"github.com/magiconair/properties"

	"github.com/proplog/proplog/core"
	"github.com/proplog/proplog/logger"
)

const (
	confRoot   = "root"
	confLogger = "logger."
)

// confDefaultLevel is assigned when a rule value carries no
// recognizable level token.
const confDefaultLevel = core.InfoLevel

// Load turns an optional byte source into a rule table. It never fails
// its caller: an absent source, a read error, and an empty document all
// degrade to a single-entry table whose root rule matches the bootstrap
// logger, and the problem is reported through diag at ERROR level. A nil
// diag selects the bootstrap logger.
//
// Recognized keys are "root" and "logger.<dotted.prefix>"; any other key
// is ignored so configurations can carry settings for future versions.
// When a key appears more than once the last value wins.
func Load(src Source, diag *logger.Logger) core.Table {
	if diag == nil {
		diag = logger.Bootstrap()
	}

	data, err := read(src)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			err = nil
		}
		diag.Log(core.ErrorLevel, "cannot configure logging from "+PropertiesName+", default configuration will be used", err)
		return fallbackTable()
	}

	props, err := parse(data)
	if err != nil {
		diag.Log(core.ErrorLevel, "cannot parse "+PropertiesName+", default configuration will be used", err)
		return fallbackTable()
	}

	if props.Len() == 0 {
		diag.Error("logging configuration is empty, default configuration will be used")
		return fallbackTable()
	}

	table := core.Table{}
	for _, key := range props.Keys() {
		value, _ := props.Get(key)
		switch {
		case key == confRoot:
			table[core.RootKey] = decodeRule(value)
		case strings.HasPrefix(key, confLogger):
			table[strings.TrimPrefix(key, confLogger)] = decodeRule(value)
		}
	}
	return table
}

// read drains the source's stream. A nil source counts as absent.
func read(src Source) ([]byte, error) {
	if src == nil {
		return nil, ErrNotFound
	}
	r, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// parse decodes a properties document: "key=value" lines, blank lines
// and #-comments ignored. ${...} expansion is disabled; rule values are
// taken literally.
func parse(data []byte) (*properties.Properties, error) {
	l := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	return l.LoadBytes(data)
}

// decodeRule decodes a "LEVEL:tag" value. Decoding never fails: when the
// value has no colon, or its level token is not an exact level name, the
// entire original value becomes the tag and the level falls back to
// INFO.
func decodeRule(value string) core.Rule {
	if idx := strings.IndexByte(value, ':'); idx >= 0 {
		if level, ok := core.ParseLevel(value[:idx]); ok {
			return core.Rule{Tag: value[idx+1:], Level: level}
		}
	}
	return core.Rule{Tag: value, Level: confDefaultLevel}
}

// fallbackTable is the configuration of last resort: everything routes
// to a root rule identical to the bootstrap logger.
func fallbackTable() core.Table {
	return core.Table{
		core.RootKey: {Tag: logger.BootstrapTag, Level: core.VerboseLevel},
	}
}
