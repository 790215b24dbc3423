package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// PropertiesName is the configuration file name the default source
// looks for.
const PropertiesName = "android-logger.properties"

// ErrNotFound reports that a source has no configuration to offer.
// Load treats it as the configuration-absent case and falls back to the
// default table.
var ErrNotFound = errors.New("config: properties not found")

// Source supplies the raw configuration bytes. A source may be absent,
// in which case Open returns ErrNotFound. The stream is read exactly
// once and closed by the reader.
type Source interface {
	Open() (io.ReadCloser, error)
}

// FileSource looks for a properties file on a filesystem. With no
// explicit Paths it searches the working directory first and the
// directory of the running executable second.
type FileSource struct {
	Fs    afero.Fs
	Paths []string
}

// DefaultSource returns a FileSource over the OS filesystem with the
// default search paths.
func DefaultSource() *FileSource {
	return &FileSource{Fs: afero.NewOsFs()}
}

// Open returns the first properties file found on the search path,
// ErrNotFound when none exists, or the underlying error when a file
// exists but cannot be opened.
func (s *FileSource) Open() (io.ReadCloser, error) {
	paths := s.Paths
	if len(paths) == 0 {
		paths = defaultSearchPaths()
	}
	for _, path := range paths {
		f, err := s.Fs.Open(path)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return nil, ErrNotFound
}

func defaultSearchPaths() []string {
	paths := []string{PropertiesName}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), PropertiesName))
	}
	return paths
}

// BytesSource serves an in-memory properties document. Useful for tests
// and for embedding a configuration into the binary.
type BytesSource []byte

// Open returns a reader over the document.
func (s BytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s)), nil
}
