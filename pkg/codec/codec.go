// Package codec converts between lists of native values and multi-document
// YAML text streams.
//
// All encoding and decoding goes through gopkg.in/yaml.v2, so scalar
// resolution follows YAML 1.1: `0775` is the integer 509, and `yes`, `on`
// are booleans. Mapping key order survives a round trip via yaml.MapSlice.
package codec

import (
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v2"

	errUtils "github.com/primestack/docstream/errors"
)

func init() {
	// Emit long scalars at their natural width instead of wrapping at the
	// emitter's default 80 columns.
	yaml.FutureLineWrap()
}

const (
	// documentSeparator joins serialized documents into one stream.
	documentSeparator = "---\n"

	// undefinedDocument is the placeholder block emitted for the Undefined
	// marker: a blank-line document, not a literal `null`.
	undefinedDocument = "\n"

	defaultFileMode = 0o644

	tmpDirPattern = "docstream-"
	tmpFileName   = "temp.yaml"
)

// Stringify serializes values into a single YAML stream, one document per
// value, joined by the document separator. The Undefined marker becomes a
// blank document block rather than being dropped, so N inputs always produce
// N blocks in order. An empty input produces the empty string.
func Stringify(docs ...any) (string, error) {
	blocks := make([]string, 0, len(docs))
	for _, doc := range docs {
		if _, ok := doc.(undefinedMarker); ok {
			blocks = append(blocks, undefinedDocument)
			continue
		}
		b, err := yaml.Marshal(doc)
		if err != nil {
			return "", errUtils.Build(errUtils.ErrMarshal).
				WithCause(err).
				Err()
		}
		blocks = append(blocks, string(b))
	}
	return strings.Join(blocks, documentSeparator), nil
}

// Save serializes values and writes the stream to path with 0644 permissions.
// Filesystem errors are returned unchanged so callers can inspect the
// underlying *os.PathError.
func Save(path string, docs ...any) error {
	text, err := Stringify(docs...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), defaultFileMode)
}

// Tmp serializes values to a file in a freshly created directory under the
// system temp dir and returns the file path. Every call gets its own
// directory, so concurrent calls never collide. Cleanup is left to the
// caller or the operating system.
func Tmp(docs ...any) (string, error) {
	dir, err := os.MkdirTemp("", tmpDirPattern)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, tmpFileName)
	if err := Save(path, docs...); err != nil {
		return "", err
	}
	return path, nil
}
