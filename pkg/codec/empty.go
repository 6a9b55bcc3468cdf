package codec

import (
	"reflect"

	yaml "gopkg.in/yaml.v2"
)

// Undefined marks a document, or a value inside one, that has no value at
// all. It is distinct from nil: a top-level Undefined serializes to a blank
// document block, and a mapping value holding it is still emitted (as null)
// instead of the key being dropped.
var Undefined = undefinedMarker{}

type undefinedMarker struct{}

// MarshalYAML renders the marker as a YAML null when it appears nested
// inside a document. Top-level markers never reach the emitter; Stringify
// turns them into blank blocks first.
func (undefinedMarker) MarshalYAML() (any, error) {
	return nil, nil
}

// IsEmpty classifies a parsed document as empty: nil, the Undefined marker,
// an empty sequence, or a mapping with no keys. Scalars are never empty, so
// 0, false and "" are all kept.
func IsEmpty(doc any) bool {
	switch v := doc.(type) {
	case nil:
		return true
	case undefinedMarker:
		return true
	case yaml.MapSlice:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case map[any]any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}

	// Values built by callers rather than Parse, e.g. a typed slice.
	rv := reflect.ValueOf(doc)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	default:
		return false
	}
}
