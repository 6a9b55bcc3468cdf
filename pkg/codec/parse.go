package codec

import (
	"io"
	"strings"

	yaml "gopkg.in/yaml.v2"

	errUtils "github.com/primestack/docstream/errors"
)

// Parse decodes every document in a YAML stream, in order. Mappings decode
// to yaml.MapSlice so key order is preserved at every nesting level.
// A syntax error anywhere aborts the whole parse.
func Parse(text string) ([]any, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))
	docs := []any{}
	for {
		var n node
		err := dec.Decode(&n)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errUtils.Build(errUtils.ErrMalformedYAML).
				WithCause(err).
				WithHint("Validate the document syntax").
				Err()
		}
		docs = append(docs, n.value)
	}
	return docs, nil
}

// node decodes a YAML value while keeping mapping order. The decoder is
// probed with a plain any first; mappings are then re-decoded into a
// yaml.MapSlice and sequences into []node, element by element. yaml.v2
// propagates the map type through the subtree, so mappings nested under a
// MapSlice come back ordered too.
type node struct {
	value any
}

func (n *node) UnmarshalYAML(unmarshal func(any) error) error {
	var probe any
	if err := unmarshal(&probe); err != nil {
		return err
	}

	switch probe.(type) {
	case map[any]any:
		var ms yaml.MapSlice
		if err := unmarshal(&ms); err != nil {
			return err
		}
		n.value = ms
	case []any:
		var elems []node
		if err := unmarshal(&elems); err != nil {
			return err
		}
		values := make([]any, len(elems))
		for i := range elems {
			values[i] = elems[i].value
		}
		n.value = values
	default:
		n.value = probe
	}
	return nil
}
