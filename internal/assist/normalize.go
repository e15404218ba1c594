package assist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

var (
	edgeQuote         = regexp.MustCompile(`^'|'$`)
	markdownArtifacts = regexp.MustCompile(`[*#]`)
)

// NormalizeDescription strips one leading and one trailing single quote and
// removes every '*' and '#'. Only one quote layer is stripped per call.
func NormalizeDescription(raw string) string {
	s := edgeQuote.ReplaceAllString(raw, "")
	return markdownArtifacts.ReplaceAllString(s, "")
}

const tagArraySchema = `{
	"type": "array",
	"items": {"type": ["string", "number", "boolean"]}
}`

var tagSchema = mustSchema(tagArraySchema)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("assist: invalid tag schema: %v", err))
	}
	return schema
}

// TagParseResult is either a list of tags or the reason none could be read.
type TagParseResult struct {
	Tags []string
	Err  error
}

func (r TagParseResult) OK() bool { return r.Err == nil }

// ParseTags reads generator output expected to be an array of keywords.
// Strict JSON is tried first, then a YAML flow/block sequence, which also
// covers single-quoted arrays such as ['a','b']. Items keep the text the
// generator wrote: 3.10 stays "3.10" and 010 stays "010".
func ParseTags(raw string) TagParseResult {
	v, err := decodeLenient(strings.TrimSpace(raw))
	if err != nil {
		return TagParseResult{Err: fmt.Errorf("%w: %v", ErrMalformedOutput, err)}
	}

	res, err := tagSchema.Validate(gojsonschema.NewGoLoader(v))
	if err != nil {
		return TagParseResult{Err: fmt.Errorf("%w: %v", ErrMalformedOutput, err)}
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return TagParseResult{Err: fmt.Errorf("%w: %s", ErrMalformedOutput, strings.Join(msgs, "; "))}
	}

	items := v.([]any)
	tags := make([]string, 0, len(items))
	for _, item := range items {
		tags = append(tags, scalarString(item))
	}
	return TagParseResult{Tags: tags}
}

func decodeLenient(raw string) (any, error) {
	v, jsonErr := decodeJSON(raw)
	if jsonErr == nil {
		return v, nil
	}
	items, err := decodeYAMLSequence(raw)
	if err != nil {
		return nil, jsonErr
	}
	return items, nil
}

// decodeJSON decodes a single JSON value, keeping numbers as their source text.
func decodeJSON(raw string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON value")
	}
	return v, nil
}

// decodeYAMLSequence reads a YAML sequence of scalars without YAML's implicit
// typing, so each item is exactly the text that was written.
func decodeYAMLSequence(raw string) ([]any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.SequenceNode {
		return nil, errors.New("not a sequence")
	}
	seq := doc.Content[0].Content
	items := make([]any, 0, len(seq))
	for _, n := range seq {
		if n.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: sequence item is not a scalar", n.Line)
		}
		items = append(items, n.Value)
	}
	return items, nil
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
