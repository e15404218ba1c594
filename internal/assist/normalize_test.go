package assist

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptionPrompt(t *testing.T) {
	cases := []struct {
		role, skills string
	}{
		{"Full-Stack Developer", "Go, React, PostgreSQL"},
		{"Nurse", ""},
		{"", "Excel"},
		{"", ""},
		{"Data 'Engineer' #1", "*Spark*"},
	}
	for _, tc := range cases {
		p := DescriptionPrompt(tc.role, tc.skills)
		assert.Contains(t, p, tc.role)
		assert.Contains(t, p, "responsibilities")
		assert.Contains(t, p, "qualifications")
		if tc.skills != "" {
			assert.Contains(t, p, "expertise in "+tc.skills+".")
		} else {
			assert.NotContains(t, p, "expertise in")
		}
	}
}

func TestTagsPrompt(t *testing.T) {
	p := TagsPrompt("Barista")
	assert.Contains(t, p, "'Barista'")
	assert.Contains(t, p, "top 10 keywords")
	assert.Contains(t, p, "array")

	assert.NotEmpty(t, TagsPrompt(""))
}

func TestNormalizeDescription(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"quotes and markdown", "'## Role\n**Build** things #now'", " Role\nBuild things now"},
		{"already clean", "Plain text, with 'inner' quotes.", "Plain text, with 'inner' quotes."},
		{"only leading quote", "'Hello", "Hello"},
		{"only trailing quote", "Hello'", "Hello"},
		{"single quote char", "'", ""},
		{"double quotes kept", `"Hello"`, `"Hello"`},
		{"nested quote layers", "''Hello''", "'Hello'"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeDescription(tc.in))
		})
	}
}

func TestNormalizeDescriptionIdempotent(t *testing.T) {
	once := NormalizeDescription("'**Senior** Go #Engineer'")
	assert.Equal(t, "Senior Go Engineer", once)
	assert.Equal(t, once, NormalizeDescription(once))

	// A second quote layer survives the first pass only.
	layered := NormalizeDescription("''x''")
	assert.Equal(t, "'x'", layered)
	assert.Equal(t, "x", NormalizeDescription(layered))
}

func TestParseTags(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"json", `["go", "sql"]`, []string{"go", "sql"}},
		{"single quoted", `['a','b']`, []string{"a", "b"}},
		{"surrounding whitespace", "\n  [\"a\"]  \n", []string{"a"}},
		{"duplicates kept", `["a","a"]`, []string{"a", "a"}},
		{"scalars stringified", `["go", 10, 2.5, true]`, []string{"go", "10", "2.5", "true"}},
		{"empty array", `[]`, []string{}},
		{"yaml block", "- first\n- second", []string{"first", "second"}},
		{"json numbers keep their text", `["go", 3.10, 1e3]`, []string{"go", "3.10", "1e3"}},
		{"yaml scalars keep their text", `[010, 3.10, 2024-01-01]`, []string{"010", "3.10", "2024-01-01"}},
		{"yaml booleans and nulls verbatim", `[yes, Off, ~, Go]`, []string{"yes", "Off", "~", "Go"}},
		{"yaml quoted scalars unquoted", `['C++', "C#", 0x1F]`, []string{"C++", "C#", "0x1F"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ParseTags(tc.raw)
			require.True(t, res.OK(), "unexpected error: %v", res.Err)
			assert.Equal(t, tc.want, res.Tags)
		})
	}
}

func TestParseTagsMalformed(t *testing.T) {
	for _, raw := range []string{
		"not json",
		"",
		`{"tags": ["a"]}`,
		`"a, b"`,
		`[["nested"]]`,
		`[{"name": "a"}]`,
		"```json\n[\"a\"]\n```",
		`["unterminated`,
		`[{a: 1}]`,
		"- [nested]\n- b",
		"key: value",
	} {
		res := ParseTags(raw)
		assert.False(t, res.OK(), "expected failure for %q", raw)
		assert.True(t, errors.Is(res.Err, ErrMalformedOutput), "error for %q: %v", raw, res.Err)
		assert.Nil(t, res.Tags)
	}
}

func TestParseTagsReportsSchemaViolation(t *testing.T) {
	res := ParseTags(`{"a": 1}`)
	require.Error(t, res.Err)
	assert.True(t, strings.Contains(res.Err.Error(), "array"), res.Err.Error())
}
