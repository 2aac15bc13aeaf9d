package cson_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idleberg/bun-plugin-coffeescript/cson"
)

func TestParse_ObjectBlock(t *testing.T) {
	value, err := cson.Parse("config.cson", []byte("key: 123\nactive: true\n"))
	require.NoError(t, err)

	expected := &cson.Object{Fields: []cson.Field{
		{Key: "key", Value: float64(123)},
		{Key: "active", Value: true},
	}}
	require.Equal(t, expected, value)
}

func TestParse_KeyOrderPreserved(t *testing.T) {
	value, err := cson.Parse("config.cson", []byte("zebra: 1\napple: 2\nmango: 3\n"))
	require.NoError(t, err)

	obj, ok := value.(*cson.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"zebra", "apple", "mango"}, obj.Keys())
}

func TestParse_NestedBlock(t *testing.T) {
	source := `db:
  host: "localhost"
  port: 5432
debug: off
`
	value, err := cson.Parse("config.cson", []byte(source))
	require.NoError(t, err)

	expected := &cson.Object{Fields: []cson.Field{
		{Key: "db", Value: &cson.Object{Fields: []cson.Field{
			{Key: "host", Value: "localhost"},
			{Key: "port", Value: float64(5432)},
		}}},
		{Key: "debug", Value: false},
	}}
	require.Equal(t, expected, value)
}

func TestParse_DeepNesting(t *testing.T) {
	source := `a:
  b:
    c: 1
`
	value, err := cson.Parse("config.cson", []byte(source))
	require.NoError(t, err)

	expected := &cson.Object{Fields: []cson.Field{
		{Key: "a", Value: &cson.Object{Fields: []cson.Field{
			{Key: "b", Value: &cson.Object{Fields: []cson.Field{
				{Key: "c", Value: float64(1)},
			}}},
		}}},
	}}
	require.Equal(t, expected, value)
}

func TestParse_IndentedScalarValue(t *testing.T) {
	source := `answer:
  42
next: 43
`
	value, err := cson.Parse("config.cson", []byte(source))
	require.NoError(t, err)

	expected := &cson.Object{Fields: []cson.Field{
		{Key: "answer", Value: float64(42)},
		{Key: "next", Value: float64(43)},
	}}
	require.Equal(t, expected, value)
}

func TestParse_Array(t *testing.T) {
	value, err := cson.Parse("config.cson", []byte(`values: [1, 2, "three"]`))
	require.NoError(t, err)

	obj, ok := value.(*cson.Object)
	require.True(t, ok)
	values, ok := obj.Get("values")
	require.True(t, ok)
	assert.Equal(t, []cson.Value{float64(1), float64(2), "three"}, values)
}

func TestParse_MultilineArray(t *testing.T) {
	source := `plugins: [
  "first"
  "second",
  "third"
]
`
	value, err := cson.Parse("config.cson", []byte(source))
	require.NoError(t, err)

	obj := value.(*cson.Object)
	plugins, ok := obj.Get("plugins")
	require.True(t, ok)
	assert.Equal(t, []cson.Value{"first", "second", "third"}, plugins)
}

func TestParse_InlineObject(t *testing.T) {
	value, err := cson.Parse("config.cson", []byte(`point: {x: 1, y: 2}`))
	require.NoError(t, err)

	obj := value.(*cson.Object)
	point, ok := obj.Get("point")
	require.True(t, ok)
	expected := &cson.Object{Fields: []cson.Field{
		{Key: "x", Value: float64(1)},
		{Key: "y", Value: float64(2)},
	}}
	assert.Equal(t, expected, point)
}

func TestParse_WordLiterals(t *testing.T) {
	source := `a: yes
b: no
c: on
d: off
e: null
f: undefined
`
	value, err := cson.Parse("config.cson", []byte(source))
	require.NoError(t, err)

	expected := &cson.Object{Fields: []cson.Field{
		{Key: "a", Value: true},
		{Key: "b", Value: false},
		{Key: "c", Value: true},
		{Key: "d", Value: false},
		{Key: "e", Value: nil},
		{Key: "f", Value: nil},
	}}
	require.Equal(t, expected, value)
}

func TestParse_Numbers(t *testing.T) {
	source := `negative: -7
pi: 3.14
big: 2e10
`
	value, err := cson.Parse("config.cson", []byte(source))
	require.NoError(t, err)

	expected := &cson.Object{Fields: []cson.Field{
		{Key: "negative", Value: float64(-7)},
		{Key: "pi", Value: 3.14},
		{Key: "big", Value: 2e10},
	}}
	require.Equal(t, expected, value)
}

func TestParse_QuotedKeysAndEscapes(t *testing.T) {
	source := "\"quoted key\": 'single'\nescaped: \"line\\nbreak\"\n"
	value, err := cson.Parse("config.cson", []byte(source))
	require.NoError(t, err)

	expected := &cson.Object{Fields: []cson.Field{
		{Key: "quoted key", Value: "single"},
		{Key: "escaped", Value: "line\nbreak"},
	}}
	require.Equal(t, expected, value)
}

func TestParse_Heredoc(t *testing.T) {
	source := "banner: '''\n  first line\n    indented\n  last line\n'''\n"
	value, err := cson.Parse("config.cson", []byte(source))
	require.NoError(t, err)

	obj := value.(*cson.Object)
	banner, ok := obj.Get("banner")
	require.True(t, ok)
	assert.Equal(t, "first line\n  indented\nlast line", banner)
}

func TestParse_CommentsIgnored(t *testing.T) {
	source := `# leading comment
key: 1 # trailing comment

### block
comment ###
other: 2
`
	value, err := cson.Parse("config.cson", []byte(source))
	require.NoError(t, err)

	obj := value.(*cson.Object)
	assert.Equal(t, []string{"key", "other"}, obj.Keys())
}

func TestParse_DuplicateKeyKeepsPosition(t *testing.T) {
	source := `first: 1
second: 2
first: 3
`
	value, err := cson.Parse("config.cson", []byte(source))
	require.NoError(t, err)

	obj := value.(*cson.Object)
	assert.Equal(t, []string{"first", "second"}, obj.Keys())
	first, _ := obj.Get("first")
	assert.Equal(t, float64(3), first)
}

func TestParse_TopLevelArray(t *testing.T) {
	source := `[
  "item1"
  "item2"
  "item3"
]
`
	value, err := cson.Parse("list.cson", []byte(source))
	require.NoError(t, err)
	assert.Equal(t, []cson.Value{"item1", "item2", "item3"}, value)
}

func TestParse_BareValue(t *testing.T) {
	value, err := cson.Parse("config.cson", []byte(`"just a string"`))
	require.NoError(t, err)
	assert.Equal(t, "just a string", value)
}

func TestParse_EmptyInput(t *testing.T) {
	for name, source := range map[string]string{
		"empty":        "",
		"whitespace":   "   \n\n",
		"comment only": "# nothing here\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := cson.Parse("config.cson", []byte(source))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unexpected end of input")
		})
	}
}

func TestParse_UnterminatedString(t *testing.T) {
	_, err := cson.Parse("broken.cson", []byte(`key: "never closed`))
	require.Error(t, err)

	var syntaxErr *cson.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "broken.cson", syntaxErr.File)
	assert.Contains(t, syntaxErr.Message, "unterminated string")
}

func TestParse_TabIndentation(t *testing.T) {
	_, err := cson.Parse("broken.cson", []byte("key:\n\tvalue: 1\n"))
	require.Error(t, err)

	var syntaxErr *cson.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Contains(t, syntaxErr.Message, "tab character in indentation")
}

func TestParse_MissingColon(t *testing.T) {
	_, err := cson.Parse("broken.cson", []byte("key value\n"))
	require.Error(t, err)

	var syntaxErr *cson.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, 1, syntaxErr.Line)
}

func TestParse_TrailingGarbage(t *testing.T) {
	_, err := cson.Parse("broken.cson", []byte("42 extra\n"))
	require.Error(t, err)
}
