package cson_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idleberg/bun-plugin-coffeescript/cson"
)

func TestObject_SetAndGet(t *testing.T) {
	obj := &cson.Object{}
	obj.Set("one", float64(1))
	obj.Set("two", "2")

	assert.Equal(t, 2, obj.Len())

	one, ok := obj.Get("one")
	require.True(t, ok)
	assert.Equal(t, float64(1), one)

	_, ok = obj.Get("missing")
	assert.False(t, ok)
}

func TestObject_SetDuplicateKeepsPosition(t *testing.T) {
	obj := &cson.Object{}
	obj.Set("a", 1)
	obj.Set("b", 2)
	obj.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	a, _ := obj.Get("a")
	assert.Equal(t, 3, a)
}

func TestObject_MarshalJSONPreservesOrder(t *testing.T) {
	obj := &cson.Object{Fields: []cson.Field{
		{Key: "zebra", Value: float64(1)},
		{Key: "apple", Value: []cson.Value{"x", nil}},
		{Key: "nested", Value: &cson.Object{Fields: []cson.Field{
			{Key: "flag", Value: true},
		}}},
	}}

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"zebra":1,"apple":["x",null],"nested":{"flag":true}}`, string(data))
}

func TestObject_MarshalJSONEmpty(t *testing.T) {
	data, err := json.Marshal(&cson.Object{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}
