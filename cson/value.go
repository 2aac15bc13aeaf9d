// Package cson parses CSON (CoffeeScript Object Notation) documents into a
// value tree that preserves the insertion order of mapping keys.
//
// A parsed tree is built from string, float64, bool, nil, []Value and
// *Object nodes. No other types appear in parser output.
package cson

import (
	"bytes"
	"encoding/json"
)

// Value is one node of a parsed document.
type Value = any

// Field is a single key/value entry of an Object.
type Field struct {
	Key   string
	Value Value
}

// Object is a string-keyed mapping that keeps its fields in the order they
// first appeared in the source.
type Object struct {
	Fields []Field
}

// Len returns the number of fields.
func (o *Object) Len() int {
	return len(o.Fields)
}

// Get returns the value for key and whether the key is present.
func (o *Object) Get(key string) (Value, bool) {
	for _, f := range o.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set stores value under key. A duplicate key keeps its original position
// and takes the new value, matching object-literal semantics.
func (o *Object) Set(key string, value Value) {
	for i, f := range o.Fields {
		if f.Key == key {
			o.Fields[i].Value = value
			return
		}
	}
	o.Fields = append(o.Fields, Field{Key: key, Value: value})
}

// Keys returns the field keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.Fields))
	for _, f := range o.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// MarshalJSON encodes the object with its fields in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
