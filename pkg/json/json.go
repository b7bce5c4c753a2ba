// Package json provides high-performance JSON serialization for loompy.
// The engine only marshals, and only for stringifying composite elements
// of mixed-type attribute arrays.
package json

import (
	"bytes"
	"sync"

	gojson "github.com/goccy/go-json"

	stringpool "github.com/jlikhuva/loompy/pkg/strings"
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// Marshal serializes a value to JSON bytes using a pooled buffer.
func Marshal(v interface{}) ([]byte, error) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	enc := gojson.NewEncoder(buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	// Encode appends a trailing newline; strip it
	out := buf.Bytes()
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}

	result := make([]byte, len(out))
	copy(result, out)
	return result, nil
}

// MarshalToString serializes a value to a JSON string.
func MarshalToString(v interface{}) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return stringpool.BytesToString(b), nil
}

// Unmarshal deserializes JSON bytes into the given value.
func Unmarshal(data []byte, v interface{}) error {
	return gojson.Unmarshal(data, v)
}
