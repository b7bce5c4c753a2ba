// Package normalize implements the two conversion pipelines of the
// attribute engine: Normalize collapses loosely-typed caller input into the
// canonical persisted forms, and Materialize restores caller-facing values
// from stored (or legacy-encoded) arrays.
package normalize

import (
	"github.com/jlikhuva/loompy/pkg/attr"
	"github.com/jlikhuva/loompy/pkg/metrics"
	"github.com/jlikhuva/loompy/pkg/shape"
	"github.com/jlikhuva/loompy/pkg/textenc"
)

// Options controls the write path.
type Options struct {
	// ObjectStrings keeps text-like attributes as generic text objects,
	// bypassing the canonical ASCII encoding. Used for pass-through and
	// legacy compatibility, not canonical storage.
	ObjectStrings bool
	// Policy decides whether mixed-type arrays are stringified leniently
	// (the historical behavior) or rejected.
	Policy textenc.CoercionPolicy
}

// DefaultOptions returns the canonical write-path configuration.
func DefaultOptions() Options {
	return Options{
		ObjectStrings: false,
		Policy:        textenc.PolicyLenient,
	}
}

// Normalize validates and converts any accepted attribute value into its
// canonical persisted form, preserving scalar-ness on the returned Value.
//
// After normalization the array is exactly one of: a numeric array with the
// caller's element width preserved, an unsigned single-byte boolean array,
// a fixed-width ASCII byte-string array, or (only when ObjectStrings is
// set) a generic text-object array.
func Normalize(v interface{}, opts Options) (attr.Value, error) {
	timer := metrics.NewTimer()

	value := v
	scalar := false
	if wrapped, ok := wrapScalarWrite(v); ok {
		value = wrapped
		scalar = true
	}

	arr, err := shape.Coerce(value)
	if err != nil {
		metrics.ArraysNormalized.WithLabelValues("unknown", "failure").Inc()
		return attr.Value{}, err
	}

	out, err := normalizeArray(arr, opts)
	if err != nil {
		metrics.ArraysNormalized.WithLabelValues(arr.Kind().String(), "failure").Inc()
		return attr.Value{}, err
	}

	metrics.ArraysNormalized.WithLabelValues(out.Kind().String(), "success").Inc()
	metrics.AttributeElements.Observe(float64(out.Len()))
	metrics.PipelineLatency.WithLabelValues("normalize").Observe(float64(timer.Stop().Nanoseconds()))

	return attr.Value{Array: out, Scalar: scalar}, nil
}

// normalizeArray dispatches once on the element kind of the coerced array.
func normalizeArray(arr *attr.Array, opts Options) (*attr.Array, error) {
	switch arr.Kind() {
	case attr.KindInteger, attr.KindFloating:
		// Passthrough; the backing slice keeps its numeric width.
		return arr, nil

	case attr.KindBoolean:
		return boolToBytes(arr), nil

	case attr.KindText, attr.KindByteString, attr.KindObject:
		if opts.ObjectStrings {
			return objectStrings(arr), nil
		}
		return textenc.Encode(arr, opts.Policy)

	default:
		// Kind is a closed set; the cases above are exhaustive.
		return arr, nil
	}
}

// boolToBytes casts a boolean array to the unsigned single-byte persisted
// form. An array already in 0/1 bytes passes through.
func boolToBytes(arr *attr.Array) *attr.Array {
	bools, ok := arr.Bools()
	if !ok {
		return arr
	}
	out := make([]uint8, len(bools))
	for i, b := range bools {
		if b {
			out[i] = 1
		}
	}
	return attr.BoolBytes(out)
}

// objectStrings converts every element to its text representation and keeps
// the result as a generic text-object array, escape-free.
func objectStrings(arr *attr.Array) *attr.Array {
	out := make([]interface{}, arr.Len())
	for i := range out {
		out[i] = textenc.Stringify(arr.At(i))
	}
	return attr.Objects(out)
}

// wrapScalarWrite wraps a scalar write-path input as a one-element slice of
// the same element type, so numeric width survives the round trip. A bare
// []byte is numeric data here, not a scalar.
func wrapScalarWrite(v interface{}) (interface{}, bool) {
	switch s := v.(type) {
	case string:
		return []string{s}, true
	case bool:
		return []bool{s}, true
	case int:
		return []int{s}, true
	case int8:
		return []int8{s}, true
	case int16:
		return []int16{s}, true
	case int32:
		return []int32{s}, true
	case int64:
		return []int64{s}, true
	case uint:
		return []uint{s}, true
	case uint8:
		return []uint8{s}, true
	case uint16:
		return []uint16{s}, true
	case uint32:
		return []uint32{s}, true
	case uint64:
		return []uint64{s}, true
	case float32:
		return []float32{s}, true
	case float64:
		return []float64{s}, true
	}
	return nil, false
}
