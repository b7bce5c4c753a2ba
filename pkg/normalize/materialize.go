package normalize

import (
	"github.com/jlikhuva/loompy/pkg/attr"
	"github.com/jlikhuva/loompy/pkg/loomerrors"
	"github.com/jlikhuva/loompy/pkg/metrics"
	"github.com/jlikhuva/loompy/pkg/textenc"
)

// Materialize restores a stored attribute array (or a legacy-format array
// from a non-conforming producer) to caller-facing values: byte strings
// become native unicode text with XML references resolved, numeric and
// boolean arrays pass through unchanged, and scalar-ness is preserved.
//
// The read path is defensive. Known legacy damage is repaired through the
// default RecoveryPolicy; only a residual, unanticipated failure propagates.
func Materialize(v interface{}) (attr.Value, error) {
	return MaterializeWith(v, DefaultRecoveryPolicy())
}

// MaterializeWith is Materialize with an explicit recovery policy.
func MaterializeWith(v interface{}, policy *RecoveryPolicy) (attr.Value, error) {
	timer := metrics.NewTimer()

	val, err := wrapRead(v)
	if err != nil {
		metrics.ArraysMaterialized.WithLabelValues("unknown", "failure").Inc()
		return attr.Value{}, err
	}

	out, recovered, err := materializeArray(val.Array, policy)
	if err != nil {
		metrics.ArraysMaterialized.WithLabelValues(val.Array.Kind().String(), "failure").Inc()
		return attr.Value{}, err
	}

	status := "success"
	if recovered {
		status = "recovered"
	}
	metrics.ArraysMaterialized.WithLabelValues(out.Kind().String(), status).Inc()
	metrics.PipelineLatency.WithLabelValues("materialize").Observe(float64(timer.Stop().Nanoseconds()))

	return attr.Value{Array: out, Scalar: val.Scalar}, nil
}

// materializeArray dispatches once on the stored element kind.
func materializeArray(arr *attr.Array, policy *RecoveryPolicy) (out *attr.Array, recovered bool, err error) {
	switch arr.Kind() {
	case attr.KindByteString:
		elems, _ := arr.ByteStrings()
		texts := make([]string, len(elems))
		for i, b := range elems {
			texts[i] = textenc.DecodeASCII(b)
		}
		return unescapeAll(arr, texts, policy)

	case attr.KindObject:
		// Covers legacy variable-length producers: elements may be raw
		// bytes or text already decoded upstream (but still escaped).
		elems, _ := arr.Objects()
		texts := make([]string, len(elems))
		for i, e := range elems {
			switch t := e.(type) {
			case []byte:
				texts[i] = textenc.DecodeASCII(t)
			case string:
				texts[i] = t
			default:
				decodeErr := loomerrors.New(loomerrors.ErrorTypeData, "stored object element is not text or byte-string").
					WithDetail("index", i).
					WithDetail("go_type", textenc.Stringify(t))
				return recoverLegacy(arr, policy, decodeErr)
			}
		}
		return unescapeAll(arr, texts, policy)

	case attr.KindText:
		// Already native unicode; this path was never ASCII-escaped, so
		// there is nothing to resolve (and no double-unescaping).
		return arr, false, nil

	default:
		// Numeric and boolean-as-byte arrays pass through unchanged.
		return arr, false, nil
	}
}

// unescapeAll resolves XML character references in every element. A failed
// element hands the whole array to the recovery policy.
func unescapeAll(arr *attr.Array, texts []string, policy *RecoveryPolicy) (*attr.Array, bool, error) {
	out := make([]string, len(texts))
	for i, s := range texts {
		u, err := textenc.Unescape(s)
		if err != nil {
			return recoverLegacy(arr, policy, err)
		}
		out[i] = u
	}
	return attr.Strings(out), false, nil
}

// recoverLegacy applies the legacy recovery policy to the raw first element of
// the stored array. Recovery yields a single sanitized value and must never
// raise further; when no known pattern applies, the original decode error
// propagates unchanged.
func recoverLegacy(arr *attr.Array, policy *RecoveryPolicy, cause error) (*attr.Array, bool, error) {
	if arr.Len() > 0 {
		if raw, ok := arr.At(0).([]byte); ok {
			if sanitized, _, applied := policy.Recover(raw); applied {
				return attr.Strings([]string{textenc.DecodeASCII(sanitized)}), true, nil
			}
		}
	}
	return nil, false, cause
}

// wrapRead wraps a read-path input, recording scalar-ness. A bare []byte is
// a scalar byte string here: that is the shape in which a store hands back
// a scalar attribute, and the one the legacy recovery shim targets.
func wrapRead(v interface{}) (attr.Value, error) {
	switch s := v.(type) {
	case attr.Value:
		return s, nil
	case *attr.Array:
		return attr.ArrayValue(s), nil
	case string:
		return attr.ScalarValue(attr.Strings([]string{s})), nil
	case []byte:
		return attr.ScalarValue(attr.ByteStrings([][]byte{s})), nil
	case bool:
		return attr.ScalarValue(attr.Bools([]bool{s})), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		wrapped, _ := wrapScalarWrite(v)
		arr, err := attr.FromSlice(wrapped)
		if err != nil {
			return attr.Value{}, err
		}
		return attr.ScalarValue(arr), nil
	default:
		arr, err := attr.FromSlice(v)
		if err != nil {
			return attr.Value{}, loomerrors.Wrap(err, loomerrors.ErrorTypeData, "unsupported stored array")
		}
		return attr.ArrayValue(arr), nil
	}
}
