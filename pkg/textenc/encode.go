// Package textenc converts text-like attribute arrays to the canonical
// fixed-width ASCII byte-string form and back. Characters outside the 7-bit
// range are written as decimal XML numeric character references, so the
// persisted form is always plain ASCII.
package textenc

import (
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/jlikhuva/loompy/pkg/attr"
	jsonpool "github.com/jlikhuva/loompy/pkg/json"
	"github.com/jlikhuva/loompy/pkg/logger"
	"github.com/jlikhuva/loompy/pkg/loomerrors"
	"github.com/jlikhuva/loompy/pkg/metrics"
	stringpool "github.com/jlikhuva/loompy/pkg/strings"
)

// CoercionPolicy decides how an array of mixed object types is handled.
type CoercionPolicy int

const (
	// PolicyLenient stringifies mixed elements and emits a debug
	// diagnostic. This matches the historical behavior.
	PolicyLenient CoercionPolicy = iota
	// PolicyStrict rejects mixed element types with a value error.
	PolicyStrict
)

// Encode converts a 1-D text-like array to a fixed-width byte-string array.
//
//   - text arrays are escaped element-wise to 7-bit ASCII
//   - byte-string arrays are assumed already canonical and pass through
//   - object arrays are stringified first, subject to the coercion policy
//
// Any other element kind is a value error. Encoding is a pure,
// order-preserving, element-wise map.
func Encode(a *attr.Array, policy CoercionPolicy) (*attr.Array, error) {
	switch a.Kind() {
	case attr.KindText:
		elems, _ := a.Strings()
		return escapeAll(elems), nil

	case attr.KindByteString:
		// Already canonical; no re-escaping.
		return a, nil

	case attr.KindObject:
		elems, _ := a.Objects()
		if policy == PolicyStrict {
			return nil, loomerrors.New(loomerrors.ErrorTypeValue, "attribute contains mixed object types").
				WithDetail("types", distinctTypes(elems))
		}
		logger.Debug("attribute contains mixed object types; casting all to string",
			zap.Strings("types", distinctTypes(elems)))
		metrics.MixedTypeCoercions.Inc()

		strs := make([]string, len(elems))
		for i, e := range elems {
			strs[i] = Stringify(e)
		}
		return escapeAll(strs), nil

	default:
		return nil, loomerrors.New(loomerrors.ErrorTypeValue, "string values must be text or byte-string").
			WithDetail("kind", a.Kind().String())
	}
}

// Stringify renders an element in its natural string form. Primitives use
// direct formatting; composite values are rendered as JSON.
func Stringify(e interface{}) string {
	switch e.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, []byte:
		return stringpool.ValueToString(e)
	default:
		if s, err := jsonpool.MarshalToString(e); err == nil {
			return s
		}
		return stringpool.ValueToString(e)
	}
}

// Escape encodes a string to ASCII bytes, replacing every rune outside the
// 7-bit range with its decimal XML numeric character reference.
func Escape(s string) []byte {
	// Fast path: pure ASCII strings copy straight through.
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		out := make([]byte, len(s))
		copy(out, s)
		return out
	}

	b := stringpool.GetBuilder(stringpool.Small)
	defer stringpool.PutBuilder(b, stringpool.Small)

	for _, r := range s {
		if r < 0x80 {
			b.WriteByte(byte(r))
			continue
		}
		b.WriteString("&#")
		b.WriteString(strconv.Itoa(int(r)))
		b.WriteByte(';')
	}

	out := make([]byte, b.Len())
	copy(out, b.Bytes())
	return out
}

func escapeAll(elems []string) *attr.Array {
	out := make([][]byte, len(elems))
	for i, s := range elems {
		out[i] = Escape(s)
	}
	return attr.ByteStrings(out)
}

// distinctTypes lists the distinct Go element types of an object array in
// sorted order, for the mixed-type diagnostic.
func distinctTypes(elems []interface{}) []string {
	seen := make(map[string]struct{}, 4)
	for _, e := range elems {
		seen[stringpool.Sprintf("%T", e)] = struct{}{}
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
