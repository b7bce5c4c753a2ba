package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlikhuva/loompy/pkg/attr"
	"github.com/jlikhuva/loompy/pkg/loomerrors"
	"github.com/jlikhuva/loompy/pkg/textenc"
)

func TestNormalizeNumericPassthrough(t *testing.T) {
	in := []int32{1, 2, 3}
	v, err := Normalize(in, DefaultOptions())
	require.NoError(t, err)
	assert.False(t, v.Scalar)
	assert.Equal(t, attr.KindInteger, v.Array.Kind())
	// The element width (dtype) is preserved.
	assert.Equal(t, in, v.Array.Data())

	f, err := Normalize([]float32{1.5}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5}, f.Array.Data())
}

func TestNormalizeBoolean(t *testing.T) {
	v, err := Normalize([]bool{true, false}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, attr.KindBoolean, v.Array.Kind())

	bytes, ok := v.Array.Uint8s()
	require.True(t, ok)
	assert.Equal(t, []uint8{1, 0}, bytes)
}

func TestNormalizeText(t *testing.T) {
	v, err := Normalize([]string{"café"}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, attr.KindByteString, v.Array.Kind())

	elems, _ := v.Array.ByteStrings()
	assert.Equal(t, []byte("caf&#233;"), elems[0])
}

func TestNormalizeScalarPreserved(t *testing.T) {
	v, err := Normalize("hello", DefaultOptions())
	require.NoError(t, err)
	assert.True(t, v.Scalar)
	assert.Equal(t, 1, v.Len())
	// A scalar unwraps to a single element, not a one-element slice.
	assert.Equal(t, []byte("hello"), v.Interface())

	n, err := Normalize(int16(7), DefaultOptions())
	require.NoError(t, err)
	assert.True(t, n.Scalar)
	assert.Equal(t, int16(7), n.Interface())
}

func TestNormalizeShapeRejection(t *testing.T) {
	m, err := attr.NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	_, err = Normalize(m, DefaultOptions())
	require.Error(t, err)
	assert.True(t, loomerrors.IsType(err, loomerrors.ErrorTypeShape))
}

func TestNormalizeSingletonMatrix(t *testing.T) {
	m, err := attr.NewMatrix(1, 3, []int64{1, 2, 3})
	require.NoError(t, err)

	v, err := Normalize(m, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, v.Array.Data())
}

func TestNormalizeSparse(t *testing.T) {
	coo, err := attr.NewCOOMatrix(1, 3, []int{0}, []int{1}, []float64{2})
	require.NoError(t, err)

	v, err := Normalize(coo, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, attr.KindFloating, v.Array.Kind())
	assert.Equal(t, []float64{0, 2, 0}, v.Array.Data())
}

func TestNormalizeMixedTypesLenient(t *testing.T) {
	v, err := Normalize([]interface{}{1, "a", 2.5}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, attr.KindByteString, v.Array.Kind())

	elems, _ := v.Array.ByteStrings()
	assert.Equal(t, [][]byte{[]byte("1"), []byte("a"), []byte("2.5")}, elems)
}

func TestNormalizeMixedTypesStrict(t *testing.T) {
	opts := DefaultOptions()
	opts.Policy = textenc.PolicyStrict

	_, err := Normalize([]interface{}{1, "a"}, opts)
	require.Error(t, err)
	assert.True(t, loomerrors.IsType(err, loomerrors.ErrorTypeValue))
}

func TestNormalizeObjectStrings(t *testing.T) {
	opts := DefaultOptions()
	opts.ObjectStrings = true

	v, err := Normalize([]string{"café", "x"}, opts)
	require.NoError(t, err)
	// Object-string mode bypasses the ASCII encoding entirely.
	assert.Equal(t, attr.KindObject, v.Array.Kind())

	elems, _ := v.Array.Objects()
	assert.Equal(t, []interface{}{"café", "x"}, elems)
}

func TestNormalizeRejectsUnsupportedContainer(t *testing.T) {
	_, err := Normalize(map[string]string{"a": "b"}, DefaultOptions())
	require.Error(t, err)
	assert.True(t, loomerrors.IsType(err, loomerrors.ErrorTypeType))
}

func TestNormalizeByteSliceIsNumeric(t *testing.T) {
	// On the write path a bare []byte is integer data, not a scalar.
	v, err := Normalize([]byte{1, 2, 3}, DefaultOptions())
	require.NoError(t, err)
	assert.False(t, v.Scalar)
	assert.Equal(t, attr.KindInteger, v.Array.Kind())
	assert.Equal(t, []uint8{1, 2, 3}, v.Array.Data())
}

func TestRoundTripASCII(t *testing.T) {
	in := []string{"alpha", "beta", "gamma"}

	stored, err := Normalize(in, DefaultOptions())
	require.NoError(t, err)

	back, err := Materialize(stored)
	require.NoError(t, err)
	assert.False(t, back.Scalar)
	assert.Equal(t, in, back.Interface())
}

func TestRoundTripEscaped(t *testing.T) {
	stored, err := Normalize([]string{"café"}, DefaultOptions())
	require.NoError(t, err)

	back, err := Materialize(stored)
	require.NoError(t, err)
	assert.Equal(t, []string{"café"}, back.Interface())
}

func TestRoundTripScalar(t *testing.T) {
	stored, err := Normalize("hello", DefaultOptions())
	require.NoError(t, err)

	back, err := Materialize(stored)
	require.NoError(t, err)
	assert.True(t, back.Scalar)
	assert.Equal(t, "hello", back.Interface())
}

func TestRoundTripBooleanAndNumeric(t *testing.T) {
	stored, err := Normalize([]bool{true, false, true}, DefaultOptions())
	require.NoError(t, err)

	back, err := Materialize(stored)
	require.NoError(t, err)
	// Boolean attributes come back in their persisted 0/1 form.
	assert.Equal(t, []uint8{1, 0, 1}, back.Interface())

	nums, err := Normalize([]float64{1.5, 2.5}, DefaultOptions())
	require.NoError(t, err)
	nback, err := Materialize(nums)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, nback.Interface())
}
