package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlikhuva/loompy/pkg/attr"
)

func TestMaterializeByteStrings(t *testing.T) {
	in := attr.ByteStrings([][]byte{[]byte("caf&#233;"), []byte("ok")})

	v, err := Materialize(in)
	require.NoError(t, err)
	assert.Equal(t, attr.KindText, v.Array.Kind())
	assert.Equal(t, []string{"café", "ok"}, v.Interface())
}

func TestMaterializeScalarByteString(t *testing.T) {
	v, err := Materialize([]byte("caf&#233;"))
	require.NoError(t, err)
	assert.True(t, v.Scalar)
	assert.Equal(t, "café", v.Interface())
}

func TestMaterializeLegacyUTF8Bytes(t *testing.T) {
	// A legacy producer stored raw UTF-8 without escaping. High bytes are
	// dropped, matching the documented ascii-ignore behavior.
	v, err := Materialize([][]byte{[]byte("caf\xc3\xa9")})
	require.NoError(t, err)
	assert.Equal(t, []string{"caf"}, v.Interface())
}

func TestMaterializeNonBreakingSpaceScalar(t *testing.T) {
	// The UTF-8 non-breaking space embedded in a scalar must never raise;
	// the sanitized value comes back with the sequence removed.
	v, err := Materialize([]byte("12\xc2\xa034"))
	require.NoError(t, err)
	assert.True(t, v.Scalar)
	assert.Equal(t, "1234", v.Interface())
}

func TestMaterializeObjectElements(t *testing.T) {
	// Legacy variable-length producers surface as object arrays whose
	// elements may be raw bytes or already-decoded (but still escaped) text.
	in := attr.Objects([]interface{}{[]byte("a&#233;"), "b&#233;"})

	v, err := Materialize(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"aé", "bé"}, v.Interface())
}

func TestMaterializeNativeTextUnchanged(t *testing.T) {
	// True unicode input was never ASCII-escaped, so references inside it
	// are literal text and must not be resolved.
	v, err := Materialize([]string{"café", "a&#233;b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"café", "a&#233;b"}, v.Interface())
}

func TestMaterializeIdempotent(t *testing.T) {
	first, err := Materialize(attr.ByteStrings([][]byte{[]byte("caf&#233;")}))
	require.NoError(t, err)

	second, err := Materialize(first.Array)
	require.NoError(t, err)
	// No double-unescaping.
	assert.Equal(t, first.Interface(), second.Interface())
}

func TestMaterializeNumericPassthrough(t *testing.T) {
	v, err := Materialize([]int32{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, v.Interface())

	b, err := Materialize([]float64{0.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, b.Interface())
}

func TestMaterializeScalarNumeric(t *testing.T) {
	v, err := Materialize(3.5)
	require.NoError(t, err)
	assert.True(t, v.Scalar)
	assert.Equal(t, 3.5, v.Interface())
}

func TestMaterializeRecoversObjectAnomaly(t *testing.T) {
	// An object array with a non-text element fails the primary decode;
	// the recovery policy strips the known pattern from the raw scalar.
	in := attr.Objects([]interface{}{[]byte("ab\xc2\xa0cd"), 42})

	v, err := Materialize(in)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, "abcd", v.Array.At(0))
}

func TestMaterializePropagatesUnrecoverable(t *testing.T) {
	// No byte-string first element means the policy cannot act, so the
	// decode error propagates unchanged.
	in := attr.Objects([]interface{}{42, []byte("x")})

	_, err := Materialize(in)
	require.Error(t, err)
}

func TestRecoveryPolicy(t *testing.T) {
	policy := DefaultRecoveryPolicy()

	sanitized, applied, ok := policy.Recover([]byte("a\xc2\xa0b\xc2\xa0c"))
	require.True(t, ok)
	assert.Equal(t, []byte("abc"), sanitized)
	assert.Equal(t, []string{"utf8_nbsp"}, applied)

	_, _, ok = policy.Recover([]byte("clean"))
	assert.False(t, ok)

	_, _, ok = policy.Recover(nil)
	assert.False(t, ok)
}

func TestMaterializeWithCustomPolicy(t *testing.T) {
	policy := &RecoveryPolicy{
		Patterns: []LegacyPattern{
			{Name: "zero_width_space", Sequence: []byte{0xE2, 0x80, 0x8B}},
		},
	}

	in := attr.Objects([]interface{}{[]byte("a\xe2\x80\x8bb"), 1})
	v, err := MaterializeWith(in, policy)
	require.NoError(t, err)
	assert.Equal(t, "ab", v.Array.At(0))
}
