package arrowcompat

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlikhuva/loompy/pkg/attr"
	"github.com/jlikhuva/loompy/pkg/loomerrors"
)

func TestFromArrowInt64(t *testing.T) {
	mem := memory.NewGoAllocator()

	b := array.NewInt64Builder(mem)
	defer b.Release()
	b.AppendValues([]int64{1, 2, 3}, nil)

	arr := b.NewInt64Array()
	defer arr.Release()

	got, err := FromArrow(arr)
	require.NoError(t, err)
	assert.Equal(t, attr.KindInteger, got.Kind())
	assert.Equal(t, []int64{1, 2, 3}, got.Data())
}

func TestFromArrowFloat32(t *testing.T) {
	mem := memory.NewGoAllocator()

	b := array.NewFloat32Builder(mem)
	defer b.Release()
	b.AppendValues([]float32{1.5, 2.5}, nil)

	arr := b.NewFloat32Array()
	defer arr.Release()

	got, err := FromArrow(arr)
	require.NoError(t, err)
	assert.Equal(t, attr.KindFloating, got.Kind())
	assert.Equal(t, []float32{1.5, 2.5}, got.Data())
}

func TestFromArrowBoolean(t *testing.T) {
	mem := memory.NewGoAllocator()

	b := array.NewBooleanBuilder(mem)
	defer b.Release()
	b.AppendValues([]bool{true, false}, nil)

	arr := b.NewBooleanArray()
	defer arr.Release()

	got, err := FromArrow(arr)
	require.NoError(t, err)
	assert.Equal(t, attr.KindBoolean, got.Kind())
	assert.Equal(t, []bool{true, false}, got.Data())
}

func TestFromArrowString(t *testing.T) {
	mem := memory.NewGoAllocator()

	b := array.NewStringBuilder(mem)
	defer b.Release()
	b.AppendValues([]string{"café", "ok"}, nil)

	arr := b.NewStringArray()
	defer arr.Release()

	got, err := FromArrow(arr)
	require.NoError(t, err)
	assert.Equal(t, attr.KindText, got.Kind())
	assert.Equal(t, []string{"café", "ok"}, got.Data())
}

func TestFromArrowBinary(t *testing.T) {
	mem := memory.NewGoAllocator()

	b := array.NewBinaryBuilder(mem, arrow.BinaryTypes.Binary)
	defer b.Release()
	b.Append([]byte("ab"))
	b.Append([]byte("wxyz"))

	arr := b.NewBinaryArray()
	defer arr.Release()

	got, err := FromArrow(arr)
	require.NoError(t, err)
	assert.Equal(t, attr.KindByteString, got.Kind())
	assert.Equal(t, [][]byte{[]byte("ab"), []byte("wxyz")}, got.Data())
	assert.Equal(t, 4, got.Width())
}

func TestFromArrowRejectsNulls(t *testing.T) {
	mem := memory.NewGoAllocator()

	b := array.NewInt32Builder(mem)
	defer b.Release()
	b.Append(1)
	b.AppendNull()

	arr := b.NewInt32Array()
	defer arr.Release()

	_, err := FromArrow(arr)
	require.Error(t, err)
	assert.True(t, loomerrors.IsType(err, loomerrors.ErrorTypeValue))
}
