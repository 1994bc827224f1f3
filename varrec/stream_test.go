package varrec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStreamGrowsOnWrite(t *testing.T) {
	ms := NewMemoryStream(nil)
	require.NoError(t, ms.WriteExact([]byte{1, 2, 3}))
	size, err := ms.Size()
	require.NoError(t, err)
	assert.EqualValues(t, 3, size)
	assert.Equal(t, []byte{1, 2, 3}, ms.Bytes())
}

func TestMemoryStreamSeekAndReadExact(t *testing.T) {
	ms := NewMemoryStream([]byte{1, 2, 3, 4, 5})
	require.NoError(t, ms.SeekAbs(2))
	buf := make([]byte, 2)
	require.NoError(t, ms.ReadExact(buf))
	assert.Equal(t, []byte{3, 4}, buf)
	pos, err := ms.Pos()
	require.NoError(t, err)
	assert.EqualValues(t, 4, pos)
}

func TestMemoryStreamReadExactPastEndFails(t *testing.T) {
	ms := NewMemoryStream([]byte{1, 2})
	buf := make([]byte, 3)
	require.Error(t, ms.ReadExact(buf))
}

func TestMemoryStreamWriteAtOffsetOverwrites(t *testing.T) {
	ms := NewMemoryStream([]byte{1, 2, 3, 4})
	require.NoError(t, ms.SeekAbs(1))
	require.NoError(t, ms.WriteExact([]byte{9, 9}))
	assert.Equal(t, []byte{1, 9, 9, 4}, ms.Bytes())
}
