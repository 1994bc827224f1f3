package versioninfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddablib/vibin/varrec"
)

func TestAddStringTableAndString(t *testing.T) {
	vi := New(varrec.Wide32)
	ti, err := vi.AddStringTable("040904B0")
	require.NoError(t, err)
	assert.Equal(t, 0, ti)

	si, err := vi.AddString(ti, "ProductName", "Widget")
	require.NoError(t, err)
	assert.Equal(t, 0, si)

	value, err := vi.StringValueByName(ti, "ProductName")
	require.NoError(t, err)
	assert.Equal(t, "Widget", value)

	names, err := vi.Strings(ti)
	require.NoError(t, err)
	assert.Equal(t, []string{"ProductName"}, names)
}

func TestAddStringTableRejectsBadTransString(t *testing.T) {
	vi := New(varrec.Wide32)
	_, err := vi.AddStringTable("not-hex!")
	assert.ErrorIs(t, err, varrec.Corrupt)
}

// TestAddStringDuplicateNameFails covers spec.md §8.2 S3.
func TestAddStringDuplicateNameFails(t *testing.T) {
	vi := New(varrec.Wide32)
	ti, err := vi.AddStringTable("040904B0")
	require.NoError(t, err)
	_, err = vi.AddString(ti, "ProductName", "Widget")
	require.NoError(t, err)

	_, err = vi.AddString(ti, "ProductName", "Gadget")
	assert.ErrorIs(t, err, varrec.DuplicateName)
}

func TestAddOrUpdateStringOverwritesExisting(t *testing.T) {
	vi := New(varrec.Wide32)
	ti, _ := vi.AddStringTable("040904B0")
	_, err := vi.AddString(ti, "ProductName", "Widget")
	require.NoError(t, err)

	idx, err := vi.AddOrUpdateString(ti, "ProductName", "Gadget")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	value, err := vi.StringValueByName(ti, "ProductName")
	require.NoError(t, err)
	assert.Equal(t, "Gadget", value)
}

func TestStringValueByNameUnknownName(t *testing.T) {
	vi := New(varrec.Wide32)
	ti, _ := vi.AddStringTable("040904B0")
	_, err := vi.StringValueByName(ti, "Nope")
	assert.ErrorIs(t, err, varrec.UnknownName)
}

func TestDeleteStringByName(t *testing.T) {
	vi := New(varrec.Wide32)
	ti, _ := vi.AddStringTable("040904B0")
	_, err := vi.AddString(ti, "ProductName", "Widget")
	require.NoError(t, err)

	require.NoError(t, vi.DeleteStringByName(ti, "ProductName"))
	count, err := vi.StringCount(ti)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteStringByNameUnknownFails(t *testing.T) {
	vi := New(varrec.Wide32)
	ti, _ := vi.AddStringTable("040904B0")
	err := vi.DeleteStringByName(ti, "Nope")
	assert.ErrorIs(t, err, varrec.UnknownName)
}

func TestIndexOfStringTableByTrans(t *testing.T) {
	vi := New(varrec.Wide32)
	vi.AddStringTable("040904B0")
	idx := vi.IndexOfStringTableByTrans(0x0409, 0x04B0)
	assert.Equal(t, 0, idx)
	assert.Equal(t, -1, vi.IndexOfStringTableByTrans(0x0407, 0x04E4))
}

func TestSetStringValueByName(t *testing.T) {
	vi := New(varrec.Wide32)
	ti, _ := vi.AddStringTable("040904B0")
	vi.AddString(ti, "ProductName", "Widget")

	require.NoError(t, vi.SetStringValueByName(ti, "ProductName", "Renamed"))
	value, err := vi.StringValueByName(ti, "ProductName")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", value)
}

func TestDeleteStringTableRemovesAllStrings(t *testing.T) {
	vi := New(varrec.Wide32)
	ti, _ := vi.AddStringTable("040904B0")
	vi.AddString(ti, "ProductName", "Widget")

	require.NoError(t, vi.DeleteStringTable(ti))
	assert.Equal(t, 0, vi.StringTableCount())
}
