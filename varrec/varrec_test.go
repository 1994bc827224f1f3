package varrec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSampleTree(dialect Dialect) *Node {
	root := NewRoot(dialect, "VS_VERSION_INFO")
	root.SetValue(make([]byte, 52))
	varFileInfo := root.AddChild("VarFileInfo", Binary)
	translation := varFileInfo.AddChild("Translation", Binary)
	translation.SetValue([]byte{0x09, 0x08, 0xB0, 0x04})

	stringFileInfo := root.AddChild("StringFileInfo", Binary)
	table := stringFileInfo.AddChild("080904B0", Binary)
	name := table.AddChild("CompanyName", Text)
	name.SetValue(textValue(dialect, "Acme Ltd"))

	return root
}

func textValue(dialect Dialect, s string) []byte {
	if dialect == ANSI16 {
		return append([]byte(s), 0)
	}
	encoded := encodeKey(Wide32, s) // reuses the UTF-16+NUL encoder
	return encoded
}

func TestRoundTripWide32(t *testing.T) {
	root := buildSampleTree(Wide32)
	ms := NewMemoryStream(nil)
	require.NoError(t, WriteTree(ms, root))

	ms2 := NewMemoryStream(ms.Bytes())
	parsed, err := ReadTree(ms2, Wide32)
	require.NoError(t, err)

	assert.Equal(t, "VS_VERSION_INFO", parsed.Name())
	require.Equal(t, 2, parsed.ChildCount())

	varFileInfo := parsed.FindChild("VarFileInfo")
	require.NotNil(t, varFileInfo)
	translation := varFileInfo.FindChild("Translation")
	require.NotNil(t, translation)
	assert.Equal(t, []byte{0x09, 0x08, 0xB0, 0x04}, translation.Value())

	stringFileInfo := parsed.FindChild("StringFileInfo")
	require.NotNil(t, stringFileInfo)
	table := stringFileInfo.FindChild("080904B0")
	require.NotNil(t, table)
	name := table.FindChild("CompanyName")
	require.NotNil(t, name)
	assert.Equal(t, Text, name.DataType())
	assert.Equal(t, textValue(Wide32, "Acme Ltd"), name.Value())
}

func TestRoundTripANSI16(t *testing.T) {
	root := buildSampleTree(ANSI16)
	ms := NewMemoryStream(nil)
	require.NoError(t, WriteTree(ms, root))

	ms2 := NewMemoryStream(ms.Bytes())
	parsed, err := ReadTree(ms2, ANSI16)
	require.NoError(t, err)

	stringFileInfo := parsed.FindChild("StringFileInfo")
	table := stringFileInfo.FindChild("080904B0")
	name := table.FindChild("CompanyName")
	require.NotNil(t, name)
	// ANSI16 has no wType field; data type always reads back Binary.
	assert.Equal(t, Binary, name.DataType())
	assert.Equal(t, []byte("Acme Ltd\x00"), name.Value())
}

func TestCaseInsensitiveChildLookup(t *testing.T) {
	root := NewRoot(Wide32, "VS_VERSION_INFO")
	root.AddChild("StringFileInfo", Binary)

	assert.NotNil(t, root.FindChild("stringfileinfo"))
	assert.NotNil(t, root.FindChild("STRINGFILEINFO"))
	assert.Equal(t, 0, root.IndexOfChild("StringFileInfo"))
	assert.Equal(t, -1, root.IndexOfChild("NoSuchThing"))
}

func TestReadEmptyStreamIsEmptyError(t *testing.T) {
	_, err := ReadTree(NewMemoryStream(nil), Wide32)
	require.Error(t, err)
	assert.ErrorIs(t, err, Empty)
}

func TestDeleteChildAtIndexOutOfBounds(t *testing.T) {
	root := NewRoot(Wide32, "VS_VERSION_INFO")
	err := root.DeleteChildAt(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, IndexOutOfBounds)
}

// TestQuirkyValueLengthTolerance hand-crafts a Wide32 String record where
// wValueLength is the value's byte count instead of its code-unit count
// (the producer bug spec.md §4.2.3/§8.2 S4 describes), and checks that the
// reader recovers the correct string by scanning for the terminator, and
// that re-serializing emits the correct code-unit count.
func TestQuirkyValueLengthTolerance(t *testing.T) {
	value := encodeKey(Wide32, "1.2.3.4") // UTF-16 bytes + 2-byte NUL

	key := encodeKey(Wide32, "FileVersion")
	header := 2 + 2 + 2 + len(key) // wLength + wValueLength + wType + key
	headerPad := padToDword(header)
	body := header + headerPad + len(value)
	bodyPad := padToDword(body)
	total := body + bodyPad

	buf := make([]byte, total)
	putU16(buf[0:], uint16(total))
	putU16(buf[2:], uint16(len(value))) // BUG: byte count, not code-unit count
	putU16(buf[4:], uint16(Text))
	copy(buf[6:], key)
	copy(buf[header+headerPad:], value)

	node, _, err := readNode(NewMemoryStream(buf), Wide32)
	require.NoError(t, err)
	assert.Equal(t, "FileVersion", node.Name())
	assert.Equal(t, value, node.Value())

	ms := NewMemoryStream(nil)
	require.NoError(t, WriteTree(ms, node))
	out := ms.Bytes()
	gotValueLength := uint16(out[2]) | uint16(out[3])<<8
	assert.Equal(t, uint16(len(value)/2), gotValueLength)
}

func putU16(buf []byte, v uint16) {
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
}

func TestPadToDword(t *testing.T) {
	cases := map[int]int{0: 0, 1: 3, 2: 2, 3: 1, 4: 0, 5: 3}
	for in, want := range cases {
		assert.Equal(t, want, padToDword(in), "padToDword(%d)", in)
	}
}

func TestSerializeIsDwordAlignedAtRoot(t *testing.T) {
	root := buildSampleTree(Wide32)
	ms := NewMemoryStream(nil)
	require.NoError(t, WriteTree(ms, root))
	assert.Equal(t, 0, len(ms.Bytes())%4)
}
