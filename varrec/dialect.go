package varrec

import "unicode/utf16"

// Dialect distinguishes the two VarRec framings a tree can use. It is
// stored once per tree (on the root, and threaded to every node created
// under it) rather than per-node, since spec.md §4.2.4 is explicit that a
// single tree is always homogeneous and conversion between dialects goes
// through Assign, not through mixing nodes of different dialects in one
// tree. This is the "tag-once design" spec.md's Design Notes prefer over
// the original's virtual class-of-node dispatch.
type Dialect int

const (
	// ANSI16 is the legacy 16-bit dialect: single-byte ANSI keys, no
	// wType field, value sizing is always a byte count.
	ANSI16 Dialect = iota
	// Wide32 is the modern 32-bit dialect: UTF-16 keys, an explicit
	// wType discriminator, and code-unit-count value sizing for TEXT.
	Wide32
)

func (d Dialect) String() string {
	if d == Wide32 {
		return "wide32"
	}
	return "ansi16"
}

// DataType is the wType discriminator. Only Wide32 trees write or read it;
// ANSI16 trees implicitly behave as Binary throughout, per spec.md §3.1.
type DataType uint16

const (
	Binary DataType = 0
	Text   DataType = 1
)

func (t DataType) String() string {
	if t == Text {
		return "text"
	}
	return "binary"
}

// padToDword returns the number of zero bytes needed to round n up to the
// next multiple of 4.
func padToDword(n int) int {
	if rem := n % 4; rem != 0 {
		return 4 - rem
	}
	return 0
}

// encodeKey renders name (assumed ASCII by format convention, per spec.md
// §9) as the dialect's key bytes, NUL terminator included.
func encodeKey(dialect Dialect, name string) []byte {
	return EncodeCString(dialect, name)
}

// EncodeCString renders s as a NUL-terminated string in the dialect's
// encoding: one byte per code unit for ANSI16, two (little-endian) for
// Wide32. It is shared between VarRec keys (this package) and
// versioninfo's TEXT node values, since both are the same on-the-wire
// shape — a NUL-terminated dialect string.
func EncodeCString(dialect Dialect, s string) []byte {
	if dialect == Wide32 {
		units := utf16.Encode([]rune(s))
		out := make([]byte, 0, len(units)*2+2)
		for _, u := range units {
			out = append(out, byte(u), byte(u>>8))
		}
		return append(out, 0, 0)
	}
	out := make([]byte, 0, len(s)+1)
	out = append(out, []byte(s)...)
	return append(out, 0)
}

// DecodeCString decodes a NUL-terminated dialect string, stopping at the
// first terminator found (or at the end of data if none is present).
func DecodeCString(dialect Dialect, data []byte) string {
	if dialect == Wide32 {
		units := make([]uint16, 0, len(data)/2)
		for i := 0; i+1 < len(data); i += 2 {
			u := uint16(data[i]) | uint16(data[i+1])<<8
			if u == 0 {
				break
			}
			units = append(units, u)
		}
		return string(utf16.Decode(units))
	}
	if n := indexByte(data, 0); n >= 0 {
		return string(data[:n])
	}
	return string(data)
}

func indexByte(data []byte, b byte) int {
	for i, c := range data {
		if c == b {
			return i
		}
	}
	return -1
}

// asciiEqualFold compares two keys the way the original format does:
// a locale-independent ASCII case fold, not full-Unicode casefolding
// (spec.md's Design Notes are explicit about this).
func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
