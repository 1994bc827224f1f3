package varrec

import (
	"errors"
	"io"
	"unicode/utf16"
)

// ReadTree parses a complete VarRec tree of the given dialect from s,
// starting at the stream's current position. An empty stream reports
// KindEmpty; anything else that goes wrong reports KindCorrupt.
//
// Grounded on pelican.parseVersion/parseVSBlock's recursive descent, with
// the read-only section-reader walk generalized into a tree-building one.
func ReadTree(s Stream, dialect Dialect) (*Node, error) {
	size, err := s.Size()
	if err != nil {
		return nil, corrupt(err, "querying stream size")
	}
	if size == 0 {
		return nil, Empty
	}
	root, _, err := readNode(s, dialect)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// readNode reads one record at the stream's current position and returns
// the node plus its "outer" span (spec.md §4.2.3 step 6): the number of
// bytes from the record's start through its own trailing DWORD pad. The
// caller is responsible for summing outer spans when walking a sequence of
// siblings.
func readNode(s Stream, dialect Dialect) (*Node, int64, error) {
	start, err := s.Pos()
	if err != nil {
		return nil, 0, corrupt(err, "reading position")
	}

	wLength, err := readU16(s)
	if err != nil {
		return nil, 0, corrupt(err, "reading wLength")
	}
	wValueLength, err := readU16(s)
	if err != nil {
		return nil, 0, corrupt(err, "reading wValueLength")
	}

	dataType := Binary
	if dialect == Wide32 {
		wType, err := readU16(s)
		if err != nil {
			return nil, 0, corrupt(err, "reading wType")
		}
		dataType = DataType(wType)
	}

	key, err := readKey(s, dialect)
	if err != nil {
		return nil, 0, corrupt(err, "reading key")
	}

	posAfterKey, err := s.Pos()
	if err != nil {
		return nil, 0, corrupt(err, "reading position")
	}
	headerRaw := int(posAfterKey - start)
	if pad := padToDword(headerRaw); pad > 0 {
		if err := skip(s, pad); err != nil {
			return nil, 0, corrupt(err, "skipping header padding")
		}
	}
	headerSize := headerRaw + padToDword(headerRaw)

	node := &Node{dialect: dialect, name: key, dataType: dataType}

	if dialect == Wide32 && dataType == Text {
		value, err := readNulTerminatedUTF16Bytes(s)
		if err != nil {
			return nil, 0, corrupt(err, "reading quirk-tolerant text value of %q", key)
		}
		node.value = value
		// TEXT nodes are defined to have no children (spec.md §4.2.3 step
		// 4 consequence): wValueLength for TEXT is untrustworthy, so the
		// children offset it would otherwise imply can't be trusted
		// either. We've already recovered the real string by scanning for
		// the NUL; stop here regardless of what wLength claims.
		outer := int64(wLength) + int64(padToDword(int(wLength)))
		if err := s.SeekAbs(start + outer); err != nil {
			return nil, 0, corrupt(err, "seeking past %q", key)
		}
		return node, outer, nil
	}

	valueByteSize := int(wValueLength)
	if valueByteSize > 0 {
		buf := make([]byte, valueByteSize)
		if err := s.ReadExact(buf); err != nil {
			return nil, 0, corrupt(err, "reading value of %q", key)
		}
		node.value = buf
	}
	valuePad := padToDword(valueByteSize)
	if valuePad > 0 {
		if err := skip(s, valuePad); err != nil {
			return nil, 0, corrupt(err, "skipping value padding of %q", key)
		}
	}

	childrenOffset := headerSize + valueByteSize + valuePad
	childrenSize := int(wLength) - childrenOffset
	if childrenSize < 0 {
		return nil, 0, newError(KindCorrupt, "child bytes overflow parent %q (wLength=%d, header+value=%d)", key, wLength, childrenOffset)
	}
	if childrenSize > 0 {
		if err := s.SeekAbs(start + int64(childrenOffset)); err != nil {
			return nil, 0, corrupt(err, "seeking to children of %q", key)
		}
		consumed := 0
		for consumed < childrenSize {
			child, childOuter, err := readNode(s, dialect)
			if err != nil {
				return nil, 0, err
			}
			child.parent = node
			node.children = append(node.children, child)
			consumed += int(childOuter)
		}
	}

	outer := int64(wLength) + int64(padToDword(int(wLength)))
	if err := s.SeekAbs(start + outer); err != nil {
		return nil, 0, corrupt(err, "seeking past %q", key)
	}
	return node, outer, nil
}

func readU16(s Stream) (uint16, error) {
	var buf [2]byte
	if err := s.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return uint16(buf[0]) | uint16(buf[1])<<8, nil
}

func skip(s Stream, n int) error {
	if n == 0 {
		return nil
	}
	buf := make([]byte, n)
	return s.ReadExact(buf)
}

// readKey reads a NUL-terminated key in the dialect's code-unit width:
// one byte per unit for ANSI16, two bytes (little-endian uint16) per unit
// for Wide32.
func readKey(s Stream, dialect Dialect) (string, error) {
	if dialect == ANSI16 {
		var out []byte
		var b [1]byte
		for {
			if err := s.ReadExact(b[:]); err != nil {
				return "", err
			}
			if b[0] == 0 {
				return string(out), nil
			}
			out = append(out, b[0])
		}
	}

	var units []uint16
	var b [2]byte
	for {
		if err := s.ReadExact(b[:]); err != nil {
			return "", err
		}
		u := uint16(b[0]) | uint16(b[1])<<8
		if u == 0 {
			return string(utf16.Decode(units)), nil
		}
		units = append(units, u)
	}
}

// readNulTerminatedUTF16Bytes reads 16-bit code units one at a time until
// a zero unit is read, returning the raw little-endian bytes including the
// terminator. This is the producer-quirk-tolerant path spec.md §4.2.3
// mandates for TEXT values: wValueLength is never consulted.
//
// Grounded on pelican.parseVersion's parseNullTerminatedString, generalized
// from "discard the trailing NUL" to "keep it" since versioninfo's String
// node contract (spec.md §3.1) requires the terminator to remain in value.
func readNulTerminatedUTF16Bytes(s Stream) ([]byte, error) {
	var out []byte
	var b [2]byte
	for {
		if err := s.ReadExact(b[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, newError(KindCorrupt, "NUL terminator not found before end of stream")
			}
			return nil, err
		}
		out = append(out, b[0], b[1])
		if b[0] == 0 && b[1] == 0 {
			return out, nil
		}
	}
}
