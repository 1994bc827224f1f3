package versioninfo

import (
	"encoding/binary"
	"fmt"
)

const (
	ffiSignature     uint32 = 0xFEEF04BD
	ffiStrucVersion  uint32 = 0x00010000
	ffiSize                 = 52
)

// FixedFileInfo is the 52-byte VS_FIXEDFILEINFO record, field-for-field
// the same layout as pelican.VsFixedFileInfo, generalized here with
// get/set stamping (spec.md §3.2).
type FixedFileInfo struct {
	Signature        uint32
	StrucVersion     uint32
	FileVersionMS    uint32
	FileVersionLS    uint32
	ProductVersionMS uint32
	ProductVersionLS uint32
	FileFlagsMask    uint32
	FileFlags        uint32
	FileOS           uint32
	FileType         uint32
	FileSubtype      uint32
	FileDateMS       uint32
	FileDateLS       uint32
}

// String renders a one-line human-readable summary: the file and product
// version quads and the flags word. Never load-bearing for codec semantics —
// purely for logs and test failure messages, in the vein of
// pelican.PeInfo's printable report shape.
func (f FixedFileInfo) String() string {
	return fmt.Sprintf("file %d.%d.%d.%d product %d.%d.%d.%d flags=0x%08X",
		f.FileVersionMS>>16, f.FileVersionMS&0xFFFF, f.FileVersionLS>>16, f.FileVersionLS&0xFFFF,
		f.ProductVersionMS>>16, f.ProductVersionMS&0xFFFF, f.ProductVersionLS>>16, f.ProductVersionLS&0xFFFF,
		f.FileFlags)
}

func (f FixedFileInfo) marshal() []byte {
	buf := make([]byte, ffiSize)
	binary.LittleEndian.PutUint32(buf[0:], f.Signature)
	binary.LittleEndian.PutUint32(buf[4:], f.StrucVersion)
	binary.LittleEndian.PutUint32(buf[8:], f.FileVersionMS)
	binary.LittleEndian.PutUint32(buf[12:], f.FileVersionLS)
	binary.LittleEndian.PutUint32(buf[16:], f.ProductVersionMS)
	binary.LittleEndian.PutUint32(buf[20:], f.ProductVersionLS)
	binary.LittleEndian.PutUint32(buf[24:], f.FileFlagsMask)
	binary.LittleEndian.PutUint32(buf[28:], f.FileFlags)
	binary.LittleEndian.PutUint32(buf[32:], f.FileOS)
	binary.LittleEndian.PutUint32(buf[36:], f.FileType)
	binary.LittleEndian.PutUint32(buf[40:], f.FileSubtype)
	binary.LittleEndian.PutUint32(buf[44:], f.FileDateMS)
	binary.LittleEndian.PutUint32(buf[48:], f.FileDateLS)
	return buf
}

func unmarshalFFI(buf []byte) FixedFileInfo {
	padded := buf
	if len(padded) < ffiSize {
		padded = make([]byte, ffiSize)
		copy(padded, buf)
	}
	return FixedFileInfo{
		Signature:        binary.LittleEndian.Uint32(padded[0:]),
		StrucVersion:     binary.LittleEndian.Uint32(padded[4:]),
		FileVersionMS:    binary.LittleEndian.Uint32(padded[8:]),
		FileVersionLS:    binary.LittleEndian.Uint32(padded[12:]),
		ProductVersionMS: binary.LittleEndian.Uint32(padded[16:]),
		ProductVersionLS: binary.LittleEndian.Uint32(padded[20:]),
		FileFlagsMask:    binary.LittleEndian.Uint32(padded[24:]),
		FileFlags:        binary.LittleEndian.Uint32(padded[28:]),
		FileOS:           binary.LittleEndian.Uint32(padded[32:]),
		FileType:         binary.LittleEndian.Uint32(padded[36:]),
		FileSubtype:      binary.LittleEndian.Uint32(padded[40:]),
		FileDateMS:       binary.LittleEndian.Uint32(padded[44:]),
		FileDateLS:       binary.LittleEndian.Uint32(padded[48:]),
	}
}

func stampedZeroFFI() []byte {
	return FixedFileInfo{Signature: ffiSignature, StrucVersion: ffiStrucVersion}.marshal()
}

// FixedFileInfo returns the root's fixed file info, or a stamped zero
// record if the root carries no value yet.
func (vi *VersionInfo) FixedFileInfo() FixedFileInfo {
	v := vi.root.Value()
	if len(v) == 0 {
		return FixedFileInfo{Signature: ffiSignature, StrucVersion: ffiStrucVersion}
	}
	return unmarshalFFI(v)
}

// SetFixedFileInfo stores f into the root node's value, stamping
// dwSignature and dwStrucVersion regardless of what the caller supplied
// (spec.md §3.2).
func (vi *VersionInfo) SetFixedFileInfo(f FixedFileInfo) {
	f.Signature = ffiSignature
	f.StrucVersion = ffiStrucVersion
	vi.root.SetValue(f.marshal())
}
